package model

// AuditRecord is one best-effort row of the order_request_logs table:
// the raw inbound request plus the outcome it produced.
type AuditRecord struct {
	Method          string `db:"method"`
	URL             string `db:"url"`
	Headers         string `db:"headers"`
	Payload         string `db:"payload"`
	ResponseCode    int    `db:"response_code"`
	ResponseContent string `db:"response_content"`
}
