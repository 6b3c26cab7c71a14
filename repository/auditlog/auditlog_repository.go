package auditlog

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/mahmudhasan/clothing-shop/model"
)

type SQL struct {
	conn *sqlx.DB
}

// AuditLogRepository appends request/outcome records. Callers treat writes as
// best-effort; a failed append must never change the primary result.
type AuditLogRepository interface {
	Append(ctx context.Context, rec *model.AuditRecord) error
}

func NewAuditLogRepository(conn *sqlx.DB) AuditLogRepository {
	return &SQL{conn: conn}
}

func (r *SQL) Append(ctx context.Context, rec *model.AuditRecord) error {
	q := `INSERT INTO order_request_logs (method, url, headers, payload, response_code, response_content)
VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.conn.ExecContext(ctx, q, rec.Method, rec.URL, rec.Headers, rec.Payload, rec.ResponseCode, rec.ResponseContent)
	return err
}
