package transport_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	auditmocks "github.com/mahmudhasan/clothing-shop/mocks/repository/auditlog"
	"github.com/mahmudhasan/clothing-shop/model"
	"github.com/mahmudhasan/clothing-shop/transport"
	"github.com/stretchr/testify/mock"
)

func TestAuditMiddleware_RecordsRequestAndResponse(t *testing.T) {
	auditRepo := auditmocks.NewAuditLogRepository(t)

	var recorded *model.AuditRecord
	auditRepo.On("Append", mock.Anything, mock.AnythingOfType("*model.AuditRecord")).
		Run(func(args mock.Arguments) { recorded = args.Get(1).(*model.AuditRecord) }).
		Return(nil).Once()

	handler := transport.AuditMiddleware(auditRepo)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// handler must still see the body the middleware already read
		body, _ := io.ReadAll(r.Body)
		if string(body) != `{"payment_option":{"method":"bkash"}}` {
			t.Fatalf("handler body = %q", body)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"status":"Successful"}`))
	}))

	req := httptest.NewRequest(http.MethodPost, "http://shop.local/order", strings.NewReader(`{"payment_option":{"method":"bkash"}}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusCreated)
	}
	if recorded == nil {
		t.Fatal("audit record not appended")
	}
	if recorded.Method != http.MethodPost {
		t.Fatalf("method = %q", recorded.Method)
	}
	if recorded.URL != "http://shop.local/order" {
		t.Fatalf("url = %q", recorded.URL)
	}
	if recorded.Payload != `{"payment_option":{"method":"bkash"}}` {
		t.Fatalf("payload = %q", recorded.Payload)
	}
	if recorded.ResponseCode != http.StatusCreated {
		t.Fatalf("response code = %d", recorded.ResponseCode)
	}
	if recorded.ResponseContent != `{"status":"Successful"}` {
		t.Fatalf("response content = %q", recorded.ResponseContent)
	}
}

func TestAuditMiddleware_RecordsFailures(t *testing.T) {
	auditRepo := auditmocks.NewAuditLogRepository(t)

	var recorded *model.AuditRecord
	auditRepo.On("Append", mock.Anything, mock.AnythingOfType("*model.AuditRecord")).
		Run(func(args mock.Arguments) { recorded = args.Get(1).(*model.AuditRecord) }).
		Return(nil).Once()

	handler := transport.AuditMiddleware(auditRepo)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Order not found", http.StatusNotFound)
	}))

	req := httptest.NewRequest(http.MethodPost, "http://shop.local/order", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if recorded == nil {
		t.Fatal("audit record not appended")
	}
	if recorded.ResponseCode != http.StatusNotFound {
		t.Fatalf("response code = %d, want %d", recorded.ResponseCode, http.StatusNotFound)
	}
}

func TestAuditMiddleware_AppendFailureIsSwallowed(t *testing.T) {
	auditRepo := auditmocks.NewAuditLogRepository(t)
	auditRepo.On("Append", mock.Anything, mock.AnythingOfType("*model.AuditRecord")).
		Return(errors.New("db gone")).Once()

	handler := transport.AuditMiddleware(auditRepo)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	req := httptest.NewRequest(http.MethodPost, "http://shop.local/order", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if rr.Body.String() != "ok" {
		t.Fatalf("body = %q, want ok", rr.Body.String())
	}
}
