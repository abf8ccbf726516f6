package invoice_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"

	"github.com/ipriyanshu25/office.enoylity/internal/invoice"
	invoiceerrors "github.com/ipriyanshu25/office.enoylity/internal/invoice/errors"
	"github.com/ipriyanshu25/office.enoylity/internal/middleware"
)

type fakeService struct {
	generateFn   func(ctx context.Context, entity invoice.BusinessEntity, req invoice.GenerateInvoiceRequest) (invoice.GeneratedDocument, error)
	getListFn    func(ctx context.Context, entity invoice.BusinessEntity, req invoice.GetListRequest) (invoice.ListResponse, error)
	getInvoiceFn func(ctx context.Context, entity invoice.BusinessEntity, id string) (invoice.InvoiceResponse, error)
	deleteFn     func(ctx context.Context, entity invoice.BusinessEntity, id string) error
}

func (f *fakeService) Generate(ctx context.Context, entity invoice.BusinessEntity, req invoice.GenerateInvoiceRequest) (invoice.GeneratedDocument, error) {
	return f.generateFn(ctx, entity, req)
}
func (f *fakeService) GetList(ctx context.Context, entity invoice.BusinessEntity, req invoice.GetListRequest) (invoice.ListResponse, error) {
	return f.getListFn(ctx, entity, req)
}
func (f *fakeService) GetInvoice(ctx context.Context, entity invoice.BusinessEntity, id string) (invoice.InvoiceResponse, error) {
	return f.getInvoiceFn(ctx, entity, id)
}
func (f *fakeService) Delete(ctx context.Context, entity invoice.BusinessEntity, id string) error {
	return f.deleteFn(ctx, entity, id)
}

func postJSON(body string) (*httptest.ResponseRecorder, *gin.Context) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/invoiceMHD/generate-invoice", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return w, c
}

const generateBody = `{
	"bill_to_name": "Acme LLC",
	"bill_to_address": "1 Main Street",
	"invoice_date": "2026-08-01",
	"due_date": "2026-08-15",
	"payment_method": 0,
	"items": [{"description": "Design work", "quantity": 2, "price": 10.5}]
}`

func TestHandler_Generate_StreamsPDF(t *testing.T) {
	svc := &fakeService{
		generateFn: func(ctx context.Context, entity invoice.BusinessEntity, req invoice.GenerateInvoiceRequest) (invoice.GeneratedDocument, error) {
			assert.Equal(t, invoice.MHDTech.Key, entity.Key)
			assert.Equal(t, "Acme LLC", req.BillToName)
			return invoice.GeneratedDocument{
				FileName: "invoice_Acme LLC.pdf",
				PDF:      []byte("%PDF-1.4 fake"),
			}, nil
		},
	}
	h := invoice.NewHandler(svc)

	w, c := postJSON(generateBody)
	h.Generate(invoice.MHDTech)(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), `filename="invoice_Acme LLC.pdf"`)
	assert.Equal(t, "%PDF-1.4 fake", w.Body.String())
}

func serveGenerate(r *gin.Engine, idempKey string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/invoiceMHD/generate-invoice", strings.NewReader(generateBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", idempKey)
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_Generate_ReplaysCachedPDFOnRetry(t *testing.T) {
	gin.SetMode(gin.TestMode)

	calls := 0
	svc := &fakeService{
		generateFn: func(ctx context.Context, entity invoice.BusinessEntity, req invoice.GenerateInvoiceRequest) (invoice.GeneratedDocument, error) {
			calls++
			return invoice.GeneratedDocument{
				FileName: "invoice_Acme LLC.pdf",
				PDF:      []byte("%PDF-1.4 fake"),
			}, nil
		},
	}

	rdb, mock := redismock.NewClientMock()
	h := invoice.NewHandlerWithRedis(svc, rdb)

	r := gin.New()
	r.POST("/invoiceMHD/generate-invoice", middleware.Idempotency(rdb), h.Generate(invoice.MHDTech))

	cacheKey := "idemp:/invoiceMHD/generate-invoice::retry-1"
	lockKey := cacheKey + ":lock"
	payload, err := json.Marshal(middleware.CachedDocument{
		ContentType: "application/pdf",
		FileName:    "invoice_Acme LLC.pdf",
		Body:        []byte("%PDF-1.4 fake"),
	})
	assert.NoError(t, err)

	// First call misses the cache, takes the lock, runs the service, then
	// stores the document and releases the lock.
	mock.ExpectGet(cacheKey).RedisNil()
	mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(true)
	mock.ExpectSet(cacheKey, payload, 24*time.Hour).SetVal("OK")
	mock.ExpectDel(lockKey).SetVal(1)

	w := serveGenerate(r, "retry-1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, calls)

	// The retry is served from the cache without touching the service, so no
	// second invoice number is consumed and no second row is persisted.
	mock.ExpectGet(cacheKey).SetVal(string(payload))

	w = serveGenerate(r, "retry-1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), `filename="invoice_Acme LLC.pdf"`)
	assert.Equal(t, "%PDF-1.4 fake", w.Body.String())
	assert.Equal(t, 1, calls)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_Generate_ConcurrentDuplicateRejected(t *testing.T) {
	gin.SetMode(gin.TestMode)

	calls := 0
	svc := &fakeService{
		generateFn: func(ctx context.Context, entity invoice.BusinessEntity, req invoice.GenerateInvoiceRequest) (invoice.GeneratedDocument, error) {
			calls++
			return invoice.GeneratedDocument{FileName: "x.pdf", PDF: []byte("%PDF")}, nil
		},
	}

	rdb, mock := redismock.NewClientMock()
	h := invoice.NewHandlerWithRedis(svc, rdb)

	r := gin.New()
	r.POST("/invoiceMHD/generate-invoice", middleware.Idempotency(rdb), h.Generate(invoice.MHDTech))

	cacheKey := "idemp:/invoiceMHD/generate-invoice::dup-1"
	mock.ExpectGet(cacheKey).RedisNil()
	mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(false)

	w := serveGenerate(r, "dup-1")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "still being processed")
	assert.Equal(t, 0, calls)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_Generate_ValidationFailure(t *testing.T) {
	h := invoice.NewHandler(&fakeService{})

	w, c := postJSON(`{"bill_to_name": ""}`)
	h.Generate(invoice.MHDTech)(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestHandler_GetInvoice_NotFound(t *testing.T) {
	svc := &fakeService{
		getInvoiceFn: func(ctx context.Context, entity invoice.BusinessEntity, id string) (invoice.InvoiceResponse, error) {
			return invoice.InvoiceResponse{}, invoiceerrors.ErrInvoiceNotFound
		},
	}
	h := invoice.NewHandler(svc)

	w, c := postJSON(`{"id": "missing"}`)
	h.GetInvoice(invoice.EnoylityStudio)(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Invoice not found")
}

func TestHandler_Delete(t *testing.T) {
	var gotID string
	svc := &fakeService{
		deleteFn: func(ctx context.Context, entity invoice.BusinessEntity, id string) error {
			gotID = id
			return nil
		},
	}
	h := invoice.NewHandler(svc)

	w, c := postJSON(`{"id": "abc-123"}`)
	h.Delete(invoice.MHDTech)(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abc-123", gotID)
	assert.Contains(t, w.Body.String(), "Invoice removed")
}
