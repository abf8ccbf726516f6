package payslip_test

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

	"github.com/ipriyanshu25/office.enoylity/internal/middleware"
	"github.com/ipriyanshu25/office.enoylity/internal/payslip"
)

type fakeService struct {
	generateFn func(ctx context.Context, req payslip.GeneratePayslipRequest) (payslip.GeneratedDocument, error)
	getListFn  func(ctx context.Context, req payslip.GetPayslipsRequest) (payslip.ListResponse, error)
	deleteFn   func(ctx context.Context, payslipID string) error
}

func (f *fakeService) Generate(ctx context.Context, req payslip.GeneratePayslipRequest) (payslip.GeneratedDocument, error) {
	return f.generateFn(ctx, req)
}
func (f *fakeService) GetList(ctx context.Context, req payslip.GetPayslipsRequest) (payslip.ListResponse, error) {
	return f.getListFn(ctx, req)
}
func (f *fakeService) Delete(ctx context.Context, payslipID string) error {
	return f.deleteFn(ctx, payslipID)
}

const salaryslipBody = `{
	"employee_id": "EMC00001",
	"lop": 1,
	"date": "05-08-2026",
	"month": "08-2026",
	"salary_structure": [{"name": "Basic Pay", "amount": 30000}]
}`

func serveSalaryslip(r *gin.Engine, idempKey string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/employee/salaryslip", strings.NewReader(salaryslipBody))
	req.Header.Set("Content-Type", "application/json")
	if idempKey != "" {
		req.Header.Set("Idempotency-Key", idempKey)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_Generate_StreamsPDF(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		generateFn: func(ctx context.Context, req payslip.GeneratePayslipRequest) (payslip.GeneratedDocument, error) {
			assert.Equal(t, "EMC00001", req.EmployeeID)
			return payslip.GeneratedDocument{
				FileName: "payslip_EMC00001.pdf",
				PDF:      []byte("%PDF-1.4 slip"),
			}, nil
		},
	}
	h := payslip.NewHandler(svc)

	r := gin.New()
	r.POST("/employee/salaryslip", h.Generate)

	w := serveSalaryslip(r, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), `filename="payslip_EMC00001.pdf"`)
	assert.Equal(t, "%PDF-1.4 slip", w.Body.String())
}

func TestHandler_Generate_ReplaysCachedPDFOnRetry(t *testing.T) {
	gin.SetMode(gin.TestMode)

	calls := 0
	svc := &fakeService{
		generateFn: func(ctx context.Context, req payslip.GeneratePayslipRequest) (payslip.GeneratedDocument, error) {
			calls++
			return payslip.GeneratedDocument{
				FileName: "payslip_EMC00001.pdf",
				PDF:      []byte("%PDF-1.4 slip"),
			}, nil
		},
	}

	rdb, mock := redismock.NewClientMock()
	h := payslip.NewHandlerWithRedis(svc, rdb)

	r := gin.New()
	r.POST("/employee/salaryslip", middleware.Idempotency(rdb), h.Generate)

	cacheKey := "idemp:/employee/salaryslip::slip-retry-1"
	lockKey := cacheKey + ":lock"
	payload, err := json.Marshal(middleware.CachedDocument{
		ContentType: "application/pdf",
		FileName:    "payslip_EMC00001.pdf",
		Body:        []byte("%PDF-1.4 slip"),
	})
	assert.NoError(t, err)

	mock.ExpectGet(cacheKey).RedisNil()
	mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(true)
	mock.ExpectSet(cacheKey, payload, 24*time.Hour).SetVal("OK")
	mock.ExpectDel(lockKey).SetVal(1)

	w := serveSalaryslip(r, "slip-retry-1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, calls)

	// The retry replays the stored slip; no second PSL id is consumed.
	mock.ExpectGet(cacheKey).SetVal(string(payload))

	w = serveSalaryslip(r, "slip-retry-1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "%PDF-1.4 slip", w.Body.String())
	assert.Equal(t, 1, calls)

	assert.NoError(t, mock.ExpectationsWereMet())
}
