package invoice

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	invoiceerrors "github.com/ipriyanshu25/office.enoylity/internal/invoice/errors"
)

type fakeRepo struct {
	withTxFn          func(tx *sql.Tx) Repository
	createFn          func(ctx context.Context, inv *Invoice) error
	findAllByEntityFn func(ctx context.Context, entityKey string) ([]Invoice, error)
	findByIDFn        func(ctx context.Context, entityKey, id string) (*Invoice, error)
	deleteFn          func(ctx context.Context, entityKey, id string) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f.withTxFn(tx) }
func (f *fakeRepo) Create(ctx context.Context, inv *Invoice) error {
	return f.createFn(ctx, inv)
}
func (f *fakeRepo) FindAllByEntity(ctx context.Context, entityKey string) ([]Invoice, error) {
	return f.findAllByEntityFn(ctx, entityKey)
}
func (f *fakeRepo) FindByID(ctx context.Context, entityKey, id string) (*Invoice, error) {
	return f.findByIDFn(ctx, entityKey, id)
}
func (f *fakeRepo) Delete(ctx context.Context, entityKey, id string) error {
	return f.deleteFn(ctx, entityKey, id)
}

type fakeCounter struct {
	nextFn func(ctx context.Context, scope, counterType string) (int64, error)
}

func (f *fakeCounter) GetNextValue(ctx context.Context, scope, counterType string) (int64, error) {
	return f.nextFn(ctx, scope, counterType)
}

func generateRequest() GenerateInvoiceRequest {
	return GenerateInvoiceRequest{
		BillToName:    "Acme LLC",
		BillToAddress: "1 Main Street",
		InvoiceDate:   "2026-08-01",
		DueDate:       "2026-08-15",
		PaymentMethod: PaymentPayPal,
		Items: []ItemPayload{
			{Description: "Design work", Quantity: 2, Price: 10.50},
			{Description: "Hosting", Quantity: 1, Price: 5},
		},
	}
}

func TestService_Generate_ComputesTotalServerSide(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	var saved Invoice
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.createFn = func(ctx context.Context, inv *Invoice) error { saved = *inv; return nil }

	cnt := &fakeCounter{nextFn: func(ctx context.Context, scope, counterType string) (int64, error) {
		assert.Equal(t, MHDTech.Key, scope)
		assert.Equal(t, "invoice_number", counterType)
		return 7, nil
	}}

	svc := NewService(db, repo, cnt)

	mock.ExpectBegin()
	mock.ExpectCommit()
	doc, err := svc.Generate(context.Background(), MHDTech, generateRequest())
	assert.NoError(t, err)
	assert.Equal(t, "MHD-0007", saved.InvoiceNumber)
	assert.InDelta(t, 26.0, saved.Total, 0.001)
	assert.Equal(t, "invoice_Acme LLC.pdf", doc.FileName)
	assert.True(t, len(doc.PDF) > 0)
	assert.Equal(t, "%PDF", string(doc.PDF[:4]))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Generate_AcceptsDayFirstDates(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	var saved Invoice
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.createFn = func(ctx context.Context, inv *Invoice) error { saved = *inv; return nil }

	cnt := &fakeCounter{nextFn: func(ctx context.Context, scope, counterType string) (int64, error) {
		return 1, nil
	}}

	svc := NewService(db, repo, cnt)

	req := generateRequest()
	req.InvoiceDate = "01-08-2026"
	req.DueDate = "15-08-2026"

	mock.ExpectBegin()
	mock.ExpectCommit()
	_, err := svc.Generate(context.Background(), EnoylityStudio, req)
	assert.NoError(t, err)
	assert.Equal(t, "2026-08-01", saved.InvoiceDate.Format("2006-01-02"))
	assert.Equal(t, "2026-08-15", saved.DueDate.Format("2006-01-02"))
}

func TestService_Generate_RejectsBadDate(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	cnt := &fakeCounter{}
	svc := NewService(db, repo, cnt)

	req := generateRequest()
	req.InvoiceDate = "August 1st"
	_, err := svc.Generate(context.Background(), MHDTech, req)
	assert.ErrorIs(t, err, invoiceerrors.ErrInvalidDate)
}

func TestService_Generate_RequiresLineItems(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeRepo{}, &fakeCounter{})

	req := generateRequest()
	req.Items = nil
	_, err := svc.Generate(context.Background(), MHDTech, req)
	assert.ErrorIs(t, err, invoiceerrors.ErrNoLineItems)
}

func TestService_Generate_BankNoteOnlyForBankTransfer(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	var saved Invoice
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.createFn = func(ctx context.Context, inv *Invoice) error { saved = *inv; return nil }
	cnt := &fakeCounter{nextFn: func(ctx context.Context, scope, counterType string) (int64, error) {
		return 1, nil
	}}
	svc := NewService(db, repo, cnt)

	req := generateRequest()
	req.PaymentMethod = PaymentPayPal
	req.BankNote = "IBAN on request"

	mock.ExpectBegin()
	mock.ExpectCommit()
	_, err := svc.Generate(context.Background(), MHDTech, req)
	assert.NoError(t, err)
	assert.Empty(t, saved.BankNote)
}

func TestService_GetList_FiltersSortsAndPaginates(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.findAllByEntityFn = func(ctx context.Context, entityKey string) ([]Invoice, error) {
		return []Invoice{
			{InvoiceNumber: "ENS-0002", BillToName: "Beta Corp"},
			{InvoiceNumber: "ENS-0001", BillToName: "Acme LLC"},
			{InvoiceNumber: "ENS-0003", BillToName: "Acme LLC"},
		}, nil
	}

	svc := NewService(db, repo, &fakeCounter{})

	resp, err := svc.GetList(context.Background(), EnoylityStudio, GetListRequest{
		Search:    "acme",
		SortBy:    "invoice_number",
		SortOrder: "desc",
		Page:      1,
		PageSize:  1,
	})
	assert.NoError(t, err)
	assert.Len(t, resp.Invoices, 1)
	assert.Equal(t, "ENS-0003", resp.Invoices[0].InvoiceNumber)
	assert.Equal(t, 2, resp.TotalPages)
}

func TestService_Delete_NotFound(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.findByIDFn = func(ctx context.Context, entityKey, id string) (*Invoice, error) {
		return nil, gorm.ErrRecordNotFound
	}

	svc := NewService(db, repo, &fakeCounter{})

	err := svc.Delete(context.Background(), MHDTech, "missing")
	assert.True(t, errors.Is(err, invoiceerrors.ErrInvoiceNotFound))
}
