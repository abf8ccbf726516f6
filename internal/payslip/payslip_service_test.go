package payslip

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/ipriyanshu25/office.enoylity/internal/employee"
	paysliperrors "github.com/ipriyanshu25/office.enoylity/internal/payslip/errors"
)

type fakeRepo struct {
	withTxFn          func(tx *sql.Tx) Repository
	createFn          func(ctx context.Context, slip *Payslip) error
	findAllFn         func(ctx context.Context) ([]Payslip, error)
	findByPayslipIDFn func(ctx context.Context, payslipID string) (*Payslip, error)
	deleteFn          func(ctx context.Context, payslipID string) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f.withTxFn(tx) }
func (f *fakeRepo) Create(ctx context.Context, slip *Payslip) error {
	return f.createFn(ctx, slip)
}
func (f *fakeRepo) FindAll(ctx context.Context) ([]Payslip, error) {
	return f.findAllFn(ctx)
}
func (f *fakeRepo) FindByPayslipID(ctx context.Context, payslipID string) (*Payslip, error) {
	return f.findByPayslipIDFn(ctx, payslipID)
}
func (f *fakeRepo) Delete(ctx context.Context, payslipID string) error {
	return f.deleteFn(ctx, payslipID)
}

type fakeDirectory struct {
	findFn func(ctx context.Context, employeeID string) (*employee.Employee, error)
}

func (f *fakeDirectory) FindByEmployeeID(ctx context.Context, employeeID string) (*employee.Employee, error) {
	return f.findFn(ctx, employeeID)
}

type fakeCounter struct {
	nextFn func(ctx context.Context, scope, counterType string) (int64, error)
}

func (f *fakeCounter) GetNextValue(ctx context.Context, scope, counterType string) (int64, error) {
	return f.nextFn(ctx, scope, counterType)
}

func generateRequest() GeneratePayslipRequest {
	return GeneratePayslipRequest{
		EmployeeID: "EMC00001",
		LOP:        3,
		Date:       "28-08-2026",
		Month:      "08-2026",
		SalaryStructure: []SalaryComponent{
			{Name: "Basic Pay", Amount: 30000},
			{Name: "House Rent Allowance", Amount: 15000},
		},
		TDS: 2000,
	}
}

func TestService_Generate_ComputesNetPay(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	var saved Payslip
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.createFn = func(ctx context.Context, slip *Payslip) error { saved = *slip; return nil }

	dir := &fakeDirectory{findFn: func(ctx context.Context, employeeID string) (*employee.Employee, error) {
		return &employee.Employee{EmployeeID: employeeID, Name: "Priya Nair"}, nil
	}}
	cnt := &fakeCounter{nextFn: func(ctx context.Context, scope, counterType string) (int64, error) {
		assert.Equal(t, "office", scope)
		assert.Equal(t, "payslip_id", counterType)
		return 12, nil
	}}

	svc := NewService(db, repo, dir, nil, cnt, nil)

	mock.ExpectBegin()
	mock.ExpectCommit()
	doc, err := svc.Generate(context.Background(), generateRequest())
	assert.NoError(t, err)

	// gross 45000, LOP 3 days at gross/30, TDS 2000
	assert.InDelta(t, 45000-4500-2000, saved.NetPay, 0.001)
	assert.Equal(t, "PSL00012", saved.PayslipID)
	assert.Equal(t, 8, saved.Month)
	assert.Equal(t, 2026, saved.Year)
	assert.Equal(t, "payslip_EMC00001.pdf", doc.FileName)
	assert.Equal(t, "%PDF", string(doc.PDF[:4]))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Generate_RejectsBadDateAndMonth(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeRepo{}, &fakeDirectory{}, nil, &fakeCounter{}, nil)

	req := generateRequest()
	req.Date = "2026-08-28"
	_, err := svc.Generate(context.Background(), req)
	assert.ErrorIs(t, err, paysliperrors.ErrInvalidDate)

	req = generateRequest()
	req.Month = "August 2026"
	_, err = svc.Generate(context.Background(), req)
	assert.ErrorIs(t, err, paysliperrors.ErrInvalidMonth)
}

func TestService_Generate_UnknownEmployee(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	dir := &fakeDirectory{findFn: func(ctx context.Context, employeeID string) (*employee.Employee, error) {
		return nil, gorm.ErrRecordNotFound
	}}

	svc := NewService(db, &fakeRepo{}, dir, nil, &fakeCounter{}, nil)

	_, err := svc.Generate(context.Background(), generateRequest())
	assert.ErrorIs(t, err, paysliperrors.ErrUnknownEmployee)
}

func TestService_GetList_FiltersByMonthAndYear(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.findAllFn = func(ctx context.Context) ([]Payslip, error) {
		return []Payslip{
			{PayslipID: "PSL00001", EmployeeID: "EMC00001", Month: 7, Year: 2026, GeneratedOn: time.Now()},
			{PayslipID: "PSL00002", EmployeeID: "EMC00001", Month: 8, Year: 2026, GeneratedOn: time.Now()},
			{PayslipID: "PSL00003", EmployeeID: "EMC00002", Month: 8, Year: 2025, GeneratedOn: time.Now()},
		}, nil
	}

	svc := NewService(db, repo, &fakeDirectory{}, nil, &fakeCounter{}, nil)

	resp, err := svc.GetList(context.Background(), GetPayslipsRequest{Month: "8", Year: "2026"})
	assert.NoError(t, err)
	assert.Len(t, resp.Payslips, 1)
	assert.Equal(t, "PSL00002", resp.Payslips[0].PayslipID)
	assert.Equal(t, 1, resp.Pagination.TotalRecords)
}

func TestService_GetList_SearchMatchesEmployeeName(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.findAllFn = func(ctx context.Context) ([]Payslip, error) {
		return []Payslip{
			{PayslipID: "PSL00001", EmployeeName: "Priya Nair", GeneratedOn: time.Now()},
			{PayslipID: "PSL00002", EmployeeName: "Arun Mehta", GeneratedOn: time.Now()},
		}, nil
	}

	svc := NewService(db, repo, &fakeDirectory{}, nil, &fakeCounter{}, nil)

	resp, err := svc.GetList(context.Background(), GetPayslipsRequest{Search: "priya"})
	assert.NoError(t, err)
	assert.Len(t, resp.Payslips, 1)
	assert.Equal(t, "PSL00001", resp.Payslips[0].PayslipID)
}

func TestService_Delete_NotFound(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.findByPayslipIDFn = func(ctx context.Context, payslipID string) (*Payslip, error) {
		return nil, gorm.ErrRecordNotFound
	}

	svc := NewService(db, repo, &fakeDirectory{}, nil, &fakeCounter{}, nil)

	err := svc.Delete(context.Background(), "PSL99999")
	assert.ErrorIs(t, err, paysliperrors.ErrPayslipNotFound)
}
