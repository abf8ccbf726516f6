package employee_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"github.com/ipriyanshu25/office.enoylity/internal/employee"
	employeeerrors "github.com/ipriyanshu25/office.enoylity/internal/employee/errors"
	employeeMock "github.com/ipriyanshu25/office.enoylity/internal/employee/mock"
	"github.com/ipriyanshu25/office.enoylity/internal/events"
	"github.com/ipriyanshu25/office.enoylity/internal/messaging/kafka"
	kafkaMock "github.com/ipriyanshu25/office.enoylity/internal/messaging/kafka/mock"
	counterMock "github.com/ipriyanshu25/office.enoylity/internal/shared/counter/mock"
	"github.com/ipriyanshu25/office.enoylity/internal/shared/listquery"
)

const optionsCacheKey = "employees:options"

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   employee.Service
	repo      *employeeMock.MockRepository
	counter   *counterMock.MockRepository
	outbox    *kafkaMock.MockOutboxRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	dbRedis, redisMock := redismock.NewClientMock()
	repo := employeeMock.NewMockRepository(ctrl)
	counterRepo := counterMock.NewMockRepository(ctrl)
	outboxRepo := kafkaMock.NewMockOutboxRepository(ctrl)

	svc := employee.NewServiceWithOutbox(db, repo, counterRepo, outboxRepo, dbRedis)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
		counter:   counterRepo,
		outbox:    outboxRepo,
		redismock: redisMock,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func saveRequest() employee.SaveEmployeeRequest {
	return employee.SaveEmployeeRequest{
		Name:          "Priya Nair",
		Email:         "priya@enoylity.com",
		Phone:         "9876543210",
		DOB:           "1995-04-12",
		AdharNumber:   "123412341234",
		PANNumber:     "ABCDE1234F",
		DateOfJoining: "2024-01-15",
		Department:    "Engineering",
		Designation:   "Developer",
		BaseSalary:    45000,
		BankDetails: employee.BankDetailsPayload{
			AccountNumber: "0011223344",
			IFSC:          "HDFC0000123",
			BankName:      "HDFC Bank",
		},
		Address: employee.AddressPayload{
			Line1: "12 MG Road",
			City:  "Pune",
			State: "Maharashtra",
			Pin:   "411001",
		},
	}
}

func TestEmployeeService_Save(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()

	t.Run("assigns the next id and derives annual salary", func(t *testing.T) {
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.counter.EXPECT().GetNextValue(gomock.Any(), "office", "employee_id").Return(int64(42), nil)

		var saved employee.Employee
		deps.repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, empl *employee.Employee) error {
				saved = *empl
				return nil
			})

		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, event kafka.OutboxEvent) error {
				assert.Equal(t, "employee", event.AggregateType)
				assert.Equal(t, events.EmployeeCreatedTopic, event.Topic)
				assert.Equal(t, kafka.OutboxStatusPending, event.Status)
				return nil
			})

		deps.redismock.ExpectDel(optionsCacheKey).SetVal(1)

		resp, err := deps.service.Save(ctx, saveRequest())
		assert.NoError(t, err)
		assert.Equal(t, "EMC00042", resp.EmployeeID)
		assert.Equal(t, int64(45000*12), saved.AnnualSalary)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("keeps an explicitly supplied id", func(t *testing.T) {
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		deps.redismock.ExpectDel(optionsCacheKey).SetVal(1)

		req := saveRequest()
		req.EmployeeID = "EMC00007"

		resp, err := deps.service.Save(ctx, req)
		assert.NoError(t, err)
		assert.Equal(t, "EMC00007", resp.EmployeeID)
	})

	t.Run("rejects a malformed date before touching the db", func(t *testing.T) {
		req := saveRequest()
		req.DOB = "12-04-1995"

		_, err := deps.service.Save(ctx, req)
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidDate)
	})
}

func TestEmployeeService_GetList(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	now := time.Now()
	deps.repo.EXPECT().FindAll(gomock.Any()).Return([]employee.Employee{
		{EmployeeID: "EMC00001", Name: "Charlie", DOB: now, DateOfJoining: now},
		{EmployeeID: "EMC00002", Name: "Alice", DOB: now, DateOfJoining: now},
		{EmployeeID: "EMC00003", Name: "Bob", DOB: now, DateOfJoining: now},
	}, nil)

	// Sorting happens over the whole set, so page 2 of size 1 is the global
	// second row, not the second row of some page-local order.
	resp, err := deps.service.GetList(context.Background(), employee.GetListRequest{
		Params: listquery.Params{Page: 2, PageSize: 1},
	})
	assert.NoError(t, err)
	assert.Len(t, resp.Employees, 1)
	assert.Equal(t, "Bob", resp.Employees[0].Name)
	assert.Equal(t, 3, resp.TotalPages)
}

func TestEmployeeService_Update(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	now := time.Now()
	stored := employee.Employee{EmployeeID: "EMC00005", Name: "Old Name", DOB: now, DateOfJoining: now}

	expectTx(t, deps.sqlMock, true)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().FindByEmployeeID(gomock.Any(), "EMC00005").Return(&stored, nil)

	var updated employee.Employee
	deps.repo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, empl *employee.Employee) error {
			updated = *empl
			return nil
		})
	deps.redismock.ExpectDel(optionsCacheKey).SetVal(1)

	req := employee.UpdateEmployeeRequest(saveRequest())
	req.EmployeeID = "EMC00005"
	req.BaseSalary = 50000

	resp, err := deps.service.Update(context.Background(), req)
	assert.NoError(t, err)
	assert.Equal(t, "EMC00005", updated.EmployeeID)
	assert.Equal(t, int64(600000), updated.AnnualSalary)
	assert.Equal(t, "Priya Nair", resp.Name)
}

func TestEmployeeService_Delete(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	t.Run("success", func(t *testing.T) {
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByEmployeeID(gomock.Any(), "EMC00001").Return(&employee.Employee{EmployeeID: "EMC00001"}, nil)
		deps.repo.EXPECT().Delete(gomock.Any(), "EMC00001").Return(nil)
		deps.redismock.ExpectDel(optionsCacheKey).SetVal(1)

		assert.NoError(t, deps.service.Delete(context.Background(), "EMC00001"))
	})

	t.Run("unknown id", func(t *testing.T) {
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByEmployeeID(gomock.Any(), "EMC09999").Return(nil, gorm.ErrRecordNotFound)

		err := deps.service.Delete(context.Background(), "EMC09999")
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_GetOptions(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit answers from redis", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expected := []employee.OptionResponse{{EmployeeID: "EMC00001", Name: "Priya Nair"}}
		jsonResp, _ := json.Marshal(expected)

		deps.redismock.ExpectGet(optionsCacheKey).SetVal(string(jsonResp))

		resp, err := deps.service.GetOptions(ctx)
		assert.NoError(t, err)
		assert.Equal(t, expected, resp)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("cache miss loads from db and backfills redis", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.redismock.ExpectGet(optionsCacheKey).RedisNil()

		deps.repo.EXPECT().FindOptions(gomock.Any()).Return([]employee.Employee{
			{EmployeeID: "EMC00002", Name: "Arun Mehta"},
		}, nil)

		cached, _ := json.Marshal([]employee.OptionResponse{{EmployeeID: "EMC00002", Name: "Arun Mehta"}})
		deps.redismock.ExpectSet(optionsCacheKey, cached, 1*time.Hour).SetVal("OK")

		resp, err := deps.service.GetOptions(ctx)
		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Arun Mehta", resp[0].Name)
	})

	t.Run("db error surfaces", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.redismock.ExpectGet(optionsCacheKey).RedisNil()
		deps.repo.EXPECT().FindOptions(gomock.Any()).Return(nil, errors.New("database connection lost"))

		_, err := deps.service.GetOptions(ctx)
		assert.Error(t, err)
	})
}
