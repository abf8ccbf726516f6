package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	employeeerrors "github.com/ipriyanshu25/office.enoylity/internal/employee/errors"
	"github.com/ipriyanshu25/office.enoylity/internal/events"
	"github.com/ipriyanshu25/office.enoylity/internal/messaging/kafka"
	"github.com/ipriyanshu25/office.enoylity/internal/shared/contextutil"
	"github.com/ipriyanshu25/office.enoylity/internal/shared/counter"
	"github.com/ipriyanshu25/office.enoylity/internal/shared/listquery"
)

const (
	dateLayout = "2006-01-02"

	employeeOptionsKey = "employees:options"
	counterScope       = "office"
	counterType        = "employee_id"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Save(ctx context.Context, req SaveEmployeeRequest) (EmployeeResponse, error)
	GetList(ctx context.Context, req GetListRequest) (ListResponse, error)
	GetRecord(ctx context.Context, employeeID string) (EmployeeResponse, error)
	GetOptions(ctx context.Context) ([]OptionResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, employeeID string) error
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	rdb     *redis.Client
	sf      *singleflight.Group
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, counterRepo counter.Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, counterRepo, nil, rdb, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	counterRepo counter.Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counterRepo,
		outbox:  outboxRepo,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		logger:  l,
	}
}

func (s *service) Save(ctx context.Context, req SaveEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("save employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	dob, err := time.Parse(dateLayout, req.DOB)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidDate
	}
	doj, err := time.Parse(dateLayout, req.DateOfJoining)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidDate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("save employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if req.EmployeeID == "" {
		nextVal, err := s.counter.GetNextValue(ctx, counterScope, counterType)
		if err != nil {
			s.logger.Error("save employee generate id failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		req.EmployeeID = fmt.Sprintf("EMC%05d", nextVal)
	}

	empl := &Employee{
		ID:            uuid.New(),
		EmployeeID:    req.EmployeeID,
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		DOB:           dob,
		DateOfJoining: doj,
		AdharNumber:   req.AdharNumber,
		PANNumber:     req.PANNumber,
		Department:    req.Department,
		Designation:   req.Designation,
		BaseSalary:    req.BaseSalary,
		// annual compensation is always derived, never trusted from the client
		AnnualSalary: req.BaseSalary * 12,
		BankDetails: BankDetails{
			AccountNumber: req.BankDetails.AccountNumber,
			IFSC:          req.BankDetails.IFSC,
			BankName:      req.BankDetails.BankName,
		},
		Address: Address{
			Line1: req.Address.Line1,
			City:  req.Address.City,
			State: req.Address.State,
			Pin:   req.Address.Pin,
		},
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("save employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.EmployeeCreatedEvent{
			EventType:  "employee_created",
			RequestID:  rid,
			EmployeeID: empl.EmployeeID,
			Name:       empl.Name,
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
			return EmployeeResponse{}, err
		}

		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "employee",
			AggregateID:   empl.EmployeeID,
			EventType:     event.EventType,
			Topic:         events.EmployeeCreatedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("save employee outbox persist failed",
				zap.String("employee_id", empl.EmployeeID),
				zap.Error(err),
			)
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("save employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("save employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.EmployeeID),
	)

	return mapToResponse(*empl), nil
}

func (s *service) GetList(ctx context.Context, req GetListRequest) (ListResponse, error) {
	req.Normalize(10, "name")
	s.logger.Debug("get employee list requested",
		zap.String("search", req.Search),
		zap.Int("page", req.Page),
	)

	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get employee list failed", zap.Error(err))
		return ListResponse{}, mapRepositoryError(err)
	}

	rows := make([]EmployeeResponse, 0, len(empls))
	for _, e := range empls {
		resp := mapToResponse(e)
		if listquery.Matches(req.Search, resp.Name, resp.Email, resp.EmployeeID) {
			rows = append(rows, resp)
		}
	}

	// Sort globally before slicing the page window.
	listquery.SortBy(rows, sortKey(req.SortBy), req.Desc())
	window, totalPages := listquery.Paginate(rows, req.Page, req.PageSize)

	return ListResponse{Employees: window, TotalPages: totalPages}, nil
}

func sortKey(field string) func(EmployeeResponse) string {
	switch field {
	case "email":
		return func(e EmployeeResponse) string { return e.Email }
	case "employeeid":
		return func(e EmployeeResponse) string { return e.EmployeeID }
	case "phone":
		return func(e EmployeeResponse) string { return e.Phone }
	case "department":
		return func(e EmployeeResponse) string { return e.Department }
	case "designation":
		return func(e EmployeeResponse) string { return e.Designation }
	default:
		return func(e EmployeeResponse) string { return e.Name }
	}
}

func (s *service) GetRecord(ctx context.Context, employeeID string) (EmployeeResponse, error) {
	s.logger.Debug("get employee record requested", zap.String("employee_id", employeeID))

	empl, err := s.repo.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		s.logger.Error("get employee record failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) GetOptions(ctx context.Context) ([]OptionResponse, error) {
	// 1. Check Redis
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, employeeOptionsKey).Result(); err == nil {
			var resp []OptionResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// 2. Singleflight so forms opened at the same time don't stampede the DB
	v, err, _ := s.sf.Do(employeeOptionsKey, func() (interface{}, error) {
		empls, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := make([]OptionResponse, len(empls))
		for i, e := range empls {
			resp[i] = OptionResponse{EmployeeID: e.EmployeeID, Name: e.Name}
		}

		// 3. Store in Redis (master data, a 1 hour TTL is plenty)
		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, employeeOptionsKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]OptionResponse), nil
}

func (s *service) Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested", zap.String("employee_id", req.EmployeeID))

	dob, err := time.Parse(dateLayout, req.DOB)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidDate
	}
	doj, err := time.Parse(dateLayout, req.DateOfJoining)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidDate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		s.logger.Error("update employee fetch existing failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	// EmployeeID stays what it was; everything else follows the form.
	empl.Name = req.Name
	empl.Email = req.Email
	empl.Phone = req.Phone
	empl.DOB = dob
	empl.DateOfJoining = doj
	empl.AdharNumber = req.AdharNumber
	empl.PANNumber = req.PANNumber
	empl.Department = req.Department
	empl.Designation = req.Designation
	empl.BaseSalary = req.BaseSalary
	empl.AnnualSalary = req.BaseSalary * 12
	empl.BankDetails = BankDetails{
		AccountNumber: req.BankDetails.AccountNumber,
		IFSC:          req.BankDetails.IFSC,
		BankName:      req.BankDetails.BankName,
	}
	empl.Address = Address{
		Line1: req.Address.Line1,
		City:  req.Address.City,
		State: req.Address.State,
		Pin:   req.Address.Pin,
	}

	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("update employee success", zap.String("employee_id", req.EmployeeID))

	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, employeeID string) error {
	s.logger.Debug("delete employee requested", zap.String("employee_id", employeeID))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByEmployeeID(ctx, employeeID); err != nil {
		return mapRepositoryError(err)
	}

	if err := qtx.Delete(ctx, employeeID); err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.Error(err))
		return err
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("delete employee success", zap.String("employee_id", employeeID))
	return nil
}

func (s *service) invalidateOptionsCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, employeeOptionsKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", employeeOptionsKey),
		)
	}
}

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:    empl.EmployeeID,
		Name:          empl.Name,
		Email:         empl.Email,
		Phone:         empl.Phone,
		DOB:           empl.DOB.Format(dateLayout),
		AdharNumber:   empl.AdharNumber,
		PANNumber:     empl.PANNumber,
		DateOfJoining: empl.DateOfJoining.Format(dateLayout),
		Department:    empl.Department,
		Designation:   empl.Designation,
		BaseSalary:    empl.BaseSalary,
		AnnualSalary:  empl.AnnualSalary,
		BankDetails: BankDetailsResponse{
			AccountNumber: empl.BankDetails.AccountNumber,
			IFSC:          empl.BankDetails.IFSC,
			BankName:      empl.BankDetails.BankName,
		},
		Address: AddressResponse{
			Line1: empl.Address.Line1,
			City:  empl.Address.City,
			State: empl.Address.State,
			Pin:   empl.Address.Pin,
		},
	}
}
