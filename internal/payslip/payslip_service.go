package payslip

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ipriyanshu25/office.enoylity/internal/employee"
	"github.com/ipriyanshu25/office.enoylity/internal/events"
	"github.com/ipriyanshu25/office.enoylity/internal/messaging/kafka"
	paysliperrors "github.com/ipriyanshu25/office.enoylity/internal/payslip/errors"
	"github.com/ipriyanshu25/office.enoylity/internal/settings"
	"github.com/ipriyanshu25/office.enoylity/internal/shared/contextutil"
	"github.com/ipriyanshu25/office.enoylity/internal/shared/counter"
	"github.com/ipriyanshu25/office.enoylity/internal/shared/listquery"
	"github.com/ipriyanshu25/office.enoylity/internal/shared/pdfwriter"
)

const (
	formDateLayout  = "02-01-2006"
	formMonthLayout = "01-2006"
	tdsKey          = "Tax Deduction at Source (TDS)"
)

// EmployeeDirectory resolves the employee a slip is generated for.
// employee.Repository satisfies it.
type EmployeeDirectory interface {
	FindByEmployeeID(ctx context.Context, employeeID string) (*employee.Employee, error)
}

// CompanySource hands the generator the company block from the salary
// settings screen. settings.Service satisfies it.
type CompanySource interface {
	GetSalary(ctx context.Context) (settings.SalarySettingsResponse, error)
}

//go:generate mockgen -source=payslip_service.go -destination=mock/payslip_service_mock.go -package=mock
type Service interface {
	Generate(ctx context.Context, req GeneratePayslipRequest) (GeneratedDocument, error)
	GetList(ctx context.Context, req GetPayslipsRequest) (ListResponse, error)
	Delete(ctx context.Context, payslipID string) error
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees EmployeeDirectory
	company   CompanySource
	counter   counter.Repository
	outbox    kafka.OutboxRepository
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employees EmployeeDirectory,
	company CompanySource,
	counterRepo counter.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payslip.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payslip.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		employees: employees,
		company:   company,
		counter:   counterRepo,
		outbox:    outboxRepo,
		logger:    l,
	}
}

func (s *service) Generate(ctx context.Context, req GeneratePayslipRequest) (GeneratedDocument, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("generate payslip requested",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
		zap.String("month", req.Month),
	)

	generatedOn, err := time.Parse(formDateLayout, req.Date)
	if err != nil {
		return GeneratedDocument{}, paysliperrors.ErrInvalidDate
	}
	period, err := time.Parse(formMonthLayout, req.Month)
	if err != nil {
		return GeneratedDocument{}, paysliperrors.ErrInvalidMonth
	}

	empl, err := s.employees.FindByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return GeneratedDocument{}, paysliperrors.ErrUnknownEmployee
		}
		s.logger.Error("generate payslip employee lookup failed", zap.Error(err))
		return GeneratedDocument{}, err
	}

	var gross float64
	for _, comp := range req.SalaryStructure {
		gross += comp.Amount
	}
	// LOP is deducted at a thirtieth of gross per missed day.
	lopDeduction := gross / 30 * req.LOP
	netPay := gross - lopDeduction - req.TDS

	components, err := json.Marshal(req.SalaryStructure)
	if err != nil {
		return GeneratedDocument{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("generate payslip begin tx failed", zap.Error(err))
		return GeneratedDocument{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	nextVal, err := s.counter.GetNextValue(ctx, "office", "payslip_id")
	if err != nil {
		s.logger.Error("generate payslip id failed", zap.Error(err))
		return GeneratedDocument{}, err
	}

	slip := &Payslip{
		ID:           uuid.New(),
		PayslipID:    fmt.Sprintf("PSL%05d", nextVal),
		EmployeeID:   empl.EmployeeID,
		EmployeeName: empl.Name,
		Month:        int(period.Month()),
		Year:         period.Year(),
		LOPDays:      req.LOP,
		TDS:          req.TDS,
		NetPay:       netPay,
		Components:   components,
		GeneratedOn:  generatedOn,
	}

	if err := qtx.Create(ctx, slip); err != nil {
		s.logger.Error("generate payslip persist failed", zap.Error(err))
		return GeneratedDocument{}, err
	}

	fileName := fmt.Sprintf("payslip_%s.pdf", empl.EmployeeID)

	if s.outbox != nil {
		event := events.DocumentGeneratedEvent{
			EventType:   "document_generated",
			RequestID:   rid,
			Kind:        "payslip",
			DocumentID:  slip.PayslipID,
			FileName:    fileName,
			GeneratedBy: contextutil.GetActorID(ctx),
			OccurredAt:  time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return GeneratedDocument{}, err
		}

		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "payslip",
			AggregateID:   slip.PayslipID,
			EventType:     event.EventType,
			Topic:         events.DocumentGeneratedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("generate payslip outbox persist failed", zap.Error(err))
			return GeneratedDocument{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("generate payslip commit failed", zap.Error(err))
		return GeneratedDocument{}, err
	}

	resp := mapToResponse(*slip)

	var company settings.SalaryCompanyInfo
	if s.company != nil {
		if salary, err := s.company.GetSalary(ctx); err != nil {
			// Already committed; render without the company block.
			s.logger.Warn("salary settings lookup failed", zap.Error(err))
		} else {
			company = salary.CompanyInfo
		}
	}

	pdf, err := pdfwriter.Build(buildDocumentLines(company, resp, netPay))
	if err != nil {
		s.logger.Error("generate payslip pdf build failed", zap.Error(err))
		return GeneratedDocument{}, err
	}

	s.logger.Info("generate payslip success",
		zap.String("request_id", rid),
		zap.String("payslip_id", slip.PayslipID),
		zap.String("employee_id", empl.EmployeeID),
	)

	return GeneratedDocument{Payslip: resp, FileName: fileName, PDF: pdf}, nil
}

func (s *service) GetList(ctx context.Context, req GetPayslipsRequest) (ListResponse, error) {
	params := listquery.Params{
		Search:   req.Search,
		Page:     req.Page,
		PageSize: req.PageSize,
	}
	params.Normalize(5, "generated_on")

	slips, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get payslip list failed", zap.Error(err))
		return ListResponse{}, err
	}

	monthFilter, _ := strconv.Atoi(req.Month)
	yearFilter, _ := strconv.Atoi(req.Year)

	rows := make([]PayslipResponse, 0, len(slips))
	for _, slip := range slips {
		if monthFilter > 0 && slip.Month != monthFilter {
			continue
		}
		if yearFilter > 0 && slip.Year != yearFilter {
			continue
		}
		if !listquery.Matches(params.Search, slip.EmployeeID, slip.EmployeeName, slip.PayslipID) {
			continue
		}
		rows = append(rows, mapToResponse(slip))
	}

	totalRecords := len(rows)
	window, totalPages := listquery.Paginate(rows, params.Page, params.PageSize)

	return ListResponse{
		Payslips: window,
		Pagination: PaginationResponse{
			TotalRecords: totalRecords,
			TotalPages:   totalPages,
			Page:         params.Page,
			PageSize:     params.PageSize,
		},
	}, nil
}

func (s *service) Delete(ctx context.Context, payslipID string) error {
	if _, err := s.repo.FindByPayslipID(ctx, payslipID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return paysliperrors.ErrPayslipNotFound
		}
		return err
	}

	if err := s.repo.Delete(ctx, payslipID); err != nil {
		s.logger.Error("delete payslip failed", zap.String("payslip_id", payslipID), zap.Error(err))
		return err
	}

	s.logger.Info("delete payslip success", zap.String("payslip_id", payslipID))
	return nil
}

func mapToResponse(slip Payslip) PayslipResponse {
	var structure []SalaryComponent
	if len(slip.Components) > 0 {
		// Snapshot rows predate any schema change, so a decode failure just
		// drops them from the response.
		_ = json.Unmarshal(slip.Components, &structure)
	}

	return PayslipResponse{
		PayslipID:       slip.PayslipID,
		EmployeeID:      slip.EmployeeID,
		EmployeeName:    slip.EmployeeName,
		Month:           slip.Month,
		Year:            slip.Year,
		GeneratedOn:     slip.GeneratedOn.Format("2006-01-02"),
		LOPDays:         slip.LOPDays,
		SalaryStructure: structure,
		EmpSnapshot:     map[string]float64{tdsKey: slip.TDS},
	}
}
