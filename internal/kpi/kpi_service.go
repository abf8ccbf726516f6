package kpi

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ipriyanshu25/office.enoylity/internal/employee"
	kpierrors "github.com/ipriyanshu25/office.enoylity/internal/kpi/errors"
	"github.com/ipriyanshu25/office.enoylity/internal/shared/counter"
	"github.com/ipriyanshu25/office.enoylity/internal/shared/listquery"
)

const dateLayout = "2006-01-02"

// EmployeeDirectory resolves the employee a KPI is assigned to.
// employee.Repository satisfies it.
type EmployeeDirectory interface {
	FindByEmployeeID(ctx context.Context, employeeID string) (*employee.Employee, error)
}

//go:generate mockgen -source=kpi_service.go -destination=mock/kpi_service_mock.go -package=mock
type Service interface {
	Add(ctx context.Context, req AddKPIRequest) (KPIResponse, error)
	Update(ctx context.Context, req UpdateKPIRequest) (KPIResponse, error)
	GetAll(ctx context.Context, req GetAllRequest) (ListResponse, error)
	GetByEmployeeID(ctx context.Context, req GetByEmployeeRequest) (ListResponse, error)
	GetByKpiID(ctx context.Context, kpiID string) (KPIResponse, error)
	Punch(ctx context.Context, req PunchRequest) (KPIResponse, error)
	Delete(ctx context.Context, kpiID string) error

	// SeedOnboarding creates the empty tracking record the consumer adds for
	// every new employee.
	SeedOnboarding(ctx context.Context, employeeID, employeeName string) error
}

type service struct {
	repo      Repository
	employees EmployeeDirectory
	counter   counter.Repository
	logger    *zap.Logger
}

func NewService(
	repo Repository,
	employees EmployeeDirectory,
	counterRepo counter.Repository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("kpi.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("kpi.service")
	}
	return &service{repo: repo, employees: employees, counter: counterRepo, logger: l}
}

func (s *service) nextKpiID(ctx context.Context) (string, error) {
	nextVal, err := s.counter.GetNextValue(ctx, "office", "kpi_id")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("KPI%05d", nextVal), nil
}

func (s *service) Add(ctx context.Context, req AddKPIRequest) (KPIResponse, error) {
	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return KPIResponse{}, kpierrors.ErrInvalidDate
	}
	deadline, err := time.Parse(dateLayout, req.Deadline)
	if err != nil {
		return KPIResponse{}, kpierrors.ErrInvalidDate
	}
	if deadline.Before(startDate) {
		return KPIResponse{}, kpierrors.ErrDeadlineBeforeStart
	}

	empl, err := s.employees.FindByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return KPIResponse{}, kpierrors.ErrUnknownEmployee
		}
		s.logger.Error("add kpi employee lookup failed", zap.Error(err))
		return KPIResponse{}, err
	}

	kpiID, err := s.nextKpiID(ctx)
	if err != nil {
		s.logger.Error("add kpi id failed", zap.Error(err))
		return KPIResponse{}, err
	}

	row := &KPI{
		ID:           uuid.New(),
		KpiID:        kpiID,
		EmployeeID:   empl.EmployeeID,
		EmployeeName: empl.Name,
		ProjectName:  req.ProjectName,
		StartDate:    &startDate,
		Deadline:     &deadline,
		Remark:       req.Remark,
	}

	if err := s.repo.Create(ctx, row); err != nil {
		s.logger.Error("add kpi persist failed", zap.Error(err))
		return KPIResponse{}, err
	}

	s.logger.Info("kpi added",
		zap.String("kpi_id", row.KpiID),
		zap.String("employee_id", row.EmployeeID),
	)
	return mapToResponse(*row), nil
}

func (s *service) Update(ctx context.Context, req UpdateKPIRequest) (KPIResponse, error) {
	row, err := s.repo.FindByKpiID(ctx, req.KpiID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return KPIResponse{}, kpierrors.ErrKPINotFound
		}
		return KPIResponse{}, err
	}

	if req.ProjectName != "" {
		row.ProjectName = req.ProjectName
	}
	if req.Remark != "" {
		row.Remark = req.Remark
	}
	if req.Points != nil {
		row.Points = *req.Points
	}

	if err := s.repo.Update(ctx, row); err != nil {
		s.logger.Error("update kpi persist failed", zap.String("kpi_id", req.KpiID), zap.Error(err))
		return KPIResponse{}, err
	}

	s.logger.Info("kpi updated", zap.String("kpi_id", row.KpiID))
	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context, req GetAllRequest) (ListResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all kpis failed", zap.Error(err))
		return ListResponse{}, err
	}
	return s.buildList(rows, req)
}

func (s *service) GetByEmployeeID(ctx context.Context, req GetByEmployeeRequest) (ListResponse, error) {
	rows, err := s.repo.FindByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		s.logger.Error("get kpis by employee failed", zap.String("employee_id", req.EmployeeID), zap.Error(err))
		return ListResponse{}, err
	}
	return s.buildList(rows, req.GetAllRequest)
}

func (s *service) buildList(rows []KPI, req GetAllRequest) (ListResponse, error) {
	params := listquery.Params{
		Search:    req.Search,
		Page:      req.Page,
		PageSize:  req.PageSize,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
	}
	params.Normalize(10, "createdat")

	// Both range bounds must be set for the date filter to apply, matching
	// the dashboard behavior.
	var rangeStart, rangeEnd time.Time
	rangeActive := false
	if req.StartDate != "" && req.EndDate != "" {
		var err error
		rangeStart, err = time.Parse(dateLayout, req.StartDate)
		if err != nil {
			return ListResponse{}, kpierrors.ErrInvalidDate
		}
		rangeEnd, err = time.Parse(dateLayout, req.EndDate)
		if err != nil {
			return ListResponse{}, kpierrors.ErrInvalidDate
		}
		rangeActive = true
	}

	out := make([]KPIResponse, 0, len(rows))
	for _, row := range rows {
		if rangeActive {
			if row.StartDate == nil {
				continue
			}
			if row.StartDate.Before(rangeStart) || row.StartDate.After(rangeEnd) {
				continue
			}
		}
		if !listquery.Matches(params.Search, row.ProjectName, row.EmployeeName, row.EmployeeID) {
			continue
		}
		out = append(out, mapToResponse(row))
	}

	listquery.SortBy(out, sortKey(params.SortBy), params.Desc())
	total := len(out)
	window, _ := listquery.Paginate(out, params.Page, params.PageSize)

	return ListResponse{
		Kpis:     window,
		Page:     params.Page,
		PageSize: params.PageSize,
		Total:    total,
	}, nil
}

func sortKey(field string) func(KPIResponse) string {
	deref := func(v *string) string {
		if v == nil {
			return ""
		}
		return *v
	}
	switch field {
	case "startdate":
		return func(k KPIResponse) string { return deref(k.StartDate) }
	case "deadline":
		return func(k KPIResponse) string { return deref(k.Deadline) }
	default:
		return func(k KPIResponse) string { return k.CreatedAt }
	}
}

func (s *service) GetByKpiID(ctx context.Context, kpiID string) (KPIResponse, error) {
	row, err := s.repo.FindByKpiID(ctx, kpiID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return KPIResponse{}, kpierrors.ErrKPINotFound
		}
		return KPIResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) Punch(ctx context.Context, req PunchRequest) (KPIResponse, error) {
	row, err := s.repo.FindByKpiID(ctx, req.KpiID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return KPIResponse{}, kpierrors.ErrKPINotFound
		}
		return KPIResponse{}, err
	}

	punch := &Punch{
		ID:        uuid.New(),
		KpiID:     row.ID,
		PunchDate: time.Now().UTC(),
		Remark:    req.Remark,
		Status:    req.Status,
	}
	if err := s.repo.AddPunch(ctx, punch); err != nil {
		s.logger.Error("punch persist failed", zap.String("kpi_id", req.KpiID), zap.Error(err))
		return KPIResponse{}, err
	}

	// Every logged punch earns one point.
	row.Points++
	if err := s.repo.Update(ctx, row); err != nil {
		s.logger.Error("punch points update failed", zap.String("kpi_id", req.KpiID), zap.Error(err))
		return KPIResponse{}, err
	}
	row.Punches = append(row.Punches, *punch)

	s.logger.Info("kpi punched",
		zap.String("kpi_id", row.KpiID),
		zap.String("status", req.Status),
		zap.Int("points", row.Points),
	)
	return mapToResponse(*row), nil
}

func (s *service) Delete(ctx context.Context, kpiID string) error {
	if _, err := s.repo.FindByKpiID(ctx, kpiID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return kpierrors.ErrKPINotFound
		}
		return err
	}

	if err := s.repo.Delete(ctx, kpiID); err != nil {
		s.logger.Error("delete kpi failed", zap.String("kpi_id", kpiID), zap.Error(err))
		return err
	}

	s.logger.Info("kpi deleted", zap.String("kpi_id", kpiID))
	return nil
}

func (s *service) SeedOnboarding(ctx context.Context, employeeID, employeeName string) error {
	kpiID, err := s.nextKpiID(ctx)
	if err != nil {
		return err
	}

	row := &KPI{
		ID:           uuid.New(),
		KpiID:        kpiID,
		EmployeeID:   employeeID,
		EmployeeName: employeeName,
		ProjectName:  "Onboarding",
	}
	if err := s.repo.Create(ctx, row); err != nil {
		return err
	}

	s.logger.Info("onboarding kpi seeded",
		zap.String("kpi_id", row.KpiID),
		zap.String("employee_id", employeeID),
	)
	return nil
}

func mapToResponse(row KPI) KPIResponse {
	fmtDate := func(t *time.Time) *string {
		if t == nil {
			return nil
		}
		v := t.Format(dateLayout)
		return &v
	}

	punches := make([]PunchResponse, len(row.Punches))
	for i, p := range row.Punches {
		punches[i] = PunchResponse{
			PunchDate: p.PunchDate.Format(time.RFC3339),
			Remark:    p.Remark,
			Status:    p.Status,
		}
	}

	return KPIResponse{
		KpiID:        row.KpiID,
		EmployeeID:   row.EmployeeID,
		EmployeeName: row.EmployeeName,
		ProjectName:  row.ProjectName,
		StartDate:    fmtDate(row.StartDate),
		Deadline:     fmtDate(row.Deadline),
		Remark:       row.Remark,
		Points:       row.Points,
		Punches:      punches,
		CreatedAt:    row.CreatedAt.UTC().Format(time.RFC3339),
	}
}
