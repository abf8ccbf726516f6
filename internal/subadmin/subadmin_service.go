package subadmin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ipriyanshu25/office.enoylity/internal/access"
	"github.com/ipriyanshu25/office.enoylity/internal/employee"
	"github.com/ipriyanshu25/office.enoylity/internal/shared/contextutil"
	"github.com/ipriyanshu25/office.enoylity/internal/shared/counter"
	"github.com/ipriyanshu25/office.enoylity/internal/shared/listquery"
	subadminerrors "github.com/ipriyanshu25/office.enoylity/internal/subadmin/errors"
)

// EmployeeDirectory resolves the employee a subadmin login belongs to.
// employee.Repository satisfies it.
type EmployeeDirectory interface {
	FindByEmployeeID(ctx context.Context, employeeID string) (*employee.Employee, error)
}

//go:generate mockgen -source=subadmin_service.go -destination=mock/subadmin_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (SubadminResponse, error)
	GetList(ctx context.Context, req GetListRequest) (ListResponse, error)
	Delete(ctx context.Context, subadminID string) error

	// Authenticate backs the login endpoint. It returns the stored record
	// when the username/password pair checks out.
	Authenticate(ctx context.Context, username, password string) (*Subadmin, error)
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
	l := zap.L().Named("subadmin.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("subadmin.service")
	}
	return &service{repo: repo, employees: employees, counter: counterRepo, logger: l}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (SubadminResponse, error) {
	// Request-scoped logger, already stamped with request id and actor.
	l := contextutil.GetLogger(ctx, s.logger)

	// Only known flags set to 1 are kept; anything else is dropped.
	granted := map[string]int{}
	for _, name := range access.PermissionNames {
		if req.Permissions[name] == 1 {
			granted[name] = 1
		}
	}
	if len(granted) == 0 {
		return SubadminResponse{}, subadminerrors.ErrNoPermissions
	}

	empl, err := s.employees.FindByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SubadminResponse{}, subadminerrors.ErrUnknownEmployee
		}
		l.Error("register subadmin employee lookup failed", zap.Error(err))
		return SubadminResponse{}, err
	}

	if _, err := s.repo.FindByUsername(ctx, req.Username); err == nil {
		return SubadminResponse{}, subadminerrors.ErrDuplicateUsername
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return SubadminResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return SubadminResponse{}, err
	}

	permissions, err := json.Marshal(granted)
	if err != nil {
		return SubadminResponse{}, err
	}

	nextVal, err := s.counter.GetNextValue(ctx, "office", "subadmin_id")
	if err != nil {
		l.Error("register subadmin id failed", zap.Error(err))
		return SubadminResponse{}, err
	}

	sub := &Subadmin{
		ID:           uuid.New(),
		SubadminID:   fmt.Sprintf("SUB%05d", nextVal),
		EmployeeID:   empl.EmployeeID,
		Username:     req.Username,
		PasswordHash: string(hash),
		Permissions:  permissions,
	}

	if err := s.repo.Create(ctx, sub); err != nil {
		l.Error("register subadmin persist failed", zap.Error(err))
		return SubadminResponse{}, err
	}

	l.Info("subadmin registered",
		zap.String("subadmin_id", sub.SubadminID),
		zap.String("employee_id", sub.EmployeeID),
		zap.Int("permission_count", len(granted)),
	)
	return mapToResponse(*sub), nil
}

func (s *service) GetList(ctx context.Context, req GetListRequest) (ListResponse, error) {
	params := listquery.Params{
		Search:   req.Search,
		Page:     req.Page,
		PageSize: req.PageSize,
	}
	params.Normalize(10, "username")

	subs, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get subadmin list failed", zap.Error(err))
		return ListResponse{}, err
	}

	rows := make([]SubadminResponse, 0, len(subs))
	for _, sub := range subs {
		if !listquery.Matches(params.Search, sub.Username, sub.EmployeeID, sub.SubadminID) {
			continue
		}
		rows = append(rows, mapToResponse(sub))
	}

	total := len(rows)
	window, _ := listquery.Paginate(rows, params.Page, params.PageSize)

	return ListResponse{Subadmins: window, Total: total}, nil
}

func (s *service) Delete(ctx context.Context, subadminID string) error {
	if _, err := s.repo.FindBySubadminID(ctx, subadminID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return subadminerrors.ErrSubadminNotFound
		}
		return err
	}

	if err := s.repo.Delete(ctx, subadminID); err != nil {
		s.logger.Error("delete subadmin failed", zap.String("subadmin_id", subadminID), zap.Error(err))
		return err
	}

	s.logger.Info("subadmin deleted", zap.String("subadmin_id", subadminID))
	return nil
}

func (s *service) Authenticate(ctx context.Context, username, password string) (*Subadmin, error) {
	sub, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(sub.PasswordHash), []byte(password)); err != nil {
		return nil, err
	}
	return sub, nil
}

// PermissionFlags decodes the stored flag map. A corrupt column degrades to
// no permissions rather than failing the login.
func (sub Subadmin) PermissionFlags() map[string]int {
	out := map[string]int{}
	if len(sub.Permissions) == 0 {
		return out
	}
	if err := json.Unmarshal(sub.Permissions, &out); err != nil {
		return map[string]int{}
	}
	return out
}

func mapToResponse(sub Subadmin) SubadminResponse {
	return SubadminResponse{
		SubadminID:  sub.SubadminID,
		EmployeeID:  sub.EmployeeID,
		Username:    sub.Username,
		Permissions: sub.PermissionFlags(),
	}
}
