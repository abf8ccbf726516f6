package auth

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ipriyanshu25/office.enoylity/internal/access"
	autherrors "github.com/ipriyanshu25/office.enoylity/internal/auth/errors"
	"github.com/ipriyanshu25/office.enoylity/internal/subadmin"
)

const tokenTTL = 24 * time.Hour

// SubadminAuthenticator lets the login fall through to subadmin credentials.
// subadmin.Service satisfies it.
type SubadminAuthenticator interface {
	Authenticate(ctx context.Context, username, password string) (*subadmin.Subadmin, error)
}

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	UpdateAdmin(ctx context.Context, req UpdateAdminRequest) error

	// EnsureDefaultAdmin seeds the owner login from ADMIN_EMAIL and
	// ADMIN_PASSWORD when the table is empty.
	EnsureDefaultAdmin(ctx context.Context) error
}

type service struct {
	repo      Repository
	subadmins SubadminAuthenticator
	logger    *zap.Logger
}

func NewService(repo Repository, subadmins SubadminAuthenticator, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, subadmins: subadmins, logger: l}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	// Admin first; the same form carries subadmin usernames.
	admin, err := s.repo.FindByEmail(ctx, req.Email)
	switch {
	case err == nil:
		if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)) != nil {
			return LoginResponse{}, autherrors.ErrInvalidCredentials
		}

		token, err := s.issueToken(admin.AdminID, access.RoleAdmin, admin.EmployeeID, nil)
		if err != nil {
			return LoginResponse{}, err
		}

		s.logger.Info("admin login", zap.String("admin_id", admin.AdminID))
		return LoginResponse{
			Role:       access.RoleAdmin,
			AdminID:    admin.AdminID,
			EmployeeID: admin.EmployeeID,
			Token:      token,
		}, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		sub, err := s.subadmins.Authenticate(ctx, req.Email, req.Password)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
				return LoginResponse{}, autherrors.ErrInvalidCredentials
			}
			s.logger.Error("subadmin login failed", zap.Error(err))
			return LoginResponse{}, autherrors.ErrInvalidCredentials
		}

		flags := sub.PermissionFlags()
		token, err := s.issueToken(sub.SubadminID, access.RoleSubadmin, sub.EmployeeID, flags)
		if err != nil {
			return LoginResponse{}, err
		}

		s.logger.Info("subadmin login",
			zap.String("subadmin_id", sub.SubadminID),
			zap.String("employee_id", sub.EmployeeID),
		)
		return LoginResponse{
			Role:        access.RoleSubadmin,
			SubadminID:  sub.SubadminID,
			Permissions: flags,
			EmployeeID:  sub.EmployeeID,
			Token:       token,
		}, nil

	default:
		s.logger.Error("admin lookup failed", zap.Error(err))
		return LoginResponse{}, err
	}
}

func (s *service) issueToken(actorID, role, employeeID string, permissions map[string]int) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":         actorID,
		"role":        role,
		"employee_id": employeeID,
		"iat":         now.Unix(),
		"exp":         now.Add(tokenTTL).Unix(),
	}
	if permissions != nil {
		claims["permissions"] = permissions
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		s.logger.Error("token signing failed", zap.Error(err))
		return "", err
	}
	return signed, nil
}

func (s *service) UpdateAdmin(ctx context.Context, req UpdateAdminRequest) error {
	if req.Email == "" && req.Password == "" {
		return autherrors.ErrNothingToUpdate
	}

	admin, err := s.repo.FindByAdminID(ctx, req.AdminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return autherrors.ErrAdminNotFound
		}
		return err
	}

	if req.Email != "" && req.Email != admin.Email {
		if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
			return autherrors.ErrDuplicateEmail
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		admin.Email = req.Email
	}

	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin.PasswordHash = string(hash)
	}

	if err := s.repo.Update(ctx, admin); err != nil {
		s.logger.Error("admin update failed", zap.String("admin_id", req.AdminID), zap.Error(err))
		return err
	}

	s.logger.Info("admin credentials updated", zap.String("admin_id", req.AdminID))
	return nil
}

func (s *service) EnsureDefaultAdmin(ctx context.Context) error {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		s.logger.Warn("no admin seeded: ADMIN_EMAIL / ADMIN_PASSWORD not set")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &Admin{
		ID:           uuid.New(),
		AdminID:      "ADM00001",
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(ctx, admin); err != nil {
		return err
	}

	s.logger.Info("default admin seeded", zap.String("admin_id", admin.AdminID))
	return nil
}
