package auth

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ipriyanshu25/office.enoylity/internal/access"
	autherrors "github.com/ipriyanshu25/office.enoylity/internal/auth/errors"
	"github.com/ipriyanshu25/office.enoylity/internal/subadmin"
)

type fakeRepo struct {
	countFn         func(ctx context.Context) (int64, error)
	createFn        func(ctx context.Context, admin *Admin) error
	findByEmailFn   func(ctx context.Context, email string) (*Admin, error)
	findByAdminIDFn func(ctx context.Context, adminID string) (*Admin, error)
	updateFn        func(ctx context.Context, admin *Admin) error
}

func (f *fakeRepo) Count(ctx context.Context) (int64, error)            { return f.countFn(ctx) }
func (f *fakeRepo) Create(ctx context.Context, admin *Admin) error      { return f.createFn(ctx, admin) }
func (f *fakeRepo) FindByEmail(ctx context.Context, email string) (*Admin, error) {
	return f.findByEmailFn(ctx, email)
}
func (f *fakeRepo) FindByAdminID(ctx context.Context, adminID string) (*Admin, error) {
	return f.findByAdminIDFn(ctx, adminID)
}
func (f *fakeRepo) Update(ctx context.Context, admin *Admin) error { return f.updateFn(ctx, admin) }

type fakeSubadmins struct {
	authFn func(ctx context.Context, username, password string) (*subadmin.Subadmin, error)
}

func (f *fakeSubadmins) Authenticate(ctx context.Context, username, password string) (*subadmin.Subadmin, error) {
	return f.authFn(ctx, username, password)
}

func adminWithPassword(t *testing.T, email, password string) *Admin {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return &Admin{AdminID: "ADM00001", Email: email, EmployeeID: "EMC00001", PasswordHash: string(hash)}
}

func TestService_Login_Admin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	repo := &fakeRepo{findByEmailFn: func(ctx context.Context, email string) (*Admin, error) {
		return adminWithPassword(t, email, "ownerpass"), nil
	}}

	svc := NewService(repo, &fakeSubadmins{})

	resp, err := svc.Login(context.Background(), LoginRequest{Email: "owner@enoylity.com", Password: "ownerpass"})
	assert.NoError(t, err)
	assert.Equal(t, access.RoleAdmin, resp.Role)
	assert.Equal(t, "ADM00001", resp.AdminID)
	assert.Empty(t, resp.Permissions)

	parsed, err := jwt.Parse(resp.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	assert.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, "ADM00001", claims["sub"])
	assert.Equal(t, access.RoleAdmin, claims["role"])
}

func TestService_Login_AdminWrongPassword(t *testing.T) {
	repo := &fakeRepo{findByEmailFn: func(ctx context.Context, email string) (*Admin, error) {
		return adminWithPassword(t, email, "ownerpass"), nil
	}}

	svc := NewService(repo, &fakeSubadmins{})

	_, err := svc.Login(context.Background(), LoginRequest{Email: "owner@enoylity.com", Password: "guess"})
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestService_Login_SubadminFallthrough(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	repo := &fakeRepo{findByEmailFn: func(ctx context.Context, email string) (*Admin, error) {
		return nil, gorm.ErrRecordNotFound
	}}

	permissions, _ := json.Marshal(map[string]int{access.PermManageKPI: 1})
	subs := &fakeSubadmins{authFn: func(ctx context.Context, username, password string) (*subadmin.Subadmin, error) {
		return &subadmin.Subadmin{
			SubadminID:  "SUB00002",
			EmployeeID:  "EMC00002",
			Username:    username,
			Permissions: permissions,
		}, nil
	}}

	svc := NewService(repo, subs)

	resp, err := svc.Login(context.Background(), LoginRequest{Email: "ops.manager", Password: "s3cretpass"})
	assert.NoError(t, err)
	assert.Equal(t, access.RoleSubadmin, resp.Role)
	assert.Equal(t, "SUB00002", resp.SubadminID)
	assert.Equal(t, 1, resp.Permissions[access.PermManageKPI])
	assert.NotEmpty(t, resp.Token)
}

func TestService_Login_UnknownActor(t *testing.T) {
	repo := &fakeRepo{findByEmailFn: func(ctx context.Context, email string) (*Admin, error) {
		return nil, gorm.ErrRecordNotFound
	}}
	subs := &fakeSubadmins{authFn: func(ctx context.Context, username, password string) (*subadmin.Subadmin, error) {
		return nil, gorm.ErrRecordNotFound
	}}

	svc := NewService(repo, subs)

	_, err := svc.Login(context.Background(), LoginRequest{Email: "nobody", Password: "nope"})
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestService_UpdateAdmin_NothingToUpdate(t *testing.T) {
	svc := NewService(&fakeRepo{}, &fakeSubadmins{})

	err := svc.UpdateAdmin(context.Background(), UpdateAdminRequest{AdminID: "ADM00001"})
	assert.ErrorIs(t, err, autherrors.ErrNothingToUpdate)
}

func TestService_UpdateAdmin_DuplicateEmail(t *testing.T) {
	repo := &fakeRepo{
		findByAdminIDFn: func(ctx context.Context, adminID string) (*Admin, error) {
			return &Admin{AdminID: adminID, Email: "owner@enoylity.com"}, nil
		},
		findByEmailFn: func(ctx context.Context, email string) (*Admin, error) {
			return &Admin{AdminID: "ADM00002", Email: email}, nil
		},
	}

	svc := NewService(repo, &fakeSubadmins{})

	err := svc.UpdateAdmin(context.Background(), UpdateAdminRequest{AdminID: "ADM00001", Email: "taken@enoylity.com"})
	assert.ErrorIs(t, err, autherrors.ErrDuplicateEmail)
}

func TestService_UpdateAdmin_RehashesPassword(t *testing.T) {
	stored := adminWithPassword(t, "owner@enoylity.com", "oldpass")
	var updated Admin
	repo := &fakeRepo{
		findByAdminIDFn: func(ctx context.Context, adminID string) (*Admin, error) { return stored, nil },
		updateFn:        func(ctx context.Context, admin *Admin) error { updated = *admin; return nil },
	}

	svc := NewService(repo, &fakeSubadmins{})

	err := svc.UpdateAdmin(context.Background(), UpdateAdminRequest{AdminID: "ADM00001", Password: "newpass1"})
	assert.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("newpass1")))
}

func TestService_EnsureDefaultAdmin(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "owner@enoylity.com")
	t.Setenv("ADMIN_PASSWORD", "ownerpass")

	var seeded *Admin
	repo := &fakeRepo{
		countFn:  func(ctx context.Context) (int64, error) { return 0, nil },
		createFn: func(ctx context.Context, admin *Admin) error { seeded = admin; return nil },
	}

	svc := NewService(repo, &fakeSubadmins{})

	assert.NoError(t, svc.EnsureDefaultAdmin(context.Background()))
	assert.NotNil(t, seeded)
	assert.Equal(t, "ADM00001", seeded.AdminID)
	assert.Equal(t, "owner@enoylity.com", seeded.Email)
}

func TestService_EnsureDefaultAdmin_SkipsWhenPresent(t *testing.T) {
	repo := &fakeRepo{
		countFn: func(ctx context.Context) (int64, error) { return 1, nil },
		createFn: func(ctx context.Context, admin *Admin) error {
			t.Fatal("should not create a second admin")
			return nil
		},
	}

	svc := NewService(repo, &fakeSubadmins{})
	assert.NoError(t, svc.EnsureDefaultAdmin(context.Background()))
}
