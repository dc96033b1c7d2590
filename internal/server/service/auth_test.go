package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/addiskitchen/platform/internal/server/domain"
	"github.com/addiskitchen/platform/internal/server/dto"
	"github.com/addiskitchen/platform/pkg/config"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	CreateFunc        func(ctx context.Context, user *domain.User) error
	GetByIDFunc       func(ctx context.Context, id string) (*domain.User, error)
	GetByEmailFunc    func(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmailFunc func(ctx context.Context, email string) (bool, error)
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:         "test-secret",
		AccessTokenTTL: time.Hour,
		Issuer:         "addiskitchen-test",
	}
}

func testUser(password string, active bool) *domain.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return &domain.User{
		ID:           "user-1",
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		Name:         "Admin",
		Role:         domain.RoleAdmin,
		IsActive:     active,
	}
}

func TestAuthService_Signup(t *testing.T) {
	var created *domain.User
	repo := &MockUserRepository{
		CreateFunc: func(ctx context.Context, user *domain.User) error {
			created = user
			return nil
		},
	}
	svc := NewAuthService(repo, testJWTConfig())

	result, err := svc.Signup(context.Background(), &dto.SignupRequest{
		Email:    "admin@example.com",
		Password: "s3cret-pass",
		Name:     "Admin",
	}, domain.RoleAdmin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Token == "" {
		t.Error("expected a signed token")
	}
	if created == nil || created.Role != domain.RoleAdmin {
		t.Fatalf("unexpected created user: %+v", created)
	}
	if created.PasswordHash == "s3cret-pass" {
		t.Error("password must not be stored in the clear")
	}
	if !created.IsActive {
		t.Error("new accounts start active")
	}

	claims, err := svc.ValidateToken(result.Token)
	if err != nil {
		t.Fatalf("issued token failed validation: %v", err)
	}
	if claims.UserID != created.ID {
		t.Errorf("claims.UserID = %q, want %q", claims.UserID, created.ID)
	}
	if claims.Role != domain.RoleAdmin {
		t.Errorf("claims.Role = %q, want admin", claims.Role)
	}
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	repo := &MockUserRepository{
		ExistsByEmailFunc: func(ctx context.Context, email string) (bool, error) {
			return true, nil
		},
	}
	svc := NewAuthService(repo, testJWTConfig())

	_, err := svc.Signup(context.Background(), &dto.SignupRequest{
		Email:    "admin@example.com",
		Password: "s3cret-pass",
		Name:     "Admin",
	}, domain.RoleAdmin)
	if !errors.Is(err, domain.ErrUserAlreadyExists) {
		t.Errorf("expected ErrUserAlreadyExists, got %v", err)
	}
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name     string
		user     *domain.User
		password string
		wantErr  error
	}{
		{
			name:     "valid credentials",
			user:     testUser("correct-horse", true),
			password: "correct-horse",
		},
		{
			name:     "unknown email",
			user:     nil,
			password: "whatever",
			wantErr:  domain.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			user:     testUser("correct-horse", true),
			password: "battery-staple",
			wantErr:  domain.ErrInvalidCredentials,
		},
		{
			name:     "inactive account",
			user:     testUser("correct-horse", false),
			password: "correct-horse",
			wantErr:  domain.ErrUserInactive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockUserRepository{
				GetByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
					return tt.user, nil
				},
			}
			svc := NewAuthService(repo, testJWTConfig())

			result, err := svc.Login(context.Background(), &dto.LoginRequest{
				Email:    "admin@example.com",
				Password: tt.password,
			})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Token == "" {
				t.Error("expected a signed token")
			}
			if result.User.ID != tt.user.ID {
				t.Errorf("user id = %q, want %q", result.User.ID, tt.user.ID)
			}
		})
	}
}

func TestAuthService_ValidateToken_WrongSecret(t *testing.T) {
	repo := &MockUserRepository{}
	issuer := NewAuthService(repo, config.JWTConfig{
		Secret:         "issuer-secret",
		AccessTokenTTL: time.Hour,
		Issuer:         "addiskitchen-test",
	})
	verifier := NewAuthService(repo, testJWTConfig())

	result, err := issuer.Signup(context.Background(), &dto.SignupRequest{
		Email:    "admin@example.com",
		Password: "s3cret-pass",
		Name:     "Admin",
	}, domain.RoleAdmin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := verifier.ValidateToken(result.Token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthService_ValidateToken_Garbage(t *testing.T) {
	svc := NewAuthService(&MockUserRepository{}, testJWTConfig())
	if _, err := svc.ValidateToken("not-a-token"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthService_GetUser_NotFound(t *testing.T) {
	svc := NewAuthService(&MockUserRepository{}, testJWTConfig())
	if _, err := svc.GetUser(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
