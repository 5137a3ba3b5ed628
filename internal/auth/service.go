package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/aloush-dev-bom/Tapay-Backend-Test/internal/users"
	pkgauth "github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/auth"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/auth/session"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/config"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/db"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/db/models"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/enums"
	pkgerrors "github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/errors"
	"github.com/aloush-dev-bom/Tapay-Backend-Test/pkg/security"
)

const minPasswordLength = 8

type sessionManager interface {
	Generate(ctx context.Context, accessID string) (string, error)
	Rotate(ctx context.Context, oldAccessID, provided string) (string, string, error)
	Revoke(ctx context.Context, accessID string) error
}

// Service implements registration, login and the refresh-token lifecycle.
type Service interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, input LoginInput) (*AuthResult, error)
	Refresh(ctx context.Context, input RefreshInput) (*AuthResult, error)
	Logout(ctx context.Context, accessToken string) error
}

type service struct {
	repo        users.Repository
	sessions    sessionManager
	jwtCfg      config.JWTConfig
	passwordCfg config.PasswordConfig
	now         func() time.Time
}

// NewService builds an auth service with the required dependencies.
func NewService(repo users.Repository, sessions sessionManager, jwtCfg config.JWTConfig, passwordCfg config.PasswordConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("users repository required")
	}
	if sessions == nil {
		return nil, fmt.Errorf("session manager required")
	}
	return &service{
		repo:        repo,
		sessions:    sessions,
		jwtCfg:      jwtCfg,
		passwordCfg: passwordCfg,
		now:         time.Now,
	}, nil
}

func (s *service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}
	if len(input.Password) < minPasswordLength {
		return nil, pkgerrors.Newf(pkgerrors.CodeValidation, "password must be at least %d characters", minPasswordLength)
	}
	if input.Password != input.PasswordConfirmation {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "passwords do not match")
	}
	fullName := strings.TrimSpace(input.FullName)
	if fullName == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "full name is required")
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, pkgerrors.Newf(pkgerrors.CodeConflict, "email %s is already registered", email)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check email")
	}

	role, err := s.repo.FindRoleByName(ctx, strings.TrimSpace(input.RoleName))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Newf(pkgerrors.CodeValidation, "invalid role %q", input.RoleName)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load role")
	}

	if role.RequiresMerchant {
		if input.MerchantID == nil {
			return nil, pkgerrors.Newf(pkgerrors.CodeValidation, "role %q requires a merchant", role.Name)
		}
		if _, err := s.repo.FindMerchant(ctx, *input.MerchantID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, pkgerrors.Newf(pkgerrors.CodeNotFound, "merchant %s not found", *input.MerchantID)
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load merchant")
		}
	}

	hash, err := security.HashPassword(input.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	user := &models.User{
		Email:        email,
		FullName:     fullName,
		PasswordHash: hash,
		IsActive:     true,
		PhoneNumber:  input.PhoneNumber,
		RoleID:       &role.ID,
	}
	if role.RequiresMerchant {
		user.MerchantID = input.MerchantID
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.Newf(pkgerrors.CodeConflict, "email %s is already registered", email)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create user")
	}
	created.Role = role

	return s.issueSession(ctx, created)
}

func (s *service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email and password are required")
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load user")
	}
	if !user.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "account is disabled")
	}

	ok, err := security.VerifyPassword(input.Password, user.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !ok {
		now := s.now()
		user.FailedLoginAttempts++
		user.LastFailedLogin = &now
		if saveErr := s.repo.Save(ctx, user); saveErr != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, saveErr, "record failed login")
		}
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
	}

	now := s.now()
	user.FailedLoginAttempts = 0
	user.LastFailedLogin = nil
	user.LastLogin = &now
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "record login")
	}

	return s.issueSession(ctx, user)
}

func (s *service) Refresh(ctx context.Context, input RefreshInput) (*AuthResult, error) {
	if strings.TrimSpace(input.RefreshToken) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "refresh token is required")
	}

	claims, err := pkgauth.ParseAccessTokenAllowExpired(s.jwtCfg, input.AccessToken)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid access token")
	}

	newAccessID, newRefresh, err := s.sessions.Rotate(ctx, claims.ID, input.RefreshToken)
	if err != nil {
		if errors.Is(err, session.ErrInvalidRefreshToken) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid refresh token")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "rotate session")
	}

	user, err := s.repo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "account no longer exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load user")
	}
	if !user.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "account is disabled")
	}

	accessToken, err := s.mintToken(user, newAccessID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{
		AccessToken:  accessToken,
		RefreshToken: newRefresh,
		User:         users.ToProfileView(user),
	}, nil
}

func (s *service) Logout(ctx context.Context, accessToken string) error {
	claims, err := pkgauth.ParseAccessTokenAllowExpired(s.jwtCfg, accessToken)
	if err != nil {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid access token")
	}
	if err := s.sessions.Revoke(ctx, claims.ID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "revoke session")
	}
	return nil
}

func (s *service) issueSession(ctx context.Context, user *models.User) (*AuthResult, error) {
	accessID := session.NewAccessID()

	refreshToken, err := s.sessions.Generate(ctx, accessID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create session")
	}

	accessToken, err := s.mintToken(user, accessID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         users.ToProfileView(user),
	}, nil
}

func (s *service) mintToken(user *models.User, accessID string) (string, error) {
	roleName := enums.RoleName("")
	if user.Role != nil {
		roleName = enums.RoleName(user.Role.Name)
	}

	token, err := pkgauth.MintAccessToken(s.jwtCfg, s.now(), pkgauth.AccessTokenPayload{
		UserID:     user.ID,
		Role:       roleName,
		MerchantID: user.MerchantID,
		IsStaff:    user.IsStaff,
		JTI:        accessID,
	})
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint access token")
	}
	return token, nil
}
