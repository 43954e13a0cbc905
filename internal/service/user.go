// internal/service/user.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/rushilcs/data-viewer/internal/auth"
	"github.com/rushilcs/data-viewer/internal/config"
	"github.com/rushilcs/data-viewer/internal/domain"
	"github.com/rushilcs/data-viewer/internal/model"
	"github.com/rushilcs/data-viewer/internal/repository"
)

type UserService struct {
	repo           repository.UserRepositoryIface
	orgRepo        repository.OrganizationRepositoryIface
	passwordHasher *auth.PasswordHasher
	tokenManager   *auth.TokenManager
	auditService   *AuditService
	rateLimiter    *RateLimiter
	config         *config.Config
	validate       *validator.Validate
}

func NewUserService(
	repo repository.UserRepositoryIface,
	orgRepo repository.OrganizationRepositoryIface,
	passwordHasher *auth.PasswordHasher,
	tokenManager *auth.TokenManager,
	auditService *AuditService,
	rateLimiter *RateLimiter,
	config *config.Config,
) *UserService {
	return &UserService{
		repo:           repo,
		orgRepo:        orgRepo,
		passwordHasher: passwordHasher,
		tokenManager:   tokenManager,
		auditService:   auditService,
		rateLimiter:    rateLimiter,
		config:         config,
		validate:       validator.New(),
	}
}

type SignupInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type SignupOutput struct {
	User            *model.User `json:"user"`
	Token           string      `json:"token"`
	ConvertedShares int         `json:"converted_shares"`
}

// Signup registers a new viewer. The home organization is chosen by, in
// order: a pending share addressed to the email, the configured default
// organization, the oldest organization in the system. Any pending shares
// for the email inside that organization become real grants in the same
// transaction that creates the user.
func (s *UserService) Signup(ctx context.Context, input SignupInput) (*SignupOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("checking existing user: %w", err)
	}

	orgID, err := s.resolveHomeOrg(ctx, email)
	if err != nil {
		return nil, err
	}

	hash, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		OrgID:        orgID,
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleViewer,
		IsActive:     true,
	}
	converted, err := s.repo.CreateWithPendingShares(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := s.tokenManager.Generate(user.ID.String(), user.OrgID.String(), string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	s.auditService.Record(ctx, user.OrgID, user.ID, AuditUserSignup, map[string]interface{}{
		"email":            user.Email,
		"converted_shares": converted,
	})

	return &SignupOutput{User: user, Token: token, ConvertedShares: converted}, nil
}

func (s *UserService) resolveHomeOrg(ctx context.Context, email string) (uuid.UUID, error) {
	orgID, found, err := s.orgRepo.OrgForPendingEmail(ctx, email)
	if err != nil {
		return uuid.Nil, fmt.Errorf("resolving pending share org: %w", err)
	}
	if found {
		return orgID, nil
	}

	if s.config.DefaultOrgID != "" {
		id, err := uuid.Parse(s.config.DefaultOrgID)
		if err != nil {
			return uuid.Nil, fmt.Errorf("parsing default org id: %w", err)
		}
		if _, err := s.orgRepo.FindByID(ctx, id); err != nil {
			return uuid.Nil, fmt.Errorf("loading default org: %w", err)
		}
		return id, nil
	}

	// FindFirst already reports an empty table as ErrNoOrganization.
	org, err := s.orgRepo.FindFirst(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	return org.ID, nil
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginOutput struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

func (s *UserService) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if !s.rateLimiter.Allow("login:"+email, s.config.RateLimit.LoginPerMinute) {
		return nil, domain.ErrRateLimited
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, domain.ErrInvalidCredentials
	}

	verified, err := s.passwordHasher.Verify(input.Password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verifying password: %w", err)
	}
	if !verified {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokenManager.Generate(user.ID.String(), user.OrgID.String(), string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	s.auditService.Record(ctx, user.OrgID, user.ID, AuditUserLogin, map[string]interface{}{
		"email": user.Email,
	})

	return &LoginOutput{User: user, Token: token}, nil
}

// Me returns the authenticated user's own record.
func (s *UserService) Me(ctx context.Context, userID, orgID uuid.UUID) (*model.User, error) {
	return s.repo.FindActiveByID(ctx, userID, orgID)
}
