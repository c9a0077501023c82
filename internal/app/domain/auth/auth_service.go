package auth

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/WeberBSG/ParTea/internal/app/models"
	"github.com/WeberBSG/ParTea/internal/pkg/config"
)

// UpdateProfileParams carries the editable profile fields.
type UpdateProfileParams struct {
	Name    string          `json:"name"`
	Photo   string          `json:"photo"`
	Socials *models.Socials `json:"socials"`
}

// Service is the mocked login/profile system. There is no credential
// verification and no backing store: logging in always yields the same
// session user, and profile edits live only in memory.
type Service interface {
	Login(ctx context.Context) (models.User, string, error)
	Logout(ctx context.Context)
	CurrentUser() (models.User, bool)
	UpdateProfile(ctx context.Context, userID string, params UpdateProfileParams) (models.User, error)
}

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

type ServiceImpl struct {
	jwtConfig JWTConfig
	jwt       *JWTService
	logger    *zap.Logger

	mu   sync.RWMutex
	user *models.User
}

func NewService(cfg *config.Config, logger *zap.Logger) *ServiceImpl {
	return &ServiceImpl{
		jwtConfig: JWTConfig{
			SecretKey:       cfg.JWT.SecretKey,
			TokenExpiration: 24 * time.Hour,
		},
		jwt:    NewJWTService(),
		logger: logger,
	}
}

// JWTConfig exposes the token configuration for the auth middleware.
func (s *ServiceImpl) JWTConfig() JWTConfig {
	return s.jwtConfig
}

// Login establishes the mock session and returns the user with a signed
// session token.
func (s *ServiceImpl) Login(ctx context.Context) (models.User, string, error) {
	_, span := otel.Tracer("AuthService").Start(ctx, "Login")
	defer span.End()

	user := mockUser()

	token, err := s.jwt.GenerateToken(s.jwtConfig, user.ID, user.Email, user.Name)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to generate session token")
		s.logger.Error("Failed to generate session token", zap.Error(err))
		return models.User{}, "", err
	}

	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()

	span.SetAttributes(attribute.String("user.id", user.ID))
	s.logger.Info("Mock login", zap.String("user_id", user.ID))
	return user, token, nil
}

// Logout drops the session user.
func (s *ServiceImpl) Logout(ctx context.Context) {
	_, span := otel.Tracer("AuthService").Start(ctx, "Logout")
	defer span.End()

	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()

	s.logger.Info("Mock logout")
}

// CurrentUser returns the session user, if logged in.
func (s *ServiceImpl) CurrentUser() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// UpdateProfile edits the session user's display fields. The display name is
// normalized to title case.
func (s *ServiceImpl) UpdateProfile(ctx context.Context, userID string, params UpdateProfileParams) (models.User, error) {
	_, span := otel.Tracer("AuthService").Start(ctx, "UpdateProfile")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil || s.user.ID != userID {
		span.SetStatus(codes.Error, "No matching session user")
		return models.User{}, models.ErrUnauthenticated
	}

	if name := strings.TrimSpace(params.Name); name != "" {
		s.user.Name = cases.Title(language.English).String(name)
	}
	if params.Photo != "" {
		s.user.Photo = params.Photo
	}
	if params.Socials != nil {
		s.user.Socials = params.Socials
	}

	s.logger.Info("Profile updated", zap.String("user_id", userID))
	return *s.user, nil
}

// mockUser is the fixed identity every login yields.
func mockUser() models.User {
	return models.User{
		ID:    "u1",
		Name:  "Tea Enthusiast",
		Email: "tea@party.com",
		Photo: "https://picsum.photos/seed/user1/100/100",
		Socials: &models.Socials{
			Instagram: "partea_official",
		},
	}
}
