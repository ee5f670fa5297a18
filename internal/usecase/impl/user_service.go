// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "columbus/internal/delivery/context"
	"columbus/internal/domain/entity"
	domainerrors "columbus/internal/domain/errors"
	"columbus/internal/domain/repository"
	"columbus/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultPreferredCurrency = "USD"
	defaultPreferredLanguage = "en"
)

type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
	now      func() time.Time
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
		now:      time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ResolveIdentity maps identity-provider claims onto a stored user.
func (srv *userService) ResolveIdentity(ctx context.Context, claims *entity.Claims) (*entity.Identity, error) {
	if claims == nil || strings.TrimSpace(claims.Subject) == "" {
		return nil, domainerrors.ErrAuth.WithDetails("token has no subject")
	}
	if strings.TrimSpace(claims.Email) == "" {
		return nil, domainerrors.ErrAuth.WithDetails("token has no email claim")
	}

	username := claims.Username
	if username == "" {
		username = claims.Subject
	}

	loginAt := srv.now().UTC()
	user, err := srv.userRepo.UpsertBySubject(ctx, &entity.User{
		Subject:           claims.Subject,
		Email:             claims.Email,
		Username:          username,
		PreferredCurrency: defaultPreferredCurrency,
		PreferredLanguage: defaultPreferredLanguage,
		IsActive:          true,
		LastLoginAt:       &loginAt,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve user")
	}

	if !user.IsActive {
		srv.log(ctx).Warn("Inactive user attempted access", slog.String("userID", user.ID.String()))

		return nil, domainerrors.ErrAuth.WithMessage("User account is inactive")
	}

	return &entity.Identity{
		UserID:   user.ID,
		Subject:  user.Subject,
		Email:    user.Email,
		Username: user.Username,
		Roles:    entity.RolesFromGroups(claims.Groups),
	}, nil
}
