package middleware

import (
	"strings"

	"columbus/config"
	deliverycontext "columbus/internal/delivery/context"
	"columbus/internal/domain/constants"
	"columbus/internal/domain/entity"
	domainerrors "columbus/internal/domain/errors"
	"columbus/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const bearerPrefix = "bearer "

// AuthMiddleware resolves the bearer token into the caller's identity.
type AuthMiddleware struct {
	userUC usecase.UserUsecase
	cfg    *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(userUC usecase.UserUsecase, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{userUC: userUC, cfg: cfg}
}

// Authenticate extracts the claims, resolves them into a stored user and
// places the identity on the request.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, err := bearerToken(c)
		if err != nil {
			return err
		}

		claims, err := m.parseClaims(tokenString)
		if err != nil {
			return domainerrors.ErrAuth.WithMessage("Invalid or expired token").WithDetails(err.Error())
		}

		identity, err := m.userUC.ResolveIdentity(c.Request().Context(), claims)
		if err != nil {
			return errors.WithStack(err)
		}

		deliverycontext.SetIdentity(c, identity)

		return next(c)
	}
}

// RequireRole must be used after Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := deliverycontext.GetIdentity(c)
			if identity == nil {
				return domainerrors.ErrAuth
			}
			if !identity.HasRole(role) {
				return domainerrors.ErrForbidden.WithMessage("Permission denied: requires the " + role.String() + " role")
			}

			return next(c)
		}
	}
}

// parseClaims verifies the token in hmac mode. In gateway mode the API
// gateway has already verified the signature; the registered time claims and
// issuer are still checked.
func (m *AuthMiddleware) parseClaims(tokenString string) (*entity.Claims, error) {
	mapClaims := jwt.MapClaims{}

	var opts []jwt.ParserOption
	if m.cfg.Auth.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.cfg.Auth.Issuer))
	}

	switch m.cfg.Auth.Mode {
	case constants.AuthModeHMAC:
		opts = append(opts, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

		token, err := jwt.ParseWithClaims(tokenString, mapClaims, func(*jwt.Token) (any, error) {
			return []byte(m.cfg.Auth.HMACSecret), nil
		}, opts...)
		if err != nil {
			return nil, errors.Wrap(err, "failed to verify token")
		}
		if !token.Valid {
			return nil, errors.New("token is not valid")
		}
	default:
		if _, _, err := jwt.NewParser().ParseUnverified(tokenString, mapClaims); err != nil {
			return nil, errors.Wrap(err, "failed to parse token")
		}
		if err := jwt.NewValidator(opts...).Validate(mapClaims); err != nil {
			return nil, errors.Wrap(err, "failed to validate token claims")
		}
	}

	subject, _ := mapClaims.GetSubject()
	claims := &entity.Claims{
		Subject:  subject,
		Email:    stringClaim(mapClaims, "email"),
		Username: stringClaim(mapClaims, "cognito:username"),
	}
	if claims.Username == "" {
		claims.Username = stringClaim(mapClaims, "username")
	}

	groups, _ := mapClaims["cognito:groups"].([]any)
	for _, g := range groups {
		if group, ok := g.(string); ok {
			claims.Groups = append(claims.Groups, group)
		}
	}

	return claims, nil
}

func stringClaim(claims jwt.MapClaims, name string) string {
	value, _ := claims[name].(string)

	return value
}

// bearerToken returns the token of a "Bearer" Authorization header.
func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return "", domainerrors.ErrAuth.WithMessage("Authorization header is missing")
	}
	if len(authHeader) <= len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
		return "", domainerrors.ErrAuth.WithMessage("Invalid token format, must be Bearer token")
	}

	return strings.TrimSpace(authHeader[len(bearerPrefix):]), nil
}
