package middleware

import (
	"log/slog"

	deliverycontext "chess/internal/delivery/context"
	domainerrors "chess/internal/domain/errors"
	"chess/internal/domain/service"
	"chess/internal/infra/auth"
	"chess/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Auth failure reasons reported to the metrics recorder.
const (
	reasonMissingToken = "missing_token"
	reasonInvalidToken = "invalid_token"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Verifier   service.TokenVerifier
	IdentityUC usecase.IdentityUsecase
	Metrics    service.MetricsRecorder
	Logger     *slog.Logger
}

// AuthMiddleware validates bearer tokens and resolves the caller's account.
type AuthMiddleware struct {
	verifier   service.TokenVerifier
	identityUC usecase.IdentityUsecase
	metrics    service.MetricsRecorder
	logger     *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		verifier:   params.Verifier,
		identityUC: params.IdentityUC,
		metrics:    params.Metrics,
		logger:     params.Logger,
	}
}

// Authenticate verifies the bearer token and stores its claims on the context.
// It does not require the subject to be registered.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, err := auth.BearerToken(c.Request().Header)
		if err != nil || token == "" {
			m.metrics.RecordAuthFailure(reasonMissingToken)

			return errors.WithStack(domainerrors.ErrUnauthorized)
		}

		claims, err := m.verifier.Verify(c.Request().Context(), token)
		if err != nil {
			m.metrics.RecordAuthFailure(reasonInvalidToken)
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected bearer token", slog.Any("error", err))

			return errors.WithStack(domainerrors.ErrUnauthorized)
		}

		deliverycontext.SetClaims(c, claims)
		c.SetRequest(c.Request().WithContext(
			deliverycontext.WithLoggerAttrs(c.Request().Context(), slog.String("subject", claims.Subject)),
		))

		return next(c)
	}
}

// RequireAccount resolves the account linked to the token subject.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireAccount(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := deliverycontext.GetClaims(c)
		if !ok {
			return errors.WithStack(domainerrors.ErrUnauthorized)
		}

		account, err := m.identityUC.ResolveExisting(c.Request().Context(), claims.Subject)
		if err != nil {
			return err
		}

		deliverycontext.SetAccount(c, account)
		c.SetRequest(c.Request().WithContext(
			deliverycontext.WithLoggerAttrs(c.Request().Context(), slog.String("account_id", account.ID.String())),
		))

		return next(c)
	}
}
