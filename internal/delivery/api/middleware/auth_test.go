package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "chess/internal/delivery/context"
	"chess/internal/domain/entity"
	domainerrors "chess/internal/domain/errors"
	"chess/internal/domain/service"
	mockService "chess/internal/mocks/service"
	mockUsecase "chess/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authFixtures struct {
	middleware *AuthMiddleware
	verifier   *mockService.MockTokenVerifier
	identityUC *mockUsecase.MockIdentityUsecase
	metrics    *mockService.MockMetricsRecorder
}

func createTestAuthMiddleware(t *testing.T) authFixtures {
	verifier := mockService.NewMockTokenVerifier(t)
	identityUC := mockUsecase.NewMockIdentityUsecase(t)
	metrics := mockService.NewMockMetricsRecorder(t)

	return authFixtures{
		middleware: NewAuthMiddleware(AuthMiddlewareParams{
			Verifier:   verifier,
			IdentityUC: identityUC,
			Metrics:    metrics,
			Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		}),
		verifier:   verifier,
		identityUC: identityUC,
		metrics:    metrics,
	}
}

func newAuthContext(authorization string) echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Run("valid token stores claims", func(t *testing.T) {
		fx := createTestAuthMiddleware(t)
		c := newAuthContext("Bearer good")
		claims := &service.Claims{Subject: "auth0|x", Email: "a@b.com"}
		fx.verifier.EXPECT().Verify(mock.Anything, "good").Return(claims, nil)

		called := false
		err := fx.middleware.Authenticate(func(c echo.Context) error {
			called = true
			got, ok := deliverycontext.GetClaims(c)
			assert.True(t, ok)
			assert.Equal(t, claims, got)

			return nil
		})(c)

		require.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("missing header", func(t *testing.T) {
		fx := createTestAuthMiddleware(t)
		fx.metrics.EXPECT().RecordAuthFailure(reasonMissingToken).Return()

		err := fx.middleware.Authenticate(func(echo.Context) error {
			t.Fatal("next must not run")

			return nil
		})(newAuthContext(""))

		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("rejected token", func(t *testing.T) {
		fx := createTestAuthMiddleware(t)
		fx.verifier.EXPECT().Verify(mock.Anything, "bad").Return(nil, errors.Wrap(service.ErrInvalidToken, "expired"))
		fx.metrics.EXPECT().RecordAuthFailure(reasonInvalidToken).Return()

		err := fx.middleware.Authenticate(func(echo.Context) error { return nil })(newAuthContext("Bearer bad"))

		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})
}

func TestAuthMiddleware_RequireAccount(t *testing.T) {
	t.Run("registered subject", func(t *testing.T) {
		fx := createTestAuthMiddleware(t)
		c := newAuthContext("")
		deliverycontext.SetClaims(c, &service.Claims{Subject: "auth0|x"})
		account := &entity.Account{ID: uuid.New(), Name: "alice"}
		fx.identityUC.EXPECT().ResolveExisting(mock.Anything, "auth0|x").Return(account, nil)

		err := fx.middleware.RequireAccount(func(c echo.Context) error {
			got, ok := deliverycontext.GetAccount(c)
			assert.True(t, ok)
			assert.Equal(t, account, got)

			return nil
		})(c)

		require.NoError(t, err)
	})

	t.Run("unregistered subject", func(t *testing.T) {
		fx := createTestAuthMiddleware(t)
		c := newAuthContext("")
		deliverycontext.SetClaims(c, &service.Claims{Subject: "auth0|nobody"})
		fx.identityUC.EXPECT().ResolveExisting(mock.Anything, "auth0|nobody").
			Return(nil, errors.WithStack(domainerrors.ErrIdentityNotRegistered))

		err := fx.middleware.RequireAccount(func(echo.Context) error { return nil })(c)

		assert.ErrorIs(t, err, domainerrors.ErrIdentityNotRegistered)
	})

	t.Run("without claims", func(t *testing.T) {
		fx := createTestAuthMiddleware(t)

		err := fx.middleware.RequireAccount(func(echo.Context) error { return nil })(newAuthContext(""))

		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})
}

func TestAuthMiddleware_ScopesRequestLogger(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	buf := &bytes.Buffer{}
	c := newAuthContext("Bearer good")
	c.SetRequest(c.Request().WithContext(
		deliverycontext.WithLogger(c.Request().Context(), slog.New(slog.NewTextHandler(buf, nil))),
	))
	account := &entity.Account{ID: uuid.New(), Name: "alice"}
	fx.verifier.EXPECT().Verify(mock.Anything, "good").Return(&service.Claims{Subject: "auth0|x"}, nil)
	fx.identityUC.EXPECT().ResolveExisting(mock.Anything, "auth0|x").Return(account, nil)

	handler := fx.middleware.Authenticate(fx.middleware.RequireAccount(func(c echo.Context) error {
		deliverycontext.GetLogger(c.Request().Context()).Info("handled")

		return nil
	}))

	require.NoError(t, handler(c))
	assert.Contains(t, buf.String(), "subject=auth0|x")
	assert.Contains(t, buf.String(), "account_id="+account.ID.String())
}
