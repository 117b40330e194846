package handler

import (
	"log/slog"
	"net/http"
	"time"

	"chess/internal/delivery/api/response"
	"chess/internal/delivery/api/validator"
	deliverycontext "chess/internal/delivery/context"
	"chess/internal/domain/entity"
	"chess/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	IdentityUC usecase.IdentityUsecase
	AccountUC  usecase.AccountUsecase
	Logger     *slog.Logger
}

// AccountHandler serves registration and the /api/users resource.
type AccountHandler struct {
	identityUC usecase.IdentityUsecase
	accountUC  usecase.AccountUsecase
	logger     *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		identityUC: params.IdentityUC,
		accountUC:  params.AccountUC,
		logger:     params.Logger,
	}
}

// RegisterRequest optionally overrides the display name taken from the token.
type RegisterRequest struct {
	Name string `json:"name" validate:"omitempty,min=2,max=50"`
}

// UpdateAccountRequest represents the request body for updating an account
type UpdateAccountRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=2,max=50"`
	Email *string `json:"email" validate:"omitempty,email"`
}

// AccountResponse is the public representation of an account.
type AccountResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toAccountResponse(account *entity.Account) *AccountResponse {
	return &AccountResponse{
		ID:        account.ID,
		Name:      account.Name,
		Email:     account.Email,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}

// Register links the token subject to a new account.
func (h *AccountHandler) Register(c echo.Context) error {
	claims, ok := deliverycontext.GetClaims(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing or invalid bearer token")
	}

	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Input validation failed", validator.Details(err))
	}

	account, err := h.identityUC.ResolveOrRegister(c.Request().Context(), &usecase.RegisterInput{
		Subject:      claims.Subject,
		Email:        claims.Email,
		Name:         claims.Name,
		Nickname:     claims.Nickname,
		GivenName:    claims.GivenName,
		NameOverride: req.Name,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toAccountResponse(account))
}

// Me returns the caller's own account.
func (h *AccountHandler) Me(c echo.Context) error {
	account, ok := deliverycontext.GetAccount(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing or invalid bearer token")
	}

	return response.Success(c, http.StatusOK, toAccountResponse(account))
}

// GetAccount returns any account by id.
func (h *AccountHandler) GetAccount(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	account, err := h.accountUC.GetAccount(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAccountResponse(account))
}

// ListAccounts returns every account.
func (h *AccountHandler) ListAccounts(c echo.Context) error {
	accounts, err := h.accountUC.ListAccounts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]*AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		out = append(out, toAccountResponse(account))
	}

	return response.Success(c, http.StatusOK, out)
}

// UpdateAccount changes the caller's own name or email.
func (h *AccountHandler) UpdateAccount(c echo.Context) error {
	caller, ok := deliverycontext.GetAccount(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing or invalid bearer token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	var req UpdateAccountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid account input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Input validation failed", validator.Details(err))
	}

	account, err := h.accountUC.UpdateAccount(c.Request().Context(), caller, id, &usecase.UpdateAccountInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAccountResponse(account))
}

// DeleteAccount removes the caller's own account.
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	caller, ok := deliverycontext.GetAccount(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing or invalid bearer token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	if err := h.accountUC.DeleteAccount(c.Request().Context(), caller, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
