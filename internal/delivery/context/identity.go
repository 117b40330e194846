package context

import (
	"chess/internal/domain/entity"
	"chess/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const (
	// KeyClaims is the key for the verified token claims in echo.Context.
	KeyClaims ContextKey = "claims"

	// KeyAccount is the key for the caller's resolved account in echo.Context.
	KeyAccount ContextKey = "account"
)

// SetClaims stores the verified token claims.
func SetClaims(c echo.Context, claims *service.Claims) {
	c.Set(string(KeyClaims), claims)
}

// GetClaims returns the verified token claims, if the request was authenticated.
func GetClaims(c echo.Context) (*service.Claims, bool) {
	claims, ok := c.Get(string(KeyClaims)).(*service.Claims)

	return claims, ok && claims != nil
}

// SetAccount stores the caller's account.
func SetAccount(c echo.Context, account *entity.Account) {
	c.Set(string(KeyAccount), account)
}

// GetAccount returns the caller's account, if it was resolved for this request.
func GetAccount(c echo.Context) (*entity.Account, bool) {
	account, ok := c.Get(string(KeyAccount)).(*entity.Account)

	return account, ok && account != nil
}
