package handler

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"nerd/internal/auth"
	"nerd/internal/errors"
	"nerd/internal/model"
)

const (
	principalKey = "principal"
	profileKey   = "profile"
	claimsKey    = "user"
)

// SetPrincipal stores the resolved caller on the request context.
func SetPrincipal(c echo.Context, p *auth.Principal) {
	c.Set(principalKey, p)
}

// CurrentPrincipal returns the caller resolved by the auth middleware.
func CurrentPrincipal(c echo.Context) (*auth.Principal, bool) {
	p, ok := c.Get(principalKey).(*auth.Principal)
	return p, ok && p != nil
}

// SetProfile stores the caller's registered profile on the request context.
func SetProfile(c echo.Context, u *model.User) {
	c.Set(profileKey, u)
}

// CurrentProfile returns the profile loaded by the registration guard.
func CurrentProfile(c echo.Context) (*model.User, bool) {
	u, ok := c.Get(profileKey).(*model.User)
	return u, ok && u != nil
}

// displayName is the name credited for the caller: the identity provider's
// name, else the registered profile's, else the email.
func displayName(c echo.Context, p *auth.Principal) string {
	if name := strings.TrimSpace(p.Name); name != "" {
		return name
	}
	if u, ok := CurrentProfile(c); ok && strings.TrimSpace(u.Name) != "" {
		return u.Name
	}
	return p.Email
}

func mustPrincipal(c echo.Context) (*auth.Principal, error) {
	p, ok := CurrentPrincipal(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: errors.ErrUnauthorized.Error(),
			Code:  "UNAUTHORIZED",
		})
	}
	return p, nil
}

// fail converts a domain error into an echo HTTP error with the standard body.
func fail(err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

func invalidRequest(msg string) error {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: msg,
		Code:  "INVALID_REQUEST",
	})
}

func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return invalidRequest("invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}
	return nil
}

func parseID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, invalidRequest("invalid id")
	}
	return id, nil
}

func confirmed(c echo.Context) bool {
	return c.QueryParam("confirm") == "true"
}
