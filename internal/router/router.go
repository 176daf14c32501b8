package router

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"nerd/internal/auth"
	"nerd/internal/config"
	"nerd/internal/errors"
	"nerd/internal/handler"
	"nerd/internal/service"
)

// Handlers groups every HTTP handler the API serves.
type Handlers struct {
	Auth          *handler.AuthHandler
	Users         *handler.UserHandler
	Contributions *handler.ContributionHandler
	Moderation    *handler.ModerationHandler
	Publication   *handler.PublicationHandler
	Catalog       *handler.CatalogHandler
	Admins        *handler.AdminHandler
	Events        *handler.EventsHandler
	Seed          *handler.SeedHandler
}

// Guards carries what the access middleware needs to resolve a caller.
type Guards struct {
	JWTSecret []byte
	Tokens    auth.TokenStoreInterface
	Roles     *auth.RoleResolver
	Users     service.UserService
}

// Register wires routes and middleware.
func Register(e *echo.Echo, cfg *config.Config, logger *zap.Logger, g Guards, h Handlers) {
	e.Use(middleware.RequestID())
	e.Use(requestLogger(logger))
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api", middleware.BodyLimit(fmt.Sprintf("%dM", cfg.MaxUploadMB+1)))

	// Public routes
	api.POST("/auth/signin", h.Auth.SignIn)
	api.POST("/auth/refresh", h.Auth.Refresh)
	api.GET("/materials", h.Catalog.List)
	api.GET("/materials/:id", h.Catalog.Get)
	api.GET("/materials/:id/download", h.Catalog.Download)

	// Signed-in routes, registration not required yet
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:    g.JWTSecret,
		TokenLookup:   "header:" + echo.HeaderAuthorization + ":Bearer ",
		NewClaimsFunc: func(echo.Context) jwt.Claims { return new(auth.Claims) },
		ErrorHandler: func(c echo.Context, err error) error {
			return deny(fmt.Errorf("%w: %v", errors.ErrUnauthorized, err))
		},
	}), authenticate(g.Tokens, g.Roles))

	secured.POST("/auth/logout", h.Auth.Logout)
	secured.GET("/me", h.Auth.Me)
	secured.POST("/users", h.Users.Register)
	secured.GET("/users/me", h.Users.Profile)
	secured.GET("/events", h.Events.Stream)

	// Registered users
	registered := secured.Group("", requireRegistered(g.Users))
	registered.GET("/materials/search", h.Catalog.Search)
	registered.POST("/contributions", h.Contributions.Submit)
	registered.GET("/contributions/mine", h.Contributions.ListMine)

	// Admins
	admin := secured.Group("/admin", requireAdmin)
	admin.GET("/contributions/pending", h.Moderation.ListPending)
	admin.GET("/contributions/pending/:id", h.Moderation.GetPending)
	admin.PATCH("/contributions/pending/:id", h.Moderation.UpdatePending)
	admin.POST("/contributions/pending/:id/verify", h.Moderation.Verify)
	admin.DELETE("/contributions/pending/:id", h.Moderation.Reject)

	admin.GET("/contributions/verified", h.Publication.ListVerified)
	admin.GET("/contributions/verified/:id", h.Publication.GetVerified)
	admin.PATCH("/contributions/verified/:id", h.Publication.UpdateVerified)
	admin.POST("/contributions/verified/:id/publish", h.Publication.Publish)
	admin.DELETE("/contributions/verified/:id", h.Publication.DeleteVerified)

	admin.POST("/materials", h.Catalog.Add)
	admin.DELETE("/materials/:id", h.Catalog.Delete)

	admin.GET("/users", h.Users.ListUsers)
	admin.GET("/users/:id", h.Users.GetUser)
	admin.DELETE("/users/:id", h.Users.DeleteUser)

	// Super-admin
	superAdmin := admin.Group("", requireSuperAdmin)
	superAdmin.POST("/roster", h.Admins.Add)
	superAdmin.GET("/roster", h.Admins.List)
	superAdmin.GET("/roster/:email", h.Admins.Search)
	superAdmin.DELETE("/roster/:email", h.Admins.Remove)
	superAdmin.POST("/seed", h.Seed.Seed)
}

// authenticate turns validated claims into a Principal, rejecting revoked tokens.
func authenticate(tokens auth.TokenStoreInterface, roles *auth.RoleResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return deny(errors.ErrUnauthorized)
			}
			claims, ok := token.Claims.(*auth.Claims)
			if !ok || claims.UserID == "" || !claims.IsAccess() {
				return deny(errors.ErrUnauthorized)
			}

			ctx := c.Request().Context()
			if revoked, _ := tokens.IsAccessTokenBlacklisted(ctx, claims.ID); revoked {
				return deny(fmt.Errorf("%w: token revoked", errors.ErrUnauthorized))
			}

			principal, err := roles.Resolve(ctx, claims.Identity(), claims.ID)
			if err != nil {
				return deny(err)
			}
			handler.SetPrincipal(c, principal)
			return next(c)
		}
	}
}

func requireRegistered(users service.UserService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := handler.CurrentPrincipal(c)
			if !ok {
				return deny(errors.ErrUnauthorized)
			}
			user, err := users.GetUser(c.Request().Context(), p.UID)
			if err != nil {
				if stderrors.Is(err, errors.ErrNotFound) {
					return deny(errors.ErrNotRegistered)
				}
				return deny(err)
			}
			handler.SetProfile(c, user)
			return next(c)
		}
	}
}

func requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, ok := handler.CurrentPrincipal(c)
		if !ok || !p.IsAdmin {
			return deny(errors.ErrForbidden)
		}
		return next(c)
	}
}

func requireSuperAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, ok := handler.CurrentPrincipal(c)
		if !ok || !p.IsSuperAdmin {
			return deny(errors.ErrForbidden)
		}
		return next(c)
	}
}

func deny(err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

func requestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				logger.Warn("request", append(fields, zap.Error(v.Error))...)
				return nil
			}
			logger.Info("request", fields...)
			return nil
		},
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
