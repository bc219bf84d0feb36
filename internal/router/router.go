package router

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/david-jerry/iwitness/internal/auth"
	"github.com/david-jerry/iwitness/internal/config"
	"github.com/david-jerry/iwitness/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	bankHandler *handler.BankHandler,
	bankAccountHandler *handler.BankAccountHandler,
	earningHandler *handler.EarningHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.GET("/auth/confirm-email/:token", authHandler.ConfirmEmail)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)
	api.POST("/auth/password/reset", authHandler.RequestPasswordReset)
	api.POST("/auth/password/reset/confirm", authHandler.ConfirmPasswordReset)

	api.GET("/banks", bankHandler.ListBanks)
	api.GET("/banks/:id", bankHandler.GetBank)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			claims, err := jwtService.ValidateToken(strings.TrimSpace(tokenString))
			if err != nil {
				return nil, err
			}
			return claims, nil
		},
	}))

	// User routes
	secured.GET("/users", userHandler.ListUsers)
	secured.GET("/users/me", userHandler.Me)
	secured.GET("/users/profile", userHandler.GetProfile)
	secured.PUT("/users/profile", userHandler.UpdateProfile)
	secured.PUT("/users/consent", userHandler.UpdateConsent)
	secured.PUT("/users/location", userHandler.UpdateLocation)
	secured.GET("/users/:id", userHandler.GetUser)
	secured.POST("/users/:id/follow", userHandler.Follow)
	secured.DELETE("/users/:id/follow", userHandler.Unfollow)
	secured.GET("/users/:id/followers", userHandler.Followers)
	secured.GET("/users/:id/following", userHandler.Following)

	// Bank reference sync, staff only (enforced in the handler)
	secured.POST("/banks/sync", bankHandler.SyncBanks)

	// Bank account routes
	secured.GET("/bank-accounts", bankAccountHandler.List)
	secured.GET("/bank-accounts/me", bankAccountHandler.GetOwn)
	secured.PUT("/bank-accounts/:id", bankAccountHandler.Update)

	// Earning routes
	secured.GET("/earnings", earningHandler.List)
	secured.GET("/earnings/me", earningHandler.GetOwn)
	secured.GET("/earnings/balance", earningHandler.Balance)
	secured.PUT("/earnings/:id", earningHandler.Update)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
