package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/ciberseguria/sgsi-express/internal/middleware"
)

// NewRouter wires the controllers into an echo server with sessions,
// recovery and request logging.
func NewRouter(
	authController *AuthController,
	assessmentController *AssessmentController,
	reportController *ReportController,
	auth *middleware.Auth,
	sessionSecret string,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = &requestValidator{validate: validator.New()}

	e.Use(echomw.Recover())
	e.Use(session.Middleware(middleware.SessionStore(sessionSecret)))
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			slog.Info("request", "method", v.Method, "uri", v.URI, "status", v.Status)
			return nil
		},
	}))

	e.GET("/health", healthCheck)
	e.GET("/login", loginRequired)

	apiGroup := e.Group("/api")
	apiGroup.POST("/register", authController.Register)
	apiGroup.POST("/login", authController.Login)
	apiGroup.POST("/logout", authController.Logout)

	assessments := apiGroup.Group("/assessments", auth.RequirePrincipal)
	assessments.GET("", assessmentController.List)
	assessments.POST("", assessmentController.Create)
	assessments.GET("/:id/questionnaire", assessmentController.Questionnaire)
	assessments.POST("/:id/submit", assessmentController.Submit)
	assessments.GET("/:id/report", reportController.Summary)
	assessments.GET("/:id/report/download", reportController.Download)

	return e
}

func healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "CiberSegurIA SGSI Express",
	})
}

// loginRequired is where unauthenticated web-flow requests land.
func loginRequired(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, map[string]string{
		"error": "debe iniciar sesión para continuar",
	})
}
