package main

import (
	"net/http"
	"os"
	"time"

	"internlink/api/handler"
	apiMiddleware "internlink/api/middleware"
	"internlink/api/routes"
	"internlink/config"
	"internlink/internal/repository"
	"internlink/internal/service"
	"internlink/internal/utils"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	if cfg.AccessSecret == "" || cfg.RefreshSecret == "" {
		logger.Fatal("JWT_ACCESS_SECRET and JWT_REFRESH_SECRET are required")
	}

	db, err := config.ConnectDB(cfg)
	if err != nil {
		logger.WithError(err).Fatal("database connection failed")
	}
	if err := config.Migrate(db); err != nil {
		logger.WithError(err).Fatal("migration failed")
	}

	tokenManager := &utils.TokenManager{
		AccessSecret:  []byte(cfg.AccessSecret),
		RefreshSecret: []byte(cfg.RefreshSecret),
		Issuer:        cfg.JWTIssuer,
		AccessTTL:     cfg.AccessTokenTTL,
		RefreshTTL:    cfg.RefreshTokenTTL,
	}

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	auditLogRepo := repository.NewAuditLogRepository(db)
	internshipRepo := repository.NewInternshipRepository(db)

	emailSender := service.NewSMTPEmailSender(
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.SMTPUsername,
		cfg.SMTPPassword,
		cfg.FromAddress,
		cfg.FromName,
		cfg.FrontendURL,
	)
	googleVerifier := service.NewHTTPGoogleVerifier(cfg.GoogleClientID)

	authService := service.NewAuthService(
		userRepo,
		profileRepo,
		auditLogRepo,
		emailSender,
		service.BcryptPasswordHasher{},
		tokenManager,
		googleVerifier,
		service.RealClock{},
		logger,
		service.AuthConfig{
			AccessTokenTTL:    cfg.AccessTokenTTL,
			RefreshTokenTTL:   cfg.RefreshTokenTTL,
			MinPasswordLength: cfg.MinPasswordLength,
		},
	)
	userService := service.NewUserService(userRepo, profileRepo, auditLogRepo, service.RealClock{})
	internshipService := service.NewInternshipService(internshipRepo, service.RealClock{})

	app := echo.New()
	app.HideBanner = true
	app.HidePort = true
	app.Validator = handler.NewRequestValidator()
	app.HTTPErrorHandler = handler.NewHTTPErrorHandler(logger, cfg.IsDevelopment())
	app.Use(echoMiddleware.Recover())
	app.Use(echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogStatus:   true,
		LogMethod:   true,
		LogURI:      true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			entry := logger.WithFields(logrus.Fields{
				"status": v.Status,
				"method": v.Method,
				"uri":    v.URI,
				"ip":     v.RemoteIP,
			})
			if v.Error != nil {
				entry.WithError(v.Error).Error("request")
				return nil
			}
			entry.Info("request")
			return nil
		},
	}))

	router := routes.Router{
		Auth:        handler.NewAuthHandler(authService, cfg.CookieSecure, cfg.CookieDomain),
		Users:       handler.NewUserHandler(userService),
		Internships: handler.NewInternshipHandler(internshipService),
		AuthMW:      apiMiddleware.AuthMiddleware{Tokens: tokenManager, Users: userRepo},
		PolicyMW:    apiMiddleware.PolicyMiddleware{Profiles: profileRepo},
	}
	router.Register(app)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.WithField("addr", cfg.HTTPAddr).Info("server started")
	if err := app.StartServer(server); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}
