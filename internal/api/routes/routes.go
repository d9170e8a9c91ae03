package routes

import (
	"fmt"

	"new-arrivals-chi/internal/api/handlers"
	"new-arrivals-chi/internal/api/middleware"
	"new-arrivals-chi/internal/auth"
	"new-arrivals-chi/internal/config"
	"new-arrivals-chi/internal/database/models"
	"new-arrivals-chi/internal/i18n"
	"new-arrivals-chi/internal/mail"
	"new-arrivals-chi/internal/metrics"
	"new-arrivals-chi/internal/repository"
	"new-arrivals-chi/internal/service"
	"new-arrivals-chi/internal/validation"
	"new-arrivals-chi/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"
)

// Dependencies are the process-wide collaborators created by the caller.
// Nil fields fall back to defaults.
type Dependencies struct {
	Metrics     metrics.Recorder
	Gatherer    prometheus.Gatherer
	Mailer      mail.Mailer
	RateLimiter *middleware.RateLimiter
	Version     string
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, deps Dependencies) (*gin.Engine, error) {
	if deps.Metrics == nil {
		deps.Metrics = metrics.Nop{}
	}
	if deps.Gatherer == nil {
		deps.Gatherer = prometheus.DefaultGatherer
	}
	if deps.Mailer == nil {
		deps.Mailer = mail.NewFromConfig(cfg)
	}
	if deps.RateLimiter == nil {
		deps.RateLimiter = middleware.NewRateLimiter(middleware.RateLimiterConfig{
			PerMinute: cfg.LoginRatePerMinute,
			Burst:     cfg.LoginRateBurst,
		}, deps.Metrics)
	}

	bundle, err := i18n.Load(cfg.DefaultLanguage)
	if err != nil {
		return nil, fmt.Errorf("failed to load translations: %w", err)
	}
	renderer, err := web.NewRenderer(bundle)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}
	sessions, err := auth.NewSessionManager(auth.NewSessionConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to configure sessions: %w", err)
	}

	// Create router
	router := gin.New()
	router.HTMLRender = renderer

	// Add middleware
	router.Use(otelgin.Middleware(cfg.OTelServiceName))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.Metrics(deps.Metrics))

	// Initialize validator
	validate := validation.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	organizationRepo := repository.NewOrganizationRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	languageRepo := repository.NewLanguageRepository(db)
	serviceRepo := repository.NewServiceRepository(db)

	// Initialize services
	accountService := service.NewAccountService(userRepo, validate)
	organizationService := service.NewOrganizationService(
		organizationRepo,
		userRepo,
		locationRepo,
		languageRepo,
		deps.Mailer,
		validate,
		cfg.Neighborhoods,
		cfg.PublicURL,
	)
	directoryService := service.NewDirectoryService(serviceRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(deps.Version, map[string]handlers.HealthCheck{
		"database":  handlers.DatabaseCheck(db),
		"languages": handlers.LanguagesCheck(db),
	})
	contentHandler := handlers.NewContentHandler(directoryService, cfg.Neighborhoods)
	authHandler := handlers.NewAuthHandler(accountService, sessions, deps.Metrics)
	organizationHandler := handlers.NewOrganizationHandler(organizationService)
	apiHandler := handlers.NewAPIHandler(organizationService, directoryService)
	authMiddleware := auth.NewAuthMiddleware(sessions, userRepo)

	// Health check routes
	router.GET("/healthz", healthHandler.Health)
	router.GET("/healthz/ready", healthHandler.Ready)
	router.GET("/healthz/live", healthHandler.Live)

	// Metrics and API documentation
	router.GET("/metrics", gin.WrapH(metrics.Handler(deps.Gatherer)))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// JSON API
	v1 := router.Group("/api/v1", authMiddleware.LoadUser())
	{
		v1.GET("/organizations/:id", apiHandler.GetOrganization)
		v1.GET("/services/search", apiHandler.SearchServices)
	}

	// Server-rendered pages
	site := router.Group("/",
		middleware.Language(bundle),
		middleware.Flash(),
		middleware.CSRF(middleware.CSRFConfig{CookieSecure: cfg.CookieSecure}),
		authMiddleware.LoadUser(),
	)
	{
		site.GET("/", contentHandler.Home)
		site.GET("/about", contentHandler.About)
		site.GET("/health", contentHandler.Health)
		site.GET("/health/search", contentHandler.HealthSearch)
		site.GET("/food", contentHandler.Food)
		site.GET("/legal", contentHandler.Legal)
		site.GET("/legal/:topic", contentHandler.LegalTopic)
		site.GET("/org/:id", organizationHandler.Profile)

		site.GET("/signup", authHandler.SignupPage)
		site.POST("/signup", authHandler.Signup)
		site.GET("/login", authHandler.LoginPage)
		site.POST("/login", deps.RateLimiter.Middleware(), authHandler.Login)
		site.GET("/registration_change_password", authHandler.RegistrationChangePasswordPage)
		site.POST("/registration_change_password", authHandler.RegistrationChangePassword)
	}

	member := site.Group("/", auth.RequireLogin())
	{
		member.GET("/logout", authHandler.Logout)
		member.GET("/change_password", authHandler.ChangePasswordPage)
		member.POST("/change_password", authHandler.ChangePassword)
		member.GET("/dashboard", organizationHandler.Dashboard)
		member.POST("/dashboard/registration", organizationHandler.SaveRegistration)
		member.POST("/dashboard/languages", organizationHandler.SaveLanguages)
		member.POST("/dashboard/services", organizationHandler.AddService)
	}

	admin := member.Group("/", auth.RequireRole(models.UserRoleAdmin))
	{
		admin.GET("/add_organization", organizationHandler.AddOrganizationPage)
		admin.POST("/add_organization", organizationHandler.AddOrganization)
		admin.POST("/org/:id/status", organizationHandler.ToggleStatus)
	}

	router.NoRoute(middleware.Language(bundle), authMiddleware.LoadUser(), handlers.NotFound)

	return router, nil
}
