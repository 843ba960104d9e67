package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/coworkia/coworking-api/internal/api/handler"
	"github.com/coworkia/coworking-api/internal/api/middleware"
	"github.com/coworkia/coworking-api/internal/core/auth"
	"github.com/coworkia/coworking-api/internal/core/domain"
	"github.com/coworkia/coworking-api/internal/core/ports"
	"github.com/coworkia/coworking-api/internal/core/service"
	mongodb "github.com/coworkia/coworking-api/internal/infrastructure/db/mongo"
	redisdb "github.com/coworkia/coworking-api/internal/infrastructure/db/redis"
	"github.com/coworkia/coworking-api/internal/pkg/config"
)

// NewRouter builds the Echo instance with all routes registered. Construction
// fails fast when the signing secret or the hashing cost factor is invalid.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, audit ports.AuditTrail, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("coworking"))

	// --- Auth primitives (fatal on misconfiguration) ---
	hasher, err := auth.NewPasswordHasher(cfg.BcryptCost, cfg.HashWorkers)
	if err != nil {
		return nil, err
	}
	tokens, err := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return nil, err
	}

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	spaceRepo := mongodb.NewSpaceRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	offeringRepo := mongodb.NewOfferingRepository(db)
	bookingRepo := mongodb.NewBookingRepository(db)
	profileCache := redisdb.NewProfileCache(rdb)

	userService := service.NewUserService(userRepo, hasher, tokens, profileCache, audit, log)
	spaceService := service.NewSpaceService(spaceRepo)
	productService := service.NewProductService(productRepo)
	offeringService := service.NewOfferingService(offeringRepo)
	bookingService := service.NewBookingService(bookingRepo, spaceRepo, log)

	userHandler := handler.NewUserHandler(userService)
	spaceHandler := handler.NewSpaceHandler(spaceService)
	productHandler := handler.NewProductHandler(productService)
	offeringHandler := handler.NewOfferingHandler(offeringService)
	bookingHandler := handler.NewBookingHandler(bookingService)

	authn := middleware.Auth(tokens)
	admin := middleware.RequireAdmin()
	staff := middleware.RequireAnyRole(domain.RoleStaff)

	// --- Public routes ---
	e.POST("/users", userHandler.SignUp)
	e.POST("/login", userHandler.Login)

	// --- User administration (authentication before authorization) ---
	users := e.Group("/users", authn, admin)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.GetByID)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Spaces: reads for any authenticated caller, writes admin-only ---
	spaces := e.Group("/spaces", authn)
	spaces.GET("", spaceHandler.List)
	spaces.GET("/:id", spaceHandler.Get)
	spaces.POST("", spaceHandler.Create, admin)
	spaces.PUT("/:id", spaceHandler.Update, admin)
	spaces.DELETE("/:id", spaceHandler.Delete, admin)

	// --- Products: writes for admin or staff ---
	products := e.Group("/products", authn)
	products.GET("", productHandler.List)
	products.GET("/:id", productHandler.Get)
	products.POST("", productHandler.Create, staff)
	products.PUT("/:id", productHandler.Update, staff)
	products.DELETE("/:id", productHandler.Delete, staff)

	// --- Services (offerings): same policy as products ---
	offerings := e.Group("/services", authn)
	offerings.GET("", offeringHandler.List)
	offerings.GET("/:id", offeringHandler.Get)
	offerings.POST("", offeringHandler.Create, staff)
	offerings.PUT("/:id", offeringHandler.Update, staff)
	offerings.DELETE("/:id", offeringHandler.Delete, staff)

	// --- Bookings: ownership enforced in the service layer ---
	bookings := e.Group("/bookings", authn)
	bookings.GET("", bookingHandler.List)
	bookings.GET("/:id", bookingHandler.Get)
	bookings.POST("", bookingHandler.Create)
	bookings.PUT("/:id", bookingHandler.Update)
	bookings.DELETE("/:id", bookingHandler.Delete)

	// --- Observability ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}
