package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	adminhandler "github.com/athletex/gym-api/internal/handler/admin"
	authhandler "github.com/athletex/gym-api/internal/handler/auth"
	bookinghandler "github.com/athletex/gym-api/internal/handler/booking"
	contacthandler "github.com/athletex/gym-api/internal/handler/contact"
	healthhandler "github.com/athletex/gym-api/internal/handler/health"
	membershiphandler "github.com/athletex/gym-api/internal/handler/membership"
	promhandler "github.com/athletex/gym-api/internal/handler/prometheus"
	trainerhandler "github.com/athletex/gym-api/internal/handler/trainer"
	"github.com/athletex/gym-api/internal/middleware"
)

type Config struct {
	RateLimit rate.Limit
	RateBurst int
	CORS      middleware.CORSConfig
}

func DefaultConfig() Config {
	return Config{
		RateLimit: 100,
		RateBurst: 200,
		CORS:      middleware.DefaultCORSConfig(),
	}
}

type Router struct {
	engine      *gin.Engine
	resolver    middleware.CallerResolver
	healthH     *healthhandler.Handler
	promH       *promhandler.Handler
	authH       *authhandler.Handler
	membershipH *membershiphandler.Handler
	bookingH    *bookinghandler.Handler
	contactH    *contacthandler.Handler
	trainerH    *trainerhandler.Handler
	adminH      *adminhandler.Handler
}

func NewRouter(
	resolver middleware.CallerResolver,
	healthH *healthhandler.Handler,
	promH *promhandler.Handler,
	authH *authhandler.Handler,
	membershipH *membershiphandler.Handler,
	bookingH *bookinghandler.Handler,
	contactH *contacthandler.Handler,
	trainerH *trainerhandler.Handler,
	adminH *adminhandler.Handler,
	config Config,
) *Router {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()

	r := &Router{
		engine:      engine,
		resolver:    resolver,
		healthH:     healthH,
		promH:       promH,
		authH:       authH,
		membershipH: membershipH,
		bookingH:    bookingH,
		contactH:    contactH,
		trainerH:    trainerH,
		adminH:      adminH,
	}

	engine.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.ErrorHandler(),
		promH.Middleware(),
		middleware.Timeout(middleware.TimeoutConfig{Duration: 30 * time.Second}),
		middleware.SecurityHeaders(middleware.DefaultSecurityConfig()),
		middleware.SizeLimit(middleware.DefaultSizeLimitConfig()),
	)

	engine.Use(middleware.CORS(config.CORS))

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		Rate:  config.RateLimit,
		Burst: config.RateBurst,
	})
	engine.Use(rateLimiter.RateLimit())

	return r
}

func (r *Router) Setup() {
	api := r.engine.Group("/api")

	r.setupHealthCheck(api)
	r.setupPublicRoutes(api)

	protected := api.Group("")
	protected.Use(middleware.Authenticate(r.resolver))
	r.setupProtectedRoutes(protected)
	r.setupAdminRoutes(protected)
}

func (r *Router) setupHealthCheck(rg *gin.RouterGroup) {
	r.healthH.RegisterRoutes(rg)
	rg.GET("/health/metrics", r.promH.Handler())
}

func (r *Router) setupPublicRoutes(rg *gin.RouterGroup) {
	r.authH.RegisterRoutes(rg)
	r.membershipH.RegisterRoutes(rg)
	r.contactH.RegisterRoutes(rg)
	r.trainerH.RegisterRoutes(rg)
}

func (r *Router) setupProtectedRoutes(rg *gin.RouterGroup) {
	r.authH.RegisterProtectedRoutes(rg)
	r.membershipH.RegisterProtectedRoutes(rg)
	r.bookingH.RegisterProtectedRoutes(rg)
}

// setupAdminRoutes mounts the admin surface. Management of shared
// resources lives on the resource's own path with a per-route admin
// guard; only the dashboard endpoints get the /admin prefix.
func (r *Router) setupAdminRoutes(rg *gin.RouterGroup) {
	adminOnly := middleware.RequireAdmin()

	r.membershipH.RegisterAdminRoutes(rg, adminOnly)
	r.contactH.RegisterAdminRoutes(rg, adminOnly)
	r.trainerH.RegisterAdminRoutes(rg, adminOnly)

	admin := rg.Group("/admin")
	admin.Use(adminOnly)
	r.adminH.RegisterAdminRoutes(admin)
	r.bookingH.RegisterAdminRoutes(admin)
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
