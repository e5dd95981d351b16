package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"gymslot/internal/appointment"
	"gymslot/internal/auth"
	"gymslot/internal/class"
	"gymslot/internal/config"
	"gymslot/internal/directory"
	"gymslot/internal/email"
	"gymslot/internal/gym"
	"gymslot/internal/registration"
)

// Deps are the services the HTTP layer routes to. Email may be nil when
// notifications are disabled.
type Deps struct {
	Classes       class.Service
	Registrations registration.Service
	Appointments  appointment.Service
	Gyms          gym.Service
	Email         *email.Service
}

type Server struct {
	router  *gin.Engine
	http    *http.Server
	limiter *RateLimiter
}

func New(cfg *config.Config, deps Deps) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())

	limiter := NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, rateLimitTTL)
	router.Use(limiter.Middleware())
	router.Use(TimeoutMiddleware(cfg.RequestTimeout))

	classHandler := class.NewHandler(deps.Classes)
	registrationHandler := registration.NewHandler(deps.Registrations)
	appointmentHandler := appointment.NewHandler(deps.Appointments)
	gymHandler := gym.NewHandler(deps.Gyms)

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/classes", classHandler.ListClasses)
		protected.GET("/classes/:classID", classHandler.GetClass)
		protected.GET("/classes/:classID/occupants", registrationHandler.ListOccupants)
		protected.GET("/classes/:classID/eligible-members", registrationHandler.ListEligibleMembers)
		protected.POST("/classes/:classID/registrations", registrationHandler.Register)
		protected.DELETE("/classes/:classID/registrations", registrationHandler.Unregister)
		protected.GET("/members/:memberID/registrations", registrationHandler.ListMemberRegistrations)
		protected.GET("/gyms/:gymID/timetable", gymHandler.GetTimetable)

		protected.POST("/appointments", appointmentHandler.Book)
		protected.GET("/appointments", appointmentHandler.List)
		protected.GET("/appointments/availability", appointmentHandler.Availability)
		protected.GET("/appointments/:appointmentID", appointmentHandler.Get)
		protected.PUT("/appointments/:appointmentID/schedule", appointmentHandler.Reschedule)
		protected.DELETE("/appointments/:appointmentID", appointmentHandler.Cancel)
	}

	staff := router.Group("/")
	staff.Use(authMiddleware, auth.RequireRole(
		string(directory.RoleTrainingStaff),
		string(directory.RoleWellbeingStaff),
		string(directory.RoleAdmin),
	))
	{
		staff.PUT("/appointments/:appointmentID/status", appointmentHandler.SetStatus)
	}

	admin := router.Group("/admin")
	admin.Use(authMiddleware, auth.RequireRole(string(directory.RoleAdmin)))
	{
		admin.POST("/classes", classHandler.DefineClass)
		admin.PATCH("/classes/:classID", classHandler.UpdateClass)
		admin.DELETE("/classes/:classID", classHandler.DeleteClass)
		if deps.Email != nil {
			admin.POST("/test-email", TestEmail(deps.Email))
		}
	}

	return &Server{
		router:  router,
		limiter: limiter,
		http: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           router,
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start() error {
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.limiter.Stop()
	return s.http.Shutdown(ctx)
}
