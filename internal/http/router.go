package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tourgate/internal/backend"
	"tourgate/internal/config"
	"tourgate/internal/dashboard"
	"tourgate/internal/domain"
	h "tourgate/internal/http/handlers"
	"tourgate/internal/http/middleware"
	"tourgate/internal/logger"
	"tourgate/internal/metrics"
	"tourgate/internal/services"
	"tourgate/internal/validation"
)

// Deps is everything the router wires together.
type Deps struct {
	Config  config.Config
	Log     logger.Logger
	Metrics *metrics.Metrics
	Backend *backend.Client
	Views   *dashboard.Store
	Forms   *validation.Validator
}

// NewRouter builds the Gin engine with the full gateway surface.
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.AccessLog(d.Log),
		gin.Recovery(),
		middleware.Metrics(d.Metrics),
		cors.New(cors.Config{
			AllowOrigins:     d.Config.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin"},
			AllowCredentials: true,
		}),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		d.Log.Warn("failed to set trusted proxies", "error", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "route not found",
			"path":    c.Request.URL.Path,
			"method":  c.Request.Method,
		})
	})

	guard := middleware.Guard{
		Backend:    d.Backend,
		CookieName: d.Config.SessionCookie,
		Log:        d.Log,
	}

	bookings := services.BookingService{Backend: d.Backend, Forms: d.Forms}
	assignments := services.AssignmentService{Backend: d.Backend}
	packages := services.PackageService{Backend: d.Backend, Forms: d.Forms}
	users := services.UserService{Backend: d.Backend, Forms: d.Forms}
	revenue := services.RevenueService{Backend: d.Backend}
	auth := services.AuthService{Backend: d.Backend, Forms: d.Forms, Views: d.Views}

	authHandler := h.AuthHandler{Auth: auth}
	viewState := h.ViewStateHandler{Store: d.Views}
	packageHandler := h.PackageHandler{Packages: packages}
	bookingHandler := h.BookingHandler{Bookings: bookings}
	employeeHandler := h.EmployeeHandler{Assignments: assignments}
	adminHandler := h.AdminHandler{Assignments: assignments, Users: users, Revenue: revenue}
	profileHandler := h.ProfileHandler{Users: users}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)

		authGroup := api.Group("/auth")
		authGroup.POST("/forgot-password", authHandler.ForgotPassword)
		authGroup.POST("/verify-otp", authHandler.VerifyOTP)
		authGroup.POST("/logout", guard.Require(), authHandler.Logout)
		authGroup.GET("/session", guard.Require(), authHandler.Session)

		// Marketing pages browse packages and destinations without a session.
		api.GET("/tour-packages", packageHandler.List)
		api.GET("/tour-packages/:id", packageHandler.Get)
		api.GET("/destinations", packageHandler.Destinations)
		api.GET("/destinations/:id", packageHandler.Destination)

		profile := api.Group("/profile", guard.Require())
		profile.GET("", profileHandler.Get)
		profile.PUT("", profileHandler.Update)
		profile.DELETE("", profileHandler.Delete)

		view := api.Group("/view-state", guard.Require())
		view.GET("", viewState.Get)
		view.POST("/navigate", viewState.Navigate)
		view.POST("/select-package", viewState.SelectPackage)
		view.POST("/select-booking", viewState.SelectBooking)
		view.POST("/back", viewState.Back)

		customer := api.Group("/customer", guard.Require(domain.RoleCustomer))
		customer.GET("/bookings", bookingHandler.List)
		customer.POST("/bookings", bookingHandler.Create)
		customer.POST("/bookings/quote", bookingHandler.Quote)
		customer.GET("/bookings/:id/details", bookingHandler.Details)
		customer.PUT("/bookings/:id", bookingHandler.Modify)
		customer.DELETE("/bookings/:id", bookingHandler.Cancel)

		employee := api.Group("/employee", guard.Require(domain.RoleEmployee))
		employee.GET("/assigned-bookings", employeeHandler.AssignedBookings)
		employee.GET("/bookings/:id/details", employeeHandler.BookingDetails)
		employee.PUT("/bookings/:id/status", employeeHandler.UpdateStatus)
		employee.POST("/tour-packages", packageHandler.Create)

		admin := api.Group("/admin", guard.Require(domain.RoleSuperAdmin))
		admin.GET("/bookings", adminHandler.Bookings)
		admin.POST("/bookings/:id/assign", adminHandler.Assign)
		admin.DELETE("/bookings/:id", adminHandler.RemoveBooking)
		admin.GET("/employees", adminHandler.Employees)
		admin.POST("/employees", adminHandler.CreateEmployee)
		admin.DELETE("/employees/:id", adminHandler.DeleteEmployee)
		admin.GET("/revenue", adminHandler.RevenueReport)
		admin.GET("/revenue/report.pdf", adminHandler.RevenueReportPDF)
	}

	return r
}
