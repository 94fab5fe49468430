package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-labs/hrms-backend-go/internal/handler/http/middleware"
	"github.com/hrms-labs/hrms-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	employeeRepo employee.EmployeeRepository,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	departmentHandler DepartmentHandler,
	leaveHandler LeaveHandler,
	payrollHandler PayrollHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrms-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	selfOrAdmin := middleware.SelfOrAdmin(employeeRepo)

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/register", authHandler.Register)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/auth/me", authHandler.Me)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Get("/{id}", employeeHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", employeeHandler.Create)
					r.Put("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Delete)
				})
			})

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", departmentHandler.List)
				r.Get("/{id}", departmentHandler.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", departmentHandler.Create)
					r.Put("/{id}", departmentHandler.Update)
					r.Delete("/{id}", departmentHandler.Delete)
				})
			})

			r.Route("/leave-requests", func(r chi.Router) {
				r.Post("/", leaveHandler.Submit)
				r.Get("/{id}", leaveHandler.Get)
				r.With(selfOrAdmin).Get("/employee/{employeeID}", leaveHandler.ListByEmployee)
				r.Put("/{id}", leaveHandler.Update)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", leaveHandler.List)
					r.Post("/{id}/approve", leaveHandler.Approve)
					r.Post("/{id}/reject", leaveHandler.Reject)
					r.Delete("/{id}", leaveHandler.Delete)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/{id}", payrollHandler.Get)
				r.With(selfOrAdmin).Get("/employee/{employeeID}", payrollHandler.ListByEmployee)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", payrollHandler.List)
					r.Post("/", payrollHandler.Process)
					r.Put("/{id}", payrollHandler.Update)
					r.Post("/{id}/pay", payrollHandler.MarkPaid)
					r.Delete("/{id}", payrollHandler.Delete)
				})
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.With(selfOrAdmin).Get("/employee/{employeeID}", dashboardHandler.EmployeeStats)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/admin", dashboardHandler.AdminStats)
				})
			})
		})
	})

	return r
}
