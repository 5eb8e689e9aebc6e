package http

import (
	"log/slog"
	"os"

	"github.com/chamcong-vn/attendance-backend-go/internal/config"
	"github.com/chamcong-vn/attendance-backend-go/internal/handler/http/middleware"
	"github.com/chamcong-vn/attendance-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth         AuthHandler
	Employee     EmployeeHandler
	Contract     ContractHandler
	Attendance   AttendanceHandler
	Adjustment   AdjustmentHandler
	Payroll      PayrollHandler
	Schedule     ScheduleHandler
	Leave        LeaveHandler
	Notification NotificationHandler
	Report       ReportHandler
}

func NewRouter(cfg config.AppConfig, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(cfg.Env == "development")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.Refresh)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired)

			r.Route("/me", func(r chi.Router) {
				r.Get("/", h.Employee.Me)
				r.Put("/", h.Employee.UpdateMe)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", h.Attendance.CheckIn)
				r.Post("/check-out", h.Attendance.CheckOut)
				r.Get("/my", h.Attendance.MyHistory)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Attendance.ListAll)
					r.Put("/{id}", h.Attendance.Edit)
				})
			})

			r.Route("/leave-requests", func(r chi.Router) {
				r.Post("/", h.Leave.Create)
				r.Get("/my", h.Leave.ListMine)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/pending", h.Leave.ListPending)
					r.Post("/{id}/approve", h.Leave.Approve)
					r.Post("/{id}/reject", h.Leave.Reject)
				})
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.Notification.ListMine)
				r.Post("/read-all", h.Notification.MarkAllRead)
				r.Post("/{id}/read", h.Notification.MarkRead)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/my", h.Payroll.MyPayslip)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/run", h.Payroll.Run)
					r.Get("/", h.Payroll.ListByPeriod)
					r.Route("/settings", func(r chi.Router) {
						r.Get("/", h.Payroll.GetSettings)
						r.Put("/", h.Payroll.UpdateSettings)
					})
				})
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/employees", func(r chi.Router) {
					r.Get("/", h.Employee.List)
					r.Post("/", h.Employee.Create)
					r.Get("/{id}", h.Employee.Get)
					r.Get("/{id}/contracts", h.Contract.ListByEmployee)
					r.Post("/{id}/contracts", h.Contract.Create)
					r.Get("/{id}/adjustments", h.Adjustment.ListByEmployee)
				})

				r.Route("/contracts", func(r chi.Router) {
					r.Put("/{contractID}", h.Contract.Update)
					r.Delete("/{contractID}", h.Contract.Delete)
				})

				r.Route("/adjustments", func(r chi.Router) {
					r.Post("/", h.Adjustment.Create)
					r.Delete("/{id}", h.Adjustment.Delete)
				})

				r.Route("/shifts", func(r chi.Router) {
					r.Get("/", h.Schedule.ListShifts)
					r.Post("/", h.Schedule.CreateShift)
					r.Put("/{id}", h.Schedule.UpdateShift)
					r.Delete("/{id}", h.Schedule.DeleteShift)
				})

				r.Route("/shift-assignments", func(r chi.Router) {
					r.Get("/", h.Schedule.ListAssignments)
					r.Post("/", h.Schedule.Assign)
					r.Delete("/{id}", h.Schedule.DeleteAssignment)
				})

				r.Route("/reports", func(r chi.Router) {
					r.Get("/salary-summary", h.Report.SalarySummary)
					r.Get("/attendance-detail", h.Report.AttendanceDetail)
				})
			})
		})
	})

	return r
}
