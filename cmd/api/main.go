package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/chamcong-vn/attendance-backend-go/internal/config"
	appHTTP "github.com/chamcong-vn/attendance-backend-go/internal/handler/http"
	"github.com/chamcong-vn/attendance-backend-go/internal/pkg/database"
	"github.com/chamcong-vn/attendance-backend-go/internal/pkg/jwt"
	"github.com/chamcong-vn/attendance-backend-go/internal/repository/postgresql"
	adjustmentService "github.com/chamcong-vn/attendance-backend-go/internal/service/adjustment"
	attendanceService "github.com/chamcong-vn/attendance-backend-go/internal/service/attendance"
	authService "github.com/chamcong-vn/attendance-backend-go/internal/service/auth"
	contractService "github.com/chamcong-vn/attendance-backend-go/internal/service/contract"
	employeeService "github.com/chamcong-vn/attendance-backend-go/internal/service/employee"
	leaveService "github.com/chamcong-vn/attendance-backend-go/internal/service/leave"
	notificationService "github.com/chamcong-vn/attendance-backend-go/internal/service/notification"
	payrollService "github.com/chamcong-vn/attendance-backend-go/internal/service/payroll"
	reportService "github.com/chamcong-vn/attendance-backend-go/internal/service/report"
	scheduleService "github.com/chamcong-vn/attendance-backend-go/internal/service/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	location, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatal("Invalid APP_TIMEZONE: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	userRepo := postgresql.NewUserRepository(db)
	contractRepo := postgresql.NewContractRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	adjustmentRepo := postgresql.NewAdjustmentRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	settingsRepo := postgresql.NewSalarySettingsRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	assignmentRepo := postgresql.NewAssignmentRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewService(userRepo, jwtService)
	employeeSvc := employeeService.NewService(userRepo)
	contractSvc := contractService.NewService(contractRepo, userRepo)
	attendanceSvc := attendanceService.NewService(attendanceRepo, assignmentRepo, shiftRepo, location)
	adjustmentSvc := adjustmentService.NewService(adjustmentRepo, userRepo)
	payrollSvc := payrollService.NewService(userRepo, contractRepo, attendanceRepo, adjustmentRepo, payrollRepo, settingsRepo, logger)
	scheduleSvc := scheduleService.NewService(shiftRepo, assignmentRepo, userRepo)
	leaveSvc := leaveService.NewService(leaveRepo, notificationRepo)
	notificationSvc := notificationService.NewService(notificationRepo)
	reportSvc := reportService.NewService(userRepo, attendanceRepo, payrollRepo)

	handlers := appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc, jwtService),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		Contract:     appHTTP.NewContractHandler(contractSvc),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Adjustment:   appHTTP.NewAdjustmentHandler(adjustmentSvc),
		Payroll:      appHTTP.NewPayrollHandler(payrollSvc),
		Schedule:     appHTTP.NewScheduleHandler(scheduleSvc),
		Leave:        appHTTP.NewLeaveHandler(leaveSvc),
		Notification: appHTTP.NewNotificationHandler(notificationSvc),
		Report:       appHTTP.NewReportHandler(reportSvc),
	}

	router := appHTTP.NewRouter(cfg.App, jwtService, handlers)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("server starting", "addr", addr, "env", cfg.App.Env)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server failed: ", err)
	}
}
