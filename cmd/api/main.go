package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/hrms-labs/hrms-backend-go/internal/config"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/dashboard"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/employee_dashboard"
	"github.com/hrms-labs/hrms-backend-go/internal/fixtures"
	appHTTP "github.com/hrms-labs/hrms-backend-go/internal/handler/http"
	"github.com/hrms-labs/hrms-backend-go/internal/pkg/jwt"
	"github.com/hrms-labs/hrms-backend-go/internal/pkg/session"
	"github.com/hrms-labs/hrms-backend-go/internal/repository/memory"
	authService "github.com/hrms-labs/hrms-backend-go/internal/service/auth"
	dashboardService "github.com/hrms-labs/hrms-backend-go/internal/service/dashboard"
	departmentService "github.com/hrms-labs/hrms-backend-go/internal/service/department"
	employeeService "github.com/hrms-labs/hrms-backend-go/internal/service/employee"
	employeeDashboardService "github.com/hrms-labs/hrms-backend-go/internal/service/employee_dashboard"
	leaveService "github.com/hrms-labs/hrms-backend-go/internal/service/leave"
	payrollService "github.com/hrms-labs/hrms-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	ctx := context.Background()

	userRepo := memory.NewUserStore()
	employeeRepo := memory.NewEmployeeStore()
	departmentRepo := memory.NewDepartmentStore(employeeRepo)
	leaveRepo := memory.NewLeaveRequestStore()
	payrollRepo := memory.NewPayrollStore()

	if err := fixtures.Seed(ctx, userRepo, departmentRepo, employeeRepo, leaveRepo, payrollRepo); err != nil {
		log.Fatal("Failed to seed demo data:", err)
	}

	sessionStorage, err := session.NewFileStorage(cfg.Session.FilePath)
	if err != nil {
		log.Fatal("Failed to initialize session storage:", err)
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, JWTService, sessionStorage, cfg.Auth.LoginDelay)
	if err := authSvc.Restore(ctx); err != nil {
		log.Fatal("Failed to restore session:", err)
	}

	employeeSvc := employeeService.NewEmployeeService(employeeRepo, departmentRepo)
	departmentSvc := departmentService.NewDepartmentService(departmentRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo, userRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, employeeRepo, userRepo)
	dashboardSvc := dashboardService.NewDashboardService(
		employeeRepo,
		departmentRepo,
		leaveRepo,
		payrollRepo,
		dashboard.StaticRatingProvider{Rating: 4.2},
	)
	empDashboardSvc := employeeDashboardService.NewEmployeeDashboardService(
		employeeRepo,
		leaveRepo,
		payrollRepo,
		employee_dashboard.StaticAttendanceProvider{Present: 20, Absent: 2, Late: 1},
		cfg.Leave,
	)

	authHandler := appHTTP.NewAuthHandler(authSvc, JWTService)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	departmentHandler := appHTTP.NewDepartmentHandler(departmentSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc, empDashboardSvc)

	router := appHTTP.NewRouter(
		JWTService,
		employeeRepo,
		authHandler,
		employeeHandler,
		departmentHandler,
		leaveHandler,
		payrollHandler,
		dashboardHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
