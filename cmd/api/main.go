package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/shamil-erp/hr-backend-go/internal/config"
	appHTTP "github.com/shamil-erp/hr-backend-go/internal/handler/http"
	"github.com/shamil-erp/hr-backend-go/internal/pkg/database"
	"github.com/shamil-erp/hr-backend-go/internal/pkg/jwt"
	"github.com/shamil-erp/hr-backend-go/internal/repository/postgresql"
	payrollService "github.com/shamil-erp/hr-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "shamil-erp"),
		slog.String("env", cfg.App.Env),
	)

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	deductionRepo := postgresql.NewDeductionRepository(db)
	loanRepo := postgresql.NewLoanRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)

	payrollSvc := payrollService.NewPayrollService(
		employeeRepo,
		attendanceRepo,
		deductionRepo,
		loanRepo,
		logger,
	)

	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(JWTService, payrollHandler, cfg.App.FrontendURL)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
