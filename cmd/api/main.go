package main

import (
	"fmt"
	"net/http"

	"github.com/zafrapp/zafra-backend-go/internal/config"
	"github.com/zafrapp/zafra-backend-go/internal/domain/zakat"
	appHTTP "github.com/zafrapp/zafra-backend-go/internal/handler/http"
	"github.com/zafrapp/zafra-backend-go/internal/pkg/database"
	"github.com/zafrapp/zafra-backend-go/internal/pkg/jwt"
	"github.com/zafrapp/zafra-backend-go/internal/repository/postgresql"
	financeService "github.com/zafrapp/zafra-backend-go/internal/service/finance"
	payrollService "github.com/zafrapp/zafra-backend-go/internal/service/payroll"
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

	payrollRepo := postgresql.NewPayrollRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	profileRepo := postgresql.NewProfileRepository(db)
	transactionRepo := postgresql.NewTransactionRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)
	zakatRule := zakat.NewRule(cfg.Zakat.GoldPricePerGram)

	payrollSvc := payrollService.NewPayrollService(payrollRepo, profileRepo, employeeRepo, zakatRule)
	financeSvc := financeService.NewFinanceService(transactionRepo, cfg.Finance.CashFlowOpeningBalance)

	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	financeHandler := appHTTP.NewFinanceHandler(financeSvc)

	router := appHTTP.NewRouter(
		JWTService,
		payrollHandler,
		financeHandler,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
