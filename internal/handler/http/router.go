package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/zafrapp/zafra-backend-go/internal/handler/http/middleware"
	"github.com/zafrapp/zafra-backend-go/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	payrollHandler PayrollHandler,
	financeHandler FinanceHandler,
	env string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "zafra-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
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

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/payrolls", func(r chi.Router) {
				r.Post("/generate/{month}", payrollHandler.Generate)
				r.Get("/month/{month}", payrollHandler.ListByMonth)
				r.Get("/month/{month}/summary", payrollHandler.GetSummary)
				r.Get("/month/{month}/compliance", payrollHandler.EvaluateCompliance)
				r.Put("/{employeeID}/{month}", payrollHandler.Upsert)
				r.Get("/{id}", payrollHandler.GetRecord)
				r.Post("/{id}/pay", payrollHandler.MarkPaid)
				r.Patch("/{id}/zakat-paid", payrollHandler.SetZakatPaid)
			})

			r.Route("/finance", func(r chi.Router) {
				r.Post("/transactions", financeHandler.CreateTransaction)
				r.Get("/transactions", financeHandler.ListTransactions)
				r.Get("/ledger", financeHandler.GetLedger)
				r.Get("/balance-sheet", financeHandler.GetBalanceSheet)
				r.Get("/profit-loss", financeHandler.GetProfitLoss)
				r.Get("/cash-flow", financeHandler.GetCashFlow)
				r.Get("/zis", financeHandler.GetZisStatement)
				r.Get("/summary", financeHandler.GetSummary)
				r.Get("/reports", financeHandler.GetReports)
			})
		})
	})
	return r
}
