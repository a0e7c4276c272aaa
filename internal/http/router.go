package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/moneta-app/finance-tracker/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Credential endpoints are rate limited per client IP.
	r.Group(func(r chi.Router) {
		r.Use(RateLimitMiddleware)
		r.Post("/register", handlers.RegisterHandler)
		r.Post("/login", handlers.LoginHandler)
		r.Post("/refresh", handlers.RefreshHandler)
	})

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware)
		r.Post("/logout", handlers.LogoutHandler)

		r.Post("/expenses", handlers.CreateExpenseHandler)
		r.Get("/expenses/search", handlers.SearchExpensesHandler)
		r.Get("/expenses/{id}", handlers.GetExpenseByIDHandler)
		r.Put("/expenses/{id}", handlers.UpdateExpenseHandler)
		r.Delete("/expenses/{id}", handlers.DeleteExpenseHandler)

		r.Post("/incomes", handlers.CreateIncomeHandler)
		r.Get("/incomes/search", handlers.SearchIncomesHandler)
		r.Get("/incomes/{id}", handlers.GetIncomeByIDHandler)
		r.Put("/incomes/{id}", handlers.UpdateIncomeHandler)
		r.Delete("/incomes/{id}", handlers.DeleteIncomeHandler)

		r.Get("/stats/sum", handlers.GetBalanceHandler)
		r.Get("/stats/expenses", handlers.GetExpenseStatsHandler)
		r.Get("/stats/expenses/advanced", handlers.GetAdvancedExpenseStatsHandler)
		r.Get("/stats/incomes", handlers.GetIncomeStatsHandler)
		r.Get("/stats/incomes/advanced", handlers.GetAdvancedIncomeStatsHandler)

		r.Post("/assistant/query", handlers.AssistantQueryHandler)
	})

	return r
}
