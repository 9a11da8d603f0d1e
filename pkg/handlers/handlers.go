// Package handlers composes the resource handlers into the HTTP router.
package handlers

import (
	"log/slog"
	"net/http"

	statementshandler "github.com/chris/statement-ledger/pkg/handlers/statements"
	usershandler "github.com/chris/statement-ledger/pkg/handlers/users"
	appmw "github.com/chris/statement-ledger/pkg/middleware"
	"github.com/chris/statement-ledger/pkg/users"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter builds the chi router with the full API surface. Statement and
// profile routes require a valid bearer token; user registration and session
// creation do not.
func NewRouter(
	logger *slog.Logger,
	tokens *users.TokenIssuer,
	usersHandler *usershandler.UsersHandler,
	statementsHandler *statementshandler.StatementsHandler,
) *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(appmw.NewStructuredLogger(logger))

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/users", usersHandler.CreateUser)
		r.Post("/sessions", usersHandler.CreateSession)

		r.Group(func(r chi.Router) {
			r.Use(appmw.Authenticated(tokens))

			r.Get("/profile", usersHandler.GetProfile)

			r.Post("/statements/deposit", statementsHandler.Deposit)
			r.Post("/statements/withdraw", statementsHandler.Withdraw)
			r.Get("/statements/balance", statementsHandler.GetBalance)
			r.Get("/statements/{statementID}", statementsHandler.GetStatementOperation)
		})
	})

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return router
}
