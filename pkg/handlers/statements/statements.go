package statements

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/chris/statement-ledger/pkg/api"
	"github.com/chris/statement-ledger/pkg/events"
	"github.com/chris/statement-ledger/pkg/ledger"
	"github.com/chris/statement-ledger/pkg/mapping"
	"github.com/chris/statement-ledger/pkg/middleware"
	"github.com/chris/statement-ledger/pkg/models"
	"github.com/chris/statement-ledger/pkg/storage"
	"github.com/go-chi/chi/v5"
)

// StatementsHandler holds the dependencies for statement-related handlers.
type StatementsHandler struct {
	Ledger    ledger.Service
	Publisher events.Publisher
}

// NewStatementsHandler creates a new StatementsHandler.
func NewStatementsHandler(ledgerSvc ledger.Service, publisher events.Publisher) *StatementsHandler {
	return &StatementsHandler{Ledger: ledgerSvc, Publisher: publisher}
}

// Deposit handles the logic for recording a deposit.
func (h *StatementsHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	h.createStatement(w, r, models.DEPOSIT)
}

// Withdraw handles the logic for recording a withdrawal.
func (h *StatementsHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	h.createStatement(w, r, models.WITHDRAW)
}

func (h *StatementsHandler) createStatement(w http.ResponseWriter, r *http.Request, opType models.OperationType) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var newStatement api.NewStatement
	if err := json.NewDecoder(r.Body).Decode(&newStatement); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	createdStatement, err := h.Ledger.CreateStatement(r.Context(), userID, opType, newStatement.Amount, newStatement.Description)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrInsufficientFunds):
			http.Error(w, "Insufficient funds", http.StatusUnprocessableEntity)
		case errors.Is(err, ledger.ErrInvalidAmount):
			http.Error(w, "Amount must be positive", http.StatusBadRequest)
		case errors.Is(err, storage.ErrUserNotFound):
			http.Error(w, "User not found", http.StatusNotFound)
		default:
			slog.Error("failed to create statement", "error", err)
			http.Error(w, fmt.Sprintf("Failed to create statement: %v", err), http.StatusInternalServerError)
		}
		return
	}

	h.publishStatementCreated(r, createdStatement)

	apiStatement := mapping.ToApiStatement(createdStatement)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(apiStatement); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// publishStatementCreated emits a best-effort event with the fresh balance.
// A failed publish never fails the request; the statement is already durable.
func (h *StatementsHandler) publishStatementCreated(r *http.Request, statement *models.Statement) {
	balance, err := h.Ledger.GetBalance(r.Context(), statement.UserID)
	if err != nil {
		slog.Error("failed to get balance for statement event", "error", err)
		return
	}

	event := events.Event{
		Type: events.EventTypeStatementCreated,
		Payload: events.StatementCreatedPayload{
			UserID:      statement.UserID,
			StatementID: statement.ID,
			Type:        string(statement.Type),
			Amount:      statement.Amount,
			NewBalance:  balance.Balance,
		},
	}
	if err := h.Publisher.Publish(r.Context(), event); err != nil {
		slog.Error("failed to publish statement event", "error", err)
	}
}

// GetBalance handles the logic for retrieving a user's balance and history.
func (h *StatementsHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	balance, err := h.Ledger.GetBalance(r.Context(), userID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			http.Error(w, "User not found", http.StatusNotFound)
		} else {
			http.Error(w, fmt.Sprintf("Failed to retrieve balance: %v", err), http.StatusInternalServerError)
		}
		return
	}

	apiBalance := mapping.ToApiBalance(balance)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiBalance); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// GetStatementOperation handles the logic for retrieving one statement by id.
func (h *StatementsHandler) GetStatementOperation(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	statementID := chi.URLParam(r, "statementID")

	statement, err := h.Ledger.GetStatementOperation(r.Context(), userID, statementID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrUserNotFound):
			http.Error(w, "User not found", http.StatusNotFound)
		case errors.Is(err, storage.ErrStatementNotFound):
			http.Error(w, "Statement not found", http.StatusNotFound)
		default:
			http.Error(w, fmt.Sprintf("Failed to retrieve statement: %v", err), http.StatusInternalServerError)
		}
		return
	}

	apiStatement := mapping.ToApiStatement(statement)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiStatement); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
