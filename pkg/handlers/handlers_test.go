package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/chris/statement-ledger/pkg/api"
	"github.com/chris/statement-ledger/pkg/events"
	statementshandler "github.com/chris/statement-ledger/pkg/handlers/statements"
	usershandler "github.com/chris/statement-ledger/pkg/handlers/users"
	"github.com/chris/statement-ledger/pkg/ledger"
	"github.com/chris/statement-ledger/pkg/storage/memory"
	"github.com/chris/statement-ledger/pkg/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store := memory.New()
	tokens := users.NewTokenIssuer([]byte("test-secret"), time.Hour)
	usersSvc := users.NewService(store, tokens)
	ledgerSvc := ledger.New(store, store)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := NewRouter(
		logger,
		tokens,
		usershandler.NewUsersHandler(usersSvc),
		statementshandler.NewStatementsHandler(ledgerSvc, &events.NoOpPublisher{}),
	)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func postJSON(t *testing.T, client *http.Client, url, token string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	require.NoError(t, err)
	return resp
}

func getJSON(t *testing.T, client *http.Client, url, token string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestFullFlow(t *testing.T) {
	server := newTestServer(t)
	client := server.Client()

	// Register and authenticate.
	resp := postJSON(t, client, server.URL+"/api/v1/users", "", api.NewUser{
		Name:     "Artur Minelli",
		Email:    "arturminelli@gmail.com",
		Password: "lufaardala",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, client, server.URL+"/api/v1/sessions", "", api.NewSession{
		Email:    "arturminelli@gmail.com",
		Password: "lufaardala",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	session := decode[api.Session](t, resp)
	require.NotEmpty(t, session.Token)

	// Deposit, then withdraw part of it.
	resp = postJSON(t, client, server.URL+"/api/v1/statements/deposit", session.Token, api.NewStatement{
		Amount:      10000,
		Description: "Won the lottery",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	deposit := decode[api.Statement](t, resp)
	assert.NotEmpty(t, deposit.Id)

	resp = postJSON(t, client, server.URL+"/api/v1/statements/withdraw", session.Token, api.NewStatement{
		Amount:      5000,
		Description: "Buy a new fridge",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// Balance reflects both statements in creation order.
	resp = getJSON(t, client, server.URL+"/api/v1/statements/balance", session.Token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	balance := decode[api.Balance](t, resp)
	assert.Equal(t, int64(5000), balance.Balance)
	require.Len(t, balance.Statement, 2)
	assert.Equal(t, "DEPOSIT", balance.Statement[0].Type)
	assert.Equal(t, "WITHDRAW", balance.Statement[1].Type)

	// Single statement lookup round-trips the deposit.
	resp = getJSON(t, client, server.URL+"/api/v1/statements/"+deposit.Id, session.Token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	found := decode[api.Statement](t, resp)
	assert.Equal(t, deposit.Id, found.Id)
	assert.Equal(t, "Won the lottery", found.Description)

	// Overdraft is rejected and leaves the balance untouched.
	resp = postJSON(t, client, server.URL+"/api/v1/statements/withdraw", session.Token, api.NewStatement{
		Amount:      100000,
		Description: "Buy a car",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	resp.Body.Close()

	resp = getJSON(t, client, server.URL+"/api/v1/statements/balance", session.Token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	balance = decode[api.Balance](t, resp)
	assert.Equal(t, int64(5000), balance.Balance)

	// Profile comes back for the authenticated user.
	resp = getJSON(t, client, server.URL+"/api/v1/profile", session.Token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	profile := decode[api.User](t, resp)
	assert.Equal(t, "arturminelli@gmail.com", profile.Email)
}

func TestAuthRequired(t *testing.T) {
	server := newTestServer(t)
	client := server.Client()

	t.Run("Missing Token", func(t *testing.T) {
		resp := getJSON(t, client, server.URL+"/api/v1/statements/balance", "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("Garbage Token", func(t *testing.T) {
		resp := getJSON(t, client, server.URL+"/api/v1/statements/balance", "not-a-token")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("Token For Deleted User", func(t *testing.T) {
		// A token that verifies but whose subject no longer resolves must
		// surface the user-not-found failure from the ledger.
		tokens := users.NewTokenIssuer([]byte("test-secret"), time.Hour)
		token, err := tokens.Issue("non-existing-id")
		require.NoError(t, err)

		resp := getJSON(t, client, server.URL+"/api/v1/statements/balance", token)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		resp.Body.Close()
	})
}
