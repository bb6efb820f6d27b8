// Package server exposes the finance service over JSON HTTP. Routes are
// versioned under /v1 and all of them except /health require an
// authenticated user, enforced by the auth middleware installed in main.
package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/budgetbuddy/backend/internal/service"
)

// Server routes HTTP requests to the finance service.
type Server struct {
	svc *service.FinanceService
	mux *http.ServeMux
}

// New builds the server and registers all routes.
func New(svc *service.FinanceService) *Server {
	s := &Server{
		svc: svc,
		mux: http.NewServeMux(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /health", s.handleHealth)

	s.mux.HandleFunc("POST /v1/transactions", s.handleAddTransaction)
	s.mux.HandleFunc("GET /v1/transactions", s.handleListTransactions)
	s.mux.HandleFunc("DELETE /v1/transactions/{id}", s.handleDeleteTransaction)
	s.mux.HandleFunc("POST /v1/transactions/reset", s.handleResetMonth)

	s.mux.HandleFunc("POST /v1/categories", s.handleAddCategory)
	s.mux.HandleFunc("GET /v1/categories", s.handleListCategories)
	s.mux.HandleFunc("PUT /v1/categories/{id}", s.handleUpdateCategory)
	s.mux.HandleFunc("DELETE /v1/categories/{id}", s.handleDeleteCategory)
	s.mux.HandleFunc("POST /v1/categories/defaults", s.handleInitDefaults)

	s.mux.HandleFunc("PUT /v1/budget", s.handleSetBudget)
	s.mux.HandleFunc("GET /v1/budget", s.handleGetBudget)
	s.mux.HandleFunc("GET /v1/summary", s.handleSummary)

	s.mux.HandleFunc("GET /v1/alerts", s.handleListAlerts)
	s.mux.HandleFunc("POST /v1/alerts/{id}/read", s.handleMarkAlertRead)

	s.mux.HandleFunc("POST /v1/sms/parse", s.handleParseSMS)
	s.mux.HandleFunc("POST /v1/sms/confirm", s.handleConfirmSMS)

	s.mux.HandleFunc("GET /v1/profile", s.handleGetProfile)
	s.mux.HandleFunc("PUT /v1/profile", s.handleSaveProfile)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// writeJSON writes a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[Server] failed to encode response: %v", err)
	}
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError maps a service error to an HTTP status and JSON body.
func writeError(w http.ResponseWriter, err error) {
	code := service.CodeOf(err)
	status := http.StatusInternalServerError
	switch code {
	case service.CodeInvalidArgument:
		status = http.StatusBadRequest
	case service.CodeUnauthenticated:
		status = http.StatusUnauthorized
	case service.CodeNotFound:
		status = http.StatusNotFound
	}
	if status == http.StatusInternalServerError {
		log.Printf("[Server] internal error: %v", err)
	}
	writeJSON(w, status, errorResponse{Code: string(code), Message: err.Error()})
}

// decodeBody decodes a JSON request body into v.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Code:    string(service.CodeInvalidArgument),
			Message: "invalid request body: " + err.Error(),
		})
		return false
	}
	return true
}
