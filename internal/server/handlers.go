package server

import (
	"net/http"
	"strconv"

	"github.com/budgetbuddy/backend/internal/model"
)

// Transactions

func (s *Server) handleAddTransaction(w http.ResponseWriter, r *http.Request) {
	var tx model.Transaction
	if !decodeBody(w, r, &tx) {
		return
	}
	created, err := s.svc.AddTransaction(r.Context(), &tx)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := s.svc.ListTransactions(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, txs)
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.DeleteTransaction(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleResetMonth(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.ResetMonth(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Categories

func (s *Server) handleAddCategory(w http.ResponseWriter, r *http.Request) {
	var c model.Category
	if !decodeBody(w, r, &c) {
		return
	}
	created, err := s.svc.AddCategory(r.Context(), &c)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := s.svc.ListCategories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cats)
}

func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	var c model.Category
	if !decodeBody(w, r, &c) {
		return
	}
	c.ID = r.PathValue("id")
	updated, err := s.svc.UpdateCategory(r.Context(), &c)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.DeleteCategory(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleInitDefaults(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.InitializeDefaultCategories(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	cats, err := s.svc.ListCategories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cats)
}

// Budget and summary

func (s *Server) handleSetBudget(w http.ResponseWriter, r *http.Request) {
	var b model.Budget
	if !decodeBody(w, r, &b) {
		return
	}
	saved, err := s.svc.SetBudget(r.Context(), &b)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (s *Server) handleGetBudget(w http.ResponseWriter, r *http.Request) {
	b, err := s.svc.CurrentBudget(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if b == nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Code: "NOT_FOUND", Message: "no budget set for the current month"})
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.svc.FinancialSummary(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// Alerts

func (s *Server) handleListAlerts(w http.ResponseWriter, r *http.Request) {
	unreadOnly, _ := strconv.ParseBool(r.URL.Query().Get("unread"))
	alerts, err := s.svc.ListAlerts(r.Context(), unreadOnly)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, alerts)
}

func (s *Server) handleMarkAlertRead(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.MarkAlertRead(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SMS

type parseSMSRequest struct {
	Body   string `json:"body"`
	Sender string `json:"sender"`
}

type parseSMSResponse struct {
	Transaction       *model.SMSTransaction `json:"transaction,omitempty"`
	SuggestedCategory string                `json:"suggestedCategory,omitempty"`
	Detected          bool                  `json:"detected"`
}

func (s *Server) handleParseSMS(w http.ResponseWriter, r *http.Request) {
	var req parseSMSRequest
	if !decodeBody(w, r, &req) {
		return
	}
	tx, suggested, err := s.svc.ParseSMS(r.Context(), req.Body, req.Sender)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, parseSMSResponse{
		Transaction:       tx,
		SuggestedCategory: suggested,
		Detected:          tx != nil,
	})
}

type confirmSMSRequest struct {
	Transaction *model.SMSTransaction `json:"transaction"`
	CategoryID  string                `json:"categoryId"`
}

func (s *Server) handleConfirmSMS(w http.ResponseWriter, r *http.Request) {
	var req confirmSMSRequest
	if !decodeBody(w, r, &req) {
		return
	}
	created, err := s.svc.ConfirmSMSTransaction(r.Context(), req.Transaction, req.CategoryID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// Profile

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	u, err := s.svc.UserProfile(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (s *Server) handleSaveProfile(w http.ResponseWriter, r *http.Request) {
	var u model.User
	if !decodeBody(w, r, &u) {
		return
	}
	if err := s.svc.SaveUserProfile(r.Context(), &u); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}
