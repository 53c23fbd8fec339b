package http

import (
	"errors"
	"net/http"
	"strconv"

	"logisystem/internal/core"
	"logisystem/internal/services"
)

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.store.Transactions())
	case http.MethodPost:
		s.handleCreateTransaction(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	form, err := parseTransactionForm(r)
	if err != nil {
		if errors.Is(err, core.ErrInvalidAmount) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.applySaveDelay()

	created, err := s.builder.Register(r.Context(), form)
	if err != nil {
		writeBuilderError(w, err)
		return
	}

	s.overview.Invalidate()
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleVoidTransaction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid transaction id")
		return
	}

	if err := s.store.VoidTransaction(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, "transactions could not be persisted")
		return
	}

	s.overview.Invalidate()
	writeJSON(w, http.StatusOK, map[string]bool{"voided": true})
}

// writeBuilderError maps precondition failures to 422. Persistence failures
// return 500 even though the transaction is already in memory.
func writeBuilderError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrAmountRequired),
		errors.Is(err, services.ErrRouteRequired),
		errors.Is(err, services.ErrAccountRequired),
		errors.Is(err, services.ErrIncidenceTypeRequired),
		errors.Is(err, services.ErrProviderNameRequired),
		errors.Is(err, services.ErrExternalPlateRequired),
		errors.Is(err, services.ErrTruckRequired),
		errors.Is(err, services.ErrUnknownAccount),
		errors.Is(err, services.ErrUnknownEmployee),
		errors.Is(err, core.ErrInvalidAmount):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
