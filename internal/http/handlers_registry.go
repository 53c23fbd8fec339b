package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"logisystem/internal/core"
	"logisystem/internal/services"
)

func (s *Server) handleEmployees(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.store.Employees())
	case http.MethodPost:
		var e core.Employee
		if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		s.applySaveDelay()
		created, err := s.registry.AddEmployee(r.Context(), e)
		if err != nil {
			writeRegistryError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleTrucks(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.store.Trucks())
	case http.MethodPost:
		var t core.Truck
		if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		s.applySaveDelay()
		created, err := s.registry.AddTruck(r.Context(), t)
		if err != nil {
			writeRegistryError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleDeleteTruck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid truck id")
		return
	}

	if err := s.store.DeleteTruck(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, "truck list could not be persisted")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (s *Server) handleAccounts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.store.Accounts())
	case http.MethodPost:
		var a core.Account
		if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		s.applySaveDelay()
		created, err := s.registry.AddAccount(r.Context(), a)
		if err != nil {
			writeRegistryError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// applySaveDelay keeps the UI's saving indicator visible for slow-feeling
// registrations. Disabled when the configured delay is zero.
func (s *Server) applySaveDelay() {
	if s.saveDelay > 0 {
		time.Sleep(s.saveDelay)
	}
}

// writeRegistryError maps validation failures to 422 and persistence failures
// to 500. The entity is already in memory when persistence fails.
func writeRegistryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrDuplicateAccountName),
		errors.Is(err, core.ErrEmptyName),
		errors.Is(err, core.ErrEmptyNationalID),
		errors.Is(err, core.ErrEmptyPlate),
		errors.Is(err, core.ErrProviderRequired),
		errors.Is(err, core.ErrContractRequired),
		errors.Is(err, core.ErrInvalidAccountType):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
