package http

import (
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	emailOK := subtle.ConstantTimeCompare([]byte(req.Email), []byte(s.adminEmail)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.adminPassword)) == 1
	if !emailOK || !passOK {
		slog.WarnContext(r.Context(), "Login rejected", "email", req.Email)
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if err := s.store.SetAuthenticated(r.Context(), true); err != nil {
		writeError(w, http.StatusInternalServerError, "session could not be persisted")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"authenticated": true})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if err := s.store.SetAuthenticated(r.Context(), false); err != nil {
		writeError(w, http.StatusInternalServerError, "session could not be persisted")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"authenticated": false})
}
