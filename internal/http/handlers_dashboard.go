package http

import (
	"net/http"
	"time"

	"logisystem/internal/core"
)

const overviewTTL = 30 * time.Second

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if ov, ok := s.overview.Get(); ok {
		writeJSON(w, http.StatusOK, ov)
		return
	}

	ov := core.BuildOverview(s.store.Transactions())
	s.overview.Set(ov, overviewTTL)
	writeJSON(w, http.StatusOK, ov)
}

type foldPreferenceRequest struct {
	Fold bool `json:"fold"`
}

// handleFoldPreference reads or stores the dashboard layout preference.
func (s *Server) handleFoldPreference(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, map[string]bool{"fold": s.store.FoldLayout()})
	case http.MethodPost:
		var req foldPreferenceRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := s.store.SetFoldLayout(r.Context(), req.Fold); err != nil {
			writeError(w, http.StatusInternalServerError, "preference could not be persisted")
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"fold": req.Fold})
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}
