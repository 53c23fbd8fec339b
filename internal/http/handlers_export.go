package http

import (
	"fmt"
	"net/http"
	"strings"

	"logisystem/internal/export"
)

// handleExport serves /export/{collection}.{csv|xlsx} downloads.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	name := strings.TrimPrefix(r.URL.Path, "/export/")
	collection, format, ok := strings.Cut(name, ".")
	if !ok {
		writeError(w, http.StatusNotFound, "unknown export")
		return
	}

	var records []export.Record
	switch collection {
	case "transactions":
		records = export.Transactions(s.store.Transactions())
	case "trucks":
		records = export.Trucks(s.store.Trucks())
	case "accounts":
		records = export.Accounts(s.store.Accounts())
	case "employees":
		records = export.Employees(s.store.Employees())
	default:
		writeError(w, http.StatusNotFound, "unknown export")
		return
	}

	switch format {
	case "csv":
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", collection))
		if err := export.CSV(w, records); err != nil {
			writeError(w, http.StatusInternalServerError, "export failed")
		}
	case "xlsx":
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.xlsx", collection))
		if err := export.XLSX(w, collection, records); err != nil {
			writeError(w, http.StatusInternalServerError, "export failed")
		}
	default:
		writeError(w, http.StatusNotFound, "unknown export format")
	}
}
