package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/democracydevelopers/raire-go/raire"
)

// Handlers holds the dependencies HTTP handlers need.
type Handlers struct {
	logger *slog.Logger
}

// handleRaire decodes a Problem from the request body, runs it through
// raire.Solve, and writes back the resulting Solution. It never rejects a
// well-formed Problem that Solve itself would accept; a solve failure (tied
// winners, timeout, etc.) is still a 200 response carrying Solution.Err,
// matching the original's "always returns a solution envelope" contract.
func (h *Handlers) handleRaire(w http.ResponseWriter, r *http.Request) {
	var problem raire.Problem
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&problem); err != nil {
		h.logger.Warn("malformed problem body", "error", err, "request_id", RequestIDFromContext(r.Context()))
		writeError(w, http.StatusBadRequest, "malformed RAIRE problem: "+err.Error())
		return
	}

	solution := raire.Solve(problem)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(solution); err != nil {
		h.logger.Error("failed to encode solution", "error", err, "request_id", RequestIDFromContext(r.Context()))
	}
}

func (h *Handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

type errorBody struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Error: message})
}
