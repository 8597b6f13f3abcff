// Package httpx holds the response helpers shared by the API handlers.
package httpx

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/attesto/attesto/internal/fault"
)

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Error maps domain errors onto HTTP statuses: validation failures are
// 400, the caller's not-found sentinels 404, consistency failures 409
// (the transaction rolled back, stored totals are unchanged), anything
// else a generic 500.
func Error(w http.ResponseWriter, err error, notFound ...error) {
	switch {
	case fault.IsValidation(err):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case isAny(err, notFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case fault.IsConsistency(err):
		http.Error(w, "could not update pricing: totals left unchanged", http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func isAny(err error, targets []error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}

	return false
}
