package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"storefront/internal/store"
)

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func respondMessage(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"message": msg})
}

// respondStoreError maps storage sentinels to HTTP statuses. Anything
// unexpected is logged with detail and surfaced as a generic 500.
func respondStoreError(w http.ResponseWriter, lg *zap.SugaredLogger, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondMessage(w, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, store.ErrDuplicateEmail):
		respondMessage(w, http.StatusConflict, "user with this email already exists")
	case errors.Is(err, store.ErrInsufficientStock):
		respondMessage(w, http.StatusConflict, "insufficient stock")
	default:
		lg.Errorw("storage error", "error", err)
		respondMessage(w, http.StatusInternalServerError, "internal server error")
	}
}

func uriID(r *http.Request, name string) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, name), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
