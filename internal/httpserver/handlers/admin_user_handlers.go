package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"storefront/internal/store"
)

func ListUsers(users store.Users, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := users.List(r.Context())
		if err != nil {
			respondStoreError(w, lg, err, "")
			return
		}
		respondJSON(w, http.StatusOK, map[string]interface{}{"users": list})
	}
}

func ApproveUser(users store.Users, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := uriID(r, "id")
		if !ok {
			respondMessage(w, http.StatusBadRequest, "invalid user id")
			return
		}
		u, err := users.Approve(r.Context(), id)
		if err != nil {
			respondStoreError(w, lg, err, "user not found or not an admin")
			return
		}
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"message": "user approved successfully",
			"user":    u,
		})
	}
}

func RejectUser(users store.Users, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := uriID(r, "id")
		if !ok {
			respondMessage(w, http.StatusBadRequest, "invalid user id")
			return
		}
		u, err := users.Reject(r.Context(), id)
		if err != nil {
			respondStoreError(w, lg, err, "user not found or not an admin")
			return
		}
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"message": "user rejected and deleted successfully",
			"user":    u,
		})
	}
}
