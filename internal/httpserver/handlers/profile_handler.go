package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"storefront/internal/auth"
	"storefront/internal/store"
)

func Profile(users store.Users, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := users.ByID(r.Context(), auth.UserID(r.Context()))
		if err != nil {
			respondStoreError(w, lg, err, "user not found")
			return
		}
		respondJSON(w, http.StatusOK, map[string]interface{}{"user": u})
	}
}

type updateProfileReq struct {
	Name         string `json:"name" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	Age          int    `json:"age" validate:"required,gte=18,lte=100"`
	Gender       string `json:"gender" validate:"required"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`
	Country      string `json:"country"`
}

func UpdateProfile(users store.Users, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateProfileReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			respondMessage(w, http.StatusBadRequest, "name, phone, age, and gender are required")
			return
		}
		u, err := users.ByID(r.Context(), auth.UserID(r.Context()))
		if err != nil {
			respondStoreError(w, lg, err, "user not found")
			return
		}
		u.Name = req.Name
		u.Phone = req.Phone
		u.Age = req.Age
		u.Gender = req.Gender
		u.AddressLine1 = req.AddressLine1
		u.AddressLine2 = req.AddressLine2
		u.City = req.City
		u.State = req.State
		u.ZipCode = req.ZipCode
		u.Country = req.Country
		if err := users.Update(r.Context(), u); err != nil {
			respondStoreError(w, lg, err, "user not found")
			return
		}
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"message": "profile updated successfully",
			"user":    u,
		})
	}
}
