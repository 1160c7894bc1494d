package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"storefront/internal/auth"
	"storefront/internal/models"
	"storefront/internal/store"
)

var validate = validator.New()

type registerReq struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required"`
	Age          int    `json:"age" validate:"required,gte=18,lte=100"`
	Gender       string `json:"gender" validate:"required"`
	Password     string `json:"password" validate:"required,min=6"`
	Role         string `json:"role" validate:"required"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`
	Country      string `json:"country"`
}

func Register(users store.Users, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}
		req.Email = strings.TrimSpace(req.Email)
		if err := validate.Struct(req); err != nil {
			respondMessage(w, http.StatusBadRequest, "all required fields must be provided and valid")
			return
		}
		role, approved, ok := models.NormalizeRole(req.Role)
		if !ok {
			respondMessage(w, http.StatusBadRequest, "invalid role specified")
			return
		}
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			lg.Errorw("password hash failed", "error", err)
			respondMessage(w, http.StatusInternalServerError, "internal server error")
			return
		}
		u := &models.User{
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: hash,
			Phone:        req.Phone,
			Age:          req.Age,
			Gender:       req.Gender,
			Role:         role,
			IsApproved:   approved,
			AddressLine1: req.AddressLine1,
			AddressLine2: req.AddressLine2,
			City:         req.City,
			State:        req.State,
			ZipCode:      req.ZipCode,
			Country:      req.Country,
			LastActivity: time.Now(),
		}
		if err := users.Create(r.Context(), u); err != nil {
			respondStoreError(w, lg, err, "")
			return
		}
		respondJSON(w, http.StatusCreated, map[string]interface{}{
			"message": "user registered successfully",
			"user":    u,
		})
	}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Login(users store.Users, tokens *auth.Tokens, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}
		// The unknown-email and wrong-password paths must be
		// indistinguishable to the caller.
		u, err := users.ByEmail(r.Context(), req.Email)
		if errors.Is(err, store.ErrNotFound) {
			respondMessage(w, http.StatusUnauthorized, "invalid email or password")
			return
		}
		if err != nil {
			respondStoreError(w, lg, err, "")
			return
		}
		ok, err := auth.CheckPassword(u.PasswordHash, req.Password)
		if err != nil {
			lg.Errorw("stored password hash unusable", "user_id", u.ID, "error", err)
			respondMessage(w, http.StatusInternalServerError, "internal server error")
			return
		}
		if !ok {
			respondMessage(w, http.StatusUnauthorized, "invalid email or password")
			return
		}
		if models.AdminTier(u.Role) && !u.IsApproved {
			respondMessage(w, http.StatusForbidden, "account pending approval")
			return
		}
		tok, err := tokens.Sign(u.ID, u.Email, u.Role)
		if err != nil {
			lg.Errorw("token signing failed", "error", err)
			respondMessage(w, http.StatusInternalServerError, "internal server error")
			return
		}
		if err := users.TouchActivity(r.Context(), u.ID); err != nil {
			lg.Warnw("last_activity update failed", "user_id", u.ID, "error", err)
		}
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"token": tok,
			"user":  u,
		})
	}
}
