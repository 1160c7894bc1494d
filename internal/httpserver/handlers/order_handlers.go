package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"storefront/internal/auth"
	"storefront/internal/store"
)

type checkoutReq struct {
	Items           []store.CheckoutItem `json:"items"`
	ShippingAddress string               `json:"shipping_address"`
	PaymentMethod   string               `json:"payment_method"`
}

func Checkout(orders store.Orders, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req checkoutReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if len(req.Items) == 0 {
			respondMessage(w, http.StatusBadRequest, "order must contain at least one item")
			return
		}
		for _, it := range req.Items {
			if it.ProductID == 0 || it.Quantity < 1 {
				respondMessage(w, http.StatusBadRequest, "each item needs a product id and a positive quantity")
				return
			}
		}
		if req.ShippingAddress == "" || req.PaymentMethod == "" {
			respondMessage(w, http.StatusBadRequest, "shipping address and payment method are required")
			return
		}
		order, err := orders.Create(r.Context(), auth.UserID(r.Context()), req.Items, req.ShippingAddress, req.PaymentMethod)
		if err != nil {
			respondStoreError(w, lg, err, "product not found")
			return
		}
		respondJSON(w, http.StatusCreated, map[string]interface{}{
			"message": "order placed successfully",
			"order":   order,
		})
	}
}

func MyOrders(orders store.Orders, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := orders.ListByUser(r.Context(), auth.UserID(r.Context()))
		if err != nil {
			respondStoreError(w, lg, err, "")
			return
		}
		respondJSON(w, http.StatusOK, map[string]interface{}{"orders": list})
	}
}

func AdminListOrders(orders store.Orders, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := orders.ListAll(r.Context())
		if err != nil {
			respondStoreError(w, lg, err, "")
			return
		}
		respondJSON(w, http.StatusOK, map[string]interface{}{"orders": list})
	}
}
