package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"storefront/internal/auth"
	"storefront/internal/store"
)

func ListWishlist(wishlist store.Wishlist, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := wishlist.List(r.Context(), auth.UserID(r.Context()))
		if err != nil {
			respondStoreError(w, lg, err, "")
			return
		}
		respondJSON(w, http.StatusOK, map[string]interface{}{"products": list})
	}
}

func AddToWishlist(wishlist store.Wishlist, products store.Products, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := uriID(r, "productId")
		if !ok {
			respondMessage(w, http.StatusBadRequest, "invalid product id")
			return
		}
		if _, err := products.ByID(r.Context(), id); err != nil {
			respondStoreError(w, lg, err, "product not found")
			return
		}
		if err := wishlist.Add(r.Context(), auth.UserID(r.Context()), id); err != nil {
			respondStoreError(w, lg, err, "product not found")
			return
		}
		respondMessage(w, http.StatusCreated, "product added to wishlist")
	}
}

func RemoveFromWishlist(wishlist store.Wishlist, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := uriID(r, "productId")
		if !ok {
			respondMessage(w, http.StatusBadRequest, "invalid product id")
			return
		}
		if err := wishlist.Remove(r.Context(), auth.UserID(r.Context()), id); err != nil {
			respondStoreError(w, lg, err, "product not in wishlist")
			return
		}
		respondMessage(w, http.StatusOK, "product removed from wishlist")
	}
}
