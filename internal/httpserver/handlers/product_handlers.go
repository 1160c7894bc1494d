package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"storefront/internal/models"
	"storefront/internal/store"
)

func ListProducts(products store.Products, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		f := store.ProductFilter{
			Category: q.Get("category"),
			Search:   q.Get("search"),
			Sort:     q.Get("sort"),
			Limit:    50,
		}
		if v, err := strconv.Atoi(q.Get("limit")); err == nil && v > 0 {
			f.Limit = v
		}
		if v, err := strconv.Atoi(q.Get("offset")); err == nil && v > 0 {
			f.Offset = v
		}
		list, err := products.List(r.Context(), f)
		if err != nil {
			respondStoreError(w, lg, err, "")
			return
		}
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"products": list,
			"total":    len(list),
			"limit":    f.Limit,
			"offset":   f.Offset,
		})
	}
}

func GetProduct(products store.Products, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := uriID(r, "id")
		if !ok {
			respondMessage(w, http.StatusBadRequest, "invalid product id")
			return
		}
		p, err := products.ByID(r.Context(), id)
		if err != nil {
			respondStoreError(w, lg, err, "product not found")
			return
		}
		respondJSON(w, http.StatusOK, map[string]interface{}{"product": p})
	}
}

// AdminListProducts is the back-office listing: everything, newest first.
func AdminListProducts(products store.Products, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := products.List(r.Context(), store.ProductFilter{})
		if err != nil {
			respondStoreError(w, lg, err, "")
			return
		}
		respondJSON(w, http.StatusOK, map[string]interface{}{"products": list})
	}
}

type productReq struct {
	Name          string  `json:"name" validate:"required"`
	Description   string  `json:"description"`
	Price         float64 `json:"price" validate:"required,gt=0"`
	Category      string  `json:"category" validate:"required"`
	Subcategory   string  `json:"subcategory"`
	ImageURL      string  `json:"image_url"`
	StockQuantity int     `json:"stock_quantity" validate:"gte=0"`
}

func CreateProduct(products store.Products, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req productReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			respondMessage(w, http.StatusBadRequest, "name, price, and category are required")
			return
		}
		p := &models.Product{
			Name:          req.Name,
			Description:   req.Description,
			Price:         req.Price,
			Category:      req.Category,
			Subcategory:   req.Subcategory,
			ImageURL:      req.ImageURL,
			StockQuantity: req.StockQuantity,
		}
		if err := products.Create(r.Context(), p); err != nil {
			respondStoreError(w, lg, err, "")
			return
		}
		respondJSON(w, http.StatusCreated, map[string]interface{}{
			"message": "product added successfully",
			"product": p,
		})
	}
}

func UpdateProduct(products store.Products, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := uriID(r, "id")
		if !ok {
			respondMessage(w, http.StatusBadRequest, "invalid product id")
			return
		}
		var req productReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			respondMessage(w, http.StatusBadRequest, "name, price, and category are required")
			return
		}
		p, err := products.ByID(r.Context(), id)
		if err != nil {
			respondStoreError(w, lg, err, "product not found")
			return
		}
		p.Name = req.Name
		p.Description = req.Description
		p.Price = req.Price
		p.Category = req.Category
		p.Subcategory = req.Subcategory
		p.ImageURL = req.ImageURL
		p.StockQuantity = req.StockQuantity
		if err := products.Update(r.Context(), p); err != nil {
			respondStoreError(w, lg, err, "product not found")
			return
		}
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"message": "product updated successfully",
			"product": p,
		})
	}
}

func DeleteProduct(products store.Products, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := uriID(r, "id")
		if !ok {
			respondMessage(w, http.StatusBadRequest, "invalid product id")
			return
		}
		if err := products.Delete(r.Context(), id); err != nil {
			respondStoreError(w, lg, err, "product not found")
			return
		}
		respondMessage(w, http.StatusOK, "product deleted successfully")
	}
}
