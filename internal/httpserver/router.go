package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"storefront/internal/auth"
	"storefront/internal/httpserver/handlers"
	"storefront/internal/models"
	"storefront/internal/store"
)

type Deps struct {
	Users    store.Users
	Products store.Products
	Orders   store.Orders
	Wishlist store.Wishlist
	Tokens   *auth.Tokens
	Log      *zap.SugaredLogger
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer, middleware.Logger)
	r.Use(metrics)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Handle("/metrics", promhttp.Handler())

	// Public storefront surface.
	r.Post("/register", handlers.Register(d.Users, d.Log))
	r.Post("/login", handlers.Login(d.Users, d.Tokens, d.Log))
	r.Get("/products", handlers.ListProducts(d.Products, d.Log))
	r.Get("/products/{id}", handlers.GetProduct(d.Products, d.Log))

	approval := auth.ApprovalLookup(d.Users.IsApproved)

	r.Group(func(protected chi.Router) {
		protected.Use(auth.Authenticate(d.Tokens))

		protected.Get("/profile", handlers.Profile(d.Users, d.Log))
		protected.Put("/profile", handlers.UpdateProfile(d.Users, d.Log))

		protected.Post("/orders", handlers.Checkout(d.Orders, d.Log))
		protected.Get("/orders", handlers.MyOrders(d.Orders, d.Log))

		protected.Get("/wishlist", handlers.ListWishlist(d.Wishlist, d.Log))
		protected.Post("/wishlist/{productId}", handlers.AddToWishlist(d.Wishlist, d.Products, d.Log))
		protected.Delete("/wishlist/{productId}", handlers.RemoveFromWishlist(d.Wishlist, d.Log))

		protected.Group(func(admin chi.Router) {
			admin.Use(auth.RequireRoles(approval, d.Log, models.RoleAdmin, models.RoleSuperadmin))
			admin.Get("/admin/products", handlers.AdminListProducts(d.Products, d.Log))
			admin.Post("/admin/products", handlers.CreateProduct(d.Products, d.Log))
			admin.Put("/admin/products/{id}", handlers.UpdateProduct(d.Products, d.Log))
			admin.Delete("/admin/products/{id}", handlers.DeleteProduct(d.Products, d.Log))
		})

		protected.Group(func(super chi.Router) {
			super.Use(auth.RequireRoles(approval, d.Log, models.RoleSuperadmin))
			super.Get("/admin/users", handlers.ListUsers(d.Users, d.Log))
			super.Put("/admin/users/{id}/approve", handlers.ApproveUser(d.Users, d.Log))
			super.Delete("/admin/users/{id}/reject", handlers.RejectUser(d.Users, d.Log))
			super.Get("/admin/orders", handlers.AdminListOrders(d.Orders, d.Log))
		})
	})
	return r
}
