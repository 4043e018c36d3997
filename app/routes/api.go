// Package routes wires controllers onto the router.
package routes

import (
	"time"

	"github.com/launchbase/launchbase/app/controllers"
	"github.com/launchbase/launchbase/app/models"
	"github.com/launchbase/launchbase/pkg/metrics"
	"github.com/launchbase/launchbase/pkg/middleware"
	"github.com/launchbase/launchbase/pkg/rbac"
	"github.com/launchbase/launchbase/pkg/reqid"
	"github.com/launchbase/launchbase/pkg/router"
)

// Controllers bundles every controller the API mounts.
type Controllers struct {
	Users     *controllers.UserController
	Products  *controllers.ProductController
	Orders    *controllers.OrderController
	Files     *controllers.FileController
	Analytics *controllers.AnalyticsController
}

// RegisterAPI mounts the full HTTP surface under /api.
func RegisterAPI(r *router.Router, c Controllers) {
	r.Use(
		reqid.Middleware(),
		metrics.Middleware(),
		middleware.Recovery,
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
		middleware.RateLimit(300, time.Minute),
	)

	r.Get("/metrics", "metrics", metrics.Handler())

	api := r.Group("/api")
	adminOnly := rbac.HasRole(models.RoleAdmin)

	// Users. Registration and login are open; management needs a token.
	users := api.Group("/users")
	users.Post("/register", "users.register", c.Users.Register, rbac.Guest)
	users.Post("/login", "users.login", c.Users.Login, rbac.Guest)
	users.Get("", "users.list", c.Users.List, middleware.AuthMiddleware, adminOnly)
	users.Get("/{id}", "users.show", c.Users.Get, middleware.AuthMiddleware)
	users.Put("/{id}", "users.update", c.Users.Update, middleware.AuthMiddleware)
	users.Delete("/{id}", "users.delete", c.Users.Delete, middleware.AuthMiddleware, adminOnly)
	users.Patch("/{id}/approval", "users.approval", c.Users.SetApproval, middleware.AuthMiddleware, adminOnly)

	// Products. Reads are public, writes belong to authenticated creators.
	products := api.Group("/products")
	products.Get("", "products.list", c.Products.List)
	products.Get("/{id}", "products.show", c.Products.Get)
	products.Get("/creator/{id}", "products.by_creator", c.Products.ListByCreator)
	products.Post("", "products.create", c.Products.Create, middleware.AuthMiddleware)
	products.Put("/{id}", "products.update", c.Products.Update, middleware.AuthMiddleware)
	products.Delete("/{id}", "products.delete", c.Products.Delete, middleware.AuthMiddleware)
	products.Patch("/{id}/toggle-status", "products.toggle", c.Products.ToggleStatus, middleware.AuthMiddleware)

	// Orders. Everything requires a token; destructive ops need admin.
	orders := api.Group("/orders", middleware.AuthMiddleware)
	orders.Get("", "orders.list", c.Orders.List)
	orders.Get("/statistics", "orders.statistics", c.Orders.Statistics)
	orders.Get("/{id}", "orders.show", c.Orders.Get)
	orders.Get("/customer/{id}", "orders.by_customer", c.Orders.ListByCustomer)
	orders.Get("/product/{id}", "orders.by_product", c.Orders.ListByProduct)
	orders.Post("", "orders.create", c.Orders.Create)
	orders.Put("/{id}", "orders.update", c.Orders.Update)
	orders.Patch("/{id}/status", "orders.status", c.Orders.UpdateStatus)
	orders.Delete("/{id}", "orders.delete", c.Orders.Delete, adminOnly)

	// Files. Metadata reads are public; uploads and deletes need a token.
	files := api.Group("/files")
	files.Get("", "files.list", c.Files.List)
	files.Get("/stats", "files.stats", c.Files.Statistics)
	files.Get("/{id}", "files.show", c.Files.Get)
	files.Get("/{id}/download", "files.download", c.Files.Download)
	files.Post("/upload", "files.upload", c.Files.Upload, middleware.AuthMiddleware)
	files.Delete("/{id}", "files.delete", c.Files.Delete, middleware.AuthMiddleware)

	// Analytics. Admin dashboard material.
	analytics := api.Group("/analytics", middleware.AuthMiddleware, adminOnly)
	analytics.Get("/stats", "analytics.stats", c.Analytics.SystemStats)
	analytics.Get("/users", "analytics.users", c.Analytics.UserActivity)
	analytics.Get("/orders", "analytics.orders", c.Analytics.OrderAnalytics)
	analytics.Get("/revenue", "analytics.revenue", c.Analytics.Revenue)
	analytics.Get("/products", "analytics.products", c.Analytics.ProductPerformance)
	analytics.Get("/categories", "analytics.categories", c.Analytics.CategoryPerformance)
	analytics.Get("/customers", "analytics.customers", c.Analytics.TopCustomers)
	analytics.Get("/files", "analytics.files", c.Analytics.FileActivity)
	analytics.Get("/dashboard", "analytics.dashboard", c.Analytics.Dashboard)
}
