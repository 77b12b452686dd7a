package handlers

import (
	"net/http"

	"nursery_manager/internal/auth"
	"nursery_manager/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the REST API under /api. Everything except login,
// init-admin, the shop profile and health needs a bearer token.
func RegisterRoutes(r *gin.Engine, api *APIHandler, authHandler *AuthHandler, chat *ChatHandler, issuer *auth.TokenIssuer, sessions auth.SessionStore) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	public := r.Group("/api")
	{
		public.POST("/auth/login", authHandler.Login)
		public.POST("/init-admin", authHandler.InitAdmin)
		public.GET("/shop", api.Shop)
	}

	protected := r.Group("/api")
	protected.Use(middleware.Authenticate(issuer, sessions))
	{
		protected.GET("/auth/me", authHandler.Me)
		protected.POST("/auth/logout", authHandler.Logout)
		protected.POST("/auth/register", middleware.Require(auth.ManageUsers), authHandler.Register)

		protected.GET("/plants", middleware.Require(auth.ViewInventory), api.ListPlants)
		protected.GET("/plants/low-stock", middleware.Require(auth.ViewInventory), api.LowStockPlants)
		protected.GET("/plants/:id", middleware.Require(auth.ViewInventory), api.GetPlant)
		protected.POST("/plants", middleware.Require(auth.ManageInventory), api.CreatePlant)
		protected.PUT("/plants/:id", middleware.Require(auth.ManageInventory), api.UpdatePlant)

		protected.GET("/customers", middleware.Require(auth.ManageCustomers), api.ListCustomers)
		protected.GET("/customers/search", middleware.Require(auth.ManageCustomers), api.SearchCustomers)
		protected.GET("/customers/:id", middleware.Require(auth.ManageCustomers), api.GetCustomer)
		protected.POST("/customers", middleware.Require(auth.ManageCustomers), api.CreateCustomer)
		protected.PUT("/customers/:id", middleware.Require(auth.ManageCustomers), api.UpdateCustomer)

		protected.GET("/bills", middleware.Require(auth.CreateBills), api.ListBills)
		protected.GET("/bills/pending", middleware.Require(auth.ViewPendingBills), api.PendingBills)
		protected.GET("/bills/:id", middleware.Require(auth.CreateBills), api.GetBill)
		protected.POST("/bills", middleware.Require(auth.CreateBills), api.CreateBill)
		protected.PUT("/bills/:id/approve", middleware.Require(auth.ApproveBills), api.ApproveBill)

		protected.GET("/quotations", middleware.Require(auth.CreateQuotations), api.ListQuotations)
		protected.GET("/quotations/:id", middleware.Require(auth.CreateQuotations), api.GetQuotation)
		protected.POST("/quotations", middleware.Require(auth.CreateQuotations), api.CreateQuotation)
		protected.POST("/quotations/:id/convert", middleware.Require(auth.ConvertQuotations), api.ConvertQuotation)

		protected.POST("/totals/preview", api.PreviewTotals)
		protected.GET("/analytics/dashboard", middleware.Require(auth.ViewDashboard), api.Dashboard)

		protected.POST("/chat", middleware.Require(auth.UseAssistant), chat.Send)
		protected.GET("/chat/history/:session_id", middleware.Require(auth.UseAssistant), chat.History)
	}
}
