package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"barflow-api/controllers"
	"barflow-api/middlewares"
	"barflow-api/models"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	auth := controllers.NewAuthController(db)
	products := controllers.NewProductController(db)
	categories := controllers.NewCategoryController(db)
	tables := controllers.NewTableController(db)
	clients := controllers.NewClientController(db)
	orders := controllers.NewOrderController(db)
	settings := controllers.NewSettingController(db)
	users := controllers.NewUserController(db)
	dashboard := controllers.NewDashboardController(db)

	r.POST("/login", auth.Login)

	// Public catalog for the menu board
	r.GET("/public/products", products.GetProducts)
	r.GET("/public/categories", categories.GetCategories)

	productGroup := r.Group("/products")
	productGroup.Use(middlewares.AuthMiddleware())
	{
		productGroup.GET("/", products.GetProducts)
		productGroup.GET("/:id", products.GetProductByID)
		productGroup.POST("/", middlewares.RoleMiddleware(models.RoleAdmin, models.RoleBartender), products.CreateProduct)
		productGroup.PUT("/:id", middlewares.RoleMiddleware(models.RoleAdmin, models.RoleBartender), products.UpdateProduct)
		productGroup.DELETE("/:id", middlewares.RoleMiddleware(models.RoleAdmin), products.DeleteProduct)
		productGroup.POST("/:id/replenish", middlewares.RoleMiddleware(models.RoleAdmin, models.RoleBartender), products.Replenish)
		productGroup.GET("/:id/stock-history", products.GetStockHistory)
	}

	categoryGroup := r.Group("/categories")
	categoryGroup.Use(middlewares.AuthMiddleware())
	{
		categoryGroup.GET("/", categories.GetCategories)
		categoryGroup.POST("/", middlewares.RoleMiddleware(models.RoleAdmin), categories.CreateCategory)
		categoryGroup.DELETE("/:id", middlewares.RoleMiddleware(models.RoleAdmin), categories.DeleteCategory)
	}

	tableGroup := r.Group("/tables")
	tableGroup.Use(middlewares.AuthMiddleware())
	{
		tableGroup.GET("/", tables.GetTables)
		tableGroup.POST("/", middlewares.RoleMiddleware(models.RoleAdmin), tables.CreateTable)
		tableGroup.DELETE("/:id", middlewares.RoleMiddleware(models.RoleAdmin), tables.DeleteTable)
		tableGroup.PATCH("/:id/status", tables.SetStatus)
	}

	clientGroup := r.Group("/clients")
	clientGroup.Use(middlewares.AuthMiddleware())
	{
		clientGroup.GET("/", clients.GetClients)
		clientGroup.POST("/", clients.CreateClient)
		clientGroup.PUT("/:id", clients.UpdateClient)
		clientGroup.DELETE("/:id", middlewares.RoleMiddleware(models.RoleAdmin), clients.DeleteClient)
		clientGroup.POST("/:id/balance", middlewares.RoleMiddleware(models.RoleAdmin, models.RoleBartender), clients.AdjustBalance)
	}

	orderGroup := r.Group("/orders")
	orderGroup.Use(middlewares.AuthMiddleware())
	{
		orderGroup.GET("/", orders.GetOrders)
		orderGroup.POST("/", orders.PlaceOrder)
		orderGroup.PATCH("/:id/status", orders.AdvanceStatus)
		orderGroup.POST("/:id/pay", orders.SettleOrder)
	}

	settingGroup := r.Group("/settings")
	settingGroup.Use(middlewares.AuthMiddleware())
	{
		settingGroup.GET("/:key", settings.GetSetting)
		settingGroup.PUT("/:key", middlewares.RoleMiddleware(models.RoleAdmin), settings.SaveSetting)
	}

	dashboardGroup := r.Group("/dashboard")
	dashboardGroup.Use(middlewares.AuthMiddleware())
	{
		dashboardGroup.GET("/", dashboard.GetDashboard)
	}

	// Staff management and store wipe (admin only)
	adminGroup := r.Group("/admin")
	adminGroup.Use(middlewares.AuthMiddleware(), middlewares.RoleMiddleware(models.RoleAdmin))
	{
		adminGroup.GET("/users", users.GetUsers)
		adminGroup.POST("/users", users.CreateUser)
		adminGroup.PUT("/users/:id", users.UpdateUser)
		adminGroup.DELETE("/users/:id", users.DeleteUser)
		adminGroup.POST("/reset", settings.ResetStore)
	}
}
