package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/cafe-pos/controllers"
	"github.com/yeremiapane/cafe-pos/middlewares"
	"github.com/yeremiapane/cafe-pos/pos"
	"github.com/yeremiapane/cafe-pos/store"
)

// Deps menampung semua dependency yang dibutuhkan controller.
type Deps struct {
	Store   store.Store
	Images  *store.ImageStore
	Orders  *pos.OrderManager
	Tables  *pos.TableManager
	Catalog *pos.MenuCatalog
}

func SetupRouter(deps Deps) *gin.Engine {
	r := gin.Default()

	// Apply security middlewares
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Inisialisasi controller
	userCtrl := controllers.NewUserController(deps.Store)
	tableCtrl := controllers.NewTableController(deps.Tables)
	categoryCtrl := controllers.NewMenuCategoryController(deps.Catalog)
	menuCtrl := controllers.NewMenuController(deps.Catalog, deps.Images)
	orderCtrl := controllers.NewOrderController(deps.Orders, deps.Catalog)
	dashboardCtrl := controllers.NewDashboardController(deps.Orders, deps.Tables, deps.Catalog)
	receiptCtrl := controllers.NewReceiptController(deps.Orders, deps.Tables, deps.Store, deps.Images)
	backupCtrl := controllers.NewBackupController(deps.Store, deps.Orders, deps.Tables, deps.Catalog)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Rate limiter ketat untuk login
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/login", userCtrl.Login)
	}

	// Endpoint WebSocket untuk refresh layar live
	ws := r.Group("/events")
	ws.Use(middlewares.WebSocketAuthMiddleware())
	{
		ws.GET("/ws", controllers.EventsHandler)
	}

	// ----------------------------------------------------------------
	//             AUTHENTICATED ROUTES (kasir & admin)
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.POST("/logout", userCtrl.Logout)
		auth.GET("/profile", userCtrl.Profile)

		// Katalog dibaca kasir saat entry order
		auth.GET("/categories", categoryCtrl.GetAllCategories)
		auth.GET("/categories/:cat_id", categoryCtrl.GetCategoryByID)
		auth.GET("/menus", menuCtrl.GetAllMenus)
		auth.GET("/menus/:menu_id", menuCtrl.GetMenuByID)
		auth.GET("/images/:image_id", menuCtrl.GetImage)

		// Meja
		auth.GET("/tables", tableCtrl.GetAllTables)
		auth.GET("/tables/:table_id", tableCtrl.GetTableByID)

		// Lifecycle order berjalan
		auth.POST("/orders", orderCtrl.CreateOrder)
		auth.GET("/orders", orderCtrl.GetAllOrders)
		auth.GET("/orders/current", orderCtrl.GetCurrentOrder)
		auth.POST("/orders/current/items", orderCtrl.AddItem)
		auth.PATCH("/orders/current/items/:item_id", orderCtrl.UpdateItem)
		auth.DELETE("/orders/current/items/:item_id", orderCtrl.RemoveItem)
		auth.POST("/orders/current/discount", orderCtrl.ApplyDiscount)
		auth.POST("/orders/current/table", orderCtrl.AssignTable)
		auth.POST("/orders/current/finalize", orderCtrl.FinalizeOrder)
		auth.POST("/orders/current/cancel", orderCtrl.CancelOrder)

		// Riwayat + pelunasan bayar-nanti
		auth.GET("/orders/:order_id", orderCtrl.GetOrderByID)
		auth.POST("/orders/:order_id/pay", orderCtrl.PayOrder)
		auth.GET("/orders/:order_id/receipt", middlewares.ReceiptLoggerMiddleware(), receiptCtrl.GenerateReceipt)
	}

	// ----------------------------------------------------------------
	//                      ADMIN ROUTES
	// ----------------------------------------------------------------
	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.RequireAdmin())
	{
		admin.GET("/dashboard", dashboardCtrl.GetDashboardStats)

		admin.POST("/tables", tableCtrl.CreateTable)
		admin.PATCH("/tables/:table_id", tableCtrl.UpdateTable)
		admin.DELETE("/tables/:table_id", tableCtrl.DeleteTable)

		admin.POST("/categories", categoryCtrl.CreateCategory)
		admin.PATCH("/categories/:cat_id", categoryCtrl.UpdateCategory)
		admin.DELETE("/categories/:cat_id", categoryCtrl.DeleteCategory)

		admin.POST("/menus", menuCtrl.CreateMenu)
		admin.PATCH("/menus/:menu_id", menuCtrl.UpdateMenu)
		admin.POST("/menus/:menu_id/image", menuCtrl.UploadMenuImage)
		admin.DELETE("/menus/:menu_id", menuCtrl.DeleteMenu)

		admin.GET("/backup", backupCtrl.Export)
		admin.POST("/restore", backupCtrl.Import)
		admin.GET("/backup/orders.csv", backupCtrl.ExportOrdersCSV)
		admin.GET("/settings", backupCtrl.GetSettings)
		admin.PUT("/settings", backupCtrl.PutSettings)
	}

	return r
}
