package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Vansh2812/Tailor/internal/application/analytics"
	"github.com/Vansh2812/Tailor/internal/application/auth"
	"github.com/Vansh2812/Tailor/internal/application/billing"
	"github.com/Vansh2812/Tailor/internal/application/orders"
	"github.com/Vansh2812/Tailor/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StoreUC      *usecase.StoreUseCase
	RepairWorkUC *usecase.RepairWorkUseCase
	WorkOrderUC  *orders.WorkOrderUseCase
	BillingUC    *billing.BillingUseCase
	DashboardUC  *analytics.DashboardUseCase
	AuthUC       *auth.AuthUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público: login y flujo de restablecimiento)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/forgot-password", authHandler.ForgotPassword)
	authGroup.Post("/reset-password", authHandler.ResetPassword)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Auth (protegido: gestión de la cuenta)
	authProtected := protected.Group("/auth")
	authProtected.Post("/change-password", authHandler.ChangePassword)
	authProtected.Post("/update-language", authHandler.UpdateLanguage)
	authProtected.Get("/all", authHandler.ListUsers)

	// Stores (protegido)
	stores := protected.Group("/stores")
	storeHandler := NewStoreHandler(deps.StoreUC)
	stores.Post("/", storeHandler.Create)
	stores.Get("/", storeHandler.List)
	stores.Get("/:id", storeHandler.GetByID)
	stores.Put("/:id", storeHandler.Update)
	stores.Delete("/:id", storeHandler.Delete)

	// Repair works (protegido, catálogo)
	repairWorks := protected.Group("/repairWorks")
	repairWorkHandler := NewRepairWorkHandler(deps.RepairWorkUC)
	repairWorks.Post("/", repairWorkHandler.Create)
	repairWorks.Get("/", repairWorkHandler.List)
	repairWorks.Put("/:id", repairWorkHandler.Update)
	repairWorks.Delete("/:id", repairWorkHandler.Delete)

	// Work orders (protegido; /stats antes de /:id para no capturarlo)
	workOrders := protected.Group("/workOrders")
	workOrderHandler := NewWorkOrderHandler(deps.WorkOrderUC)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	workOrders.Get("/stats", dashboardHandler.GetStats)
	workOrders.Post("/", workOrderHandler.Create)
	workOrders.Get("/", workOrderHandler.List)
	workOrders.Get("/:id", workOrderHandler.GetByID)

	// Billing (protegido)
	billingGroup := protected.Group("/billing")
	billingHandler := NewBillingHandler(deps.BillingUC)
	billingGroup.Get("/report", billingHandler.GenerateBill)
	billingGroup.Get("/report/pdf", billingHandler.DownloadPDF)
	billingGroup.Get("/report/xlsx", billingHandler.DownloadExcel)
}
