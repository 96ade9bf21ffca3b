package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestion-api/internal/application/accounting"
	appanalytics "github.com/jhoicas/Gestion-api/internal/application/analytics"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LedgerUC     *accounting.LedgerUseCase
	ClientUC     *usecase.ClientUseCase
	ProviderUC   *usecase.ProviderUseCase
	CategoryUC   *usecase.CategoryUseCase
	AssetUC      *usecase.AssetUseCase
	ProjectUC    *usecase.ProjectUseCase
	PayableUC    *usecase.PayableUseCase
	ReceivableUC *usecase.ReceivableUseCase
	QuotationUC  *usecase.QuotationUseCase
	RecoveryUC   *usecase.RecoveryUseCase
	UserUC       *usecase.UserUseCase
	RoleUC       *usecase.RoleUseCase
	DashboardUC  *appanalytics.DashboardUseCase
	Files        FileLocator
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Contabilidad: las exportaciones van antes de /:id
	ledger := api.Group("/contabilidad")
	ledgerHandler := NewLedgerHandler(deps.LedgerUC)
	ledger.Get("/export", ledgerHandler.ExportXLSX)
	ledger.Get("/export/csv", ledgerHandler.ExportCSV)
	ledger.Get("/export/pdf", ledgerHandler.ExportPDF)
	ledger.Get("/", ledgerHandler.List)
	ledger.Get("/:id", ledgerHandler.GetByID)
	ledger.Post("/", ledgerHandler.Create)
	ledger.Put("/:id", ledgerHandler.Update)
	ledger.Delete("/:id", ledgerHandler.Delete)

	Resource[dto.ClientRequest, dto.ClientRequest, dto.ClientResponse]{
		List: deps.ClientUC.List, Get: deps.ClientUC.GetByID, Create: deps.ClientUC.Create,
		Update: deps.ClientUC.Update, Delete: deps.ClientUC.Delete,
	}.Mount(api.Group("/clientes"), nil)

	Resource[dto.ProviderRequest, dto.ProviderRequest, dto.ProviderResponse]{
		List: deps.ProviderUC.List, Get: deps.ProviderUC.GetByID, Create: deps.ProviderUC.Create,
		Update: deps.ProviderUC.Update, Delete: deps.ProviderUC.Delete,
	}.Mount(api.Group("/proveedores"), nil)

	Resource[dto.CategoryRequest, dto.CategoryRequest, dto.CategoryResponse]{
		List: deps.CategoryUC.List, Get: deps.CategoryUC.GetByID, Create: deps.CategoryUC.Create,
		Update: deps.CategoryUC.Update, Delete: deps.CategoryUC.Delete,
	}.Mount(api.Group("/categorias"), nil)

	Resource[dto.AssetRequest, dto.AssetRequest, dto.AssetResponse]{
		List: deps.AssetUC.List, Get: deps.AssetUC.GetByID, Create: deps.AssetUC.Create,
		Update: deps.AssetUC.Update, Delete: deps.AssetUC.Delete,
	}.Mount(api.Group("/activos"), nil)

	// Proyectos y fases
	projectHandler := NewProjectHandler(deps.ProjectUC)
	Resource[dto.ProjectRequest, dto.ProjectRequest, dto.ProjectResponse]{
		Get: deps.ProjectUC.GetByID, Create: deps.ProjectUC.Create,
		Update: deps.ProjectUC.Update, Delete: deps.ProjectUC.Delete,
	}.Mount(api.Group("/proyectos"), projectHandler.List)

	Resource[dto.PhaseRequest, dto.PhaseRequest, dto.PhaseResponse]{
		Get: deps.ProjectUC.GetPhase, Create: deps.ProjectUC.CreatePhase,
		Update: deps.ProjectUC.UpdatePhase, Delete: deps.ProjectUC.DeletePhase,
	}.Mount(api.Group("/fases"), projectHandler.ListPhases)

	// Cuentas por pagar / por cobrar
	accountHandler := NewAccountHandler(deps.PayableUC, deps.ReceivableUC)
	payables := api.Group("/cuentas-por-pagar")
	payables.Put("/:id/pagado", accountHandler.TogglePaid)
	Resource[dto.PayableRequest, dto.PayableRequest, dto.PayableResponse]{
		Get: deps.PayableUC.GetByID, Create: deps.PayableUC.Create,
		Update: deps.PayableUC.Update, Delete: deps.PayableUC.Delete,
	}.Mount(payables, accountHandler.ListPayables)

	Resource[dto.ReceivableRequest, dto.ReceivableRequest, dto.ReceivableResponse]{
		Get: deps.ReceivableUC.GetByID, Create: deps.ReceivableUC.Create,
		Update: deps.ReceivableUC.Update, Delete: deps.ReceivableUC.Delete,
	}.Mount(api.Group("/cuentas-por-cobrar"), accountHandler.ListReceivables)

	// Cotizaciones (multipart)
	quotations := api.Group("/cotizaciones")
	quotationHandler := NewQuotationHandler(deps.QuotationUC)
	quotationCRUD := Resource[dto.QuotationRequest, dto.QuotationRequest, dto.QuotationResponse]{
		List: deps.QuotationUC.List, Get: deps.QuotationUC.GetByID, Delete: deps.QuotationUC.Delete,
	}
	quotations.Get("/", quotationCRUD.list)
	quotations.Get("/:id", quotationCRUD.getByID)
	quotations.Post("/", quotationHandler.Create)
	quotations.Put("/:id", quotationHandler.Update)
	quotations.Delete("/:id", quotationCRUD.delete)

	recoveries := api.Group("/recuperaciones")
	recoveries.Put("/:id/toggle", toggleRecovered(deps.RecoveryUC))
	Resource[dto.RecoveryRequest, dto.RecoveryRequest, dto.RecoveryResponse]{
		List: deps.RecoveryUC.List, Get: deps.RecoveryUC.GetByID, Create: deps.RecoveryUC.Create,
		Update: deps.RecoveryUC.Update, Delete: deps.RecoveryUC.Delete,
	}.Mount(recoveries, nil)

	// Usuarios, roles y permisos
	Resource[dto.CreateUserRequest, dto.UpdateUserRequest, dto.UserResponse]{
		List: deps.UserUC.List, Get: deps.UserUC.GetByID, Create: deps.UserUC.Create,
		Update: deps.UserUC.Update, Delete: deps.UserUC.Delete,
	}.Mount(api.Group("/usuarios"), nil)

	Resource[dto.RoleRequest, dto.RoleRequest, dto.RoleResponse]{
		List: deps.RoleUC.List, Get: deps.RoleUC.GetByID, Create: deps.RoleUC.Create,
		Update: deps.RoleUC.Update, Delete: deps.RoleUC.Delete,
	}.Mount(api.Group("/roles"), nil)

	Resource[dto.PermissionRequest, dto.PermissionRequest, dto.PermissionResponse]{
		Get: deps.RoleUC.GetPermission, Create: deps.RoleUC.CreatePermission,
		Update: deps.RoleUC.UpdatePermission, Delete: deps.RoleUC.DeletePermission,
	}.Mount(api.Group("/permisos"), listPermissions(deps.RoleUC))

	// Dashboard
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/resumen", dashboardHandler.GetSummary)
	dashboard.Get("/flujo", dashboardHandler.GetCashFlow)

	// Adjuntos
	api.Get("/archivos/:nombre", serveFile(deps.Files))
}
