package http

import (
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/punto-bazar-api/internal/application/auth"
	"github.com/jhoicas/punto-bazar-api/internal/application/sales"
	"github.com/jhoicas/punto-bazar-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	ResellerUC *usecase.ResellerUseCase
	CampaignUC *usecase.CampaignUseCase
	ProductUC  *usecase.ProductUseCase
	CustomerUC *usecase.CustomerUseCase
	RecordSale *sales.RecordSaleUseCase
	SaleQuery  *sales.QueryUseCase
	Receipt    *sales.ReceiptUseCase
	AIUC       *usecase.AIUseCase
	MediaUC    *usecase.MediaUseCase
	Log        zerolog.Logger

	JWTSecret    string
	AuthRequired bool // false: las rutas de admin quedan abiertas

	PublicDir string // catalogo.html, admin.html y assets; vacío = sin front
	// UploadsPrefix/UploadsDir montan las imágenes subidas si viven fuera de PublicDir.
	UploadsPrefix string
	UploadsDir    string
}

// Router registra las rutas de la API y del front estático.
func Router(app *fiber.App, deps RouterDeps) {
	m := errorMapper{log: deps.Log}

	protect := func(c *fiber.Ctx) error { return c.Next() }
	if deps.AuthRequired {
		protect = AuthMiddleware(deps.JWTSecret)
	}

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, m)
	api.Post("/login", authHandler.Login)

	// Revendedores
	resellers := api.Group("/revendedores")
	resellerHandler := NewResellerHandler(deps.ResellerUC, m)
	resellers.Get("/", protect, resellerHandler.List)
	resellers.Post("/", protect, resellerHandler.Create)
	resellers.Patch("/:id/activo", protect, resellerHandler.SetActive)

	// Campañas (hoy es público, lo consume el catálogo)
	campaigns := api.Group("/campanias")
	campaignHandler := NewCampaignHandler(deps.CampaignUC, m)
	campaigns.Get("/hoy", campaignHandler.Today)
	campaigns.Get("/", protect, campaignHandler.List)
	campaigns.Post("/", protect, campaignHandler.Create)
	campaigns.Patch("/:id/activa", protect, campaignHandler.Activate)
	campaigns.Delete("/:id", protect, campaignHandler.Delete)

	// Productos: las rutas fijas van antes de /:id
	products := api.Group("/productos")
	productHandler := NewProductHandler(deps.ProductUC, m)
	products.Get("/activos", productHandler.ListActive)
	products.Get("/ofertas", productHandler.ListOnPromotion)
	products.Get("/", protect, productHandler.List)
	products.Post("/", protect, productHandler.Create)
	products.Get("/:id", protect, productHandler.GetByID)
	products.Patch("/:id/activo", protect, productHandler.SetActive)
	products.Patch("/:id/stock", protect, productHandler.SetStock)
	products.Patch("/:id/oferta", protect, productHandler.SetPromotion)
	products.Patch("/:id", protect, productHandler.Update)
	products.Delete("/:id", protect, productHandler.Delete)

	// Clientes
	customers := api.Group("/clientes")
	customerHandler := NewCustomerHandler(deps.CustomerUC, m)
	customers.Get("/", protect, customerHandler.List)
	customers.Post("/", protect, customerHandler.Create)
	customers.Patch("/:id", protect, customerHandler.Update)
	customers.Delete("/:id", protect, customerHandler.Delete)

	// Ventas
	salesGroup := api.Group("/ventas")
	saleHandler := NewSaleHandler(deps.RecordSale, deps.SaleQuery, deps.Receipt, m)
	salesGroup.Get("/", protect, saleHandler.List)
	salesGroup.Post("/", protect, saleHandler.Create)
	salesGroup.Get("/:id/comprobante", protect, saleHandler.Receipt)
	salesGroup.Get("/:id", protect, saleHandler.GetByID)

	// IA
	ia := api.Group("/ia")
	aiHandler := NewAIHandler(deps.AIUC)
	ia.Post("/descripcion-producto", protect, aiHandler.DescribeProduct)
	ia.Post("/campania", protect, aiHandler.DraftCampaign)

	// Imágenes
	mediaHandler := NewMediaHandler(deps.MediaUC, m)
	api.Post("/upload-imagen", protect, mediaHandler.Upload)

	if deps.UploadsPrefix != "" && deps.UploadsDir != "" {
		app.Static(deps.UploadsPrefix, deps.UploadsDir)
	}
	if deps.PublicDir != "" {
		app.Get("/", func(c *fiber.Ctx) error {
			return c.SendFile(filepath.Join(deps.PublicDir, "catalogo.html"))
		})
		app.Get("/admin", func(c *fiber.Ctx) error {
			return c.SendFile(filepath.Join(deps.PublicDir, "admin.html"))
		})
		app.Static("/", deps.PublicDir)
	}
}
