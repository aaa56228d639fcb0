package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/punto-bazar-api/internal/application/auth"
	"github.com/jhoicas/punto-bazar-api/internal/application/sales"
	"github.com/jhoicas/punto-bazar-api/internal/application/usecase"
	"github.com/jhoicas/punto-bazar-api/internal/domain/repository"
	infraai "github.com/jhoicas/punto-bazar-api/internal/infrastructure/ai"
	inframedia "github.com/jhoicas/punto-bazar-api/internal/infrastructure/media"
	"github.com/jhoicas/punto-bazar-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/punto-bazar-api/internal/infrastructure/pdf"
	"github.com/jhoicas/punto-bazar-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/punto-bazar-api/internal/interfaces/http"
	"github.com/jhoicas/punto-bazar-api/pkg/config"
	"github.com/jhoicas/punto-bazar-api/pkg/logger"
)

// stores repositorios del driver elegido.
type stores struct {
	users     repository.UserRepository
	resellers repository.ResellerRepository
	campaigns repository.CampaignRepository
	products  repository.ProductRepository
	customers repository.CustomerRepository
	sales     repository.SaleRepository
	tx        sales.TxRunner
	close     func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	admins, err := memory.HashAdmins(memory.DefaultAdmins, bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash de administradores")
	}

	var st stores
	switch cfg.Storage.Driver {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("esquema PostgreSQL")
		}
		if err := postgres.SeedAdmins(ctx, pool, admins); err != nil {
			log.Fatal().Err(err).Msg("alta de administradores")
		}
		st = stores{
			users:     postgres.NewUserRepository(pool),
			resellers: postgres.NewResellerRepository(pool),
			campaigns: postgres.NewCampaignRepository(pool),
			products:  postgres.NewProductRepository(pool),
			customers: postgres.NewCustomerRepository(pool),
			sales:     postgres.NewSaleRepository(pool),
			tx:        postgres.NewTxRunner(pool),
			close:     pool.Close,
		}
	default:
		// Sin persistencia: los datos se pierden al reiniciar.
		s := memory.NewStore()
		st = stores{
			users:     memory.NewUserRepository(admins),
			resellers: memory.NewResellerRepository(s),
			campaigns: memory.NewCampaignRepository(s),
			products:  memory.NewProductRepository(s),
			customers: memory.NewCustomerRepository(s),
			sales:     memory.NewSaleRepository(s),
			tx:        memory.NewTxRunner(s),
			close:     func() {},
		}
	}
	defer st.close()

	mediaStorage, err := inframedia.Open(ctx, cfg.Media)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento de imágenes")
	}
	defer mediaStorage.Close()

	log.Debug().
		Str("ai_provider", cfg.AI.Provider).
		Bool("auth_required", cfg.JWT.AuthRequired).
		Bool("media_bucket", cfg.Media.BucketURL != "").
		Msg("configuración cargada")

	llm := infraai.NewLLMService(cfg.AI)
	aiUC := usecase.NewAIUseCase(llm, cfg.AI.Timeout, log.Component("ia"))

	authUC := auth.NewAuthUseCase(st.users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Comprobante PDF de venta
	receiptUC := sales.NewReceiptUseCase(st.sales, infrapdf.NewMarotoReceiptGenerator(), cfg.App.ShopName)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    10 * 1024 * 1024,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.HTTP.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.SwaggerFile,
			Path:     "docs",
			Title:    "Punto Bazar API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	deps := httpRouter.RouterDeps{
		AuthUC:       authUC,
		ResellerUC:   usecase.NewResellerUseCase(st.resellers),
		CampaignUC:   usecase.NewCampaignUseCase(st.campaigns),
		ProductUC:    usecase.NewProductUseCase(st.products),
		CustomerUC:   usecase.NewCustomerUseCase(st.customers),
		RecordSale:   sales.NewRecordSaleUseCase(st.tx, log.Component("ventas")),
		SaleQuery:    sales.NewQueryUseCase(st.sales),
		Receipt:      receiptUC,
		AIUC:         aiUC,
		MediaUC:      usecase.NewMediaUseCase(mediaStorage),
		Log:          log.Component("http"),
		JWTSecret:    cfg.JWT.Secret,
		AuthRequired: cfg.JWT.AuthRequired,
		PublicDir:    cfg.HTTP.PublicDir,
	}
	if cfg.Media.BucketURL == "" && !within(cfg.HTTP.PublicDir, cfg.Media.Dir) {
		deps.UploadsPrefix = cfg.Media.PublicURL
		deps.UploadsDir = cfg.Media.Dir
	}
	httpRouter.Router(app, deps)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// within indica si dir queda dentro de root (las imágenes ya se sirven con el front).
func within(root, dir string) bool {
	if root == "" {
		return false
	}
	rel, err := filepath.Rel(filepath.Clean(root), filepath.Clean(dir))
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
