package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/hugohenrick/pos-mercearia/internal/adapter/api/controller"
	"github.com/hugohenrick/pos-mercearia/internal/adapter/api/route"
	"github.com/hugohenrick/pos-mercearia/internal/checkout"
	"github.com/hugohenrick/pos-mercearia/internal/infrastructure/database"
	"github.com/hugohenrick/pos-mercearia/internal/infrastructure/kvstore"
	"github.com/hugohenrick/pos-mercearia/internal/report"
	"github.com/hugohenrick/pos-mercearia/internal/store"
	"github.com/hugohenrick/pos-mercearia/pkg/describe"
	"github.com/hugohenrick/pos-mercearia/pkg/logger"
)

// App representa a aplicação e suas dependências
type App struct {
	router *gin.Engine
	kv     kvstore.KV
	store  *store.Store
	logger logger.Logger
}

// NewApp cria uma nova instância do aplicativo
func NewApp() (*App, error) {
	log := logger.NewLogger()

	// Abrir o armazenamento conforme STORAGE_DRIVER
	kv, err := openKV(log)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir o armazenamento: %w", err)
	}

	// Carregar as coleções da loja
	st, err := store.New(context.Background(), kv, log)
	if err != nil {
		kv.Close()
		return nil, fmt.Errorf("erro ao carregar os dados da loja: %w", err)
	}

	// Montar o checkout e os relatórios sobre a loja
	cart := checkout.NewCart(st.Products(), st)
	aggregator := report.NewAggregator(st.Sales(), st.Products())
	describer := describe.NewClient(log)

	// Criar controllers
	productController := controller.NewProductController(st.Products(), describer, log)
	customerController := controller.NewCustomerController(st.Customers(), log)
	supplierController := controller.NewSupplierController(st.Suppliers(), log)
	saleController := controller.NewSaleController(st.Sales(), st.Customers(), log)
	checkoutController := controller.NewCheckoutController(cart, st.Customers(), log)
	reportController := controller.NewReportController(aggregator, log)
	settingsController := controller.NewSettingsController(st, log)

	// Configurar router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Accept-Language"},
		AllowCredentials: false,
	}))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	// Documentação Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Rotas da API
	api := router.Group("/api/v1")
	route.RegisterProductRoutes(api, productController)
	route.RegisterCustomerRoutes(api, customerController)
	route.RegisterSupplierRoutes(api, supplierController)
	route.RegisterSaleRoutes(api, saleController)
	route.RegisterCheckoutRoutes(api, checkoutController)
	route.RegisterReportRoutes(api, reportController)
	route.RegisterSettingsRoutes(api, settingsController)

	return &App{
		router: router,
		kv:     kv,
		store:  st,
		logger: log,
	}, nil
}

// openKV seleciona o driver de armazenamento a partir do ambiente.
// Sem configuração, a loja roda sobre um arquivo SQLite local.
func openKV(log logger.Logger) (kvstore.KV, error) {
	driver := os.Getenv("STORAGE_DRIVER")
	if driver == "" {
		driver = "sqlite"
	}

	switch driver {
	case "sqlite":
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = "mercearia.db"
		}
		log.Info("usando armazenamento sqlite", "path", path)
		return kvstore.NewSQLite(path)

	case "postgres":
		pool, err := database.NewPostgresPool()
		if err != nil {
			return nil, err
		}
		if err := database.RunMigrations(); err != nil {
			pool.Close()
			return nil, err
		}
		log.Info("usando armazenamento postgres")
		return kvstore.NewPostgres(pool), nil

	case "redis":
		addr := os.Getenv("REDIS_ADDR")
		if addr == "" {
			addr = "localhost:6379"
		}
		log.Info("usando armazenamento redis", "addr", addr)
		return kvstore.NewRedis(addr, os.Getenv("REDIS_PASSWORD"), 0)

	case "memory":
		log.Info("usando armazenamento em memória")
		return kvstore.NewMemory(), nil

	default:
		return nil, fmt.Errorf("driver de armazenamento desconhecido: %s", driver)
	}
}

// Start inicia o servidor HTTP
func (a *App) Start() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	a.logger.Info("servidor iniciado", "port", port)
	return a.router.Run(":" + port)
}

// GetRouter retorna o router da aplicação
func (a *App) GetRouter() *gin.Engine {
	return a.router
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.store != nil {
		a.store.Close()
	}
}
