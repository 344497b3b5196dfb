package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/apenask/csnutri-server/internal/adapter/api/controller"
	"github.com/apenask/csnutri-server/internal/adapter/api/route"
	"github.com/apenask/csnutri-server/internal/adapter/repository"
	"github.com/apenask/csnutri-server/internal/infrastructure/cache"
	"github.com/apenask/csnutri-server/internal/infrastructure/database"
	"github.com/apenask/csnutri-server/internal/infrastructure/storage"
	"github.com/apenask/csnutri-server/pkg/logger"
)

// App representa a aplicação e suas dependências
type App struct {
	router *gin.Engine
	db     *pgxpool.Pool
	redis  *redis.Client
	logger logger.Logger
}

// NewApp cria a aplicação: conexões, repositórios, controllers e rotas
func NewApp() (*App, error) {
	appLogger := logger.NewLogger()

	// Banco de dados e migrações
	db, err := database.NewPostgresDB()
	if err != nil {
		return nil, err
	}
	if err := database.RunMigrations(); err != nil {
		db.Close()
		return nil, err
	}

	redisClient, err := cache.NewRedisClient()
	if err != nil {
		db.Close()
		return nil, err
	}

	// O armazenamento de imagens é opcional; sem MinIO configurado o
	// upload de imagem responde indisponível
	imageStorage, err := storage.NewImageStorage()
	if err != nil {
		appLogger.Warn("armazenamento de imagens indisponível", "error", err)
		imageStorage = nil
	}

	// Repositórios
	productRepo := repository.NewProductRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	userRepo := repository.NewUserRepository(db)
	cartStore := repository.NewRedisCartStore(redisClient)
	reportCache := repository.NewCachedReportRepository(repository.NewReportRepository(db), redisClient)

	// Controllers
	authController := controller.NewAuthController(userRepo, appLogger)
	productController := controller.NewProductController(productRepo, imageStorage, appLogger)
	customerController := controller.NewCustomerController(customerRepo, appLogger)
	supplierController := controller.NewSupplierController(supplierRepo, appLogger)
	cartController := controller.NewCartController(cartStore, productRepo, appLogger)
	saleController := controller.NewSaleController(saleRepo, cartStore, reportCache, appLogger)
	expenseController := controller.NewExpenseController(expenseRepo, reportCache, appLogger)
	userController := controller.NewUserController(userRepo, appLogger)
	reportController := controller.NewReportController(reportCache, appLogger)

	// Router e middlewares globais
	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": "1.0.0"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")
	route.RegisterAuthRoutes(api, authController)
	route.RegisterProductRoutes(api, productController)
	route.RegisterCustomerRoutes(api, customerController)
	route.RegisterSupplierRoutes(api, supplierController)
	route.RegisterCartRoutes(api, cartController)
	route.RegisterSaleRoutes(api, saleController)
	route.RegisterExpenseRoutes(api, expenseController)
	route.RegisterUserRoutes(api, userController)
	route.RegisterReportRoutes(api, reportController)

	return &App{
		router: router,
		db:     db,
		redis:  redisClient,
		logger: appLogger,
	}, nil
}

// Start sobe o servidor HTTP e espera pelo sinal de encerramento
func (a *App) Start() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: a.router,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("servidor iniciado", "port", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		a.logger.Info("encerrando o servidor", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Warn("erro ao fechar conexão com o redis", "error", err)
		}
	}
	if a.db != nil {
		a.db.Close()
	}
}
