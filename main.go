package main

import (
	"database/sql"
	"log"
	"time"

	"pos/src/pos/application/usecase"
	"pos/src/pos/domain/port"
	posCache "pos/src/pos/infrastructure/cache"
	posCatalog "pos/src/pos/infrastructure/catalog"
	posController "pos/src/pos/infrastructure/controller"
	posEvent "pos/src/pos/infrastructure/event"
	posPersistence "pos/src/pos/infrastructure/persistence"
	sharedConfig "pos/src/shared/infrastructure/config"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq" // Driver de PostgreSQL
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

func main() {
	log.Println("🚀 POS Service - Iniciando...")

	cfg, err := sharedConfig.Load()
	if err != nil {
		log.Fatalf("❌ Error cargando configuración: %v", err)
	}

	// Configurar el router con Gin
	router := gin.New()

	// Agregar middlewares básicos necesarios
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Configurar Prometheus metrics si está habilitado
	if cfg.PrometheusEnabled {
		log.Println("Registering /metrics endpoint for POS service")
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	} else {
		log.Println("Prometheus metrics disabled for POS service")
	}

	// Conectar a la base de datos (opcional para bootstrap)
	dsn := cfg.PostgresDSN()
	log.Printf("Intentando conectar a %s", cfg.DBName)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Printf("⚠️  Advertencia: Error al conectar a la base de datos: %v", err)
		log.Println("⚠️  Continuando sin DB (solo health check)")
		db = nil
	} else {
		defer db.Close()
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
		// Comprobar la conexión
		if err := db.Ping(); err != nil {
			log.Printf("⚠️  Advertencia: Error al verificar la conexión a la base de datos: %v", err)
			log.Println("⚠️  Continuando sin DB (solo health check)")
			db = nil
		} else {
			log.Printf("✅ Conexión a %s establecida con éxito", cfg.DBName)
		}
	}

	// Redis para persistencia del carrito entre reinicios (opcional)
	var cartStore port.CartStore
	if cfg.RedisEnabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		cartStore = posCache.NewCartRedisStore(redisClient, time.Duration(cfg.CartTTLHours)*time.Hour)
		log.Printf("✅ Cart store Redis habilitado en %s", cfg.RedisAddr)
	} else {
		log.Println("⚠️  Cart store Redis deshabilitado (carritos solo en memoria)")
	}

	// Publisher de eventos de venta hacia Kafka (opcional)
	var publisher port.SalePublisher
	if cfg.KafkaEnabled {
		publisher = posEvent.NewKafkaSalePublisher(cfg.KafkaBrokerList(), cfg.KafkaTopic)
		defer publisher.Close()
		log.Printf("✅ Publisher Kafka habilitado (topic %s)", cfg.KafkaTopic)
	} else {
		log.Println("⚠️  Publisher Kafka deshabilitado")
	}

	// Health endpoints
	healthHandler := func(ctx *gin.Context) {
		dbStatus := "disconnected"
		if db != nil {
			if err := db.Ping(); err == nil {
				dbStatus = "connected"
			}
		}
		ctx.JSON(200, gin.H{
			"status":   "ok",
			"service":  "pos-service",
			"database": dbStatus,
		})
	}
	router.GET("/health", healthHandler)

	// API v1 grupo de rutas
	v1 := router.Group("/api/v1")
	v1.GET("/health", healthHandler)

	// Configurar módulo POS
	setupPOSModule(v1, db, dsn, cfg, cartStore, publisher)

	// Iniciar el servidor
	log.Printf("✅ Servidor POS Service iniciado en http://localhost:%s", cfg.ServerPort)
	log.Printf("✅ Health endpoint: GET http://localhost:%s/health", cfg.ServerPort)
	router.Run(":" + cfg.ServerPort)
}

// setupPOSModule configura el módulo POS completo: repositorios, sincronizador
// de catálogo, casos de uso y controladores
func setupPOSModule(
	router *gin.RouterGroup,
	db *sql.DB,
	dsn string,
	cfg *sharedConfig.Config,
	cartStore port.CartStore,
	publisher port.SalePublisher,
) {
	log.Println("Configurando módulo POS...")

	if db == nil {
		log.Println("⚠️  Módulo POS deshabilitado (sin conexión a DB)")
		return
	}

	// Crear repositorios
	productRepo := posPersistence.NewProductPostgresRepository(db)
	saleRepo := posPersistence.NewSalePostgresRepository(db)
	tenantRepo := posPersistence.NewTenantPostgresRepository(db)
	employeeRepo := posPersistence.NewEmployeePostgresRepository(db)
	settingsRepo := posPersistence.NewSettingsPostgresRepository(db)

	// Sincronizador de catálogo: vistas locales por tenant, refrescadas por
	// LISTEN/NOTIFY más ticker de respaldo
	catalogSync := posCatalog.NewCatalogSync(productRepo, employeeRepo, settingsRepo)
	catalogSync.Start(dsn, time.Duration(cfg.CatalogRefreshSeconds)*time.Second)

	// Crear casos de uso
	resolveTenantUC := usecase.NewResolveTenantUseCase(tenantRepo)
	cartSvc := usecase.NewCartService(catalogSync, cartStore)
	checkoutUC := usecase.NewCheckoutUseCase(cartSvc, catalogSync, saleRepo, publisher)
	listSalesUC := usecase.NewListSalesUseCase(saleRepo)
	listProductsUC := usecase.NewListProductsUseCase(catalogSync)
	addProductUC := usecase.NewAddProductUseCase(productRepo, catalogSync)
	restockUC := usecase.NewRestockProductUseCase(productRepo, catalogSync)
	updateSettingsUC := usecase.NewUpdateSettingsUseCase(settingsRepo, catalogSync)
	registerEmployeeUC := usecase.NewRegisterEmployeeUseCase(employeeRepo, catalogSync)
	salesReportUC := usecase.NewSalesReportUseCase(db)

	// Crear controladores
	tenantMW := posController.NewTenantMiddleware(resolveTenantUC)
	router.Use(tenantMW.Handler())

	posCtrl := posController.NewPOSController(cartSvc, checkoutUC, listSalesUC, catalogSync)
	catalogCtrl := posController.NewCatalogController(
		listProductsUC, addProductUC, restockUC, updateSettingsUC, registerEmployeeUC, catalogSync)
	reportCtrl := posController.NewReportController(salesReportUC)

	// Registrar rutas
	posCtrl.RegisterRoutes(router)
	catalogCtrl.RegisterRoutes(router)
	reportCtrl.RegisterRoutes(router)

	log.Println("Módulo POS configurado exitosamente")
}
