// @title Salt & Soul API
// @version 1.0
// @description Storefront, cart, checkout and CMS API for the Salt & Soul activewear store
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	catalog_cache "github.com/ssaltnsoul-code/SaltnSoul/cache"
	"github.com/ssaltnsoul-code/SaltnSoul/config"
	admin_auth "github.com/ssaltnsoul-code/SaltnSoul/controllers/cms/admin_controller/auth"
	"github.com/ssaltnsoul-code/SaltnSoul/controllers/cms/collection_controller"
	"github.com/ssaltnsoul-code/SaltnSoul/controllers/cms/customer_controller"
	"github.com/ssaltnsoul-code/SaltnSoul/controllers/cms/inventory_controller"
	"github.com/ssaltnsoul-code/SaltnSoul/controllers/cms/order_controller"
	cms_product "github.com/ssaltnsoul-code/SaltnSoul/controllers/cms/product_controller"
	"github.com/ssaltnsoul-code/SaltnSoul/controllers/ecommerce/cart_controller"
	"github.com/ssaltnsoul-code/SaltnSoul/controllers/ecommerce/checkout_controller"
	store_product "github.com/ssaltnsoul-code/SaltnSoul/controllers/ecommerce/product_controller"
	"github.com/ssaltnsoul-code/SaltnSoul/controllers/ecommerce/section_controller"
	"github.com/ssaltnsoul-code/SaltnSoul/controllers/ecommerce/webhook_controller"
	_ "github.com/ssaltnsoul-code/SaltnSoul/docs"
	"github.com/ssaltnsoul-code/SaltnSoul/middleware"
	"github.com/ssaltnsoul-code/SaltnSoul/models"
	"github.com/ssaltnsoul-code/SaltnSoul/routes/cms_routes"
	"github.com/ssaltnsoul-code/SaltnSoul/routes/ecommerce_routes"
	"github.com/ssaltnsoul-code/SaltnSoul/services"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	appCfg := config.LoadAppConfig()
	shopifyCfg := config.LoadShopifyConfig()

	shutdownTracing := config.InitTelemetry("saltnsoul-api")
	dbReady := config.InitDB()
	redisReady := config.ConnectRedis()
	stripeReady := config.InitStripe()

	// ════════════════════════════════════════════════════════════
	// Stores & upstream clients
	// ════════════════════════════════════════════════════════════

	var store services.KVStore = services.NewMemoryStore()
	if redisReady {
		store = services.NewRedisStore(config.RedisClient, "saltnsoul")
	}

	var supabase *services.SupabaseService
	if dbReady {
		supabase = services.NewSupabaseService(config.SupabaseGorm, config.SupabaseDB)
		if err := supabase.Migrate(); err != nil {
			log.Fatalf("❌ Failed to migrate Supabase tables: %v", err)
		}
		log.Println("✅ Supabase tables migrated")
	}

	var shopifyAdmin *services.ShopifyAdminService
	if shopifyCfg.AdminEnabled() {
		shopifyAdmin = services.NewShopifyAdminService(shopifyCfg)
		log.Printf("✅ Shopify Admin API configured for %s", shopifyCfg.StoreDomain)
	}
	var storefront *services.ShopifyStorefrontService
	if shopifyCfg.StorefrontEnabled() {
		storefront = services.NewShopifyStorefrontService(shopifyCfg)
		log.Printf("✅ Shopify Storefront API configured for %s", shopifyCfg.StoreDomain)
	}

	var uploader services.ImageUploader
	if cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME"); cloudName != "" {
		cld, err := services.NewCloudinaryService(cloudName, os.Getenv("CLOUDINARY_API_KEY"), os.Getenv("CLOUDINARY_API_SECRET"))
		if err != nil {
			log.Fatalf("Failed to initialize Cloudinary: %v", err)
		}
		uploader = cld
		log.Println("✅ Cloudinary configured")
	}

	// ════════════════════════════════════════════════════════════
	// Catalog
	// ════════════════════════════════════════════════════════════

	source := catalogSource(appCfg.CatalogSource, shopifyCfg, shopifyAdmin, storefront, supabase)
	catalog := catalog_cache.New(source)

	ctx, cancel := config.WithCustomTimeout(config.RefreshTimeout)
	if err := catalog.Refresh(ctx); err != nil {
		log.Printf("⚠️ Initial catalog load failed, storefront starts empty: %v", err)
	}
	cancel()

	pollCtx, stopPolling := context.WithCancel(context.Background())
	catalog.StartPolling(pollCtx, appCfg.RefreshInterval)
	log.Printf("✅ Catalog source %s, refreshing every %v", source.Name(), appCfg.RefreshInterval)

	// ════════════════════════════════════════════════════════════
	// Services
	// ════════════════════════════════════════════════════════════

	jwtService, err := services.NewJWTService(appCfg.JWTSecret)
	if err != nil {
		log.Fatalf("❌ JWT_SECRET environment variable not set: %v", err)
	}
	if appCfg.AdminEmail == "" || appCfg.AdminPassHash == "" {
		log.Println("⚠️ ADMIN_EMAIL or ADMIN_PASSWORD_HASH not set, CMS login disabled")
	}
	adminAuth := services.NewAdminAuthService(appCfg.AdminEmail, appCfg.AdminPassHash, jwtService, store)

	// Interfaces stay nil (not typed-nil) for unconfigured upstreams.
	var (
		checkoutCreator services.CheckoutCreator
		payments        services.PaymentIntentCreator
		orderRecorder   services.OrderRecorder
		collectionIDs   services.CollectionProductSource
	)
	if storefront != nil {
		checkoutCreator = storefront
	}
	if stripeReady {
		payments = services.NewStripeService()
	}
	if supabase != nil {
		orderRecorder = supabase
	}
	if shopifyAdmin != nil {
		collectionIDs = shopifyAdmin
	}

	carts := services.NewCartService(store)
	collections := services.NewCollectionService(store, catalog, collectionIDs)
	checkout := services.NewCheckoutService(carts, checkoutCreator, payments, orderRecorder)

	// ════════════════════════════════════════════════════════════
	// Controllers
	// ════════════════════════════════════════════════════════════

	var (
		productWriter cms_product.ProductWriter
		shopifyOrders order_controller.ShopifyOrders
		customerAPI   customer_controller.CustomerLister
		inventoryAPI  inventory_controller.InventoryManager
		collectionAPI collection_controller.CollectionLister
		orderStore    order_controller.OrderStore
		orderReader   checkout_controller.OrderReader
		orderUpdater  webhook_controller.OrderUpdater
	)
	if shopifyAdmin != nil {
		productWriter = shopifyAdmin
		shopifyOrders = shopifyAdmin
		customerAPI = shopifyAdmin
		inventoryAPI = shopifyAdmin
		collectionAPI = shopifyAdmin
	}
	if supabase != nil {
		orderStore = supabase
		orderReader = supabase
		orderUpdater = supabase
	}

	store_product.InitProductController(catalog)
	section_controller.InitSectionController(collections)
	cart_controller.InitCartController(carts, catalog)
	checkout_controller.InitCheckoutController(checkout, payments, orderReader)
	if shopifyCfg.WebhookSecret == "" {
		log.Println("⚠️ SHOPIFY_WEBHOOK_SECRET not set: product and order webhooks will be rejected")
	}
	webhook_controller.InitWebhookController(shopifyCfg.WebhookSecret, catalog, orderUpdater)
	admin_auth.InitAdminAuthController(adminAuth, appCfg.SecureCookies)
	cms_product.InitProductController(productWriter, uploader, catalog)
	order_controller.InitOrderController(shopifyOrders, orderStore)
	customer_controller.InitCustomerController(customerAPI)
	inventory_controller.InitInventoryController(inventoryAPI, catalog)
	collection_controller.InitCollectionController(collections, collectionAPI)

	// ════════════════════════════════════════════════════════════
	// Router
	// ════════════════════════════════════════════════════════════

	if appCfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	corsCfg := cors.Config{
		AllowOrigins:     appCfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", middleware.CartSessionHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length", middleware.CartSessionHeader},
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "ok", catalog.Status()))
	})

	api := router.Group("/api/v1")

	ecommerce_routes.SetupStorefrontRoutes(api)
	ecommerce_routes.SetupCartRoutes(api, config.RedisClient, appCfg.SecureCookies)
	ecommerce_routes.SetupWebhookRoutes(api)

	adminGroup := cms_routes.SetupAdminRoutes(api, adminAuth, config.RedisClient)
	cms_routes.SetupProductRoutes(adminGroup)
	cms_routes.SetupOrderRoutes(adminGroup)
	cms_routes.SetupCustomerRoutes(adminGroup)
	cms_routes.SetupInventoryRoutes(adminGroup)
	cms_routes.SetupSectionRoutes(adminGroup)
	log.Println("✅ Routes registered")

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:              ":" + appCfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server is running on http://localhost:%s", appCfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Server error: %v", err)
		}
	}()

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-sigCtx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancelShutdown := config.WithTimeout()
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("⚠️ Server shutdown: %v", err)
	}

	stopPolling()
	catalog.Stop()
	config.CloseDB()
	config.CloseRedis()
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Printf("⚠️ Tracing shutdown: %v", err)
	}
	log.Println("✅ Shutdown complete")
}

// catalogSource picks the catalog upstream named by CATALOG_SOURCE.
func catalogSource(name string, cfg config.ShopifyConfig, admin *services.ShopifyAdminService,
	storefront *services.ShopifyStorefrontService, supabase *services.SupabaseService) catalog_cache.Source {
	switch name {
	case config.SourceShopifyStorefront:
		if storefront == nil {
			log.Fatal("❌ CATALOG_SOURCE=shopify-storefront needs SHOPIFY_STORE_DOMAIN and SHOPIFY_STOREFRONT_ACCESS_TOKEN")
		}
		return storefront
	case config.SourceShopifyREST:
		if !cfg.AdminEnabled() {
			log.Fatal("❌ CATALOG_SOURCE=shopify-rest needs SHOPIFY_STORE_DOMAIN and SHOPIFY_ADMIN_ACCESS_TOKEN")
		}
		return services.NewShopifyRESTSource(cfg)
	case config.SourceSupabase:
		if supabase == nil {
			log.Fatal("❌ CATALOG_SOURCE=supabase needs SUPABASE_DB_URL")
		}
		return supabase
	default:
		if admin == nil {
			log.Fatal("❌ CATALOG_SOURCE=shopify-admin needs SHOPIFY_STORE_DOMAIN and SHOPIFY_ADMIN_ACCESS_TOKEN")
		}
		return admin
	}
}
