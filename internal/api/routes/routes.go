package routes

import (
	"fmt"

	_ "foodgram-backend/docs"
	"foodgram-backend/internal/api/handlers"
	"foodgram-backend/internal/api/middleware"
	"foodgram-backend/internal/auth"
	"foodgram-backend/internal/config"
	"foodgram-backend/internal/repository"
	"foodgram-backend/internal/service"
	"foodgram-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint
var Version = "dev"

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, images storage.ImageStore, limiter *middleware.RateLimiter) (*gin.Engine, error) {
	router, err := newEngine(cfg, limiter)
	if err != nil {
		return nil, err
	}

	validator := service.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	tagRepo := repository.NewTagRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	cartRepo := repository.NewShoppingCartRepository(db)

	projector := service.NewProjector(subscriptionRepo, favoriteRepo, cartRepo, recipeRepo)

	// Initialize services
	userService := service.NewUserService(userRepo, projector, service.NewDefaultPasswordValidator(), validator, cfg.PageSize)
	subscriptionService := service.NewSubscriptionService(subscriptionRepo, userRepo, projector, cfg.PageSize)
	tagService := service.NewTagService(tagRepo)
	ingredientService := service.NewIngredientService(ingredientRepo)
	recipeService := service.NewRecipeService(recipeRepo, tagRepo, ingredientRepo, images, projector, validator, cfg.PageSize)
	favoriteService := service.NewFavoriteService(favoriteRepo, recipeRepo)
	cartService := service.NewShoppingCartService(cartRepo, recipeRepo)

	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg.JWTSecret, cfg.TokenTTLHours))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	authHandler := auth.NewAuthHandler(authService, userService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(sqlDB, Version)
	userHandler := handlers.NewUserHandler(userService, subscriptionService)
	tagHandler := handlers.NewTagHandler(tagService)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService)
	recipeHandler := handlers.NewRecipeHandler(recipeService)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService, cartService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	registerDocs(router)

	if cfg.ImageStorage == "local" {
		router.Static(cfg.MediaURL, cfg.MediaRoot)
	}

	requireAuth := auth.RequireAuth()

	api := router.Group("/api")
	api.Use(authMiddleware.OptionalAuth())
	{
		token := api.Group("/auth/token")
		{
			token.POST("/login", authHandler.Login)
			token.POST("/logout", requireAuth, authHandler.Logout)
		}

		users := api.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.POST("", userHandler.Register)
			users.GET("/me", requireAuth, userHandler.Me)
			users.POST("/set_password", requireAuth, userHandler.SetPassword)
			users.GET("/subscriptions", requireAuth, userHandler.ListSubscriptions)
			users.GET("/:id", userHandler.GetUser)
			users.POST("/:id/subscribe", requireAuth, userHandler.Subscribe)
			users.DELETE("/:id/subscribe", requireAuth, userHandler.Unsubscribe)
		}

		tags := api.Group("/tags")
		{
			tags.GET("", tagHandler.ListTags)
			tags.GET("/:id", tagHandler.GetTag)
		}

		ingredients := api.Group("/ingredients")
		{
			ingredients.GET("", ingredientHandler.ListIngredients)
			ingredients.GET("/:id", ingredientHandler.GetIngredient)
		}

		recipes := api.Group("/recipes")
		{
			recipes.GET("", recipeHandler.ListRecipes)
			recipes.POST("", requireAuth, recipeHandler.CreateRecipe)
			recipes.GET("/download_shopping_cart", requireAuth, favoriteHandler.DownloadShoppingCart)
			recipes.GET("/:id", recipeHandler.GetRecipe)
			recipes.PATCH("/:id", requireAuth, recipeHandler.UpdateRecipe)
			recipes.DELETE("/:id", requireAuth, recipeHandler.DeleteRecipe)
			recipes.POST("/:id/favorite", requireAuth, favoriteHandler.AddFavorite)
			recipes.DELETE("/:id/favorite", requireAuth, favoriteHandler.RemoveFavorite)
			recipes.POST("/:id/shopping_cart", requireAuth, favoriteHandler.AddToShoppingCart)
			recipes.DELETE("/:id/shopping_cart", requireAuth, favoriteHandler.RemoveFromShoppingCart)
		}
	}

	return router, nil
}

// newEngine builds the gin engine with the global middleware chain. Client
// IPs come from forwarding headers only when the peer is a trusted proxy.
func newEngine(cfg *config.Config, limiter *middleware.RateLimiter) (*gin.Engine, error) {
	router := gin.New()
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid TRUSTED_PROXIES: %w", err)
	}

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Metrics())
	if limiter != nil {
		router.Use(limiter.Middleware())
	}
	return router, nil
}

// registerDocs serves the generated OpenAPI document and its UI
func registerDocs(router *gin.Engine) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
