package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodshare/backend/internal/auth"
	"foodshare/backend/internal/config"
	"foodshare/backend/internal/database"
	"foodshare/backend/internal/handler"
	"foodshare/backend/internal/media"
	"foodshare/backend/internal/repository"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "foodshare/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           Foodshare API
// @version         1.0
// @description     This is the API for the Foodshare recipe service.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	db := database.Connect(config.AppConfig.DatabaseURL)

	users := repository.NewUserRepository(db)
	ingredients := repository.NewIngredientRepository(db)
	recipes := repository.NewRecipeRepository(db)
	interactions := repository.NewInteractionRepository(db)
	follows := repository.NewFollowRepository(db)
	shoppingList := repository.NewShoppingListRepository(db)

	images := media.NewStorage(config.AppConfig.MediaDir)

	authHandler := handler.NewAuthHandler(users)
	userHandler := handler.NewUserHandler(users, follows, images)
	subscriptionHandler := handler.NewSubscriptionHandler(follows, recipes, users)
	ingredientHandler := handler.NewIngredientHandler(ingredients)
	recipeHandler := handler.NewRecipeHandler(recipes, interactions, follows, images)
	interactionHandler := handler.NewInteractionHandler(interactions, recipes)
	shoppingListHandler := handler.NewShoppingListHandler(shoppingList)

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Stored images
	router.Static("/media", config.AppConfig.MediaDir)

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		// Auth routes
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/set_password", auth.AuthMiddleware(), authHandler.SetPassword)
		}

		// User routes
		userRoutes := apiV1.Group("/users")
		{
			userRoutes.GET("", auth.OptionalAuthMiddleware(), userHandler.ListUsers)
			userRoutes.GET("/me", auth.AuthMiddleware(), userHandler.GetMe)
			userRoutes.PUT("/me/avatar", auth.AuthMiddleware(), userHandler.SetAvatar)
			userRoutes.DELETE("/me/avatar", auth.AuthMiddleware(), userHandler.DeleteAvatar)
			userRoutes.GET("/subscriptions", auth.AuthMiddleware(), subscriptionHandler.ListSubscriptions)
			userRoutes.GET("/:id", auth.OptionalAuthMiddleware(), userHandler.GetUserByID)
			userRoutes.POST("/:id/subscribe", auth.AuthMiddleware(), subscriptionHandler.Subscribe)
			userRoutes.DELETE("/:id/subscribe", auth.AuthMiddleware(), subscriptionHandler.Unsubscribe)
		}

		// Ingredient catalog (public)
		ingredientRoutes := apiV1.Group("/ingredients")
		{
			ingredientRoutes.GET("", ingredientHandler.ListIngredients)
			ingredientRoutes.GET("/:id", ingredientHandler.GetIngredientByID)
		}

		// Recipe routes; reads are public, writes require auth
		recipeRoutes := apiV1.Group("/recipes")
		{
			recipeRoutes.GET("", auth.OptionalAuthMiddleware(), recipeHandler.ListRecipes)
			recipeRoutes.POST("", auth.AuthMiddleware(), recipeHandler.CreateRecipe)
			recipeRoutes.GET("/download_shopping_cart", auth.AuthMiddleware(), shoppingListHandler.DownloadShoppingCart)
			recipeRoutes.GET("/:id", auth.OptionalAuthMiddleware(), recipeHandler.GetRecipeByID)
			recipeRoutes.PUT("/:id", auth.AuthMiddleware(), recipeHandler.UpdateRecipe)
			recipeRoutes.DELETE("/:id", auth.AuthMiddleware(), recipeHandler.DeleteRecipe)
			recipeRoutes.GET("/:id/get-link", recipeHandler.GetRecipeLink)
			recipeRoutes.POST("/:id/favorite", auth.AuthMiddleware(), interactionHandler.AddFavorite)
			recipeRoutes.DELETE("/:id/favorite", auth.AuthMiddleware(), interactionHandler.RemoveFavorite)
			recipeRoutes.POST("/:id/shopping_cart", auth.AuthMiddleware(), interactionHandler.AddToCart)
			recipeRoutes.DELETE("/:id/shopping_cart", auth.AuthMiddleware(), interactionHandler.RemoveFromCart)
		}

		// Admin routes (protected by auth and admin check)
		adminRoutes := apiV1.Group("/admin")
		adminRoutes.Use(auth.AuthMiddleware(), auth.AdminMiddleware(db))
		{
			// Ingredient catalog maintenance
			adminIngredients := adminRoutes.Group("/ingredients")
			{
				adminIngredients.POST("", ingredientHandler.CreateIngredient)
				adminIngredients.PUT("/:id", ingredientHandler.UpdateIngredient)
				adminIngredients.DELETE("/:id", ingredientHandler.DeleteIngredient)
			}
		}
	}

	fmt.Printf("Server is running on %s\n", config.AppConfig.ServerAddr)
	fmt.Println("Swagger UI is available at http://localhost:8080/swagger/index.html")

	server := &http.Server{
		Addr:    config.AppConfig.ServerAddr,
		Handler: router,
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Forced shutdown: %v", err)
	}
	log.Println("Server stopped.")
}
