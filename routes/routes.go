package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"bar-bike/controllers"
	"bar-bike/middleware"
	"bar-bike/utils"
)

type Handlers struct {
	Auth      *controllers.AuthController
	User      *controllers.UserController
	Product   *controllers.ProductController
	Cart      *controllers.CartController
	Dashboard *controllers.DashboardController
	Tokens    *utils.TokenIssuer
	Users     middleware.UserLookup
	UploadDir string
}

func SetupRoutes(router *gin.Engine, h *Handlers) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	router.POST("/auth/login", h.Auth.Login)
	router.GET("/categories", h.Product.GetAllCategories)
	router.GET("/products", h.Product.GetAllProducts)
	router.GET("/products/:id", h.Product.GetProductByID)
	router.GET("/products/:id/pitch", h.Product.GetProductPitch)

	carts := router.Group("/carts")
	{
		carts.POST("", h.Cart.CreateCart)
		carts.GET("/:id", h.Cart.GetCart)
		carts.POST("/:id/items", h.Cart.AddItem)
		carts.DELETE("/:id/items", h.Cart.ClearCart)
		carts.PATCH("/:id/items/:productId", h.Cart.UpdateItem)
		carts.DELETE("/:id/items/:productId", h.Cart.RemoveItem)
		carts.POST("/:id/checkout", h.Cart.Checkout)
	}

	signedIn := []gin.HandlerFunc{
		middleware.AuthMiddleware(h.Tokens),
		middleware.ActiveUserMiddleware(h.Users),
	}

	auth := router.Group("/")
	auth.Use(signedIn...)
	{
		auth.GET("/auth/profile", h.Auth.GetProfile)
	}

	staff := router.Group("/admin")
	staff.Use(signedIn...)
	{
		staff.GET("/dashboard", h.Dashboard.GetDashboard)

		staff.POST("/products", h.Product.CreateProduct)
		staff.POST("/products/image", h.Product.UploadProductImage)
		staff.PUT("/products/:id", h.Product.UpdateProduct)
		staff.DELETE("/products/:id", h.Product.DeleteProduct)
	}

	admin := router.Group("/admin/users")
	admin.Use(signedIn...)
	admin.Use(middleware.AdminMiddleware())
	{
		admin.GET("", h.User.GetAllUsers)
		admin.POST("", h.User.CreateUser)
		admin.DELETE("/:id", h.User.DeleteUser)
	}

	if h.UploadDir != "" {
		router.Static("/uploads", h.UploadDir)
	}
}
