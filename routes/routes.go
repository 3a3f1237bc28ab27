package routes

import (
	"log"

	"github.com/labstack/echo/v4"

	"homebuddy/config"
	"homebuddy/handlers"
	"homebuddy/middleware"
	"homebuddy/store"
)

func RegisterRoutes(e *echo.Echo) {
	propertyController := handlers.NewPropertyController(store.NewMongoPropertyStore())
	contactController := handlers.NewContactController(store.NewMongoContactStore())
	userController := handlers.NewUserController(store.NewMongoUserStore())

	var uploader handlers.ImageUploader
	if cld, err := config.NewCloudinaryUploader(); err != nil {
		log.Printf("Cloudinary not configured, uploads disabled: %v", err)
	} else {
		uploader = cld
	}
	uploadController := handlers.NewUploadController(uploader)

	api := e.Group("/api")

	api.GET("/health", handlers.HealthCheck)

	auth := api.Group("/auth")
	auth.POST("/register", userController.Register)
	auth.POST("/login", userController.Login)

	users := api.Group("/users", middleware.JWTMiddleware())
	users.GET("/profile", userController.GetProfile)
	users.PUT("/profile", userController.UpdateProfile)

	properties := api.Group("/properties")
	properties.GET("", propertyController.ListProperties)
	properties.GET("/featured", propertyController.GetFeaturedProperties)
	properties.GET("/:id", propertyController.GetProperty)
	properties.POST("", propertyController.CreateProperty, middleware.JWTMiddleware(), middleware.LandlordOnly())
	properties.PUT("/:id", propertyController.UpdateProperty, middleware.JWTMiddleware(), middleware.LandlordOnly())
	properties.DELETE("/:id", propertyController.DeleteProperty, middleware.JWTMiddleware(), middleware.LandlordOnly())

	contact := api.Group("/contact")
	contact.POST("", contactController.SubmitContact)
	contact.GET("", contactController.GetAllContacts, middleware.JWTMiddleware())
	contact.GET("/:id", contactController.GetContact, middleware.JWTMiddleware())
	contact.PUT("/:id", contactController.UpdateContactStatus, middleware.JWTMiddleware())
	contact.DELETE("/:id", contactController.DeleteContact, middleware.JWTMiddleware())

	upload := api.Group("/upload", middleware.JWTMiddleware())
	upload.POST("/single", uploadController.UploadSingle)
	upload.POST("/multiple", uploadController.UploadMultiple)
	upload.DELETE("", uploadController.DeleteImage)
}
