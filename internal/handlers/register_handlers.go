package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/SscSPs/user_account_app/cmd/docs"
	portssvc "github.com/SscSPs/user_account_app/internal/core/ports/services"
	"github.com/SscSPs/user_account_app/internal/middleware"
	"github.com/SscSPs/user_account_app/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerCustomValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupUserRoutes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupUserRoutes configures the /api/v1/user group. Signup and login are
// public; everything else sits behind the auth middleware.
func setupUserRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	authHandler := NewAuthHandler(cfg, services.User, services.Token)
	userHandler := newUserHandler(cfg, services.User)

	user := r.Group("/api/v1/user")
	{
		user.POST("/signup", authHandler.Signup)
		user.POST("/login", authHandler.Login)
	}

	protected := user.Group("", middleware.AuthMiddleware(cfg, services.Token, services.User))
	{
		protected.POST("/logout", authHandler.Logout)
		protected.GET("/me", userHandler.getCurrentUser)
		protected.POST("/detail-update", userHandler.updateProfile)
		protected.POST("/password-change", userHandler.changePassword)
		protected.POST("/delete-account", userHandler.deleteAccount)
	}
}

// registerCustomValidators adds the `mobile` rule to gin's binding engine:
// 10 to 15 digits, no separators.
func registerCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("mobile", func(fl validator.FieldLevel) bool {
		mobile := fl.Field().String()
		if len(mobile) < 10 || len(mobile) > 15 {
			return false
		}
		for _, r := range mobile {
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	})
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
