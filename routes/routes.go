package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"managebooking-backend/controllers"
	"managebooking-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controllers into the route tree. Everything under
// /api except /api/auth requires a valid Bearer token.
func SetupRouter(
	ac *controllers.AuthController,
	cc *controllers.CustomerController,
	pc *controllers.ProfileController,
	jwtSecret string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())
	r.Static("/uploads", "./uploads")

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signup", ac.Signup)
			auth.POST("/login", ac.Login)
			auth.POST("/forgot", ac.ForgotPassword)
		}

		protected := api.Group("")
		protected.Use(middleware.Auth(jwtSecret))
		{
			customers := protected.Group("/customers")
			{
				customers.GET("", cc.GetCustomers)
				customers.POST("", cc.RegisterCustomer)

				// must stay before /:id
				customers.GET("/occupied-rooms", cc.GetOccupiedRooms)

				customers.GET("/:id", cc.GetCustomerByID)
				customers.PUT("/:id", cc.UpdateCustomer)
				customers.DELETE("/:id", cc.DeleteCustomer)
				customers.POST("/:id/checkout", cc.CheckoutCustomer)
				customers.POST("/:id/reactivate", cc.ReactivateCustomer)
				customers.GET("/:id/events", cc.GetCustomerEvents)
			}

			profile := protected.Group("/profile")
			{
				profile.GET("", pc.GetProfile)
				profile.POST("/name", pc.ChangeName)
				profile.POST("/username", pc.ChangeUsername)
				profile.POST("/password", pc.ChangePassword)
				profile.POST("/photo", pc.ChangePhoto)
			}
		}
	}

	return r
}
