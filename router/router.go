package router

import (
	"log"

	"trailhead/catalog"
	"trailhead/config"
	"trailhead/controllers"
	"trailhead/middleware"
	"trailhead/models"

	"github.com/gin-gonic/gin"
)

// Initialize wires all routes and middlewares: public routes, authenticated
// routes (AuthRequired) and role-restricted routes (RestrictTo).
func Initialize(r *gin.Engine, cfg config.Configuration) {
	_ = cfg

	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())

	// Catálogo de produtos (projeto estático) na raiz.
	catalog.Mount(r)

	api := r.Group("/api/v1")

	// Public (no auth)
	users := api.Group("/users")
	users.POST("/signup", Logger(), controllers.Signup)
	users.POST("/login", Logger(), controllers.Login)
	users.POST("/forgotPassword", Logger(), controllers.ForgotPassword)
	users.PATCH("/resetPassword/:token", Logger(), controllers.ResetPassword)

	api.GET("/tours", Logger(), controllers.GetTours)
	api.GET("/tours/:id", Logger(), controllers.GetTourByID)

	// Authenticated routes (token required)
	auth := api.Group("")
	auth.Use(controllers.AuthRequired())
	auth.GET("/users/me", Logger(), controllers.Me)

	// Staff routes (token + role)
	staff := auth.Group("")
	staff.Use(controllers.RestrictTo(models.ROLE_ADMIN, models.ROLE_LEAD))
	staff.POST("/tours", Logger(), controllers.CreateTour)
	staff.PATCH("/tours/:id", Logger(), controllers.UpdateTour)
	staff.DELETE("/tours/:id", Logger(), controllers.DeleteTour)

	log.Printf("Routes initialized")
}
