package app

import (
	"github.com/gin-gonic/gin"

	"biblioteca-service/pkg/manager"
)

// registerAllRoutes is a thin wrapper around the manager's route
// registration, keeping app.go focused on bootstrapping.
func registerAllRoutes(router *gin.Engine) {
	manager.RegisterAllRoutes(router)
}
