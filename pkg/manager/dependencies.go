package manager

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"biblioteca-service/pkg/config"
)

// Dependencies is the injection container (currently DB and Config;
// kept for parity with sibling services).
type Dependencies struct {
	DB     *gorm.DB
	Config *config.Config
}

// RegisterAllRoutes attaches every registered controller to the router.
// This service only uses controller plugins, not component or service
// plugins.
func RegisterAllRoutes(router *gin.Engine) {
	openApiGroup := router.Group("/api")
	innerApiGroup := router.Group("/api")
	debugApiGroup := router.Group("/debug")
	opsApiGroup := router.Group("/ops")

	MustInitControllers(openApiGroup, innerApiGroup, debugApiGroup, opsApiGroup)
}
