package http

import (
	"sync"

	"github.com/gin-gonic/gin"

	"biblioteca-service/ddd/application/app"
	"biblioteca-service/ddd/application/cqe"
	"biblioteca-service/pkg/errno"
	"biblioteca-service/pkg/manager"
	"biblioteca-service/pkg/restapi"
)

var (
	resourceControllerOnce sync.Once
	singletonResourceCtrl  ResourceController
)

// ResourceControllerPlugin registers the catalog controller with the
// shared manager.
type ResourceControllerPlugin struct{}

func (p *ResourceControllerPlugin) Name() string {
	return "resourceController"
}

func (p *ResourceControllerPlugin) MustCreateController() manager.Controller {
	resourceControllerOnce.Do(func() {
		singletonResourceCtrl = &resourceControllerImpl{
			app: app.DefaultResourceApp(),
		}
	})
	return singletonResourceCtrl
}

// ResourceController handles catalog CRUD.
type ResourceController interface {
	manager.Controller
	Create(ctx *gin.Context)
	Get(ctx *gin.Context)
	List(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type resourceControllerImpl struct {
	manager.Controller
	app app.ResourceApp
}

func (c *resourceControllerImpl) RegisterOpenApi(group *gin.RouterGroup) {
	v1 := group.Group("library/v1")
	{
		v1.POST("/resources", c.Create)
		v1.GET("/resources", c.List)
		v1.GET("/resources/:id", c.Get)
		v1.PUT("/resources/:id", c.Update)
		v1.DELETE("/resources/:id", c.Delete)
	}
}

func (c *resourceControllerImpl) RegisterInnerApi(group *gin.RouterGroup)  {}
func (c *resourceControllerImpl) RegisterDebugApi(group *gin.RouterGroup) {}
func (c *resourceControllerImpl) RegisterOpsApi(group *gin.RouterGroup)   {}

func (c *resourceControllerImpl) Create(ctx *gin.Context) {
	var req cqe.CreateResourceReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		restapi.Failed(ctx, errno.NewSimpleBizError(errno.ErrParameterInvalid, err, "body"))
		return
	}
	resp, err := c.app.Create(ctx.Request.Context(), &req)
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}
	restapi.Success(ctx, resp)
}

func (c *resourceControllerImpl) Get(ctx *gin.Context) {
	resp, err := c.app.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}
	restapi.Success(ctx, resp)
}

func (c *resourceControllerImpl) List(ctx *gin.Context) {
	var req cqe.ListResourcesReq
	if err := ctx.ShouldBindQuery(&req); err != nil {
		restapi.Failed(ctx, errno.NewSimpleBizError(errno.ErrParameterInvalid, err, "query"))
		return
	}
	resp, err := c.app.List(ctx.Request.Context(), &req)
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}
	restapi.Success(ctx, resp)
}

func (c *resourceControllerImpl) Update(ctx *gin.Context) {
	var req cqe.UpdateResourceReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		restapi.Failed(ctx, errno.NewSimpleBizError(errno.ErrParameterInvalid, err, "body"))
		return
	}
	resp, err := c.app.Update(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}
	restapi.Success(ctx, resp)
}

func (c *resourceControllerImpl) Delete(ctx *gin.Context) {
	if err := c.app.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		restapi.Failed(ctx, err)
		return
	}
	restapi.Success(ctx, gin.H{"status": "ok"})
}
