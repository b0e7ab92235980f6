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
	personControllerOnce sync.Once
	singletonPersonCtrl  PersonController
)

// PersonControllerPlugin registers the person controller with the
// shared manager.
type PersonControllerPlugin struct{}

func (p *PersonControllerPlugin) Name() string {
	return "personController"
}

func (p *PersonControllerPlugin) MustCreateController() manager.Controller {
	personControllerOnce.Do(func() {
		singletonPersonCtrl = &personControllerImpl{
			app: app.DefaultPersonApp(),
		}
	})
	return singletonPersonCtrl
}

// PersonController handles library member CRUD.
type PersonController interface {
	manager.Controller
	Create(ctx *gin.Context)
	Get(ctx *gin.Context)
	List(ctx *gin.Context)
	Update(ctx *gin.Context)
	Deactivate(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type personControllerImpl struct {
	manager.Controller
	app app.PersonApp
}

func (c *personControllerImpl) RegisterOpenApi(group *gin.RouterGroup) {
	v1 := group.Group("library/v1")
	{
		v1.POST("/persons", c.Create)
		v1.GET("/persons", c.List)
		v1.GET("/persons/:id", c.Get)
		v1.PUT("/persons/:id", c.Update)
		v1.POST("/persons/:id/deactivate", c.Deactivate)
		v1.DELETE("/persons/:id", c.Delete)
	}
}

func (c *personControllerImpl) RegisterInnerApi(group *gin.RouterGroup) {}
func (c *personControllerImpl) RegisterDebugApi(group *gin.RouterGroup) {}
func (c *personControllerImpl) RegisterOpsApi(group *gin.RouterGroup)   {}

func (c *personControllerImpl) Create(ctx *gin.Context) {
	var req cqe.CreatePersonReq
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

func (c *personControllerImpl) Get(ctx *gin.Context) {
	resp, err := c.app.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}
	restapi.Success(ctx, resp)
}

func (c *personControllerImpl) List(ctx *gin.Context) {
	var req cqe.ListPersonsReq
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

func (c *personControllerImpl) Update(ctx *gin.Context) {
	var req cqe.UpdatePersonReq
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

func (c *personControllerImpl) Deactivate(ctx *gin.Context) {
	if err := c.app.Deactivate(ctx.Request.Context(), ctx.Param("id")); err != nil {
		restapi.Failed(ctx, err)
		return
	}
	restapi.Success(ctx, gin.H{"status": "ok"})
}

func (c *personControllerImpl) Delete(ctx *gin.Context) {
	if err := c.app.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		restapi.Failed(ctx, err)
		return
	}
	restapi.Success(ctx, gin.H{"status": "ok"})
}
