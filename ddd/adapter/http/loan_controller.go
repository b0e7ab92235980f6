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
	loanControllerOnce sync.Once
	singletonLoanCtrl  LoanController
)

// LoanControllerPlugin registers the loan controller with the shared
// manager.
type LoanControllerPlugin struct{}

func (p *LoanControllerPlugin) Name() string {
	return "loanController"
}

func (p *LoanControllerPlugin) MustCreateController() manager.Controller {
	loanControllerOnce.Do(func() {
		singletonLoanCtrl = &loanControllerImpl{
			app: app.DefaultLoanApp(),
		}
	})
	return singletonLoanCtrl
}

// LoanController handles loan lifecycle endpoints.
type LoanController interface {
	manager.Controller
	Create(ctx *gin.Context)
	Get(ctx *gin.Context)
	List(ctx *gin.Context)
	Update(ctx *gin.Context)
	Return(ctx *gin.Context)
	MarkLost(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type loanControllerImpl struct {
	manager.Controller
	app app.LoanApp
}

func (c *loanControllerImpl) RegisterOpenApi(group *gin.RouterGroup) {
	v1 := group.Group("library/v1")
	{
		v1.POST("/loans", c.Create)
		v1.GET("/loans", c.List)
		v1.GET("/loans/:id", c.Get)
		v1.PUT("/loans/:id", c.Update)
		v1.POST("/loans/:id/return", c.Return)
		v1.POST("/loans/:id/lost", c.MarkLost)
		v1.DELETE("/loans/:id", c.Delete)
	}
}

func (c *loanControllerImpl) RegisterInnerApi(group *gin.RouterGroup) {}
func (c *loanControllerImpl) RegisterDebugApi(group *gin.RouterGroup) {}
func (c *loanControllerImpl) RegisterOpsApi(group *gin.RouterGroup)   {}

func (c *loanControllerImpl) Create(ctx *gin.Context) {
	var req cqe.CreateLoanReq
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

func (c *loanControllerImpl) Get(ctx *gin.Context) {
	resp, err := c.app.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}
	restapi.Success(ctx, resp)
}

func (c *loanControllerImpl) List(ctx *gin.Context) {
	var req cqe.ListLoansReq
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

func (c *loanControllerImpl) Update(ctx *gin.Context) {
	var req cqe.UpdateLoanReq
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

func (c *loanControllerImpl) Return(ctx *gin.Context) {
	var req cqe.ReturnLoanReq
	if err := ctx.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		restapi.Failed(ctx, errno.NewSimpleBizError(errno.ErrParameterInvalid, err, "body"))
		return
	}
	resp, err := c.app.Return(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}
	restapi.Success(ctx, resp)
}

func (c *loanControllerImpl) MarkLost(ctx *gin.Context) {
	var req cqe.MarkLostReq
	if err := ctx.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		restapi.Failed(ctx, errno.NewSimpleBizError(errno.ErrParameterInvalid, err, "body"))
		return
	}
	resp, err := c.app.MarkLost(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}
	restapi.Success(ctx, resp)
}

func (c *loanControllerImpl) Delete(ctx *gin.Context) {
	if err := c.app.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		restapi.Failed(ctx, err)
		return
	}
	restapi.Success(ctx, gin.H{"status": "ok"})
}
