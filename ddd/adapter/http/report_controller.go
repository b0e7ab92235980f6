package http

import (
	"fmt"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"biblioteca-service/ddd/application/app"
	"biblioteca-service/ddd/application/cqe"
	"biblioteca-service/pkg/errno"
	"biblioteca-service/pkg/manager"
	"biblioteca-service/pkg/restapi"
)

var (
	reportControllerOnce sync.Once
	singletonReportCtrl  ReportController
)

// ReportControllerPlugin registers the report controller with the
// shared manager.
type ReportControllerPlugin struct{}

func (p *ReportControllerPlugin) Name() string {
	return "reportController"
}

func (p *ReportControllerPlugin) MustCreateController() manager.Controller {
	reportControllerOnce.Do(func() {
		singletonReportCtrl = &reportControllerImpl{
			app: app.DefaultReportApp(),
		}
	})
	return singletonReportCtrl
}

// ReportController serves the dashboard summary and the PDF loan report.
type ReportController interface {
	manager.Controller
	Summary(ctx *gin.Context)
	LoanReportPDF(ctx *gin.Context)
}

type reportControllerImpl struct {
	manager.Controller
	app app.ReportApp
}

func (c *reportControllerImpl) RegisterOpenApi(group *gin.RouterGroup) {
	v1 := group.Group("library/v1")
	{
		v1.GET("/reports/summary", c.Summary)
		v1.GET("/reports/loans/pdf", c.LoanReportPDF)
	}
}

func (c *reportControllerImpl) RegisterInnerApi(group *gin.RouterGroup) {}
func (c *reportControllerImpl) RegisterDebugApi(group *gin.RouterGroup) {}
func (c *reportControllerImpl) RegisterOpsApi(group *gin.RouterGroup)   {}

func (c *reportControllerImpl) Summary(ctx *gin.Context) {
	resp, err := c.app.Summary(ctx.Request.Context())
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}
	restapi.Success(ctx, resp)
}

func (c *reportControllerImpl) LoanReportPDF(ctx *gin.Context) {
	var req cqe.LoanReportReq
	if err := ctx.ShouldBindQuery(&req); err != nil {
		restapi.Failed(ctx, errno.NewSimpleBizError(errno.ErrParameterInvalid, err, "query"))
		return
	}
	body, err := c.app.LoanReportPDF(ctx.Request.Context(), &req)
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}

	filename := fmt.Sprintf("loan-report-%s.pdf", time.Now().Format("20060102"))
	ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.Data(200, "application/pdf", body)
}
