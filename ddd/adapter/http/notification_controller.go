package http

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"biblioteca-service/ddd/application/app"
	"biblioteca-service/pkg/errno"
	"biblioteca-service/pkg/logger"
	"biblioteca-service/pkg/manager"
	"biblioteca-service/pkg/restapi"
	"biblioteca-service/pkg/sse"
)

var (
	notificationControllerOnce sync.Once
	singletonNotificationCtrl  NotificationController
)

// NotificationControllerPlugin registers the notification controller
// with the shared manager.
type NotificationControllerPlugin struct{}

func (p *NotificationControllerPlugin) Name() string {
	return "notificationController"
}

func (p *NotificationControllerPlugin) MustCreateController() manager.Controller {
	notificationControllerOnce.Do(func() {
		singletonNotificationCtrl = &notificationControllerImpl{
			app: app.DefaultNotificationApp(),
		}
	})
	return singletonNotificationCtrl
}

// NotificationController serves derived loan notifications.
type NotificationController interface {
	manager.Controller
	List(ctx *gin.Context)
	Refresh(ctx *gin.Context)
	Stream(ctx *gin.Context)
}

type notificationControllerImpl struct {
	manager.Controller
	app app.NotificationApp
}

func (c *notificationControllerImpl) RegisterOpenApi(group *gin.RouterGroup) {
	v1 := group.Group("library/v1")
	{
		v1.GET("/notifications", c.List)
		v1.POST("/notifications/refresh", c.Refresh)
		v1.GET("/notifications/stream", c.Stream)
	}
}

func (c *notificationControllerImpl) RegisterInnerApi(group *gin.RouterGroup) {}
func (c *notificationControllerImpl) RegisterDebugApi(group *gin.RouterGroup) {}
func (c *notificationControllerImpl) RegisterOpsApi(group *gin.RouterGroup)   {}

// List returns the current overdue/expiring notification set plus its
// aggregate counters, in derivation order.
func (c *notificationControllerImpl) List(ctx *gin.Context) {
	resp, err := c.app.List(ctx.Request.Context())
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}
	restapi.Success(ctx, resp)
}

// Refresh forces a re-derivation and pushes an SSE event to open
// dashboards.
func (c *notificationControllerImpl) Refresh(ctx *gin.Context) {
	resp, err := c.app.Refresh(ctx.Request.Context())
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}
	restapi.Success(ctx, resp)
}

// Stream establishes an SSE stream for notification updates. Frontends
// listen for "notification.refreshed" events and re-fetch the list on
// each one.
func (c *notificationControllerImpl) Stream(ctx *gin.Context) {
	w := ctx.Writer
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	flusher, ok := w.(http.Flusher)
	if !ok {
		logger.WithContext(ctx.Request.Context()).Errorf("notification: SSE stream does not support flushing")
		restapi.FailedWithStatus(ctx, errno.ErrInternalServer, http.StatusInternalServerError)
		return
	}

	events, unsubscribe := sse.DefaultHub().Subscribe(app.NotificationTopic)
	defer unsubscribe()

	// Initial comment to keep some proxies happy.
	if _, err := w.Write([]byte(": ok\n\n")); err == nil {
		flusher.Flush()
	}

	// Periodic heartbeat to keep long-lived connections from timing out
	// on proxies.
	heartbeat := time.NewTicker(25 * time.Second)
	defer heartbeat.Stop()

	notify := ctx.Request.Context().Done()
	for {
		select {
		case <-notify:
			return
		case <-heartbeat.C:
			if _, err := w.Write([]byte(": ping\n\n")); err != nil {
				return
			}
			flusher.Flush()
		case ev, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(ev.Data)
			if err != nil {
				continue
			}
			if _, err := w.Write([]byte("event: " + ev.Type + "\n")); err != nil {
				return
			}
			if _, err := w.Write([]byte("data: ")); err != nil {
				return
			}
			if _, err := w.Write(data); err != nil {
				return
			}
			if _, err := w.Write([]byte("\n\n")); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
