package http

import "biblioteca-service/pkg/manager"

// Controller plugins are wired into the shared manager at import time;
// app.Run blank-imports this package and later attaches all routes.
func init() {
	manager.RegisterControllerPlugin(&PersonControllerPlugin{})
	manager.RegisterControllerPlugin(&ResourceControllerPlugin{})
	manager.RegisterControllerPlugin(&LoanControllerPlugin{})
	manager.RegisterControllerPlugin(&NotificationControllerPlugin{})
	manager.RegisterControllerPlugin(&ReportControllerPlugin{})
}
