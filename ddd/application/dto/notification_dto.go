package dto

import "biblioteca-service/ddd/domain/notify"

// NotificationsResponse carries the derived notification set and its
// aggregate counters, exactly in derivation order.
type NotificationsResponse struct {
	Notifications []notify.Notification `json:"notifications"`
	Stats         notify.Stats          `json:"stats"`
}
