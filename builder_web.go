// package apns provides a client for sending notifications to the Apple Push Notification service.
package apns

import (
	"github.com/pushlayer/apns/notification"
	"github.com/pushlayer/apns/payload"
)

// WebNotificationBuilder produces payloads for Safari web push notifications.
// The alert and the url-args list are both mandatory and fixed at
// construction; the optional sound is the only mutable field.
//
// Example:
//
//	b := apns.NewWebNotificationBuilder(payload.WebPushAlert{
//		Title:  "Hello",
//		Body:   "world",
//		Action: "View",
//	}, []string{"arg1"})
//	b.SetSound("meow")
//	p := b.Build(token, notification.Options{PushType: notification.Alert})
type WebNotificationBuilder struct {
	guard   consumeGuard
	alert   payload.WebPushAlert
	sound   any
	urlArgs []string
}

// NewWebNotificationBuilder creates a builder for a web push notification.
// urlArgs are the positional values substituted into the URL template the
// Safari push registration declared; the list may be empty but the `url-args`
// key is always serialized.
func NewWebNotificationBuilder(alert payload.WebPushAlert, urlArgs []string) *WebNotificationBuilder {
	args := make([]string, len(urlArgs))
	copy(args, urlArgs)
	return &WebNotificationBuilder{alert: alert, urlArgs: args}
}

// SetSound sets the file name of the sound played on delivery.
func (b *WebNotificationBuilder) SetSound(name string) *WebNotificationBuilder {
	b.sound = name
	return b
}

// Build implements NotificationBuilder. The resulting aps dictionary carries
// only the fields web push understands: the alert, the optional sound, and
// the url-args list. The builder cannot be used again afterwards.
func (b *WebNotificationBuilder) Build(deviceToken string, opts notification.Options) *Payload {
	b.guard.consume()

	return &Payload{
		DeviceToken: deviceToken,
		APS: payload.APS{
			Alert:   b.alert,
			Sound:   b.sound,
			URLArgs: &b.urlArgs,
		},
		Options:    opts,
		CustomData: make(map[string]any),
	}
}
