// package apns provides a client for sending notifications to the Apple Push Notification service.
package apns

import (
	"github.com/pushlayer/apns/notification"
	"github.com/pushlayer/apns/payload"
	"github.com/pushlayer/apns/payload/sound"
)

// DefaultNotificationBuilder accumulates the general-purpose aps field set
// and produces a Payload. The alert is fixed at construction; every other
// field is optional and set through the chainable setters, where the last
// write per field wins.
//
// Example:
//
//	b := apns.NewDefaultNotificationBuilder(payload.Alert{Title: "Hi", Body: "there"})
//	p := b.SetBadge(3).SetSound("ping.aiff").Build(token, notification.Options{
//		Topic:    "com.example.app",
//		PushType: notification.Alert,
//	})
type DefaultNotificationBuilder struct {
	guard            consumeGuard
	alert            any
	badge            any
	sound            any
	category         string
	contentAvailable bool
	mutableContent   bool
}

// NewDefaultNotificationBuilder creates a builder for a regular notification.
// alert must be a plain string or a payload.Alert / *payload.Alert dictionary;
// it becomes the aps alert as-is.
func NewDefaultNotificationBuilder(alert any) *DefaultNotificationBuilder {
	return &DefaultNotificationBuilder{alert: alert}
}

// SetBadge sets the number shown on the app icon. Zero clears the badge.
func (b *DefaultNotificationBuilder) SetBadge(badge int) *DefaultNotificationBuilder {
	b.badge = badge
	return b
}

// SetSound sets the file name of the sound played on delivery.
func (b *DefaultNotificationBuilder) SetSound(name string) *DefaultNotificationBuilder {
	b.sound = name
	return b
}

// SetCriticalSound sets a critical-alert sound with the given volume.
// Critical alerts require the critical alert entitlement and bypass the
// device's mute switch.
func (b *DefaultNotificationBuilder) SetCriticalSound(name string, volume payload.Ratio) *DefaultNotificationBuilder {
	b.sound = payload.Sound{Critical: sound.Critical, Name: name, Volume: volume}
	return b
}

// SetCategory sets the identifier of a registered actionable notification category.
func (b *DefaultNotificationBuilder) SetCategory(category string) *DefaultNotificationBuilder {
	b.category = category
	return b
}

// SetContentAvailable marks the notification as background content
// (`content-available: 1`).
func (b *DefaultNotificationBuilder) SetContentAvailable() *DefaultNotificationBuilder {
	b.contentAvailable = true
	return b
}

// SetMutableContent allows a Notification Service Extension to rewrite the
// notification before display (`mutable-content: 1`).
func (b *DefaultNotificationBuilder) SetMutableContent() *DefaultNotificationBuilder {
	b.mutableContent = true
	return b
}

// Build implements NotificationBuilder. It transfers the accumulated fields
// into an immutable Payload. The builder cannot be used again afterwards.
func (b *DefaultNotificationBuilder) Build(deviceToken string, opts notification.Options) *Payload {
	b.guard.consume()

	aps := payload.APS{
		Alert:    b.alert,
		Badge:    b.badge,
		Sound:    b.sound,
		Category: b.category,
	}
	if b.contentAvailable {
		aps.ContentAvailable = 1
	}
	if b.mutableContent {
		aps.MutableContent = 1
	}

	return &Payload{
		DeviceToken: deviceToken,
		APS:         aps,
		Options:     opts,
		CustomData:  make(map[string]any),
	}
}
