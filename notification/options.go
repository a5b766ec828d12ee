// package notification provides types related to the metadata of an APNs notification.
package notification

import "github.com/pushlayer/apns/notification/priority"

// Options carries the delivery metadata of a notification: the values of the
// apns-* request headers that ride alongside the JSON payload body. Options
// are orthogonal to the payload content and are supplied fresh on every
// builder Build call.
//
// The zero value is valid and means "no headers beyond apns-push-type and
// apns-topic"; APNs then applies its protocol defaults.
//
// For more details, see the Apple Developer Documentation:
// https://developer.apple.com/documentation/usernotifications/sending-notification-requests-to-apns
type Options struct {
	// APNsID is the canonical UUID of the notification (`apns-id`).
	// If empty, APNs generates one.
	APNsID string

	// Expiration is the `apns-expiration` header: the UNIX timestamp after
	// which APNs stops trying to deliver the notification. nil omits the
	// header; ExpirationOnce requests a single delivery attempt.
	Expiration *EpochTime

	// Priority is the `apns-priority` header. priority.None omits the header,
	// letting APNs use its default.
	Priority priority.Priority

	// Topic is the `apns-topic` header, normally the app's bundle ID.
	// The Topic function computes the suffixed form required by some push
	// types.
	Topic string

	// CollapseID is the `apns-collapse-id` header. The zero value omits it.
	CollapseID CollapseID

	// PushType is the `apns-push-type` header. Required by APNs on all
	// requests since iOS 13.
	PushType PushType
}
