// package apns provides a client for sending notifications to the Apple Push Notification service.
package apns

import "github.com/pushlayer/apns/notification"

// NotificationBuilder is the capability shared by all payload builders.
// A concrete builder enforces its own required content through its
// constructor; Build itself cannot fail.
//
// Build consumes the builder: each builder instance produces exactly one
// Payload, and calling Build a second time panics. Builders are not safe for
// concurrent use; give each goroutine its own instance.
type NotificationBuilder interface {
	// Build finalizes the accumulated content into a Payload addressed to
	// deviceToken, with opts attached as the delivery metadata.
	Build(deviceToken string, opts notification.Options) *Payload
}

// consumeGuard is the runtime substitute for a by-value consuming build:
// it trips on the second Build call.
type consumeGuard struct {
	built bool
}

func (g *consumeGuard) consume() {
	if g.built {
		panic("apns: builder already consumed by Build")
	}
	g.built = true
}
