// package apns provides a client for sending notifications to the Apple Push Notification service.
package apns

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"

	"github.com/google/uuid"
	"github.com/pushlayer/apns/notification"
	"github.com/pushlayer/apns/payload"
)

// Payload represents one notification request: the JSON body sent to APNs
// plus the delivery metadata that rides out-of-band as request headers.
//
// The JSON body consists of the standard `aps` dictionary and any custom
// data. DeviceToken and Options are never part of the body; the Client
// formats them into the request path and the apns-* headers.
//
// Payloads are produced by a NotificationBuilder and are immutable value
// objects apart from SetCustomData.
//
// For more details, see the Apple Developer Documentation:
// https://developer.apple.com/documentation/usernotifications/generating-a-remote-notification
type Payload struct {
	// DeviceToken is the hex-encoded token of the target device. It is
	// treated as an opaque identifier; its format is not validated here.
	DeviceToken string `json:"-"`

	// APS is the Apple-defined dictionary that contains notification-specific data.
	APS payload.APS `json:"aps"`

	// Options is the delivery metadata (apns-id, priority, topic, ...).
	Options notification.Options `json:"-"`

	// CustomData is a map for any app-specific custom data.
	// The keys and values in this map will be merged at the root level of the
	// JSON payload, alongside the `aps` dictionary.
	CustomData map[string]any `json:",inline"`
}

// SetCustomData adds an app-specific key/value pair at the root level of the
// JSON body, beside the `aps` dictionary. The reserved "aps" key is rejected
// so custom data can never shadow the notification content.
func (p *Payload) SetCustomData(key string, value any) error {
	if key == "aps" {
		return errors.New(`custom data key "aps" is reserved`)
	}
	if p.CustomData == nil {
		p.CustomData = make(map[string]any)
	}
	p.CustomData[key] = value
	return nil
}

// MarshalJSON implements the `json.Marshaler` interface.
// It customizes the JSON output by merging the `APS` dictionary and the `CustomData`
// map at the root level of the payload. This is necessary because the `json:",inline"`
// struct tag does not work as expected with an embedded struct.
func (p *Payload) MarshalJSON() ([]byte, error) {
	if len(p.CustomData) == 0 {
		// If there is no custom data, just marshal the APS dictionary.
		return json.Marshal(map[string]any{"aps": p.APS})
	}

	// If there is custom data, merge it with the APS dictionary.
	mp := maps.Clone(p.CustomData)
	mp["aps"] = p.APS
	return json.Marshal(mp)
}

// ToJSONString renders the JSON body using the fast encoder and returns it as
// a string. It is a convenience for logging and tests; the Client marshals
// the body itself.
func (p *Payload) ToJSONString() (string, error) {
	b, err := p.MarshalJSONFast()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Validate checks that the payload is sendable: the device token is present,
// the delivery metadata is well-formed, and the aps dictionary holds valid
// shapes. The Client calls this before every push.
func (p *Payload) Validate() error {
	if p.DeviceToken == "" {
		return errors.New("DeviceToken is required")
	}
	if p.Options.PushType == "" {
		return errors.New("apns-push-type is required")
	}
	if !notification.ValidPushType(p.Options.PushType) {
		return fmt.Errorf("invalid apns-push-type: %s", p.Options.PushType)
	}
	if p.Options.APNsID != "" {
		if _, err := uuid.Parse(p.Options.APNsID); err != nil {
			return fmt.Errorf("invalid apns-id: %w", err)
		}
	}
	if err := p.Options.CollapseID.Validate(); err != nil {
		return err
	}
	return p.APS.Validate()
}

// Clone returns a copy of the payload with its own CustomData map.
func (p *Payload) Clone() *Payload {
	clone := *p
	clone.CustomData = maps.Clone(p.CustomData)
	return &clone
}
