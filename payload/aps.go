// package payload provides types for constructing the payload of an APNs notification.
package payload

import (
	"errors"
	"fmt"
)

// APS represents the `aps` dictionary, which is the core of an APNs payload.
// It contains system-defined keys that control how the system delivers and
// displays the notification.
//
// Every field is optional; a field left at its zero value is omitted from the
// serialized JSON entirely (never emitted as null).
//
// For more details, see the Apple Developer Documentation:
// https://developer.apple.com/documentation/usernotifications/sending-notification-requests-to-apns
type APS struct {
	// Alert is the content of the alert message.
	// It can be a simple string, a dictionary object (payload.Alert), or a
	// web push dictionary (payload.WebPushAlert).
	Alert any `json:"alert,omitempty"`

	// Badge is the number to display in a badge on the app's icon.
	// Specify an integer. To remove the badge, set this to 0.
	Badge any `json:"badge,omitempty"`

	// Sound is the name of a sound file in the app's bundle or a dictionary
	// object (payload.Sound) for critical alerts.
	Sound any `json:"sound,omitempty"`

	// ContentAvailable provides a way to wake up your app in the background.
	// Set to 1 to indicate that new content is available.
	ContentAvailable any `json:"content-available,omitempty"`

	// MutableContent allows a Notification Service App Extension to modify the
	// notification's content.
	// Set to 1 to enable this feature.
	MutableContent any `json:"mutable-content,omitempty"`

	// Category is the identifier for a registered category of actionable notifications.
	Category string `json:"category,omitempty"`

	// URLArgs are the positional values substituted into the URL template a
	// Safari web push registration declared. Web push only. A non-nil pointer
	// serializes the `url-args` key even when the list is empty; nil omits it.
	URLArgs *[]string `json:"url-args,omitempty"`
}

// Validate checks the types and values of the fields in the APS dictionary.
// It ensures that the polymorphic fields like Alert, Badge, and Sound hold
// one of their permitted shapes, and that flag fields carry the value 1.
func (aps *APS) Validate() error {
	isEmpty :=
		aps.Alert == nil &&
			aps.Badge == nil &&
			aps.Sound == nil &&
			aps.ContentAvailable == nil &&
			aps.MutableContent == nil &&
			aps.Category == "" &&
			aps.URLArgs == nil

	if isEmpty {
		return errors.New("aps dictionary must not be empty")
	}

	// Validate Alert
	if aps.Alert != nil {
		switch aps.Alert.(type) {
		case string, Alert, *Alert, WebPushAlert, *WebPushAlert:
			// valid types
		default:
			return fmt.Errorf("invalid type for aps.Alert: must be string, Alert, or WebPushAlert")
		}
	}

	// Validate Badge
	if aps.Badge != nil {
		v, ok := aps.Badge.(int)
		if !ok {
			return fmt.Errorf("invalid type for aps.Badge: must be an integer")
		}
		if v < 0 {
			return fmt.Errorf("invalid value for aps.Badge: must not be negative")
		}
	}

	// Validate Sound
	if aps.Sound != nil {
		switch s := aps.Sound.(type) {
		case string:
			// valid type
		case Sound:
			if err := s.Validate(); err != nil {
				return err
			}
		case *Sound:
			if err := s.Validate(); err != nil {
				return err
			}
		default:
			return fmt.Errorf("invalid type for aps.Sound: must be string, Sound, or *Sound")
		}
	}

	// Validate ContentAvailable
	if aps.ContentAvailable != nil {
		v, ok := aps.ContentAvailable.(int)
		if !ok || v != 1 {
			return fmt.Errorf("invalid value for aps.ContentAvailable: must be the integer 1")
		}
	}

	// Validate MutableContent
	if aps.MutableContent != nil {
		v, ok := aps.MutableContent.(int)
		if !ok || v != 1 {
			return fmt.Errorf("invalid value for aps.MutableContent: must be the integer 1")
		}
	}

	return nil
}
