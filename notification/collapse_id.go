// package notification provides types related to the metadata of an APNs notification.
package notification

import "fmt"

// CollapseIDMaxSize is the maximum size in bytes APNs allows for the
// `apns-collapse-id` header value.
const CollapseIDMaxSize = 64

// CollapseID is the value of the `apns-collapse-id` header. Notifications
// carrying the same collapse ID are coalesced by the device into a single
// notification. The zero value means the header is omitted.
type CollapseID string

// NewCollapseID validates and returns a CollapseID.
// APNs rejects collapse IDs longer than 64 bytes, so overly long values are
// refused here instead of at send time.
func NewCollapseID(value string) (CollapseID, error) {
	if len(value) > CollapseIDMaxSize {
		return "", fmt.Errorf("collapse ID too long: %d bytes, maximum allowed is %d", len(value), CollapseIDMaxSize)
	}
	return CollapseID(value), nil
}

// String returns the header value.
func (c CollapseID) String() string {
	return string(c)
}

// Validate checks the collapse ID against the APNs size limit. It exists so
// that IDs assigned by struct literal get the same check as NewCollapseID.
func (c CollapseID) Validate() error {
	_, err := NewCollapseID(string(c))
	return err
}
