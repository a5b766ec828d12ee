// package notification provides types related to the metadata of an APNs notification.
package notification

// PushType corresponds to the `apns-push-type` header field.
type PushType = string

const (
	// Alert push type is used for notifications that display an alert, play a sound, or badge the app's icon.
	Alert PushType = "alert"
	// Background push type is used for notifications that deliver content in the background.
	Background PushType = "background"
	// Complication push type is used for updating a watchOS app’s complication.
	Complication PushType = "complication"
	// Controls push type is used to update the controls of a widget.
	Controls PushType = "controls"
	// Fileprovider push type is used to signal changes to a File Provider extension.
	Fileprovider PushType = "fileprovider"
	// Liveactivity push type is used for updating a Live Activity.
	Liveactivity PushType = "liveactivity"
	// Location push type is used for location-based notifications.
	Location PushType = "location"
	// Mdm push type is for notifications to a device enrolled in a Mobile Device Management (MDM) service.
	Mdm PushType = "mdm"
	// Pushtotalk push type is for Push to Talk notifications.
	Pushtotalk PushType = "pushtotalk"
	// Voip push type is for VoIP notifications.
	Voip PushType = "voip"
	// Widgets push type is for updating a widget's content.
	Widgets PushType = "widgets"
)

// ValidPushType reports whether t is one of the push types APNs accepts in
// the `apns-push-type` header.
func ValidPushType(t PushType) bool {
	switch t {
	case Alert, Background, Complication, Controls, Fileprovider,
		Liveactivity, Location, Mdm, Pushtotalk, Voip, Widgets:
		return true
	}
	return false
}

// Topic returns the `apns-topic` header value for the given app bundle ID and
// push type. Most push types use the bundle ID as-is; some require a
// type-specific suffix.
func Topic(bundleID string, t PushType) string {
	switch t {
	case Complication:
		return bundleID + ".complication"
	case Controls:
		return bundleID + ".push-type.controls"
	case Fileprovider:
		return bundleID + ".pushkit.fileprovider"
	case Liveactivity:
		return bundleID + ".push-type.liveactivity"
	case Location:
		return bundleID + ".location-query"
	case Pushtotalk:
		return bundleID + ".voip-ptt"
	case Voip:
		return bundleID + ".voip"
	case Widgets:
		return bundleID + ".push-type.widgets"
	default:
		return bundleID
	}
}
