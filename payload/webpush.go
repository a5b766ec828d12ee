// package payload provides types for constructing the payload of an APNs notification.
package payload

// WebPushAlert represents the `alert` dictionary of a Safari web push
// notification. Unlike Alert, all three fields are mandatory and always
// serialized: the browser needs the title, the body, and the label of the
// action button that opens the registered URL.
type WebPushAlert struct {
	// Title is the title shown in the notification banner.
	Title string `json:"title"`

	// Body is the body text of the notification.
	Body string `json:"body"`

	// Action is the label of the notification's action button.
	Action string `json:"action"`
}
