//go:build !use_std_json
// +build !use_std_json

// package payload provides types for constructing the payload of an APNs notification.
package payload

// MarshalJSONFast is a custom JSON marshaler for the WebPushAlert type that is
// optimized for performance. It is used when the "use_std_json" build tag is
// not specified.
//
// All three keys are always emitted; the web push alert has no optional fields.
func (a WebPushAlert) MarshalJSONFast() ([]byte, error) {
	b := make([]byte, 0, 48+len(a.Title)+len(a.Body)+len(a.Action))

	appendQuote := func(val string) {
		b = append(b, '"')
		for i := 0; i < len(val); i++ {
			c := val[i]
			switch {
			case c == '"' || c == '\\':
				b = append(b, '\\', c)
			case c <= 0x1F:
				b = append(b, '\\', 'u', '0', '0')

				b = append(b, hex[c>>4], hex[c&0xF])
			default:
				b = append(b, c)
			}
		}
		b = append(b, '"')
	}

	b = append(b, '{')
	b = append(b, `"title":`...)
	appendQuote(a.Title)
	b = append(b, ',')
	b = append(b, `"body":`...)
	appendQuote(a.Body)
	b = append(b, ',')
	b = append(b, `"action":`...)
	appendQuote(a.Action)
	b = append(b, '}')

	return b, nil
}
