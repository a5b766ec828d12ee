package payload_test

import (
	"strings"
	"testing"

	"github.com/pushlayer/apns/payload"
)

func TestAPSValidate(t *testing.T) {
	tests := map[string]struct {
		aps           payload.APS
		wantErrString string // If non-empty, an error is expected, and this string should be in the error message
	}{

		"valid_minimal_alert": {
			aps: payload.APS{
				Alert: "Hello",
			},
			wantErrString: "",
		},
		"valid_alert_object": {
			aps: payload.APS{
				Alert: &payload.Alert{Title: "Title", Body: "Body"},
			},
			wantErrString: "",
		},
		"valid_web_push": {
			aps: payload.APS{
				Alert:   payload.WebPushAlert{Title: "Hello", Body: "world", Action: "View"},
				URLArgs: &[]string{"arg1"},
			},
			wantErrString: "",
		},
		"valid_full_aps": {
			aps: payload.APS{
				Alert:            &payload.Alert{Title: "Title", Body: "Body"},
				Badge:            1,
				Sound:            &payload.Sound{Name: "default", Critical: 1, Volume: 1.0},
				ContentAvailable: 1,
				MutableContent:   1,
				Category:         "category",
			},
			wantErrString: "",
		},
		"valid_badge_only_zero": {
			aps: payload.APS{
				Badge: 0,
			},
			wantErrString: "",
		},
		"invalid_empty_aps": {
			aps:           payload.APS{},
			wantErrString: "aps dictionary must not be empty",
		},

		"invalid_alert_type": {
			aps: payload.APS{
				Alert: 123, // Should be string, Alert, or WebPushAlert
			},
			wantErrString: "invalid type for aps.Alert",
		},
		"invalid_badge_type_string": {
			aps: payload.APS{
				Badge: "invalid", // Should be int
			},
			wantErrString: "invalid type for aps.Badge",
		},
		"invalid_badge_type_float": {
			aps: payload.APS{
				Badge: 1.5, // Should be int
			},
			wantErrString: "invalid type for aps.Badge",
		},
		"invalid_badge_negative": {
			aps: payload.APS{
				Badge: -1,
			},
			wantErrString: "invalid value for aps.Badge",
		},
		"invalid_sound_type": {
			aps: payload.APS{
				Alert: "Hello",
				Sound: 5, // Should be string, Sound, or *Sound
			},
			wantErrString: "invalid type for aps.Sound",
		},
		"invalid_sound_critical_flag": {
			aps: payload.APS{
				Sound: payload.Sound{Name: "default", Critical: 2},
			},
			wantErrString: "invalid critical flag: 2",
		},
		"invalid_sound_volume": {
			aps: payload.APS{
				Sound: &payload.Sound{Name: "default", Volume: 1.5},
			},
			wantErrString: "ratio out of range",
		},
		"invalid_content_available": {
			aps: payload.APS{
				ContentAvailable: 2, // Must be the integer 1
			},
			wantErrString: "invalid value for aps.ContentAvailable",
		},
		"invalid_content_available_bool": {
			aps: payload.APS{
				ContentAvailable: true, // Must be the integer 1
			},
			wantErrString: "invalid value for aps.ContentAvailable",
		},
		"invalid_mutable_content": {
			aps: payload.APS{
				MutableContent: 0, // Must be the integer 1
			},
			wantErrString: "invalid value for aps.MutableContent",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.aps.Validate()
			if err != nil {
				if tt.wantErrString == "" {
					t.Errorf("APS.Validate() returned unexpected error: %v", err)
				} else if !strings.Contains(err.Error(), tt.wantErrString) {
					t.Errorf("APS.Validate() error = %v, wantErrString '%s'", err, tt.wantErrString)
				}
			} else {
				if tt.wantErrString != "" {
					t.Errorf("APS.Validate() expected an error containing %q, but got none", tt.wantErrString)
				}
			}
		})
	}
}
