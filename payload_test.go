package apns_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/pushlayer/apns"
	"github.com/pushlayer/apns/notification"
	"github.com/pushlayer/apns/payload"
)

// JSONComparer transforms JSON bytes into a map for semantic comparison.
var JSONComparer = cmp.Transformer("JSON", func(in []byte) map[string]interface{} {
	var m map[string]interface{}
	if err := json.Unmarshal(in, &m); err != nil {
		// Print JSON unmarshal error and return nil
		// This is treated as difference in comparison
		fmt.Printf("JSON Unmarshal Error: %v: json=%s\n", err, in)
		return nil
	}
	return m
})

func TestPayloadMarshalJSON(t *testing.T) {
	tests := map[string]struct {
		input apns.Payload
		want  string
	}{
		"empty": {
			input: apns.Payload{},
			want:  `{"aps":{}}`,
		},

		"empty APS struct": {
			input: apns.Payload{
				APS:        payload.APS{},
				CustomData: map[string]any{},
			},
			want: `{"aps":{}}`,
		},

		"APS with alert as string": {
			input: apns.Payload{
				APS: payload.APS{
					Alert: "simple alert",
				},
				CustomData: nil,
			},
			want: `{"aps":{"alert":"simple alert"}}`,
		},

		"APS with alert object": {
			input: apns.Payload{
				APS: payload.APS{
					Alert: payload.Alert{Title: "Hi"},
				},
			},
			want: `{"aps":{"alert":{"title":"Hi"}}}`,
		},

		"APS with web push alert": {
			input: apns.Payload{
				APS: payload.APS{
					Alert:   payload.WebPushAlert{Title: "Hello", Body: "world", Action: "View"},
					URLArgs: &[]string{"arg1"},
				},
			},
			want: `{"aps":{"alert":{"title":"Hello","body":"world","action":"View"},"url-args":["arg1"]}}`,
		},

		"APS with Sound string": {
			input: apns.Payload{
				APS: payload.APS{
					Sound: "default",
				},
			},
			want: `{"aps":{"sound":"default"}}`,
		},

		"APS with ContentAvailable and MutableContent": {
			input: apns.Payload{
				APS: payload.APS{
					ContentAvailable: 1,
					MutableContent:   1,
				},
			},
			want: `{"aps":{"content-available":1,"mutable-content":1}}`,
		},

		"custom data beside aps": {
			input: apns.Payload{
				APS: payload.APS{
					Alert: "hi",
				},
				CustomData: map[string]any{
					"user_id": 42,
					"nested":  map[string]any{"foo": "bar"},
				},
			},
			want: `{
				"aps":{"alert":"hi"},
				"user_id":42,
				"nested":{"foo":"bar"}
			}`,
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			gotBytes, err := json.Marshal(&tt.input)
			if err != nil {
				t.Fatalf("MarshalJSON error: %v", err)
			}

			var got any
			if err := json.Unmarshal(gotBytes, &got); err != nil {
				t.Fatalf("output JSON invalid: %v\nraw: %s", err, string(gotBytes))
			}

			var want any
			if err := json.Unmarshal([]byte(tt.want), &want); err != nil {
				t.Fatalf("want JSON invalid: %v", err)
			}

			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("JSON mismatch (-want +got):\n%s\nraw: %s", diff, string(gotBytes))
			}
		})
	}
}

// A payload's JSON should survive a decode/encode cycle structurally intact:
// same key presence, same nesting, no nulls appearing.
func TestPayloadJSONRoundTrip(t *testing.T) {
	b := apns.NewDefaultNotificationBuilder(payload.Alert{Title: "Game Request", Body: "Bob wants to play"})
	p := b.SetBadge(3).
		SetCriticalSound("alarm.aiff", 0.7).
		SetCategory("GAME_INVITE").
		SetMutableContent().
		Build("device-token", notification.Options{PushType: notification.Alert})
	if err := p.SetCustomData("game_id", "g-123"); err != nil {
		t.Fatalf("SetCustomData failed: %v", err)
	}

	first, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("first marshal failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(first, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	second, err := json.Marshal(decoded)
	if err != nil {
		t.Fatalf("second marshal failed: %v", err)
	}

	if diff := cmp.Diff(first, second, JSONComparer); diff != "" {
		t.Errorf("round trip changed the JSON structure (-first +second):\n%s", diff)
	}
	if strings.Contains(string(first), "null") {
		t.Errorf("serialized payload contains null: %s", first)
	}
}

func TestPayloadSetCustomData(t *testing.T) {
	p := apns.NewDefaultNotificationBuilder("hi").Build("token", notification.Options{PushType: notification.Alert})

	if err := p.SetCustomData("aps", "nope"); err == nil {
		t.Error(`SetCustomData("aps", ...) must be rejected`)
	}
	if err := p.SetCustomData("conversation_id", "c-42"); err != nil {
		t.Fatalf("SetCustomData failed: %v", err)
	}
	// last write wins
	if err := p.SetCustomData("conversation_id", "c-43"); err != nil {
		t.Fatalf("SetCustomData failed: %v", err)
	}

	got, err := p.ToJSONString()
	if err != nil {
		t.Fatalf("ToJSONString failed: %v", err)
	}
	want := `{"aps":{"alert":"hi"},"conversation_id":"c-43"}`
	if diff := cmp.Diff([]byte(want), []byte(got), JSONComparer); diff != "" {
		t.Errorf("JSON mismatch (-want +got):\n%s", diff)
	}
}

func TestPayloadValidate(t *testing.T) {
	validAPS := payload.APS{Alert: "test"}

	testCases := map[string]struct {
		payload     *apns.Payload
		expectErr   bool
		errContains string
	}{
		"Valid payload": {
			payload: &apns.Payload{
				DeviceToken: "some-device-token",
				APS:         validAPS,
				Options:     notification.Options{PushType: notification.Alert, Topic: "com.example.app"},
			},
			expectErr: false,
		},
		"Missing DeviceToken": {
			payload: &apns.Payload{
				APS:     validAPS,
				Options: notification.Options{PushType: notification.Alert},
			},
			expectErr:   true,
			errContains: "DeviceToken is required",
		},
		"Missing PushType": {
			payload: &apns.Payload{
				DeviceToken: "some-device-token",
				APS:         validAPS,
			},
			expectErr:   true,
			errContains: "apns-push-type is required",
		},
		"Invalid PushType": {
			payload: &apns.Payload{
				DeviceToken: "some-device-token",
				APS:         validAPS,
				Options:     notification.Options{PushType: "invalid-push-type"},
			},
			expectErr:   true,
			errContains: "invalid apns-push-type",
		},
		"Invalid APNsID": {
			payload: &apns.Payload{
				DeviceToken: "some-device-token",
				APS:         validAPS,
				Options:     notification.Options{PushType: notification.Alert, APNsID: "invalid-uuid"},
			},
			expectErr:   true,
			errContains: "invalid apns-id",
		},
		"Valid APNsID": {
			payload: &apns.Payload{
				DeviceToken: "some-device-token",
				APS:         validAPS,
				Options:     notification.Options{PushType: notification.Alert, APNsID: uuid.NewString()},
			},
			expectErr: false,
		},
		"Collapse ID over limit": {
			payload: &apns.Payload{
				DeviceToken: "some-device-token",
				APS:         validAPS,
				Options: notification.Options{
					PushType:   notification.Alert,
					CollapseID: notification.CollapseID(strings.Repeat("c", 65)),
				},
			},
			expectErr:   true,
			errContains: "collapse ID too long",
		},
		"Empty APS": {
			payload: &apns.Payload{
				DeviceToken: "some-device-token",
				Options:     notification.Options{PushType: notification.Alert},
			},
			expectErr:   true,
			errContains: "aps dictionary must not be empty",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			err := tc.payload.Validate()
			if tc.expectErr {
				if err == nil {
					t.Fatalf("expected an error containing %q, got nil", tc.errContains)
				}
				if !strings.Contains(err.Error(), tc.errContains) {
					t.Errorf("expected error containing %q, got %v", tc.errContains, err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
