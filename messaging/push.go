// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package messaging

import (
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/bureau-foundation/matrixwire/lib/push"
	"github.com/bureau-foundation/matrixwire/lib/ref"
)

// PusherKind selects how a pusher delivers notifications.
type PusherKind string

const (
	// PusherKindHTTP sends notifications to a push gateway over HTTP.
	PusherKindHTTP PusherKind = "http"
	// PusherKindEmail emails the user about unread notifications.
	PusherKindEmail PusherKind = "email"
)

// PushFormat is a reduced payload format for push gateways.
type PushFormat string

// PushFormatEventIDOnly asks the homeserver to send only the event ID
// and room ID, leaving the client to fetch the event itself.
const PushFormatEventIDOnly PushFormat = "event_id_only"

// Pusher is a device registered to receive notifications.
//
// Kind is a pointer because a null kind in a set-pusher request deletes
// the pusher. It always encodes, as null when nil.
type Pusher struct {
	// PushKey identifies the pusher within its app; at most 512 bytes.
	PushKey string `json:"pushkey" validate:"required"`

	Kind *PusherKind `json:"kind" validate:"omitempty,oneof=http email"`

	// AppID is a reverse-DNS application identifier; at most 64
	// characters.
	AppID string `json:"app_id" validate:"required,max=64"`

	AppDisplayName    string `json:"app_display_name"`
	DeviceDisplayName string `json:"device_display_name"`

	// ProfileTag selects the device-scope rule set this pusher uses.
	ProfileTag string     `json:"profile_tag,omitempty"`
	Lang       string     `json:"lang"`
	Data       PusherData `json:"data"`
}

// NewPusher returns a pusher of the given kind.
func NewPusher(kind PusherKind, pushKey, appID string) Pusher {
	return Pusher{PushKey: pushKey, Kind: &kind, AppID: appID}
}

// PusherData configures the pusher implementation. URL is required for
// http pushers.
type PusherData struct {
	URL    string     `json:"url,omitempty" validate:"omitempty,url"`
	Format PushFormat `json:"format,omitempty" validate:"omitempty,oneof=event_id_only"`
}

// PushersResponse is the result of GET /pushers.
type PushersResponse struct {
	Pushers []Pusher `json:"pushers" validate:"dive"`
}

// NotificationsRequest holds the query parameters of GET /notifications.
type NotificationsRequest struct {
	// From is the pagination token from a previous response.
	From string
	// Limit caps the number of notifications returned; zero leaves it
	// to the server.
	Limit int `validate:"omitempty,min=1"`
	// Only filters the results; "highlight" returns only highlighted
	// notifications.
	Only string
}

// Query renders the request as URL query parameters, omitting unset
// fields.
func (r NotificationsRequest) Query() url.Values {
	query := url.Values{}
	if r.From != "" {
		query.Set("from", r.From)
	}
	if r.Limit != 0 {
		query.Set("limit", strconv.Itoa(r.Limit))
	}
	if r.Only != "" {
		query.Set("only", r.Only)
	}
	return query
}

// NotificationsResponse is one page of notifications.
type NotificationsResponse struct {
	// NextToken is absent on the last page.
	NextToken     string         `json:"next_token,omitempty"`
	Notifications []Notification `json:"notifications"`
}

// Notification is an event the user was, or would have been, notified
// about.
type Notification struct {
	// Actions are the actions of the rule that matched the event.
	Actions []push.Action `json:"actions"`

	// Event is the full event, kept undecoded.
	Event json.RawMessage `json:"event"`

	ProfileTag string     `json:"profile_tag,omitempty"`
	Read       bool       `json:"read"`
	RoomID     ref.RoomID `json:"room_id"`

	// TS is when the notification was sent, in milliseconds since the
	// Unix epoch.
	TS uint64 `json:"ts"`
}

// Highlighted reports whether the notification's actions set the
// highlight tweak. A highlight tweak without a value counts as set.
func (n Notification) Highlighted() bool {
	for _, action := range n.Actions {
		if action.Kind != push.SetTweakAction || action.Tweak != push.HighlightTweak {
			continue
		}
		if action.Value == nil {
			return true
		}
		highlight, ok := action.Value.(bool)
		return ok && highlight
	}
	return false
}

// PushRulesResponse is the result of GET /pushrules/: the user's
// global rules.
type PushRulesResponse struct {
	Global push.Ruleset `json:"global"`
}

// DevicePushRulesResponse is the result of GET /pushrules/device/{profileTag}/:
// rules grouped by kind. Unlike [push.Ruleset], categories that are
// absent stay absent.
type DevicePushRulesResponse map[push.RuleKind][]push.Rule
