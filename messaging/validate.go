// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package messaging

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// maxPushKeyBytes is the server's limit on Pusher.PushKey. The limit is
// in bytes, which the max tag (counting runes) cannot express.
const maxPushKeyBytes = 512

// validate is a package-level singleton; building a validator parses
// and caches struct tags.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterStructValidation(validatePusher, Pusher{})
	v.RegisterStructValidation(validateDeviceKeys, DeviceKeys{})
	return v
}

// Validate checks a request or response record against the constraints
// the homeserver enforces. The returned error wraps
// validator.ValidationErrors when a constraint fails.
func Validate(record any) error {
	if err := validate.Struct(record); err != nil {
		return fmt.Errorf("messaging: invalid %T: %w", record, err)
	}
	return nil
}

func validatePusher(level validator.StructLevel) {
	pusher := level.Current().Interface().(Pusher)
	if len(pusher.PushKey) > maxPushKeyBytes {
		level.ReportError(pusher.PushKey, "pushkey", "PushKey", "max_bytes", fmt.Sprint(maxPushKeyBytes))
	}
	if pusher.Kind != nil && *pusher.Kind == PusherKindHTTP && pusher.Data.URL == "" {
		level.ReportError(pusher.Data.URL, "url", "URL", "required_for_http", "")
	}
}

func validateDeviceKeys(level validator.StructLevel) {
	keys := level.Current().Interface().(DeviceKeys)
	if keys.UserID.IsZero() {
		level.ReportError(keys.UserID, "user_id", "UserID", "required", "")
	}
	if keys.DeviceID.IsZero() {
		level.ReportError(keys.DeviceID, "device_id", "DeviceID", "required", "")
	}
}
