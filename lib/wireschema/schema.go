// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wireschema

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/invopop/jsonschema"

	"github.com/bureau-foundation/matrixwire/lib/push"
	"github.com/bureau-foundation/matrixwire/lib/ref"
)

// ErrUnknownSchema is returned by Generate for a name not in Names.
var ErrUnknownSchema = errors.New("wireschema: unknown schema")

// roots maps schema names to a value of the type they describe.
var roots = map[string]any{
	"ruleset":       push.Ruleset{},
	"rule":          push.Rule{},
	"action":        push.Action{},
	"condition":     push.Condition{},
	"key_id":        ref.KeyID{},
	"key_algorithm": ref.KeyAlgorithm(0),
}

// Names returns the schema names accepted by Generate, sorted.
func Names() []string {
	names := make([]string, 0, len(roots))
	for name := range roots {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Generate returns the indented JSON Schema document for name.
func Generate(name string) ([]byte, error) {
	root, ok := roots[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownSchema, name, strings.Join(Names(), ", "))
	}
	reflector := jsonschema.Reflector{
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
		// Decoders ignore unknown fields.
		AllowAdditionalProperties: true,
		Mapper:                    mapType,
	}
	schema := reflector.Reflect(root)
	schema.Title = name

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("wireschema: marshaling %s schema: %w", name, err)
	}
	return data, nil
}

var (
	actionType       = reflect.TypeFor[push.Action]()
	conditionType    = reflect.TypeFor[push.Condition]()
	keyIDType        = reflect.TypeFor[ref.KeyID]()
	keyAlgorithmType = reflect.TypeFor[ref.KeyAlgorithm]()
)

// mapType supplies schemas for types with custom JSON encodings. It
// returns nil for everything else, leaving those to reflection.
func mapType(t reflect.Type) *jsonschema.Schema {
	switch t {
	case actionType:
		return actionSchema()
	case conditionType:
		return conditionSchema()
	case keyIDType:
		algorithms := make([]string, 0, 3)
		for _, algorithm := range ref.KeyAlgorithms() {
			algorithms = append(algorithms, algorithm.String())
		}
		return &jsonschema.Schema{
			Type:        "string",
			Pattern:     "^(" + strings.Join(algorithms, "|") + "):[^:]*$",
			Description: "Key identifier: <algorithm>:<device_id>.",
		}
	case keyAlgorithmType:
		return &jsonschema.Schema{Type: "string", Enum: keyAlgorithmEnum()}
	}
	return nil
}

func keyAlgorithmEnum() []any {
	var enum []any
	for _, algorithm := range ref.KeyAlgorithms() {
		enum = append(enum, algorithm.String())
	}
	return enum
}

func actionSchema() *jsonschema.Schema {
	tweak := jsonschema.NewProperties()
	tweak.Set("set_tweak", &jsonschema.Schema{Type: "string"})
	tweak.Set("value", &jsonschema.Schema{Description: "Any JSON value; omitted when unset."})
	return &jsonschema.Schema{
		Description: "Push rule action.",
		OneOf: []*jsonschema.Schema{
			{
				Type: "string",
				Enum: []any{string(push.NotifyAction), string(push.DontNotifyAction), string(push.CoalesceAction)},
			},
			{
				Type:       "object",
				Properties: tweak,
				Required:   []string{"set_tweak"},
			},
		},
	}
}

func conditionSchema() *jsonschema.Schema {
	variant := func(kind push.ConditionKind, fields ...string) *jsonschema.Schema {
		properties := jsonschema.NewProperties()
		properties.Set("kind", &jsonschema.Schema{Type: "string", Const: string(kind)})
		for _, field := range fields {
			properties.Set(field, &jsonschema.Schema{Type: "string"})
		}
		return &jsonschema.Schema{
			Type:       "object",
			Properties: properties,
			Required:   append([]string{"kind"}, fields...),
		}
	}
	return &jsonschema.Schema{
		Description: "Push rule condition, discriminated by kind.",
		OneOf: []*jsonschema.Schema{
			variant(push.EventMatchCondition, "key", "pattern"),
			variant(push.ContainsDisplayNameCondition),
			variant(push.RoomMemberCountCondition, "is"),
			variant(push.SenderNotificationPermissionCondition, "key"),
		},
	}
}
