// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package push

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/bureau-foundation/matrixwire/lib/codec"
	"github.com/bureau-foundation/matrixwire/lib/testutil"
)

func TestParseAction(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  Action
	}{
		{"notify", `"notify"`, Action{Kind: NotifyAction}},
		{"dont_notify", `"dont_notify"`, Action{Kind: DontNotifyAction}},
		{"coalesce", `"coalesce"`, Action{Kind: CoalesceAction}},
		{"sound", `{"set_tweak":"sound","value":"default"}`, NewSetTweak(SoundTweak, "default")},
		{"highlight without value", `{"set_tweak":"highlight"}`, NewSetTweak(HighlightTweak, nil)},
		{"highlight false", `{"set_tweak":"highlight","value":false}`, NewSetTweak(HighlightTweak, false)},
		{"value before discriminator", `{"value":"ping","set_tweak":"sound"}`, NewSetTweak(SoundTweak, "ping")},
		{"null value is absent", `{"set_tweak":"sound","value":null}`, NewSetTweak(SoundTweak, nil)},
		{"extra fields ignored", `{"set_tweak":"sound","value":"default","x":1}`, NewSetTweak(SoundTweak, "default")},
		{"custom tweak", `{"set_tweak":"com.example.led","value":{"color":"red"}}`,
			NewSetTweak("com.example.led", map[string]any{"color": "red"})},
		{"integer value", `{"set_tweak":"com.example.volume","value":7}`, NewSetTweak("com.example.volume", 7)},
		{"fractional value", `{"set_tweak":"com.example.volume","value":0.5}`, NewSetTweak("com.example.volume", 0.5)},
		{"nested numbers", `{"set_tweak":"com.example.led","value":{"pulse":[1,2.5]}}`,
			NewSetTweak("com.example.led", map[string]any{"pulse": []any{1, 2.5}})},
		{"empty tweak name", `{"set_tweak":""}`, NewSetTweak("", nil)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseAction([]byte(test.input))
			if err != nil {
				t.Fatalf("ParseAction(%s): %v", test.input, err)
			}
			if !reflect.DeepEqual(got, test.want) {
				t.Errorf("ParseAction(%s) = %#v, want %#v", test.input, got, test.want)
			}
		})
	}
}

func TestParseActionErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		wantErr error
		wantMsg string
	}{
		{"unknown string", `"notfy"`, ErrInvalidSimpleAction, `"notfy"`},
		{"tweak name as string", `"set_tweak"`, ErrInvalidSimpleAction, `"set_tweak"`},
		{"empty string", `""`, ErrInvalidSimpleAction, `""`},
		{"object without discriminator", `{"value":1}`, ErrMissingTweakDiscriminator, ""},
		{"empty object", `{}`, ErrMissingTweakDiscriminator, ""},
		{"numeric tweak name", `{"set_tweak":3}`, ErrInvalidTweakKind, "number"},
		{"null tweak name", `{"set_tweak":null}`, ErrInvalidTweakKind, "null"},
		{"number", `42`, ErrInvalidActionShape, "number"},
		{"boolean", `true`, ErrInvalidActionShape, "boolean"},
		{"array", `["notify"]`, ErrInvalidActionShape, "array"},
		{"null", `null`, ErrInvalidActionShape, "null"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseAction([]byte(test.input))
			if !errors.Is(err, test.wantErr) {
				t.Fatalf("ParseAction(%s) error = %v, want %v", test.input, err, test.wantErr)
			}
			if !strings.Contains(err.Error(), test.wantMsg) {
				t.Errorf("error %q does not mention %q", err, test.wantMsg)
			}
		})
	}
}

func TestParseActionMalformedJSON(t *testing.T) {
	t.Parallel()
	if _, err := ParseAction([]byte(`{"set_tweak":`)); err == nil {
		t.Fatal("expected error for truncated input")
	}
}

func TestActionMarshalJSON(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		action Action
		want   string
	}{
		{"notify", Action{Kind: NotifyAction}, `"notify"`},
		{"dont_notify", Action{Kind: DontNotifyAction}, `"dont_notify"`},
		{"coalesce", Action{Kind: CoalesceAction}, `"coalesce"`},
		{"sound", NewSetTweak(SoundTweak, "default"), `{"set_tweak":"sound","value":"default"}`},
		{"no value", NewSetTweak(HighlightTweak, nil), `{"set_tweak":"highlight"}`},
		{"false value kept", NewSetTweak(HighlightTweak, false), `{"set_tweak":"highlight","value":false}`},
		{"empty tweak name", NewSetTweak("", true), `{"set_tweak":"","value":true}`},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			data, err := json.Marshal(test.action)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			// Byte comparison: the value field must be omitted, not null.
			if string(data) != test.want {
				t.Errorf("Marshal = %s, want %s", data, test.want)
			}
		})
	}
}

func TestActionMarshalRejectsInvalid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		action Action
	}{
		{"zero value", Action{}},
		{"unknown kind", Action{Kind: "beep"}},
		{"simple kind with tweak", Action{Kind: NotifyAction, Tweak: SoundTweak}},
		{"simple kind with value", Action{Kind: CoalesceAction, Value: "x"}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			if _, err := json.Marshal(test.action); err == nil {
				t.Error("json.Marshal succeeded, want error")
			}
			if _, err := codec.Marshal(test.action); err == nil {
				t.Error("codec.Marshal succeeded, want error")
			}
		})
	}
}

func TestActionJSONRoundTrip(t *testing.T) {
	t.Parallel()
	inputs := []string{
		`"notify"`,
		`"dont_notify"`,
		`"coalesce"`,
		`{"set_tweak":"sound","value":"default"}`,
		`{"set_tweak":"highlight"}`,
		`{"set_tweak":"highlight","value":false}`,
		`{"set_tweak":"com.example.led","value":{"color":"red","pulse":[1,2]}}`,
	}
	for _, input := range inputs {
		action, err := ParseAction([]byte(input))
		if err != nil {
			t.Fatalf("ParseAction(%s): %v", input, err)
		}
		data, err := json.Marshal(action)
		if err != nil {
			t.Fatalf("Marshal(%s): %v", input, err)
		}
		testutil.RequireJSONEqual(t, data, input)
	}
}

func TestActionCBORRoundTrip(t *testing.T) {
	t.Parallel()
	actions := []Action{
		{Kind: NotifyAction},
		{Kind: DontNotifyAction},
		{Kind: CoalesceAction},
		NewSetTweak(SoundTweak, "default"),
		NewSetTweak(HighlightTweak, nil),
		NewSetTweak(HighlightTweak, false),
		NewSetTweak("com.example.led", map[string]any{"color": "red"}),
		NewSetTweak("", 2),
	}
	for _, action := range actions {
		data, err := codec.Marshal(action)
		if err != nil {
			t.Fatalf("codec.Marshal(%#v): %v", action, err)
		}
		var decoded Action
		if err := codec.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("codec.Unmarshal(%#v): %v", action, err)
		}
		if !reflect.DeepEqual(decoded, action) {
			t.Errorf("CBOR round trip: got %#v, want %#v", decoded, action)
		}
	}
}

func TestActionNumericValues(t *testing.T) {
	t.Parallel()

	// Integers beyond 2^53 must not pass through float64.
	for _, input := range []string{
		`{"set_tweak":"custom","value":9007199254740993}`,
		`{"set_tweak":"custom","value":-9223372036854775808}`,
		`{"set_tweak":"custom","value":18446744073709551615}`,
		`{"set_tweak":"custom","value":[9007199254740993,{"n":9007199254740995}]}`,
	} {
		action, err := ParseAction([]byte(input))
		if err != nil {
			t.Fatalf("ParseAction(%s): %v", input, err)
		}
		data, err := json.Marshal(action)
		if err != nil {
			t.Fatalf("Marshal(%s): %v", input, err)
		}
		if string(data) != input {
			t.Errorf("JSON round trip of %s = %s", input, data)
		}

		encoded, err := codec.Marshal(action)
		if err != nil {
			t.Fatalf("codec.Marshal(%s): %v", input, err)
		}
		var decoded Action
		if err := codec.Unmarshal(encoded, &decoded); err != nil {
			t.Fatalf("codec.Unmarshal(%s): %v", input, err)
		}
		if !reflect.DeepEqual(decoded, action) {
			t.Errorf("CBOR round trip of %s: got %#v, want %#v", input, decoded, action)
		}
	}

	// Values built in Go come back structurally equal from both formats.
	for _, action := range []Action{
		NewSetTweak("custom", 1),
		NewSetTweak("custom", -3),
		NewSetTweak("custom", 1.5),
		NewSetTweak("custom", uint64(1<<63)),
		NewSetTweak("custom", []any{1, "two", 3.25}),
	} {
		data, err := json.Marshal(action)
		if err != nil {
			t.Fatalf("Marshal(%#v): %v", action, err)
		}
		parsed, err := ParseAction(data)
		if err != nil {
			t.Fatalf("ParseAction(%s): %v", data, err)
		}
		if !reflect.DeepEqual(parsed, action) {
			t.Errorf("JSON round trip: got %#v, want %#v", parsed, action)
		}

		encoded, err := codec.Marshal(action)
		if err != nil {
			t.Fatalf("codec.Marshal(%#v): %v", action, err)
		}
		var decoded Action
		if err := codec.Unmarshal(encoded, &decoded); err != nil {
			t.Fatalf("codec.Unmarshal(%#v): %v", action, err)
		}
		if !reflect.DeepEqual(decoded, action) {
			t.Errorf("CBOR round trip: got %#v, want %#v", decoded, action)
		}
	}
}

func TestParseActionTrailingData(t *testing.T) {
	t.Parallel()
	if _, err := ParseAction([]byte(`"notify" "coalesce"`)); err == nil {
		t.Fatal("expected error for trailing data")
	}
}

func TestActionCBORShape(t *testing.T) {
	t.Parallel()

	// A simple action is a bare CBOR text string.
	data, err := codec.Marshal(Action{Kind: NotifyAction})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	diagnostic, err := codec.Diagnose(data)
	if err != nil {
		t.Fatalf("Diagnose: %v", err)
	}
	if diagnostic != `"notify"` {
		t.Errorf("notify diagnostic = %s, want \"notify\"", diagnostic)
	}

	// A tweak is a map, and a non-string map value for set_tweak is
	// rejected the same way as in JSON.
	bad, err := codec.Marshal(map[string]any{"set_tweak": 1})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var action Action
	if err := codec.Unmarshal(bad, &action); !errors.Is(err, ErrInvalidTweakKind) {
		t.Errorf("Unmarshal error = %v, want %v", err, ErrInvalidTweakKind)
	}
}

func TestTweakIsCustom(t *testing.T) {
	t.Parallel()
	if SoundTweak.IsCustom() || HighlightTweak.IsCustom() {
		t.Error("sound and highlight are not custom tweaks")
	}
	if !Tweak("com.example.led").IsCustom() || !Tweak("").IsCustom() {
		t.Error("com.example.led should be a custom tweak")
	}
}
