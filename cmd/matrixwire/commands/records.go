// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/tidwall/jsonc"

	"github.com/bureau-foundation/matrixwire/lib/codec"
	"github.com/bureau-foundation/matrixwire/lib/config"
	"github.com/bureau-foundation/matrixwire/lib/push"
	"github.com/bureau-foundation/matrixwire/messaging"
)

// recordKind describes one wire record the commands can decode.
type recordKind struct {
	name    string
	summary string
	new     func() any

	// hasCBOR is set for records with a defined CBOR form.
	hasCBOR bool

	// validated records are checked with messaging.Validate after
	// decoding.
	validated bool
}

var recordKinds = []recordKind{
	{name: "ruleset", summary: "push ruleset, bare or in a {\"global\": ...} envelope", new: func() any { return new(push.Ruleset) }, hasCBOR: true},
	{name: "rule", summary: "single push rule", new: func() any { return new(push.Rule) }, hasCBOR: true},
	{name: "action", summary: "push rule action", new: func() any { return new(push.Action) }, hasCBOR: true},
	{name: "condition", summary: "push rule condition", new: func() any { return new(push.Condition) }, hasCBOR: true},
	{name: "device-rules", summary: "device-scope rule listing keyed by kind", new: func() any { return new(messaging.DevicePushRulesResponse) }},
	{name: "pusher", summary: "pusher registration", new: func() any { return new(messaging.Pusher) }, validated: true},
	{name: "pushers", summary: "GET /pushers response", new: func() any { return new(messaging.PushersResponse) }, validated: true},
	{name: "notifications", summary: "GET /notifications response", new: func() any { return new(messaging.NotificationsResponse) }, validated: true},
	{name: "device-keys", summary: "signed device keys", new: func() any { return new(messaging.DeviceKeys) }, validated: true},
	{name: "keys-upload", summary: "POST /keys/upload request", new: func() any { return new(messaging.UploadKeysRequest) }, validated: true},
	{name: "keys-query", summary: "POST /keys/query response", new: func() any { return new(messaging.QueryKeysResponse) }, validated: true},
	{name: "keys-claim", summary: "POST /keys/claim response", new: func() any { return new(messaging.ClaimKeysResponse) }, validated: true},
	{name: "login-flows", summary: "GET /login response", new: func() any { return new(messaging.LoginFlowsResponse) }, validated: true},
}

func lookupRecordKind(name string) (recordKind, error) {
	index := slices.IndexFunc(recordKinds, func(kind recordKind) bool { return kind.name == name })
	if index < 0 {
		return recordKind{}, fmt.Errorf("unknown record kind %q (known: %s)", name, strings.Join(recordKindNames(), ", "))
	}
	return recordKinds[index], nil
}

// recordKindHelp renders the kind table appended to command
// descriptions.
func recordKindHelp() string {
	var help strings.Builder
	help.WriteString("\n\nRecord kinds:\n")
	table := tabwriter.NewWriter(&help, 2, 0, 2, ' ', 0)
	for _, kind := range recordKinds {
		forms := "json"
		if kind.hasCBOR {
			forms = "json, cbor"
		}
		fmt.Fprintf(table, "  %s\t%s\t(%s)\n", kind.name, kind.summary, forms)
	}
	table.Flush()
	return strings.TrimSuffix(help.String(), "\n")
}

func recordKindNames() []string {
	names := make([]string, len(recordKinds))
	for i, kind := range recordKinds {
		names[i] = kind.name
	}
	return names
}

const (
	inputJSON = "json"
	inputCBOR = "cbor"
)

// decodeRecord decodes data in the given input format ("json" or
// "cbor") into a new value of kind. JSON input may carry comments and
// trailing commas.
func decodeRecord(kind recordKind, data []byte, format string) (any, error) {
	switch format {
	case inputJSON:
		if kind.name == "ruleset" {
			ruleset, err := push.ParseRulesetFile(data)
			if err != nil {
				return nil, err
			}
			return &ruleset, nil
		}
		record := kind.new()
		if err := json.Unmarshal(jsonc.ToJSON(data), record); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", kind.name, err)
		}
		if kind.validated {
			if err := messaging.Validate(record); err != nil {
				return nil, err
			}
		}
		return record, nil
	case inputCBOR:
		if !kind.hasCBOR {
			return nil, fmt.Errorf("%s records have no CBOR form", kind.name)
		}
		if err := codec.Wellformed(data); err != nil {
			return nil, fmt.Errorf("input is not well-formed CBOR: %w", err)
		}
		record := kind.new()
		if err := codec.Unmarshal(data, record); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", kind.name, err)
		}
		return record, nil
	}
	return nil, fmt.Errorf("input format must be %s or %s, got %q", inputJSON, inputCBOR, format)
}

// encodeRecord writes record to w in one of the config output formats.
// JSON and diagnostic output end with a newline; CBOR is written raw.
func encodeRecord(w io.Writer, kind recordKind, record any, format string, indent bool) error {
	switch format {
	case config.FormatJSON:
		var data []byte
		var err error
		if indent {
			data, err = json.MarshalIndent(record, "", "  ")
		} else {
			data, err = json.Marshal(record)
		}
		if err != nil {
			return fmt.Errorf("encoding %s: %w", kind.name, err)
		}
		_, err = w.Write(append(data, '\n'))
		return err
	case config.FormatCBOR, config.FormatDiagnostic:
		if !kind.hasCBOR {
			return fmt.Errorf("%s records have no CBOR form", kind.name)
		}
		data, err := codec.Marshal(record)
		if err != nil {
			return fmt.Errorf("encoding %s: %w", kind.name, err)
		}
		if format == config.FormatCBOR {
			_, err = w.Write(data)
			return err
		}
		diagnostic, err := codec.Diagnose(data)
		if err != nil {
			return fmt.Errorf("diagnosing %s: %w", kind.name, err)
		}
		_, err = fmt.Fprintln(w, diagnostic)
		return err
	}
	return fmt.Errorf("output format must be %s, %s, or %s, got %q",
		config.FormatJSON, config.FormatCBOR, config.FormatDiagnostic, format)
}
