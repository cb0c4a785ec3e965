// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"unicode"
)

// stdinName stands for standard input in file arguments and reports.
const stdinName = "-"

// readInput reads the single optional file argument, or stdin when
// args is empty or "-". With hexMode, whitespace is stripped and the
// input is hex-decoded.
func readInput(args []string, hexMode bool) ([]byte, error) {
	if len(args) > 1 {
		return nil, fmt.Errorf("expected at most one input file, got %d", len(args))
	}
	name := stdinName
	if len(args) == 1 {
		name = args[0]
	}
	data, err := readNamed(name)
	if err != nil {
		return nil, err
	}
	if hexMode {
		return decodeHexInput(data)
	}
	return data, nil
}

// readNamed reads a file, or stdin for "-".
func readNamed(name string) ([]byte, error) {
	if name == stdinName {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}

// decodeHexInput decodes hex input, ignoring whitespace between digit
// pairs ("a1 63 6b" or "a1636b").
func decodeHexInput(data []byte) ([]byte, error) {
	cleaned := bytes.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, data)
	if len(cleaned) == 0 {
		return nil, fmt.Errorf("empty input after stripping whitespace from hex")
	}

	decoded := make([]byte, hex.DecodedLen(len(cleaned)))
	count, err := hex.Decode(decoded, cleaned)
	if err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	return decoded[:count], nil
}
