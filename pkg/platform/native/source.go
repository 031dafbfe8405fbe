// Package native is the CLI-facing host: it loads source files from the
// local filesystem, detecting and transcoding UTF-16 BOM-marked text to
// UTF-8 before handing it to the core (grounded on the teacher's
// internal/interp/encoding.go, which does the identical detection for
// the identical reason), and resolves IMPORT units against a workspace
// manifest (fplc.yaml, §10.4).
package native

import (
	"bytes"
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const utf8BOM = "﻿"

// LoadSource reads path and returns its contents as UTF-8 text, detecting
// a UTF-8, UTF-16 LE, or UTF-16 BE byte-order mark; BOM-less files are
// assumed UTF-8 (spec.md §6: "Source file. UTF-8 text").
func LoadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	switch {
	case len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF:
		return string(data[3:]), nil
	case len(data) >= 2 && data[0] == 0xFF && data[1] == 0xFE:
		return decodeUTF16(data, unicode.LittleEndian)
	case len(data) >= 2 && data[0] == 0xFE && data[1] == 0xFF:
		return decodeUTF16(data, unicode.BigEndian)
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s is not valid UTF-8 and carries no recognized BOM", path)
	}
	return string(data), nil
}

func decodeUTF16(data []byte, endianness unicode.Endianness) (string, error) {
	decoder := unicode.UTF16(endianness, unicode.UseBOM).NewDecoder()
	utf8Data, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return "", fmt.Errorf("failed to decode UTF-16: %w", err)
	}
	result := bytes.TrimPrefix(utf8Data, []byte(utf8BOM))
	return string(result), nil
}
