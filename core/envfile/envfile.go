package envfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	exportPrefix  = "export "
	byteOrderMark = "\ufeff"

	// valueKey stands in for the real name while godotenv decodes a value,
	// since its key grammar is narrower than the one accepted here.
	valueKey = "V"
)

// Read parses the secrets file at path.
// A missing file is reported as an error matching fs.ErrNotExist.
func Read(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open secrets file: %w", err)
	}
	defer f.Close()

	return Parse(f, path)
}

// Parse reads KEY=value lines from r. The name is used in error messages only.
//
// Values are taken literally: quotes and inline comments are handled, but
// $VAR and ${VAR} references are never expanded.
func Parse(r io.Reader, name string) (map[string]string, error) {
	vals := make(map[string]string)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if lineNo == 1 {
			line = strings.TrimPrefix(line, byteOrderMark)
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		key, raw, reason := split(trimmed)
		if reason != "" {
			return nil, &MalformedError{Path: name, Line: lineNo, Reason: reason}
		}

		// godotenv errors quote the offending input, so they are not wrapped.
		value, err := decodeValue(raw)
		if err != nil {
			return nil, &MalformedError{Path: name, Line: lineNo, Reason: "invalid value"}
		}
		vals[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read secrets file %s: %w", name, err)
	}

	return vals, nil
}

// Merge copies into dst every key from src that dst does not have yet and
// returns the number of keys added.
func Merge(dst, src map[string]string) int {
	added := 0
	for k, v := range src {
		if _, ok := dst[k]; ok {
			continue
		}
		dst[k] = v
		added++
	}
	return added
}

// split separates a KEY=value line. A non-empty reason means the line is malformed.
func split(line string) (key, value, reason string) {
	if rest, ok := strings.CutPrefix(line, exportPrefix); ok {
		line = strings.TrimLeft(rest, " \t")
	}

	key, value, ok := strings.Cut(line, "=")
	if !ok {
		return "", "", "expected KEY=value"
	}

	key = strings.TrimRight(key, " \t")
	if !validKey(key) {
		return "", "", "invalid variable name"
	}
	return key, value, ""
}

// decodeValue unquotes raw with godotenv. Dollar signs outside single quotes
// are escaped first because godotenv would otherwise expand them.
func decodeValue(raw string) (string, error) {
	if !strings.HasPrefix(strings.TrimLeft(raw, " \t"), "'") {
		raw = strings.ReplaceAll(raw, "$", `\$`)
	}

	parsed, err := godotenv.Unmarshal(valueKey + "=" + raw)
	if err != nil {
		return "", err
	}
	return parsed[valueKey], nil
}

// validKey accepts word characters, dots and dashes.
func validKey(key string) bool {
	if key == "" {
		return false
	}
	for _, c := range key {
		switch {
		case c == '_', c == '.', c == '-':
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return true
}
