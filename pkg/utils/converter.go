// Package utils provides utility functions for the h5sign service.
// This file contains data conversion, transformation, and formatting utilities.
package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ================================================================================
// String Conversion
// ================================================================================

// StringToBool converts a string to boolean
func StringToBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes" || s == "on"
}

// ScalarString renders a flat parameter value the way the browser client stringifies it.
// ok is false for values that are not strings, booleans or finite numbers.
func ScalarString(v interface{}) (s string, ok bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case bool:
		return strconv.FormatBool(val), true
	case json.Number:
		f, err := val.Float64()
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return "", false
		}
		if i, err := val.Int64(); err == nil {
			return strconv.FormatInt(i, 10), true
		}
		return formatNumber(f), true
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return "", false
		}
		return formatNumber(val), true
	case float32:
		return ScalarString(float64(val))
	case int:
		return strconv.Itoa(val), true
	case int64:
		return strconv.FormatInt(val, 10), true
	case int32:
		return strconv.FormatInt(int64(val), 10), true
	case uint64:
		return strconv.FormatUint(val, 10), true
	default:
		return "", false
	}
}

// formatNumber prints f without exponent; negative zero prints as 0.
func formatNumber(f float64) string {
	if f == 0 {
		return "0"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ================================================================================
// JSON Conversion
// ================================================================================

// ToJSON marshals v without HTML escaping, matching browser JSON.stringify output
func ToJSON(v interface{}) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("failed to marshal to JSON: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// CompactJSON strips insignificant whitespace from raw JSON
func CompactJSON(raw []byte) (string, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return "", fmt.Errorf("failed to compact JSON: %w", err)
	}
	return buf.String(), nil
}

// ================================================================================
// URL Encoding
// ================================================================================

var uriComponentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeURIComponent escapes s with the browser's encodeURIComponent rules
func EncodeURIComponent(s string) string {
	return uriComponentUnescaper.Replace(url.QueryEscape(s))
}

// DecodeURIComponent reverses EncodeURIComponent; '+' is kept literally
func DecodeURIComponent(s string) (string, error) {
	return url.PathUnescape(s)
}

// QueryPair is one key/value of an ordered query string
type QueryPair struct {
	Key   string
	Value string
}

// BuildQuery joins pairs in order as k=v&k=v with URI component encoding
func BuildQuery(pairs []QueryPair) string {
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, EncodeURIComponent(p.Key)+"="+EncodeURIComponent(p.Value))
	}
	return strings.Join(parts, "&")
}

// ================================================================================
// Time Formatting
// ================================================================================

// FormatDateStr renders t as yyyyMMddHHmmssSSS
func FormatDateStr(t time.Time) string {
	return t.Format("20060102150405") + fmt.Sprintf("%03d", t.Nanosecond()/int(time.Millisecond))
}

// ================================================================================
// Slice Helpers
// ================================================================================

// Contains checks if a slice contains a specific value
func Contains(slice []string, value string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

// RemoveDuplicates removes duplicate strings from a slice, keeping first occurrences
func RemoveDuplicates(slice []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(slice))

	for _, item := range slice {
		if !seen[item] {
			seen[item] = true
			result = append(result, item)
		}
	}

	return result
}

// SplitAndTrim splits a comma separated list, dropping empty entries
func SplitAndTrim(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
