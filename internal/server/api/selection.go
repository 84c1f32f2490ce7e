package api

import (
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
)

// EncodeSelection renders track identifiers as the comma-separated,
// percent-encoded list the UI persists in the page URL. Identifiers must
// round-trip unchanged, including slashes and spaces.
func EncodeSelection(ids []string) string {
	encoded := make([]string, len(ids))
	for i, id := range ids {
		encoded[i] = url.QueryEscape(id)
	}
	return strings.Join(encoded, ",")
}

// rawQueryValue returns the still-encoded value of one query parameter.
// echo's QueryParam percent-decodes the whole value, which would turn
// encoded commas inside an identifier into list separators before
// ParseSelection gets to split on them.
func rawQueryValue(c echo.Context, key string) string {
	for _, pair := range strings.Split(c.Request().URL.RawQuery, "&") {
		if k, v, ok := strings.Cut(pair, "="); ok && k == key {
			return v
		}
	}
	return ""
}

// ParseSelection is the inverse of EncodeSelection. Empty items and items
// that fail to decode are dropped.
func ParseSelection(raw string) []string {
	if raw == "" {
		return nil
	}

	var ids []string
	for _, item := range strings.Split(raw, ",") {
		if item == "" {
			continue
		}
		id, err := url.QueryUnescape(item)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
