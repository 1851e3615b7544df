package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// SanitizeText strips all markup from shopper-supplied free text and trims the result.
func SanitizeText(s string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}

func SanitizeTextPtr(s *string) {
	if s != nil {
		*s = SanitizeText(*s)
	}
}
