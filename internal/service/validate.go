package service

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"estate-ledger/pkg/apierror"
)

// requireText trims the value and checks its length in runes.
func requireText(value string, field string, minLen int, maxLen int) (string, error) {
	trimmed := strings.TrimSpace(value)
	n := utf8.RuneCountInString(trimmed)
	if n < minLen {
		return "", apierror.Validation(field+" is required", field)
	}
	if n > maxLen {
		return "", apierror.Validation(field+" is too long", field)
	}
	return trimmed, nil
}

// canonicalID parses id and returns it in the lowercase hyphenated form the
// database accepts. Malformed ids can never match a row, so callers treat
// them as not found.
func canonicalID(id string) (string, bool) {
	parsed, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return "", false
	}
	return parsed.String(), true
}

// storageNow is the current time at the precision PostgreSQL keeps.
func storageNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
