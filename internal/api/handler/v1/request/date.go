package request

import (
	"errors"
	"time"
)

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseDate accepts RFC 3339 timestamps or plain dates.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, errors.New("must be a valid date")
}

// dateParseable is an ozzo rule for date fields; empty values are left to
// the Required rule.
func dateParseable(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}

	_, err := ParseDate(s)
	return err
}
