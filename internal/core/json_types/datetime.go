package json_types

import (
	"encoding/json"
	"fmt"
	"time"
)

// Legacy snapshot format, no timezone. Dates are interpreted in the
// location configured for the application.
const dateTimeLayout = "2006-01-02 15:04:05"

func parseDateTime(str string) (time.Time, error) {
	parsed, err := time.Parse(dateTimeLayout, str)
	// If that fails, try RFC3339 for snapshots written by other tools
	if err != nil {
		parsed, err = time.Parse(time.RFC3339, str)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to parse time: %v", err)
		}
	}

	return parsed, nil
}

type DateTime struct {
	Date time.Time
}

func NewDateTime(t time.Time) DateTime {
	return DateTime{Date: t}
}

func (t *DateTime) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	// Hand-edited snapshots can carry a non-string here; reject it
	// instead of slicing past the token
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("failed to parse time: not a quoted string: %s", data)
	}

	str := string(data[1 : len(data)-1])

	parsed, err := parseDateTime(str)
	if err != nil {
		return err
	}

	*t = DateTime{Date: parsed}
	return nil
}

func (t DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Date.Format(dateTimeLayout))
}

func (t DateTime) String() string {
	return t.Date.Format(dateTimeLayout)
}
