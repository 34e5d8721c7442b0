package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Interval is a single open period within a working day, HH:MM bounds,
// end exclusive.
type Interval struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// WeekTemplate maps lowercase weekday names ("monday".."sunday") to the open
// intervals of that day. A nil/empty template means "use the center default".
// Stored as JSONB on the doctors table.
type WeekTemplate map[string][]Interval

// Value implements driver.Valuer for JSONB storage.
func (t WeekTemplate) Value() (driver.Value, error) {
	if len(t) == 0 {
		return nil, nil
	}
	return json.Marshal(t)
}

// Scan implements sql.Scanner for JSONB storage.
func (t *WeekTemplate) Scan(value interface{}) error {
	if value == nil {
		*t = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("failed to unmarshal JSONB value:", value))
	}

	result := WeekTemplate{}
	err := json.Unmarshal(bytes, &result)
	*t = result
	return err
}

// weekdayNames indexes time.Weekday (Sunday = 0) into template keys.
var weekdayNames = [...]string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

// WeekdayKey returns the template key for a weekday.
func WeekdayKey(day time.Weekday) string {
	return weekdayNames[day]
}

// IntervalsFor returns the open intervals for a weekday. A day missing from
// the template is closed.
func (t WeekTemplate) IntervalsFor(day time.Weekday) []Interval {
	if t == nil {
		return nil
	}
	return t[WeekdayKey(day)]
}

// Validate checks every interval parses as HH:MM and starts before it ends.
func (t WeekTemplate) Validate() error {
	for day, intervals := range t {
		known := false
		for _, name := range weekdayNames {
			if day == name {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("unknown weekday %q", day)
		}
		for _, iv := range intervals {
			start, err := time.Parse("15:04", iv.Start)
			if err != nil {
				return fmt.Errorf("%s: invalid start %q", day, iv.Start)
			}
			end, err := time.Parse("15:04", iv.End)
			if err != nil {
				return fmt.Errorf("%s: invalid end %q", day, iv.End)
			}
			if !start.Before(end) {
				return fmt.Errorf("%s: interval %s-%s is empty", day, iv.Start, iv.End)
			}
		}
	}
	return nil
}

// DefaultWeekTemplate builds the Monday-Friday center template from the
// configured day bounds. Weekends stay closed.
func DefaultWeekTemplate(dayStart, dayEnd string) WeekTemplate {
	template := WeekTemplate{}
	for day := time.Monday; day <= time.Friday; day++ {
		template[WeekdayKey(day)] = []Interval{{Start: dayStart, End: dayEnd}}
	}
	return template
}
