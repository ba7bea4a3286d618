package ast

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// timeFormats are tried in order for TIME literals, which carry no date.
var timeFormats = []string{
	"15:04:05.999999999",
	"15:04:05",
	"15:04",
}

// Time interprets the literal in UTC. DATE and TIMESTAMP values are parsed
// with dateparse; TIME values must be clock times and are returned on
// January 1 of year 0.
func (d *DatetimeLiteral) Time() (time.Time, error) {
	return d.TimeIn(time.UTC)
}

// TimeIn is like Time but interprets values without a zone in loc.
func (d *DatetimeLiteral) TimeIn(loc *time.Location) (time.Time, error) {
	value := strings.TrimSpace(d.Value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty %s literal", strings.ToLower(d.Kind))
	}

	if strings.EqualFold(d.Kind, "TIME") {
		for _, format := range timeFormats {
			if t, err := time.ParseInLocation(format, value, loc); err == nil {
				return time.Date(0, 1, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc), nil
			}
		}
		return time.Time{}, fmt.Errorf("cannot parse time: %s", value)
	}

	t, err := dateparse.ParseIn(value, loc, dateparse.PreferMonthFirst(true))
	if err != nil {
		return time.Time{}, err
	}
	if strings.EqualFold(d.Kind, "DATE") {
		y, m, day := t.Date()
		return time.Date(y, m, day, 0, 0, 0, 0, loc), nil
	}
	return t, nil
}
