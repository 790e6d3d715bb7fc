package weekkey

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDate is returned when a date string cannot be parsed.
var ErrInvalidDate = errors.New("invalid date")

// ErrMalformedKey is returned when a week key does not have the
// "<year>-W<week>" shape.
var ErrMalformedKey = errors.New("malformed week key")

// dateLayouts are the accepted upstream date formats, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Codec converts between calendar dates and ISO week keys ("2025-W05").
// The time zone is explicit so that week boundaries are deterministic.
type Codec struct {
	loc *time.Location
}

// NewCodec creates a Codec operating in the given time zone.
func NewCodec(loc *time.Location) *Codec {
	return &Codec{loc: loc}
}

// Location returns the codec's time zone.
func (c *Codec) Location() *time.Location {
	return c.loc
}

// ParseDate parses an upstream date string in the codec's time zone.
func (c *Codec) ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, c.loc); err == nil {
			return t.In(c.loc), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// ToWeekKey parses a date string and returns its ISO week key.
func (c *Codec) ToWeekKey(dateString string) (string, error) {
	t, err := c.ParseDate(dateString)
	if err != nil {
		return "", err
	}
	return c.FromTime(t), nil
}

// FromTime returns the ISO week key of an instant, using the ISO week-year
// so that dates near a year boundary land in the correct key.
func (c *Codec) FromTime(t time.Time) string {
	year, week := t.In(c.loc).ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// MondayOf decodes a week key into the Monday 00:00:00 of that ISO week.
// Jan 4 always falls in ISO week 1, so Monday of week 1 is anchored there;
// this keeps MondayOf an exact inverse of FromTime for every date.
func (c *Codec) MondayOf(key string) (time.Time, error) {
	parts := strings.Split(key, "-W")
	if len(parts) != 2 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedKey, key)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedKey, key)
	}
	week, err := strconv.Atoi(parts[1])
	if err != nil || week < 1 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedKey, key)
	}

	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, c.loc)
	monday := jan4.AddDate(0, 0, -(ISOWeekday(jan4) - 1))
	return monday.AddDate(0, 0, (week-1)*7), nil
}

// FormatWeekRange renders a week key as its Monday..Sunday range, e.g.
// "February, 3 - 9" within a month and "February, 24 - March, 2" across one.
func (c *Codec) FormatWeekRange(key string) (string, error) {
	start, err := c.MondayOf(key)
	if err != nil {
		return "", err
	}
	end := start.AddDate(0, 0, 6)

	display := fmt.Sprintf("%s, %d - ", start.Month(), start.Day())
	if start.Month() != end.Month() {
		display += fmt.Sprintf("%s, %d", end.Month(), end.Day())
	} else {
		display += strconv.Itoa(end.Day())
	}
	return display, nil
}

// SortKeysAsc returns a new slice of the keys in chronological order of
// their decoded Mondays. The sort is stable and never lexicographic; keys
// that fail to decode sort first, as the zero time.
func (c *Codec) SortKeysAsc(keys []string) []string {
	type decoded struct {
		key    string
		monday time.Time
	}
	ds := make([]decoded, len(keys))
	for i, k := range keys {
		monday, err := c.MondayOf(k)
		if err != nil {
			monday = time.Time{}
		}
		ds[i] = decoded{key: k, monday: monday}
	}
	sort.SliceStable(ds, func(i, j int) bool {
		return ds[i].monday.Before(ds[j].monday)
	})

	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.key
	}
	return out
}

// ISOWeekday returns the ISO-8601 weekday of an instant, Monday=1..Sunday=7.
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	return wd
}
