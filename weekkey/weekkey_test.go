package weekkey

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testCodec() *Codec {
	return NewCodec(time.UTC)
}

func TestToWeekKey_ISOYearBoundary(t *testing.T) {
	codec := testCodec()

	tests := []struct {
		date string
		want string
	}{
		{"2025-02-05", "2025-W06"},
		{"2024-12-30", "2025-W01"}, // Monday of ISO week 1 of 2025
		{"2021-01-01", "2020-W53"}, // Friday still in 2020's last ISO week
		{"2021-01-04", "2021-W01"},
		{"2020-12-28", "2020-W53"},
	}

	for _, test := range tests {
		got, err := codec.ToWeekKey(test.date)
		if err != nil {
			t.Fatalf("ToWeekKey(%q) returned error: %v", test.date, err)
		}
		if got != test.want {
			t.Errorf("ToWeekKey(%q) = %q, want %q", test.date, got, test.want)
		}
	}
}

func TestToWeekKey_InvalidDate(t *testing.T) {
	codec := testCodec()

	_, err := codec.ToWeekKey("not-a-date")
	if !errors.Is(err, ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
}

func TestMondayOf_RoundTrip(t *testing.T) {
	codec := testCodec()

	// Dates chosen to cover plain weeks, week-53 years, and years whose
	// Jan 1 belongs to the previous ISO year.
	dates := []string{
		"2025-02-05T10:30:00",
		"2024-12-31",
		"2025-01-01",
		"2021-01-01",
		"2020-12-28",
		"2020-06-15",
		"2026-01-02",
	}

	for _, d := range dates {
		key, err := codec.ToWeekKey(d)
		if err != nil {
			t.Fatalf("ToWeekKey(%q) returned error: %v", d, err)
		}
		monday, err := codec.MondayOf(key)
		if err != nil {
			t.Fatalf("MondayOf(%q) returned error: %v", key, err)
		}

		if monday.Weekday() != time.Monday {
			t.Errorf("MondayOf(%q) = %v, not a Monday", key, monday)
		}

		parsed, _ := codec.ParseDate(d)
		diff := parsed.Sub(monday)
		if diff < 0 || diff >= 7*24*time.Hour {
			t.Errorf("MondayOf(%q) = %v not within 7 days before %v", key, monday, parsed)
		}

		if got := codec.FromTime(monday); got != key {
			t.Errorf("FromTime(MondayOf(%q)) = %q, round trip broken", key, got)
		}
	}
}

func TestMondayOf_MalformedKey(t *testing.T) {
	codec := testCodec()

	for _, key := range []string{"2025W05", "2025-W05-W06", "abcd-Wxy", "2025-W00", ""} {
		_, err := codec.MondayOf(key)
		if !errors.Is(err, ErrMalformedKey) {
			t.Errorf("MondayOf(%q): expected ErrMalformedKey, got %v", key, err)
		}
	}
}

func TestFormatWeekRange(t *testing.T) {
	codec := testCodec()

	// Feb 3-9 2025 sits inside one month; Feb 24 - Mar 2 crosses into March.
	got, err := codec.FormatWeekRange("2025-W06")
	if err != nil {
		t.Fatalf("FormatWeekRange returned error: %v", err)
	}
	assert.Equal(t, "February, 3 - 9", got)

	got, err = codec.FormatWeekRange("2025-W09")
	if err != nil {
		t.Fatalf("FormatWeekRange returned error: %v", err)
	}
	assert.Equal(t, "February, 24 - March, 2", got)
}

func TestFormatWeekRange_MalformedKey(t *testing.T) {
	codec := testCodec()

	_, err := codec.FormatWeekRange("garbage")
	if !errors.Is(err, ErrMalformedKey) {
		t.Errorf("expected ErrMalformedKey, got %v", err)
	}
}

func TestSortKeysAsc_YearBoundary(t *testing.T) {
	codec := testCodec()

	sorted := codec.SortKeysAsc([]string{"2024-W52", "2025-W01"})
	assert.Equal(t, []string{"2024-W52", "2025-W01"}, sorted)

	sorted = codec.SortKeysAsc([]string{"2025-W01", "2024-W52"})
	assert.Equal(t, []string{"2024-W52", "2025-W01"}, sorted)
}

func TestSortKeysAsc_DoesNotMutate(t *testing.T) {
	codec := testCodec()

	keys := []string{"2025-W10", "2025-W02", "2024-W52"}
	_ = codec.SortKeysAsc(keys)
	assert.Equal(t, []string{"2025-W10", "2025-W02", "2024-W52"}, keys)
}

func TestSortKeysAsc_MalformedSortFirst(t *testing.T) {
	codec := testCodec()

	sorted := codec.SortKeysAsc([]string{"2025-W02", "bogus", "2024-W52"})
	assert.Equal(t, []string{"bogus", "2024-W52", "2025-W02"}, sorted)
}

func TestISOWeekday(t *testing.T) {
	monday := time.Date(2025, time.February, 3, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2025, time.February, 9, 0, 0, 0, 0, time.UTC)

	if got := ISOWeekday(monday); got != 1 {
		t.Errorf("ISOWeekday(Monday) = %d, want 1", got)
	}
	if got := ISOWeekday(sunday); got != 7 {
		t.Errorf("ISOWeekday(Sunday) = %d, want 7", got)
	}
}
