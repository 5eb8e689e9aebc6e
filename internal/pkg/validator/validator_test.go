package validator

import (
	"strings"
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@com", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidUsername(t *testing.T) {
	valid := []string{"abc", "user_1", "john.doe", "a-b-c", strings.Repeat("a", 50)}
	invalid := []string{"ab", "", "user name", "user@name", strings.Repeat("a", 51)}
	for _, u := range valid {
		if !IsValidUsername(u) {
			t.Errorf("IsValidUsername(%q) = false, want true", u)
		}
	}
	for _, u := range invalid {
		if IsValidUsername(u) {
			t.Errorf("IsValidUsername(%q) = true, want false", u)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2026-01-15"); !ok {
		t.Error("expected 2026-01-15 to parse")
	}
	if d, ok := IsValidDate("2024-02-29"); !ok || d.Day() != 29 {
		t.Error("expected leap day to parse")
	}
	for _, s := range []string{"2026-13-01", "2026-02-30", "15-01-2026", "2026/01/15", ""} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidDateTime(t *testing.T) {
	valid := []string{
		"2026-01-15T10:30:00Z",
		"2026-01-15T10:30:00+07:00",
		"2026-01-15T10:30:00",
		"2026-01-15T10:30",
	}
	for _, s := range valid {
		if _, ok := IsValidDateTime(s); !ok {
			t.Errorf("IsValidDateTime(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"2026-01-15 10:30", "10:30", "not-a-time", ""} {
		if _, ok := IsValidDateTime(s); ok {
			t.Errorf("IsValidDateTime(%q) = true, want false", s)
		}
	}
}

func TestIsValidTimeOfDay(t *testing.T) {
	if tm, ok := IsValidTimeOfDay("08:30"); !ok || tm.Hour() != 8 || tm.Minute() != 30 {
		t.Error("expected 08:30 to parse")
	}
	for _, s := range []string{"24:00", "8:70", "0830", ""} {
		if _, ok := IsValidTimeOfDay(s); ok {
			t.Errorf("IsValidTimeOfDay(%q) = true, want false", s)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	opts := []string{"leave", "late", "early"}
	if !IsInSlice("late", opts) {
		t.Error("expected late to be found")
	}
	if IsInSlice("LATE", opts) {
		t.Error("expected match to be case sensitive")
	}
	if IsInSlice("x", nil) {
		t.Error("expected no match in nil slice")
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "month", Message: "must be between 1 and 12"},
		{Field: "year", Message: "must be positive"},
	}

	m := errs.ToMap()
	if len(m) != 2 || m["month"] == "" || m["year"] == "" {
		t.Errorf("unexpected map: %v", m)
	}
	if errs.Error() == "" {
		t.Error("expected a non-empty error string")
	}
}
