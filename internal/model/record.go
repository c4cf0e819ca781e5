// Package model defines domain types for exercise records and goals.
package model

import (
	"regexp"
	"strings"
	"time"
)

// Record is one logged instance of an exercise.
type Record struct {
	ID           string    `json:"id" yaml:"id"`
	Seq          int64     `json:"seq" yaml:"seq"`
	ExerciseType string    `json:"exercise_type" yaml:"exercise_type"`
	Reps         int       `json:"reps" yaml:"reps"`
	Timestamp    time.Time `json:"timestamp" yaml:"timestamp"`
}

// Day returns the local calendar day the record belongs to.
func (r Record) Day() string {
	return r.Timestamp.Local().Format(DateLayout)
}

// Goal is a per-exercise target. Weekly is zero when unset.
type Goal struct {
	ExerciseType string    `json:"exercise_type" yaml:"exercise_type"`
	Daily        int       `json:"daily" yaml:"daily"`
	Weekly       int       `json:"weekly,omitempty" yaml:"weekly,omitempty"`
	UpdatedAt    time.Time `json:"updated_at" yaml:"updated_at"`
}

// Filter narrows a record query. Zero values match everything.
type Filter struct {
	ExerciseType string
	Since        time.Time // inclusive
	Until        time.Time // exclusive
}

// Empty reports whether the filter matches every record.
func (f Filter) Empty() bool {
	return f.ExerciseType == "" && f.Since.IsZero() && f.Until.IsZero()
}

// Match reports whether r passes the filter.
func (f Filter) Match(r Record) bool {
	if f.ExerciseType != "" && r.ExerciseType != f.ExerciseType {
		return false
	}
	if !f.Since.IsZero() && r.Timestamp.Before(f.Since) {
		return false
	}
	if !f.Until.IsZero() && !r.Timestamp.Before(f.Until) {
		return false
	}
	return true
}

// DateLayout is the user-facing date format.
const DateLayout = "2006-01-02"

const maxExerciseTypeLen = 64

// MaxReps bounds rep counts and goal targets so daily and weekly sums stay
// far from integer overflow.
const MaxReps = 1_000_000

// CheckReps validates a rep count or goal target named name.
func CheckReps(name string, v int) error {
	if v < 0 || v > MaxReps {
		return Validationf("%s must be an integer between 0 and %d, got %d", name, MaxReps, v)
	}
	return nil
}

var exerciseTypePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// NormalizeExerciseType trims and lower-cases an exercise name and checks
// that it is a usable key.
func NormalizeExerciseType(s string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return "", Validationf("exercise type must not be empty")
	}
	if len(name) > maxExerciseTypeLen {
		return "", Validationf("exercise type %q is longer than %d characters", name, maxExerciseTypeLen)
	}
	if !exerciseTypePattern.MatchString(name) {
		return "", Validationf("exercise type %q may only contain letters, digits, '-' and '_'", s)
	}
	return name, nil
}

// ParseDate parses a YYYY-MM-DD date in local time.
func ParseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, Validationf("date %q must be in YYYY-MM-DD format", s)
	}
	return d, nil
}

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Local().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// StartOfWeek returns local midnight of the Monday on or before t.
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// StartOfMonth returns local midnight of the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.Local().Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.Local)
}
