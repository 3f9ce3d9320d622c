package scheduler

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CronSchedule is the "minute hour * * *" subset of cron.
// A negative field matches any value.
type CronSchedule struct {
	Minute int
	Hour   int
	expr   string
}

// ParseCronSchedule parses "M H * * *". Minute and hour may be "*";
// the day, month and weekday fields must be "*" when present.
func ParseCronSchedule(expr string) (CronSchedule, error) {
	parts := strings.Fields(expr)
	if len(parts) < 2 || len(parts) > 5 {
		return CronSchedule{}, fmt.Errorf("%w: %q", ErrInvalidCron, expr)
	}
	for _, p := range parts[2:] {
		if p != "*" {
			return CronSchedule{}, fmt.Errorf("%w: only minute and hour fields are supported in %q", ErrInvalidCron, expr)
		}
	}

	minute, err := parseCronField(parts[0], 59)
	if err != nil {
		return CronSchedule{}, fmt.Errorf("%w: minute: %v", ErrInvalidCron, err)
	}
	hour, err := parseCronField(parts[1], 23)
	if err != nil {
		return CronSchedule{}, fmt.Errorf("%w: hour: %v", ErrInvalidCron, err)
	}
	return CronSchedule{Minute: minute, Hour: hour, expr: strings.Join(parts, " ")}, nil
}

func parseCronField(s string, max int) (int, error) {
	if s == "*" {
		return -1, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if v < 0 || v > max {
		return 0, fmt.Errorf("must be 0-%d, got %d", max, v)
	}
	return v, nil
}

// String returns the normalized expression
func (c CronSchedule) String() string {
	return c.expr
}

// Matches reports whether t falls in a scheduled minute
func (c CronSchedule) Matches(t time.Time) bool {
	return (c.Minute < 0 || t.Minute() == c.Minute) && (c.Hour < 0 || t.Hour() == c.Hour)
}

// Next returns the first scheduled minute strictly after t
func (c CronSchedule) Next(t time.Time) time.Time {
	next := t.Truncate(time.Minute).Add(time.Minute)
	// A day and a half of minutes covers every combination of the two fields.
	for i := 0; i < 36*60; i++ {
		if c.Matches(next) {
			return next
		}
		next = next.Add(time.Minute)
	}
	return next
}
