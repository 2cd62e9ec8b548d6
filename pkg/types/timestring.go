package types

import (
	"errors"
	"fmt"
	"time"
)

// timeFormat формат времени HH:MM (24-часовой)
const timeFormat = "15:04"

// ErrInvalidTimeString возвращается при некорректном формате строки времени
var ErrInvalidTimeString = errors.New("invalid time string format, expected HH:MM")

// TimeString represents a time of day as an "HH:MM" string.
// It is the wire format used by the booking APIs for slot times.
type TimeString string

// NewTimeString создает TimeString из time.Time (отбрасывает дату и секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeFormat))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	t := TimeString(s)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

// String returns the underlying "HH:MM" representation.
func (t TimeString) String() string {
	return string(t)
}

// IsZero returns true if the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks that the value parses as "HH:MM".
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeFormat, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsBefore reports whether t is strictly earlier in the day than other.
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := time.Parse(timeFormat, string(t))
	b, errB := time.Parse(timeFormat, string(other))
	if errA != nil || errB != nil {
		return false
	}
	return a.Before(b)
}

// IsAfter reports whether t is strictly later in the day than other.
func (t TimeString) IsAfter(other TimeString) bool {
	a, errA := time.Parse(timeFormat, string(t))
	b, errB := time.Parse(timeFormat, string(other))
	if errA != nil || errB != nil {
		return false
	}
	return a.After(b)
}

// AddMinutes returns the time shifted forward by the given number of minutes.
// The result wraps within a single day is not supported: переход через
// полночь считается ошибкой, слоты не пересекают границу суток.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := time.Parse(timeFormat, string(t))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}

	shifted := parsed.Add(time.Duration(minutes) * time.Minute)
	if shifted.Day() != parsed.Day() {
		return "", fmt.Errorf("%w: %q + %d minutes crosses midnight", ErrInvalidTimeString, string(t), minutes)
	}

	return TimeString(shifted.Format(timeFormat)), nil
}
