// Package cooldown checks elapsed-time windows stored as Unix seconds on the
// player ledger. Gathering and watering share it.
package cooldown

import (
	"fmt"
	"time"
)

// ErrOnCooldown is returned when an action is still inside its window.
// It unwraps to the domain sentinel supplied by the caller so handlers can
// map it with errors.Is.
type ErrOnCooldown struct {
	Action    string
	Remaining time.Duration
	Cause     error
}

func (e ErrOnCooldown) Error() string {
	minutes := int(e.Remaining.Minutes())
	seconds := int(e.Remaining.Seconds()) % SecondsPerMinute

	if minutes > 0 {
		return fmt.Sprintf(ErrFmtCooldownWithMinutes, e.Action, minutes, seconds)
	}
	return fmt.Sprintf(ErrFmtCooldownSecondsOnly, e.Action, seconds)
}

func (e ErrOnCooldown) Unwrap() error {
	return e.Cause
}

// Remaining returns the seconds left before an action last performed at last
// may run again. A zero last timestamp or window disables the check.
func Remaining(last, now, window int64) int64 {
	if last == 0 || window <= 0 {
		return 0
	}
	left := last + window - now
	if left < 0 {
		return 0
	}
	return left
}

// Check returns ErrOnCooldown wrapping cause while the window is open.
func Check(action string, last, now, window int64, cause error) error {
	left := Remaining(last, now, window)
	if left == 0 {
		return nil
	}
	return ErrOnCooldown{
		Action:    action,
		Remaining: time.Duration(left) * time.Second,
		Cause:     cause,
	}
}
