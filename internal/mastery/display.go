package mastery

import (
	"fmt"
	"time"
)

// Strength is a coarse label for a record's score.
type Strength string

const (
	StrengthWeak     Strength = "weak"
	StrengthLearning Strength = "learning"
	StrengthStrong   Strength = "strong"
)

// Strength returns the display label for the record.
func (r Record) Strength() Strength {
	switch {
	case r.Score >= StrongScore:
		return StrengthStrong
	case r.Score <= WeakScore:
		return StrengthWeak
	default:
		return StrengthLearning
	}
}

// DueIn formats time until the record is due, or "now".
func (r Record) DueIn(now time.Time) string {
	if r.IsDue(now) {
		return "now"
	}
	d := r.DueAt.Sub(now).Round(time.Second)
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
}
