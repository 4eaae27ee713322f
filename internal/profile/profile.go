package profile

import (
	"github.com/abhisek/mathtik/internal/facts"
	"github.com/abhisek/mathtik/internal/rewards"
	"github.com/abhisek/mathtik/internal/store"
)

// Language is a UI language code.
type Language string

const (
	English Language = "en"
	Russian Language = "ru"
	Hebrew  Language = "he"
)

// Languages lists the supported languages in display order.
func Languages() []Language {
	return []Language{English, Russian, Hebrew}
}

// ParseLanguage validates a language code.
func ParseLanguage(code string) (Language, bool) {
	for _, l := range Languages() {
		if string(l) == code {
			return l, true
		}
	}
	return "", false
}

// RTL reports whether the language is written right-to-left.
func (l Language) RTL() bool { return l == Hebrew }

// DisplayName returns the language's own name.
func (l Language) DisplayName() string {
	switch l {
	case English:
		return "English"
	case Russian:
		return "Русский"
	case Hebrew:
		return "עברית"
	default:
		return string(l)
	}
}

// Theme is a visual theme id.
type Theme string

const (
	ThemeDefault Theme = "default"
	ThemeBarbie  Theme = "barbie"
)

// Themes lists the supported themes in display order.
func Themes() []Theme {
	return []Theme{ThemeDefault, ThemeBarbie}
}

// ParseTheme validates a theme id.
func ParseTheme(id string) (Theme, bool) {
	for _, t := range Themes() {
		if string(t) == id {
			return t, true
		}
	}
	return "", false
}

// LevelTarget is the number of correct answers that completes a level.
const LevelTarget = 10

// Profile is the learner's cumulative progress and preferences.
type Profile struct {
	Points        int
	Streak        int
	BestStreak    int
	Level         int
	LevelProgress int
	TotalAttempts int
	TotalCorrect  int
	SoundOn       bool
	Unlocked      rewards.Set
	Language      Language
	Theme         Theme
	// Champion is set once level 10 has been completed.
	Champion bool
}

// Default returns a fresh profile.
func Default() Profile {
	return Profile{
		Level:    facts.MinLevel,
		SoundOn:  true,
		Unlocked: rewards.NewSet(nil),
		Language: English,
		Theme:    ThemeDefault,
	}
}

// Clone returns a deep copy.
func (p Profile) Clone() Profile {
	cp := p
	if p.Unlocked != nil {
		cp.Unlocked = p.Unlocked.Clone()
	} else {
		cp.Unlocked = rewards.NewSet(nil)
	}
	return cp
}

// Accuracy returns the lifetime share of correct answers in [0,1].
func (p Profile) Accuracy() float64 {
	if p.TotalAttempts == 0 {
		return 0
	}
	return float64(p.TotalCorrect) / float64(p.TotalAttempts)
}

// SnapshotData exports the profile for persistence.
func (p Profile) SnapshotData() *store.ProfileData {
	return &store.ProfileData{
		Points:        p.Points,
		Streak:        p.Streak,
		BestStreak:    p.BestStreak,
		Level:         p.Level,
		LevelProgress: p.LevelProgress,
		TotalAttempts: p.TotalAttempts,
		TotalCorrect:  p.TotalCorrect,
		SoundOn:       p.SoundOn,
		Unlocked:      p.Unlocked.Strings(),
		Language:      string(p.Language),
		Theme:         string(p.Theme),
		Champion:      p.Champion,
	}
}

// FromSnapshot restores a profile, replacing out-of-range or unknown
// values with defaults.
func FromSnapshot(d *store.ProfileData) Profile {
	p := Default()
	if d == nil {
		return p
	}
	p.Points = max(0, d.Points)
	p.Streak = max(0, d.Streak)
	p.BestStreak = max(p.Streak, d.BestStreak)
	p.Level = min(max(d.Level, facts.MinLevel), facts.MaxLevel)
	p.LevelProgress = min(max(d.LevelProgress, 0), LevelTarget-1)
	p.TotalAttempts = max(0, d.TotalAttempts)
	p.TotalCorrect = min(max(0, d.TotalCorrect), p.TotalAttempts)
	p.SoundOn = d.SoundOn
	p.Unlocked = rewards.NewSet(d.Unlocked)
	p.Champion = d.Champion
	if l, ok := ParseLanguage(d.Language); ok {
		p.Language = l
	}
	if t, ok := ParseTheme(d.Theme); ok {
		p.Theme = t
	}
	return p
}
