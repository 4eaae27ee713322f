package rewards

import (
	"slices"
	"sort"
)

// ID identifies a reward.
type ID string

const (
	Star    ID = "star"
	Rocket  ID = "rocket"
	Rainbow ID = "rainbow"
	Unicorn ID = "unicorn"
)

// Reward is an unlockable collectible.
type Reward struct {
	ID ID
	// Cost is the point total at which the reward unlocks.
	Cost int
}

// catalog is ordered by cost.
var catalog = []Reward{
	{ID: Star, Cost: 50},
	{ID: Rocket, Cost: 120},
	{ID: Rainbow, Cost: 250},
	{ID: Unicorn, Cost: 400},
}

// Catalog returns every reward, cheapest first.
func Catalog() []Reward {
	return slices.Clone(catalog)
}

// Lookup finds a reward by id.
func Lookup(id ID) (Reward, bool) {
	for _, r := range catalog {
		if r.ID == id {
			return r, true
		}
	}
	return Reward{}, false
}

// DisplayName returns a human-readable label.
func (id ID) DisplayName() string {
	switch id {
	case Star:
		return "Star"
	case Rocket:
		return "Rocket"
	case Rainbow:
		return "Rainbow"
	case Unicorn:
		return "Unicorn"
	default:
		return string(id)
	}
}

// Icon returns the display icon.
func (id ID) Icon() string {
	switch id {
	case Star:
		return "⭐"
	case Rocket:
		return "🚀"
	case Rainbow:
		return "🌈"
	case Unicorn:
		return "🦄"
	default:
		return "✦"
	}
}

// Set is the collection of unlocked rewards. Rewards are never spent, so
// the set only grows.
type Set map[ID]bool

// NewSet builds a set from persisted ids, ignoring unknown ones.
func NewSet(ids []string) Set {
	s := make(Set, len(ids))
	for _, raw := range ids {
		if _, ok := Lookup(ID(raw)); ok {
			s[ID(raw)] = true
		}
	}
	return s
}

// Clone returns an independent copy.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for id := range s {
		out[id] = true
	}
	return out
}

// IDs returns the unlocked ids in catalog order.
func (s Set) IDs() []ID {
	var out []ID
	for _, r := range catalog {
		if s[r.ID] {
			out = append(out, r.ID)
		}
	}
	return out
}

// Strings returns the unlocked ids as sorted strings for persistence.
func (s Set) Strings() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, string(id))
	}
	sort.Strings(out)
	return out
}

// Unlock adds every reward whose cost is at or below points and returns
// the ones newly added, in catalog order.
func (s Set) Unlock(points int) []ID {
	var added []ID
	for _, r := range catalog {
		if points >= r.Cost && !s[r.ID] {
			s[r.ID] = true
			added = append(added, r.ID)
		}
	}
	return added
}

// NextReward returns the cheapest reward not yet unlocked.
func (s Set) NextReward() (Reward, bool) {
	for _, r := range catalog {
		if !s[r.ID] {
			return r, true
		}
	}
	return Reward{}, false
}
