package routing

import (
	"slices"
	"time"

	"hotline/internal/directory/models"
)

// Rank orders contacts by, in turn: 24/7 availability, an emergency-class
// service, open at now, and number of services. The sort is stable, so ties
// keep input order. The input slice is not modified.
func Rank(contacts []*models.Contact, now time.Time) []*models.Contact {
	ranked := slices.Clone(contacts)
	if len(ranked) < 2 {
		return ranked
	}

	type key struct {
		alwaysOpen bool
		emergency  bool
		open       bool
		services   int
	}
	keys := make(map[*models.Contact]key, len(ranked))
	for _, c := range ranked {
		keys[c] = key{
			alwaysOpen: c.IsAlwaysOpen(),
			emergency:  c.HasEmergencyService(),
			open:       IsOpen(c, now),
			services:   len(c.Services),
		}
	}

	slices.SortStableFunc(ranked, func(a, b *models.Contact) int {
		ka, kb := keys[a], keys[b]
		if c := preferTrue(ka.alwaysOpen, kb.alwaysOpen); c != 0 {
			return c
		}
		if c := preferTrue(ka.emergency, kb.emergency); c != 0 {
			return c
		}
		if c := preferTrue(ka.open, kb.open); c != 0 {
			return c
		}
		return kb.services - ka.services
	})
	return ranked
}

func preferTrue(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return -1
	default:
		return 1
	}
}
