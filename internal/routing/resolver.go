// Package routing decides which directory contacts a caller should be sent
// to. Everything here is a pure function of its arguments: no I/O, no clock
// reads, no shared state.
package routing

import (
	"time"

	"hotline/internal/directory/models"
)

// Stage names the rung of the fallback ladder that produced a result.
type Stage string

const (
	StageStrict            Stage = "strict"
	StageWithoutAnimalType Stage = "without_animal_type"
	StageStatewide         Stage = "statewide"
	StageAlwaysOpen        Stage = "always_open"
	StageNone              Stage = "none"
)

// Result is a ranked shortlist. Contacts are references into the directory
// and must not be modified.
type Result struct {
	Contacts []*models.Contact
	Stage    Stage
}

func (r Result) Empty() bool {
	return len(r.Contacts) == 0
}

// Primary is the top-ranked contact, or nil for an empty result.
func (r Result) Primary() *models.Contact {
	if r.Empty() {
		return nil
	}
	return r.Contacts[0]
}

// Resolve filters dir by c, relaxing constraints until something matches:
//
//  1. every present filter
//  2. without the animal type
//  3. contacts with statewide coverage, keeping rabies and open-ness
//  4. emergencies only: every 24/7 contact, keeping rabies
//  5. nothing
//
// The first non-empty rung is ranked at now and cut to the result cap. An
// empty result means the caller must be pointed to the statewide directory.
func Resolve(dir *models.Directory, c Criteria, now time.Time) Result {
	contacts := dir.Contacts()
	openAt, checkOpen := c.openCheck(now)

	open := func(ct *models.Contact) bool {
		return !checkOpen || IsOpen(ct, openAt)
	}
	rabies := func(ct *models.Contact) bool {
		return !c.RabiesVector || HandlesRabiesVector(ct)
	}
	base := func(ct *models.Contact) bool {
		if c.County != "" && !ServesArea(ct, c.County) {
			return false
		}
		if c.Service != "" && !ProvidesService(ct, c.Service) {
			return false
		}
		return rabies(ct) && open(ct)
	}

	ladder := []struct {
		stage Stage
		skip  bool
		keep  func(*models.Contact) bool
	}{
		{
			stage: StageStrict,
			keep: func(ct *models.Contact) bool {
				if c.AnimalType != "" && !HandlesAnimalType(ct, c.AnimalType) {
					return false
				}
				return base(ct)
			},
		},
		{
			stage: StageWithoutAnimalType,
			skip:  c.AnimalType == "",
			keep:  base,
		},
		{
			stage: StageStatewide,
			keep: func(ct *models.Contact) bool {
				return ct.IsStatewide() && rabies(ct) && open(ct)
			},
		},
		{
			stage: StageAlwaysOpen,
			skip:  !c.IsEmergency(),
			keep: func(ct *models.Contact) bool {
				return ct.IsAlwaysOpen() && rabies(ct)
			},
		},
	}

	for _, rung := range ladder {
		if rung.skip {
			continue
		}
		matched := filter(contacts, rung.keep)
		if len(matched) == 0 {
			continue
		}
		ranked := Rank(matched, now)
		if n := c.limit(); len(ranked) > n {
			ranked = ranked[:n]
		}
		return Result{Contacts: ranked, Stage: rung.stage}
	}
	return Result{Stage: StageNone}
}

func filter(contacts []*models.Contact, keep func(*models.Contact) bool) []*models.Contact {
	var out []*models.Contact
	for _, c := range contacts {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}
