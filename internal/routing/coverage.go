package routing

import (
	"strings"

	"hotline/internal/directory/models"
	textutil "hotline/pkg/platform/strings"
)

// easternWashington is the fixed set of counties an "Eastern Washington"
// coverage entry serves.
var easternWashington = map[string]struct{}{
	"spokane":      {},
	"stevens":      {},
	"pend oreille": {},
	"ferry":        {},
	"lincoln":      {},
	"whitman":      {},
	"garfield":     {},
	"columbia":     {},
	"walla walla":  {},
	"asotin":       {},
	"okanogan":     {},
	"chelan":       {},
	"douglas":      {},
	"grant":        {},
	"adams":        {},
	"kittitas":     {},
	"yakima":       {},
	"benton":       {},
	"franklin":     {},
}

// IsEasternWashingtonCounty reports membership in the fixed county table,
// with or without a "county" suffix.
func IsEasternWashingtonCounty(location string) bool {
	_, ok := easternWashington[countyName(textutil.Fold(location))]
	return ok
}

// ServesArea reports whether any coverage entry of c serves location. Rules
// are tried in order and the first match wins:
//
//  1. exact name, with or without a trailing "county" on either side
//  2. an entry containing "statewide" or "all of" serves anywhere
//  3. an entry containing "eastern washington" serves the fixed county table
//
// Nothing else matches; "King" never matches "King George".
func ServesArea(c *models.Contact, location string) bool {
	if c == nil {
		return false
	}
	want := countyName(textutil.Fold(location))
	if want == "" {
		return false
	}

	for _, entry := range c.Coverage {
		area := textutil.Fold(entry)
		if area == "" {
			continue
		}
		if countyName(area) == want {
			return true
		}
		if strings.Contains(area, "statewide") || strings.Contains(area, "all of") {
			return true
		}
		if strings.Contains(area, "eastern washington") {
			if _, ok := easternWashington[want]; ok {
				return true
			}
		}
	}
	return false
}

func countyName(folded string) string {
	return strings.TrimSpace(strings.TrimSuffix(folded, " county"))
}
