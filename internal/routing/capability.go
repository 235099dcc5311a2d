package routing

import (
	"strings"

	"hotline/internal/directory/models"
)

// HandlesAnimalType matches t against the contact's tags by case-insensitive
// substring in either direction, so "bat" finds "bats" and "raccoons" finds
// a "raccoon" tag.
//
// Short queries can over-match ("s" hits every plural tag). The vocabulary
// is small enough that this has not mattered, and callers pass tags rather
// than free text.
func HandlesAnimalType(c *models.Contact, t models.AnimalType) bool {
	if c == nil {
		return false
	}
	query := strings.ToLower(strings.TrimSpace(string(t)))
	if query == "" {
		return false
	}
	for _, tag := range c.AnimalTypes {
		have := strings.ToLower(strings.TrimSpace(string(tag)))
		if have == "" {
			continue
		}
		if strings.Contains(have, query) || strings.Contains(query, have) {
			return true
		}
	}
	return false
}

// ProvidesService is an exact, case-sensitive membership test.
func ProvidesService(c *models.Contact, s models.ServiceKind) bool {
	if c == nil || s == "" {
		return false
	}
	for _, have := range c.Services {
		if have == s {
			return true
		}
	}
	return false
}

// HandlesRabiesVector reads the contact's explicit flag. It is never derived
// from animal tags.
func HandlesRabiesVector(c *models.Contact) bool {
	return c != nil && c.HandlesRabiesVectorSpecies
}
