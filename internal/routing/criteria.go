package routing

import (
	"time"

	"hotline/internal/directory/models"
	dErrors "hotline/pkg/domain-errors"
)

// Urgency is the caller-assessed severity of the situation.
type Urgency string

const (
	UrgencyRoutine   Urgency = "routine"
	UrgencyEmergency Urgency = "emergency"
)

func (u Urgency) IsValid() bool {
	return u == "" || u == UrgencyRoutine || u == UrgencyEmergency
}

// DefaultMaxResults caps a result when Criteria.MaxResults is zero.
const DefaultMaxResults = 3

// Criteria describes one lookup. Zero-valued fields skip their filter.
type Criteria struct {
	County     string             `json:"county,omitempty"`
	AnimalType models.AnimalType  `json:"animal_type,omitempty"`
	Service    models.ServiceKind `json:"service,omitempty"`
	// RequireOpen keeps only contacts open at the resolution instant.
	RequireOpen bool `json:"require_open,omitempty"`
	// OpenAt keeps only contacts open at this specific instant. It takes
	// precedence over the resolution instant.
	OpenAt       *time.Time `json:"open_at,omitempty"`
	RabiesVector bool       `json:"rabies_vector,omitempty"`
	Urgency      Urgency    `json:"urgency,omitempty"`
	MaxResults   int        `json:"max_results,omitempty"`
}

// Validate rejects criteria of the wrong shape. Values that are well-formed
// but match nothing are not errors; the fallback ladder handles those.
func (c Criteria) Validate() error {
	if !c.Urgency.IsValid() {
		return dErrors.Field("urgency", "must be emergency or routine")
	}
	if c.Service != "" && !c.Service.IsValid() {
		return dErrors.Field("service", "unknown service "+string(c.Service))
	}
	if c.MaxResults < 0 {
		return dErrors.Field("max_results", "must not be negative")
	}
	if c.OpenAt != nil && c.OpenAt.IsZero() {
		return dErrors.Field("open_at", "must be a valid instant")
	}
	return nil
}

func (c Criteria) IsEmergency() bool {
	return c.Urgency == UrgencyEmergency
}

func (c Criteria) limit() int {
	if c.MaxResults <= 0 {
		return DefaultMaxResults
	}
	return c.MaxResults
}

// openCheck returns the instant open-ness is evaluated at, and whether the
// open filter applies at all.
func (c Criteria) openCheck(now time.Time) (time.Time, bool) {
	if c.OpenAt != nil {
		return *c.OpenAt, true
	}
	if c.RequireOpen || c.IsEmergency() {
		return now, true
	}
	return time.Time{}, false
}
