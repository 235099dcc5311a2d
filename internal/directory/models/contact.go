package models

import "strings"

// Contact is an organization that can receive a wildlife referral. Contacts
// are loaded once and shared by reference; nothing mutates them after load.
type Contact struct {
	Name              string `yaml:"name" json:"name"`
	Phone             string `yaml:"phone" json:"phone"`
	EmergencyPhone    string `yaml:"emergency_phone,omitempty" json:"emergency_phone,omitempty"`
	NonEmergencyPhone string `yaml:"non_emergency_phone,omitempty" json:"non_emergency_phone,omitempty"`

	Coverage []string `yaml:"coverage" json:"coverage"`

	// Hours is the human-readable description; Schedule is its parsed form.
	Hours    string   `yaml:"hours" json:"hours"`
	Schedule Schedule `yaml:"-" json:"-"`

	Services                   []ServiceKind `yaml:"services" json:"services"`
	AnimalTypes                []AnimalType  `yaml:"animal_types" json:"animal_types"`
	HandlesRabiesVectorSpecies bool          `yaml:"handles_rabies_vector_species" json:"handles_rabies_vector_species"`

	Address string `yaml:"address,omitempty" json:"address,omitempty"`
	URL     string `yaml:"url,omitempty" json:"url,omitempty"`
	Email   string `yaml:"email,omitempty" json:"email,omitempty"`
	Notes   string `yaml:"notes,omitempty" json:"notes,omitempty"`
}

// ParsedSchedule returns the load-time schedule, parsing Hours when the
// contact was built without going through the loader.
func (c *Contact) ParsedSchedule() Schedule {
	if c.Schedule.IsSet() {
		return c.Schedule
	}
	return ParseSchedule(c.Hours)
}

// IsAlwaysOpen reports a 24/7 contact.
func (c *Contact) IsAlwaysOpen() bool {
	return c.ParsedSchedule().Kind == ScheduleAlwaysOpen
}

// HasEmergencyService reports whether any service is emergency-class.
func (c *Contact) HasEmergencyService() bool {
	for _, s := range c.Services {
		if s.IsEmergencyClass() {
			return true
		}
	}
	return false
}

// City returns the second comma-separated part of Address
// ("1 Main St, Pullman, WA 99164" -> "Pullman"), or "".
func (c *Contact) City() string {
	parts := strings.Split(c.Address, ",")
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// IsStatewide reports coverage that names the whole state.
func (c *Contact) IsStatewide() bool {
	for _, area := range c.Coverage {
		if strings.Contains(strings.ToLower(area), "statewide") {
			return true
		}
	}
	return false
}
