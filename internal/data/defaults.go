package data

// Named defaults substituted by the validators. Gameplay must never crash
// from malformed content, so every required field has a synthesizable value.
const (
	// DefaultAttribute is the base value for unset attributes other than
	// strength (which is expected to always be present post-merge).
	DefaultAttribute int32 = 10

	// DefaultHealthMax backs the default health template.
	DefaultHealthMax float64 = 10

	// DefaultSpriteName substitutes unknown sprite references at spawn.
	DefaultSpriteName = "placeholder"

	// DefaultBehavior is the AI behavior for templates that don't set one.
	DefaultBehavior = "passive"

	// Experience curve fallbacks, used when a class formula is missing or
	// violates its domain constraints (base > 0, multiplier > 1).
	DefaultExperienceBase       float64 = 100
	DefaultExperienceMultiplier float64 = 1.5
)

// DefaultRace is the fallback race record returned by GetOrDefault lookups
// and by ValidateRace on nil input.
func DefaultRace() *Race {
	return &Race{
		ID:          "default_race",
		Name:        "Unknown Race",
		Description: "",
		Bonuses:     map[string]StatModifier{},
		Abilities:   nil,
	}
}

// DefaultClass is the fallback class record.
func DefaultClass() *Class {
	return &Class{
		ID:          "default_class",
		Name:        "Unknown Class",
		Description: "",
		ExperienceFormula: ExperienceFormula{
			Base:       DefaultExperienceBase,
			Multiplier: DefaultExperienceMultiplier,
		},
		AbilitiesByLevel: map[int32][]string{},
		Bonuses:          map[string]StatModifier{},
	}
}

// DefaultItem is the fallback item record.
func DefaultItem() *ItemTemplate {
	return &ItemTemplate{
		ID:        "default_item",
		Name:      "Unknown Item",
		Type:      "misc",
		Modifiers: map[string]StatModifier{},
	}
}

// DefaultEntity is the fallback entity template. It is deliberately inert:
// no component blocks, so spawning it attaches only position and movement.
func DefaultEntity() *EntityTemplate {
	return &EntityTemplate{
		ID:   "default_entity",
		Name: "Unknown Entity",
		Type: EntityTypeProp,
	}
}
