package spawn

import (
	"github.com/duskhall/engine/internal/data"
	"github.com/duskhall/engine/internal/element"
)

// Component names as attached to entity handles.
const (
	ComponentPosition            = "position"
	ComponentHealth              = "health"
	ComponentStats               = "stats"
	ComponentAI                  = "ai"
	ComponentRender              = "render"
	ComponentMovable             = "movable"
	ComponentRelation            = "relation"
	ComponentElementalResistance = "elementalResistance"
	ComponentElementalDamage     = "elementalDamage"
	ComponentStatusEffects       = "statusEffects"
	ComponentRace                = "race"
	ComponentClass               = "class"
)

// AIStateIdle is the state every spawned entity starts in, regardless of
// template content.
const AIStateIdle = "idle"

// PositionComponent holds caller-supplied coordinates, attached verbatim.
type PositionComponent struct {
	X int32
	Y int32
}

// HealthComponent is the fully-defaulted health payload. Current defaults
// to Max when the template chain left it unset.
type HealthComponent struct {
	Max        float64
	Current    float64
	RegenRate  float64
	Unkillable bool
}

// StatsComponent carries base attributes (defaulted individually except
// strength), template modifiers, and host-computed derived fields.
type StatsComponent struct {
	Strength       int32
	Dexterity      int32
	Intelligence   int32
	Charisma       int32
	Willpower      int32
	Toughness      int32
	Attractiveness int32

	Modifiers map[string]data.StatModifier
	Derived   map[string]float64
}

// Base returns the attribute map handed to the derived-stats collaborator.
func (s *StatsComponent) Base() map[string]int32 {
	return map[string]int32{
		"strength":       s.Strength,
		"dexterity":      s.Dexterity,
		"intelligence":   s.Intelligence,
		"charisma":       s.Charisma,
		"willpower":      s.Willpower,
		"toughness":      s.Toughness,
		"attractiveness": s.Attractiveness,
	}
}

// AIComponent is the spawned AI payload.
type AIComponent struct {
	Behavior     string
	AggroRange   int32
	WanderRadius int32
	Aggressive   bool
	State        string
}

// RenderComponent holds the resolved tile alongside the sprite name that
// produced it.
type RenderComponent struct {
	Sprite  string
	Tile    any
	Layer   int32
	Visible bool
}

// MovableComponent is always attached; Speed is a placeholder until the
// host derives real movement speed from stats.
type MovableComponent struct {
	Speed float64
}

// RelationComponent mirrors the template's relation block.
type RelationComponent struct {
	Faction string
	Hostile bool
}

// ElementalResistanceComponent lists per-element resistance entries built
// by splitting the template map's flat and percent sub-fields.
type ElementalResistanceComponent struct {
	Entries []element.Resistance
}

// ElementalDamageComponent lists the entity's innate damage instances.
type ElementalDamageComponent struct {
	Entries []element.Damage
}

// StatusEffectsComponent is the entity's (initially empty or
// template-seeded) active effect collection.
type StatusEffectsComponent struct {
	Active []element.StatusEffect
}

// RaceComponent records the resolved race and its innate abilities.
type RaceComponent struct {
	RaceID    string
	Abilities []string
}

// ClassComponent records the resolved class, starting level, experience
// required for the next level, and every ability unlocked up to the
// starting level.
type ClassComponent struct {
	ClassID           string
	Level             int32
	ExperienceToLevel int64
	Abilities         []string
}
