package data

// Entity type tags. Class references only apply to the character-like
// variants (see CharacterTypes).
const (
	EntityTypePlayer   = "player"
	EntityTypeNPC      = "npc"
	EntityTypeMonster  = "monster"
	EntityTypeCreature = "creature"
	EntityTypeProp     = "prop"
)

// CharacterTypes are the entity type tags that may carry a class reference.
var CharacterTypes = map[string]bool{
	EntityTypePlayer:   true,
	EntityTypeNPC:      true,
	EntityTypeCreature: true,
}

// StatModifier is an additive/multiplicative contribution pair. Consumers
// apply Flat first, then Percent as a fractional multiplier (0.2 = +20%).
type StatModifier struct {
	Flat    float64 `json:"flat"`
	Percent float64 `json:"percent"`
}

// HealthData is the mergeable health payload. Pointer fields distinguish
// "absent" from zero so the merge pipeline can preserve earlier values.
type HealthData struct {
	Max        *float64 `json:"max,omitempty"`
	Current    *float64 `json:"current,omitempty"`
	RegenRate  *float64 `json:"regenRate,omitempty"`
	Unkillable *bool    `json:"unkillable,omitempty"`
}

// IsEmpty reports whether no field is set.
func (h *HealthData) IsEmpty() bool {
	return h == nil || (h.Max == nil && h.Current == nil && h.RegenRate == nil && h.Unkillable == nil)
}

// StatsData is the mergeable base-stats payload. Modifiers is a nested map
// and is replaced wholesale on merge, never key-merged.
type StatsData struct {
	Strength       *int32 `json:"strength,omitempty"`
	Dexterity      *int32 `json:"dexterity,omitempty"`
	Intelligence   *int32 `json:"intelligence,omitempty"`
	Charisma       *int32 `json:"charisma,omitempty"`
	Willpower      *int32 `json:"willpower,omitempty"`
	Toughness      *int32 `json:"toughness,omitempty"`
	Attractiveness *int32 `json:"attractiveness,omitempty"`

	Modifiers map[string]StatModifier `json:"modifiers,omitempty"`
}

func (s *StatsData) IsEmpty() bool {
	return s == nil || (s.Strength == nil && s.Dexterity == nil && s.Intelligence == nil &&
		s.Charisma == nil && s.Willpower == nil && s.Toughness == nil &&
		s.Attractiveness == nil && len(s.Modifiers) == 0)
}

// AIData is the mergeable AI payload. Runtime state is never part of the
// template: spawned entities always start idle.
type AIData struct {
	Behavior     *string `json:"behavior,omitempty"`
	AggroRange   *int32  `json:"aggroRange,omitempty"`
	WanderRadius *int32  `json:"wanderRadius,omitempty"`
	Aggressive   *bool   `json:"aggressive,omitempty"`
}

func (a *AIData) IsEmpty() bool {
	return a == nil || (a.Behavior == nil && a.AggroRange == nil && a.WanderRadius == nil && a.Aggressive == nil)
}

// RenderData is the mergeable render payload. Sprite is a name resolved
// through the host's sprite lookup at spawn time.
type RenderData struct {
	Sprite  *string `json:"sprite,omitempty"`
	Layer   *int32  `json:"layer,omitempty"`
	Visible *bool   `json:"visible,omitempty"`
}

func (r *RenderData) IsEmpty() bool {
	return r == nil || (r.Sprite == nil && r.Layer == nil && r.Visible == nil)
}

// RelationData describes faction standing. Not template-mixable; only
// entity-level.
type RelationData struct {
	Faction string `json:"faction"`
	Hostile bool   `json:"hostile"`
}

// ResistanceSpec is one element's resistance entry: flat reduction applied
// before percent resistance. Negative values denote vulnerability.
type ResistanceSpec struct {
	Flat    float64 `json:"flat"`
	Percent float64 `json:"percent"`
}

// RenderTemplate is a registered, named RenderData payload.
type RenderTemplate struct {
	ID          string
	Name        string
	Description string
	Data        RenderData
}

func (t *RenderTemplate) TemplateID() string { return t.ID }

// StatsTemplate is a registered, named StatsData payload.
type StatsTemplate struct {
	ID          string
	Name        string
	Description string
	Data        StatsData
}

func (t *StatsTemplate) TemplateID() string { return t.ID }

// AITemplate is a registered, named AIData payload.
type AITemplate struct {
	ID          string
	Name        string
	Description string
	Data        AIData
}

func (t *AITemplate) TemplateID() string { return t.ID }

// HealthTemplate is a registered, named HealthData payload.
type HealthTemplate struct {
	ID          string
	Name        string
	Description string
	Data        HealthData
}

func (t *HealthTemplate) TemplateID() string { return t.ID }

// Race carries per-attribute stat bonuses applied after component
// composition, plus innate ability tags.
type Race struct {
	ID          string
	Name        string
	Description string
	Bonuses     map[string]StatModifier
	Abilities   []string
}

func (r *Race) TemplateID() string { return r.ID }

// ExperienceFormula defines a geometric experience curve:
// xp(level) = floor(Base * Multiplier^(level-1)).
type ExperienceFormula struct {
	Base       float64
	Multiplier float64
}

// Class carries the experience curve, per-level ability unlocks and stat
// bonuses. ExperiencePerLevel, when present, overrides the formula for the
// levels it covers (index 0 = level 1).
type Class struct {
	ID          string
	Name        string
	Description string

	ExperienceFormula  ExperienceFormula
	ExperiencePerLevel []int64

	// AbilitiesByLevel maps level -> ability tags unlocked at that level.
	AbilitiesByLevel map[int32][]string
	Bonuses          map[string]StatModifier
}

func (c *Class) TemplateID() string { return c.ID }

// ItemProperty is a reusable bundle of item stat modifiers referenced by
// item templates.
type ItemProperty struct {
	ID        string
	Name      string
	Modifiers map[string]StatModifier
	Tags      []string
}

func (p *ItemProperty) TemplateID() string { return p.ID }

// ItemTemplate describes one item kind. Properties reference ItemProperty
// ids; their modifiers merge into the item's own the same way component
// templates merge into entities (later reference wins per stat).
type ItemTemplate struct {
	ID          string
	Name        string
	Description string
	Type        string
	Weight      float64
	Value       int64
	Properties  []string
	Modifiers   map[string]StatModifier
}

func (t *ItemTemplate) TemplateID() string { return t.ID }

// TemplateRefs is an entity template's ordered component-template reference
// set. Order is merge precedence, first to last ascending; an empty or
// absent list means no template contribution for that category.
type TemplateRefs struct {
	HealthTemplates []string `json:"healthTemplates,omitempty"`
	StatsTemplates  []string `json:"statsTemplates,omitempty"`
	AITemplates     []string `json:"aiTemplates,omitempty"`
	RenderTemplates []string `json:"renderTemplates,omitempty"`
}

// EntityTemplate is the spawnable entity description. Direct component
// blocks always take final precedence over every referenced template.
type EntityTemplate struct {
	ID   string
	Name string
	Type string

	Templates *TemplateRefs

	Health *HealthData
	Stats  *StatsData
	AI     *AIData
	Render *RenderData

	Relation *RelationData
	Race     string
	Class    string
	Level    int32

	ElementalResistance map[string]ResistanceSpec
	ElementalDamage     map[string]float64
	StatusEffects       []string
}

func (t *EntityTemplate) TemplateID() string { return t.ID }
