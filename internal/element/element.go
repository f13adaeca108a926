// Package element implements the elemental interaction engine: a fixed
// rule table for pairwise element interactions, damage resolution against
// flat and percent resistances, and probabilistic status-effect proposal.
package element

// Element identifies one damage element. Tags match the per-element map
// keys used in entity templates.
type Element string

const (
	Fire      Element = "fire"
	Water     Element = "water"
	Lightning Element = "lightning"
	Ice       Element = "ice"
	Earth     Element = "earth"
	Wind      Element = "wind"
	Poison    Element = "poison"
	Shadow    Element = "shadow"
)

// InteractionKind classifies what a pairwise rule does to damage.
type InteractionKind string

const (
	Amplify   InteractionKind = "amplify"
	Counter   InteractionKind = "counter"
	Nullify   InteractionKind = "nullify"
	Transform InteractionKind = "transform"
)

// Rule is one directed (primary, secondary) interaction. The table is
// asymmetric: (A,B) and (B,A) are independent entries.
type Rule struct {
	Primary          Element
	Secondary        Element
	Kind             InteractionKind
	DamageMultiplier float64
	StatusEffect     string
}

// Status effect tags proposed by elements.
const (
	EffectBurning  = "burning"
	EffectSoaked   = "soaked"
	EffectShocked  = "shocked"
	EffectChilled  = "chilled"
	EffectPoisoned = "poisoned"
	EffectWeakened = "weakened"
	EffectBlinded  = "blinded"
	EffectSteamed  = "steamed"
	EffectMuddied  = "muddied"
)

// rules is the hand-authored interaction table. Not data-driven: combat
// balance lives in code next to the resolution logic that consumes it.
var rules = map[[2]Element]Rule{
	{Lightning, Water}: {Lightning, Water, Amplify, 1.5, EffectShocked},
	{Water, Lightning}: {Water, Lightning, Amplify, 1.5, EffectShocked},
	{Fire, Ice}:        {Fire, Ice, Counter, 0.5, ""},
	{Ice, Fire}:        {Ice, Fire, Counter, 0.5, ""},
	{Water, Fire}:      {Water, Fire, Nullify, 0, ""},
	{Fire, Water}:      {Fire, Water, Transform, 0.75, EffectSteamed},
	{Fire, Wind}:       {Fire, Wind, Amplify, 1.25, EffectBurning},
	{Wind, Fire}:       {Wind, Fire, Amplify, 1.25, ""},
	{Earth, Lightning}: {Earth, Lightning, Nullify, 0, ""},
	{Earth, Water}:     {Earth, Water, Transform, 0.75, EffectMuddied},
	{Ice, Water}:       {Ice, Water, Amplify, 1.25, EffectChilled},
	{Poison, Shadow}:   {Poison, Shadow, Amplify, 1.5, EffectPoisoned},
	{Shadow, Poison}:   {Shadow, Poison, Amplify, 1.5, EffectWeakened},
	{Wind, Earth}:      {Wind, Earth, Counter, 0.5, ""},
}

// LookupRule returns the rule for the exact ordered pair, comma-ok.
func LookupRule(primary, secondary Element) (Rule, bool) {
	r, ok := rules[[2]Element{primary, secondary}]
	return r, ok
}

// effectByElement is the direct element -> status effect mapping, distinct
// from the pairwise interaction table. Elements without an entry never
// propose an effect.
var effectByElement = map[Element]string{
	Fire:      EffectBurning,
	Water:     EffectSoaked,
	Lightning: EffectShocked,
	Ice:       EffectChilled,
	Poison:    EffectPoisoned,
	Shadow:    EffectBlinded,
}

// effectDuration is the fixed per-type duration table, in turns.
var effectDuration = map[string]int32{
	EffectBurning:  3,
	EffectSoaked:   2,
	EffectShocked:  2,
	EffectChilled:  3,
	EffectPoisoned: 5,
	EffectWeakened: 4,
	EffectBlinded:  2,
	EffectSteamed:  1,
	EffectMuddied:  2,
}

// EffectForElement returns the status effect tag directly associated with
// an element, comma-ok.
func EffectForElement(e Element) (string, bool) {
	tag, ok := effectByElement[e]
	return tag, ok
}

// EffectDuration returns the default duration in turns for an effect tag.
func EffectDuration(tag string) int32 {
	return effectDuration[tag]
}
