package element

// StatusEffectBaseChance is the probability that a damage instance whose
// element carries a direct status-effect mapping proposes that effect.
const StatusEffectBaseChance = 0.25

// statusMagnitudeRatio scales final damage into effect magnitude.
const statusMagnitudeRatio = 0.5

// Rand is the injectable random source. *math/rand/v2.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Damage is one elemental damage instance.
type Damage struct {
	Element Element
	Amount  float64
}

// Resistance is a target's entry for one element. Negative values denote
// vulnerability rather than resistance.
type Resistance struct {
	Element Element
	Flat    float64
	Percent float64
}

// StatusEffect is a proposed effect. The engine never attaches it; combat
// code owns the target's effect collection and may set Source.
type StatusEffect struct {
	Type      string
	Duration  int32
	Magnitude float64
	Source    any
}

// DamageResult reports one resolved damage instance.
type DamageResult struct {
	OriginalDamage float64
	FinalDamage    float64
	Element        Element
	ResistedAmount float64
	WasWeakness    bool

	AppliedStatusEffect *StatusEffect
	InteractionOccurred InteractionKind
}

// ResolveDamage resolves one damage instance against the target's
// resistances and the currently-active interaction rules.
//
// Order: flat reduction first (floored at zero before the percent step),
// then percent resistance, then the first active rule whose primary element
// matches the attacking element. The status-effect roll uses the injected
// random source; rng may be nil, which disables the roll entirely.
func ResolveDamage(dmg Damage, resistances []Resistance, active []Rule, rng Rand) DamageResult {
	result := DamageResult{
		OriginalDamage: dmg.Amount,
		Element:        dmg.Element,
	}

	final := dmg.Amount
	for _, res := range resistances {
		if res.Element != dmg.Element {
			continue
		}
		final -= res.Flat
		if final < 0 {
			final = 0
		}
		final *= 1 - res.Percent
		break
	}

	for _, rule := range active {
		if rule.Primary != dmg.Element {
			continue
		}
		final *= rule.DamageMultiplier
		result.InteractionOccurred = rule.Kind
		break
	}

	result.FinalDamage = final
	result.ResistedAmount = dmg.Amount - final
	result.WasWeakness = result.ResistedAmount < 0

	if rng != nil && final > 0 {
		if tag, ok := EffectForElement(dmg.Element); ok && rng.Float64() < StatusEffectBaseChance {
			result.AppliedStatusEffect = &StatusEffect{
				Type:      tag,
				Duration:  EffectDuration(tag),
				Magnitude: final * statusMagnitudeRatio,
			}
		}
	}

	return result
}
