package element

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRand always returns the same value; below 0.25 forces the
// status-effect roll to succeed, at or above it to fail.
type fixedRand struct{ v float64 }

func (r fixedRand) Float64() float64 { return r.v }

func TestResolveDamage_RoundTrip(t *testing.T) {
	result := ResolveDamage(Damage{Element: Fire, Amount: 40}, nil, nil, nil)

	assert.Equal(t, 40.0, result.OriginalDamage)
	assert.Equal(t, 40.0, result.FinalDamage, "zero resistance, no rules: damage unchanged")
	assert.Equal(t, 0.0, result.ResistedAmount)
	assert.False(t, result.WasWeakness)
	assert.Empty(t, result.InteractionOccurred)
	assert.Nil(t, result.AppliedStatusEffect)
}

func TestResolveDamage_FlatThenPercent(t *testing.T) {
	resist := []Resistance{{Element: Fire, Flat: 10, Percent: 0.5}}

	result := ResolveDamage(Damage{Element: Fire, Amount: 30}, resist, nil, nil)

	// (30 - 10) * (1 - 0.5) = 10
	assert.Equal(t, 10.0, result.FinalDamage)
	assert.Equal(t, 20.0, result.ResistedAmount)
	assert.False(t, result.WasWeakness)
}

func TestResolveDamage_FlatFloorsAtZero(t *testing.T) {
	resist := []Resistance{{Element: Ice, Flat: 50, Percent: -2}}

	result := ResolveDamage(Damage{Element: Ice, Amount: 20}, resist, nil, nil)

	// Flat overshoot floors at 0 before the percent step, so even a large
	// vulnerability multiplier cannot resurrect the damage.
	assert.Equal(t, 0.0, result.FinalDamage)
	assert.False(t, result.WasWeakness)
}

func TestResolveDamage_NegativePercentIsWeakness(t *testing.T) {
	resist := []Resistance{{Element: Poison, Flat: 0, Percent: -0.5}}

	result := ResolveDamage(Damage{Element: Poison, Amount: 20}, resist, nil, nil)

	assert.Equal(t, 30.0, result.FinalDamage)
	assert.Equal(t, -10.0, result.ResistedAmount)
	assert.True(t, result.WasWeakness)
}

func TestResolveDamage_LightningWaterAmplifies(t *testing.T) {
	rule, ok := LookupRule(Lightning, Water)
	require.True(t, ok)
	require.Equal(t, 1.5, rule.DamageMultiplier)

	result := ResolveDamage(Damage{Element: Lightning, Amount: 20}, nil, []Rule{rule}, nil)

	assert.Equal(t, 30.0, result.FinalDamage)
	assert.Equal(t, Amplify, result.InteractionOccurred)
	assert.True(t, result.WasWeakness, "amplified damage reads as a net increase")
}

func TestResolveDamage_NullifyZeroes(t *testing.T) {
	rule, ok := LookupRule(Water, Fire)
	require.True(t, ok)
	require.Equal(t, Nullify, rule.Kind)

	result := ResolveDamage(Damage{Element: Water, Amount: 25}, nil, []Rule{rule}, nil)

	assert.Equal(t, 0.0, result.FinalDamage)
	assert.Equal(t, Nullify, result.InteractionOccurred)
}

func TestResolveDamage_RuleRequiresMatchingPrimary(t *testing.T) {
	rule, _ := LookupRule(Lightning, Water)

	result := ResolveDamage(Damage{Element: Fire, Amount: 20}, nil, []Rule{rule}, nil)

	assert.Equal(t, 20.0, result.FinalDamage)
	assert.Empty(t, result.InteractionOccurred)
}

func TestLookupRule_Asymmetric(t *testing.T) {
	// (fire, water) transforms, (water, fire) nullifies: both directions
	// are independent entries.
	fw, ok := LookupRule(Fire, Water)
	require.True(t, ok)
	wf, ok := LookupRule(Water, Fire)
	require.True(t, ok)

	assert.Equal(t, Transform, fw.Kind)
	assert.Equal(t, Nullify, wf.Kind)

	_, ok = LookupRule(Earth, Shadow)
	assert.False(t, ok, "undeclared pair has no rule")
}

func TestResolveDamage_StatusEffectRoll(t *testing.T) {
	dmg := Damage{Element: Fire, Amount: 40}

	hit := ResolveDamage(dmg, nil, nil, fixedRand{0.1})
	require.NotNil(t, hit.AppliedStatusEffect)
	assert.Equal(t, EffectBurning, hit.AppliedStatusEffect.Type)
	assert.Equal(t, EffectDuration(EffectBurning), hit.AppliedStatusEffect.Duration)
	assert.Equal(t, 20.0, hit.AppliedStatusEffect.Magnitude, "magnitude derives from final damage")

	miss := ResolveDamage(dmg, nil, nil, fixedRand{0.9})
	assert.Nil(t, miss.AppliedStatusEffect)

	// Exactly the base chance is a miss: the roll must be strictly below.
	edge := ResolveDamage(dmg, nil, nil, fixedRand{StatusEffectBaseChance})
	assert.Nil(t, edge.AppliedStatusEffect)
}

func TestResolveDamage_NoEffectMappingNoProposal(t *testing.T) {
	result := ResolveDamage(Damage{Element: Earth, Amount: 15}, nil, nil, fixedRand{0.0})
	assert.Nil(t, result.AppliedStatusEffect, "earth has no direct effect mapping")
}
