// Package spawn turns registered entity templates into live entities:
// it resolves ordered component-template references into merged component
// payloads and orchestrates composition against the host engine's
// collaborator interfaces.
package spawn

import (
	"log/slog"

	"github.com/duskhall/engine/internal/data"
)

// Per-kind shallow merge: fields set in src overwrite the accumulator,
// fields absent in src are preserved. Nested maps (stat modifiers) are
// replaced wholesale, never key-merged — a later template's partial
// modifier map drops earlier siblings. That is the documented contract,
// not an accident.

func mergeHealth(dst, src *data.HealthData) {
	if src.Max != nil {
		dst.Max = src.Max
	}
	if src.Current != nil {
		dst.Current = src.Current
	}
	if src.RegenRate != nil {
		dst.RegenRate = src.RegenRate
	}
	if src.Unkillable != nil {
		dst.Unkillable = src.Unkillable
	}
}

func mergeStats(dst, src *data.StatsData) {
	if src.Strength != nil {
		dst.Strength = src.Strength
	}
	if src.Dexterity != nil {
		dst.Dexterity = src.Dexterity
	}
	if src.Intelligence != nil {
		dst.Intelligence = src.Intelligence
	}
	if src.Charisma != nil {
		dst.Charisma = src.Charisma
	}
	if src.Willpower != nil {
		dst.Willpower = src.Willpower
	}
	if src.Toughness != nil {
		dst.Toughness = src.Toughness
	}
	if src.Attractiveness != nil {
		dst.Attractiveness = src.Attractiveness
	}
	if src.Modifiers != nil {
		dst.Modifiers = src.Modifiers
	}
}

func mergeAI(dst, src *data.AIData) {
	if src.Behavior != nil {
		dst.Behavior = src.Behavior
	}
	if src.AggroRange != nil {
		dst.AggroRange = src.AggroRange
	}
	if src.WanderRadius != nil {
		dst.WanderRadius = src.WanderRadius
	}
	if src.Aggressive != nil {
		dst.Aggressive = src.Aggressive
	}
}

func mergeRender(dst, src *data.RenderData) {
	if src.Sprite != nil {
		dst.Sprite = src.Sprite
	}
	if src.Layer != nil {
		dst.Layer = src.Layer
	}
	if src.Visible != nil {
		dst.Visible = src.Visible
	}
}

// resolveChain merges an ordered template reference chain and then the
// entity-level direct block, which always wins per field. Unresolvable
// references are skipped with a warning, never fatal.
func resolveChain[T any, P data.Identifiable](
	entityID string,
	refs []string,
	direct *T,
	reg *data.Registry[P],
	payload func(P) *T,
	merge func(dst, src *T),
) *T {
	if len(refs) == 0 {
		if direct == nil {
			return nil
		}
		out := *direct
		return &out
	}

	acc := new(T)
	for _, id := range refs {
		tpl, ok := reg.Get(id)
		if !ok {
			slog.Warn("unresolvable template reference, skipped",
				"entity", entityID, "id", id)
			continue
		}
		merge(acc, payload(tpl))
	}
	if direct != nil {
		merge(acc, direct)
	}
	return acc
}

// ResolveHealth returns the merged health payload for an entity template,
// or nil when neither templates nor direct fields contribute anything.
func ResolveHealth(tables *data.Tables, e *data.EntityTemplate) *data.HealthData {
	var refs []string
	if e.Templates != nil {
		refs = e.Templates.HealthTemplates
	}
	merged := resolveChain(e.ID, refs, e.Health, tables.Health,
		func(t *data.HealthTemplate) *data.HealthData { return &t.Data }, mergeHealth)
	if merged.IsEmpty() {
		return nil
	}
	return merged
}

// ResolveStats returns the merged stats payload, or nil when empty.
func ResolveStats(tables *data.Tables, e *data.EntityTemplate) *data.StatsData {
	var refs []string
	if e.Templates != nil {
		refs = e.Templates.StatsTemplates
	}
	merged := resolveChain(e.ID, refs, e.Stats, tables.Stats,
		func(t *data.StatsTemplate) *data.StatsData { return &t.Data }, mergeStats)
	if merged.IsEmpty() {
		return nil
	}
	return merged
}

// ResolveAI returns the merged AI payload, or nil when empty.
func ResolveAI(tables *data.Tables, e *data.EntityTemplate) *data.AIData {
	var refs []string
	if e.Templates != nil {
		refs = e.Templates.AITemplates
	}
	merged := resolveChain(e.ID, refs, e.AI, tables.AI,
		func(t *data.AITemplate) *data.AIData { return &t.Data }, mergeAI)
	if merged.IsEmpty() {
		return nil
	}
	return merged
}

// ResolveRender returns the merged render payload, or nil when empty.
func ResolveRender(tables *data.Tables, e *data.EntityTemplate) *data.RenderData {
	var refs []string
	if e.Templates != nil {
		refs = e.Templates.RenderTemplates
	}
	merged := resolveChain(e.ID, refs, e.Render, tables.Render,
		func(t *data.RenderTemplate) *data.RenderData { return &t.Data }, mergeRender)
	if merged.IsEmpty() {
		return nil
	}
	return merged
}
