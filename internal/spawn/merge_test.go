package spawn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duskhall/engine/internal/data"
)

func f64(v float64) *float64 { return &v }
func i32(v int32) *int32     { return &v }

func healthTables(templates ...*data.HealthTemplate) *data.Tables {
	tables := data.NewTables()
	for _, tpl := range templates {
		tables.Health.Register(tpl)
	}
	return tables
}

func TestResolveHealth_IdentityLaw(t *testing.T) {
	tables := data.NewTables()
	direct := &data.HealthData{Max: f64(30), RegenRate: f64(1)}

	// Absent reference list: merged output equals the direct fields.
	got := ResolveHealth(tables, &data.EntityTemplate{ID: "e", Health: direct})
	require.NotNil(t, got)
	assert.Equal(t, *direct, *got)

	// Empty reference list behaves identically.
	got = ResolveHealth(tables, &data.EntityTemplate{
		ID:        "e",
		Templates: &data.TemplateRefs{HealthTemplates: []string{}},
		Health:    direct,
	})
	require.NotNil(t, got)
	assert.Equal(t, *direct, *got)
}

func TestResolveHealth_NothingContributes(t *testing.T) {
	tables := data.NewTables()
	assert.Nil(t, ResolveHealth(tables, &data.EntityTemplate{ID: "e"}))
}

func TestResolveHealth_OverrideLaw(t *testing.T) {
	tables := healthTables(
		&data.HealthTemplate{ID: "a", Data: data.HealthData{Max: f64(10)}},
		&data.HealthTemplate{ID: "b", Data: data.HealthData{Max: f64(20)}},
	)
	ent := &data.EntityTemplate{
		ID:        "e",
		Templates: &data.TemplateRefs{HealthTemplates: []string{"a", "b"}},
		Health:    &data.HealthData{Max: f64(30)},
	}

	got := ResolveHealth(tables, ent)
	require.NotNil(t, got)
	assert.Equal(t, 30.0, *got.Max, "direct fields win over every referenced template")
}

func TestResolveHealth_MergeOrderLaw(t *testing.T) {
	// A sets {max:10, regenRate:2}, B sets {regenRate:3}: later wins per
	// field, earlier fields absent in B are preserved.
	tables := healthTables(
		&data.HealthTemplate{ID: "a", Data: data.HealthData{Max: f64(10), RegenRate: f64(2)}},
		&data.HealthTemplate{ID: "b", Data: data.HealthData{RegenRate: f64(3)}},
	)
	ent := &data.EntityTemplate{
		ID:        "e",
		Templates: &data.TemplateRefs{HealthTemplates: []string{"a", "b"}},
	}

	got := ResolveHealth(tables, ent)
	require.NotNil(t, got)
	assert.Equal(t, 10.0, *got.Max)
	assert.Equal(t, 3.0, *got.RegenRate)
}

func TestResolveHealth_UnresolvableReferenceSkipped(t *testing.T) {
	tables := healthTables(
		&data.HealthTemplate{ID: "a", Data: data.HealthData{Max: f64(10)}},
		&data.HealthTemplate{ID: "c", Data: data.HealthData{RegenRate: f64(5)}},
	)
	ent := &data.EntityTemplate{
		ID:        "e",
		Templates: &data.TemplateRefs{HealthTemplates: []string{"a", "ghost", "c"}},
	}

	got := ResolveHealth(tables, ent)
	require.NotNil(t, got, "a bad reference mid-chain must not abort the merge")
	assert.Equal(t, 10.0, *got.Max)
	assert.Equal(t, 5.0, *got.RegenRate)
}

func TestResolveStats_ChainThenDirectOverride(t *testing.T) {
	tables := data.NewTables()
	tables.Stats.Register(&data.StatsTemplate{ID: "a", Data: data.StatsData{
		Strength: i32(5), Toughness: i32(8),
	}})
	tables.Stats.Register(&data.StatsTemplate{ID: "b", Data: data.StatsData{
		Strength: i32(7),
	}})
	ent := &data.EntityTemplate{
		ID:        "e",
		Templates: &data.TemplateRefs{StatsTemplates: []string{"a", "b"}},
		Stats:     &data.StatsData{Charisma: i32(9)},
	}

	got := ResolveStats(tables, ent)
	require.NotNil(t, got)
	assert.Equal(t, int32(7), *got.Strength, "b overrides a")
	assert.Equal(t, int32(8), *got.Toughness, "preserved from a")
	assert.Equal(t, int32(9), *got.Charisma, "direct fields win")
	assert.Nil(t, got.Dexterity, "defaulting happens at component build, not merge")
}

func TestResolveStats_NestedModifiersReplacedWholesale(t *testing.T) {
	// The merge is shallow: a later template's partial modifier map drops
	// sibling keys from an earlier one.
	tables := data.NewTables()
	tables.Stats.Register(&data.StatsTemplate{ID: "a", Data: data.StatsData{
		Modifiers: map[string]data.StatModifier{
			"strength":  {Flat: 2},
			"dexterity": {Percent: 0.1},
		},
	}})
	tables.Stats.Register(&data.StatsTemplate{ID: "b", Data: data.StatsData{
		Modifiers: map[string]data.StatModifier{
			"strength": {Flat: 5},
		},
	}})
	ent := &data.EntityTemplate{
		ID:        "e",
		Templates: &data.TemplateRefs{StatsTemplates: []string{"a", "b"}},
	}

	got := ResolveStats(tables, ent)
	require.NotNil(t, got)
	assert.Equal(t, data.StatModifier{Flat: 5}, got.Modifiers["strength"])
	assert.NotContains(t, got.Modifiers, "dexterity",
		"nested map is replaced wholesale, not key-merged")
}

func TestResolveRender_TemplateChain(t *testing.T) {
	tables := data.NewTables()
	sprite := "goblin"
	tables.Render.Register(&data.RenderTemplate{ID: "base", Data: data.RenderData{
		Sprite: &sprite, Layer: i32(2),
	}})
	ent := &data.EntityTemplate{
		ID:        "e",
		Templates: &data.TemplateRefs{RenderTemplates: []string{"base"}},
	}

	got := ResolveRender(tables, ent)
	require.NotNil(t, got)
	assert.Equal(t, "goblin", *got.Sprite)
	assert.Equal(t, int32(2), *got.Layer)
}

func TestResolveAI_DirectOnly(t *testing.T) {
	behavior := "hunter"
	tables := data.NewTables()
	ent := &data.EntityTemplate{
		ID: "e",
		AI: &data.AIData{Behavior: &behavior, AggroRange: i32(6)},
	}

	got := ResolveAI(tables, ent)
	require.NotNil(t, got)
	assert.Equal(t, "hunter", *got.Behavior)
	assert.Equal(t, int32(6), *got.AggroRange)
}

func TestResolveChain_DoesNotMutateTemplates(t *testing.T) {
	tables := healthTables(
		&data.HealthTemplate{ID: "a", Data: data.HealthData{Max: f64(10)}},
	)
	ent := &data.EntityTemplate{
		ID:        "e",
		Templates: &data.TemplateRefs{HealthTemplates: []string{"a"}},
		Health:    &data.HealthData{Max: f64(99)},
	}

	_ = ResolveHealth(tables, ent)

	tpl, _ := tables.Health.Get("a")
	assert.Equal(t, 10.0, *tpl.Data.Max, "registered template payload must stay pristine")
}
