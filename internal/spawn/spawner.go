package spawn

import (
	"log/slog"
	"sort"

	"github.com/duskhall/engine/internal/data"
	"github.com/duskhall/engine/internal/element"
)

// Handle is the host engine's opaque entity reference.
type Handle any

// EntityFactory is the host's entity-creation and component-attachment
// surface.
type EntityFactory interface {
	CreateEntity() Handle
	AttachComponent(h Handle, name string, component any)
	ReadComponent(h Handle, name string) any
}

// SpriteResolver maps a sprite name to a renderable tile reference.
type SpriteResolver interface {
	ResolveSprite(name string) (tile any, ok bool)
}

// DerivedStatsCalculator computes derived fields from base attributes.
type DerivedStatsCalculator interface {
	CalculateDerivedStats(base map[string]int32) map[string]float64
}

// BonusApplier applies racial and class bonus adjustments to a spawned
// entity. Failures are logged by the spawner and never abort a spawn.
type BonusApplier interface {
	ApplyRacialBonuses(h Handle, race *data.Race) error
	ApplyClassBonuses(h Handle, class *data.Class) error
}

// Spawner composes entities from registered templates. Registries are
// read-only by the time a spawner runs; spawning never throws to the
// caller — every failure degrades to a default or a nil handle.
type Spawner struct {
	tables  *data.Tables
	factory EntityFactory
	sprites SpriteResolver
	derived DerivedStatsCalculator
	bonuses BonusApplier
}

// NewSpawner creates a spawner over the given tables and host
// collaborators.
func NewSpawner(
	tables *data.Tables,
	factory EntityFactory,
	sprites SpriteResolver,
	derived DerivedStatsCalculator,
	bonuses BonusApplier,
) *Spawner {
	return &Spawner{
		tables:  tables,
		factory: factory,
		sprites: sprites,
		derived: derived,
		bonuses: bonuses,
	}
}

// Spawn creates an entity from the template id at the given coordinates.
// Returns nil when the template id is unknown.
func (s *Spawner) Spawn(templateID string, x, y int32) Handle {
	tpl, ok := s.tables.Entities.Get(templateID)
	if !ok {
		slog.Error("cannot spawn unknown entity template", "id", templateID)
		return nil
	}

	h := s.factory.CreateEntity()
	s.factory.AttachComponent(h, ComponentPosition, &PositionComponent{X: x, Y: y})

	s.attachHealth(h, tpl)
	s.attachStats(h, tpl)
	s.attachAI(h, tpl)
	s.attachRender(h, tpl)

	// Placeholder speed; the host derives real speed from stats.
	s.factory.AttachComponent(h, ComponentMovable, &MovableComponent{Speed: 1})

	if tpl.Relation != nil {
		s.factory.AttachComponent(h, ComponentRelation, &RelationComponent{
			Faction: tpl.Relation.Faction,
			Hostile: tpl.Relation.Hostile,
		})
	}
	s.attachElemental(h, tpl)
	if len(tpl.StatusEffects) > 0 {
		effects := make([]element.StatusEffect, 0, len(tpl.StatusEffects))
		for _, tag := range tpl.StatusEffects {
			effects = append(effects, element.StatusEffect{
				Type:     tag,
				Duration: element.EffectDuration(tag),
			})
		}
		s.factory.AttachComponent(h, ComponentStatusEffects, &StatusEffectsComponent{Active: effects})
	}

	s.attachRace(h, tpl)
	s.attachClass(h, tpl)

	return h
}

func (s *Spawner) attachHealth(h Handle, tpl *data.EntityTemplate) {
	merged := ResolveHealth(s.tables, tpl)
	if merged == nil {
		return
	}
	comp := &HealthComponent{}
	if merged.Max != nil {
		comp.Max = *merged.Max
	}
	if merged.Current != nil {
		comp.Current = *merged.Current
	} else {
		comp.Current = comp.Max
	}
	if merged.RegenRate != nil {
		comp.RegenRate = *merged.RegenRate
	}
	if merged.Unkillable != nil {
		comp.Unkillable = *merged.Unkillable
	}
	s.factory.AttachComponent(h, ComponentHealth, comp)
}

func (s *Spawner) attachStats(h Handle, tpl *data.EntityTemplate) {
	merged := ResolveStats(s.tables, tpl)
	if merged == nil {
		return
	}
	comp := &StatsComponent{
		Dexterity:      data.DefaultAttribute,
		Intelligence:   data.DefaultAttribute,
		Charisma:       data.DefaultAttribute,
		Willpower:      data.DefaultAttribute,
		Toughness:      data.DefaultAttribute,
		Attractiveness: data.DefaultAttribute,
	}
	// Strength has no default: it is expected to always be present
	// post-merge.
	if merged.Strength != nil {
		comp.Strength = *merged.Strength
	}
	if merged.Dexterity != nil {
		comp.Dexterity = *merged.Dexterity
	}
	if merged.Intelligence != nil {
		comp.Intelligence = *merged.Intelligence
	}
	if merged.Charisma != nil {
		comp.Charisma = *merged.Charisma
	}
	if merged.Willpower != nil {
		comp.Willpower = *merged.Willpower
	}
	if merged.Toughness != nil {
		comp.Toughness = *merged.Toughness
	}
	if merged.Attractiveness != nil {
		comp.Attractiveness = *merged.Attractiveness
	}
	if merged.Modifiers != nil {
		comp.Modifiers = merged.Modifiers
	}
	if s.derived != nil {
		comp.Derived = s.derived.CalculateDerivedStats(comp.Base())
	}
	s.factory.AttachComponent(h, ComponentStats, comp)
}

func (s *Spawner) attachAI(h Handle, tpl *data.EntityTemplate) {
	merged := ResolveAI(s.tables, tpl)
	if merged == nil {
		return
	}
	comp := &AIComponent{
		Behavior: data.DefaultBehavior,
		State:    AIStateIdle,
	}
	if merged.Behavior != nil {
		comp.Behavior = *merged.Behavior
	}
	if merged.AggroRange != nil {
		comp.AggroRange = *merged.AggroRange
	}
	if merged.WanderRadius != nil {
		comp.WanderRadius = *merged.WanderRadius
	}
	if merged.Aggressive != nil {
		comp.Aggressive = *merged.Aggressive
	}
	s.factory.AttachComponent(h, ComponentAI, comp)
}

func (s *Spawner) attachRender(h Handle, tpl *data.EntityTemplate) {
	merged := ResolveRender(s.tables, tpl)
	if merged == nil {
		return
	}
	comp := &RenderComponent{
		Sprite:  data.DefaultSpriteName,
		Visible: true,
	}
	if merged.Sprite != nil {
		comp.Sprite = *merged.Sprite
	}
	if merged.Layer != nil {
		comp.Layer = *merged.Layer
	}
	if merged.Visible != nil {
		comp.Visible = *merged.Visible
	}
	tile, ok := s.sprites.ResolveSprite(comp.Sprite)
	if !ok {
		// An invalid sprite reference is a content bug, not a crash.
		slog.Error("unknown sprite, substituting default",
			"entity", tpl.ID, "sprite", comp.Sprite)
		comp.Sprite = data.DefaultSpriteName
		tile, _ = s.sprites.ResolveSprite(data.DefaultSpriteName)
	}
	comp.Tile = tile
	s.factory.AttachComponent(h, ComponentRender, comp)
}

// attachElemental builds resistance and damage entries by iterating the
// template's per-element maps. Entries come out sorted by element tag so
// repeated spawns of one template are identical.
func (s *Spawner) attachElemental(h Handle, tpl *data.EntityTemplate) {
	if len(tpl.ElementalResistance) > 0 {
		tags := make([]string, 0, len(tpl.ElementalResistance))
		for tag := range tpl.ElementalResistance {
			tags = append(tags, tag)
		}
		sort.Strings(tags)
		entries := make([]element.Resistance, 0, len(tags))
		for _, tag := range tags {
			spec := tpl.ElementalResistance[tag]
			entries = append(entries, element.Resistance{
				Element: element.Element(tag),
				Flat:    spec.Flat,
				Percent: spec.Percent,
			})
		}
		s.factory.AttachComponent(h, ComponentElementalResistance,
			&ElementalResistanceComponent{Entries: entries})
	}

	if len(tpl.ElementalDamage) > 0 {
		tags := make([]string, 0, len(tpl.ElementalDamage))
		for tag := range tpl.ElementalDamage {
			tags = append(tags, tag)
		}
		sort.Strings(tags)
		entries := make([]element.Damage, 0, len(tags))
		for _, tag := range tags {
			entries = append(entries, element.Damage{
				Element: element.Element(tag),
				Amount:  tpl.ElementalDamage[tag],
			})
		}
		s.factory.AttachComponent(h, ComponentElementalDamage,
			&ElementalDamageComponent{Entries: entries})
	}
}

func (s *Spawner) attachRace(h Handle, tpl *data.EntityTemplate) {
	if tpl.Race == "" {
		return
	}
	if !s.tables.Races.Has(tpl.Race) {
		slog.Warn("entity references unknown race", "entity", tpl.ID, "race", tpl.Race)
	}
	race := s.tables.Races.GetOrDefault(tpl.Race, data.DefaultRace())
	s.factory.AttachComponent(h, ComponentRace, &RaceComponent{
		RaceID:    race.ID,
		Abilities: race.Abilities,
	})
	if s.bonuses != nil {
		if err := s.bonuses.ApplyRacialBonuses(h, race); err != nil {
			slog.Error("applying racial bonuses failed", "entity", tpl.ID, "race", race.ID, "err", err)
		}
	}
}

func (s *Spawner) attachClass(h Handle, tpl *data.EntityTemplate) {
	if tpl.Class == "" || !data.CharacterTypes[tpl.Type] {
		return
	}
	if !s.tables.Classes.Has(tpl.Class) {
		slog.Warn("entity references unknown class", "entity", tpl.ID, "class", tpl.Class)
	}
	class := s.tables.Classes.GetOrDefault(tpl.Class, data.DefaultClass())

	level := tpl.Level
	if level < 1 {
		level = 1
	}
	comp := &ClassComponent{
		ClassID:           class.ID,
		Level:             level,
		ExperienceToLevel: class.ExperienceForLevel(level),
		Abilities:         class.AbilitiesUpTo(level),
	}
	s.factory.AttachComponent(h, ComponentClass, comp)

	if s.bonuses != nil {
		if err := s.bonuses.ApplyClassBonuses(h, class); err != nil {
			slog.Error("applying class bonuses failed", "entity", tpl.ID, "class", class.ID, "err", err)
		}
	}
}
