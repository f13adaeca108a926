package data

import (
	"log/slog"
	"sort"
)

// Identifiable is satisfied by every template kind stored in a Registry.
type Identifiable interface {
	TemplateID() string
}

// Registry is a keyed store for one template kind. Instances are owned by a
// Tables composition root and populated during the single-threaded load
// phase; no locking, concurrent mutation during spawning is not supported.
type Registry[T Identifiable] struct {
	kind  string
	items map[string]T
}

// NewRegistry creates an empty registry. kind is used in log lines and
// MissingDataError ("class", "race", "stats template", ...).
func NewRegistry[T Identifiable](kind string) *Registry[T] {
	return &Registry[T]{
		kind:  kind,
		items: make(map[string]T),
	}
}

// Register stores item under its template id. Re-registering an existing id
// overwrites the previous entry and logs a warning; it never fails.
func (r *Registry[T]) Register(item T) {
	id := item.TemplateID()
	if _, exists := r.items[id]; exists {
		slog.Warn("overwriting registered template", "kind", r.kind, "id", id)
	}
	r.items[id] = item
}

// Get returns the item for id, comma-ok.
func (r *Registry[T]) Get(id string) (T, bool) {
	item, ok := r.items[id]
	return item, ok
}

// GetOrDefault returns the item for id, or fallback (with a warning) when id
// is not registered.
func (r *Registry[T]) GetOrDefault(id string, fallback T) T {
	if item, ok := r.items[id]; ok {
		return item
	}
	slog.Warn("template not found, using fallback", "kind", r.kind, "id", id)
	return fallback
}

// MustGet is the strict lookup variant: a miss is an error, not a fallback.
func (r *Registry[T]) MustGet(id string) (T, error) {
	item, ok := r.items[id]
	if !ok {
		var zero T
		return zero, &MissingDataError{DataType: r.kind, DataID: id}
	}
	return item, nil
}

// Has reports whether id is registered.
func (r *Registry[T]) Has(id string) bool {
	_, ok := r.items[id]
	return ok
}

// IDs returns all registered ids, sorted for deterministic reports.
func (r *Registry[T]) IDs() []string {
	ids := make([]string, 0, len(r.items))
	for id := range r.items {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// All returns all registered items in id order.
func (r *Registry[T]) All() []T {
	ids := r.IDs()
	items := make([]T, 0, len(ids))
	for _, id := range ids {
		items = append(items, r.items[id])
	}
	return items
}

// Clear drops every entry. Called at full-reload time; individual deletion
// is intentionally not supported.
func (r *Registry[T]) Clear() {
	clear(r.items)
}

// Count returns the number of registered items.
func (r *Registry[T]) Count() int {
	return len(r.items)
}

// Tables is the composition root owning one registry per template kind.
// A loader populates it; a spawner reads it.
type Tables struct {
	Render   *Registry[*RenderTemplate]
	Stats    *Registry[*StatsTemplate]
	AI       *Registry[*AITemplate]
	Health   *Registry[*HealthTemplate]
	Races    *Registry[*Race]
	Classes  *Registry[*Class]
	Items    *Registry[*ItemTemplate]
	Entities *Registry[*EntityTemplate]

	// ItemProperties come from a keyed map, not an array; property records
	// merge into items by reference the same way component templates merge
	// into entities.
	ItemProperties *Registry[*ItemProperty]
}

// NewTables creates an empty registry set.
func NewTables() *Tables {
	return &Tables{
		Render:         NewRegistry[*RenderTemplate]("render template"),
		Stats:          NewRegistry[*StatsTemplate]("stats template"),
		AI:             NewRegistry[*AITemplate]("ai template"),
		Health:         NewRegistry[*HealthTemplate]("health template"),
		Races:          NewRegistry[*Race]("race"),
		Classes:        NewRegistry[*Class]("class"),
		Items:          NewRegistry[*ItemTemplate]("item"),
		Entities:       NewRegistry[*EntityTemplate]("entity template"),
		ItemProperties: NewRegistry[*ItemProperty]("item property"),
	}
}

// Clear empties every registry.
func (t *Tables) Clear() {
	t.Render.Clear()
	t.Stats.Clear()
	t.AI.Clear()
	t.Health.Clear()
	t.Races.Clear()
	t.Classes.Clear()
	t.Items.Clear()
	t.Entities.Clear()
	t.ItemProperties.Clear()
}
