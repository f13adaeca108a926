package data

import "log/slog"

// ResolveItemModifiers merges an item's referenced property modifiers with
// its own, following the same precedence as entity template chains:
// properties in reference order, later wins per stat, the item's own
// modifiers last. Unresolvable property references are skipped with a
// warning.
func ResolveItemModifiers(tables *Tables, item *ItemTemplate) map[string]StatModifier {
	merged := map[string]StatModifier{}
	for _, ref := range item.Properties {
		prop, ok := tables.ItemProperties.Get(ref)
		if !ok {
			slog.Warn("unresolvable item property reference, skipped",
				"item", item.ID, "property", ref)
			continue
		}
		for stat, mod := range prop.Modifiers {
			merged[stat] = mod
		}
	}
	for stat, mod := range item.Modifiers {
		merged[stat] = mod
	}
	return merged
}
