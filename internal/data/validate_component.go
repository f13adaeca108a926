package data

import "fmt"

// Component payload parsers. Shared between the component-template
// validators and the entity validator (direct blocks use the same shape).
// Malformed fields produce a warning and keep the field absent.

func parseHealthData(m map[string]any, warns *[]string) HealthData {
	var d HealthData
	parseNum(m, "max", warns, func(f float64) { d.Max = &f })
	parseNum(m, "current", warns, func(f float64) { d.Current = &f })
	parseNum(m, "regenRate", warns, func(f float64) { d.RegenRate = &f })
	parseBool(m, "unkillable", warns, func(b bool) { d.Unkillable = &b })
	return d
}

func parseStatsData(m map[string]any, warns *[]string) StatsData {
	var d StatsData
	attrs := []struct {
		key string
		dst **int32
	}{
		{"strength", &d.Strength},
		{"dexterity", &d.Dexterity},
		{"intelligence", &d.Intelligence},
		{"charisma", &d.Charisma},
		{"willpower", &d.Willpower},
		{"toughness", &d.Toughness},
		{"attractiveness", &d.Attractiveness},
	}
	for _, a := range attrs {
		dst := a.dst
		parseNum(m, a.key, warns, func(f float64) {
			v := int32(f)
			*dst = &v
		})
	}
	if obj, present, valid := objField(m, "modifiers"); present {
		if !valid {
			*warns = append(*warns, "field \"modifiers\" is not an object, ignored")
		} else {
			d.Modifiers = map[string]StatModifier{}
			for attr, v := range obj {
				entry, ok := asObject(v)
				if !ok {
					*warns = append(*warns, fmt.Sprintf("modifiers entry %q is not an object, skipped", attr))
					continue
				}
				var mod StatModifier
				if f, ok := numField(entry, "flat"); ok {
					mod.Flat = f
				}
				if p, ok := numField(entry, "percent"); ok {
					mod.Percent = p
				}
				d.Modifiers[attr] = mod
			}
		}
	}
	return d
}

func parseAIData(m map[string]any, warns *[]string) AIData {
	var d AIData
	parseStr(m, "behavior", warns, func(s string) { d.Behavior = &s })
	parseNum(m, "aggroRange", warns, func(f float64) { v := int32(f); d.AggroRange = &v })
	parseNum(m, "wanderRadius", warns, func(f float64) { v := int32(f); d.WanderRadius = &v })
	parseBool(m, "aggressive", warns, func(b bool) { d.Aggressive = &b })
	return d
}

func parseRenderData(m map[string]any, warns *[]string) RenderData {
	var d RenderData
	parseStr(m, "sprite", warns, func(s string) { d.Sprite = &s })
	parseNum(m, "layer", warns, func(f float64) { v := int32(f); d.Layer = &v })
	parseBool(m, "visible", warns, func(b bool) { d.Visible = &b })
	return d
}

func parseNum(m map[string]any, key string, warns *[]string, set func(float64)) {
	v, ok := m[key]
	if !ok {
		return
	}
	f, ok := v.(float64)
	if !ok {
		*warns = append(*warns, fmt.Sprintf("field %q is not a number, ignored", key))
		return
	}
	set(f)
}

func parseStr(m map[string]any, key string, warns *[]string, set func(string)) {
	v, ok := m[key]
	if !ok {
		return
	}
	s, ok := v.(string)
	if !ok {
		*warns = append(*warns, fmt.Sprintf("field %q is not a string, ignored", key))
		return
	}
	set(s)
}

func parseBool(m map[string]any, key string, warns *[]string, set func(bool)) {
	v, ok := m[key]
	if !ok {
		return
	}
	b, ok := v.(bool)
	if !ok {
		*warns = append(*warns, fmt.Sprintf("field %q is not a boolean, ignored", key))
		return
	}
	set(b)
}

// nameAndDescription fills the common name/description header fields.
// Missing name is a warning and defaults to the id.
func nameAndDescription[T any](m map[string]any, id string, res *ValidationResult[T]) (name, desc string) {
	name, ok := strField(m, "name")
	if !ok {
		res.warnf("missing field 'name', defaulting to id")
		name = id
	}
	desc, ok = strField(m, "description")
	if !ok {
		desc = ""
	}
	return name, desc
}

// ValidateHealthTemplate validates one health template entry.
func ValidateHealthTemplate(raw any, id string) ValidationResult[*HealthTemplate] {
	res := ValidationResult[*HealthTemplate]{}
	m, ok := asObject(raw)
	if raw == nil || !ok {
		res.errorf("health template payload is not an object")
		max := DefaultHealthMax
		res.Data = &HealthTemplate{ID: syntheticID("health"), Data: HealthData{Max: &max}}
		return res
	}
	tid := resolveID(m, id, "health", &res)
	name, desc := nameAndDescription(m, tid, &res)
	res.Data = &HealthTemplate{
		ID:          tid,
		Name:        name,
		Description: desc,
		Data:        parseHealthData(m, &res.Warnings),
	}
	return res
}

// ValidateStatsTemplate validates one stats template entry.
func ValidateStatsTemplate(raw any, id string) ValidationResult[*StatsTemplate] {
	res := ValidationResult[*StatsTemplate]{}
	m, ok := asObject(raw)
	if raw == nil || !ok {
		res.errorf("stats template payload is not an object")
		res.Data = &StatsTemplate{ID: syntheticID("stats")}
		return res
	}
	tid := resolveID(m, id, "stats", &res)
	name, desc := nameAndDescription(m, tid, &res)
	res.Data = &StatsTemplate{
		ID:          tid,
		Name:        name,
		Description: desc,
		Data:        parseStatsData(m, &res.Warnings),
	}
	return res
}

// ValidateAITemplate validates one AI template entry.
func ValidateAITemplate(raw any, id string) ValidationResult[*AITemplate] {
	res := ValidationResult[*AITemplate]{}
	m, ok := asObject(raw)
	if raw == nil || !ok {
		res.errorf("ai template payload is not an object")
		behavior := DefaultBehavior
		res.Data = &AITemplate{ID: syntheticID("ai"), Data: AIData{Behavior: &behavior}}
		return res
	}
	tid := resolveID(m, id, "ai", &res)
	name, desc := nameAndDescription(m, tid, &res)
	res.Data = &AITemplate{
		ID:          tid,
		Name:        name,
		Description: desc,
		Data:        parseAIData(m, &res.Warnings),
	}
	return res
}

// ValidateRenderTemplate validates one render template entry.
func ValidateRenderTemplate(raw any, id string) ValidationResult[*RenderTemplate] {
	res := ValidationResult[*RenderTemplate]{}
	m, ok := asObject(raw)
	if raw == nil || !ok {
		res.errorf("render template payload is not an object")
		sprite := DefaultSpriteName
		res.Data = &RenderTemplate{ID: syntheticID("render"), Data: RenderData{Sprite: &sprite}}
		return res
	}
	tid := resolveID(m, id, "render", &res)
	name, desc := nameAndDescription(m, tid, &res)
	res.Data = &RenderTemplate{
		ID:          tid,
		Name:        name,
		Description: desc,
		Data:        parseRenderData(m, &res.Warnings),
	}
	return res
}
