package data

// ValidateEntity validates one entity template entry. Direct component
// blocks share their shape (and parsers) with the component templates;
// template references are not resolved here — unresolvable ids surface as
// merge-time warnings so a later-loaded template file can still satisfy
// them.
func ValidateEntity(raw any, id string) ValidationResult[*EntityTemplate] {
	res := ValidationResult[*EntityTemplate]{}
	m, ok := asObject(raw)
	if raw == nil || !ok {
		res.errorf("entity payload is not an object")
		res.Data = DefaultEntity()
		return res
	}

	eid := resolveID(m, id, "entity", &res)
	name, _ := nameAndDescription(m, eid, &res)

	ent := &EntityTemplate{
		ID:   eid,
		Name: name,
		Type: EntityTypeProp,
	}

	if t, ok := strField(m, "type"); ok {
		ent.Type = t
	} else {
		res.warnf("missing field 'type', defaulting to %q", ent.Type)
	}

	if obj, present, valid := objField(m, "templates"); present {
		if !valid {
			res.warnf("field \"templates\" is not an object, ignored")
		} else {
			refs := &TemplateRefs{}
			refs.HealthTemplates = refList(obj, "healthTemplates", &res)
			refs.StatsTemplates = refList(obj, "statsTemplates", &res)
			refs.AITemplates = refList(obj, "aiTemplates", &res)
			refs.RenderTemplates = refList(obj, "renderTemplates", &res)
			ent.Templates = refs
		}
	}

	if obj, present, valid := objField(m, "health"); present {
		if !valid {
			res.warnf("field \"health\" is not an object, ignored")
		} else {
			d := parseHealthData(obj, &res.Warnings)
			ent.Health = &d
		}
	}
	if obj, present, valid := objField(m, "stats"); present {
		if !valid {
			res.warnf("field \"stats\" is not an object, ignored")
		} else {
			d := parseStatsData(obj, &res.Warnings)
			ent.Stats = &d
		}
	}
	if obj, present, valid := objField(m, "ai"); present {
		if !valid {
			res.warnf("field \"ai\" is not an object, ignored")
		} else {
			d := parseAIData(obj, &res.Warnings)
			ent.AI = &d
		}
	}
	if obj, present, valid := objField(m, "render"); present {
		if !valid {
			res.warnf("field \"render\" is not an object, ignored")
		} else {
			d := parseRenderData(obj, &res.Warnings)
			ent.Render = &d
		}
	}

	if obj, present, valid := objField(m, "relation"); present {
		if !valid {
			res.warnf("field \"relation\" is not an object, ignored")
		} else {
			rel := &RelationData{}
			if f, ok := strField(obj, "faction"); ok {
				rel.Faction = f
			}
			if h, ok := boolField(obj, "hostile"); ok {
				rel.Hostile = h
			}
			ent.Relation = rel
		}
	}

	if race, ok := strField(m, "race"); ok {
		ent.Race = race
	} else if _, present := m["race"]; present {
		res.warnf("field \"race\" is not a string, ignored")
	}
	if class, ok := strField(m, "class"); ok {
		ent.Class = class
	} else if _, present := m["class"]; present {
		res.warnf("field \"class\" is not a string, ignored")
	}
	if lvl, ok := numField(m, "level"); ok {
		if lvl < 1 {
			res.warnf("level must be >= 1, got %v, using 1", lvl)
			ent.Level = 1
		} else {
			ent.Level = int32(lvl)
		}
	} else if ent.Class != "" {
		ent.Level = 1
	}

	if obj, present, valid := objField(m, "elementalResistance"); present {
		if !valid {
			res.warnf("field \"elementalResistance\" is not an object, ignored")
		} else {
			ent.ElementalResistance = map[string]ResistanceSpec{}
			for element, v := range obj {
				entry, ok := asObject(v)
				if !ok {
					res.warnf("elementalResistance[%s] is not an object, skipped", element)
					continue
				}
				var spec ResistanceSpec
				if f, ok := numField(entry, "flat"); ok {
					spec.Flat = f
				}
				if p, ok := numField(entry, "percent"); ok {
					spec.Percent = p
				}
				ent.ElementalResistance[element] = spec
			}
		}
	}

	if obj, present, valid := objField(m, "elementalDamage"); present {
		if !valid {
			res.warnf("field \"elementalDamage\" is not an object, ignored")
		} else {
			ent.ElementalDamage = map[string]float64{}
			for element, v := range obj {
				amount, ok := v.(float64)
				if !ok {
					res.warnf("elementalDamage[%s] is not a number, skipped", element)
					continue
				}
				ent.ElementalDamage[element] = amount
			}
		}
	}

	if effects, present, valid := strSliceField(m, "statusEffects"); present {
		if !valid {
			res.warnf("field \"statusEffects\" is not an array, ignored")
		} else {
			ent.StatusEffects = effects
		}
	}

	res.Data = ent
	return res
}

func refList(obj map[string]any, key string, res *ValidationResult[*EntityTemplate]) []string {
	refs, present, valid := strSliceField(obj, key)
	if present && !valid {
		res.warnf("templates.%s is not an array, ignored", key)
		return nil
	}
	return refs
}
