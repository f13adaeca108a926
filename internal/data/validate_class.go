package data

import "strconv"

// ValidateClass validates one class entry. The experience formula is
// checked against its domain constraints (base > 0, multiplier > 1);
// violations substitute the default curve with a warning, never an error.
func ValidateClass(raw any, id string) ValidationResult[*Class] {
	res := ValidationResult[*Class]{}
	m, ok := asObject(raw)
	if raw == nil || !ok {
		res.errorf("class payload is not an object")
		res.Data = DefaultClass()
		return res
	}

	cid := resolveID(m, id, "class", &res)
	name, desc := nameAndDescription(m, cid, &res)

	class := &Class{
		ID:          cid,
		Name:        name,
		Description: desc,
		ExperienceFormula: ExperienceFormula{
			Base:       DefaultExperienceBase,
			Multiplier: DefaultExperienceMultiplier,
		},
		AbilitiesByLevel: map[int32][]string{},
		Bonuses:          statModifiers(m, "bonuses", &res),
	}

	if obj, present, valid := objField(m, "experienceFormula"); present {
		if !valid {
			res.warnf("field \"experienceFormula\" is not an object, using default curve")
		} else {
			if base, ok := numField(obj, "base"); !ok {
				res.warnf("experienceFormula.base missing or not a number, using %v", DefaultExperienceBase)
			} else if base <= 0 {
				res.warnf("experienceFormula.base must be > 0, got %v, using %v", base, DefaultExperienceBase)
			} else {
				class.ExperienceFormula.Base = base
			}
			if mult, ok := numField(obj, "multiplier"); !ok {
				res.warnf("experienceFormula.multiplier missing or not a number, using %v", DefaultExperienceMultiplier)
			} else if mult <= 1 {
				res.warnf("experienceFormula.multiplier must be > 1, got %v, using %v", mult, DefaultExperienceMultiplier)
			} else {
				class.ExperienceFormula.Multiplier = mult
			}
		}
	} else {
		res.warnf("missing field \"experienceFormula\", using default curve")
	}

	if v, ok := m["experiencePerLevel"]; ok {
		if arr, ok := v.([]any); ok {
			for _, e := range arr {
				f, ok := e.(float64)
				if !ok {
					res.warnf("experiencePerLevel contains a non-number, table ignored")
					class.ExperiencePerLevel = nil
					break
				}
				class.ExperiencePerLevel = append(class.ExperiencePerLevel, int64(f))
			}
		} else {
			res.warnf("field \"experiencePerLevel\" is not an array, ignored")
		}
	}

	// Ability unlocks come keyed by level ("1": [...], "5": [...]).
	if obj, present, valid := objField(m, "abilities"); present {
		if !valid {
			res.warnf("field \"abilities\" is not an object, using empty map")
		} else {
			for levelKey, v := range obj {
				level, err := strconv.ParseInt(levelKey, 10, 32)
				if err != nil || level < 1 {
					res.warnf("abilities key %q is not a positive level, skipped", levelKey)
					continue
				}
				arr, ok := v.([]any)
				if !ok {
					res.warnf("abilities[%s] is not an array, skipped", levelKey)
					continue
				}
				var tags []string
				for _, e := range arr {
					if s, ok := e.(string); ok {
						tags = append(tags, s)
					}
				}
				class.AbilitiesByLevel[int32(level)] = tags
			}
		}
	}

	res.Data = class
	return res
}
