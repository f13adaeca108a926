package data

// ValidateRace validates one race entry. Races are foundational: entities
// reference them by id, so rejected entries are reported loudly by the
// loader, but the result still carries a usable default record.
func ValidateRace(raw any, id string) ValidationResult[*Race] {
	res := ValidationResult[*Race]{}
	m, ok := asObject(raw)
	if raw == nil || !ok {
		res.errorf("race payload is not an object")
		res.Data = DefaultRace()
		return res
	}

	rid := resolveID(m, id, "race", &res)
	name, desc := nameAndDescription(m, rid, &res)

	race := &Race{
		ID:          rid,
		Name:        name,
		Description: desc,
		Bonuses:     statModifiers(m, "bonuses", &res),
	}

	if abilities, present, valid := strSliceField(m, "abilities"); present {
		if !valid {
			res.warnf("field \"abilities\" is not an array, ignored")
		} else {
			race.Abilities = abilities
		}
	}

	res.Data = race
	return res
}
