package data

// ValidateItem validates one item template entry.
func ValidateItem(raw any, id string) ValidationResult[*ItemTemplate] {
	res := ValidationResult[*ItemTemplate]{}
	m, ok := asObject(raw)
	if raw == nil || !ok {
		res.errorf("item payload is not an object")
		res.Data = DefaultItem()
		return res
	}

	iid := resolveID(m, id, "item", &res)
	name, desc := nameAndDescription(m, iid, &res)

	item := &ItemTemplate{
		ID:          iid,
		Name:        name,
		Description: desc,
		Type:        "misc",
		Modifiers:   statModifiers(m, "modifiers", &res),
	}

	if t, ok := strField(m, "type"); ok {
		item.Type = t
	} else if _, present := m["type"]; present {
		res.warnf("field \"type\" is not a string, using %q", item.Type)
	}
	if w, ok := numField(m, "weight"); ok {
		item.Weight = w
	}
	if v, ok := numField(m, "value"); ok {
		item.Value = int64(v)
	}
	if props, present, valid := strSliceField(m, "properties"); present {
		if !valid {
			res.warnf("field \"properties\" is not an array, ignored")
		} else {
			item.Properties = props
		}
	}

	res.Data = item
	return res
}

// ValidateItemProperty validates one entry of the itemProperties keyed map.
// The map key is the property id, so id is always supplied.
func ValidateItemProperty(raw any, id string) ValidationResult[*ItemProperty] {
	res := ValidationResult[*ItemProperty]{}
	m, ok := asObject(raw)
	if raw == nil || !ok {
		res.errorf("item property payload is not an object")
		res.Data = &ItemProperty{ID: syntheticID("item_property"), Modifiers: map[string]StatModifier{}}
		return res
	}

	pid := resolveID(m, id, "item_property", &res)
	name, _ := nameAndDescription(m, pid, &res)

	prop := &ItemProperty{
		ID:        pid,
		Name:      name,
		Modifiers: statModifiers(m, "modifiers", &res),
	}
	if tags, present, valid := strSliceField(m, "tags"); present {
		if !valid {
			res.warnf("field \"tags\" is not an array, ignored")
		} else {
			prop.Tags = tags
		}
	}

	res.Data = prop
	return res
}
