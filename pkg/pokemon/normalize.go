package pokemon

import (
	"fmt"
	"strings"

	"github.com/antonholmquist/jason"
	"github.com/gnames/gnlib"
)

// statFields maps stat names of the catalog to the Stats fields.
// Both hyphen and underscore spellings are accepted.
var statFields = map[string]func(*Stats) *int{
	"hp":              func(s *Stats) *int { return &s.HP },
	"attack":          func(s *Stats) *int { return &s.Attack },
	"defense":         func(s *Stats) *int { return &s.Defense },
	"special-attack":  func(s *Stats) *int { return &s.SpecialAttack },
	"special_attack":  func(s *Stats) *int { return &s.SpecialAttack },
	"special-defense": func(s *Stats) *int { return &s.SpecialDefense },
	"special_defense": func(s *Stats) *int { return &s.SpecialDefense },
	"speed":           func(s *Stats) *int { return &s.Speed },
}

// Normalize extracts a typed Record from a catalog entry.
//
// The id and name are required, their absence rejects the whole entry.
// Height and weight are catalog units (decimeters, hectograms) converted
// to meters and kilograms. Stats are matched by name, so the order of
// stats in the entry does not matter. Unknown stats are ignored and
// missing ones stay zero.
func Normalize(obj *jason.Object) (Record, error) {
	var res Record
	if obj == nil {
		return res, ExtractionError("id", errEmpty)
	}
	fields := obj.Map()

	id, err := obj.GetInt64("id")
	if err != nil {
		return res, ExtractionError("id", err)
	}
	if id < 1 {
		return res, ExtractionError("id",
			fmt.Errorf("id %d is not positive", id))
	}
	res.PokedexNumber = int(id)

	name, err := obj.GetString("name")
	if err != nil {
		return res, ExtractionError("name", err)
	}
	name = strings.TrimSpace(gnlib.FixUtf8(name))
	if name == "" {
		return res, ExtractionError("name", errEmpty)
	}
	res.Name = name

	if res.Height, err = measure(obj, fields, "height"); err != nil {
		return res, err
	}
	if res.Weight, err = measure(obj, fields, "weight"); err != nil {
		return res, err
	}

	if res.Stats, err = stats(obj, fields); err != nil {
		return res, err
	}

	if res.Types, err = types(obj, fields); err != nil {
		return res, err
	}

	if res.Abilities, err = abilities(obj, fields); err != nil {
		return res, err
	}

	return res, nil
}

// FormatMeasure converts catalog units to display units, dividing by 10,
// and formats the result with exactly two decimals.
func FormatMeasure(raw int64) string {
	return fmt.Sprintf("%.2f", float64(raw)/10)
}

func measure(
	obj *jason.Object,
	fields map[string]*jason.Value,
	field string,
) (string, error) {
	if v, ok := fields[field]; !ok || v.Null() == nil {
		return "", nil
	}
	raw, err := obj.GetInt64(field)
	if err != nil {
		return "", ExtractionError(field, err)
	}
	if raw < 0 {
		return "", ExtractionError(field, errNegative)
	}
	return FormatMeasure(raw), nil
}

func stats(
	obj *jason.Object,
	fields map[string]*jason.Value,
) (Stats, error) {
	var res Stats
	if _, ok := fields["stats"]; !ok {
		return res, nil
	}

	entries, err := obj.GetObjectArray("stats")
	if err != nil {
		return res, ExtractionError("stats", err)
	}

	for _, v := range entries {
		name, err := v.GetString("stat", "name")
		if err != nil {
			// flat form {"name": "hp", "base_stat": 45}
			if name, err = v.GetString("name"); err != nil {
				continue
			}
		}
		field, ok := statFields[strings.ToLower(name)]
		if !ok {
			continue
		}
		val, err := v.GetInt64("base_stat")
		if err != nil {
			return res, ExtractionError("stats."+name, err)
		}
		*field(&res) = int(val)
	}
	return res, nil
}

func types(
	obj *jason.Object,
	fields map[string]*jason.Value,
) ([]string, error) {
	if _, ok := fields["types"]; !ok {
		return nil, nil
	}

	entries, err := obj.GetObjectArray("types")
	if err != nil {
		return nil, ExtractionError("types", err)
	}

	res := make([]string, 0, len(entries))
	for _, v := range entries {
		name, err := tagName(v, "type")
		if err != nil {
			return nil, ExtractionError("types", err)
		}
		res = append(res, name)
	}
	return res, nil
}

func abilities(
	obj *jason.Object,
	fields map[string]*jason.Value,
) ([]Ability, error) {
	if _, ok := fields["abilities"]; !ok {
		return nil, nil
	}

	entries, err := obj.GetObjectArray("abilities")
	if err != nil {
		return nil, ExtractionError("abilities", err)
	}

	res := make([]Ability, 0, len(entries))
	for _, v := range entries {
		name, err := tagName(v, "ability")
		if err != nil {
			return nil, ExtractionError("abilities", err)
		}
		// absent or null flag means visible
		var hidden bool
		if flag, err := v.GetValue("is_hidden"); err == nil && flag.Null() != nil {
			if hidden, err = v.GetBoolean("is_hidden"); err != nil {
				return nil, ExtractionError("abilities", err)
			}
		}
		res = append(res, Ability{Name: name, Hidden: hidden})
	}
	return res, nil
}

// tagName reads a name of a tag either from a nested object
// ({"type": {"name": "fire"}}) or from the entry itself ({"name": "fire"}).
func tagName(v *jason.Object, key string) (string, error) {
	name, err := v.GetString(key, "name")
	if err != nil {
		var errFlat error
		if name, errFlat = v.GetString("name"); errFlat != nil {
			return "", err
		}
	}
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "", errEmpty
	}
	return name, nil
}
