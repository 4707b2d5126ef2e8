package pokemon_test

import (
	"testing"

	"github.com/antonholmquist/jason"
	"github.com/gnames/pokedb/pkg/pokemon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bulbasaur = `{
  "id": 1,
  "name": "bulbasaur",
  "height": 7,
  "weight": 69,
  "stats": [
    {"base_stat": 45, "effort": 0, "stat": {"name": "hp"}},
    {"base_stat": 49, "effort": 0, "stat": {"name": "attack"}},
    {"base_stat": 49, "effort": 0, "stat": {"name": "defense"}},
    {"base_stat": 65, "effort": 1, "stat": {"name": "special-attack"}},
    {"base_stat": 65, "effort": 0, "stat": {"name": "special-defense"}},
    {"base_stat": 45, "effort": 0, "stat": {"name": "speed"}}
  ],
  "types": [
    {"slot": 1, "type": {"name": "grass"}},
    {"slot": 2, "type": {"name": "poison"}}
  ],
  "abilities": [
    {"ability": {"name": "overgrow"}, "is_hidden": false, "slot": 1},
    {"ability": {"name": "chlorophyll"}, "is_hidden": true, "slot": 3}
  ]
}`

func object(t *testing.T, s string) *jason.Object {
	t.Helper()
	obj, err := jason.NewObjectFromBytes([]byte(s))
	require.NoError(t, err)
	return obj
}

func TestNormalize(t *testing.T) {
	rec, err := pokemon.Normalize(object(t, bulbasaur))
	require.NoError(t, err)

	assert.Equal(t, 1, rec.PokedexNumber)
	assert.Equal(t, "bulbasaur", rec.Name)
	assert.Equal(t, "0.70", rec.Height)
	assert.Equal(t, "6.90", rec.Weight)
	assert.Equal(t, pokemon.Stats{
		HP: 45, Attack: 49, Defense: 49,
		SpecialAttack: 65, SpecialDefense: 65, Speed: 45,
	}, rec.Stats)
	assert.Equal(t, []string{"grass", "poison"}, rec.Types)
	assert.Equal(t, []pokemon.Ability{
		{Name: "overgrow", Hidden: false},
		{Name: "chlorophyll", Hidden: true},
	}, rec.Abilities)
}

func TestNormalizeStatsByName(t *testing.T) {
	tests := []struct {
		msg   string
		stats string
		want  pokemon.Stats
	}{
		{
			msg: "order does not matter",
			stats: `[
			  {"base_stat": 90, "stat": {"name": "speed"}},
			  {"base_stat": 35, "stat": {"name": "hp"}}
			]`,
			want: pokemon.Stats{HP: 35, Speed: 90},
		},
		{
			msg: "underscore names",
			stats: `[
			  {"base_stat": 50, "stat": {"name": "special_attack"}},
			  {"base_stat": 40, "stat": {"name": "special_defense"}}
			]`,
			want: pokemon.Stats{SpecialAttack: 50, SpecialDefense: 40},
		},
		{
			msg: "unknown stats are ignored",
			stats: `[
			  {"base_stat": 10, "stat": {"name": "accuracy"}},
			  {"base_stat": 55, "stat": {"name": "attack"}}
			]`,
			want: pokemon.Stats{Attack: 55},
		},
		{
			msg:   "flat entries",
			stats: `[{"name": "defense", "base_stat": 30}]`,
			want:  pokemon.Stats{Defense: 30},
		},
		{
			msg:   "empty list",
			stats: `[]`,
			want:  pokemon.Stats{},
		},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			js := `{"id": 25, "name": "pikachu", "stats": ` + v.stats + `}`
			rec, err := pokemon.Normalize(object(t, js))
			require.NoError(t, err)
			assert.Equal(t, v.want, rec.Stats)
		})
	}
}

func TestNormalizeDefaults(t *testing.T) {
	rec, err := pokemon.Normalize(object(t, `{"id": 132, "name": "ditto"}`))
	require.NoError(t, err)

	assert.Equal(t, 132, rec.PokedexNumber)
	assert.Equal(t, "", rec.Height)
	assert.Equal(t, "", rec.Weight)
	assert.Equal(t, pokemon.Stats{}, rec.Stats)
	assert.Empty(t, rec.Types)
	assert.Empty(t, rec.Abilities)
}

func TestNormalizeErrors(t *testing.T) {
	tests := []struct {
		msg string
		js  string
	}{
		{"no id", `{"name": "mew"}`},
		{"id is text", `{"id": "151", "name": "mew"}`},
		{"zero id", `{"id": 0, "name": "mew"}`},
		{"no name", `{"id": 151}`},
		{"blank name", `{"id": 151, "name": "  "}`},
		{"height is text", `{"id": 151, "name": "mew", "height": "4"}`},
		{"negative weight", `{"id": 151, "name": "mew", "weight": -40}`},
		{"stats not a list", `{"id": 151, "name": "mew", "stats": 100}`},
		{"stat value missing", `{"id": 151, "name": "mew",
			"stats": [{"stat": {"name": "hp"}}]}`},
		{"type without name", `{"id": 151, "name": "mew",
			"types": [{"slot": 1, "type": {}}]}`},
		{"ability without name", `{"id": 151, "name": "mew",
			"abilities": [{"is_hidden": true}]}`},
		{"hidden flag is text", `{"id": 151, "name": "mew",
			"abilities": [{"is_hidden": "true", "ability": {"name": "synchronize"}}]}`},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			_, err := pokemon.Normalize(object(t, v.js))
			require.Error(t, err)
			assert.True(t, pokemon.IsExtractionError(err))
		})
	}

	_, err := pokemon.Normalize(nil)
	assert.True(t, pokemon.IsExtractionError(err))
}

func TestNormalizeHiddenFlag(t *testing.T) {
	js := `{"id": 151, "name": "mew", "abilities": [
    {"ability": {"name": "synchronize"}},
    {"ability": {"name": "pressure"}, "is_hidden": null},
    {"ability": {"name": "telepathy"}, "is_hidden": true}
  ]}`
	rec, err := pokemon.Normalize(object(t, js))
	require.NoError(t, err)
	require.Len(t, rec.Abilities, 3)
	assert.False(t, rec.Abilities[0].Hidden, "absent flag")
	assert.False(t, rec.Abilities[1].Hidden, "null flag")
	assert.True(t, rec.Abilities[2].Hidden)
}

func TestNormalizeNullMeasure(t *testing.T) {
	js := `{"id": 7, "name": "squirtle", "height": null, "weight": 90}`
	rec, err := pokemon.Normalize(object(t, js))
	require.NoError(t, err)
	assert.Equal(t, "", rec.Height)
	assert.Equal(t, "9.00", rec.Weight)
}

func TestFormatMeasure(t *testing.T) {
	tests := []struct {
		raw  int64
		want string
	}{
		{0, "0.00"},
		{7, "0.70"},
		{69, "6.90"},
		{10, "1.00"},
		{1000, "100.00"},
		{9999, "999.90"},
	}

	for _, v := range tests {
		assert.Equal(t, v.want, pokemon.FormatMeasure(v.raw))
	}
}

func TestIsExtractionError(t *testing.T) {
	assert.False(t, pokemon.IsExtractionError(nil))
	assert.False(t, pokemon.IsExtractionError(assert.AnError))
	assert.True(t, pokemon.IsExtractionError(
		pokemon.ExtractionError("name", assert.AnError)))
}
