// Package pokemon converts loosely-typed catalog entries into strictly
// typed records ready to be stored.
package pokemon

// Record is a normalized catalog entry.
type Record struct {
	// PokedexNumber is the catalog ordinal of the entry.
	PokedexNumber int

	// Name is the display name.
	Name string

	// Height in meters as text with exactly two decimals, for example "0.70".
	// Empty if the catalog entry had no height.
	Height string

	// Weight in kilograms as text with exactly two decimals.
	// Empty if the catalog entry had no weight.
	Weight string

	Stats Stats

	// Types are names of elemental types of the entry.
	Types []string

	Abilities []Ability
}

// Stats are the six base stats. A stat missing from the catalog entry is
// zero.
type Stats struct {
	HP             int
	Attack         int
	Defense        int
	SpecialAttack  int
	SpecialDefense int
	Speed          int
}

// Ability is a named capability of an entry. Hidden is a property of
// the entry-ability pair.
type Ability struct {
	Name   string
	Hidden bool
}
