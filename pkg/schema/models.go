// Package schema provides database schema models for pokedb.
// Five relations are declared: the pokemon entity table, two lookup
// tables (types, abilities) and two junction tables linking them to
// pokemon.
package schema

// Pokemon is one catalog entry with its physical measurements and base
// stats.
type Pokemon struct {
	// ID is a surrogate key.
	ID int `gorm:"primaryKey"`

	// PokedexNumber is the catalog ordinal, it determines the row uniquely.
	PokedexNumber int `gorm:"uniqueIndex;not null"`

	// Name is a display name.
	Name string `gorm:"type:varchar(100);not null"`

	// Height in meters, decimal text with two digits after the point.
	Height string `gorm:"type:text"`

	// Weight in kilograms, decimal text with two digits after the point.
	Weight string `gorm:"type:text"`

	HP             int `gorm:"column:hp;not null;default:0"`
	Attack         int `gorm:"not null;default:0"`
	Defense        int `gorm:"not null;default:0"`
	SpecialAttack  int `gorm:"not null;default:0"`
	SpecialDefense int `gorm:"not null;default:0"`
	Speed          int `gorm:"not null;default:0"`
}

// TableName keeps the singular table name used by the analysis queries.
func (Pokemon) TableName() string { return "pokemon" }

// Type is an elemental type classification.
type Type struct {
	ID   int    `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(20);uniqueIndex;not null"`
}

func (Type) TableName() string { return "types" }

// Ability is a named capability. Hidden-ness belongs to the
// pokemon-ability pair, not to the ability.
type Ability struct {
	ID   int    `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(50);uniqueIndex;not null"`
}

func (Ability) TableName() string { return "abilities" }

// PokemonType links pokemon to types.
type PokemonType struct {
	PokemonID int     `gorm:"primaryKey;autoIncrement:false"`
	TypeID    int     `gorm:"primaryKey;autoIncrement:false"`
	Pokemon   Pokemon `gorm:"constraint:OnDelete:CASCADE"`
	Type      Type    `gorm:"constraint:OnDelete:CASCADE"`
}

func (PokemonType) TableName() string { return "pokemon_types" }

// PokemonAbility links pokemon to abilities.
type PokemonAbility struct {
	PokemonID int     `gorm:"primaryKey;autoIncrement:false"`
	AbilityID int     `gorm:"primaryKey;autoIncrement:false"`
	IsHidden  bool    `gorm:"not null;default:false"`
	Pokemon   Pokemon `gorm:"constraint:OnDelete:CASCADE"`
	Ability   Ability `gorm:"constraint:OnDelete:CASCADE"`
}

func (PokemonAbility) TableName() string { return "pokemon_abilities" }
