package schema

import (
	"gorm.io/gorm"
)

// AllModels returns all schema models for GORM AutoMigrate.
// Parents go before the junction tables that reference them.
func AllModels() []any {
	return []any{
		&Pokemon{},
		&Type{},
		&Ability{},
		&PokemonType{},
		&PokemonAbility{},
	}
}

// TableNames returns names of all tables in creation order.
func TableNames() []string {
	return []string{
		Pokemon{}.TableName(),
		Type{}.TableName(),
		Ability{}.TableName(),
		PokemonType{}.TableName(),
		PokemonAbility{}.TableName(),
	}
}

// Migrate runs GORM AutoMigrate to create missing tables, columns and
// indexes. It never drops data.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
