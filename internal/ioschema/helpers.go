package ioschema

import (
	"fmt"
	"strings"

	"github.com/gnames/pokedb/pkg/schema"
)

const insertTypeSQL = `INSERT INTO types (name) VALUES ($1)`

// truncateTypesSQL empties types and every table referencing it.
func truncateTypesSQL() string {
	return fmt.Sprintf(
		"TRUNCATE TABLE %s RESTART IDENTITY CASCADE",
		schema.Type{}.TableName(),
	)
}

// cleanVocabulary trims and lowercases type names. Empty or
// repeated names are rejected, they would break the order of ids.
func cleanVocabulary(vocabulary []string) ([]string, error) {
	if len(vocabulary) == 0 {
		return nil, VocabularyError("", "vocabulary is empty")
	}

	seen := make(map[string]struct{}, len(vocabulary))
	res := make([]string, 0, len(vocabulary))
	for _, v := range vocabulary {
		name := strings.ToLower(strings.TrimSpace(v))
		if name == "" {
			return nil, VocabularyError(v, "empty type name")
		}
		if _, ok := seen[name]; ok {
			return nil, VocabularyError(v, "repeated type name")
		}
		seen[name] = struct{}{}
		res = append(res, name)
	}
	return res, nil
}
