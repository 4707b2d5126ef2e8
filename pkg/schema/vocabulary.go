package schema

// TypeVocabulary is the fixed list of types in the order of their catalog
// ids. Reseeding inserts them in this order, so the surrogate id of a type
// matches its catalog id.
var TypeVocabulary = []string{
	"normal",
	"fighting",
	"flying",
	"poison",
	"ground",
	"rock",
	"bug",
	"ghost",
	"steel",
	"fire",
	"water",
	"grass",
	"electric",
	"psychic",
	"ice",
	"dragon",
	"dark",
	"fairy",
}
