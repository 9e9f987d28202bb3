package pluralize

// languageFamilies maps a normalized base-language subtag to its rule
// family. Built once at init, read-only afterwards; adding a language is
// a table edit, not a new branch.
var languageFamilies = map[string]RuleFamily{
	"en": Default2,
	"de": Default2,
	"fr": Default2,
	"pt": Default2,
	"es": Default2,

	"ru": Slavic3(SlavicRussian),
	"uk": Slavic3(SlavicRussian),
	"pl": Slavic3(SlavicPolish),
	"cs": Slavic3(SlavicCzechSlovak),
	"sk": Slavic3(SlavicCzechSlovak),

	"ga": Celtic5,
	"gd": Celtic5,

	"ar": Arabic6,

	"ja": Invariant1,
	"zh": Invariant1,
	"ko": Invariant1,
	"vi": Invariant1,
	"th": Invariant1,
	"hi": Invariant1,
}

// FamilyFor returns the rule family for a language tag. The tag may be
// bare ("ru"), region-qualified with either separator ("ru_RU", "pt-BR"),
// or empty; dispatch uses the case-folded base subtag. Unknown tags get
// Default2.
func FamilyFor(languageTag string) RuleFamily {
	if family, ok := languageFamilies[baseSubtag(languageTag)]; ok {
		return family
	}
	return Default2
}

// ResolveCategory maps a language tag and a count to the plural category
// the language needs for that count. It is pure and total: malformed or
// unknown tags degrade to the generic two-form rule instead of failing,
// and every family ends in a catch-all branch, so some category is always
// returned. Safe for concurrent use; the dispatch table is immutable.
//
// Counts are expected to be non-negative; results for negative counts are
// unspecified.
func ResolveCategory(languageTag string, count int) Category {
	return FamilyFor(languageTag).Category(count)
}
