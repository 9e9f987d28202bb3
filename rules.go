package pluralize

// RuleFamily is an immutable cardinal-plural policy mapping a count to a
// Category. Every family is total: some branch always matches, with
// CategoryPlural as the final catch-all.
//
// Behavior for negative counts is unspecified; the rule tables are
// defined over non-negative integers only.
type RuleFamily struct {
	// Name identifies the family, e.g. "default2" or "slavic3-pl".
	Name string

	categories []Category
	eval       func(count int) Category
}

// Category evaluates the family's rule against count.
func (f RuleFamily) Category(count int) Category {
	if f.eval == nil {
		return CategoryPlural
	}
	return f.eval(count)
}

// Categories returns the set of categories the family can produce, in
// evaluation-precedence order. Callers use it to validate that a message
// catalog defines a variant for every reachable form.
func (f RuleFamily) Categories() []Category {
	if len(f.categories) == 0 {
		return []Category{CategoryPlural}
	}
	out := make([]Category, len(f.categories))
	copy(out, f.categories)
	return out
}

// SlavicVariant selects between the three documented slavic3 rule
// sub-variants. Russian/Ukrainian and Polish agree at count == 1 but
// differ in how they get there: the Polish and Czech/Slovak rules
// special-case the literal 1, while the Russian rule reaches it through
// the mod-10/mod-100 ending test. The variants are kept separate rather
// than merged.
type SlavicVariant int

const (
	SlavicRussian SlavicVariant = iota
	SlavicPolish
	SlavicCzechSlovak
)

// Default2 is the generic two-form rule used by English, German, French,
// Portuguese, Spanish and any language with no dedicated entry.
var Default2 = RuleFamily{
	Name:       "default2",
	categories: []Category{CategorySingular, CategoryPlural},
	eval: func(count int) Category {
		if count == 1 {
			return CategorySingular
		}
		return CategoryPlural
	},
}

// Slavic3 returns the three-form rule for the given sub-variant.
func Slavic3(variant SlavicVariant) RuleFamily {
	switch variant {
	case SlavicPolish:
		return slavic3Polish
	case SlavicCzechSlovak:
		return slavic3CzechSlovak
	default:
		return slavic3Russian
	}
}

// slavic3Russian: ends in 1 but not 11 -> singular; ends in 2-4 but not
// 12-14 -> few; everything else -> plural.
var slavic3Russian = RuleFamily{
	Name:       "slavic3-ru",
	categories: []Category{CategorySingular, CategoryFew, CategoryPlural},
	eval: func(count int) Category {
		rem10 := count % 10
		rem100 := count % 100

		if rem10 == 1 && rem100 != 11 {
			return CategorySingular
		}
		if rem10 >= 2 && rem10 <= 4 && !(rem100 >= 12 && rem100 <= 14) {
			return CategoryFew
		}
		return CategoryPlural
	},
}

// slavic3Polish: exactly 1 -> singular; the few branch matches the
// Russian ending test.
var slavic3Polish = RuleFamily{
	Name:       "slavic3-pl",
	categories: []Category{CategorySingular, CategoryFew, CategoryPlural},
	eval: func(count int) Category {
		if count == 1 {
			return CategorySingular
		}

		rem10 := count % 10
		rem100 := count % 100
		if rem10 >= 2 && rem10 <= 4 && !(rem100 >= 12 && rem100 <= 14) {
			return CategoryFew
		}
		return CategoryPlural
	},
}

// slavic3CzechSlovak: exactly 1 -> singular; 2-4 -> few; else plural.
var slavic3CzechSlovak = RuleFamily{
	Name:       "slavic3-cs",
	categories: []Category{CategorySingular, CategoryFew, CategoryPlural},
	eval: func(count int) Category {
		if count == 1 {
			return CategorySingular
		}
		if count >= 2 && count <= 4 {
			return CategoryFew
		}
		return CategoryPlural
	},
}

// Celtic5 is the five-form rule for Irish and Scottish Gaelic.
var Celtic5 = RuleFamily{
	Name: "celtic5",
	categories: []Category{
		CategorySingular, CategoryDual, CategoryFew, CategoryMany, CategoryPlural,
	},
	eval: func(count int) Category {
		if count == 1 {
			return CategorySingular
		}
		if count == 2 {
			return CategoryDual
		}
		if count >= 3 && count <= 6 {
			return CategoryFew
		}
		if count >= 7 && count <= 10 {
			return CategoryMany
		}
		return CategoryPlural
	},
}

// Arabic6 is the six-form rule. The plural branch covers exact hundreds
// and any value whose mod-100 remainder falls outside 3..99.
var Arabic6 = RuleFamily{
	Name: "arabic6",
	categories: []Category{
		CategoryZero, CategorySingular, CategoryDual,
		CategoryFew, CategoryMany, CategoryPlural,
	},
	eval: func(count int) Category {
		if count == 0 {
			return CategoryZero
		}
		if count == 1 {
			return CategorySingular
		}
		if count == 2 {
			return CategoryDual
		}

		rem100 := count % 100
		if rem100 >= 3 && rem100 <= 10 {
			return CategoryFew
		}
		if rem100 >= 11 && rem100 <= 99 {
			return CategoryMany
		}
		return CategoryPlural
	},
}

// Invariant1 is the single-form rule for languages whose nouns do not
// inflect for number (Japanese, Chinese, Korean, Vietnamese, Thai, Hindi).
var Invariant1 = RuleFamily{
	Name:       "invariant1",
	categories: []Category{CategoryPlural},
	eval: func(int) Category {
		return CategoryPlural
	},
}
