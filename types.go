package pluralize

import "sort"

// Category is a grammatical plural-form category. The set is closed:
// every value produced by this package is one of the constants below.
type Category string

const (
	CategoryZero     Category = "zero"
	CategorySingular Category = "singular"
	CategoryDual     Category = "dual"
	CategoryFew      Category = "few"
	CategoryMany     Category = "many"
	// CategoryPlural is the catch-all form. Every rule family produces it
	// as its final branch, so lookups keyed by category can always fall
	// back to it.
	CategoryPlural Category = "plural"
)

// Categories lists every category in evaluation-precedence order.
func Categories() []Category {
	return []Category{
		CategoryZero,
		CategorySingular,
		CategoryDual,
		CategoryFew,
		CategoryMany,
		CategoryPlural,
	}
}

func categoryOrder(category Category) int {
	switch category {
	case CategoryZero:
		return 0
	case CategorySingular:
		return 1
	case CategoryDual:
		return 2
	case CategoryFew:
		return 3
	case CategoryMany:
		return 4
	case CategoryPlural:
		return 5
	default:
		return 99
	}
}

type LocaleCatalog struct {
	Locale   Locale
	Messages map[string]Message
}

type Translations map[string]*LocaleCatalog

// Locale metadata for a catalog entry
type Locale struct {
	Code string
	Name string
}

type MessageMetadata struct {
	ID     string
	Domain string
	Locale string
}

type MessageVariant struct {
	Template  string
	UsesCount bool
	Source    string
}

// Message is a translation entry with one template per plural category.
type Message struct {
	MessageMetadata
	Variants map[Category]MessageVariant
}

// Variant returns the template for category, falling back to the plural
// catch-all when the requested category has no dedicated variant.
func (m Message) Variant(category Category) (MessageVariant, bool) {
	if m.Variants == nil {
		return MessageVariant{}, false
	}

	if variant, ok := m.Variants[category]; ok {
		return variant, true
	}

	variant, ok := m.Variants[CategoryPlural]
	return variant, ok
}

func (m *Message) SetVariant(category Category, variant MessageVariant) {
	if m.Variants == nil {
		m.Variants = make(map[Category]MessageVariant)
	}
	m.Variants[category] = variant
}

func (m Message) Content() string {
	if variant, ok := m.Variant(CategoryPlural); ok {
		return variant.Template
	}
	return ""
}

func (m *Message) SetContent(content string) {
	m.SetVariant(CategoryPlural, MessageVariant{Template: content})
}

// Categories returns the categories the message defines variants for, in
// evaluation-precedence order.
func (m Message) Categories() []Category {
	if len(m.Variants) == 0 {
		return nil
	}

	out := make([]Category, 0, len(m.Variants))
	for category := range m.Variants {
		out = append(out, category)
	}
	sort.Slice(out, func(i, j int) bool {
		return categoryOrder(out[i]) < categoryOrder(out[j])
	})
	return out
}

func (m Message) Clone() Message {
	out := Message{MessageMetadata: m.MessageMetadata}
	if len(m.Variants) == 0 {
		return out
	}

	out.Variants = make(map[Category]MessageVariant, len(m.Variants))
	for category, variant := range m.Variants {
		out.Variants[category] = variant
	}
	return out
}
