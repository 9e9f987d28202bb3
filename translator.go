package pluralize

// Translator resolves a string for a given locale and message key.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// CountTranslator resolves plural-aware messages: given a message-key
// prefix and a count it selects the plural category for the locale,
// assembles "<prefix>.<category>" and renders the matching template.
type CountTranslator interface {
	Translator
	TranslateCount(locale, keyPrefix string, count int) (string, Category, error)
}

// SimpleTranslator serves translations from a Store. Lookups hit the
// exact locale code first (case-sensitive, matching the host convention
// of loading only the selected language file); configured fallback
// chains and the default locale are consulted afterwards.
type SimpleTranslator struct {
	store         Store
	defaultLocale string
	resolver      FallbackResolver
	formatter     Formatter
}

var _ CountTranslator = &SimpleTranslator{}

// TranslatorOption mutates SimpleTranslator during construction
type TranslatorOption func(*SimpleTranslator) error

func WithTranslatorDefaultLocale(locale string) TranslatorOption {
	return func(t *SimpleTranslator) error {
		t.defaultLocale = locale
		return nil
	}
}

func WithTranslatorFallbackResolver(resolver FallbackResolver) TranslatorOption {
	return func(t *SimpleTranslator) error {
		t.resolver = resolver
		return nil
	}
}

func WithTranslatorFormatter(formatter Formatter) TranslatorOption {
	return func(t *SimpleTranslator) error {
		t.formatter = formatter
		return nil
	}
}

func NewSimpleTranslator(store Store, opts ...TranslatorOption) (*SimpleTranslator, error) {
	translator := &SimpleTranslator{store: store}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(translator); err != nil {
			return nil, err
		}
	}

	if translator.store == nil {
		translator.store = NewStaticStore(nil)
	}

	if translator.formatter == nil {
		translator.formatter = FormatterFunc(sprintfFormatter)
	}

	return translator, nil
}

// Translate renders the catch-all template for locale/key.
func (t *SimpleTranslator) Translate(locale, key string, args ...any) (string, error) {
	if t == nil {
		return "", ErrMissingTranslation
	}

	for _, candidate := range t.candidates(locale) {
		msg, ok := t.store.Message(candidate, key)
		if !ok {
			continue
		}
		return t.formatter.Format(candidate, msg.Content(), args...)
	}

	return "", ErrMissingTranslation
}

// TranslateCount selects the plural category for locale/count, assembles
// the full key "<keyPrefix>.<category>" and renders the matching variant
// with the count substituted. The category is returned alongside the
// text so callers can report which form was chosen. When the requested
// variant is missing the message's plural catch-all is used; when the
// whole message is missing, ErrMissingTranslation is returned together
// with the assembled key so callers can degrade to it.
func (t *SimpleTranslator) TranslateCount(locale, keyPrefix string, count int) (string, Category, error) {
	category := ResolveCategory(locale, count)
	if t == nil {
		return keyPrefix + "." + string(category), category, ErrMissingTranslation
	}

	key := keyPrefix + "." + string(category)

	for _, candidate := range t.candidates(locale) {
		msg, ok := t.store.Message(candidate, key)
		if !ok {
			// Catalogs may key the whole message by prefix with
			// per-category variants instead of per-category keys.
			msg, ok = t.store.Message(candidate, keyPrefix)
		}
		if !ok {
			continue
		}

		variant, ok := msg.Variant(category)
		if !ok {
			continue
		}

		text, err := t.formatter.Format(candidate, variant.Template, count)
		if err != nil {
			return "", category, err
		}
		return text, category, nil
	}

	return key, category, ErrMissingTranslation
}

// candidates returns the ordered locale codes to consult for a lookup.
func (t *SimpleTranslator) candidates(locale string) []string {
	if locale == "" {
		locale = t.defaultLocale
	}
	if locale == "" {
		return nil
	}

	seen := make(map[string]struct{}, 4)
	candidates := make([]string, 0, 4)

	appendLocale := func(value string) {
		if value == "" {
			return
		}
		if _, ok := seen[value]; ok {
			return
		}
		seen[value] = struct{}{}
		candidates = append(candidates, value)
	}

	appendLocale(locale)

	if t.resolver != nil {
		for _, fallback := range t.resolver.Resolve(locale) {
			appendLocale(fallback)
		}
	}

	appendLocale(t.defaultLocale)

	return candidates
}
