package pluralize

const (
	metadataPluralCategory = "plural.category"
	metadataPluralCount    = "plural.count"
)

// TranslationHook observes translation calls. Hooks are the library's
// observation surface; attach logging or metrics here.
type TranslationHook interface {
	BeforeTranslate(ctx *TranslatorHookContext)
	AfterTranslate(ctx *TranslatorHookContext)
}

type TranslatorHookContext struct {
	Locale   string
	Key      string
	Args     []any
	Result   string
	Error    error
	Metadata map[string]any
}

func (ctx *TranslatorHookContext) SetMetadata(key string, value any) {
	if ctx == nil || key == "" {
		return
	}
	if ctx.Metadata == nil {
		ctx.Metadata = make(map[string]any)
	}
	ctx.Metadata[key] = value
}

func (ctx *TranslatorHookContext) MetadataValue(key string) (any, bool) {
	if ctx == nil || ctx.Metadata == nil {
		return nil, false
	}
	val, ok := ctx.Metadata[key]
	return val, ok
}

// PluralMetadata returns plural-specific hook metadata if present.
func (ctx *TranslatorHookContext) PluralMetadata() (PluralHookMetadata, bool) {
	if ctx == nil || len(ctx.Metadata) == 0 {
		return PluralHookMetadata{}, false
	}

	meta := PluralHookMetadata{}
	seen := false

	if value, ok := ctx.Metadata[metadataPluralCategory]; ok {
		if category, okCast := asCategory(value); okCast {
			meta.Category = category
			seen = true
		}
	}

	if value, ok := ctx.Metadata[metadataPluralCount]; ok {
		if count, okCast := value.(int); okCast {
			meta.Count = count
			seen = true
		}
	}

	return meta, seen
}

func asCategory(value any) (Category, bool) {
	switch v := value.(type) {
	case Category:
		return v, true
	case string:
		return Category(v), true
	default:
		return "", false
	}
}

type PluralHookMetadata struct {
	Category Category
	Count    int
}

// TranslationHookFuncs adapts bare functions to TranslationHook.
type TranslationHookFuncs struct {
	Before func(ctx *TranslatorHookContext)
	After  func(ctx *TranslatorHookContext)
}

func (h TranslationHookFuncs) BeforeTranslate(ctx *TranslatorHookContext) {
	if h.Before != nil {
		h.Before(ctx)
	}
}

func (h TranslationHookFuncs) AfterTranslate(ctx *TranslatorHookContext) {
	if h.After != nil {
		h.After(ctx)
	}
}

var _ CountTranslator = &HookedTranslator{}

// HookedTranslator decorates a translator with before/after hooks.
type HookedTranslator struct {
	next  CountTranslator
	hooks []TranslationHook
}

func WrapTranslatorWithHooks(next CountTranslator, hooks ...TranslationHook) CountTranslator {
	if next == nil || len(hooks) == 0 {
		return next
	}

	filtered := make([]TranslationHook, 0, len(hooks))
	for _, hook := range hooks {
		if hook == nil {
			continue
		}
		filtered = append(filtered, hook)
	}

	if len(filtered) == 0 {
		return next
	}

	return &HookedTranslator{next: next, hooks: filtered}
}

func (t *HookedTranslator) Translate(locale, key string, args ...any) (string, error) {
	if t == nil || t.next == nil {
		return "", ErrMissingTranslation
	}

	ctx := &TranslatorHookContext{
		Locale: locale,
		Key:    key,
		Args:   args,
	}

	for _, hook := range t.hooks {
		hook.BeforeTranslate(ctx)
	}

	ctx.Result, ctx.Error = t.next.Translate(ctx.Locale, ctx.Key, ctx.Args...)

	for _, hook := range t.hooks {
		hook.AfterTranslate(ctx)
	}

	return ctx.Result, ctx.Error
}

func (t *HookedTranslator) TranslateCount(locale, keyPrefix string, count int) (string, Category, error) {
	if t == nil || t.next == nil {
		return "", ResolveCategory(locale, count), ErrMissingTranslation
	}

	ctx := &TranslatorHookContext{
		Locale: locale,
		Key:    keyPrefix,
		Args:   []any{count},
	}
	ctx.SetMetadata(metadataPluralCount, count)

	for _, hook := range t.hooks {
		hook.BeforeTranslate(ctx)
	}

	result, category, err := t.next.TranslateCount(ctx.Locale, keyPrefix, count)
	ctx.Result = result
	ctx.Error = err
	ctx.SetMetadata(metadataPluralCategory, category)

	for _, hook := range t.hooks {
		hook.AfterTranslate(ctx)
	}

	return ctx.Result, category, ctx.Error
}
