package pluralize

import (
	"errors"
	"testing"
)

func newWelcomeCatalog(code string, variants map[Category]string) *LocaleCatalog {
	msg := Message{MessageMetadata: MessageMetadata{ID: "message.welcome", Locale: code}}
	for category, template := range variants {
		msg.SetVariant(category, MessageVariant{Template: template, UsesCount: true})
	}

	return &LocaleCatalog{
		Locale: Locale{Code: code},
		Messages: map[string]Message{
			"message.welcome": msg,
		},
	}
}

func TestSimpleTranslatorTranslate(t *testing.T) {
	store := NewStaticStore(Translations{
		"en": newStringCatalog("en", map[string]string{
			"home.title":    "Welcome",
			"home.greeting": "Hello %s",
		}),
		"es": newStringCatalog("es", map[string]string{
			"home.title": "Bienvenido",
		}),
	})

	translator, err := NewSimpleTranslator(store, WithTranslatorDefaultLocale("en"))
	if err != nil {
		t.Fatalf("NewSimpleTranslator: %v", err)
	}

	tests := []struct {
		name    string
		locale  string
		key     string
		args    []any
		want    string
		wantErr error
	}{
		{
			name:   "explicit locale",
			locale: "es",
			key:    "home.title",
			want:   "Bienvenido",
		},
		{
			name: "default locale",
			key:  "home.title",
			want: "Welcome",
		},
		{
			name:   "format args",
			locale: "en",
			key:    "home.greeting",
			args:   []any{"Alice"},
			want:   "Hello Alice",
		},
		{
			name:   "default locale fills locale miss",
			locale: "fr",
			key:    "home.title",
			want:   "Welcome",
		},
		{
			name:    "missing key",
			locale:  "en",
			key:     "missing",
			wantErr: ErrMissingTranslation,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := translator.Translate(tc.locale, tc.key, tc.args...)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected err %v, got %v", tc.wantErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}

			if got != tc.want {
				t.Fatalf("Translate() = %q want %q", got, tc.want)
			}
		})
	}
}

func TestSimpleTranslatorTranslateCount(t *testing.T) {
	store := NewStaticStore(Translations{
		"en": newWelcomeCatalog("en", map[Category]string{
			CategorySingular: "You have joined %d time",
			CategoryPlural:   "You have joined %d times",
		}),
		"ru": newWelcomeCatalog("ru", map[Category]string{
			CategorySingular: "Вы зашли %d раз",
			CategoryFew:      "Вы зашли %d раза",
			CategoryPlural:   "Вы зашли %d раз",
		}),
	})

	translator, err := NewSimpleTranslator(store, WithTranslatorDefaultLocale("en"))
	if err != nil {
		t.Fatalf("NewSimpleTranslator: %v", err)
	}

	tests := []struct {
		name         string
		locale       string
		count        int
		wantText     string
		wantCategory Category
	}{
		{"en singular", "en", 1, "You have joined 1 time", CategorySingular},
		{"en plural", "en", 2, "You have joined 2 times", CategoryPlural},
		{"ru few", "ru", 2, "Вы зашли 2 раза", CategoryFew},
		{"ru teens", "ru", 12, "Вы зашли 12 раз", CategoryPlural},
		{"ru singular 21", "ru", 21, "Вы зашли 21 раз", CategorySingular},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, category, err := translator.TranslateCount(tc.locale, "message.welcome", tc.count)
			if err != nil {
				t.Fatalf("TranslateCount: %v", err)
			}
			if category != tc.wantCategory {
				t.Fatalf("category = %q want %q", category, tc.wantCategory)
			}
			if got != tc.wantText {
				t.Fatalf("TranslateCount() = %q want %q", got, tc.wantText)
			}
		})
	}
}

func TestSimpleTranslatorTranslateCountRegionalLookup(t *testing.T) {
	// ru_RU dispatches to the Russian rule but the catalog only knows
	// "ru"; without a configured fallback the lookup misses and the
	// assembled key comes back.
	store := NewStaticStore(Translations{
		"ru": newWelcomeCatalog("ru", map[Category]string{
			CategoryFew:    "Вы зашли %d раза",
			CategoryPlural: "Вы зашли %d раз",
		}),
	})

	translator, err := NewSimpleTranslator(store)
	if err != nil {
		t.Fatalf("NewSimpleTranslator: %v", err)
	}

	got, category, err := translator.TranslateCount("ru_RU", "message.welcome", 3)
	if !errors.Is(err, ErrMissingTranslation) {
		t.Fatalf("expected ErrMissingTranslation, got %v", err)
	}
	if category != CategoryFew {
		t.Fatalf("category = %q", category)
	}
	if got != "message.welcome.few" {
		t.Fatalf("degraded key = %q", got)
	}

	// with an explicit fallback chain the regional tag resolves
	resolver := NewStaticFallbackResolver()
	resolver.Set("ru_RU", "ru")

	translator, err = NewSimpleTranslator(store, WithTranslatorFallbackResolver(resolver))
	if err != nil {
		t.Fatalf("NewSimpleTranslator: %v", err)
	}

	got, _, err = translator.TranslateCount("ru_RU", "message.welcome", 3)
	if err != nil {
		t.Fatalf("TranslateCount with fallback: %v", err)
	}
	if got != "Вы зашли 3 раза" {
		t.Fatalf("TranslateCount() = %q", got)
	}
}

func TestSimpleTranslatorTranslateCountPerCategoryKeys(t *testing.T) {
	// catalogs may store one key per category instead of variant maps
	store := NewStaticStore(Translations{
		"en": newStringCatalog("en", map[string]string{
			"message.welcome.singular": "You have joined %d time",
			"message.welcome.plural":   "You have joined %d times",
		}),
	})

	translator, err := NewSimpleTranslator(store)
	if err != nil {
		t.Fatalf("NewSimpleTranslator: %v", err)
	}

	got, category, err := translator.TranslateCount("en", "message.welcome", 1)
	if err != nil {
		t.Fatalf("TranslateCount: %v", err)
	}
	if category != CategorySingular || got != "You have joined 1 time" {
		t.Fatalf("TranslateCount() = %q,%q", got, category)
	}
}

func TestSimpleTranslatorCustomFormatter(t *testing.T) {
	store := NewStaticStore(Translations{
		"en": newStringCatalog("en", map[string]string{
			"home.greeting": "Hello %s",
		}),
	})

	invoked := false
	formatter := FormatterFunc(func(locale, template string, args ...any) (string, error) {
		invoked = true
		return "custom", nil
	})

	translator, err := NewSimpleTranslator(store,
		WithTranslatorDefaultLocale("en"),
		WithTranslatorFormatter(formatter),
	)
	if err != nil {
		t.Fatalf("NewSimpleTranslator: %v", err)
	}

	got, err := translator.Translate("", "home.greeting", "bob")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}

	if got != "custom" {
		t.Fatalf("Translate() = %q want custom", got)
	}

	if !invoked {
		t.Fatal("expected formatter to be invoked")
	}
}

func TestPrinterFormatterGroupsDigits(t *testing.T) {
	formatter := NewPrinterFormatter()

	got, err := formatter.Format("en", "joined %d times", 1234)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if got != "joined 1,234 times" {
		t.Fatalf("Format() = %q", got)
	}

	// no args returns the template untouched
	if got, err := formatter.Format("en", "plain"); err != nil || got != "plain" {
		t.Fatalf("Format(no args) = %q,%v", got, err)
	}
}
