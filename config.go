package pluralize

// Config captures translator and tracker setup
type Config struct {
	DefaultLocale string
	Locales       []string
	Loader        Loader
	Store         Store
	Resolver      FallbackResolver
	Formatter     Formatter
	Hooks         []TranslationHook

	counterStore CounterStore
	keyPrefix    string
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	cfg.Locales = normalizeLocales(cfg.Locales)

	if cfg.Store == nil {
		if cfg.Loader != nil {
			store, err := NewStaticStoreFromLoader(cfg.Loader)
			if err != nil {
				return nil, err
			}
			cfg.Store = store
		} else {
			cfg.Store = NewStaticStore(nil)
		}
	}

	if cfg.Formatter == nil {
		cfg.Formatter = FormatterFunc(sprintfFormatter)
	}

	if cfg.DefaultLocale == "" && len(cfg.Locales) > 0 {
		cfg.DefaultLocale = cfg.Locales[0]
	}

	return cfg, nil
}

// WithDefaultLocale sets the default locale in Config
func WithDefaultLocale(locale string) Option {
	return func(c *Config) error {
		c.DefaultLocale = locale
		return nil
	}
}

// WithLocales registers supported locales
func WithLocales(locales ...string) Option {
	return func(c *Config) error {
		c.Locales = append(c.Locales, locales...)
		return nil
	}
}

func WithLoader(loader Loader) Option {
	return func(c *Config) error {
		c.Loader = loader
		return nil
	}
}

func WithStore(store Store) Option {
	return func(c *Config) error {
		c.Store = store
		return nil
	}
}

func WithFallbackResolver(resolver FallbackResolver) Option {
	return func(c *Config) error {
		c.Resolver = resolver
		return nil
	}
}

// WithFallback appends a fallback chain for locale to the static
// resolver, creating one when no resolver is configured yet. Custom
// resolvers set via WithFallbackResolver win over this option.
func WithFallback(locale string, fallbacks ...string) Option {
	return func(c *Config) error {
		if locale == "" {
			return nil
		}
		resolver, ok := c.Resolver.(*StaticFallbackResolver)
		if !ok {
			if c.Resolver != nil {
				return nil
			}
			resolver = NewStaticFallbackResolver()
			c.Resolver = resolver
		}
		resolver.Set(locale, fallbacks...)
		return nil
	}
}

func WithFormatter(formatter Formatter) Option {
	return func(c *Config) error {
		c.Formatter = formatter
		return nil
	}
}

func WithTranslatorHooks(hooks ...TranslationHook) Option {
	return func(c *Config) error {
		for _, hook := range hooks {
			if hook == nil {
				continue
			}
			c.Hooks = append(c.Hooks, hook)
		}
		return nil
	}
}

// WithCounterStore sets the join-count backend used by BuildTracker.
func WithCounterStore(store CounterStore) Option {
	return func(c *Config) error {
		c.counterStore = store
		return nil
	}
}

// WithWelcomeKeyPrefix overrides the message-key prefix used by BuildTracker.
func WithWelcomeKeyPrefix(prefix string) Option {
	return func(c *Config) error {
		c.keyPrefix = prefix
		return nil
	}
}

// BuildTranslator assembles the configured translator, wrapping it with
// hooks when any are registered.
func (cfg *Config) BuildTranslator() (CountTranslator, error) {
	base, err := NewSimpleTranslator(cfg.Store,
		WithTranslatorDefaultLocale(cfg.DefaultLocale),
		WithTranslatorFormatter(cfg.Formatter),
		WithTranslatorFallbackResolver(cfg.Resolver))
	if err != nil {
		return nil, err
	}

	if len(cfg.Hooks) == 0 {
		return base, nil
	}

	return WrapTranslatorWithHooks(base, cfg.Hooks...), nil
}

// BuildTracker assembles a join tracker on top of the configured
// translator and counter store.
func (cfg *Config) BuildTracker() (*Tracker, error) {
	translator, err := cfg.BuildTranslator()
	if err != nil {
		return nil, err
	}

	opts := []TrackerOption{}
	if cfg.counterStore != nil {
		opts = append(opts, WithTrackerCounterStore(cfg.counterStore))
	}
	if cfg.keyPrefix != "" {
		opts = append(opts, WithTrackerKeyPrefix(cfg.keyPrefix))
	}

	return NewTracker(translator, opts...)
}
