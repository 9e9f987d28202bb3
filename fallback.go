package pluralize

// FallbackResolver resolves fallback locale chains. The zero behavior is
// no fallback at all: the original host loads only the exact language
// file selected by the player, so regional fallback is strictly opt-in.
type FallbackResolver interface {
	Resolve(locale string) []string
}

// StaticFallbackResolver serves fallback chains from a fixed map.
type StaticFallbackResolver struct {
	chains map[string][]string
}

func NewStaticFallbackResolver() *StaticFallbackResolver {
	return &StaticFallbackResolver{chains: make(map[string][]string)}
}

// Set registers the fallback chain for locale, replacing any previous one.
func (s *StaticFallbackResolver) Set(locale string, fallbacks ...string) {
	if s == nil || locale == "" {
		return
	}
	if s.chains == nil {
		s.chains = make(map[string][]string)
	}

	normalized := normalizeLocale(locale)
	cleaned := make([]string, 0, len(fallbacks))
	seen := map[string]struct{}{normalized: {}}
	for _, fallback := range fallbacks {
		candidate := normalizeLocale(fallback)
		if candidate == "" {
			continue
		}
		if _, exists := seen[candidate]; exists {
			continue
		}
		seen[candidate] = struct{}{}
		cleaned = append(cleaned, candidate)
	}
	s.chains[normalized] = cleaned
}

// ParentFallbackResolver derives fallback chains from the locale's
// parent tags ("pt-BR" -> "pt"), the opt-in way to get regional fallback
// without listing every chain by hand.
type ParentFallbackResolver struct{}

func (ParentFallbackResolver) Resolve(locale string) []string {
	return localeParentChain(normalizeLocale(locale))
}

func (s *StaticFallbackResolver) Resolve(locale string) []string {
	if s == nil || len(s.chains) == 0 {
		return nil
	}
	chain, ok := s.chains[normalizeLocale(locale)]
	if !ok || len(chain) == 0 {
		return nil
	}
	out := make([]string, len(chain))
	copy(out, chain)
	return out
}
