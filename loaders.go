package pluralize

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileLoader reads translation catalogs from JSON or YAML files. Each
// file holds locale -> key -> message, where a message is either a bare
// template string or a map of plural-category names to templates.
type FileLoader struct {
	paths []string
}

func NewFileLoader(paths ...string) *FileLoader {
	return &FileLoader{paths: append([]string(nil), paths...)}
}

func (l *FileLoader) Load() (Translations, error) {
	if l == nil || len(l.paths) == 0 {
		return nil, errors.New("pluralize: no loader paths configured")
	}

	buckets := make(map[string]map[string]Message)

	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("pluralize: read %s: %w", path, err)
		}

		src, err := decodeTranslationFile(path, data)
		if err != nil {
			return nil, fmt.Errorf("pluralize: decode %s: %w", path, err)
		}
		mergeMessageBuckets(buckets, src)
	}

	catalogs := make(Translations, len(buckets))
	for locale, messages := range buckets {
		catalog := &LocaleCatalog{
			Locale: Locale{Code: locale},
		}
		if len(messages) > 0 {
			catalog.Messages = messages
		}
		catalogs[locale] = catalog
	}

	return catalogs, nil
}

func decodeTranslationFile(path string, data []byte) (map[string]map[string]Message, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".json":
		return decodeTranslationsJSON(path, data)
	case ".yaml", ".yml":
		return decodeTranslationsYAML(path, string(data))
	default:
		return nil, fmt.Errorf("unsupported extension %s", ext)
	}
}

func decodeTranslationsJSON(path string, data []byte) (map[string]map[string]Message, error) {
	var raw map[string]map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	result := make(map[string]map[string]Message, len(raw))
	for locale, catalog := range raw {
		if locale == "" {
			return nil, fmt.Errorf("pluralize: empty locale in %s", path)
		}
		normalized := make(map[string]Message, len(catalog))
		for key, rawMessage := range catalog {
			if key == "" {
				return nil, fmt.Errorf("pluralize: empty key in %s/%s", locale, path)
			}
			message, err := buildMessageFromJSON(locale, key, rawMessage, path)
			if err != nil {
				return nil, fmt.Errorf("%s/%s: %w", locale, key, err)
			}
			normalized[key] = message
		}
		result[locale] = normalized
	}
	return result, nil
}

func buildMessageFromJSON(locale, key string, raw json.RawMessage, source string) (Message, error) {
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return buildMessageFromVariants(locale, key, map[Category]string{CategoryPlural: single}, source)
	}

	var plural map[string]string
	if err := json.Unmarshal(raw, &plural); err == nil {
		variants := make(map[Category]string, len(plural))
		for category, template := range plural {
			cat, err := parseCategory(category)
			if err != nil {
				return Message{}, err
			}
			variants[cat] = template
		}
		return buildMessageFromVariants(locale, key, variants, source)
	}

	return Message{}, fmt.Errorf("unsupported message payload")
}

func decodeTranslationsYAML(path, input string) (map[string]map[string]Message, error) {
	var raw map[string]map[string]interface{}
	if err := yaml.Unmarshal([]byte(input), &raw); err != nil {
		return nil, fmt.Errorf("yaml parse error: %w", err)
	}

	if len(raw) == 0 {
		return nil, errors.New("empty translations yaml")
	}

	catalogs := make(map[string]map[string]Message, len(raw))
	for locale, messages := range raw {
		if locale == "" {
			return nil, fmt.Errorf("empty locale in %s", path)
		}

		catalog := make(map[string]Message, len(messages))
		for key, value := range messages {
			if key == "" {
				return nil, fmt.Errorf("empty key in %s/%s", locale, path)
			}

			message, err := buildMessageFromYAMLValue(locale, key, value, path)
			if err != nil {
				return nil, fmt.Errorf("%s/%s: %w", locale, key, err)
			}
			catalog[key] = message
		}
		catalogs[locale] = catalog
	}

	return catalogs, nil
}

func buildMessageFromYAMLValue(locale, key string, value interface{}, source string) (Message, error) {
	switch v := value.(type) {
	case string:
		return buildMessageFromVariants(locale, key, map[Category]string{CategoryPlural: v}, source)
	case map[string]interface{}:
		variants := make(map[Category]string, len(v))
		for category, template := range v {
			cat, err := parseCategory(category)
			if err != nil {
				return Message{}, err
			}
			templateStr, ok := template.(string)
			if !ok {
				return Message{}, fmt.Errorf("plural variant %s must be a string, got %T", category, template)
			}
			variants[cat] = templateStr
		}
		return buildMessageFromVariants(locale, key, variants, source)
	default:
		return Message{}, fmt.Errorf("unsupported message value type: %T", value)
	}
}

func buildMessageFromVariants(locale, key string, variants map[Category]string, source string) (Message, error) {
	if len(variants) == 0 {
		return Message{}, fmt.Errorf("no variants defined for %s", key)
	}

	if _, ok := variants[CategoryPlural]; !ok {
		if len(variants) == 1 {
			for category, template := range variants {
				variants[CategoryPlural] = template
				delete(variants, category)
				break
			}
		} else {
			return Message{}, fmt.Errorf("missing 'plural' catch-all form for %s", key)
		}
	}

	message := Message{
		MessageMetadata: MessageMetadata{
			ID:     key,
			Domain: inferDomain(key),
			Locale: locale,
		},
		Variants: make(map[Category]MessageVariant, len(variants)),
	}

	for category, template := range variants {
		message.SetVariant(category, buildVariant(template, source))
	}

	return message, nil
}

func buildVariant(template, source string) MessageVariant {
	variant := MessageVariant{
		Template: template,
		Source:   source,
	}

	if strings.Contains(template, "%d") {
		variant.UsesCount = true
	}

	return variant
}

func mergeMessageBuckets(dst, src map[string]map[string]Message) {
	for locale, catalog := range src {
		target := dst[locale]
		if target == nil {
			target = make(map[string]Message, len(catalog))
			dst[locale] = target
		}
		for key, message := range catalog {
			if existing, ok := target[key]; ok {
				if existing.Variants == nil {
					existing.Variants = make(map[Category]MessageVariant)
				}
				for category, variant := range message.Variants {
					existing.Variants[category] = variant
				}
				existing.MessageMetadata = message.MessageMetadata
				target[key] = existing
			} else {
				target[key] = message
			}
		}
	}
}

func parseCategory(raw string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "zero":
		return CategoryZero, nil
	case "singular":
		return CategorySingular, nil
	case "dual":
		return CategoryDual, nil
	case "few":
		return CategoryFew, nil
	case "many":
		return CategoryMany, nil
	case "plural":
		return CategoryPlural, nil
	default:
		return "", fmt.Errorf("unknown plural category %q", raw)
	}
}

func inferDomain(key string) string {
	if idx := strings.Index(key, "."); idx > 0 {
		return key[:idx]
	}
	return "default"
}
