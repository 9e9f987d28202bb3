package pluralize

import "errors"

// ErrMissingTranslation indicates that no translation was found for locale/key.
var ErrMissingTranslation = errors.New("pluralize: missing translation")
