package locale

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/nicksnyder/go-i18n/i18n"
	"github.com/thoas/go-funk"

	"github.com/planforge/cli/internal/logging"
)

// Supported languages
var Supported = []string{"en-US"}

//go:embed en-us.yaml
var localeEnUS []byte

var translateFunction i18n.TranslateFunc

func init() {
	if err := i18n.ParseTranslationFileBytes("en-us.yaml", localeEnUS); err != nil {
		panic(fmt.Sprintf("Could not parse embedded translation file: %v", err))
	}
	if err := Set("en-US"); err != nil {
		panic(err)
	}
}

// Set the active language to the given locale
func Set(localeName string) error {
	if !funk.Contains(Supported, localeName) {
		return fmt.Errorf("locale does not exist: %s", localeName)
	}

	tf, err := i18n.Tfunc(localeName)
	if err != nil {
		return err
	}
	translateFunction = tf

	return nil
}

// T translates the given ID, passing any args through as template data.
func T(translationID string, args ...interface{}) string {
	return translateFunction(translationID, args...)
}

// Tr translates the given ID with the given values injected as {{.V0}},
// {{.V1}}, etc.
func Tr(translationID string, values ...string) string {
	return T(translationID, valueMap(values))
}

// Tl translates the given ID, falling back to the given literal if no
// translation is registered. Values are injected as {{.V0}}, {{.V1}}, etc.
func Tl(translationID, literal string, values ...string) string {
	translation := T(translationID, valueMap(values))
	if translation != translationID {
		return translation
	}
	logging.Debug("Missing translation for %s, using literal", translationID)
	return injectValues(literal, values)
}

func valueMap(values []string) map[string]interface{} {
	m := make(map[string]interface{}, len(values))
	for i, v := range values {
		m[fmt.Sprintf("V%d", i)] = v
	}
	return m
}

func injectValues(literal string, values []string) string {
	for i, v := range values {
		literal = strings.ReplaceAll(literal, fmt.Sprintf("{{.V%d}}", i), v)
	}
	return literal
}
