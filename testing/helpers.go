// Package testing provides test utilities for polyglot.
package testing

import (
	"context"
	"testing"

	"github.com/zoobzio/polyglot"
	"github.com/zoobzio/polyglot/bson"
	"github.com/zoobzio/polyglot/json"
	"github.com/zoobzio/polyglot/msgpack"
	"github.com/zoobzio/polyglot/yaml"
)

// Environment returns the ambient locales used by the fixtures:
// current locale "en", default locale "de", with en, de and it available.
func Environment() polyglot.Environment {
	return polyglot.Environment{
		Locale:           "en",
		DefaultLocale:    "de",
		AvailableLocales: []polyglot.Locale{"en", "de", "it"},
	}
}

// Context returns a context carrying Environment.
func Context(tb testing.TB) context.Context {
	tb.Helper()
	return polyglot.WithEnvironment(context.Background(), Environment())
}

// Codecs returns every shipped codec keyed by name.
func Codecs() map[string]polyglot.Codec {
	return map[string]polyglot.Codec{
		"yaml":    yaml.New(),
		"json":    json.New(),
		"msgpack": msgpack.New(),
		"bson":    bson.New(),
	}
}

// Article is a host type with two localized fields and no options.
type Article struct {
	ID    string
	Title string `localized:"title"`
	Body  string `localized:"body"`
}

// Landscape is a host type whose fields exercise every option variant.
//
//   - marshes: ambient defaults
//   - grasslands: locales pi/de/en, locale from the ArchitectsTongue method,
//     default locale from a Func falling back to "en"
//   - desert, sky: no fallback, field-aware placeholder
type Landscape struct {
	Marshes    string `localized:"marshes"`
	Grasslands string `localized:"grasslands"`
	Desert     string `localized:"desert"`
	Sky        string `localized:"sky"`
	Builder    polyglot.Locale
}

// ArchitectsTongue is the current locale of the grasslands field.
func (l *Landscape) ArchitectsTongue() polyglot.Locale {
	return "pi"
}

// MissingPlaceholder renders the placeholder used by desert and sky.
func MissingPlaceholder(_ *Landscape, field string) string {
	return "<span class='missing translation'>Translation missing for " + field + "</span>"
}

// LandscapeTranslator builds the Landscape translator for codec.
func LandscapeTranslator(tb testing.TB, codec polyglot.Codec) *polyglot.Translator[Landscape] {
	tb.Helper()
	tr, err := polyglot.NewTranslator[Landscape](codec,
		polyglot.Localize("grasslands",
			polyglot.Locales("pi", "de", "en"),
			polyglot.CurrentLocale(polyglot.Method[polyglot.Locale]("ArchitectsTongue")),
			polyglot.DefaultLocale(polyglot.Func(func(l *Landscape) polyglot.Locale {
				if l.Builder != "" {
					return l.Builder
				}
				return "en"
			})),
		),
		polyglot.Localize("desert",
			polyglot.NoFallback(),
			polyglot.Placeholder(polyglot.FieldFunc(MissingPlaceholder)),
		),
		polyglot.Localize("sky",
			polyglot.NoFallback(),
			polyglot.Placeholder(polyglot.FieldFunc(MissingPlaceholder)),
		),
	)
	if err != nil {
		tb.Fatalf("NewTranslator[Landscape]() error: %v", err)
	}
	return tr
}

// ArticleTranslator builds the Article translator for codec.
func ArticleTranslator(tb testing.TB, codec polyglot.Codec) *polyglot.Translator[Article] {
	tb.Helper()
	tr, err := polyglot.NewTranslator[Article](codec)
	if err != nil {
		tb.Fatalf("NewTranslator[Article]() error: %v", err)
	}
	return tr
}
