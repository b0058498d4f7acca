// Package polyglot stores the translations of a struct's text fields inside
// the fields themselves, with no extra columns or tables.
//
// Each localized field is a plain string holding an encoded map of locale
// to text. A Translator reads and writes those maps with locale-aware
// fallback and placeholder rules.
//
// # Declaring Fields
//
// Mark string fields with the `localized` tag or name them with Localize:
//
//	type Product struct {
//	    ID          string
//	    Title       string `localized:"title"`
//	    Description string `localized:"description"`
//	}
//
//	tr, _ := polyglot.NewTranslator[Product](yaml.New(),
//	    polyglot.Localize("description",
//	        polyglot.NoFallback(),
//	        polyglot.Placeholder(polyglot.Literal("<missing description>")),
//	    ),
//	)
//
// Fields of embedded structs count as fields of the host.
//
// # Reading and Writing
//
// The current locale, default locale and available locales come from the
// Environment carried in the context unless a field overrides them:
//
//	ctx = polyglot.WithEnvironment(ctx, polyglot.Environment{
//	    Locale:           "en",
//	    DefaultLocale:    "de",
//	    AvailableLocales: []polyglot.Locale{"en", "de", "it"},
//	})
//
//	_ = tr.Write(ctx, &p, "title", "Chair")                         // sets en
//	_ = tr.Merge(ctx, &p, "title", polyglot.Translations{"de": "Stuhl"})
//	title, _ := tr.Read(ctx, &p, "title")                           // "Chair"
//	german, _ := tr.ReadIn(ctx, &p, "title", "de")                  // "Stuhl"
//
// A read in a locale without a translation falls back to the default locale
// when fallback is enabled, then to the field's placeholder. Writing an
// empty string deletes a translation. Map writes silently drop locales that
// are not available. Without AvailableLocales, only the current and default
// locales are available.
//
// # Options
//
// Every field setting is an Option: a Literal, a Func or FieldFunc called
// with the host, or a Method called on the host by name. A Method whose
// name is itself an available locale resolves to that locale.
//
// # Direct Accessors
//
// ReadDirect and WriteDirect take names such as "title_de". Names whose
// field is not localized or whose locale is not available fail with
// ErrUnknownAccessor.
//
// # Registry
//
// Register caches a configured translator per host type and codec;
// Use returns it, or a tag-only translator for types never registered:
//
//	_, _ = polyglot.Register[Product](yaml.New(), polyglot.Defaults(polyglot.NoFallback()))
//	tr, _ := polyglot.Use[Product](yaml.New())
//
// # Codecs
//
// The following codec implementations are available as subpackages:
//
//   - yaml - YAML encoding (application/yaml), the readable default
//   - json - JSON encoding (application/json)
//   - msgpack - MessagePack encoding (application/msgpack)
//   - bson - BSON encoding (application/bson)
//
// # Signals
//
// Reads, writes, malformed storage and dropped locales are reported as
// capitan signals; see signals.go.
package polyglot
