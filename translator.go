package polyglot

import (
	"context"
	"reflect"
	"slices"
	"strings"

	"github.com/zoobzio/sentinel"
)

// TagLocalized marks a string field as localized. The tag value, when set,
// is the field's public name: `localized:"title"`.
const TagLocalized = "localized"

// DefaultSeparator joins a field name and a locale in direct accessor
// names such as "title_de".
const DefaultSeparator = "_"

func init() {
	sentinel.Tag(TagLocalized)
}

// Translator binds localized-field operations to the string fields of T.
// Each localized field stores all of its translations in its own string
// value, encoded with the translator's codec.
//
// A Translator is built once per host type and holds no per-host state,
// so it is safe for concurrent use as long as hosts are not shared.
type Translator[T any] struct {
	codec     Codec
	fields    map[string]*Field[T] // keyed by public name
	goNames   map[string]*Field[T] // keyed by struct field name
	order     []string
	separator string
	typeName  string
}

// TranslatorOption configures a Translator.
type TranslatorOption func(*translatorConfig)

type translatorConfig struct {
	defaults  []FieldOption
	declared  []fieldDecl
	separator string
}

type fieldDecl struct {
	name string
	opts []FieldOption
}

// Localize declares a field as localized and configures it. name is the
// struct field name or its `localized` tag name. Options given here apply
// after those given to Defaults.
func Localize(name string, opts ...FieldOption) TranslatorOption {
	return func(c *translatorConfig) {
		c.declared = append(c.declared, fieldDecl{name: name, opts: opts})
	}
}

// Defaults applies opts to every localized field.
func Defaults(opts ...FieldOption) TranslatorOption {
	return func(c *translatorConfig) {
		c.defaults = append(c.defaults, opts...)
	}
}

// WithSeparator sets the separator used by direct accessor names.
func WithSeparator(sep string) TranslatorOption {
	return func(c *translatorConfig) {
		c.separator = sep
	}
}

// candidate is a struct field that may be localized.
type candidate struct {
	goName  string
	name    string
	index   []int
	kind    reflect.Kind
	options []FieldOption
	chosen  bool
}

// NewTranslator creates a Translator for T.
//
// Localized fields are the string fields tagged `localized` plus those
// named with Localize. Fields of embedded structs are included as if they
// were declared on T. Declaring a non-string or unexported field, or naming
// a field T does not have, returns a *ConfigError.
func NewTranslator[T any](codec Codec, opts ...TranslatorOption) (*Translator[T], error) {
	cfg := translatorConfig{separator: DefaultSeparator}
	for _, opt := range opts {
		opt(&cfg)
	}

	typ := reflect.TypeFor[T]()
	if typ.Kind() != reflect.Struct {
		return nil, newConfigError(ErrInvalidField, typ.String(), "host type must be a struct")
	}

	spec := sentinel.Scan[T]()

	candidates, err := collectCandidates(typ, spec, nil)
	if err != nil {
		return nil, err
	}

	for _, decl := range cfg.declared {
		idx := slices.IndexFunc(candidates, func(c *candidate) bool {
			return c.goName == decl.name || c.name == decl.name
		})
		if idx < 0 {
			return nil, newConfigError(ErrUnknownField, decl.name, "no such field on "+spec.TypeName)
		}
		c := candidates[idx]
		if c.kind != reflect.String {
			return nil, newConfigError(ErrInvalidField, decl.name, "localized fields must be strings")
		}
		c.chosen = true
		c.options = append(c.options, decl.opts...)
	}

	tr := &Translator[T]{
		codec:     codec,
		fields:    make(map[string]*Field[T]),
		goNames:   make(map[string]*Field[T]),
		separator: cfg.separator,
		typeName:  spec.TypeName,
	}

	for _, c := range candidates {
		if !c.chosen {
			continue
		}
		if _, dup := tr.fields[c.name]; dup {
			return nil, newConfigError(ErrInvalidField, c.name, "duplicate localized field name")
		}
		if _, dup := tr.goNames[c.goName]; dup {
			return nil, newConfigError(ErrInvalidField, c.goName, "duplicate localized struct field")
		}
		f := &Field[T]{
			codec:    codec,
			config:   newFieldConfig(append(slices.Clone(cfg.defaults), c.options...)...),
			name:     c.name,
			goName:   c.goName,
			typeName: spec.TypeName,
			index:    c.index,
		}
		tr.fields[c.name] = f
		tr.goNames[c.goName] = f
		tr.order = append(tr.order, c.name)
	}

	emitTranslatorCreated(context.Background(), codec.ContentType(), spec.TypeName, len(tr.order))
	return tr, nil
}

// collectCandidates lists the exported fields of rt in declaration order,
// flattening embedded struct values with their index paths joined.
// meta supplies the tags sentinel recorded for rt; fields it does not list
// fall back to the struct tag itself.
func collectCandidates(rt reflect.Type, meta sentinel.Metadata, parent []int) ([]*candidate, error) {
	byIndex := make(map[int]sentinel.FieldMetadata, len(meta.Fields))
	for _, fm := range meta.Fields {
		if len(fm.Index) == 1 {
			byIndex[fm.Index[0]] = fm
		}
	}

	var out []*candidate
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		index := append(slices.Clone(parent), i)

		if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
			nested, err := collectCandidates(sf.Type, nestedMetadata(sf.Type), index)
			if err != nil {
				return nil, err
			}
			out = append(out, nested...)
			continue
		}

		tag, tagged := sf.Tag.Lookup(TagLocalized)
		if v, ok := byIndex[i].Tags[TagLocalized]; ok {
			tag, tagged = v, true
		}

		if !sf.IsExported() {
			if tagged {
				return nil, newConfigError(ErrInvalidField, sf.Name, "localized fields must be exported")
			}
			continue
		}
		if tagged && sf.Type.Kind() != reflect.String {
			return nil, newConfigError(ErrInvalidField, sf.Name, "localized fields must be strings")
		}

		c := &candidate{
			goName: sf.Name,
			name:   sf.Name,
			index:  index,
			kind:   sf.Type.Kind(),
			chosen: tagged,
		}
		if tag != "" {
			c.name = tag
		}
		out = append(out, c)
	}
	return out, nil
}

// nestedMetadata returns sentinel's metadata for an embedded struct, or
// empty metadata when sentinel has not scanned it.
func nestedMetadata(rt reflect.Type) sentinel.Metadata {
	if spec, ok := sentinel.Lookup(rt.String()); ok {
		return spec
	}
	return sentinel.Metadata{TypeName: rt.Name()}
}

// Codec returns the codec used for raw storage.
func (tr *Translator[T]) Codec() Codec {
	return tr.codec
}

// Fields returns the public names of the localized fields in declaration order.
func (tr *Translator[T]) Fields() []string {
	return slices.Clone(tr.order)
}

// Localized reports whether name (public or struct field name) is a localized field.
func (tr *Translator[T]) Localized(name string) bool {
	_, ok := tr.Field(name)
	return ok
}

// Field returns the bound operations for a localized field.
func (tr *Translator[T]) Field(name string) (*Field[T], bool) {
	if f, ok := tr.fields[name]; ok {
		return f, true
	}
	f, ok := tr.goNames[name]
	return f, ok
}

func (tr *Translator[T]) field(name string) (*Field[T], error) {
	f, ok := tr.Field(name)
	if !ok {
		return nil, newConfigError(ErrUnknownField, name, "not localized on "+tr.typeName)
	}
	return f, nil
}

// Read returns the text of field in the current locale.
func (tr *Translator[T]) Read(ctx context.Context, host *T, field string, opts ...ReadOption) (string, error) {
	f, err := tr.field(field)
	if err != nil {
		return "", err
	}
	return f.Read(ctx, host, opts...)
}

// ReadIn returns the text of field in locale.
func (tr *Translator[T]) ReadIn(ctx context.Context, host *T, field string, locale Locale, opts ...ReadOption) (string, error) {
	f, err := tr.field(field)
	if err != nil {
		return "", err
	}
	return f.ReadIn(ctx, host, locale, opts...)
}

// Write stores value as the current-locale translation of field.
func (tr *Translator[T]) Write(ctx context.Context, host *T, field, value string) error {
	f, err := tr.field(field)
	if err != nil {
		return err
	}
	return f.Write(ctx, host, value)
}

// Merge merges data into the translations of field.
func (tr *Translator[T]) Merge(ctx context.Context, host *T, field string, data Translations) error {
	f, err := tr.field(field)
	if err != nil {
		return err
	}
	return f.Merge(ctx, host, data)
}

// Translations returns every stored translation of field.
func (tr *Translator[T]) Translations(ctx context.Context, host *T, field string) (Translations, error) {
	f, err := tr.field(field)
	if err != nil {
		return nil, err
	}
	return f.Translations(ctx, host), nil
}

// Languages returns the locales field holds a translation for.
func (tr *Translator[T]) Languages(ctx context.Context, host *T, field string) ([]Locale, error) {
	f, err := tr.field(field)
	if err != nil {
		return nil, err
	}
	return f.Languages(ctx, host), nil
}

// AvailableLocales resolves the locales field accepts.
func (tr *Translator[T]) AvailableLocales(ctx context.Context, host *T, field string) ([]Locale, error) {
	f, err := tr.field(field)
	if err != nil {
		return nil, err
	}
	return f.AvailableLocales(ctx, host)
}

// HasAvailableLocale reports whether field accepts locale.
func (tr *Translator[T]) HasAvailableLocale(ctx context.Context, host *T, field string, locale Locale) (bool, error) {
	f, err := tr.field(field)
	if err != nil {
		return false, err
	}
	return f.HasAvailableLocale(ctx, host, locale)
}

// Locales returns the locales every localized field of host is translated to.
// Unreadable storage counts as a field with no translations.
func (tr *Translator[T]) Locales(ctx context.Context, host *T) []Locale {
	if len(tr.order) == 0 {
		return nil
	}
	sets := make([][]Locale, 0, len(tr.order))
	for _, name := range tr.order {
		sets = append(sets, tr.fields[name].Languages(ctx, host))
	}
	return Intersect(sets...)
}

// HasLocale reports whether every localized field of host is translated to locale.
func (tr *Translator[T]) HasLocale(ctx context.Context, host *T, locale Locale) bool {
	return containsLocale(tr.Locales(ctx, host), locale)
}

// ReadDirect reads an accessor name such as "title_de": the field "title"
// in locale "de", with the usual fallback and placeholder rules.
// Names whose field is not localized or whose locale is not available fail
// with an *AccessorError wrapping ErrUnknownAccessor.
func (tr *Translator[T]) ReadDirect(ctx context.Context, host *T, name string, opts ...ReadOption) (string, error) {
	f, locale, err := tr.accessor(ctx, host, name)
	if err != nil {
		return "", err
	}
	return f.ReadIn(ctx, host, locale, opts...)
}

// WriteDirect writes an accessor name such as "title_de", storing value as
// the "de" translation of "title". It fails like ReadDirect.
func (tr *Translator[T]) WriteDirect(ctx context.Context, host *T, name, value string) error {
	f, locale, err := tr.accessor(ctx, host, name)
	if err != nil {
		return err
	}
	return f.Merge(ctx, host, Translations{locale: value})
}

// accessor splits a direct accessor name into its field and locale.
// Field and locale names may both contain the separator, so every field
// prefix is tried and the first whose remainder is an available locale wins.
func (tr *Translator[T]) accessor(ctx context.Context, host *T, name string) (*Field[T], Locale, error) {
	for _, fname := range tr.order {
		rest, ok := strings.CutPrefix(name, fname+tr.separator)
		if !ok || rest == "" {
			continue
		}
		f := tr.fields[fname]
		available, err := f.HasAvailableLocale(ctx, host, Locale(rest))
		if err != nil {
			return nil, "", err
		}
		if available {
			return f, Locale(rest), nil
		}
	}
	return nil, "", newAccessorError(name)
}
