package polyglot

import (
	"context"
	"reflect"
	"time"
)

// Field is the bound set of operations for one localized field of T.
// It keeps no translation state: every operation decodes the field's raw
// storage, and every write encodes it back.
type Field[T any] struct {
	codec    Codec
	config   FieldConfig
	name     string // public name, used in signals and direct accessors
	goName   string // struct field name
	typeName string
	index    []int // reflect.Value.FieldByIndex access path
}

// ReadOption adjusts a single read.
type ReadOption func(*readConfig)

type readConfig struct {
	fallback bool
}

// WithoutFallback disables the default-locale fallback for one read.
// Fallback also requires the field's own Fallback option to be true.
func WithoutFallback() ReadOption {
	return WithFallback(false)
}

// WithFallback enables or disables the default-locale fallback for one read.
func WithFallback(enabled bool) ReadOption {
	return func(c *readConfig) {
		c.fallback = enabled
	}
}

// Name returns the field's public name.
func (f *Field[T]) Name() string {
	return f.name
}

// GoName returns the name of the backing struct field.
func (f *Field[T]) GoName() string {
	return f.goName
}

// Config returns the field's configuration.
func (f *Field[T]) Config() FieldConfig {
	return f.config
}

// Raw returns the field's raw storage on host.
func (f *Field[T]) Raw(host *T) string {
	if host == nil {
		return ""
	}
	return reflect.ValueOf(host).Elem().FieldByIndex(f.index).String()
}

// SetRaw replaces the field's raw storage on host.
func (f *Field[T]) SetRaw(host *T, raw string) error {
	if host == nil {
		return newConfigError(ErrNilHost, f.name, "cannot set raw storage")
	}
	reflect.ValueOf(host).Elem().FieldByIndex(f.index).SetString(raw)
	return nil
}

// Read returns the field's text in the current locale, applying fallback
// and placeholder rules.
func (f *Field[T]) Read(ctx context.Context, host *T, opts ...ReadOption) (string, error) {
	return f.ReadRaw(ctx, host, f.Raw(host), "", opts...)
}

// ReadIn returns the field's text in locale, applying fallback and
// placeholder rules.
func (f *Field[T]) ReadIn(ctx context.Context, host *T, locale Locale, opts ...ReadOption) (string, error) {
	return f.ReadRaw(ctx, host, f.Raw(host), locale, opts...)
}

// Write stores value as the translation for the current locale.
// An empty value deletes that translation.
func (f *Field[T]) Write(ctx context.Context, host *T, value string) error {
	raw, err := f.WriteRaw(ctx, host, f.Raw(host), value)
	if err != nil {
		return err
	}
	return f.SetRaw(host, raw)
}

// Merge merges data into the stored translations. Locales that are not
// available are dropped and empty values delete their locale.
func (f *Field[T]) Merge(ctx context.Context, host *T, data Translations) error {
	raw, err := f.MergeRaw(ctx, host, f.Raw(host), data)
	if err != nil {
		return err
	}
	return f.SetRaw(host, raw)
}

// Translations returns every stored translation of the field.
func (f *Field[T]) Translations(ctx context.Context, host *T) Translations {
	return f.decode(ctx, f.Raw(host))
}

// Languages returns the sorted locales the field holds a translation for.
func (f *Field[T]) Languages(ctx context.Context, host *T) []Locale {
	return f.Translations(ctx, host).Locales()
}

// CurrentLocale resolves the field's current locale for host.
func (f *Field[T]) CurrentLocale(ctx context.Context, host *T) (Locale, error) {
	return f.resolveLocale(ctx, optLocale, f.config.Locale, hostOf(host))
}

// DefaultLocale resolves the field's fallback locale for host.
func (f *Field[T]) DefaultLocale(ctx context.Context, host *T) (Locale, error) {
	return f.resolveLocale(ctx, optDefaultLocale, f.config.DefaultLocale, hostOf(host))
}

// AvailableLocales resolves the locales the field accepts for host.
func (f *Field[T]) AvailableLocales(ctx context.Context, host *T) ([]Locale, error) {
	return f.availableLocales(ctx, hostOf(host))
}

// HasAvailableLocale reports whether locale is in the field's available set.
func (f *Field[T]) HasAvailableLocale(ctx context.Context, host *T, locale Locale) (bool, error) {
	set, err := f.AvailableLocales(ctx, host)
	if err != nil {
		return false, err
	}
	return containsLocale(set, locale), nil
}

// ReadRaw resolves a read against raw storage. An empty locale means the
// current locale. raw is never modified.
func (f *Field[T]) ReadRaw(ctx context.Context, host *T, raw string, locale Locale, opts ...ReadOption) (string, error) {
	v, rep, err := f.readRaw(ctx, hostOf(host), raw, locale, opts...)
	emitFieldRead(ctx, f.typeName, f.name, locale, rep.resolved, rep.outcome, err)
	return v, err
}

// readReport describes how a read was resolved.
type readReport struct {
	resolved Locale
	outcome  string
}

func (f *Field[T]) readRaw(ctx context.Context, h any, raw string, locale Locale, opts ...ReadOption) (string, readReport, error) {
	rc := readConfig{fallback: true}
	for _, opt := range opts {
		opt(&rc)
	}

	t := f.decode(ctx, raw)

	target := locale
	if target == "" {
		l, err := f.resolveLocale(ctx, optLocale, f.config.Locale, h)
		if err != nil {
			return "", readReport{}, err
		}
		target = l
	}

	if v, ok := t.Get(target); ok {
		return v, readReport{resolved: target, outcome: outcomeTranslated}, nil
	}

	if rc.fallback {
		enabled, err := f.config.Fallback.resolve(ctx, optFallback, h, f.name, f.availableFor(ctx, h))
		if err != nil {
			return "", readReport{}, err
		}
		if enabled {
			def, err := f.resolveLocale(ctx, optDefaultLocale, f.config.DefaultLocale, h)
			if err != nil {
				return "", readReport{}, err
			}
			if v, ok := t.Get(def); ok {
				return v, readReport{resolved: def, outcome: outcomeFallback}, nil
			}
		}
	}

	placeholder, err := f.config.Placeholder.resolve(ctx, optPlaceholder, h, f.name, f.availableFor(ctx, h))
	if err != nil {
		return "", readReport{}, err
	}
	return placeholder, readReport{outcome: outcomePlaceholder}, nil
}

// WriteRaw merges value under the current locale into raw and returns the
// new raw storage.
func (f *Field[T]) WriteRaw(ctx context.Context, host *T, raw, value string) (string, error) {
	l, err := f.resolveLocale(ctx, optLocale, f.config.Locale, hostOf(host))
	if err != nil {
		return "", err
	}
	return f.write(ctx, raw, Translations{l: value}, 0)
}

// MergeRaw merges data into raw and returns the new raw storage. Locales
// outside the available set are dropped before merging.
func (f *Field[T]) MergeRaw(ctx context.Context, host *T, raw string, data Translations) (string, error) {
	available, err := f.availableLocales(ctx, hostOf(host))
	if err != nil {
		return "", err
	}

	accepted := make(Translations, len(data))
	dropped := 0
	for l, v := range data {
		if !containsLocale(available, l) {
			emitLocaleDropped(ctx, f.typeName, f.name, l)
			dropped++
			continue
		}
		accepted[l] = v
	}
	return f.write(ctx, raw, accepted, dropped)
}

// write merges data into the decoded raw storage, purges empty entries and
// encodes the result.
func (f *Field[T]) write(ctx context.Context, raw string, data Translations, dropped int) (string, error) {
	start := time.Now()
	t := f.decode(ctx, raw)
	t.Merge(data)
	purged := t.Purge()

	out, err := Encode(f.codec, t)
	emitFieldWritten(ctx, f.typeName, f.name, len(out), len(t), dropped, purged, time.Since(start), err)
	if err != nil {
		return "", err
	}
	return out, nil
}

// decode decodes raw storage, reporting malformed input before treating it
// as empty.
func (f *Field[T]) decode(ctx context.Context, raw string) Translations {
	t, err := DecodeStrict(f.codec, raw)
	if err != nil {
		emitStorageMalformed(ctx, f.codec.ContentType(), f.typeName, f.name, len(raw), err)
	}
	return t
}

func (f *Field[T]) availableLocales(ctx context.Context, host any) ([]Locale, error) {
	return f.config.AvailableLocales.resolve(ctx, optAvailableLocales, host, f.name, nil)
}

// availableFor returns the lookup used by method options to tell a locale
// token from a method name.
func (f *Field[T]) availableFor(ctx context.Context, host any) func() ([]Locale, error) {
	return func() ([]Locale, error) {
		return f.availableLocales(ctx, host)
	}
}

func (f *Field[T]) resolveLocale(ctx context.Context, name string, o Option[Locale], host any) (Locale, error) {
	return o.resolve(ctx, name, host, f.name, f.availableFor(ctx, host))
}

// hostOf converts a possibly nil host pointer to an interface that is nil
// when the pointer is.
func hostOf[T any](host *T) any {
	if host == nil {
		return nil
	}
	return host
}
