package polyglot

// Option names used in errors and signals.
const (
	optLocale           = "locale"
	optDefaultLocale    = "default_locale"
	optAvailableLocales = "available_locales"
	optFallback         = "fallback"
	optPlaceholder      = "placeholder"
)

// FieldConfig holds the per-field settings. Unset options take their
// defaults from the Environment in the operation's context.
type FieldConfig struct {
	// Locale is the current locale for reads and writes without an explicit locale.
	Locale Option[Locale]

	// DefaultLocale is the locale reads fall back to.
	DefaultLocale Option[Locale]

	// AvailableLocales limits which locales map writes and direct accessors accept.
	AvailableLocales Option[[]Locale]

	// Fallback enables falling back to DefaultLocale. Defaults to true.
	Fallback Option[bool]

	// Placeholder is returned when no translation is usable. Defaults to "".
	Placeholder Option[string]
}

// FieldOption configures a localized field.
type FieldOption func(*FieldConfig)

// CurrentLocale sets how the current locale is resolved.
func CurrentLocale(o Option[Locale]) FieldOption {
	return func(c *FieldConfig) {
		c.Locale = o
	}
}

// DefaultLocale sets how the fallback locale is resolved.
func DefaultLocale(o Option[Locale]) FieldOption {
	return func(c *FieldConfig) {
		c.DefaultLocale = o
	}
}

// AvailableLocales sets the locales the field accepts.
func AvailableLocales(o Option[[]Locale]) FieldOption {
	return func(c *FieldConfig) {
		c.AvailableLocales = o
	}
}

// Locales is shorthand for AvailableLocales(Literal(locales)).
func Locales(locales ...Locale) FieldOption {
	return AvailableLocales(Literal(locales))
}

// Fallback sets whether reads fall back to the default locale.
func Fallback(o Option[bool]) FieldOption {
	return func(c *FieldConfig) {
		c.Fallback = o
	}
}

// NoFallback disables falling back to the default locale.
func NoFallback() FieldOption {
	return Fallback(Literal(false))
}

// Placeholder sets the value returned for missing translations.
func Placeholder(o Option[string]) FieldOption {
	return func(c *FieldConfig) {
		c.Placeholder = o
	}
}

// newFieldConfig applies opts over the defaults.
func newFieldConfig(opts ...FieldOption) FieldConfig {
	var c FieldConfig
	for _, opt := range opts {
		opt(&c)
	}
	if !c.Locale.IsSet() {
		c.Locale = ambient(func(env Environment) Locale { return env.Locale })
	}
	if !c.DefaultLocale.IsSet() {
		c.DefaultLocale = ambient(func(env Environment) Locale { return env.DefaultLocale })
	}
	if !c.AvailableLocales.IsSet() {
		c.AvailableLocales = ambient(func(env Environment) []Locale { return env.AvailableLocales })
	}
	if !c.Fallback.IsSet() {
		c.Fallback = Literal(true)
	}
	return c
}
