package polyglot

import (
	"context"

	"golang.org/x/text/language"
)

// FallbackLocale is used for Environment.Locale and Environment.DefaultLocale
// when neither is set.
const FallbackLocale Locale = "en"

// Environment is the ambient i18n state fields fall back to when their
// options are not configured: the locale of the current request or user,
// the application default locale and the locales the application accepts.
// An empty Environment is usable; see EnvironmentFrom for its defaults.
type Environment struct {
	Locale           Locale
	DefaultLocale    Locale
	AvailableLocales []Locale
}

type contextKey string

func (c contextKey) String() string {
	return "polyglot/" + string(c)
}

const ctxKeyEnvironment = contextKey("environment")

// WithEnvironment returns a copy of ctx carrying env.
func WithEnvironment(ctx context.Context, env Environment) context.Context {
	return context.WithValue(ctx, ctxKeyEnvironment, env)
}

// EnvironmentFrom extracts the Environment from ctx. A missing
// DefaultLocale is FallbackLocale and a missing Locale is DefaultLocale.
// Without AvailableLocales, the available set is Locale and DefaultLocale,
// so it is never empty.
func EnvironmentFrom(ctx context.Context) Environment {
	env, _ := ctx.Value(ctxKeyEnvironment).(Environment)
	if env.DefaultLocale == "" {
		env.DefaultLocale = FallbackLocale
	}
	if env.Locale == "" {
		env.Locale = env.DefaultLocale
	}
	if len(env.AvailableLocales) == 0 {
		env.AvailableLocales = []Locale{env.Locale}
		if env.DefaultLocale != env.Locale {
			env.AvailableLocales = append(env.AvailableLocales, env.DefaultLocale)
		}
	}
	return env
}

// LocaleFromTag converts a BCP 47 tag to a locale token ("de-CH", "en").
// The undetermined tag converts to "".
func LocaleFromTag(tag language.Tag) Locale {
	if tag == language.Und {
		return ""
	}
	return Locale(tag.String())
}

// EnvironmentFromTags builds an Environment from language tags.
func EnvironmentFromTags(current, def language.Tag, available ...language.Tag) Environment {
	env := Environment{
		Locale:        LocaleFromTag(current),
		DefaultLocale: LocaleFromTag(def),
	}
	for _, tag := range available {
		if l := LocaleFromTag(tag); l != "" {
			env.AvailableLocales = append(env.AvailableLocales, l)
		}
	}
	return env
}

// NegotiateLocale picks the available locale that best matches an
// Accept-Language header. It returns fallback when the header is empty or
// unparsable, nothing matches, or no locale is available.
func NegotiateLocale(acceptLanguage string, available []Locale, fallback Locale) Locale {
	if acceptLanguage == "" || len(available) == 0 {
		return fallback
	}

	desired, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(desired) == 0 {
		return fallback
	}

	supported := make([]language.Tag, 0, len(available))
	candidates := make([]Locale, 0, len(available))
	for _, l := range available {
		tag, err := language.Parse(string(l))
		if err != nil {
			continue
		}
		supported = append(supported, tag)
		candidates = append(candidates, l)
	}
	if len(supported) == 0 {
		return fallback
	}

	_, index, confidence := language.NewMatcher(supported).Match(desired...)
	if confidence == language.No {
		return fallback
	}
	return candidates[index]
}
