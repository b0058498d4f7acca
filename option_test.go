package polyglot

import (
	"context"
	"errors"
	"slices"
	"testing"
)

type optionHost struct {
	tongue Locale
	langs  []string
}

func (h *optionHost) Tongue() Locale { return h.tongue }

func (h *optionHost) Langs() []string { return h.langs }

func (h *optionHost) Label(field string) string { return "label for " + field }

func (h *optionHost) Broken() (Locale, error) { return "", errors.New("no tongue") }

func (h *optionHost) Checked() (bool, error) { return true, nil }

func (h optionHost) Count() int { return 3 }

func (h optionHost) Pair(_, _ string) string { return "" }

func (h optionHost) Tuple() (string, string) { return "", "" }

func resolveNoCheck[V any](o Option[V], host any) (V, error) {
	return o.resolve(context.Background(), "test", host, "name", nil)
}

func TestOption_Literal(t *testing.T) {
	got, err := resolveNoCheck(Literal(Locale("de")), nil)
	if err != nil || got != "de" {
		t.Errorf("Literal resolve = (%q, %v), want (de, nil)", got, err)
	}
}

func TestOption_Unset(t *testing.T) {
	var o Option[string]
	if o.IsSet() {
		t.Error("zero Option should not be set")
	}
	got, err := resolveNoCheck(o, nil)
	if err != nil || got != "" {
		t.Errorf("unset resolve = (%q, %v), want zero value", got, err)
	}
}

func TestOption_Func(t *testing.T) {
	host := &optionHost{tongue: "pi"}

	pointer := Func(func(h *optionHost) Locale { return h.tongue })
	if got, err := resolveNoCheck(pointer, host); err != nil || got != "pi" {
		t.Errorf("pointer Func resolve = (%q, %v), want (pi, nil)", got, err)
	}

	value := Func(func(h optionHost) Locale { return h.tongue })
	if got, err := resolveNoCheck(value, host); err != nil || got != "pi" {
		t.Errorf("value Func resolve = (%q, %v), want (pi, nil)", got, err)
	}

	wrongHost := Func(func(h *Translations) Locale { return "" })
	if _, err := resolveNoCheck(wrongHost, host); !errors.Is(err, ErrOptionType) {
		t.Errorf("Func with wrong host error = %v, want ErrOptionType", err)
	}
}

func TestOption_FieldFunc(t *testing.T) {
	o := FieldFunc(func(_ *optionHost, field string) string { return "<missing " + field + ">" })
	got, err := resolveNoCheck(o, &optionHost{})
	if err != nil || got != "<missing name>" {
		t.Errorf("FieldFunc resolve = (%q, %v), want (<missing name>, nil)", got, err)
	}
}

func TestOption_Method(t *testing.T) {
	host := &optionHost{tongue: "pi", langs: []string{"pi", "en"}}

	t.Run("no arguments", func(t *testing.T) {
		got, err := resolveNoCheck(Method[Locale]("Tongue"), host)
		if err != nil || got != "pi" {
			t.Errorf("resolve = (%q, %v), want (pi, nil)", got, err)
		}
	})

	t.Run("field argument", func(t *testing.T) {
		got, err := resolveNoCheck(Method[string]("Label"), host)
		if err != nil || got != "label for name" {
			t.Errorf("resolve = (%q, %v), want (label for name, nil)", got, err)
		}
	})

	t.Run("slice conversion", func(t *testing.T) {
		got, err := resolveNoCheck(Method[[]Locale]("Langs"), host)
		if err != nil || !slices.Equal(got, []Locale{"pi", "en"}) {
			t.Errorf("resolve = (%v, %v), want ([pi en], nil)", got, err)
		}
	})

	t.Run("value receiver", func(t *testing.T) {
		if _, err := resolveNoCheck(Method[int]("Count"), host); err != nil {
			t.Errorf("resolve error: %v", err)
		}
	})

	t.Run("error result", func(t *testing.T) {
		if got, err := resolveNoCheck(Method[bool]("Checked"), host); err != nil || !got {
			t.Errorf("resolve = (%v, %v), want (true, nil)", got, err)
		}
		if _, err := resolveNoCheck(Method[Locale]("Broken"), host); !errors.Is(err, ErrOptionType) {
			t.Errorf("resolve error = %v, want ErrOptionType", err)
		}
	})

	t.Run("unknown method", func(t *testing.T) {
		_, err := resolveNoCheck(Method[Locale]("Missing"), host)
		if !errors.Is(err, ErrUnknownMethod) {
			t.Errorf("resolve error = %v, want ErrUnknownMethod", err)
		}
		var optErr *OptionError
		if !errors.As(err, &optErr) || optErr.Option != "test" || optErr.Field != "name" {
			t.Errorf("resolve error should be an *OptionError for test/name, got %v", err)
		}
	})

	t.Run("nil host", func(t *testing.T) {
		if _, err := resolveNoCheck(Method[Locale]("Tongue"), nil); !errors.Is(err, ErrUnknownMethod) {
			t.Errorf("resolve error = %v, want ErrUnknownMethod", err)
		}
	})

	t.Run("wrong result type", func(t *testing.T) {
		if _, err := resolveNoCheck(Method[Locale]("Count"), host); !errors.Is(err, ErrOptionType) {
			t.Errorf("resolve error = %v, want ErrOptionType", err)
		}
	})

	t.Run("bad signatures", func(t *testing.T) {
		if _, err := resolveNoCheck(Method[string]("Pair"), host); !errors.Is(err, ErrOptionType) {
			t.Errorf("two-argument method error = %v, want ErrOptionType", err)
		}
		if _, err := resolveNoCheck(Method[string]("Tuple"), host); !errors.Is(err, ErrOptionType) {
			t.Errorf("two-result method error = %v, want ErrOptionType", err)
		}
	})
}

func TestOption_MethodNamingAvailableLocale(t *testing.T) {
	host := &optionHost{tongue: "pi"}
	available := func() ([]Locale, error) { return []Locale{"en", "de"}, nil }

	got, err := Method[Locale]("de").resolve(context.Background(), "default_locale", host, "name", available)
	if err != nil || got != "de" {
		t.Errorf("available token resolve = (%q, %v), want (de, nil)", got, err)
	}

	// Not available, so the name is dispatched as a method, and there is none.
	_, err = Method[Locale]("it").resolve(context.Background(), "default_locale", host, "name", available)
	if !errors.Is(err, ErrUnknownMethod) {
		t.Errorf("unavailable token error = %v, want ErrUnknownMethod", err)
	}

	// Method names that are not locales still dispatch.
	got, err = Method[Locale]("Tongue").resolve(context.Background(), "locale", host, "name", available)
	if err != nil || got != "pi" {
		t.Errorf("method resolve = (%q, %v), want (pi, nil)", got, err)
	}
}

func TestOption_MethodNamingAvailableLocale_Error(t *testing.T) {
	broken := errors.New("available failed")
	available := func() ([]Locale, error) { return nil, broken }

	_, err := Method[Locale]("de").resolve(context.Background(), "locale", &optionHost{}, "name", available)
	if !errors.Is(err, broken) {
		t.Errorf("resolve error = %v, want available error", err)
	}
}

func TestOption_NonLocaleMethodSkipsAvailableCheck(t *testing.T) {
	calls := 0
	available := func() ([]Locale, error) {
		calls++
		return []Locale{"Checked"}, nil
	}

	got, err := Method[bool]("Checked").resolve(context.Background(), "fallback", &optionHost{}, "name", available)
	if err != nil || !got {
		t.Errorf("resolve = (%v, %v), want (true, nil)", got, err)
	}
	if calls != 0 {
		t.Errorf("available consulted %d times for a bool option, want 0", calls)
	}
}

func TestOption_Ambient(t *testing.T) {
	ctx := WithEnvironment(context.Background(), Environment{Locale: "fr"})
	o := ambient(func(env Environment) Locale { return env.Locale })

	got, err := o.resolve(ctx, "locale", nil, "name", nil)
	if err != nil || got != "fr" {
		t.Errorf("ambient resolve = (%q, %v), want (fr, nil)", got, err)
	}
}
