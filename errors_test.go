package polyglot

import (
	"errors"
	"testing"
)

func TestConfigError_Is(t *testing.T) {
	err := newConfigError(ErrUnknownField, "Price", "no such field on Product")

	if !errors.Is(err, ErrUnknownField) {
		t.Error("ConfigError should unwrap to ErrUnknownField")
	}

	if errors.Is(err, ErrInvalidField) {
		t.Error("ConfigError should not match ErrInvalidField")
	}
}

func TestConfigError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "full context",
			err:  newConfigError(ErrInvalidField, "Stock", "localized fields must be strings"),
			want: "invalid field Stock: localized fields must be strings",
		},
		{
			name: "field only",
			err:  &ConfigError{Err: ErrNilHost, Field: "title"},
			want: "nil host title",
		},
		{
			name: "error only",
			err:  &ConfigError{Err: ErrInvalidField},
			want: "invalid field",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAccessorError(t *testing.T) {
	err := newAccessorError("title_xx")

	if !errors.Is(err, ErrUnknownAccessor) {
		t.Error("AccessorError should unwrap to ErrUnknownAccessor")
	}

	want := `unknown accessor "title_xx"`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	var accErr *AccessorError
	if !errors.As(err, &accErr) || accErr.Name != "title_xx" {
		t.Errorf("errors.As() should extract the accessor name, got %v", err)
	}
}

func TestOptionError_Message(t *testing.T) {
	cause := errors.New("no method")
	err := newOptionError(ErrUnknownMethod, "locale", "title", cause)

	want := "resolve locale for field title: unknown method: no method"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrUnknownMethod) {
		t.Error("OptionError should unwrap to ErrUnknownMethod")
	}
}

func TestOptionError_NoCause(t *testing.T) {
	err := &OptionError{Err: ErrOptionType, Option: "fallback", Field: "body"}

	want := "resolve fallback for field body: option type mismatch"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestCodecError_Is(t *testing.T) {
	err := newCodecError(ErrUnmarshal, errors.New("invalid json"))

	if !errors.Is(err, ErrUnmarshal) {
		t.Error("CodecError should unwrap to ErrUnmarshal")
	}

	if errors.Is(err, ErrMarshal) {
		t.Error("CodecError should not match ErrMarshal")
	}
}

func TestCodecError_Message(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := newCodecError(ErrUnmarshal, cause)

	want := "unmarshal failed: unexpected end of JSON input"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestCodecError_NoCause(t *testing.T) {
	err := &CodecError{Err: ErrMarshal}

	want := "marshal failed"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorsAs_ConfigError(t *testing.T) {
	_, err := NewTranslator[BadTagProduct](&testCodec{})

	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("NewTranslator() error should be *ConfigError, got %T", err)
	}
	if cfgErr.Field != "Stock" {
		t.Errorf("ConfigError.Field = %q, want %q", cfgErr.Field, "Stock")
	}
}
