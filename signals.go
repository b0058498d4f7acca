package polyglot

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for translation events.
var (
	SignalTranslatorCreated = capitan.NewSignal("polyglot.translator.created", "Translator instantiated")
	SignalFieldRead         = capitan.NewSignal("polyglot.field.read", "Localized field read")
	SignalFieldWritten      = capitan.NewSignal("polyglot.field.written", "Localized field written")
	SignalStorageMalformed  = capitan.NewSignal("polyglot.storage.malformed", "Raw storage could not be decoded and was treated as empty")
	SignalLocaleDropped     = capitan.NewSignal("polyglot.locale.dropped", "Write discarded a locale that is not available")
)

// Keys for typed event data.
var (
	KeyContentType     = capitan.NewStringKey("content_type")
	KeyTypeName        = capitan.NewStringKey("type_name")
	KeyField           = capitan.NewStringKey("field")
	KeyFieldCount      = capitan.NewIntKey("field_count")
	KeyRequestedLocale = capitan.NewStringKey("requested_locale")
	KeyResolvedLocale  = capitan.NewStringKey("resolved_locale")
	KeyLocale          = capitan.NewStringKey("locale")
	KeyOutcome         = capitan.NewStringKey("outcome")
	KeySize            = capitan.NewIntKey("size")
	KeyLocaleCount     = capitan.NewIntKey("locale_count")
	KeyDroppedCount    = capitan.NewIntKey("dropped_count")
	KeyPurgedCount     = capitan.NewIntKey("purged_count")
	KeyDuration        = capitan.NewDurationKey("duration")
	KeyError           = capitan.NewErrorKey("error")
)

// Read outcomes reported under KeyOutcome.
const (
	outcomeTranslated  = "translated"
	outcomeFallback    = "fallback"
	outcomePlaceholder = "placeholder"
)

// emitTranslatorCreated emits an event when a translator is created.
func emitTranslatorCreated(ctx context.Context, contentType, typeName string, fields int) {
	capitan.Emit(ctx, SignalTranslatorCreated,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeyFieldCount.Field(fields),
	)
}

// emitFieldRead emits an event when a read resolves, or fails to.
func emitFieldRead(ctx context.Context, typeName, field string, requested, resolved Locale, outcome string, err error) {
	fields := []capitan.Field{
		KeyTypeName.Field(typeName),
		KeyField.Field(field),
		KeyRequestedLocale.Field(string(requested)),
		KeyResolvedLocale.Field(string(resolved)),
		KeyOutcome.Field(outcome),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalFieldRead, fields...)
	} else {
		capitan.Emit(ctx, SignalFieldRead, fields...)
	}
}

// emitFieldWritten emits an event when a write finishes.
func emitFieldWritten(ctx context.Context, typeName, field string, size, locales, dropped, purged int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyTypeName.Field(typeName),
		KeyField.Field(field),
		KeySize.Field(size),
		KeyLocaleCount.Field(locales),
		KeyDroppedCount.Field(dropped),
		KeyPurgedCount.Field(purged),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalFieldWritten, fields...)
	} else {
		capitan.Emit(ctx, SignalFieldWritten, fields...)
	}
}

// emitStorageMalformed emits an error event when raw storage fails to decode.
func emitStorageMalformed(ctx context.Context, contentType, typeName, field string, size int, err error) {
	capitan.Error(ctx, SignalStorageMalformed,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeyField.Field(field),
		KeySize.Field(size),
		KeyError.Field(err),
	)
}

// emitLocaleDropped emits an event for each locale a write discarded.
func emitLocaleDropped(ctx context.Context, typeName, field string, locale Locale) {
	capitan.Emit(ctx, SignalLocaleDropped,
		KeyTypeName.Field(typeName),
		KeyField.Field(field),
		KeyLocale.Field(string(locale)),
	)
}
