package polyglot

import (
	"reflect"
	"sync"
)

// translatorKey identifies a cached translator by host type and storage format.
type translatorKey struct {
	host        reflect.Type
	contentType string
}

func keyFor[T any](codec Codec) translatorKey {
	return translatorKey{host: reflect.TypeFor[T](), contentType: codec.ContentType()}
}

var (
	translators   = make(map[translatorKey]any)
	translatorsMu sync.RWMutex
)

// Register builds a translator for T with opts and caches it for codec's
// content type. Configuration is fixed per type and format, so registering
// the same pair twice fails with ErrAlreadyRegistered; call Reset first to
// replace it.
func Register[T any](codec Codec, opts ...TranslatorOption) (*Translator[T], error) {
	key := keyFor[T](codec)

	translatorsMu.Lock()
	defer translatorsMu.Unlock()

	if _, ok := translators[key]; ok {
		return nil, newConfigError(ErrAlreadyRegistered, key.host.String(), key.contentType)
	}
	tr, err := NewTranslator[T](codec, opts...)
	if err != nil {
		return nil, err
	}
	translators[key] = tr
	return tr, nil
}

// Use returns the translator registered for T and codec's content type.
// Types that were never registered get a translator built from their
// `localized` tags alone, which is cached for later calls.
func Use[T any](codec Codec) (*Translator[T], error) {
	key := keyFor[T](codec)

	translatorsMu.RLock()
	cached, ok := translators[key]
	translatorsMu.RUnlock()
	if ok {
		return cached.(*Translator[T]), nil
	}

	translatorsMu.Lock()
	defer translatorsMu.Unlock()

	// Another goroutine may have built or registered it meanwhile.
	if cached, ok := translators[key]; ok {
		return cached.(*Translator[T]), nil
	}
	tr, err := NewTranslator[T](codec)
	if err != nil {
		return nil, err
	}
	translators[key] = tr
	return tr, nil
}

// Reset forgets every cached translator.
func Reset() {
	translatorsMu.Lock()
	defer translatorsMu.Unlock()
	translators = make(map[translatorKey]any)
}
