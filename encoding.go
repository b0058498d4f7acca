package polyglot

// Decode parses raw storage into a translation map.
// Absent ("") or malformed storage decodes to an empty map.
func Decode(codec Codec, raw string) Translations {
	t, err := DecodeStrict(codec, raw)
	if err != nil {
		return Translations{}
	}
	return t
}

// DecodeStrict is Decode but reports malformed storage as a *CodecError
// wrapping ErrUnmarshal. The returned map is empty, never nil, on error.
func DecodeStrict(codec Codec, raw string) (Translations, error) {
	if raw == "" {
		return Translations{}, nil
	}

	var m map[string]string
	if err := codec.Unmarshal([]byte(raw), &m); err != nil {
		return Translations{}, newCodecError(ErrUnmarshal, err)
	}

	t := make(Translations, len(m))
	for k, v := range m {
		t[Locale(k)] = v
	}
	return t, nil
}

// Encode serializes t after dropping empty translations.
// A map with no translations left encodes to "", the absent value.
// t itself is not modified.
func Encode(codec Codec, t Translations) (string, error) {
	m := make(map[string]string, len(t))
	for l, v := range t {
		if v == "" {
			continue
		}
		m[string(l)] = v
	}
	if len(m) == 0 {
		return "", nil
	}

	data, err := codec.Marshal(m)
	if err != nil {
		return "", newCodecError(ErrMarshal, err)
	}
	return string(data), nil
}
