package polyglot

import (
	"maps"
	"slices"
)

// Locale is a case-sensitive locale token such as "en" or "de".
type Locale string

// Translations maps locales to the text stored for them.
// Empty values mean "no translation" and never survive an encode.
type Translations map[Locale]string

// Get returns the translation for l. ok is false when the entry is
// missing or empty.
func (t Translations) Get(l Locale) (string, bool) {
	v, ok := t[l]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Locales returns the sorted locales holding a non-empty translation.
func (t Translations) Locales() []Locale {
	out := make([]Locale, 0, len(t))
	for l, v := range t {
		if v != "" {
			out = append(out, l)
		}
	}
	slices.Sort(out)
	return out
}

// Merge copies every entry of other into t, overwriting same-locale keys.
// Empty values are copied too, so a following Purge deletes them.
func (t Translations) Merge(other Translations) {
	maps.Copy(t, other)
}

// Purge removes entries with an empty value and reports how many it removed.
func (t Translations) Purge() int {
	n := 0
	for l, v := range t {
		if v == "" {
			delete(t, l)
			n++
		}
	}
	return n
}

// Clone returns an independent copy. A nil map clones to an empty map.
func (t Translations) Clone() Translations {
	out := make(Translations, len(t))
	maps.Copy(out, t)
	return out
}

// Equal reports whether t and other hold the same entries.
func (t Translations) Equal(other Translations) bool {
	return maps.Equal(t, other)
}

// Intersect returns the sorted locales present in every set.
// It returns nil when no sets are given.
func Intersect(sets ...[]Locale) []Locale {
	if len(sets) == 0 {
		return nil
	}
	counts := make(map[Locale]int)
	for _, set := range sets {
		seen := make(map[Locale]bool, len(set))
		for _, l := range set {
			if seen[l] {
				continue
			}
			seen[l] = true
			counts[l]++
		}
	}
	out := make([]Locale, 0, len(counts))
	for l, n := range counts {
		if n == len(sets) {
			out = append(out, l)
		}
	}
	slices.Sort(out)
	return out
}

func containsLocale(set []Locale, l Locale) bool {
	return slices.Contains(set, l)
}
