package data

import (
	"sort"

	"golang.org/x/text/language"
)

// Names holds localized display strings keyed by BCP 47 tag ("en", "ja", ...).
type Names map[string]string

// For returns the best display string for the preferred language.
// Falls back through x/text matching; an empty map yields "".
func (n Names) For(pref language.Tag) string {
	if len(n) == 0 {
		return ""
	}
	keys := make([]string, 0, len(n))
	for k := range n {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tags := make([]language.Tag, 0, len(keys))
	valid := keys[:0:len(keys)]
	for _, k := range keys {
		tag, err := language.Parse(k)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		valid = append(valid, k)
	}
	if len(tags) == 0 {
		return n[keys[0]]
	}
	_, idx, _ := language.NewMatcher(tags).Match(pref)
	return n[valid[idx]]
}
