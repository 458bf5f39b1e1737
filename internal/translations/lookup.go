package translations

import "fmt"

// Lookup returns the text of id in lang. Cells missing for lang, and languages
// outside the declared set, fall back to the reference language.
func Lookup(id MessageID, lang Language) string {
	e, ok := catalog[id]
	if !ok {
		return ""
	}
	if text, ok := e[lang]; ok {
		return text
	}
	return e[Reference]
}

// LookupTag is Lookup with a raw language tag.
func LookupTag(id MessageID, tag string) string {
	return Lookup(id, ParseLanguage(tag))
}

// UnsupportedLinkType composes the unsupported link type notice with the
// localized adapter label and the adapter name. The order of the fields is the
// same in every language.
func UnsupportedLinkType(lang Language, adapter string) string {
	return fmt.Sprintf("%s\n\n%s: %s",
		Lookup(UnsupportedLinkTypeNotice, lang),
		Lookup(NetworkAdapter, lang),
		adapter,
	)
}
