package translations

import (
	"strings"

	"golang.org/x/text/language"
)

// Language is one of the interface languages. EN is the reference language.
type Language int

const (
	EN Language = iota
	IT
	FR
	ES
	PL
	DE
	UK
	ZH
	RO
	KO
	PT
	TR
	RU
	EL
	FA
	SV
	FI
	JA
	UZ
	VI
	ID

	languageCount
)

// Reference is returned for any tag that is not recognised.
const Reference = EN

var languageCodes = [languageCount]string{
	EN: "en", IT: "it", FR: "fr", ES: "es", PL: "pl", DE: "de", UK: "uk",
	ZH: "zh", RO: "ro", KO: "ko", PT: "pt", TR: "tr", RU: "ru", EL: "el",
	FA: "fa", SV: "sv", FI: "fi", JA: "ja", UZ: "uz", VI: "vi", ID: "id",
}

// Languages lists every supported language.
func Languages() []Language {
	out := make([]Language, 0, languageCount)
	for l := Language(0); l < languageCount; l++ {
		out = append(out, l)
	}
	return out
}

// Code returns the ISO 639-1 code of the language.
func (l Language) Code() string {
	if l < 0 || l >= languageCount {
		return languageCodes[Reference]
	}
	return languageCodes[l]
}

func (l Language) String() string {
	return strings.ToUpper(l.Code())
}

// ParseLanguage maps a BCP 47 tag such as "it", "pt-BR" or "zh_Hans" to a
// Language. Unknown or malformed tags silently resolve to Reference.
func ParseLanguage(tag string) Language {
	tag = strings.ReplaceAll(strings.TrimSpace(tag), "_", "-")
	if tag == "" {
		return Reference
	}
	parsed, err := language.Parse(tag)
	if err != nil {
		return Reference
	}
	base, _ := parsed.Base()
	code := base.String()
	for l, candidate := range languageCodes {
		if candidate == code {
			return Language(l)
		}
	}
	return Reference
}

// Supported reports whether tag names a supported language rather than
// falling back to Reference.
func Supported(tag string) bool {
	l := ParseLanguage(tag)
	if l != Reference {
		return true
	}
	parsed, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(tag), "_", "-"))
	if err != nil {
		return false
	}
	base, _ := parsed.Base()
	return base.String() == languageCodes[Reference]
}
