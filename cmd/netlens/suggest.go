package main

import (
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"

	"github.com/alexisbeaulieu97/netlens/internal/styles"
	"github.com/alexisbeaulieu97/netlens/internal/translations"
)

// closest returns the candidate with the smallest edit distance to name.
func closest(name string, candidates []string) string {
	return lo.MinBy(candidates, func(a, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})
}

// uniqueMatch returns the only candidate that fuzzy matches name, if any.
func uniqueMatch(name string, candidates []string) (string, bool) {
	matches := fuzzy.FindFold(name, candidates)
	if len(matches) != 1 {
		return "", false
	}
	return matches[0], true
}

func messageNames() []string {
	return lo.Map(translations.MessageIDs(), func(id translations.MessageID, _ int) string {
		return id.String()
	})
}

func styleNames() []string {
	return lo.Map(styles.BuiltinStyles(), func(s styles.Style, _ int) string {
		return s.String()
	})
}
