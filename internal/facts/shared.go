package facts

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

// SharedBase splits a numbered subject such as "Hamilton Township (2)" into
// its base name. ok is false when subject carries no " (N)" suffix.
func SharedBase(subject string) (base string, ok bool) {
	if !strings.HasSuffix(subject, ")") {
		return "", false
	}
	open := strings.LastIndex(subject, " (")
	if open <= 0 {
		return "", false
	}
	digits := subject[open+2 : len(subject)-1]
	if digits == "" || strings.Trim(digits, "0123456789") != "" {
		return "", false
	}
	return subject[:open], true
}

// SharedNames returns the sorted distinct base names of numbered subjects in src.
func SharedNames(src Source) []string {
	var names []string
	for i := 0; i < src.Len(); i++ {
		if base, ok := SharedBase(src.At(i).Subject); ok {
			names = append(names, base)
		}
	}
	names = lo.Uniq(names)
	sort.Strings(names)
	return names
}
