package completion

import "unicode/utf8"

// LongestCommonPrefix returns the longest string that prefixes every word.
// Columns are compared rune by rune; a column is shared only when every word
// has the same encoded rune there. The result is a slice of the first word,
// so bytes that are not valid UTF-8 are kept as they are.
func LongestCommonPrefix(words []string) string {
	if len(words) == 0 {
		return ""
	}
	first := words[0]
	end := 0
	for end < len(first) {
		_, size := utf8.DecodeRuneInString(first[end:])
		column := first[end : end+size]
		for _, word := range words[1:] {
			if len(word) < end+size || word[end:end+size] != column {
				return first[:end]
			}
		}
		end += size
	}
	return first
}
