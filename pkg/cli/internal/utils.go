package internal

import "github.com/dustin/go-humanize"

// SelectPlurality returns the singular or plural form of a word based on the
// count.
func SelectPlurality(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}

// CountNoun formats a count followed by the matching form of a noun, like
// "1 file" or "1,024 files".
func CountNoun(count int, singular, plural string) string {
	return humanize.Comma(int64(count)) + " " + SelectPlurality(count, singular, plural)
}
