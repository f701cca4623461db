package vuln

import (
	"regexp"
	"strings"

	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// RegexGHSA matches a well-formed GitHub Security Advisory ID.
var RegexGHSA = regexp.MustCompile(`^GHSA(-[23456789cfghjmpqrvwx]{4}){3}$`)

// maxSuggestDistance is the largest edit distance between a scheme token and a
// known one for which SuggestID offers a correction.
const maxSuggestDistance = 2

var suggestOptions = levenshtein.Options{
	InsCost: 1,
	DelCost: 1,
	SubCost: 1,
	Matches: levenshtein.IdenticalRunes,
}

// SuggestID looks for a likely typo in the scheme of an unrecognized ID, such
// as "cve-2021-1234" or "GSHA-jfh8-c2jp-5v3q", and returns the corrected ID.
//
// A correction is only offered when the rest of the text already has the
// shape the suggested scheme requires. It returns false for IDs that already
// have a recognized scheme.
func SuggestID(s string) (ID, bool) {
	if DetectKind(s) != KindOther {
		return ID{}, false
	}

	token, rest, ok := strings.Cut(s, separator)
	if !ok || token == "" {
		return ID{}, false
	}

	for _, k := range knownKinds {
		want := strings.TrimSuffix(k.Prefix(), separator)
		if !strings.EqualFold(token, want) && distance(token, want) > maxSuggestDistance {
			continue
		}

		candidate := k.Prefix() + rest
		if k == KindGHSA {
			candidate = prefixGHSA + strings.ToLower(rest)
			if !RegexGHSA.MatchString(candidate) {
				continue
			}
		}

		id, err := ParseID(candidate)
		if err != nil || id.IsPlaceholder() {
			continue
		}
		return id, true
	}

	return ID{}, false
}

func distance(a, b string) int {
	return levenshtein.DistanceForStrings([]rune(strings.ToUpper(a)), []rune(b), suggestOptions)
}
