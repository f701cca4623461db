package vuln

import "fmt"

// URL returns the canonical web URL for the advisory. There is no URL for the
// placeholder ID or for IDs of unrecognized schemes.
func (id ID) URL() (string, bool) {
	switch id.kind {
	case KindRustSec:
		if id.IsPlaceholder() {
			return "", false
		}
		return fmt.Sprintf("https://rustsec.org/advisories/%s", id.raw), true

	case KindCVE:
		return fmt.Sprintf("https://cve.mitre.org/cgi-bin/cvename.cgi?name=%s", id.raw), true

	case KindGHSA:
		return fmt.Sprintf("https://github.com/advisories/%s", id.raw), true

	case KindTalos:
		return fmt.Sprintf("https://www.talosintelligence.com/reports/%s", id.raw), true
	}

	return "", false
}
