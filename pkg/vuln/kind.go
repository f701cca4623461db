package vuln

import (
	"fmt"
	"strings"
)

// Kind is the scheme of an advisory identifier, as detected from its prefix.
//
// More kinds may be added over time. Code that switches on a Kind should
// always include a default case.
type Kind int

const (
	// kindUnknown is the zero Kind, held only by the zero ID.
	kindUnknown Kind = iota

	// KindRustSec is the RustSec advisory database namespace.
	KindRustSec

	// KindCVE is Common Vulnerabilities and Exposures.
	KindCVE

	// KindGHSA is a GitHub Security Advisory.
	KindGHSA

	// KindTalos is a Cisco Talos report.
	KindTalos

	// KindOther is any identifier whose scheme isn't recognized.
	KindOther
)

const (
	prefixRustSec = "RUSTSEC-"
	prefixCVE     = "CVE-"
	prefixGHSA    = "GHSA-"
	prefixTalos   = "TALOS-"
)

// DetectKind returns the Kind for the given identifier text. Prefixes are
// matched exactly and case-sensitively. Text with no known prefix, including
// the empty string, is KindOther.
func DetectKind(s string) Kind {
	switch {
	case strings.HasPrefix(s, prefixRustSec):
		return KindRustSec
	case strings.HasPrefix(s, prefixCVE):
		return KindCVE
	case strings.HasPrefix(s, prefixTalos):
		return KindTalos
	case strings.HasPrefix(s, prefixGHSA):
		return KindGHSA
	default:
		return KindOther
	}
}

// Prefix returns the identifier prefix used to detect this kind, or the empty
// string for KindOther.
func (k Kind) Prefix() string {
	switch k {
	case KindRustSec:
		return prefixRustSec
	case KindCVE:
		return prefixCVE
	case KindGHSA:
		return prefixGHSA
	case KindTalos:
		return prefixTalos
	default:
		return ""
	}
}

// HasYear reports whether identifiers of this kind encode a publication year.
func (k Kind) HasYear() bool {
	switch k {
	case KindRustSec, KindCVE, KindTalos:
		return true
	default:
		return false
	}
}

func (k Kind) String() string {
	switch k {
	case KindRustSec:
		return "RUSTSEC"
	case KindCVE:
		return "CVE"
	case KindGHSA:
		return "GHSA"
	case KindTalos:
		return "TALOS"
	case KindOther:
		return "OTHER"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// knownKinds lists every kind with a detection prefix, in detection order.
var knownKinds = []Kind{KindRustSec, KindCVE, KindTalos, KindGHSA}
