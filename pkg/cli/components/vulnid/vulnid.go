package vulnid

import (
	"github.com/savioxavier/termlink"
	"github.com/wolfi-dev/advid/pkg/vuln"
)

var termSupportsHyperlinks = termlink.SupportsHyperlinks()

// Hyperlink returns the ID as a terminal hyperlink to its advisory page, or
// the plain ID text if the terminal doesn't support hyperlinks or the ID has
// no URL.
func Hyperlink(id vuln.ID) string {
	if !termSupportsHyperlinks {
		return id.String()
	}

	return link(id)
}

func link(id vuln.ID) string {
	u, ok := id.URL()
	if !ok {
		return id.String()
	}

	return termlink.Link(id.String(), u)
}
