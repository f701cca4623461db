package cli

import (
	"errors"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/wolfi-dev/advid/pkg/advisory"
	"github.com/wolfi-dev/advid/pkg/vuln"
	"golang.org/x/term"
)

var errNoInput = errors.New("no advisory IDs given as arguments or on stdin")

// inputIDs returns the advisory IDs given as arguments, or, if there are none,
// the IDs listed one per line on stdin.
func inputIDs(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil, errNoInput
	}

	lines, err := advisory.ReadIDLines(in)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errNoInput
	}

	return lo.Map(lines, func(l advisory.Line, _ int) string {
		return l.Text
	}), nil
}

// parseAll parses each input. It returns every ID that parsed, along with a
// joined error for the inputs that didn't.
func parseAll(inputs []string) ([]vuln.ID, error) {
	var ids []vuln.ID
	var errs []error

	for _, s := range inputs {
		id, err := vuln.ParseID(s)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		ids = append(ids, id)
	}

	return ids, errors.Join(errs...)
}
