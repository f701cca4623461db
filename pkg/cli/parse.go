package cli

import (
	"fmt"

	"github.com/chainguard-dev/clog"
	"github.com/spf13/cobra"
)

type parseParams struct {
	output    outputFormat
	verbosity int
}

func cmdParse() *cobra.Command {
	p := &parseParams{}
	cmd := &cobra.Command{
		Use:   "parse [ID...]",
		Short: "Parse advisory IDs and show what they describe",
		Long: `Parse advisory IDs and show what they describe.

For each ID, this command shows the scheme it belongs to (RUSTSEC, CVE, GHSA,
TALOS, or OTHER), the year encoded in the ID (if any), the number at the end of
the ID (if any), and the URL of the advisory's web page (if known).

IDs are read from the arguments, or from stdin (one per line) if no arguments
are given.

If any ID fails to parse, the IDs that did parse are still shown, and the
command exits 1.`,
		Example: `advid parse RUSTSEC-2018-0001 CVE-2017-1000168
advid parse -o json < ids.txt`,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd, p.verbosity)
			log := clog.FromContext(ctx)

			inputs, err := inputIDs(cmd, args)
			if err != nil {
				return err
			}

			log.Debug("parsing advisory IDs", "count", len(inputs), "output", p.output)

			ids, parseErr := parseAll(inputs)
			if err := renderIDs(cmd.OutOrStdout(), p.output, ids); err != nil {
				return fmt.Errorf("rendering output: %w", err)
			}

			return parseErr
		},
	}

	p.addFlags(cmd)
	return cmd
}

func (p *parseParams) addFlags(cmd *cobra.Command) {
	addOutputFlag(&p.output, cmd)
	addVerboseFlag(&p.verbosity, cmd)
}
