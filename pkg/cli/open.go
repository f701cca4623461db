package cli

import (
	"fmt"

	"github.com/cli/browser"
	"github.com/spf13/cobra"
	"github.com/wolfi-dev/advid/pkg/vuln"
)

// openURL is swapped out in tests.
var openURL = browser.OpenURL

func cmdOpen() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "open ID",
		Short:         "Open the web page for an advisory ID in a browser",
		Example:       "advid open RUSTSEC-2018-0001",
		SilenceErrors: true,
		Args:          cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := vuln.ParseID(args[0])
			if err != nil {
				return err
			}

			u, ok := id.URL()
			if !ok {
				return fmt.Errorf("no URL known for advisory ID %q", id)
			}

			if err := openURL(u); err != nil {
				return fmt.Errorf("opening %s: %w", u, err)
			}

			return nil
		},
	}

	return cmd
}
