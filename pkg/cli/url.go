package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func cmdURL() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "url [ID...]",
		Short: "Print the web page URL for advisory IDs",
		Long: `Print the URL of the web page for each advisory ID, one per line.

There are no URLs for IDs of unrecognized schemes, or for the RUSTSEC-0000-0000
placeholder. These are reported as errors.`,
		Example:       "advid url GHSA-4mmc-49vf-jmcp",
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := inputIDs(cmd, args)
			if err != nil {
				return err
			}

			ids, parseErr := parseAll(inputs)

			errs := []error{parseErr}
			for _, id := range ids {
				u, ok := id.URL()
				if !ok {
					errs = append(errs, fmt.Errorf("no URL known for advisory ID %q", id))
					continue
				}

				fmt.Fprintln(cmd.OutOrStdout(), u)
			}

			return errors.Join(errs...)
		},
	}

	return cmd
}
