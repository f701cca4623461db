package cli

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/wolfi-dev/advid/pkg/vuln"
)

type sortParams struct {
	unique bool
}

func cmdSort() *cobra.Command {
	p := &sortParams{}
	cmd := &cobra.Command{
		Use:   "sort [ID...]",
		Short: "Sort advisory IDs",
		Long: `Sort advisory IDs by scheme, then by year, then by the ID text.

IDs are read from the arguments, or from stdin (one per line) if no arguments
are given. Nothing is printed if any ID fails to parse.`,
		Example:       "advid sort --unique < ids.txt",
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := inputIDs(cmd, args)
			if err != nil {
				return err
			}

			ids, err := parseAll(inputs)
			if err != nil {
				return err
			}

			if p.unique {
				ids = lo.Uniq(ids)
			}
			vuln.SortIDs(ids)

			for _, id := range ids {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&p.unique, "unique", "u", false, "omit repeated IDs")
	return cmd
}
