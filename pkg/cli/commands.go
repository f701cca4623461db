package cli

import (
	"github.com/spf13/cobra"
	"sigs.k8s.io/release-utils/version"
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "advid",
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		Short:             "Parse, validate, and link security advisory IDs",
	}

	cmd.AddCommand(
		cmdOpen(),
		cmdParse(),
		cmdSort(),
		cmdURL(),
		cmdValidate(),
		version.Version(),
	)

	return cmd
}
