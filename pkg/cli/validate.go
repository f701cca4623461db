package cli

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wolfi-dev/advid/pkg/advisory"
	"github.com/wolfi-dev/advid/pkg/cli/internal"
	"github.com/wolfi-dev/advid/pkg/cli/styles"
	advinternal "github.com/wolfi-dev/advid/pkg/internal"
)

type validateParams struct {
	fs          afero.Fs
	strict      bool
	concurrency int
	quiet       bool
	verbosity   int
}

var newValidateFs = afero.NewOsFs

func cmdValidate() *cobra.Command {
	p := &validateParams{fs: newValidateFs()}
	cmd := &cobra.Command{
		Use:   "validate FILE...",
		Short: "Validate files of advisory IDs",
		Long: `Validate files of advisory IDs.

Each file lists advisory IDs, one per line. Blank lines and lines starting with
"#" are ignored.

RUSTSEC, CVE, and TALOS IDs must have the form <SCHEME>-<YEAR>-<NUMBER>, with a
year between 2000 and 2100. GHSA IDs and IDs of other schemes are accepted as
they are.

IDs that look like a misspelling of a known scheme (such as "cve-2021-44228")
are reported as warnings, or as errors when --strict is given.

If any issues are found, the command will exit 1, and will print each problem
along with the file and line where it was found.`,
		Example:       "advid validate ids.txt more-ids.txt",
		SilenceErrors: true,
		Args:          cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd, p.verbosity)
			if p.quiet {
				ctx = advinternal.WithNopLogger(cmd.Context())
			}

			return runValidate(ctx, cmd.OutOrStdout(), p, args)
		},
	}

	p.addFlags(cmd)
	return cmd
}

func (p *validateParams) addFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&p.strict, "strict", false, "treat likely misspelled ID schemes as errors")
	cmd.Flags().IntVarP(&p.concurrency, "jobs", "j", runtime.GOMAXPROCS(0), "number of files to validate at once")
	cmd.Flags().BoolVarP(&p.quiet, "quiet", "q", false, "do not log warnings")
	addVerboseFlag(&p.verbosity, cmd)
}

func runValidate(ctx context.Context, w io.Writer, p *validateParams, paths []string) error {
	result, err := advisory.ValidateIDFiles(ctx, advisory.ValidateOptions{
		Fs:          p.fs,
		Paths:       paths,
		Strict:      p.strict,
		Concurrency: p.concurrency,
	})

	if result.Files > 0 {
		if _, werr := io.WriteString(w, renderValidateSummary(result)); werr != nil {
			return werr
		}
	}

	return err
}

func renderValidateSummary(result advisory.ValidateResult) string {
	var sb strings.Builder

	fmt.Fprintf(
		&sb,
		"%s %s in %s\n",
		styles.Bold().Render("Validated"),
		internal.CountNoun(result.IDs, "advisory ID", "advisory IDs"),
		internal.CountNoun(result.Files, "file", "files"),
	)

	kinds := lo.Keys(result.Kinds)
	slices.Sort(kinds)
	for _, k := range kinds {
		fmt.Fprintf(&sb, "  %s %s\n", styles.Kind(k).Render(fmt.Sprintf("%-8s", k)), humanize.Comma(int64(result.Kinds[k])))
	}

	if result.Suggestions > 0 {
		fmt.Fprintf(&sb, "%s with a possibly misspelled scheme\n", internal.CountNoun(result.Suggestions, "ID", "IDs"))
	}

	if result.Invalid > 0 {
		fmt.Fprintf(&sb, "%s invalid\n", styles.Secondary().Render(internal.CountNoun(result.Invalid, "ID is", "IDs are")))
	}

	return sb.String()
}
