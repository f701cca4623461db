package advisory

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/chainguard-dev/clog"
	"github.com/spf13/afero"
	"github.com/wolfi-dev/advid/pkg/internal/errorhelpers"
	"github.com/wolfi-dev/advid/pkg/vuln"
	"golang.org/x/sync/errgroup"
)

// ErrUnrecognizedScheme is reported in strict mode for IDs that look like a
// misspelling of a known scheme.
var ErrUnrecognizedScheme = errors.New("unrecognized advisory ID scheme")

type ValidateOptions struct {
	// Fs is the filesystem that Paths are read from.
	Fs afero.Fs

	// Paths lists files of advisory IDs, one ID per line.
	Paths []string

	// Strict causes IDs whose scheme looks like a typo of a known scheme to
	// fail validation instead of only logging a warning.
	Strict bool

	// Concurrency bounds how many files are validated at once. Zero or less
	// means no limit.
	Concurrency int
}

// ValidateResult summarizes a validation run.
type ValidateResult struct {
	// Files is the number of files read.
	Files int

	// IDs is the number of IDs found, valid or not.
	IDs int

	// Invalid is the number of IDs that failed validation.
	Invalid int

	// Suggestions is the number of IDs with a likely misspelled scheme.
	Suggestions int

	// Kinds counts valid IDs by kind.
	Kinds map[vuln.Kind]int
}

type fileResult struct {
	ids         int
	invalid     int
	suggestions int
	kinds       map[vuln.Kind]int
	errs        []error
}

// ValidateIDFiles validates every advisory ID in the given files. Files are
// read concurrently. All problems are returned together, each labeled with its
// file and line.
func ValidateIDFiles(ctx context.Context, opts ValidateOptions) (ValidateResult, error) {
	if opts.Fs == nil {
		return ValidateResult{}, fmt.Errorf("no filesystem provided")
	}

	results := make([]fileResult, len(opts.Paths))

	g, ctx := errgroup.WithContext(ctx)
	if opts.Concurrency > 0 {
		g.SetLimit(opts.Concurrency)
	}

	for i, path := range opts.Paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			results[i] = opts.validateFile(ctx, path)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return ValidateResult{}, err
	}

	result := ValidateResult{
		Files: len(opts.Paths),
		Kinds: make(map[vuln.Kind]int),
	}
	var errs []error
	for _, r := range results {
		result.IDs += r.ids
		result.Invalid += r.invalid
		result.Suggestions += r.suggestions
		for k, n := range r.kinds {
			result.Kinds[k] += n
		}
		errs = append(errs, r.errs...)
	}

	return result, errors.Join(errs...)
}

func (opts ValidateOptions) validateFile(ctx context.Context, path string) fileResult {
	log := clog.FromContext(ctx).With("file", path)

	result := fileResult{kinds: make(map[vuln.Kind]int)}

	b, err := afero.ReadFile(opts.Fs, path)
	if err != nil {
		result.errs = append(result.errs, errorhelpers.LabelError(path, err))
		return result
	}

	lines, err := ReadIDLines(bytes.NewReader(b))
	if err != nil {
		result.errs = append(result.errs, errorhelpers.LabelError(path, err))
		return result
	}

	log.Debug("read advisory IDs", "count", len(lines))

	for _, line := range lines {
		result.ids++

		id, err := vuln.ParseID(line.Text)
		if err != nil {
			result.invalid++
			result.errs = append(result.errs, errorhelpers.LabelLocation(path, line.Number, err))
			continue
		}

		if suggestion, ok := vuln.SuggestID(line.Text); ok {
			result.suggestions++

			if opts.Strict {
				result.invalid++
				result.errs = append(result.errs, errorhelpers.LabelLocation(
					path,
					line.Number,
					fmt.Errorf("%w in %q (did you mean %q?)", ErrUnrecognizedScheme, line.Text, suggestion),
				))
				continue
			}

			log.Warn("advisory ID has an unrecognized scheme", "line", line.Number, "id", line.Text, "suggestion", suggestion.String())
		}

		result.kinds[id.Kind()]++
	}

	return result
}
