package advisory

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wolfi-dev/advid/pkg/internal"
	"github.com/wolfi-dev/advid/pkg/internal/errorhelpers"
	"github.com/wolfi-dev/advid/pkg/vuln"
)

func newTestFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()

	fsys := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fsys, name, []byte(content), 0o644))
	}
	return fsys
}

func TestValidateIDFiles(t *testing.T) {
	ctx := internal.WithNopLogger(context.Background())

	t.Run("all valid", func(t *testing.T) {
		fsys := newTestFs(t, map[string]string{
			"a.txt": "RUSTSEC-2018-0001\nCVE-2017-1000168\n# comment\nRUSTSEC-0000-0000\n",
			"b.txt": "GHSA-4mmc-49vf-jmcp\nTALOS-2017-0468\nAnonymous-42\n",
		})

		result, err := ValidateIDFiles(ctx, ValidateOptions{
			Fs:    fsys,
			Paths: []string{"a.txt", "b.txt"},
		})
		require.NoError(t, err)

		assert.Equal(t, 2, result.Files)
		assert.Equal(t, 6, result.IDs)
		assert.Equal(t, 0, result.Invalid)
		assert.Equal(t, map[vuln.Kind]int{
			vuln.KindRustSec: 2,
			vuln.KindCVE:     1,
			vuln.KindGHSA:    1,
			vuln.KindTalos:   1,
			vuln.KindOther:   1,
		}, result.Kinds)
	})

	t.Run("invalid IDs are labeled with their location", func(t *testing.T) {
		fsys := newTestFs(t, map[string]string{
			"ids.txt": "CVE-2017-1000168\n\nCVE-2017\nCVE-2017-abc\n",
		})

		result, err := ValidateIDFiles(ctx, ValidateOptions{
			Fs:          fsys,
			Paths:       []string{"ids.txt"},
			Concurrency: 1,
		})
		require.Error(t, err)

		assert.Equal(t, 3, result.IDs)
		assert.Equal(t, 2, result.Invalid)
		assert.ErrorIs(t, err, vuln.ErrIncompleteID)
		assert.ErrorIs(t, err, vuln.ErrMalformedID)
		assert.Contains(t, err.Error(), "ids.txt:3: incomplete advisory ID: CVE-2017")
		assert.Contains(t, err.Error(), "ids.txt:4: malformed advisory ID: CVE-2017-abc")

		var le *errorhelpers.LabeledError
		require.True(t, errors.As(err, &le))
		assert.Equal(t, "ids.txt:3", le.Label())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ValidateIDFiles(ctx, ValidateOptions{
			Fs:    afero.NewMemMapFs(),
			Paths: []string{"nope.txt"},
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "nope.txt")
	})

	t.Run("suggestions only warn by default", func(t *testing.T) {
		fsys := newTestFs(t, map[string]string{
			"ids.txt": "cve-2021-44228\n",
		})

		result, err := ValidateIDFiles(ctx, ValidateOptions{
			Fs:    fsys,
			Paths: []string{"ids.txt"},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Suggestions)
		assert.Equal(t, 1, result.Kinds[vuln.KindOther])
	})

	t.Run("suggestions fail in strict mode", func(t *testing.T) {
		fsys := newTestFs(t, map[string]string{
			"ids.txt": "cve-2021-44228\n",
		})

		result, err := ValidateIDFiles(ctx, ValidateOptions{
			Fs:     fsys,
			Paths:  []string{"ids.txt"},
			Strict: true,
		})
		assert.ErrorIs(t, err, ErrUnrecognizedScheme)
		assert.Contains(t, err.Error(), `did you mean "CVE-2021-44228"?`)
		assert.Equal(t, 1, result.Invalid)
	})

	t.Run("no filesystem", func(t *testing.T) {
		_, err := ValidateIDFiles(ctx, ValidateOptions{})
		assert.Error(t, err)
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := ValidateIDFiles(ctx, ValidateOptions{
			Fs:    newTestFs(t, map[string]string{"ids.txt": "CVE-2017-1000168\n"}),
			Paths: []string{"ids.txt"},
		})
		assert.ErrorIs(t, err, context.Canceled)
	})
}
