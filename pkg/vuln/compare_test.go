package vuln

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSortIDs(t *testing.T) {
	input := []string{
		"Anonymous-42",
		"GHSA-4mmc-49vf-jmcp",
		"CVE-2017-1000168",
		"RUSTSEC-2019-0001",
		"TALOS-2017-0468",
		"CVE-2014-0160",
		Placeholder,
		"RUSTSEC-2018-0002",
		"RUSTSEC-2018-0001",
		"GHSA-2222-3333-4444",
		"Alpha",
	}

	ids := make([]ID, 0, len(input))
	for _, s := range input {
		ids = append(ids, MustParseID(s))
	}

	SortIDs(ids)

	got := make([]string, 0, len(ids))
	for _, id := range ids {
		got = append(got, id.String())
	}

	want := []string{
		Placeholder,
		"RUSTSEC-2018-0001",
		"RUSTSEC-2018-0002",
		"RUSTSEC-2019-0001",
		"CVE-2014-0160",
		"CVE-2017-1000168",
		"GHSA-2222-3333-4444",
		"GHSA-4mmc-49vf-jmcp",
		"TALOS-2017-0468",
		"Alpha",
		"Anonymous-42",
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SortIDs() mismatch (-want +got):\n%s", diff)
	}
}

func TestCompare(t *testing.T) {
	a := MustParseID("CVE-2017-1000168")
	b := MustParseID("CVE-2017-1000168")
	c := MustParseID("RUSTSEC-2030-0001")

	if got := Compare(a, b); got != 0 {
		t.Errorf("Compare(equal) = %d, want 0", got)
	}
	// kind takes priority over year
	if got := Compare(c, a); got != -1 {
		t.Errorf("Compare(rustsec, cve) = %d, want -1", got)
	}
	if got := Compare(a, c); got != 1 {
		t.Errorf("Compare(cve, rustsec) = %d, want 1", got)
	}
}
