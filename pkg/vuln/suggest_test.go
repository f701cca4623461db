package vuln

import "testing"

func TestSuggestID(t *testing.T) {
	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{input: "cve-2021-44228", want: "CVE-2021-44228", wantOK: true},
		{input: "CEV-2021-44228", want: "CVE-2021-44228", wantOK: true},
		{input: "rustsec-2019-0001", want: "RUSTSEC-2019-0001", wantOK: true},
		{input: "RUSTEC-2019-0001", want: "RUSTSEC-2019-0001", wantOK: true},
		{input: "talos-2017-0468", want: "TALOS-2017-0468", wantOK: true},
		{input: "GSHA-4mmc-49vf-jmcp", want: "GHSA-4mmc-49vf-jmcp", wantOK: true},
		{input: "ghsa-4MMC-49VF-JMCP", want: "GHSA-4mmc-49vf-jmcp", wantOK: true},

		// Shape doesn't fit the suggested scheme.
		{input: "cve-2021", wantOK: false},
		{input: "CWE-79", wantOK: false},
		{input: "RHSA-2023:1234", wantOK: false},
		{input: "GLSA-202301-01", wantOK: false},
		{input: "DSA-5432-1", wantOK: false},

		// Unrelated schemes.
		{input: "GO-2022-0001", wantOK: false},
		{input: "PYSEC-2021-1", wantOK: false},
		{input: "Anonymous-42", wantOK: false},
		{input: "nodash", wantOK: false},
		{input: "", wantOK: false},

		// Already recognized.
		{input: "CVE-2021-44228", wantOK: false},
		{input: "CVE-2021", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := SuggestID(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("SuggestID(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got.String() != tt.want {
				t.Errorf("SuggestID(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
