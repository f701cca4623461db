package vuln

import "testing"

func TestDetectKind(t *testing.T) {
	tests := []struct {
		input string
		want  Kind
	}{
		{input: "RUSTSEC-2018-0001", want: KindRustSec},
		{input: "RUSTSEC-", want: KindRustSec},
		{input: "CVE-2017-1000168", want: KindCVE},
		{input: "GHSA-4mmc-49vf-jmcp", want: KindGHSA},
		{input: "TALOS-2017-0468", want: KindTalos},
		{input: "RUSTSEC", want: KindOther},
		{input: "rustsec-2018-0001", want: KindOther},
		{input: " CVE-2017-1000168", want: KindOther},
		{input: "GO-2022-0001", want: KindOther},
		{input: "", want: KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := DetectKind(tt.input); got != tt.want {
				t.Errorf("DetectKind(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindRustSec, "RUSTSEC"},
		{KindCVE, "CVE"},
		{KindGHSA, "GHSA"},
		{KindTalos, "TALOS"},
		{KindOther, "OTHER"},
		{kindUnknown, "Kind(0)"},
		{Kind(42), "Kind(42)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKind_Prefix(t *testing.T) {
	for _, k := range knownKinds {
		if got := DetectKind(k.Prefix() + "x"); got != k {
			t.Errorf("DetectKind(%q) = %v, want %v", k.Prefix()+"x", got, k)
		}
	}

	if p := KindOther.Prefix(); p != "" {
		t.Errorf("KindOther.Prefix() = %q, want empty", p)
	}
}
