package item

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"milk", "Milk"},
		{" MILK ", "Milk"},
		{"organic whole milk", "Organic Whole Milk"},
		{"  spaced \t out  words ", "Spaced Out Words"},
		{"eGGs", "Eggs"},
		{"rice-bowl", "Rice-bowl"},
		{"éclair", "Éclair"},
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestKeyMatchesAcrossCasing(t *testing.T) {
	if Key(Normalize("MILK")) != Key(Normalize("milk")) {
		t.Fatalf("expected casing variants to share a key")
	}
	if Key("Milk") == Key("Bread") {
		t.Fatalf("distinct names must not collide")
	}
}
