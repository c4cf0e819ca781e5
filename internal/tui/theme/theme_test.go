package theme

import "testing"

func TestByNameFallsBackToDefault(t *testing.T) {
	if got := ByName("tokyo-night"); got.Name != "tokyo-night" {
		t.Fatalf("ByName(tokyo-night) = %s", got.Name)
	}
	if got := ByName("no-such-theme"); got.Name != FlexokiDark.Name {
		t.Fatalf("ByName(unknown) = %s, want %s", got.Name, FlexokiDark.Name)
	}
}

func TestLookup(t *testing.T) {
	for _, th := range All {
		if _, ok := Lookup(th.Name); !ok {
			t.Errorf("Lookup(%q) not found", th.Name)
		}
	}
	if _, ok := Lookup("Tokyo-Night"); ok {
		t.Error("Lookup should be case sensitive")
	}
}
