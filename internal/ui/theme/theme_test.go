package theme

import "testing"

func TestUseSwitchesPalette(t *testing.T) {
	t.Cleanup(func() { Use(DefaultName) })

	if !Use(BarbieName) {
		t.Fatal("expected barbie palette to exist")
	}
	if Current() != BarbieName {
		t.Errorf("Current() = %q, want %q", Current(), BarbieName)
	}
	if Primary != palettes[BarbieName].Primary {
		t.Error("Primary not switched to barbie palette")
	}
}

func TestUseUnknownKeepsCurrent(t *testing.T) {
	Use(DefaultName)

	if Use("neon") {
		t.Fatal("expected unknown palette to be rejected")
	}
	if Current() != DefaultName {
		t.Errorf("Current() = %q, want %q", Current(), DefaultName)
	}
}

func TestEveryNameHasPalette(t *testing.T) {
	for _, n := range Names() {
		if _, ok := palettes[n]; !ok {
			t.Errorf("missing palette %q", n)
		}
	}
}
