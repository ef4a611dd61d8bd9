package core

import "testing"

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#38bdf8")
	if err != nil {
		t.Fatalf("ParseHex() error = %v", err)
	}
	if c != RGB(0x38, 0xbd, 0xf8) {
		t.Errorf("ParseHex() = %+v", c)
	}
	if c.Hex() != "#38bdf8" {
		t.Errorf("Hex() = %q, expected #38bdf8", c.Hex())
	}

	if _, err := ParseHex("not-a-colour"); err == nil {
		t.Error("ParseHex() should reject malformed input")
	}
	if Hex("nope").IsSet() {
		t.Error("Hex() of malformed input should be unset")
	}
}

func TestLerpColor(t *testing.T) {
	black := RGB(0, 0, 0)
	white := RGB(255, 255, 255)

	if got := LerpColor(black, white, 0); got != black {
		t.Errorf("LerpColor(t=0) = %s", got.Hex())
	}
	if got := LerpColor(black, white, 1); got != white {
		t.Errorf("LerpColor(t=1) = %s", got.Hex())
	}
	mid := LerpColor(black, white, 0.5)
	if mid.R < 126 || mid.R > 129 || mid.R != mid.G || mid.G != mid.B {
		t.Errorf("LerpColor(t=0.5) = %s, expected mid grey", mid.Hex())
	}

	// Out of range t is clamped
	if got := LerpColor(black, white, 3); got != white {
		t.Errorf("LerpColor(t=3) = %s, expected white", got.Hex())
	}

	// Unset endpoint yields the other
	if got := LerpColor(Color{}, white, 0.2); got != white {
		t.Errorf("LerpColor(unset, white) = %s", got.Hex())
	}
}

func TestHSVAndDim(t *testing.T) {
	red := HSV(0, 1, 1)
	if red != RGB(255, 0, 0) {
		t.Errorf("HSV(0,1,1) = %s, expected #ff0000", red.Hex())
	}
	if got := red.Dim(0); got != RGB(0, 0, 0) {
		t.Errorf("Dim(0) = %s, expected black", got.Hex())
	}
	if got := red.Dim(1); got != red {
		t.Errorf("Dim(1) = %s, expected unchanged", got.Hex())
	}
	if (Color{}).Dim(0.5).IsSet() {
		t.Error("Dim of unset colour should stay unset")
	}
}
