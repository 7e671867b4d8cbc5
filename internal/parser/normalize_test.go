package parser

import "testing"

func TestNormalize_FullWidthASCII(t *testing.T) {
	t.Parallel()

	if got := Normalize("［ＧＢＲ］"); got != "[GBR]" {
		t.Fatalf("full-width brackets: got %q", got)
	}
	if got := Normalize("Ａ１．５ｘ２"); got != "A1.5x2" {
		t.Fatalf("full-width alnum: got %q", got)
	}
}

func TestNormalize_FullWidthSpace(t *testing.T) {
	t.Parallel()

	if got := Normalize("오스템　TS3"); got != "오스템 TS3" {
		t.Fatalf("full-width space: got %q", got)
	}
}

func TestNormalize_HangulUntouched(t *testing.T) {
	t.Parallel()

	in := "홍길동 (동) 오스템"
	if got := Normalize(in); got != in {
		t.Fatalf("hangul must pass through: got %q", got)
	}
}

func TestNormalize_Empty(t *testing.T) {
	t.Parallel()

	if got := Normalize(""); got != "" {
		t.Fatalf("empty input: got %q", got)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"［ＧＢＲ］　ＩＺＥＮ", "IZEN - IZENOSS Φ5.0×10", "", "홍길동(12345)", "！＂＃～",
	}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Fatalf("not idempotent for %q: %q != %q", in, twice, once)
		}
	}
}
