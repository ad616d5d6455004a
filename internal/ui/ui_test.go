package ui

import (
	"bytes"
	"testing"
)

func TestNormalizeColorMode(t *testing.T) {
	cases := map[string]ColorMode{
		"always":  ColorAlways,
		" NEVER ": ColorNever,
		"auto":    ColorAuto,
		"":        ColorAuto,
		"rainbow": ColorAuto,
	}
	for value, want := range cases {
		if got := NormalizeColorMode(value); got != want {
			t.Fatalf("NormalizeColorMode(%q) = %q, want %q", value, got, want)
		}
	}
}

func TestMessagesWithoutColor(t *testing.T) {
	var out, errOut bytes.Buffer
	u := New(&out, &errOut, ColorAlways, true)

	u.Infof("serving %s\n", "askWeather")
	u.Errorf("boom: %d", 1)

	if out.String() != "serving askWeather\n" {
		t.Fatalf("Infof wrote %q", out.String())
	}
	if errOut.String() != "boom: 1\n" {
		t.Fatalf("Errorf wrote %q", errOut.String())
	}
}

func TestAnswerRoutesFailures(t *testing.T) {
	var out, errOut bytes.Buffer
	u := New(&out, &errOut, ColorNever, false)

	u.Answer("\n📍 Location: Paris\n🌬 Wind: 9 km/h\n", false)
	u.Answer("upstream down", true)

	if out.String() != "📍 Location: Paris\n🌬 Wind: 9 km/h\n" {
		t.Fatalf("Answer wrote %q", out.String())
	}
	if errOut.String() != "upstream down\n" {
		t.Fatalf("failed Answer wrote %q", errOut.String())
	}
}
