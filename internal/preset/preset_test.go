package preset_test

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"recrate/internal/preset"
)

func TestAllReturnsThreeFixedPresets(t *testing.T) {
	all := preset.All()
	if len(all) != 3 {
		t.Fatalf("expected 3 presets, got %d", len(all))
	}

	want := []preset.Preset{
		{Name: "MP3-v0", QualityFlag: "-q:a", QualityValue: "0"},
		{Name: "MP3-v2", QualityFlag: "-q:a", QualityValue: "2"},
		{Name: "MP3-320kbps-CBR", QualityFlag: "-b:a", QualityValue: "320k"},
	}
	for i, p := range all {
		if p != want[i] {
			t.Fatalf("preset %d = %+v, want %+v", i, p, want[i])
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	first := preset.All()
	first[0].Name = "mutated"
	if preset.All()[0].Name != "MP3-v0" {
		t.Fatal("All returned a shared slice")
	}
}

func TestByName(t *testing.T) {
	p, ok := preset.ByName("mp3-V2")
	if !ok {
		t.Fatal("expected case-insensitive match")
	}
	if p.QualityValue != "2" {
		t.Fatalf("unexpected preset: %+v", p)
	}

	if _, ok := preset.ByName("FLAC"); ok {
		t.Fatal("expected no match for unknown name")
	}
}

func TestSelectRetriesUntilValidChoice(t *testing.T) {
	in := bufio.NewScanner(strings.NewReader("x\n9\n\n 3 \n"))
	var out bytes.Buffer

	p, err := preset.Select(in, &out)
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	if p.Name != "MP3-320kbps-CBR" {
		t.Fatalf("selected %q, want MP3-320kbps-CBR", p.Name)
	}
	if got := strings.Count(out.String(), "Invalid choice"); got != 3 {
		t.Fatalf("expected 3 retry messages, got %d", got)
	}
}

func TestSelectReturnsEOFWhenInputEnds(t *testing.T) {
	in := bufio.NewScanner(strings.NewReader("nope\n"))
	var out bytes.Buffer

	if _, err := preset.Select(in, &out); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}
