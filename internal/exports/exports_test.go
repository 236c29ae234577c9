package exports

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/pwnholic/xkcdown/internal"
	"github.com/pwnholic/xkcdown/internal/comic"
)

var barrel = comic.Comic{
	Title:  "Barrel - Part 1",
	Num:    1,
	Date:   "1-1-2006",
	Desc:   "Don't we all.",
	ImgURL: "https://imgs.xkcd.com/comics/barrel_cropped.jpg",
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, barrel, FormatText); err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := "Title: Barrel - Part 1\n" +
		"Comic No: 1\n" +
		"Date: 1-1-2006\n" +
		"Description: Don't we all.\n" +
		"Image: https://imgs.xkcd.com/comics/barrel_cropped.jpg\n"
	if got := buf.String(); got != want {
		t.Fatalf("text output mismatch:\n got: %q\nwant: %q", got, want)
	}
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, barrel, FormatJSON); err != nil {
		t.Fatalf("Render: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not one JSON object: %v (%q)", err, buf.String())
	}
	want := map[string]any{
		"title":   "Barrel - Part 1",
		"num":     float64(1),
		"date":    "1-1-2006",
		"desc":    "Don't we all.",
		"img_url": "https://imgs.xkcd.com/comics/barrel_cropped.jpg",
	}
	if len(got) != len(want) {
		t.Fatalf("keys = %v, want %v", got, want)
	}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("%s = %v, want %v", k, got[k], v)
		}
	}
	if bytes.Count(buf.Bytes(), []byte("\n")) != 1 {
		t.Fatalf("expected a single line, got %q", buf.String())
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, barrel, OutputFormat(42))
	if !internal.IsKind(err, internal.SerializationError) {
		t.Fatalf("err = %v, want SerializationError", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("partial output written: %q", buf.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestRenderWriteFailure(t *testing.T) {
	err := Render(failingWriter{}, barrel, FormatText)
	if !internal.IsKind(err, internal.IOError) {
		t.Fatalf("err = %v, want IOError", err)
	}
}

func TestOutputFormatSet(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputFormat
		wantErr bool
	}{
		{"text", FormatText, false},
		{"json", FormatJSON, false},
		{"JSON", FormatJSON, false},
		{" Text ", FormatText, false},
		{"yaml", FormatText, true},
		{"", FormatText, true},
	}
	for _, tt := range tests {
		var f OutputFormat
		err := f.Set(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("Set(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if err == nil && f != tt.want {
			t.Fatalf("Set(%q) = %v, want %v", tt.in, f, tt.want)
		}
	}

	if FormatJSON.String() != "json" || FormatText.String() != "text" {
		t.Fatalf("String() mismatch")
	}
}
