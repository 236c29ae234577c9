package exports

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pwnholic/xkcdown/internal"
)

func TestExportPDF(t *testing.T) {
	dir := t.TempDir()

	out, err := NewDocumentExporter(dir).ExportPDF(barrel, pngBytes(t, 256, 128))
	if err != nil {
		t.Fatalf("ExportPDF: %v", err)
	}
	if out != filepath.Join(dir, "1.pdf") {
		t.Fatalf("output path = %q", out)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read pdf: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output is not a PDF: %q", data[:min(len(data), 16)])
	}
}

func TestExportPDFUndecodableImage(t *testing.T) {
	dir := t.TempDir()

	_, err := NewDocumentExporter(dir).ExportPDF(barrel, []byte("<html>not an image</html>"))
	if !internal.IsKind(err, internal.ParseError) {
		t.Fatalf("err = %v, want ParseError", err)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "1.pdf")); !os.IsNotExist(statErr) {
		t.Fatalf("pdf written despite failure: %v", statErr)
	}
}

func TestPDFGeneratorWithoutPages(t *testing.T) {
	gen := NewPDFGenerator()
	defer gen.Close()

	if err := gen.SavePDF(filepath.Join(t.TempDir(), "empty.pdf")); err == nil {
		t.Fatalf("expected error saving a PDF with no pages")
	}
}

func TestPDFGeneratorClosed(t *testing.T) {
	gen := NewPDFGenerator()
	gen.Close()

	if err := gen.AddImageToPDF(pngBytes(t, 8, 8)); err == nil {
		t.Fatalf("expected error after Close")
	}
	gen.Close()
}
