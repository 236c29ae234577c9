package exports

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pwnholic/xkcdown/internal"
	"github.com/pwnholic/xkcdown/internal/comic"
)

const (
	stageRender    = "render"
	stageSaveImage = "save image"
	stageExportPDF = "export pdf"
)

// OutputFormat selects how a comic is printed. It satisfies pflag.Value.
type OutputFormat int

const (
	FormatText OutputFormat = iota
	FormatJSON
)

func (f OutputFormat) String() string {
	switch f {
	case FormatJSON:
		return "json"
	default:
		return "text"
	}
}

func (f *OutputFormat) Set(s string) error {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text":
		*f = FormatText
	case "json":
		*f = FormatJSON
	default:
		return fmt.Errorf("invalid output format %q (allowed: text, json)", s)
	}
	return nil
}

func (f *OutputFormat) Type() string {
	return "text|json"
}

// Render writes c to w in format f. Nothing is written unless rendering
// succeeds.
func Render(w io.Writer, c comic.Comic, f OutputFormat) error {
	var buf bytes.Buffer
	switch f {
	case FormatText:
		fmt.Fprintf(&buf, "Title: %s\n", c.Title)
		fmt.Fprintf(&buf, "Comic No: %d\n", c.Num)
		fmt.Fprintf(&buf, "Date: %s\n", c.Date)
		fmt.Fprintf(&buf, "Description: %s\n", c.Desc)
		fmt.Fprintf(&buf, "Image: %s\n", c.ImgURL)
	case FormatJSON:
		data, err := json.Marshal(c)
		if err != nil {
			return internal.NewStageError(internal.SerializationError, stageRender, err)
		}
		buf.Write(data)
		buf.WriteByte('\n')
	default:
		return internal.NewStageError(internal.SerializationError, stageRender, fmt.Errorf("unknown output format %d", int(f)))
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return internal.NewStageError(internal.IOError, stageRender, err)
	}
	return nil
}

// DocumentExporter writes comic files into one directory, the process
// working directory for the CLI.
type DocumentExporter struct {
	Dir string
}

func NewDocumentExporter(dir string) *DocumentExporter {
	return &DocumentExporter{Dir: dir}
}

// SaveImage stores the raw image bytes as Dir/name.
func (e *DocumentExporter) SaveImage(name string, data []byte) (string, error) {
	target, err := WriteFile(e.Dir, name, data)
	if err != nil {
		return "", internal.NewStageError(internal.IOError, stageSaveImage, err)
	}

	if format, width, height, err := DescribeImage(data); err != nil {
		internal.WarningLog("Saved %s but could not read its header: %v", target, err)
	} else {
		internal.InfoLog("format: (%s), size: (%dx%d), filename: (%s)", format, width, height, name)
	}
	return target, nil
}

// ExportPDF writes a single-page PDF of the comic image as <num>.pdf.
func (e *DocumentExporter) ExportPDF(c comic.Comic, img []byte) (string, error) {
	pdfGen := NewPDFGenerator()
	defer pdfGen.Close()

	pdfGen.SetComicInfo(c)
	if err := pdfGen.AddImageToPDF(img); err != nil {
		return "", internal.NewStageError(internal.ParseError, stageExportPDF, err)
	}

	outputPath := filepath.Join(e.Dir, fmt.Sprintf("%d.pdf", c.Num))
	if err := pdfGen.SavePDF(outputPath); err != nil {
		return "", internal.NewStageError(internal.IOError, stageExportPDF, err)
	}
	return outputPath, nil
}
