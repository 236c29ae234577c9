package exports

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"path/filepath"
	"sync"
	"time"

	"github.com/signintech/gopdf"

	"github.com/pwnholic/xkcdown/internal"
	"github.com/pwnholic/xkcdown/internal/comic"
)

type PDFGenerator struct {
	pdf   *gopdf.GoPdf
	pages int
	mutex sync.Mutex
}

func NewPDFGenerator() *PDFGenerator {
	pdf := &gopdf.GoPdf{}
	pdf.Start(gopdf.Config{
		Unit:     gopdf.UnitPT,
		PageSize: *gopdf.PageSizeA4,
	})
	return &PDFGenerator{pdf: pdf}
}

func (p *PDFGenerator) SetComicInfo(c comic.Comic) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.pdf == nil {
		return
	}
	p.pdf.SetInfo(gopdf.PdfInfo{
		Title:        c.Title,
		Subject:      c.Desc,
		Creator:      "xkcdown",
		CreationDate: time.Now(),
	})
}

// AddImageToPDF appends one page sized to the image. Any decodable format is
// accepted; the page always embeds a JPEG.
func (p *PDFGenerator) AddImageToPDF(imgBytes []byte) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.pdf == nil {
		return errors.New("PDF not initialized")
	}
	if len(imgBytes) == 0 {
		return errors.New("empty image data")
	}

	img, format, err := image.Decode(bytes.NewReader(imgBytes))
	if err != nil {
		return fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width < 1 || height < 1 {
		return fmt.Errorf("invalid image dimensions: %dx%d", width, height)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return fmt.Errorf("failed to convert %s image to JPEG: %w", format, err)
	}

	imageHolder, err := gopdf.ImageHolderByBytes(buf.Bytes())
	if err != nil {
		return fmt.Errorf("failed to create PDF image holder: %w", err)
	}

	// 128 px per inch, 72 pt per inch
	pageSize := &gopdf.Rect{
		W: float64(width) * 72 / 128,
		H: float64(height) * 72 / 128,
	}

	p.pdf.AddPageWithOption(gopdf.PageOption{PageSize: pageSize})
	if err := p.pdf.ImageByHolder(imageHolder, 0, 0, pageSize); err != nil {
		return fmt.Errorf("failed to add image to PDF: %w", err)
	}
	p.pages++

	internal.DebugLog("format: (%s), size: (%dx%d), page: (%d)", format, width, height, p.pages)
	return nil
}

// SavePDF writes the document to outputPath all-or-nothing.
func (p *PDFGenerator) SavePDF(outputPath string) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.pdf == nil {
		return errors.New("PDF not initialized")
	}
	if p.pages == 0 {
		return errors.New("PDF has no pages")
	}

	data, err := p.pdf.GetBytesPdfReturnErr()
	if err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}
	_, err = WriteFile(filepath.Dir(outputPath), filepath.Base(outputPath), data)
	return err
}

func (p *PDFGenerator) Close() {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.pdf != nil {
		_ = p.pdf.Close()
		p.pdf = nil
	}
}
