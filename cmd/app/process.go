package main

import (
	"context"
	"io"
	"time"

	"github.com/pwnholic/xkcdown/internal"
	"github.com/pwnholic/xkcdown/internal/clients"
	"github.com/pwnholic/xkcdown/internal/comic"
	"github.com/pwnholic/xkcdown/internal/exports"
)

type generateProcess struct {
	clients  *clients.RequestBuilder
	exporter *exports.DocumentExporter
	out      io.Writer
}

func NewGenerateProcess(t *clients.HTTPClientOptions, site clients.Website, workDir string, out io.Writer) *generateProcess {
	return &generateProcess{
		clients:  clients.NewRequestBuilder(t, site),
		exporter: exports.NewDocumentExporter(workDir),
		out:      out,
	}
}

func (gp *generateProcess) Close() {
	if err := gp.clients.Close(); err != nil {
		internal.DebugLog("closing http client: %v", err)
	}
}

// processComic runs fetch, parse, optional image work and render in order.
// The first failure ends the run and nothing reaches gp.out.
func (gp *generateProcess) processComic(ctx context.Context, flag *Flag) error {
	startTime := time.Now()

	rawURL := gp.clients.Website.ComicURL(flag.Num)
	internal.InfoLog("Fetching comic metadata from %s", rawURL)

	body, err := gp.clients.Request.FetchComicJSON(ctx, rawURL)
	if err != nil {
		return err
	}

	response, err := comic.ParseResponse(body)
	if err != nil {
		return err
	}
	c := comic.FromResponse(*response)

	if flag.Save || flag.PDF {
		if err := gp.processComicImage(ctx, c, flag); err != nil {
			return err
		}
	}

	if err := exports.Render(gp.out, c, flag.Output); err != nil {
		return err
	}

	internal.DebugLog("Comic #%d processed in %v", c.Num, time.Since(startTime))
	return nil
}

// processComicImage downloads the image once and hands it to the requested
// sinks. The file name is checked before anything is downloaded.
func (gp *generateProcess) processComicImage(ctx context.Context, c comic.Comic, flag *Flag) error {
	var fileName string
	if flag.Save {
		name, err := exports.ImageFileName(c.ImgURL)
		if err != nil {
			return err
		}
		fileName = name
	}

	internal.InfoLog("Downloading image %s", c.ImgURL)
	imageData, err := gp.clients.Request.FetchImage(ctx, c.ImgURL)
	if err != nil {
		return err
	}

	if flag.Save {
		target, err := gp.exporter.SaveImage(fileName, imageData)
		if err != nil {
			return err
		}
		internal.SuccessLog("Saved to %s", target)
	}

	if flag.PDF {
		target, err := gp.exporter.ExportPDF(c, imageData)
		if err != nil {
			return err
		}
		internal.SuccessLog("Saved to %s", target)
	}
	return nil
}
