package clients

import (
	"fmt"
	"strings"
)

const (
	DefaultBaseURL  = "https://xkcd.com"
	DefaultInfoFile = "info.0.json"
)

// Website locates the metadata endpoint. It is passed into the builder
// instead of read from globals so tests can point it at a local server.
type Website struct {
	BaseURL  string
	InfoFile string
}

func NewWebsiteConfig() Website {
	return Website{
		BaseURL:  DefaultBaseURL,
		InfoFile: DefaultInfoFile,
	}
}

// ComicURL returns the metadata URL of comic num, or of the latest comic when
// num is nil. The number is not validated; the endpoint answers for it.
func (w Website) ComicURL(num *int) string {
	base := strings.TrimSuffix(w.BaseURL, "/")
	info := w.InfoFile
	if info == "" {
		info = DefaultInfoFile
	}
	if num == nil {
		return fmt.Sprintf("%s/%s", base, info)
	}
	return fmt.Sprintf("%s/%d/%s", base, *num, info)
}
