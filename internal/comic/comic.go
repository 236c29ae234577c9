// Package comic holds the two shapes of an xkcd comic: the document served by
// the metadata endpoint and the record shown to the user.
package comic

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/pwnholic/xkcdown/internal"
)

const stageParse = "parse metadata"

//go:embed schema.json
var schemaBytes []byte

var (
	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error
)

// ComicResponse is the info.0.json document. Every field is required.
type ComicResponse struct {
	Month      string `json:"month"`
	Num        int    `json:"num"`
	Link       string `json:"link"`
	Year       string `json:"year"`
	News       string `json:"news"`
	SafeTitle  string `json:"safe_title"`
	Transcript string `json:"transcript"`
	Alt        string `json:"alt"`
	Img        string `json:"img"`
	Title      string `json:"title"`
	Day        string `json:"day"`
}

// Comic is what gets printed, saved and exported.
type Comic struct {
	Title  string `json:"title"`
	Num    int    `json:"num"`
	Date   string `json:"date"`
	Desc   string `json:"desc"`
	ImgURL string `json:"img_url"`
}

func compiledSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaBytes))
	})
	return schema, schemaErr
}

// ParseResponse validates text against the info document schema and decodes
// it. A missing or mistyped field fails the whole parse.
func ParseResponse(text string) (*ComicResponse, error) {
	s, err := compiledSchema()
	if err != nil {
		return nil, internal.NewStageError(internal.ParseError, stageParse, fmt.Errorf("load schema: %w", err))
	}

	result, err := s.Validate(gojsonschema.NewStringLoader(text))
	if err != nil {
		return nil, internal.NewStageError(internal.ParseError, stageParse, fmt.Errorf("malformed JSON: %w", err))
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, internal.NewStageError(internal.ParseError, stageParse, errors.New(strings.Join(msgs, "; ")))
	}

	var cr ComicResponse
	if err := json.Unmarshal([]byte(text), &cr); err != nil {
		return nil, internal.NewStageError(internal.ParseError, stageParse, err)
	}
	return &cr, nil
}

// FromResponse maps the wire document onto the presentation record. The date
// parts are joined verbatim as day-month-year.
func FromResponse(cr ComicResponse) Comic {
	return Comic{
		Title:  cr.Title,
		Num:    cr.Num,
		Date:   fmt.Sprintf("%s-%s-%s", cr.Day, cr.Month, cr.Year),
		Desc:   cr.Alt,
		ImgURL: cr.Img,
	}
}
