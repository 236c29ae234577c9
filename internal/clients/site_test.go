package clients

import (
	"strconv"
	"strings"
	"testing"
)

func intPtr(n int) *int { return &n }

func TestComicURL(t *testing.T) {
	site := NewWebsiteConfig()

	tests := []struct {
		name string
		num  *int
		want string
	}{
		{"latest", nil, "https://xkcd.com/info.0.json"},
		{"numbered", intPtr(614), "https://xkcd.com/614/info.0.json"},
		{"zero is passed through", intPtr(0), "https://xkcd.com/0/info.0.json"},
		{"negative is passed through", intPtr(-3), "https://xkcd.com/-3/info.0.json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := site.ComicURL(tt.num); got != tt.want {
				t.Fatalf("ComicURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestComicURLSingleIdentifier(t *testing.T) {
	site := Website{BaseURL: "http://127.0.0.1:8080/", InfoFile: DefaultInfoFile}

	for _, n := range []int{0, 1, 7, 42, 999, 2847} {
		got := site.ComicURL(intPtr(n))
		if !strings.HasSuffix(got, "/info.0.json") {
			t.Fatalf("ComicURL(%d) = %q does not end in info.0.json", n, got)
		}
		rest := strings.TrimPrefix(got, "http://127.0.0.1:8080/")
		segments := strings.Split(rest, "/")
		if len(segments) != 2 || segments[0] != strconv.Itoa(n) {
			t.Fatalf("ComicURL(%d) = %q, want exactly one identifier segment", n, got)
		}
	}

	latest := site.ComicURL(nil)
	if latest != "http://127.0.0.1:8080/info.0.json" {
		t.Fatalf("latest URL = %q", latest)
	}
}

func TestComicURLDefaultsInfoFile(t *testing.T) {
	site := Website{BaseURL: "https://xkcd.com"}
	if got := site.ComicURL(nil); got != "https://xkcd.com/info.0.json" {
		t.Fatalf("ComicURL() = %q", got)
	}
}
