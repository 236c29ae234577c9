package exports

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/webp"

	"github.com/pwnholic/xkcdown/internal"
)

// ImageFileName returns the last path segment of imgURL, the name the image
// is saved under.
func ImageFileName(imgURL string) (string, error) {
	u, err := url.Parse(imgURL)
	if err != nil {
		return "", internal.NewStageError(internal.URLError, stageSaveImage, fmt.Errorf("failed to parse URL: %w", err))
	}
	if u.Path == "" || u.Path == "/" {
		return "", internal.NewStageError(internal.URLError, stageSaveImage, fmt.Errorf("%q has no path segments", imgURL))
	}

	segments := strings.Split(u.Path, "/")
	name := segments[len(segments)-1]
	switch name {
	case "", ".", "..":
		return "", internal.NewStageError(internal.URLError, stageSaveImage, fmt.Errorf("%q does not end in a file name", imgURL))
	}
	return name, nil
}

// WriteFile writes data to dir/name through a temp file in dir that is
// renamed over the target, so the target is either complete or untouched.
func WriteFile(dir, name string, data []byte) (string, error) {
	if dir == "" {
		dir = "."
	}
	if name == "" || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("invalid file name %q", name)
	}
	target := filepath.Join(dir, name)

	tmp, err := os.CreateTemp(dir, "."+name+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	fail := func(err error) (string, error) {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return "", err
	}

	if _, err := tmp.Write(data); err != nil {
		return fail(fmt.Errorf("write %s: %w", target, err))
	}
	if err := tmp.Sync(); err != nil {
		return fail(fmt.Errorf("sync %s: %w", target, err))
	}
	if err := tmp.Close(); err != nil {
		return fail(fmt.Errorf("close %s: %w", target, err))
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fail(fmt.Errorf("chmod %s: %w", target, err))
	}
	if err := os.Rename(tmpName, target); err != nil {
		return fail(fmt.Errorf("replace %s: %w", target, err))
	}
	return target, nil
}

// DescribeImage reads the format and pixel size from the image header.
func DescribeImage(data []byte) (format string, width, height int, err error) {
	if len(data) == 0 {
		return "", 0, 0, errors.New("empty image data")
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", 0, 0, fmt.Errorf("failed to decode image config: %w", err)
	}
	return format, cfg.Width, cfg.Height, nil
}
