package records

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
)

// maxPhotoBytes keeps a single inlined photo well under typical store quotas.
const maxPhotoBytes = 2 << 20

// PhotoHandle turns src into an opaque photo handle. Existing files are
// inlined as data URIs; anything with a URI scheme is kept verbatim.
func PhotoHandle(src string) (string, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return "", errors.New("photo source cannot be empty")
	}

	info, err := os.Stat(src)
	switch {
	case err == nil && info.IsDir():
		return "", fmt.Errorf("%s is a directory", src)
	case err == nil:
		if info.Size() > maxPhotoBytes {
			return "", fmt.Errorf("%s is %d bytes, photos are limited to %d", src, info.Size(), maxPhotoBytes)
		}
		data, err := os.ReadFile(src)
		if err != nil {
			return "", fmt.Errorf("failed to read photo: %w", err)
		}
		return DataURI(data), nil
	case hasScheme(src):
		return src, nil
	default:
		return "", fmt.Errorf("%s is neither a readable file nor a photo URI", src)
	}
}

// DataURI encodes image bytes with their sniffed content type.
func DataURI(data []byte) string {
	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		mime = "application/octet-stream"
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

func hasScheme(s string) bool {
	return strings.HasPrefix(s, "data:") || strings.Contains(s, "://")
}

// ShortHandle abbreviates data URIs for display.
func ShortHandle(h string) string {
	if strings.HasPrefix(h, "data:") {
		mime, _, _ := strings.Cut(strings.TrimPrefix(h, "data:"), ";")
		return fmt.Sprintf("[%s, %d bytes encoded]", mime, len(h))
	}
	if len(h) > 60 {
		return h[:57] + "..."
	}
	return h
}
