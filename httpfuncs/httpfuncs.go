package httpfuncs

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	eperrors "github.com/FanaticExplorer/EmojiesParser/errors"
)

// Returns the last part of the given URL string (without the query string)
func GetLastPartOfUrl(url string) string {
	if strings.Contains(url, "?") {
		url = strings.SplitN(url, "?", 2)[0]
	}
	splitted := strings.Split(url, "/")
	return splitted[len(splitted)-1]
}

// Returns the file extension from the response's Content-Type
// header, e.g. "image/png" => ".png", or an empty string if unknown
func ExtFromContentType(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}

	// mime.ExtensionsByType can return several candidates for a media
	// type (e.g. ".jpe", ".jpeg", ".jpg"), so prefer the common ones first.
	switch mediaType {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	}

	exts, err := mime.ExtensionsByType(mediaType)
	if err != nil || len(exts) == 0 {
		return ""
	}
	return exts[0]
}

// Reads and returns the response body in bytes and closes it
func ReadResBody(res *http.Response) ([]byte, error) {
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf(
			"error %d: failed to read response body from %s due to %w",
			eperrors.RESPONSE_ERROR,
			res.Request.URL.String(),
			err,
		)
	}
	return body, nil
}
