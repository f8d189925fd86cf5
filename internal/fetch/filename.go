package fetch

import (
	"net/url"
	"path"
	"strings"
)

// DefaultFilename is used when nothing usable can be derived from the URL.
const DefaultFilename = "downloaded_file"

// FilenameFor derives the destination filename for a URL: the percent-decoded
// final segment of the URL path, then the last /-delimited token of the raw
// URL, then DefaultFilename. URLs mapping to the same name overwrite each
// other; last writer wins.
func FilenameFor(rawURL string) string {
	if parsed, err := url.Parse(rawURL); err == nil {
		decoded := parsed.Path
		if unescaped, err := url.PathUnescape(parsed.Path); err == nil {
			decoded = unescaped
		}
		// A trailing slash means the path names a directory, not a file
		if decoded != "" && !strings.HasSuffix(decoded, "/") {
			if name := path.Base(decoded); name != "." {
				return name
			}
		}
	}
	parts := strings.Split(rawURL, "/")
	if name := parts[len(parts)-1]; name != "" {
		return name
	}
	return DefaultFilename
}
