package extract

import (
	"strings"

	"docklogger/internal/port"
)

// ParseDataURL splits a data:<media-type>;base64,<payload> string into an
// attachment. It returns nil when the string is missing the comma or the
// semicolon, or the semicolon does not precede the comma. The payload is
// passed through untouched; unrecognized media types are not rejected, so
// callers can still send them as best-effort images.
func ParseDataURL(s string) *port.Attachment {
	comma := strings.Index(s, ",")
	semi := strings.Index(s, ";")
	if comma < 0 || semi < 0 || semi > comma {
		return nil
	}

	mediaType := strings.TrimPrefix(s[:semi], "data:")
	// the one alias correction: some capture plugins emit image/jpg
	if mediaType == "image/jpg" {
		mediaType = "image/jpeg"
	}

	return &port.Attachment{
		MediaType: mediaType,
		Data:      s[comma+1:],
	}
}
