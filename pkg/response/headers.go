package response

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// setIfAbsent sets a header only when it is not already present, so that
// caller-supplied values always win over derived metadata.
func setIfAbsent(h http.Header, key, value string) {
	if h.Get(key) == "" {
		h.Set(key, value)
	}
}

// setContentDisposition derives the content-disposition header from the
// filename. A filename that survives percent-encoding unchanged uses the
// plain quoted form; anything else (non-ASCII, spaces, reserved
// characters) uses the RFC 5987 extended form.
func (r *Response) setContentDisposition() {
	encoded := percentEncode(r.Filename)
	var v string
	if encoded != r.Filename {
		v = fmt.Sprintf("%s; filename*=utf-8''%s", r.Disposition, encoded)
	} else {
		v = fmt.Sprintf("%s; filename=%q", r.Disposition, r.Filename)
	}
	setIfAbsent(r.Header, "Content-Disposition", v)
}

// setStatHeaders derives the cache-identity headers from the content size
// and modification time. The etag is a non-security md5 digest of
// "{mtime}-{size}", quoted.
func (r *Response) setStatHeaders(size int64, mtime time.Time) {
	setIfAbsent(r.Header, "Content-Length", strconv.FormatInt(size, 10))
	setIfAbsent(r.Header, "Last-Modified", mtime.UTC().Format(http.TimeFormat))

	base := strconv.FormatInt(mtime.Unix(), 10) + "-" + strconv.FormatInt(size, 10)
	sum := md5.Sum([]byte(base))
	setIfAbsent(r.Header, "ETag", `"`+hex.EncodeToString(sum[:])+`"`)
}

// mediaTypeByExtension guesses a media type from the extension of name.
// Returns an empty string when the extension is unknown.
func mediaTypeByExtension(name string) string {
	ext := filepath.Ext(name)
	if ext == "" {
		return ""
	}
	return mime.TypeByExtension(ext)
}

const upperhex = "0123456789ABCDEF"

// percentEncode percent-encodes s, keeping the RFC 3986 unreserved set
// and the path separator. net/url escapes a different character set
// (PathEscape keeps sub-delims, QueryEscape turns spaces into '+'), so
// the filename comparison is done against this stricter encoding.
func percentEncode(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) || c == '/' {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0x0f])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '-' || c == '.' || c == '_' || c == '~':
		return true
	}
	return false
}
