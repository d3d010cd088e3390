package response

import (
	"crypto/md5"
	"encoding/hex"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestContentDispositionPlain(t *testing.T) {
	r := NewBytes(nil, "report.pdf")
	assert.Equal(t, `attachment; filename="report.pdf"`, r.Header.Get("Content-Disposition"))
}

func TestContentDispositionNonASCII(t *testing.T) {
	r := NewBytes(nil, "отчёт.txt")
	assert.Equal(t,
		"attachment; filename*=utf-8''%D0%BE%D1%82%D1%87%D1%91%D1%82.txt",
		r.Header.Get("Content-Disposition"))
}

func TestContentDispositionSpaceUsesExtendedForm(t *testing.T) {
	r := NewBytes(nil, "my file.txt")
	assert.Equal(t,
		"attachment; filename*=utf-8''my%20file.txt",
		r.Header.Get("Content-Disposition"))
}

func TestContentDispositionCallerWins(t *testing.T) {
	r := NewBytes(nil, "report.pdf", WithHeader("Content-Disposition", "inline"))
	assert.Equal(t, "inline", r.Header.Get("Content-Disposition"))
}

func TestPercentEncode(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"plain.txt", "plain.txt"},
		{"with space", "with%20space"},
		{"dir/name.txt", "dir/name.txt"},
		{"a+b", "a%2Bb"},
		{"ünï.bin", "%C3%BCn%C3%AF.bin"},
		{"tilde~ok", "tilde~ok"},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, percentEncode(c.in), "input %q", c.in)
	}
}

func TestSetStatHeaders(t *testing.T) {
	r := &Response{Header: make(http.Header)}
	mtime := time.Unix(1700000000, 0)
	r.setStatHeaders(4096, mtime)

	assert.Equal(t, "4096", r.Header.Get("Content-Length"))
	assert.Equal(t, "Tue, 14 Nov 2023 22:13:20 GMT", r.Header.Get("Last-Modified"))

	sum := md5.Sum([]byte("1700000000-4096"))
	assert.Equal(t, `"`+hex.EncodeToString(sum[:])+`"`, r.Header.Get("ETag"))
}

func TestSetStatHeadersDoesNotOverwrite(t *testing.T) {
	r := &Response{Header: make(http.Header)}
	r.Header.Set("Content-Length", "1")
	r.Header.Set("ETag", `"keep"`)
	r.setStatHeaders(4096, time.Now())

	assert.Equal(t, "1", r.Header.Get("Content-Length"))
	assert.Equal(t, `"keep"`, r.Header.Get("ETag"))
	assert.NotEmpty(t, r.Header.Get("Last-Modified"))
}

func TestMediaTypeByExtension(t *testing.T) {
	assert.Equal(t, "image/png", mediaTypeByExtension("pic.png"))
	assert.Contains(t, mediaTypeByExtension("doc.json"), "application/json")
	assert.Empty(t, mediaTypeByExtension("noext"))
	assert.Empty(t, mediaTypeByExtension("weird.zzznotatype"))
}
