package compress

import (
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/klauspost/compress/gzip"
)

var compressibleTypes = []string{
	"application/json",
	"text/",
}

var writerPool = sync.Pool{
	New: func() any {
		return gzip.NewWriter(io.Discard)
	},
}

// Response writer with gzip compression of JSON and text responses
type Writer struct {
	w           http.ResponseWriter
	zw          *gzip.Writer
	wroteHeader bool
	compress    bool
}

// Creates response writer with gzip compression
func NewWriter(w http.ResponseWriter) *Writer {
	return &Writer{w: w}
}

// Header
func (cw *Writer) Header() http.Header {
	return cw.w.Header()
}

// Writes compressed data if response is compressible
func (cw *Writer) Write(p []byte) (int, error) {
	if !cw.wroteHeader {
		cw.WriteHeader(http.StatusOK)
	}
	if !cw.compress {
		return cw.w.Write(p)
	}

	return cw.zw.Write(p)
}

// WriteHeader
func (cw *Writer) WriteHeader(statusCode int) {
	if cw.wroteHeader {
		return
	}
	cw.wroteHeader = true

	if statusCode < 300 && isCompressible(cw.w.Header().Get("Content-Type")) {
		cw.compress = true
		cw.w.Header().Set("Content-Encoding", "gzip")
		cw.w.Header().Del("Content-Length")
		cw.zw = writerPool.Get().(*gzip.Writer)
		cw.zw.Reset(cw.w)
	}
	cw.w.WriteHeader(statusCode)
}

// Close flushes compressed data
func (cw *Writer) Close() error {
	if cw.zw == nil {
		return nil
	}

	err := cw.zw.Close()
	writerPool.Put(cw.zw)
	cw.zw = nil

	return err
}

func isCompressible(contentType string) bool {
	for _, prefix := range compressibleTypes {
		if strings.HasPrefix(contentType, prefix) {
			return true
		}
	}

	return false
}

// Reader for compressed data
type Reader struct {
	r  io.ReadCloser
	zr *gzip.Reader
}

// Creates reader for compressed data
func NewReader(r io.ReadCloser) (*Reader, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, err
	}

	return &Reader{
		r:  r,
		zr: zr,
	}, nil
}

// Read uncompressed data
func (cr Reader) Read(p []byte) (int, error) {
	return cr.zr.Read(p)
}

// Close
func (cr *Reader) Close() error {
	if err := cr.r.Close(); err != nil {
		return err
	}
	return cr.zr.Close()
}
