// Package ioutils holds small IO helpers shared by the format readers and
// writers, mainly transparent gzip handling.
package ioutils

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"
)

type funcCloser struct {
	io.Reader
	close func() error
}

func (c funcCloser) Close() error { return c.close() }

// Open opens path for reading, unwrapping gzip when the file ends in .gz or
// starts with the gzip magic bytes.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	br := bufio.NewReader(f)
	gzipped := strings.HasSuffix(path, ".gz")
	if !gzipped {
		if magic, err := br.Peek(2); err == nil && magic[0] == 0x1f && magic[1] == 0x8b {
			gzipped = true
		}
	}
	if !gzipped {
		return funcCloser{Reader: br, close: f.Close}, nil
	}
	zr, err := gzip.NewReader(br)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return funcCloser{Reader: zr, close: func() error {
		_ = zr.Close()
		return f.Close()
	}}, nil
}

type flushCloser struct {
	io.Writer
	close func() error
}

func (c flushCloser) Close() error { return c.close() }

// Create creates path for writing, gzip-compressing when it ends in .gz.
func Create(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	bw := bufio.NewWriter(f)
	if !strings.HasSuffix(path, ".gz") {
		return flushCloser{Writer: bw, close: func() error {
			_ = bw.Flush()
			return f.Close()
		}}, nil
	}
	zw := gzip.NewWriter(bw)
	return flushCloser{Writer: zw, close: func() error {
		_ = zw.Close()
		_ = bw.Flush()
		return f.Close()
	}}, nil
}
