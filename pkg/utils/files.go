package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
)

// ErrEmptyArchive is returned when an archive holds no files.
var ErrEmptyArchive = errors.New("archive contains no files")

// LoadFile loads the given file and performs decompression if necessary.
// Archives (.zip, .7z) yield their first file.
func LoadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	return Decompress(filename, data)
}

// Decompress decodes data according to the extension of name. Data
// with an unknown extension is returned as is.
func Decompress(name string, data []byte) ([]byte, error) {
	var decoder io.Reader
	var err error
	r := bytes.NewReader(data)

	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".gz":
		decoder, err = gzip.NewReader(r)
	case ".zip":
		zipReader, zerr := zip.NewReader(r, int64(len(data)))
		if zerr != nil {
			return nil, fmt.Errorf("zip %s: %w", name, zerr)
		}
		if len(zipReader.File) == 0 {
			return nil, fmt.Errorf("zip %s: %w", name, ErrEmptyArchive)
		}

		// read the first file in the zip file
		decoder, err = zipReader.File[0].Open()
	case ".7z":
		szReader, serr := sevenzip.NewReader(r, int64(len(data)))
		if serr != nil {
			return nil, fmt.Errorf("7z %s: %w", name, serr)
		}
		if len(szReader.File) == 0 {
			return nil, fmt.Errorf("7z %s: %w", name, ErrEmptyArchive)
		}

		// read the first file in the archive
		decoder, err = szReader.File[0].Open()
	default:
		return data, nil
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if c, ok := decoder.(io.Closer); ok {
		defer c.Close()
	}

	return io.ReadAll(decoder)
}
