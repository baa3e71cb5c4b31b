package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	payload := []byte{0x00, 0x7F, 0xFF, 0x1F}

	raw := filepath.Join(dir, "bank.bin")
	if err := os.WriteFile(raw, payload, 0o644); err != nil {
		t.Fatal(err)
	}

	var gz bytes.Buffer
	w := gzip.NewWriter(&gz)
	w.Write(payload)
	w.Close()
	gzPath := filepath.Join(dir, "bank.bin.gz")
	if err := os.WriteFile(gzPath, gz.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	var zb bytes.Buffer
	zw := zip.NewWriter(&zb)
	f, _ := zw.Create("bank.bin")
	f.Write(payload)
	zw.Close()
	zipPath := filepath.Join(dir, "bank.zip")
	if err := os.WriteFile(zipPath, zb.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{raw, gzPath, zipPath} {
		t.Run(filepath.Base(name), func(t *testing.T) {
			data, err := LoadFile(name)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if !bytes.Equal(data, payload) {
				t.Errorf("expected %v, got %v", payload, data)
			}
		})
	}
}

func TestDecompressEmptyZip(t *testing.T) {
	var zb bytes.Buffer
	zip.NewWriter(&zb).Close()

	if _, err := Decompress("empty.zip", zb.Bytes()); !errors.Is(err, ErrEmptyArchive) {
		t.Errorf("expected ErrEmptyArchive, got %v", err)
	}
}

func TestClamp(t *testing.T) {
	if v := Clamp(0, 40, 31); v != 31 {
		t.Errorf("expected 31, got %d", v)
	}
	if v := Clamp(0, -3, 31); v != 0 {
		t.Errorf("expected 0, got %d", v)
	}
	if v := Clamp(0, 12, 31); v != 12 {
		t.Errorf("expected 12, got %d", v)
	}
}
