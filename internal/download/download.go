// Package download turns rendered export text into files: UTF-8 with a
// byte-order mark for a single language, or a zip with one entry per language.
package download

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/klauspost/compress/zip"
	"golang.org/x/text/encoding/unicode"

	"resource-converter/internal/domain"
	"resource-converter/internal/export"
)

// ErrNoDocuments is returned when there is nothing to package.
var ErrNoDocuments = errors.New("no documents to package")

// archiveBaseName names a multi-language archive when the user gives no name.
const archiveBaseName = "resources"

// Document is the rendered text of one language slot.
type Document struct {
	Slot domain.Slot
	Name string
	Text string
}

// File is a download ready to be written.
type File struct {
	Name   string
	Format export.Format
	Data   []byte
}

// EncodeBOM returns text as UTF-8 prefixed with a byte-order mark.
func EncodeBOM(text string) ([]byte, error) {
	out, err := unicode.UTF8BOM.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("encode utf-8 bom: %w", err)
	}
	return out, nil
}

// EnsureExtension appends the format's extension unless name already ends with it.
func EnsureExtension(name string, format export.Format) string {
	name = strings.TrimSpace(name)
	ext := format.Extension()
	if strings.HasSuffix(strings.ToLower(name), ext) {
		return name
	}
	return name + ext
}

// BaseName returns the suggested file name of a slot without extension: the
// profile's language label, or the slot key when no label is configured.
func BaseName(p domain.ConnectionProfile, slot domain.Slot) string {
	if label := sanitize(p.SlotLabel(slot)); label != "" {
		return label
	}
	return string(slot)
}

// SuggestedName pre-fills the filename prompt: the slot's base name for one
// slot, the archive name for several.
func SuggestedName(p domain.ConnectionProfile, slots []domain.Slot, format export.Format) string {
	if len(slots) == 1 {
		return EnsureExtension(BaseName(p, slots[0]), format)
	}
	return EnsureExtension(archiveBaseName, export.FormatZip)
}

// Documents renders each slot and assigns unique file names. Slots sharing a
// language label are disambiguated as <label>_<slot>.
func Documents(p domain.ConnectionProfile, slots []domain.Slot, format export.Format, render func(domain.Slot) string) []Document {
	counts := make(map[string]int, len(slots))
	for _, s := range slots {
		counts[BaseName(p, s)]++
	}

	docs := make([]Document, 0, len(slots))
	for _, s := range slots {
		base := BaseName(p, s)
		if counts[base] > 1 && base != string(s) {
			base = base + "_" + string(s)
		}
		docs = append(docs, Document{
			Slot: s,
			Name: EnsureExtension(base, format),
			Text: render(s),
		})
	}
	return docs
}

// Build packages documents. One document becomes a BOM-prefixed file named
// filename (or the document's own name); several become a zip archive.
func Build(docs []Document, format export.Format, filename string) (File, error) {
	switch len(docs) {
	case 0:
		return File{}, ErrNoDocuments
	case 1:
		data, err := EncodeBOM(docs[0].Text)
		if err != nil {
			return File{}, err
		}
		name := filename
		if strings.TrimSpace(name) == "" {
			name = docs[0].Name
		}
		return File{Name: EnsureExtension(name, format), Format: format, Data: data}, nil
	}

	data, err := Zip(docs)
	if err != nil {
		return File{}, err
	}
	name := filename
	if strings.TrimSpace(name) == "" {
		name = archiveBaseName
	}
	return File{Name: EnsureExtension(name, export.FormatZip), Format: export.FormatZip, Data: data}, nil
}

// Zip builds an in-memory archive with one BOM-prefixed entry per document.
func Zip(docs []Document) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	now := time.Now()

	for _, d := range docs {
		data, err := EncodeBOM(d.Text)
		if err != nil {
			return nil, err
		}
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     d.Name,
			Method:   zip.Deflate,
			Modified: now,
		})
		if err != nil {
			return nil, fmt.Errorf("create zip entry %s: %w", d.Name, err)
		}
		if _, err := w.Write(data); err != nil {
			return nil, fmt.Errorf("write zip entry %s: %w", d.Name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close zip: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes f into dir and returns the full path.
func Save(dir string, f File) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(dir, filepath.Base(f.Name))
	if err := os.WriteFile(path, f.Data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

func sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, strings.TrimSpace(name))
}
