// Package corpus loads plain-text documents from a directory.
package corpus

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/verte-zerg/docstat/internal/model"
)

var (
	errNotUTF8 = errors.New("not valid UTF-8 text")
	errBinary  = errors.New("binary content")
)

// Load reads every regular file in dir with the given extension
// (non-recursive). Files that cannot be read as text are excluded and
// reported as LoadErrors; the rest of the corpus still loads. Documents
// and errors come back sorted by name.
func Load(dir, ext string) ([]model.Document, []model.LoadError, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read document directory: %w", err)
	}

	var docs []model.Document
	var loadErrs []model.LoadError
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if ext != "" && !strings.HasSuffix(name, ext) {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			loadErrs = append(loadErrs, model.LoadError{Name: name, Err: err})
			continue
		}
		if err := checkText(data); err != nil {
			loadErrs = append(loadErrs, model.LoadError{Name: name, Err: err})
			continue
		}
		docs = append(docs, model.Document{Name: name, Text: string(data)})
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Name < docs[j].Name })
	sort.Slice(loadErrs, func(i, j int) bool { return loadErrs[i].Name < loadErrs[j].Name })
	return docs, loadErrs, nil
}

func checkText(data []byte) error {
	if bytes.IndexByte(data, 0) >= 0 {
		return errBinary
	}
	if !utf8.Valid(data) {
		return errNotUTF8
	}
	return nil
}
