// Package fs provides file-based persistence for article lists.
package fs

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	wikiloc "github.com/jannetolppanen/wikipedia-universal-location-scraper"
)

// Ensure ArticleStore implements wikiloc.ArticleStore at compile time.
var _ wikiloc.ArticleStore = (*ArticleStore)(nil)

// ArticleStore reads and writes article lists as pretty-printed UTF-8
// JSON files. Saves are atomic: the list is written to a temporary file
// in the target directory and renamed into place, so a crash mid-write
// never leaves a truncated output file.
type ArticleStore struct{}

// NewArticleStore creates a new ArticleStore.
func NewArticleStore() *ArticleStore {
	return &ArticleStore{}
}

// Load reads an article list from path. Returns ENOTFOUND if the file
// does not exist and EINVALID if it is not a valid article list.
func (s *ArticleStore) Load(path string) ([]*wikiloc.Article, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, wikiloc.Errorf(wikiloc.ENOTFOUND, "file %q not found", path)
	} else if err != nil {
		return nil, err
	}

	var articles []*wikiloc.Article
	if err := json.Unmarshal(data, &articles); err != nil {
		return nil, wikiloc.Errorf(wikiloc.EINVALID, "file %q is not a valid article list: %v", path, err)
	}
	return articles, nil
}

// Save writes the full article list to path, preserving order.
func (s *ArticleStore) Save(path string, articles []*wikiloc.Article) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(articles); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
