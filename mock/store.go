package mock

import (
	wikiloc "github.com/jannetolppanen/wikipedia-universal-location-scraper"
)

var _ wikiloc.ArticleStore = (*ArticleStore)(nil)

// ArticleStore is a mock implementation of wikiloc.ArticleStore.
type ArticleStore struct {
	LoadFn func(path string) ([]*wikiloc.Article, error)
	SaveFn func(path string, articles []*wikiloc.Article) error
}

func (s *ArticleStore) Load(path string) ([]*wikiloc.Article, error) {
	return s.LoadFn(path)
}

func (s *ArticleStore) Save(path string, articles []*wikiloc.Article) error {
	return s.SaveFn(path, articles)
}
