package wikiloc

// ArticleStore loads and persists article lists. Save overwrites the
// whole file; the orchestrator calls it repeatedly for incremental
// progress, so writes must be idempotent.
type ArticleStore interface {
	// Load reads an article list. Returns ENOTFOUND if the file does not
	// exist and EINVALID if it is not a valid article list.
	Load(path string) ([]*Article, error)

	// Save writes the full article list as pretty-printed UTF-8 JSON,
	// preserving input order.
	Save(path string, articles []*Article) error
}
