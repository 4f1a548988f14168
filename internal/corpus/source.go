package corpus

import (
	"context"
	"fmt"
)

const (
	KindFile     = "file"
	KindBigQuery = "bigquery"
)

// Source selects where a corpus is loaded from.
type Source struct {
	Kind     string
	Files    FileParams
	BigQuery BigQueryParams
}

// Load reads the corpus described by src.
func Load(ctx context.Context, src Source) (*Corpus, error) {
	switch src.Kind {
	case KindFile, "":
		return LoadFiles(ctx, src.Files)
	case KindBigQuery:
		return LoadBigQuery(ctx, src.BigQuery)
	}
	return nil, fmt.Errorf("corpus: unknown source %q", src.Kind)
}
