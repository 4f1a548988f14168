package corpus

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"
)

// BigQueryParams locates a table with a STRING word column and an INT64 freq column.
type BigQueryParams struct {
	Project  string
	Dataset  string
	Table    string
	Location string
}

func (p BigQueryParams) query() string {
	return fmt.Sprintf("SELECT word, freq FROM `%s.%s.%s` WHERE LENGTH(word) = %d", p.Project, p.Dataset, p.Table, wordLength)
}

// LoadBigQuery reads every five letter word and its frequency from BigQuery.
// A NULL frequency leaves the word without one.
func LoadBigQuery(ctx context.Context, p BigQueryParams) (*Corpus, error) {
	client, err := bigquery.NewClient(ctx, p.Project)
	if err != nil {
		return nil, fmt.Errorf("bigquery.NewClient: %w", err)
	}
	defer client.Close()

	q := client.Query(p.query())
	if p.Location != "" {
		q.Location = p.Location
	}

	job, err := q.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.Run: %w", err)
	}
	status, err := job.Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Wait: %w", err)
	}
	if err := status.Err(); err != nil {
		return nil, fmt.Errorf("status.Err: %w", err)
	}
	it, err := job.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Read: %w", err)
	}

	var words []string
	freq := make(map[string]int64)
	for {
		var row []bigquery.Value
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("it.Next: %w", err)
		}
		word, f, err := parseRow(row)
		if err != nil {
			return nil, err
		}
		words = append(words, word)
		if f != nil {
			freq[word] += *f
		}
	}
	return New(words, freq), nil
}

func parseRow(row []bigquery.Value) (string, *int64, error) {
	if len(row) != 2 {
		return "", nil, fmt.Errorf("expected 2 columns, got %d", len(row))
	}
	word, ok := row[0].(string)
	if !ok {
		return "", nil, fmt.Errorf("row[0] is not a string: %v", row[0])
	}
	word = strings.ToLower(word)
	if row[1] == nil {
		return word, nil, nil
	}
	f, ok := row[1].(int64)
	if !ok {
		return "", nil, fmt.Errorf("row[1] is not an int64: %v", row[1])
	}
	return word, &f, nil
}
