package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"news-classify/internal/domain/entity"
	"news-classify/internal/repository"
)

const (
	// batchSize matches the upstream bulk insert size.
	batchSize = 100

	// insertWorkers bounds concurrent batch inserts so a large dataset does
	// not exhaust the connection pool.
	insertWorkers = 4
)

// Record is a single dataset row before it becomes an entity.
type Record struct {
	Review string `yaml:"review" json:"review"`
	Label  string `yaml:"label" json:"label"`
}

// Fetcher loads dataset records from an external source.
type Fetcher interface {
	Fetch(ctx context.Context) ([]Record, error)
}

// Reindexer rebuilds the search index after a seed run.
type Reindexer interface {
	ReindexAll(ctx context.Context) error
}

// Options controls a single seed run.
type Options struct {
	// Force clears and reseeds even when the table already has records.
	Force bool

	// SampleOnly skips the remote dataset and loads the embedded sample.
	SampleOnly bool
}

// Service populates the news_classifications table from the Hugging Face
// dataset, falling back to the embedded sample set when the remote source is
// unavailable.
type Service struct {
	Repo    repository.NewsRepository
	Fetcher Fetcher
	Sample  Fetcher
	Index   Reindexer
	Logger  *slog.Logger
}

func NewService(repo repository.NewsRepository, fetcher, sample Fetcher, index Reindexer, logger *slog.Logger) *Service {
	return &Service{
		Repo:    repo,
		Fetcher: fetcher,
		Sample:  sample,
		Index:   index,
		Logger:  logger,
	}
}

// Run executes the seed pipeline: skip-if-populated check, fetch, batch
// insert, label distribution report, reindex.
func (s *Service) Run(ctx context.Context, opts Options) error {
	existing, err := s.Repo.Count(ctx, "")
	if err != nil {
		return fmt.Errorf("count existing records: %w", err)
	}
	if existing > 0 {
		if !opts.Force {
			s.Logger.Info("database already seeded, skipping",
				slog.Int64("existing_records", existing))
			return nil
		}
		removed, err := s.Repo.DeleteAll(ctx)
		if err != nil {
			return fmt.Errorf("clear existing records: %w", err)
		}
		s.Logger.Info("cleared existing records", slog.Int64("removed", removed))
	}

	records, err := s.loadRecords(ctx, opts)
	if err != nil {
		return err
	}

	inserted, skipped, err := s.insertAll(ctx, records)
	if err != nil {
		return err
	}
	s.Logger.Info("seed insert finished",
		slog.Int("inserted", inserted),
		slog.Int("skipped", skipped))

	if err := s.reportDistribution(ctx); err != nil {
		return err
	}

	s.Logger.Info("rebuilding search index")
	if err := s.Index.ReindexAll(ctx); err != nil {
		return fmt.Errorf("rebuild search index: %w", err)
	}
	s.Logger.Info("search index rebuilt")
	return nil
}

func (s *Service) loadRecords(ctx context.Context, opts Options) ([]Record, error) {
	if opts.SampleOnly {
		s.Logger.Info("loading embedded sample dataset")
		records, err := s.Sample.Fetch(ctx)
		if err != nil {
			return nil, fmt.Errorf("load sample dataset: %w", err)
		}
		return records, nil
	}

	s.Logger.Info("loading dataset from Hugging Face")
	records, err := s.Fetcher.Fetch(ctx)
	if err == nil {
		s.Logger.Info("dataset loaded", slog.Int("records", len(records)))
		return records, nil
	}

	// 取得失敗時はサンプルデータにフォールバック
	s.Logger.Warn("could not load remote dataset, using sample data",
		slog.Any("error", err))
	records, sampleErr := s.Sample.Fetch(ctx)
	if sampleErr != nil {
		return nil, fmt.Errorf("load sample dataset: %w", sampleErr)
	}
	return records, nil
}

// insertAll validates and inserts records in batches. Batches run through a
// bounded errgroup; the skipped counter covers rows that fail validation.
func (s *Service) insertAll(ctx context.Context, records []Record) (inserted, skipped int, err error) {
	valid := make([]*entity.News, 0, len(records))
	for i, rec := range records {
		news := &entity.News{
			Review: strings.TrimSpace(rec.Review),
			Label:  strings.TrimSpace(rec.Label),
		}
		if err := news.Validate(); err != nil {
			skipped++
			field := ""
			var vErr *entity.ValidationError
			if errors.As(err, &vErr) {
				field = vErr.Field
			}
			s.Logger.Warn("skipping invalid record",
				slog.Int("index", i),
				slog.String("field", field),
				slog.String("reason", err.Error()))
			continue
		}
		valid = append(valid, news)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(insertWorkers)

	var mu sync.Mutex
	for start := 0; start < len(valid); start += batchSize {
		end := start + batchSize
		if end > len(valid) {
			end = len(valid)
		}
		batch := valid[start:end]
		g.Go(func() error {
			if err := s.Repo.CreateBatch(gctx, batch); err != nil {
				return fmt.Errorf("insert batch: %w", err)
			}
			mu.Lock()
			inserted += len(batch)
			s.Logger.Info("inserted records", slog.Int("total", inserted))
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, 0, err
	}
	return inserted, skipped, nil
}

func (s *Service) reportDistribution(ctx context.Context) error {
	total, counts, err := s.Repo.Stats(ctx)
	if err != nil {
		return fmt.Errorf("load label distribution: %w", err)
	}

	sort.Slice(counts, func(i, j int) bool { return counts[i].Label < counts[j].Label })
	attrs := make([]any, 0, len(counts)+1)
	attrs = append(attrs, slog.Int64("total_records", total))
	for _, c := range counts {
		attrs = append(attrs, slog.Int64(c.Label, c.Count))
	}
	s.Logger.Info("label distribution", attrs...)
	return nil
}
