package fetcher

import (
	"context"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"news-classify/internal/usecase/seed"
)

//go:embed sample_data.yaml
var sampleData []byte

// SampleFetcher serves the embedded fallback dataset. It implements
// seed.Fetcher and is used when the remote dataset cannot be reached.
type SampleFetcher struct{}

func NewSampleFetcher() *SampleFetcher {
	return &SampleFetcher{}
}

func (f *SampleFetcher) Fetch(_ context.Context) ([]seed.Record, error) {
	var records []seed.Record
	if err := yaml.Unmarshal(sampleData, &records); err != nil {
		return nil, fmt.Errorf("decode embedded sample data: %w", err)
	}
	return records, nil
}
