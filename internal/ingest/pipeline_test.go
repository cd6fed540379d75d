package ingest

import (
	"context"
	"errors"
	"log/slog"
	"testing"
)

type failingSource struct{ name string }

func (f failingSource) Name() string { return f.name }

func (f failingSource) ReadText(context.Context) (string, error) {
	return "", errors.New("disk on fire")
}

func newTestPipeline(cfg Config) *Pipeline {
	return New(slog.Default(), nil, cfg)
}

func TestPipeline_ParallelFiles(t *testing.T) {
	t.Parallel()

	p := newTestPipeline(Config{})
	result, err := p.Run(context.Background(), "en", "es",
		[]Source{BlobSource{FileName: "en.txt", Content: "The weather is lovely. The children are outside."}},
		[]Source{BlobSource{FileName: "es.txt", Content: "El clima es hermoso. Los niños están afuera."}},
	)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(result.Pairs) != 2 {
		t.Fatalf("pairs = %d, want 2", len(result.Pairs))
	}
	if result.Pairs[0].SourceText != "The weather is lovely" || result.Pairs[0].TargetText != "El clima es hermoso" {
		t.Errorf("first pair = (%q, %q)", result.Pairs[0].SourceText, result.Pairs[0].TargetText)
	}
	if result.Pairs[1].SourceText != "The children are outside" || result.Pairs[1].TargetText != "Los niños están afuera" {
		t.Errorf("second pair = (%q, %q)", result.Pairs[1].SourceText, result.Pairs[1].TargetText)
	}
	if result.Pairs[0].Context != "en.txt -> es.txt" {
		t.Errorf("context = %q", result.Pairs[0].Context)
	}
	if len(result.Conflicts) != 0 {
		t.Errorf("conflicts = %d, want 0", len(result.Conflicts))
	}
	if result.Statistics.Accuracy != 1 {
		t.Errorf("accuracy = %v, want 1", result.Statistics.Accuracy)
	}
	if result.FilesRead != 2 || result.FilesFailed != 0 {
		t.Errorf("files read/failed = %d/%d, want 2/0", result.FilesRead, result.FilesFailed)
	}
}

func TestPipeline_ConflictingTargets(t *testing.T) {
	t.Parallel()

	p := newTestPipeline(Config{})
	result, err := p.Run(context.Background(), "en", "es",
		[]Source{BlobSource{FileName: "en.txt", Content: "The weather is lovely."}},
		[]Source{
			BlobSource{FileName: "es1.txt", Content: "El clima es hermoso."},
			BlobSource{FileName: "es2.txt", Content: "El tiempo está precioso."},
		},
	)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(result.Pairs) != 2 {
		t.Fatalf("pairs = %d, want 2", len(result.Pairs))
	}
	if len(result.Conflicts) != 1 {
		t.Fatalf("conflicts = %d, want 1", len(result.Conflicts))
	}

	c := result.Conflicts[0]
	if len(c.Translations) != 2 {
		t.Fatalf("candidates = %d, want 2", len(c.Translations))
	}
	if c.IsResolved {
		t.Error("fresh conflict must be unresolved")
	}
	if result.Statistics.Accuracy >= 1 {
		t.Errorf("accuracy = %v, want < 1 with an unresolved conflict", result.Statistics.Accuracy)
	}
	if want := 0.5; result.Statistics.Accuracy != want {
		t.Errorf("accuracy = %v, want %v", result.Statistics.Accuracy, want)
	}
}

func TestPipeline_Deterministic(t *testing.T) {
	t.Parallel()

	sources := []Source{
		BlobSource{FileName: "s1.txt", Content: "The weather is lovely. The children are outside."},
		BlobSource{FileName: "s2.txt", Content: "Another document entirely. With two full sentences."},
	}
	targets := []Source{
		BlobSource{FileName: "t1.txt", Content: "El clima es hermoso. Los niños están afuera."},
		BlobSource{FileName: "t2.txt", Content: "Otro documento entero. Con dos frases completas."},
	}

	p := newTestPipeline(Config{})
	first, err := p.Run(context.Background(), "en", "es", sources, targets)
	if err != nil {
		t.Fatalf("first Run: %v", err)
	}
	second, err := p.Run(context.Background(), "en", "es", sources, targets)
	if err != nil {
		t.Fatalf("second Run: %v", err)
	}

	if len(first.Pairs) != len(second.Pairs) {
		t.Fatalf("pair counts differ: %d vs %d", len(first.Pairs), len(second.Pairs))
	}
	for i := range first.Pairs {
		a, b := first.Pairs[i], second.Pairs[i]
		if a.SourceText != b.SourceText || a.TargetText != b.TargetText ||
			a.Confidence != b.Confidence || a.Context != b.Context {
			t.Errorf("pair %d differs between runs: %+v vs %+v", i, a, b)
		}
	}
}

func TestPipeline_FailedReadDegradesToEmpty(t *testing.T) {
	t.Parallel()

	p := newTestPipeline(Config{})
	result, err := p.Run(context.Background(), "en", "es",
		[]Source{
			failingSource{name: "broken.txt"},
			BlobSource{FileName: "en.txt", Content: "The weather is lovely."},
		},
		[]Source{BlobSource{FileName: "es.txt", Content: "El clima es hermoso."}},
	)
	if err != nil {
		t.Fatalf("Run must not fail on a per-file read error: %v", err)
	}

	if result.FilesFailed != 1 {
		t.Errorf("files failed = %d, want 1", result.FilesFailed)
	}
	// The failing file contributes nothing; the healthy pair survives.
	if len(result.Pairs) != 1 {
		t.Fatalf("pairs = %d, want 1", len(result.Pairs))
	}
	if result.Pairs[0].SourceText != "The weather is lovely" {
		t.Errorf("pair source = %q", result.Pairs[0].SourceText)
	}
}

func TestPipeline_MergeDuplicates(t *testing.T) {
	t.Parallel()

	sources := []Source{BlobSource{FileName: "en.txt", Content: "The weather is lovely."}}
	targets := []Source{
		BlobSource{FileName: "es1.txt", Content: "El clima es hermoso."},
		BlobSource{FileName: "es2.txt", Content: "El clima es hermoso."},
	}

	base, err := newTestPipeline(Config{}).Run(context.Background(), "en", "es", sources, targets)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(base.Pairs) != 2 {
		t.Fatalf("base pipeline pairs = %d, want 2 (no dedup)", len(base.Pairs))
	}

	merged, err := newTestPipeline(Config{MergeDuplicates: true}).Run(context.Background(), "en", "es", sources, targets)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(merged.Pairs) != 1 {
		t.Fatalf("merged pairs = %d, want 1", len(merged.Pairs))
	}
	if merged.Pairs[0].Frequency != 2 {
		t.Errorf("merged frequency = %d, want 2", merged.Pairs[0].Frequency)
	}
	if len(merged.Conflicts) != 0 {
		t.Errorf("identical targets must not conflict, got %d", len(merged.Conflicts))
	}
}
