package generator

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/postersmith/postersmith/pkg/catalog"
	pserrors "github.com/postersmith/postersmith/pkg/errors"
	"github.com/postersmith/postersmith/pkg/magick"
	"github.com/postersmith/postersmith/pkg/pointsize"
	"github.com/postersmith/postersmith/pkg/store"
	"github.com/postersmith/postersmith/pkg/translations"
)

// fakeMeasurer returns a fixed raw size.
type fakeMeasurer struct {
	mu    sync.Mutex
	size  int
	calls int
}

func (f *fakeMeasurer) Measure(ctx context.Context, text, font string, w, h int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.size, nil
}

// fakeRenderer records render invocations and optionally fails on matching
// output paths.
type fakeRenderer struct {
	mu      sync.Mutex
	params  []magick.RenderParams
	failFor string
}

func (f *fakeRenderer) Render(ctx context.Context, p magick.RenderParams) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failFor != "" && strings.Contains(p.Output, f.failFor) {
		return errors.New("tool exploded")
	}
	f.params = append(f.params, p)
	return nil
}

func newTestRunner(t *testing.T, m pointsize.Measurer, renderer Renderer) *Runner {
	t.Helper()
	logger := log.New(io.Discard)
	sizes, err := pointsize.New(context.Background(), store.NewMemory(), m, logger)
	if err != nil {
		t.Fatalf("pointsize.New error: %v", err)
	}
	labels, err := translations.Default()
	if err != nil {
		t.Fatalf("translations.Default error: %v", err)
	}
	return NewRunner(sizes, renderer, labels, logger)
}

func TestExecuteSingleCategory(t *testing.T) {
	m := &fakeMeasurer{size: 180}
	renderer := &fakeRenderer{}
	r := newTestRunner(t, m, renderer)

	res, err := r.Execute(context.Background(), Options{
		Categories: []string{"genre"},
		OutputDir:  t.TempDir(),
	})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	wantVariants := len(catalog.Genres.Entries)
	if res.Generated != wantVariants {
		t.Errorf("Generated = %d, want %d", res.Generated, wantVariants)
	}
	if len(res.Failures) != 0 {
		t.Errorf("Failures = %v, want none", res.Failures)
	}
	if len(renderer.params) != wantVariants {
		t.Errorf("render calls = %d, want %d", len(renderer.params), wantVariants)
	}
	if res.RunID == "" {
		t.Error("RunID should be set")
	}

	// Resolved size passed through verbatim
	for _, p := range renderer.params {
		if p.PointSize != 180 {
			t.Errorf("PointSize = %d, want 180", p.PointSize)
		}
		if !strings.HasSuffix(p.Output, ".png") || !strings.Contains(p.Output, "genre_") {
			t.Errorf("unexpected output path %q", p.Output)
		}
	}
}

func TestExecuteAllCategoriesByDefault(t *testing.T) {
	renderer := &fakeRenderer{}
	r := newTestRunner(t, &fakeMeasurer{size: 150}, renderer)

	res, err := r.Execute(context.Background(), Options{OutputDir: t.TempDir()})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	var want int
	for _, c := range catalog.All() {
		want += len(c.Entries)
	}
	if res.Generated != want {
		t.Errorf("Generated = %d, want %d", res.Generated, want)
	}
}

func TestExecuteCountsCacheHits(t *testing.T) {
	m := &fakeMeasurer{size: 200}
	r := newTestRunner(t, m, &fakeRenderer{})
	opts := Options{Categories: []string{"decade"}, OutputDir: t.TempDir()}

	// First run: all misses
	res, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("first Execute error: %v", err)
	}
	if res.CacheHits != 0 {
		t.Errorf("first run CacheHits = %d, want 0", res.CacheHits)
	}
	firstCalls := m.calls

	// Second run: same labels, all hits, no new measurements
	res, err = r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("second Execute error: %v", err)
	}
	if res.CacheHits != res.Generated {
		t.Errorf("second run CacheHits = %d, want %d", res.CacheHits, res.Generated)
	}
	if m.calls != firstCalls {
		t.Errorf("measurer calls grew from %d to %d on cached run", firstCalls, m.calls)
	}
}

func TestExecuteFailedVariantDoesNotAbortBatch(t *testing.T) {
	renderer := &fakeRenderer{failFor: "genre_western"}
	r := newTestRunner(t, &fakeMeasurer{size: 150}, renderer)

	res, err := r.Execute(context.Background(), Options{
		Categories: []string{"genre"},
		OutputDir:  t.TempDir(),
	})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if len(res.Failures) != 1 {
		t.Fatalf("Failures = %v, want exactly one", res.Failures)
	}
	f := res.Failures[0]
	if f.Category != "genre" || f.Slug != "western" {
		t.Errorf("Failure = %+v", f)
	}
	if !pserrors.Is(f.Err, pserrors.ErrCodeRenderFailed) {
		t.Errorf("failure code = %v, want RENDER_FAILED", pserrors.GetCode(f.Err))
	}
	if res.Generated != len(catalog.Genres.Entries)-1 {
		t.Errorf("Generated = %d, want %d", res.Generated, len(catalog.Genres.Entries)-1)
	}
}

func TestExecuteUnknownCategory(t *testing.T) {
	r := newTestRunner(t, &fakeMeasurer{size: 150}, &fakeRenderer{})

	_, err := r.Execute(context.Background(), Options{
		Categories: []string{"bogus"},
		OutputDir:  t.TempDir(),
	})
	if !pserrors.Is(err, pserrors.ErrCodeInvalidCategory) {
		t.Errorf("error = %v, want INVALID_CATEGORY", err)
	}
}

func TestExecuteRequiresOutputDir(t *testing.T) {
	r := newTestRunner(t, &fakeMeasurer{size: 150}, &fakeRenderer{})
	if _, err := r.Execute(context.Background(), Options{}); err == nil {
		t.Error("Execute without output dir should fail")
	}
}

func TestExecuteTranslatedLabels(t *testing.T) {
	renderer := &fakeRenderer{}
	r := newTestRunner(t, &fakeMeasurer{size: 150}, renderer)

	_, err := r.Execute(context.Background(), Options{
		Categories: []string{"genre"},
		OutputDir:  t.TempDir(),
		Language:   "fr",
	})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	var found bool
	for _, p := range renderer.params {
		if p.Text == "Comédie" {
			found = true
		}
	}
	if !found {
		t.Error("french run should render the translated comedy label")
	}
}

func TestExecuteBackgroundAssetsResolvedAgainstAssetsDir(t *testing.T) {
	renderer := &fakeRenderer{}
	r := newTestRunner(t, &fakeMeasurer{size: 150}, renderer)

	_, err := r.Execute(context.Background(), Options{
		Categories: []string{"award"},
		OutputDir:  t.TempDir(),
		AssetsDir:  "/data/assets",
	})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	for _, p := range renderer.params {
		if !strings.HasPrefix(p.Background, "/data/assets/") {
			t.Errorf("Background = %q, want under /data/assets", p.Background)
		}
	}
}

func TestExecuteParallelWorkers(t *testing.T) {
	renderer := &fakeRenderer{}
	r := newTestRunner(t, &fakeMeasurer{size: 150}, renderer)

	res, err := r.Execute(context.Background(), Options{
		OutputDir: t.TempDir(),
		Workers:   4,
	})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	var want int
	for _, c := range catalog.All() {
		want += len(c.Entries)
	}
	if res.Generated != want {
		t.Errorf("Generated = %d, want %d with 4 workers", res.Generated, want)
	}
}

func TestExecuteCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := newTestRunner(t, &fakeMeasurer{size: 150}, &fakeRenderer{})
	_, err := r.Execute(ctx, Options{OutputDir: t.TempDir()})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}
