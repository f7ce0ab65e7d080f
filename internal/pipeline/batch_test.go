package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kavinduUdhara/extract-document-data-automation/internal/entity"
	"github.com/kavinduUdhara/extract-document-data-automation/internal/ingest"
)

type fakeRecorder struct {
	mu      sync.Mutex
	reports []*entity.BatchReport
	err     error
}

func (f *fakeRecorder) SaveReport(_ context.Context, report *entity.BatchReport) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reports = append(f.reports, report)
	return f.err
}

func newBatch(t *testing.T, workers int, recorder RunRecorder) *BatchProcessor {
	t.Helper()
	proc, _ := newProcessor(t, &fakeCache{text: "doc text", hit: true}, nil, &fakeTableGen{}, twoSchemaRegistry(t))
	return NewBatchProcessor(ingest.NewEnumerator(nil), proc, recorder, workers, nil)
}

func TestBatchRun_EmptyInputDir(t *testing.T) {
	b := newBatch(t, 1, nil)

	report, err := b.Run(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Zero(t, report.Attempted())
	assert.NotEmpty(t, report.RunID)
}

func TestBatchRun_MissingInputDirAborts(t *testing.T) {
	b := newBatch(t, 1, nil)

	_, err := b.Run(context.Background(), filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}

func TestBatchRun_ReportKeepsEnumerationOrder(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a_offer.pdf", "b_offer.pdf", "c_offer.pdf", "d_offer.pdf"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	b := newBatch(t, 4, nil) // parallel workers must not reorder the report
	report, err := b.Run(context.Background(), dir)
	require.NoError(t, err)
	require.Equal(t, 4, report.Attempted())

	names := make([]string, 0, 4)
	for i := range report.Outcomes {
		names = append(names, report.Outcomes[i].Document.Name)
	}
	assert.Equal(t, []string{"a_offer.pdf", "b_offer.pdf", "c_offer.pdf", "d_offer.pdf"}, names)
}

func TestBatchRun_AggregateCounts(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "offer.pdf"), []byte("x"), 0o644))

	b := newBatch(t, 1, nil)
	report, err := b.Run(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Attempted())
	assert.Equal(t, 1, report.Succeeded())
	assert.Equal(t, 0, report.Failed())
}

func TestBatchRun_RecordsReport(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "offer.pdf"), []byte("x"), 0o644))

	rec := &fakeRecorder{}
	b := newBatch(t, 1, rec)
	report, err := b.Run(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, rec.reports, 1)
	assert.Equal(t, report.RunID, rec.reports[0].RunID)
}

func TestBatchRun_RecorderFailureDoesNotFailRun(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "offer.pdf"), []byte("x"), 0o644))

	b := newBatch(t, 1, &fakeRecorder{err: errors.New("store down")})
	report, err := b.Run(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Attempted())
}
