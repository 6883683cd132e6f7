package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RegionEnricher/internal/domain"
)

type stubReader struct {
	tree any
	err  error
	path string
}

func (s *stubReader) Read(_ context.Context, path string) (any, error) {
	s.path = path
	return s.tree, s.err
}

type recordingWriter struct {
	calls   int
	path    string
	records []*domain.Object
	err     error
}

func (w *recordingWriter) Write(_ context.Context, path string, records []*domain.Object) error {
	w.calls++
	w.path = path
	w.records = records
	return w.err
}

func TestPipelineProcess(t *testing.T) {
	t.Parallel()

	reader := &stubReader{tree: decode(t, `{"nodes": [{"id": "FRA"}, {"id": "athletics"}]}`)}
	writer := &recordingWriter{}

	p := NewPipeline(PipelineDeps{Reader: reader, Writer: writer})
	summary, err := p.Process(context.Background(), "in.json", "out.json")
	require.NoError(t, err)

	assert.Equal(t, "in.json", reader.path)
	assert.Equal(t, "out.json", writer.path)
	assert.Equal(t, 1, writer.calls)
	assert.JSONEq(t, `[{"id":"FRA","region":"Europe"},{"id":"athletics","region":"Sport"}]`, encode(t, writer.records))
	assert.Equal(t, 2, summary.Total)
	assert.True(t, summary.FromNodes)
}

func TestPipelineDoesNotWriteOnFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		reader *stubReader
		check  func(t *testing.T, err error)
	}{
		{
			name:   "parse error",
			reader: &stubReader{err: &domain.ParseError{Path: "in.json", Err: errors.New("bad")}},
			check: func(t *testing.T, err error) {
				var parseErr *domain.ParseError
				assert.ErrorAs(t, err, &parseErr)
			},
		},
		{
			name:   "structural error",
			reader: &stubReader{tree: decode(t, `[{"id": "FRA"}, 3]`)},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, domain.ErrNonRecordElement)
			},
		},
		{
			name:   "top-level scalar",
			reader: &stubReader{tree: decode(t, `"not a list"`)},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, domain.ErrNotRecordList)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			writer := &recordingWriter{}
			p := NewPipeline(PipelineDeps{Reader: tt.reader, Writer: writer})

			_, err := p.Process(context.Background(), "in.json", "out.json")
			require.Error(t, err)
			tt.check(t, err)
			assert.Zero(t, writer.calls)
		})
	}
}

func TestPipelineWriterError(t *testing.T) {
	t.Parallel()

	writer := &recordingWriter{err: errors.New("disk full")}
	p := NewPipeline(PipelineDeps{Reader: &stubReader{tree: []any{}}, Writer: writer})

	_, err := p.Process(context.Background(), "in.json", "out.json")
	require.ErrorContains(t, err, "save dataset: disk full")
}

func TestPipelineNotConfigured(t *testing.T) {
	t.Parallel()

	_, err := NewPipeline(PipelineDeps{}).Process(context.Background(), "in.json", "out.json")
	require.Error(t, err)
}
