package orchestration_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/agbru/arithmos/internal/errors"
	"github.com/agbru/arithmos/internal/metrics"
	"github.com/agbru/arithmos/internal/orchestration"
	"github.com/agbru/arithmos/internal/orchestration/mocks"
)

var sampleCases = []orchestration.Case{
	{Op: "sum", A: "1", B: "2"},
	{Op: "mul", A: "3", B: "4"},
	{Op: "cmp", A: "5", B: "-5"},
}

func mockBackend(ctrl *gomock.Controller, name string, eval func(context.Context, orchestration.Case) (string, error)) *mocks.MockBackend {
	b := mocks.NewMockBackend(ctrl)
	b.EXPECT().Name().Return(name).AnyTimes()
	b.EXPECT().Eval(gomock.Any(), gomock.Any()).DoAndReturn(eval).AnyTimes()
	return b
}

func bigBackend(t *testing.T) orchestration.Backend {
	t.Helper()
	backends, err := orchestration.NewBackends([]string{"big"})
	require.NoError(t, err)
	return backends[0]
}

func TestAnalyzeComparisonResultsSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	presenter := mocks.NewMockResultPresenter(ctrl)
	presenter.EXPECT().PresentComparisonTable(gomock.Len(2), gomock.Any())

	backends, err := orchestration.NewBackends([]string{"arithmos", "big"})
	require.NoError(t, err)
	results := orchestration.ExecuteVerify(context.Background(), backends, sampleCases, 0, orchestration.NullProgressReporter{}, io.Discard)

	var out bytes.Buffer
	code := orchestration.AnalyzeComparisonResults(sampleCases, results, metrics.New(), presenter, &out)
	assert.Equal(t, apperrors.ExitSuccess, code)
	assert.Contains(t, out.String(), "Success")
}

func TestAnalyzeComparisonResultsMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	liar := mockBackend(ctrl, "liar", func(_ context.Context, c orchestration.Case) (string, error) {
		if c.Op == "mul" {
			return "13", nil
		}
		return map[string]string{"sum": "3", "cmp": "1"}[c.Op], nil
	})

	presenter := mocks.NewMockResultPresenter(ctrl)
	presenter.EXPECT().PresentComparisonTable(gomock.Any(), gomock.Any())
	var got []orchestration.Mismatch
	presenter.EXPECT().PresentMismatches(gomock.Any(), gomock.Any()).Do(func(m []orchestration.Mismatch, _ io.Writer) {
		got = m
	})

	backends := []orchestration.Backend{bigBackend(t), liar}
	results := orchestration.ExecuteVerify(context.Background(), backends, sampleCases, 2, orchestration.NullProgressReporter{}, io.Discard)

	m := metrics.New()
	var out bytes.Buffer
	code := orchestration.AnalyzeComparisonResults(sampleCases, results, m, presenter, &out)
	assert.Equal(t, apperrors.ExitErrorMismatch, code)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Index)
	assert.Equal(t, "mul", got[0].Case.Op)
	assert.ElementsMatch(t, []string{"12", "13"}, []string{got[0].Got, got[0].Want})
	assert.Contains(t, out.String(), "CRITICAL")
}

func TestAnalyzeComparisonResultsAllFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	boom := errors.New("backend crashed")
	failing := mockBackend(ctrl, "failing", func(context.Context, orchestration.Case) (string, error) {
		return "", boom
	})

	presenter := mocks.NewMockResultPresenter(ctrl)
	presenter.EXPECT().PresentComparisonTable(gomock.Any(), gomock.Any())
	presenter.EXPECT().HandleError(gomock.Any(), gomock.Any()).DoAndReturn(func(err error, _ io.Writer) int {
		assert.ErrorIs(t, err, boom)
		return apperrors.ExitErrorGeneric
	})

	results := orchestration.ExecuteVerify(context.Background(), []orchestration.Backend{failing}, sampleCases, 1, orchestration.NullProgressReporter{}, io.Discard)
	require.Len(t, results, 1)
	assert.Empty(t, results[0].Results)

	var out bytes.Buffer
	code := orchestration.AnalyzeComparisonResults(sampleCases, results, nil, presenter, &out)
	assert.Equal(t, apperrors.ExitErrorGeneric, code)
	assert.Contains(t, out.String(), "Failure")
}

func TestAnalyzeComparisonResultsPartial(t *testing.T) {
	ctrl := gomock.NewController(t)
	failing := mockBackend(ctrl, "failing", func(context.Context, orchestration.Case) (string, error) {
		return "", errors.New("no libgmp")
	})
	presenter := mocks.NewMockResultPresenter(ctrl)
	presenter.EXPECT().PresentComparisonTable(gomock.Any(), gomock.Any()).Do(func(results []orchestration.BackendResult, _ io.Writer) {
		require.Len(t, results, 3)
		assert.Equal(t, "failing", results[2].Name, "failures sort last")
	})
	presenter.EXPECT().HandleError(gomock.Any(), gomock.Any()).Return(apperrors.ExitErrorGeneric)

	backends, err := orchestration.NewBackends([]string{"arithmos", "big"})
	require.NoError(t, err)
	backends = append([]orchestration.Backend{failing}, backends...)
	results := orchestration.ExecuteVerify(context.Background(), backends, sampleCases, 0, orchestration.NullProgressReporter{}, io.Discard)

	code := orchestration.AnalyzeComparisonResults(sampleCases, results, nil, presenter, io.Discard)
	assert.Equal(t, apperrors.ExitErrorGeneric, code)
}

func TestExecuteVerifyProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := mocks.NewMockProgressReporter(ctrl)

	var mu sync.Mutex
	final := map[int]float64{}
	reporter.EXPECT().DisplayProgress(gomock.Any(), gomock.Any(), 2, gomock.Any()).
		Do(func(wg *sync.WaitGroup, ch <-chan orchestration.ProgressUpdate, _ int, _ io.Writer) {
			defer wg.Done()
			for u := range ch {
				mu.Lock()
				final[u.BackendIndex] = u.Value
				mu.Unlock()
			}
		})

	backends, err := orchestration.NewBackends([]string{"arithmos", "big"})
	require.NoError(t, err)
	cases := orchestration.GenerateCorpus(3, 20, 2)
	orchestration.ExecuteVerify(context.Background(), backends, cases, 0, reporter, io.Discard)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, map[int]float64{0: 1, 1: 1}, final)
}

func TestExecuteVerifyCanceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	backends, err := orchestration.NewBackends([]string{"arithmos", "big"})
	require.NoError(t, err)
	results := orchestration.ExecuteVerify(ctx, backends, sampleCases, 0, orchestration.NullProgressReporter{}, io.Discard)
	for _, res := range results {
		assert.ErrorIs(t, res.Err, context.Canceled, res.Name)
	}
}

// slowReporter consumes updates with a delay to force a full channel.
func slowReporter(wg *sync.WaitGroup, ch <-chan orchestration.ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	for range ch {
		time.Sleep(time.Millisecond)
	}
}

func TestExecuteVerifyNoDeadlock(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		backends []string
		workers  int
		timeout  time.Duration
	}{
		{"single worker", []string{"arithmos", "big", "arithmos", "big"}, 1, 0},
		{"unbounded", []string{"arithmos", "big", "arithmos", "big", "arithmos"}, 0, 0},
		{"deadline during run", []string{"arithmos", "big"}, 2, time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			backends, err := orchestration.NewBackends(tt.backends)
			require.NoError(t, err)
			ctx := context.Background()
			if tt.timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, tt.timeout)
				defer cancel()
			}
			cases := orchestration.GenerateCorpus(11, 40, 16)

			done := make(chan []orchestration.BackendResult)
			go func() {
				done <- orchestration.ExecuteVerify(ctx, backends, cases, tt.workers, orchestration.ProgressReporterFunc(slowReporter), io.Discard)
			}()
			select {
			case results := <-done:
				assert.Len(t, results, len(tt.backends))
			case <-time.After(30 * time.Second):
				t.Fatal("ExecuteVerify did not return")
			}
		})
	}
}
