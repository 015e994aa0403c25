package telemetry

import (
	"context"
	"errors"
	"testing"
	"time"

	"socialelections/config"
	"socialelections/internal/core"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newRecordingTrace() (*Trace, *tracetest.SpanRecorder) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	return &Trace{TracerProvider: tp, ServiceName: "socialelections-test"}, recorder
}

func attrMap(kvs []attribute.KeyValue) map[attribute.Key]attribute.Value {
	out := make(map[attribute.Key]attribute.Value, len(kvs))
	for _, kv := range kvs {
		out[kv.Key] = kv.Value
	}
	return out
}

func TestRecordLedgerMutationSetsAttributesAndEvent(t *testing.T) {
	t.Parallel()

	tr, recorder := newRecordingTrace()
	_, span, end := tr.WithSpan(context.Background(), "ledger.add")
	tr.RecordLedgerMutation(span, core.TraceLedgerMeta{
		Op:              string(core.LedgerOpAdd),
		TechnicalUnitID: "tu1",
		Category:        string(core.ORCategoryArbeiders),
		EmployeeIDs:     []string{"e1", "e2"},
		Inserted:        2,
		Reordered:       1,
	}, nil)
	end(nil)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	require.Equal(t, "ledger.add", spans[0].Name())

	attrs := attrMap(spans[0].Attributes())
	require.Equal(t, "add_member", attrs["or.op"].AsString())
	require.Equal(t, int64(2), attrs["or.inserted"].AsInt64())
	require.Equal(t, []string{"e1", "e2"}, attrs["or.employee_ids"].AsStringSlice())

	events := spans[0].Events()
	require.Len(t, events, 1)
	require.Equal(t, "or.mutation", events[0].Name)
	eventAttrs := attrMap(events[0].Attributes)
	require.Equal(t, "ok", eventAttrs["or.result"].AsString())
	require.Equal(t, "tu1:arbeiders", eventAttrs["or.scope"].AsString())
	require.Equal(t, int64(3), eventAttrs["or.changed"].AsInt64())
}

func TestRecordLedgerMutationMarksFailure(t *testing.T) {
	t.Parallel()

	tr, recorder := newRecordingTrace()
	_, span, end := tr.WithSpan(context.Background(), "ledger.remove")
	failure := errors.New("write failed")
	tr.RecordLedgerMutation(span, core.TraceLedgerMeta{Op: string(core.LedgerOpRemove)}, failure)
	end(failure)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	require.Equal(t, codes.Error, spans[0].Status().Code)

	var found bool
	for _, ev := range spans[0].Events() {
		if ev.Name == "or.mutation" {
			found = true
			require.Equal(t, "error", attrMap(ev.Attributes)["or.result"].AsString())
		}
	}
	require.True(t, found)
}

func TestRecordScopeLockComputesWait(t *testing.T) {
	t.Parallel()

	tr, recorder := newRecordingTrace()
	_, span, end := tr.WithSpan(context.Background(), "lock")
	tr.RecordScopeLock(span, core.TraceScopeLockMeta{Key: "or:tu1:arbeiders", Driver: "redis", Attempts: 3},
		time.Now().Add(-5*time.Millisecond), "timeout")
	end(nil)

	attrs := attrMap(recorder.Ended()[0].Attributes())
	require.Equal(t, "timeout", attrs["lock.result"].AsString())
	require.Equal(t, "redis", attrs["lock.driver"].AsString())
	require.Equal(t, int64(3), attrs["lock.attempts"].AsInt64())
	require.GreaterOrEqual(t, attrs["lock.wait_ms"].AsFloat64(), 5.0)
}

func TestApplyTraceAttributesSkipsUntaggedAndNil(t *testing.T) {
	t.Parallel()

	type inner struct {
		Name string `trace:"inner.name"`
	}
	type payload struct {
		Tagged   string            `trace:"p.tagged"`
		Untagged string
		Labels   map[string]string `trace:"p.label"`
		Nested   *inner            `trace:"p.nested"`
		Missing  *inner            `trace:"p.missing"`
		Flags    []int             `trace:"p.flags"`
	}

	tr, recorder := newRecordingTrace()
	_, span, end := tr.WithSpan(context.Background(), "apply")
	tr.ApplyTraceAttributes(span, &payload{
		Tagged:   "yes",
		Untagged: "no",
		Labels:   map[string]string{"lang": "N"},
		Nested:   &inner{Name: "x"},
		Flags:    []int{1},
	})
	end(nil)

	attrs := attrMap(recorder.Ended()[0].Attributes())
	require.Len(t, attrs, 3)
	require.Equal(t, "yes", attrs["p.tagged"].AsString())
	require.Equal(t, "N", attrs["p.label.lang"].AsString())
	require.Equal(t, "x", attrs["inner.name"].AsString())
}

func TestSpanNameOf(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"socialelections/internal/service.(*WorksCouncilService).AddMember":            "WorksCouncilService.AddMember",
		"socialelections/internal/service.(*WorksCouncilService).BulkAdd.func1":        "WorksCouncilService.BulkAdd",
		"socialelections/internal/handler.(*EmployeeHandler).Update-fm":                "EmployeeHandler.Update",
		"socialelections/internal/database/memory.employeeStore.Search":                "employeeStore.Search",
		"socialelections/internal/service.(*cache[go.shape.string]).Get":               "cache.Get",
		"socialelections/internal/database/mongodb/repository.(*TechnicalUnitRepository).Update": "TechnicalUnitRepository.Update",
	}
	for full, want := range cases {
		require.Equal(t, want, spanNameOf(full), full)
	}
}

func TestWithSpanNamesAfterCaller(t *testing.T) {
	t.Parallel()

	tr, recorder := newRecordingTrace()
	_, _, end := tr.WithSpan(context.Background())
	end(nil)
	_, _, end = tr.WithSpan(context.Background(), "  ")
	end(nil)

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	require.Equal(t, "TestWithSpanNamesAfterCaller", spans[0].Name())
	require.Equal(t, spans[0].Name(), spans[1].Name())
}

func TestNewTraceDisabledUsesNoop(t *testing.T) {
	t.Parallel()

	tr, cleanup, err := NewTrace(&config.Configuration{})
	require.NoError(t, err)
	require.NotNil(t, cleanup)
	defer cleanup()
	require.Nil(t, tr.TracerProvider)

	_, span, end := tr.WithSpan(context.Background(), "noop")
	require.False(t, span.SpanContext().IsValid())
	end(nil)
}
