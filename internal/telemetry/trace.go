package telemetry

import (
	"context"
	"fmt"
	"reflect"
	"runtime"
	"strings"
	"time"

	"socialelections/config"
	"socialelections/internal/core"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

type Trace struct {
	TracerProvider *sdktrace.TracerProvider
	ServiceName    string
}

// otlp exporter 的重試與 timeout 設定
const (
	exportRetryInitial = 5 * time.Second
	exportRetryMax     = 10 * time.Second
	exportRetryElapsed = 60 * time.Second
	exportTimeout      = 30 * time.Second
	shutdownTimeout    = 5 * time.Second
)

// NewTrace 關閉時回傳空的 Trace，StartSpanForLayer 會改用 noop tracer
func NewTrace(conf *config.Configuration) (*Trace, func(), error) {
	if conf == nil || !conf.Telemetry.Trace.Enabled {
		return &Trace{}, func() {}, nil
	}
	exporter, err := otlptracehttp.New(context.Background(),
		otlptracehttp.WithInsecure(),
		otlptracehttp.WithEndpointURL(conf.Telemetry.Trace.EndpointUrl),
		otlptracehttp.WithRetry(otlptracehttp.RetryConfig{
			Enabled:         true,
			InitialInterval: exportRetryInitial,
			MaxInterval:     exportRetryMax,
			MaxElapsedTime:  exportRetryElapsed,
		}),
		otlptracehttp.WithTimeout(exportTimeout),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("create otlp exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(serviceResource(conf)),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = tp.Shutdown(ctx)
	}
	return &Trace{TracerProvider: tp, ServiceName: conf.App.Name}, cleanup, nil
}

// serviceResource 除了 service name/version，也帶上 ledger 用的 storage 與 locker，方便在 trace 後台分辨部署
func serviceResource(conf *config.Configuration) *resource.Resource {
	return resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(conf.App.Name),
		semconv.ServiceVersion(conf.App.Version),
		attribute.String("deployment.environment.name", conf.App.Env),
		attribute.String("works_council.storage", string(conf.WorksCouncil.Storage)),
		attribute.String("works_council.locker", string(conf.WorksCouncil.Locker)),
	)
}

func (t *Trace) StartSpanForLayer(
	ctx context.Context,
	spanName core.TraceSpanName,
	opts ...trace.SpanStartOption,
) (context.Context, trace.Span) {
	var tracer trace.Tracer
	if t.TracerProvider == nil {
		tracer = noop.NewTracerProvider().Tracer("noop")
	} else {
		tracer = t.TracerProvider.Tracer(t.ServiceName)
	}
	return tracer.Start(ctx, string(spanName), opts...)
}

// ==== Handler 與 Service 皆可使用的開 span 方法 ====

// overrideName 有帶非空白的 name 時取代自動產生的名稱
func overrideName(auto string, name []string) core.TraceSpanName {
	if len(name) > 0 && strings.TrimSpace(name[0]) != "" {
		return core.TraceSpanName(name[0])
	}
	if auto == "" {
		auto = "unknown"
	}
	return core.TraceSpanName(auto)
}

// StartSpanFromGinAuto 從 gin 取父 ctx，並把新的 ctx 放回 gin 給後面的 middleware 用
func (t *Trace) StartSpanFromGinAuto(c *gin.Context, name ...string) (context.Context, trace.Span) {
	ctx, span := t.StartSpanForLayer(t.GetTraceContext(c), overrideName(spanNameFromGin(c), name))
	c.Set(core.ContextTraceKey, ctx)
	return ctx, span
}

// StartSpanAuto 以呼叫者的 "Type.Method" 當 span 名稱；skip 對應 WithSpan → startSpanAny → StartSpanAuto
func (t *Trace) StartSpanAuto(ctx context.Context, name ...string) (context.Context, trace.Span) {
	return t.StartSpanForLayer(ctx, overrideName(spanNameOf(callerName(4)), name))
}

// startSpanAny 接受 *gin.Context (handler) 或 context.Context (service/repository)
func (t *Trace) startSpanAny(parent interface{}, name ...string) (context.Context, trace.Span) {
	switch p := parent.(type) {
	case *gin.Context:
		return t.StartSpanFromGinAuto(p, name...)
	case context.Context:
		return t.StartSpanAuto(p, name...)
	default:
		return t.StartSpanForLayer(context.Background(), overrideName("", name))
	}
}

// 統一結束 span（含錯誤標註）
func (t *Trace) EndSpan(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// For 下游所有 middleware/service 使用，統一取得最新 ctx
func (t *Trace) GetTraceContext(c *gin.Context) context.Context {
	if ctx, ok := c.Get(core.ContextTraceKey); ok {
		return ctx.(context.Context)
	}
	return c.Request.Context()
}

// ApplyTraceAttributes 依 `trace` tag 把 struct 欄位一次寫進 span
func (t *Trace) ApplyTraceAttributes(span trace.Span, obj interface{}) {
	if span == nil || obj == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			span.RecordError(fmt.Errorf("ApplyTraceAttributes panic: %v", r))
		}
	}()
	if attrs := traceAttributes(reflect.ValueOf(obj)); len(attrs) > 0 {
		span.SetAttributes(attrs...)
	}
}

// traceAttributes 只看有 trace tag 的欄位；巢狀 struct 與非 nil 指標展開，map 以 "tag.key" 命名
func traceAttributes(val reflect.Value) []attribute.KeyValue {
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil
	}
	typ := val.Type()

	var attrs []attribute.KeyValue
	for i := 0; i < typ.NumField(); i++ {
		tag := typ.Field(i).Tag.Get("trace")
		fieldVal := val.Field(i)
		if tag == "" || !fieldVal.IsValid() || !fieldVal.CanInterface() {
			continue
		}
		switch fieldVal.Kind() {
		case reflect.Struct, reflect.Ptr:
			attrs = append(attrs, traceAttributes(fieldVal)...)
		case reflect.Map:
			if fieldVal.Type().Key().Kind() != reflect.String {
				continue
			}
			for _, key := range fieldVal.MapKeys() {
				if kv, ok := scalarAttribute(tag+"."+key.String(), fieldVal.MapIndex(key)); ok {
					attrs = append(attrs, kv)
				}
			}
		default:
			if kv, ok := scalarAttribute(tag, fieldVal); ok {
				attrs = append(attrs, kv)
			}
		}
	}
	return attrs
}

// 不支援的型別回傳 false
func scalarAttribute(key string, v reflect.Value) (attribute.KeyValue, bool) {
	switch v.Kind() {
	case reflect.String:
		return attribute.String(key, v.String()), true
	case reflect.Bool:
		return attribute.Bool(key, v.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return attribute.Int64(key, v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return attribute.Int64(key, int64(v.Uint())), true
	case reflect.Float32, reflect.Float64:
		return attribute.Float64(key, v.Float()), true
	case reflect.Slice, reflect.Array:
		if v.Type().Elem().Kind() != reflect.String {
			return attribute.KeyValue{}, false
		}
		strs := make([]string, v.Len())
		for j := range strs {
			strs[j] = v.Index(j).String()
		}
		return attribute.StringSlice(key, strs), true
	}
	return attribute.KeyValue{}, false
}

func (t *Trace) WithSpan(parent interface{}, name ...string) (context.Context, trace.Span, func(error)) {
	ctx, span := t.startSpanAny(parent, name...)
	end := func(err error) {
		t.EndSpan(span, err)
	}
	return ctx, span, end
}

// ==== ledger / scope lock ====

const (
	ledgerEventName  = "or.mutation"
	ledgerResultOK   = "ok"
	ledgerResultFail = "error"
)

// RecordLedgerMutation 寫入 or.* attribute，並加一個 or.mutation event 記錄結果與變動列數
func (t *Trace) RecordLedgerMutation(span trace.Span, meta core.TraceLedgerMeta, err error) {
	if span == nil {
		return
	}
	t.ApplyTraceAttributes(span, meta)

	result := ledgerResultOK
	if err != nil {
		result = ledgerResultFail
	}
	span.AddEvent(ledgerEventName, trace.WithAttributes(
		attribute.String("or.op", meta.Op),
		attribute.String("or.scope", meta.TechnicalUnitID+":"+meta.Category),
		attribute.String("or.result", result),
		attribute.Int("or.changed", meta.Inserted+meta.Deleted+meta.Reordered),
	))
}

// RecordScopeLock 由 startAt 算出 lock.wait_ms；result 為 acquired | timeout | error
func (t *Trace) RecordScopeLock(span trace.Span, meta core.TraceScopeLockMeta, startAt time.Time, result string) {
	if span == nil {
		return
	}
	meta.WaitMs = float64(time.Since(startAt).Microseconds()) / 1000
	meta.Result = result
	t.ApplyTraceAttributes(span, meta)
}

// ==== span 名稱 ====

var receiverReplacer = strings.NewReplacer("(*", "", "(", "", ")", "")

// spanNameOf 把 runtime 的函式全名縮成 "Type.Method"，
// 例如 socialelections/internal/service.(*WorksCouncilService).AddMember.func1 → WorksCouncilService.AddMember
func spanNameOf(full string) string {
	full = full[strings.LastIndex(full, "/")+1:]
	full = strings.TrimSuffix(full, "-fm")
	if i := strings.Index(full, ".func"); i >= 0 {
		full = full[:i]
	}
	if i := strings.Index(full, "·"); i >= 0 {
		full = full[:i]
	}
	if _, rest, ok := strings.Cut(full, "."); ok {
		full = rest
	}
	full = receiverReplacer.Replace(full)
	// 泛型型參只留名稱
	if open := strings.Index(full, "["); open >= 0 {
		if n := strings.Index(full[open:], "]"); n >= 0 {
			full = full[:open] + full[open+n+1:]
		}
	}
	return full
}

func spanNameFromGin(c *gin.Context) string {
	if hn := c.HandlerName(); hn != "" {
		return spanNameOf(hn)
	}
	route := c.FullPath()
	if route == "" {
		route = c.Request.URL.Path
	}
	return c.Request.Method + " " + route
}

func callerName(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return ""
	}
	if fn := runtime.FuncForPC(pc); fn != nil {
		return fn.Name()
	}
	return ""
}
