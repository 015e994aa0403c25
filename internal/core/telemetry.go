package core

const ContextTraceKey = "telemetry_trace_ctx"

// ==== 型別安全 span name ====
// 專案全域建議都寫這裡，方便集中管理
type TraceSpanName string

const (
	SpanHttpRequest        TraceSpanName = "http_request"
	SpanLoggerMiddleware   TraceSpanName = "logger_middleware"
	SpanRecoveryMiddleware TraceSpanName = "recovery_middleware"
	SpanCorsMiddleware     TraceSpanName = "cors_middleware"
	SpanResponseMiddleware TraceSpanName = "response_middleware"
	SpanScopeLock          TraceSpanName = "or_scope_lock"
	SpanIntegritySweep     TraceSpanName = "or_integrity_sweep"
)

// 指標名稱常數
type MetricName string

const (
	MetricHttpRequestsTotal       MetricName = "requests_total"
	MetricHttpRequestDuration     MetricName = "request_duration_seconds"
	MetricHttpSuccessTotal        MetricName = "success_total"
	MetricHttpFailTotal           MetricName = "fail_total"
	MetricLedgerMutationsTotal    MetricName = "or_ledger_mutations_total"
	MetricScopeLockWait           MetricName = "or_scope_lock_wait_seconds"
	MetricIntegrityViolationTotal MetricName = "or_integrity_violations_total"
)

// label name 常數
type MetricLabelName string

const (
	MetricLabelEndpoint MetricLabelName = "endpoint"
	MetricLabelStatus   MetricLabelName = "status"
	MetricLabelReason   MetricLabelName = "reason"
	MetricLabelOp       MetricLabelName = "op"
	MetricLabelCategory MetricLabelName = "category"
	MetricLabelResult   MetricLabelName = "result"
	MetricLabelKind     MetricLabelName = "kind"
)

type LoggerRequestMeta struct {
	Method     string            `trace:"request.method"`
	Path       string            `trace:"request.path"`
	FullPath   string            `trace:"request.full_path"`
	Query      string            `trace:"request.query"`
	Body       string            `trace:"request.body"`
	Scheme     string            `trace:"http.scheme"`
	Host       string            `trace:"http.host"`
	UserAgent  string            `trace:"http.user_agent"`
	ContentLen int64             `trace:"http.request_content_length"`
	Proto      string            `trace:"http.flavor"`
	ClientIP   string            `trace:"net.peer.ip"`
	Headers    map[string]string `trace:"http.request.header"`
	Params     map[string]string `trace:"http.request.param"`
}

type TracePanicMeta struct {
	Path       string  `trace:"http.path"`
	Method     string  `trace:"http.method"`
	ClientIP   string  `trace:"net.peer.ip"`
	UserAgent  string  `trace:"http.user_agent"`
	DurationMs float64 `trace:"response.latency_ms"`
	Status     int     `trace:"http.status_code"`
	Message    string  `trace:"error.message"`
	Stack      string  `trace:"error.stack"`
}

type TraceErrorMeta struct {
	Code       int     `trace:"error.code"`
	Message    string  `trace:"error.message"`
	Detail     string  `trace:"error.detail"`
	Status     int     `trace:"http.status_code"`
	DurationMs float64 `trace:"response.latency_ms"`
}

type TraceResponseMeta struct {
	Path       string  `trace:"http.path"`
	Method     string  `trace:"http.method"`
	Status     int     `trace:"http.status_code"`
	Message    string  `trace:"response.message"`
	Code       int     `trace:"response.code"`
	DurationMs float64 `trace:"response.latency_ms"`
	Data       string  `trace:"response.data_preview"`
}

type TraceHttpServerMeta struct {
	// request side
	ClientAddr        string `trace:"client.address"`
	HttpRequestMethod string `trace:"http.request.method"`
	HttpRoute         string `trace:"http.route"`
	UrlPath           string `trace:"http.request.path"`
	UrlScheme         string `trace:"http.request.url.scheme"`
	UserAgent         string `trace:"user_agent.original"`
	ServerAddress     string `trace:"server.address"`
	NetworkPeerAddr   string `trace:"network.peer.address"`
	NetworkPeerPort   int    `trace:"network.peer.port"`
	NetworkProtoVer   string `trace:"network.protocol.version"`
	SpanTraceID       string `trace:"span.trace_id"`
	HttpStatusCode    int    `trace:"http.response.status_code"`
}

// 供 Membership Ledger 各操作使用
type TraceLedgerMeta struct {
	Op              string   `trace:"or.op"`
	TechnicalUnitID string   `trace:"or.technical_unit_id"`
	Category        string   `trace:"or.category"`
	EmployeeIDs     []string `trace:"or.employee_ids"`
	Inserted        int      `trace:"or.inserted"`
	Deleted         int      `trace:"or.deleted"`
	Reordered       int      `trace:"or.reordered"`
	Skipped         int      `trace:"or.skipped"`
}

// 供 Redis / in-process scope lock 使用
type TraceScopeLockMeta struct {
	Key      string  `trace:"lock.key"`
	Driver   string  `trace:"lock.driver"`
	WaitMs   float64 `trace:"lock.wait_ms"`
	Attempts int     `trace:"lock.attempts"`
	Result   string  `trace:"lock.result"`
}

type TraceIntegrityMeta struct {
	Scopes     int  `trace:"integrity.scopes"`
	Violations int  `trace:"integrity.violations"`
	Repaired   int  `trace:"integrity.repaired"`
	Repair     bool `trace:"integrity.repair"`
}

type TraceDirectoryMeta struct {
	Op              string `trace:"directory.op"`
	EmployeeID      string `trace:"directory.employee_id"`
	TechnicalUnitID string `trace:"directory.technical_unit_id"`
	Query           string `trace:"directory.query"`
	ResultCount     int    `trace:"result.count"`
}
