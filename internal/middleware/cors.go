package middleware

import (
	"socialelections/internal/core"
	"socialelections/internal/telemetry"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Cors struct {
	trace *telemetry.Trace
}

func NewCors(trace *telemetry.Trace) *Cors {
	return &Cors{trace: trace}
}

// CorsHandler 設定 CORS；admin console 下載 roster 需要讀 Content-Disposition
func (m *Cors) CorsHandler() gin.HandlerFunc {
	cfg := cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Traceparent"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: true,
	}
	corsHandler := cors.New(cfg)

	type corsMeta struct {
		AllowOrigins  []string `trace:"http.cors.allow_origins"`
		AllowMethods  []string `trace:"http.cors.allow_methods"`
		AllowHeaders  []string `trace:"http.cors.allow_headers"`
		ExposeHeaders []string `trace:"http.cors.expose_headers"`
		AllowCreds    bool     `trace:"http.cors.allow_credentials"`
	}

	return func(c *gin.Context) {
		// 不做 tracing 的路徑仍需套用 CORS（避免 preflight 失敗）
		if skipTelemetry(c.FullPath()) {
			corsHandler(c)
			return
		}

		_, span, end := m.trace.WithSpan(c.Request.Context(), string(core.SpanCorsMiddleware))
		defer end(nil)

		m.trace.ApplyTraceAttributes(span, corsMeta{
			AllowOrigins:  cfg.AllowOrigins,
			AllowMethods:  cfg.AllowMethods,
			AllowHeaders:  cfg.AllowHeaders,
			ExposeHeaders: cfg.ExposeHeaders,
			AllowCreds:    cfg.AllowCredentials,
		})

		// 實際的 CORS middleware 內部會呼叫 c.Next()
		corsHandler(c)
	}
}
