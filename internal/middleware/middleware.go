package middleware

import (
	"strings"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewCors,
	NewLogger,
	NewRecovery,
	NewTraceEntry,
	NewResponse,
	NewDecompress,
)

// 這些路徑不做 tracing / request log / 回應封裝
var untracedPrefixes = []string{
	"/swagger",
	"/metrics",
	"/version",
	"/health-check",
	"/health/",
	"/debug/pprof",
}

func skipTelemetry(endpoint string) bool {
	for _, prefix := range untracedPrefixes {
		if strings.HasPrefix(endpoint, prefix) {
			return true
		}
	}
	return false
}
