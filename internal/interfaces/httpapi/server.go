package httpapi

import (
	"net/http"

	"github.com/riskibarqy/fantasy-waterpolo/internal/platform/logging"
)

type RouterConfig struct {
	CORSAllowedOrigins  []string
	AdminToken          string
	CaptureRequestBody  bool
	RequestBodyMaxBytes int
}

func NewRouter(handler *Handler, logger *logging.Logger, cfg RouterConfig) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler)
	registerPublicRoutes(mux, handler)
	registerAdminRoutes(mux, handler, cfg.AdminToken)

	var inner http.Handler = CORS(cfg.CORSAllowedOrigins, recoverPanic(logger, mux))
	if cfg.CaptureRequestBody {
		inner = CaptureRequestBody(cfg.RequestBodyMaxBytes, inner)
	}
	return RequestTracing(RequestLogging(logger, inner))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec, "path", r.URL.Path)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
