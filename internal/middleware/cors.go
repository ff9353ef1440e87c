package middleware

import (
	"fmt"
	"net/http"

	"github.com/rs/cors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// AllowedMethods is every standard HTTP method. Cross-origin requests may use any of them.
var AllowedMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodConnect,
	http.MethodOptions,
	http.MethodTrace,
}

// CORSOptions builds the rs/cors options for the given allowed origins:
// credentials allowed, all methods, all request headers.
func CORSOptions(allowedOrigins []string) cors.Options {
	opts := cors.Options{
		AllowedOrigins:       allowedOrigins,
		AllowCredentials:     true,
		AllowedMethods:       AllowedMethods,
		AllowedHeaders:       []string{"*"},
		OptionsSuccessStatus: http.StatusOK,
	}
	// rs/cors treats an empty origin list as "allow all"; an empty list here
	// must allow nothing.
	if len(allowedOrigins) == 0 {
		opts.AllowOriginFunc = func(string) bool { return false }
	}
	return opts
}

// CORS creates CORS middleware backed by rs/cors. Preflight requests are
// answered here and never reach next.
func CORS(allowedOrigins []string, logger *zap.Logger) func(http.Handler) http.Handler {
	origins := make([]string, len(allowedOrigins))
	copy(origins, allowedOrigins)

	opts := CORSOptions(origins)
	if logger.Core().Enabled(zapcore.DebugLevel) {
		opts.Debug = true
		opts.Logger = corsLogger{logger.Named("cors")}
	}

	logger.Info("cors_middleware_initialized",
		zap.Strings("allowed_origins", origins),
		zap.Bool("allow_credentials", opts.AllowCredentials),
	)

	c := cors.New(opts)
	return c.Handler
}

// corsLogger adapts zap to the Printf logger rs/cors expects.
type corsLogger struct {
	log *zap.Logger
}

func (l corsLogger) Printf(format string, args ...any) {
	l.log.Debug(fmt.Sprintf(format, args...))
}
