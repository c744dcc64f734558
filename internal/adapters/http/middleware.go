package httpadapter

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// recorder remembers the status code and body size a handler produced.
// A handler that never calls WriteHeader answers 200.
type recorder struct {
	http.ResponseWriter
	code    int
	written int
}

func newRecorder(w http.ResponseWriter) *recorder {
	return &recorder{ResponseWriter: w, code: http.StatusOK}
}

func (r *recorder) WriteHeader(code int) {
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *recorder) Write(p []byte) (int, error) {
	n, err := r.ResponseWriter.Write(p)
	r.written += n
	return n, err
}

// RequestLogger logs one line per request once the handler returns.
func RequestLogger(logger *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		rec := newRecorder(w)
		next.ServeHTTP(rec, req)
		logger.Info("http",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.Int("status", rec.code),
			zap.Int("bytes", rec.written),
			zap.Duration("dur", time.Since(start).Round(time.Millisecond)),
		)
	})
}
