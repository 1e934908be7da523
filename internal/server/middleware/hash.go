package middleware

import (
	"bytes"
	"io"
	"net/http"

	"github.com/Mjmurray03/smart-deal-analyzer-sub001/internal/utils"
)

// VerifyHashMiddleware rejects requests whose HashSHA256 header does not
// match the body, and signs responses the same way. No-op without a key.
func VerifyHashMiddleware(key string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			bodyBytes, err := io.ReadAll(r.Body)
			if err != nil {
				http.Error(w, "bad body", http.StatusBadRequest)
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(bodyBytes))

			headerHashSHA256 := r.Header.Get("HashSHA256")
			if headerHashSHA256 != "" && headerHashSHA256 != utils.CalculateHash(bodyBytes, key) {
				http.Error(w, "invalid hash", http.StatusBadRequest)
				return
			}

			capture := &responseCapture{ResponseWriter: w}
			next.ServeHTTP(capture, r)

			w.Header().Set("HashSHA256", utils.CalculateHash(capture.body.Bytes(), key))
		})
	}
}

type responseCapture struct {
	http.ResponseWriter
	body bytes.Buffer
}

func (r *responseCapture) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}
