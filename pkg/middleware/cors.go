package middleware

import (
	"net/http"
	"strings"
)

var defaultAllowedHeaders = []string{"Content-Type"}

// Cors libera qualquer origem: o painel e o script de exibição rodam em domínios diferentes.
// Requisições OPTIONS terminam aqui com 200 e corpo vazio.
func Cors(extraHeaders ...string) func(http.Handler) http.Handler {
	allowedHeaders := strings.Join(append(append([]string{}, defaultAllowedHeaders...), extraHeaders...), ", ")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
