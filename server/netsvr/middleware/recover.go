package middleware

import (
	"net/http"

	chimid "github.com/go-chi/chi/v5/middleware"
)

// Recover 掛 chi 的 Recoverer：handler panic 轉 500，行程不死。
func Recover(next http.Handler) http.Handler {
	return chimid.Recoverer(next)
}
