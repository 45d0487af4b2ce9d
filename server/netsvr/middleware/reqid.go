package middleware

import (
	"net/http"

	chimid "github.com/go-chi/chi/v5/middleware"
)

// RequestID 直接掛 chi 的 RequestID；包一層是為了讓 api 層
// 只 import 本包，不直接耦合 chi。
func RequestID(next http.Handler) http.Handler {
	return chimid.RequestID(next)
}

// GetReqId 取出當前請求的 request id（沒有時回空字串）。
func GetReqId(r *http.Request) string {
	return chimid.GetReqID(r.Context())
}
