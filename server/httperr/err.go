// Copyright 2025 Zintix Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package httperr

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/zintix-labs/randlab/errs"
)

// StatusCode 將錯誤映射成 HTTP status code。
//
// 規則（邊界層最小映射、可預期）：
//   - ctx timeout/cancel   → 504/408（請求生命週期問題）
//   - KindInvalidHandle    → 404（handle 不存在或已關閉）
//   - KindAllocFailed      → 413（批次超過單批上限）
//   - errs.Warn            → 400（請求/參數問題，含 seed/count 校驗）
//   - errs.Fatal           → 500（系統/不可恢復問題）
//
// 本函數屬於 HTTP 邊界層，所以放在 server/*（而不是 core errs），
// 避免核心錯誤包依賴 net/http 等傳輸層細節。
func StatusCode(err error) int {
	// 1) context 取消/超時（被 wrap 也能被 errors.Is 命中）
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout // 504
	case errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout // 408
	}

	// 2) 機器可讀的 Kind 優先於粗粒度的分級
	switch {
	case errs.IsKind(err, errs.KindInvalidHandle):
		return http.StatusNotFound // 404
	case errs.IsKind(err, errs.KindAllocFailed):
		return http.StatusRequestEntityTooLarge // 413
	}

	// 3) 內部錯誤分級（errs.E/Wrap）
	var e *errs.E
	if errors.As(err, &e) && e.ErrLv == errs.Warn {
		return http.StatusBadRequest // 400
	}
	return http.StatusInternalServerError // Fatal 與未知錯誤都走 500
}

// Errs 決定 status code 並寫回簡單的 http.Error。
func Errs(w http.ResponseWriter, err error) {
	if err == nil {
		return
	}
	http.Error(w, err.Error(), StatusCode(err))
}

// Log 以 status code 決定記錄等級：5xx 記 Error，408/409/429 記 Warn，
// 其餘 4xx 是客戶端問題，不額外記（access log 已經有一筆）。
func Log(log *slog.Logger, msg string, err error) {
	if err == nil {
		return
	}
	status := StatusCode(err)
	switch {
	case status >= 500 && status < 600:
		log.Error(msg, slog.Any("err", err))
	case status == 408 || status == 409 || status == 429:
		log.Warn(msg, slog.Any("err", err))
	}
}
