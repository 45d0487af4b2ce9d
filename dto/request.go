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

package dto

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/zintix-labs/randlab/errs"
)

// BatchRequest 描述一次批次取樣請求。
//
// 三種來源模式（由上層 runtime 路由）：
//   - handle != 0：走具名 handle，流水續接。
//   - handle == 0 且 seed 非空：一次性（以 seed 臨時建，當次可重現）。
//   - 兩者皆空：匿名，由 GeneratorPool 服務（不保證取到哪一條流水）。
type BatchRequest struct {
	Handle   uint64 `json:"handle,omitempty"`    // 既有 handle（0 表示非具名模式）
	SeedText string `json:"seed,omitempty"`      // seed 字面值（一次性模式用）
	Dist     string `json:"dist,omitempty"`      // normal（預設）| exp
	Count    uint64 `json:"count"`               // 取樣個數
	WantSnap bool   `json:"want_snap,omitempty"` // 是否回傳批次後的 core 狀態
}

// maxBatchBody POST body 上限：批次請求是小 JSON，1 MiB 綽綽有餘。
const maxBatchBody = 1 << 20

// DecodeBatchRequest 會把 HTTP 請求解碼成 BatchRequest。
//
// 支援：
//   - GET：從 query string 讀取參數（handle/seed/dist/count/want_snap）。
//   - POST：從 JSON body 反序列化。
//
// 注意：
//   - 這裡只負責「解碼（decode）」與基本型別轉換，不做業務合法性校驗；
//     合法性（handle 是否存在、count 是否溢位）由上層（Lab/Generator）決定。
//     唯一例外是 seed 字面值：格式錯誤在邊界就擋（KindInvalidSeed）。
//   - 為避免過大 body 影響服務，POST 會對 body 做大小限制（預設 1MiB）。
//   - POST 會開啟 DisallowUnknownFields()，對未知欄位採用嚴格拒絕，以避免靜默丟資料。
func DecodeBatchRequest(r *http.Request) (*BatchRequest, error) {
	if r == nil {
		return nil, errs.NewWarn("nil request")
	}

	req := new(BatchRequest)

	switch r.Method {
	case http.MethodGet:
		q := r.URL.Query()
		req.SeedText = q.Get("seed")
		req.Dist = q.Get("dist")

		if s := q.Get("handle"); s != "" {
			u, err := strconv.ParseUint(s, 10, 64)
			if err != nil {
				return nil, errs.NewWarn(fmt.Sprintf("invalid handle: %v", err))
			}
			req.Handle = u
		}

		if s := q.Get("count"); s != "" {
			u, err := strconv.ParseUint(s, 10, 64)
			if err != nil {
				return nil, errs.NewWarn(fmt.Sprintf("invalid count: %v", err))
			}
			req.Count = u
		}

		if s := q.Get("want_snap"); s != "" {
			v, err := strconv.ParseBool(s)
			if err != nil {
				return nil, errs.NewWarn(fmt.Sprintf("invalid want_snap: %v", err))
			}
			req.WantSnap = v
		}

	case http.MethodPost:
		body := http.MaxBytesReader(nil, r.Body, maxBatchBody)
		defer body.Close()

		dec := json.NewDecoder(body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(req); err != nil {
			if err == io.EOF {
				return nil, errs.NewWarn("empty request body")
			}
			return nil, errs.NewWarn(fmt.Sprintf("invalid request body: %v", err))
		}

	default:
		return nil, errs.NewWarn("method not allowed: " + r.Method)
	}

	return req, req.normalize()
}

// normalize 統一分布名稱並做邊界可判定的格式檢查。
func (req *BatchRequest) normalize() error {
	switch strings.ToLower(strings.TrimSpace(req.Dist)) {
	case "", "normal", "norm":
		req.Dist = "normal"
	case "exp", "exponential":
		req.Dist = "exp"
	default:
		return errs.NewWarn("unknown dist: " + req.Dist)
	}
	return nil
}

// Seed 解析 seed 字面值（見 ParseSeed 的合約）。
func (req *BatchRequest) Seed() (int64, error) {
	return ParseSeed(req.SeedText)
}
