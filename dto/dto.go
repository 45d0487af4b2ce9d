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
	"strconv"

	"github.com/zintix-labs/randlab/corefmt"
	"github.com/zintix-labs/randlab/errs"
)

// BatchResult 為對外輸出的批次取樣序列化結構。
//
// Payload 是 4*Count bytes 的 float32 批次（native byte order），
// 以 Base64URL 編碼通過 JSON 邊界；需要原始 bytes 的呼叫端請走 octet-stream 路徑。
type BatchResult struct {
	Handle  uint64 `json:"handle"`          // 產出此批次的 handle id
	Dist    string `json:"dist"`            // normal | exp
	Count   uint64 `json:"count"`           // 取樣個數
	Payload string `json:"payload"`         // base64url(4*count bytes)
	After   string `json:"after,omitempty"` // 批次後的 core 狀態（base64url；續接流水用）
}

// NewBatchResult 把批次 bytes 打包成 DTO。
func NewBatchResult(handle uint64, dist string, count uint64, raw []byte, after []byte) BatchResult {
	out := BatchResult{
		Handle:  handle,
		Dist:    dist,
		Count:   count,
		Payload: corefmt.EncodeBase64URL(raw),
	}
	if len(after) != 0 {
		out.After = corefmt.EncodeBase64URL(after)
	}
	return out
}

// ParseSeed 把 seed 字面值解析成 64-bit 值（bit-preserving）。
//
// 合約沿用 handle 建立的既有行為：先以無號解析（接受 [0, 2^64)），
// 失敗再以有號解析（接受負值），兩者都失敗回傳 KindInvalidSeed。
// 超出 int64 的無號值以同 bit pattern 重新詮釋，不丟資訊。
func ParseSeed(s string) (int64, error) {
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return int64(u), nil
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v, nil
	}
	return 0, errs.NewKind(errs.KindInvalidSeed, "seed must be a 64-bit integer literal: "+strconv.Quote(s))
}
