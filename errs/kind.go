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

package errs

import "errors"

// Kind : 錯誤類別，供呼叫端以程式化方式分辨失敗原因（ErrLevel 只表達嚴重度）。
//
// 與 ErrLevel 的分工：
//   - ErrLevel 告訴最上層「多嚴重」（log/warn/fatal）。
//   - Kind 告訴呼叫端「哪一類」（可據此決定重試、換參數、回 4xx...）。
type Kind uint8

const (
	KindNone Kind = iota
	// KindInvalidSeed : seed 字面值無法解析成 64-bit 整數。
	KindInvalidSeed
	// KindCountOverflow : 請求的批次大小換算 byte 數會溢位。
	KindCountOverflow
	// KindAllocFailed : 輸出緩衝配置失敗或超過上限。
	KindAllocFailed
	// KindInvalidHandle : 對不存在或已釋放的 generator handle 操作。
	KindInvalidHandle
)

var kindMap = map[Kind]string{
	KindNone:          "",
	KindInvalidSeed:   "invalid_seed",
	KindCountOverflow: "count_overflow",
	KindAllocFailed:   "alloc_failed",
	KindInvalidHandle: "invalid_handle",
}

func KindName(k Kind) string {
	if str, ok := kindMap[k]; ok {
		return str
	}
	return ""
}

// NewKind 建立帶類別的錯誤；嚴重度依類別給預設值（皆為可預期錯誤，Warn）。
func NewKind(k Kind, msg string) *E {
	e := NewWarn(msg)
	e.Kind = k
	return e
}

// KindOf 取出錯誤的類別；非 *E 或未標記類別時回傳 KindNone。
func KindOf(err error) Kind {
	var e *E
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindNone
}

// IsKind 判斷錯誤（或其包裝鏈上最外層的 *E）是否屬於指定類別。
func IsKind(err error, k Kind) bool {
	return KindOf(err) == k
}
