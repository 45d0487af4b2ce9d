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

// Package buf 提供熱路徑用的可重用批次緩衝。
//
// Generator 的批次輸出（單批可能是數百萬個 float32）若每次都重新配置，
// GC 壓力會直接反映在吞吐上。FloatBatch 把 byte 緩衝留在 handle 內重用，
// 只在容量不足時成長；呼叫端若需要保留輸出，請自行 copy，或改走 Take
// 讓渡所有權。
package buf

import (
	"encoding/binary"
	"math"

	"github.com/zintix-labs/randlab/errs"
)

// MaxBatchBytes 單一批次輸出的 byte 上限（預設 1 GiB）。
//
// Go 的配置失敗是 panic 而非 error，無法在呼叫端攔截；
// 因此用硬上限把「必然失敗或拖垮行程的配置」提前轉成可處理的錯誤。
const MaxBatchBytes = 1 << 30

// FloatBatch 是可重用的 float32 批次緩衝。
//
// 非併發安全：一個 FloatBatch 同一時間只能被一個 goroutine 使用
// （Generator 以自己的 mutex 保護它）。
type FloatBatch struct {
	bytes []byte
}

// Reserve 確保緩衝可容納 n 個 float32，內容未定義。
//
// 超過 MaxBatchBytes 回傳 KindAllocFailed；n 的溢位檢查由呼叫端
// （Generator 的 count 校驗）負責，這裡只管 byte 容量。
func (b *FloatBatch) Reserve(n int) error {
	need := n * 4
	if need > MaxBatchBytes {
		return errs.NewKind(errs.KindAllocFailed, "batch buffer over limit")
	}
	if cap(b.bytes) < need || b.bytes == nil {
		// need == 0 也配置：count 為 0 的批次合約是「空而非 nil」
		b.bytes = make([]byte, need)
	}
	b.bytes = b.bytes[:need]
	return nil
}

// PutFloat32 把第 i 個 float32 寫入緩衝（native byte order）。
func (b *FloatBatch) PutFloat32(i int, v float32) {
	binary.NativeEndian.PutUint32(b.bytes[i*4:], math.Float32bits(v))
}

// Bytes 回傳目前的批次內容。
//
// 回傳的 slice 與內部緩衝共享記憶體，下一次 Reserve/Put 會覆寫。
func (b *FloatBatch) Bytes() []byte {
	return b.bytes
}

// Take 取走目前的批次內容並讓出所有權；緩衝歸零，下一批重新配置。
//
// 用在「呼叫端要長期持有輸出」的路徑（例如 HTTP 回應），
// 避免重用緩衝被邊界外的持有者觀測到覆寫。
func (b *FloatBatch) Take() []byte {
	out := b.bytes
	b.bytes = nil
	return out
}

// Len 回傳目前批次的 byte 長度。
func (b *FloatBatch) Len() int {
	return len(b.bytes)
}
