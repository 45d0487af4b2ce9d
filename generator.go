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

package randlab

import (
	"encoding/binary"
	"io"
	"math"
	"sync"

	"github.com/zintix-labs/randlab/corefmt"
	"github.com/zintix-labs/randlab/errs"
	"github.com/zintix-labs/randlab/sdk/buf"
	"github.com/zintix-labs/randlab/sdk/core"
)

// Generator 封裝一個「可對外提供批次取樣」的 handle。
//
// 你可以把 Generator 視為 Core 的「外殼（shell）」：
//   - 對外：提供 Normal/Exponential 與批次 Fill 入口（HTTP/模擬器通常只操作 Generator）。
//   - 對內：持有 RNG（Core）與可重用的輸出緩衝。
//
// 並發語意：
//   - Generator 不是 lock-free 結構；所有公開方法以 mu 序列化，
//     單一 handle 可以被多 goroutine 呼叫，但會互相排隊。
//   - 要併發產出，由更高層建立多個 Generator 分散到不同 worker（見 GeneratorPool / Simulator）。
//
// 流水語意（是合約的一部分）：
//   - 同一個 handle 的所有取樣共用同一條亂數流水：先取 3 個再取 2 個，
//     與一次取 5 個得到完全相同的值序列。
//   - 批次大小為 0 時不得消耗任何流水（非法請求同樣不得消耗）。
//
// Buffer 語意：
//   - FillNormalFloat32 / FillExpFloat32 回傳的 []byte 所有權歸呼叫端（內部用 Take 讓渡）。
//   - ReadNormalFloat32 寫入呼叫端提供的 slice，零配置，適合熱迴圈。
type Generator struct {
	core     *core.Core // RNG 核心（PRNG + Snapshot/Restore 合約；熱路徑會頻繁取樣）
	batch    *buf.FloatBatch
	mu       sync.Mutex // 防併發鎖：保護可重用 buffer 與核心狀態一致性
	initseed int64      // 出生 seed（便於追溯；完整重現請用 Snapshot/Restore）
}

func newGenerator(cf core.PRNGFactory, seed int64) *Generator {
	return &Generator{
		core:     core.New(cf.New(seed)),
		batch:    &buf.FloatBatch{},
		initseed: seed,
	}
}

// Seed 回傳出生 seed。
func (g *Generator) Seed() int64 { return g.initseed }

// Normal 回傳一個標準常態取樣值。
func (g *Generator) Normal() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.core.NormFloat64()
}

// Exponential 回傳一個標準指數取樣值。
func (g *Generator) Exponential() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.core.ExpFloat64()
}

// FillNormal 以標準常態取樣值填滿 dst，回傳填入個數。
func (g *Generator) FillNormal(dst []float64) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range dst {
		dst[i] = g.core.NormFloat64()
	}
	return len(dst)
}

// FillNormalFloat32 產出 count 個標準常態取樣值，以 float32 編碼成 4*count bytes。
//
// 合約：
//   - count == 0：回傳空（非 nil）slice，且不消耗任何亂數流水。
//   - count 換算 byte 數會溢位：KindCountOverflow，不消耗流水。
//   - 超過單批上限：KindAllocFailed（見 buf.MaxBatchBytes），不消耗流水。
//   - 其餘情況：每個值各以 float64 取樣後收窄為 float32（native byte order）。
func (g *Generator) FillNormalFloat32(count uint64) ([]byte, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.reserve(count); err != nil {
		return nil, err
	}
	n := int(count)
	for i := 0; i < n; i++ {
		g.batch.PutFloat32(i, float32(g.core.NormFloat64()))
	}
	return g.batch.Take(), nil
}

// FillExpFloat32 與 FillNormalFloat32 相同合約，但產出標準指數取樣值。
func (g *Generator) FillExpFloat32(count uint64) ([]byte, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.reserve(count); err != nil {
		return nil, err
	}
	n := int(count)
	for i := 0; i < n; i++ {
		g.batch.PutFloat32(i, float32(g.core.ExpFloat64()))
	}
	return g.batch.Take(), nil
}

// ReadNormalFloat32 以標準常態取樣值填滿 dst（byte 表示的 float32 陣列）。
//
// dst 長度必須是 4 的倍數；零配置，重用 dst 的熱迴圈入口。
func (g *Generator) ReadNormalFloat32(dst []byte) (int, error) {
	if len(dst)%4 != 0 {
		return 0, errs.NewWarn("dst length must be a multiple of 4")
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	n := len(dst) / 4
	for i := 0; i < n; i++ {
		putFloat32(dst, i, float32(g.core.NormFloat64()))
	}
	return n, nil
}

// ReadExpFloat32 與 ReadNormalFloat32 相同合約，但產出標準指數取樣值。
func (g *Generator) ReadExpFloat32(dst []byte) (int, error) {
	if len(dst)%4 != 0 {
		return 0, errs.NewWarn("dst length must be a multiple of 4")
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	n := len(dst) / 4
	for i := 0; i < n; i++ {
		putFloat32(dst, i, float32(g.core.ExpFloat64()))
	}
	return n, nil
}

// reserve 校驗 count 並準備輸出緩衝；任何失敗都發生在第一次取樣之前。
func (g *Generator) reserve(count uint64) error {
	if count > math.MaxInt/4 {
		return errs.NewKind(errs.KindCountOverflow, "batch byte size overflows")
	}
	return g.batch.Reserve(int(count))
}

// SnapshotCore 取得Core狀態暫存 當前僅提供取得Core狀態
//
// 配合 Restore 可把 handle 重設到任意一批之前/之後的流水位置。
func (g *Generator) SnapshotCore() ([]byte, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.core.Snapshot()
}

// RestoreCore 恢復Core狀態暫存 當前僅提供恢復Core狀態
func (g *Generator) RestoreCore(src []byte) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.core.Restore(src)
}

// maxSnapshotFrameBytes 讀取 snapshot frame 時的配置上限。
// 核心狀態目前是 32 bytes；留一個數量級的餘裕給未來的狀態擴充。
const maxSnapshotFrameBytes = 1 << 10

// WriteSnapshot 把核心狀態以 blob frame 寫入 w（落地到檔案或管線）。
func (g *Generator) WriteSnapshot(w io.Writer) error {
	snap, err := g.SnapshotCore()
	if err != nil {
		return err
	}
	return corefmt.WriteBlobFrame(w, snap)
}

// ReadSnapshot 從 r 讀回 WriteSnapshot 的輸出並還原核心狀態。
//
// 與 RestoreCore 相同的合約：還原失敗不改動現有狀態。
func (g *Generator) ReadSnapshot(r io.Reader) error {
	snap, err := corefmt.ReadBlobFrame(r, maxSnapshotFrameBytes)
	if err != nil {
		return err
	}
	return g.RestoreCore(snap)
}

func putFloat32(dst []byte, i int, v float32) {
	binary.NativeEndian.PutUint32(dst[i*4:], math.Float32bits(v))
}
