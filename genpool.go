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
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/zintix-labs/randlab/errs"
	"github.com/zintix-labs/randlab/sdk/core"
)

// GeneratorPool 專門管理「匿名批次取樣」的所有 Generator 實例。
// 它透過兩個通道管理 Generator 生命週期：
//  1. pool：健康且可用的 Generator，供 Fill() 借出 / 歸還。
//  2. broken：在運作過程中發生錯誤或 panic 的壞 Generator，送往此通道以便後續檢查、維修或丟棄。
//
// 具名 handle（Open/Lookup）的呼叫端自己掌握流水連續性；匿名批次端點不在乎
// 是哪一條流水，只要求高併發下吞吐穩定，所以走池化借還。
//
// 若某個 Generator 於取樣執行期間發生 panic 或 fatal error，該實例會被送至 broken，並立即補上一個新實例以維持容量。
// 整體機制確保整個系統在高併發下仍保持穩定與可用性。
type GeneratorPool struct {
	cf            core.PRNGFactory
	initSeed      int64
	seedMaker     *seedMaker
	pool          chan *Generator // 可用Generator的通道，用於取得和歸還
	broken        chan *Generator // 壞掉Generator的通道，用於送修或丟棄
	done          chan struct{}   // 關閉訊號：關閉後不再允許借出/歸還/補機
	closeOnce     sync.Once       // 確保 Close() 只執行一次
	poolsize      int             // 好Generator
	rebuild       atomic.Int32    // 重建次數
	inflight      atomic.Int32    // 使用中
	panics        atomic.Int32    // panic 次數
	fatals        atomic.Int32    // fatal 次數（Generator狀態不可信）
	closeReason   atomic.Value    // string: 關閉原因
	closeInflight atomic.Int32    // 關閉當下 inflight（快照）
	closeAvail    atomic.Int32    // 關閉當下 pool 可用數量（len(pool) 快照）
	closeBroken   atomic.Int32    // 關閉當下 broken backlog（len(broken) 快照）
}

// NewPool 建立匿名批次取樣的 Generator 池。
//   - n: Generator 數量（至少為 1）
//
// 初始化內容包含：
//   - 建立 pool（可用）與 broken（壞）兩個 channel
//   - 預先建立 n 個 Generator 並放入 pool，以便立即提供服務
func (l *Lab) NewPool(n int) *GeneratorPool {
	n = max(1, n) // 確保數量至少為1
	p := &GeneratorPool{
		cf:        l.cf,
		initSeed:  l.baseSeed,
		seedMaker: newSeedMaker(l.seedmaker.next()),
		pool:      make(chan *Generator, n),   // 建立有緩衝的通道，容量為 n
		broken:    make(chan *Generator, 100), // 建立有緩衝的壞Generator通道，容量固定為100
		done:      make(chan struct{}),
		poolsize:  n,
		inflight:  atomic.Int32{},
		rebuild:   atomic.Int32{},
	}

	p.closeReason.Store("")
	p.closeInflight.Store(-1)
	p.closeAvail.Store(-1)
	p.closeBroken.Store(-1)

	// 上架，將 n 個新Generator放入池中
	for i := 0; i < n; i++ {
		p.pool <- newGenerator(l.cf, p.seedMaker.next())
	}
	return p
}

// Close 進入關閉狀態：
//   - 通知之後所有 Fill() 應該直接回error
//   - defer 歸還/補機時會觀察 done，避免對已關閉狀態進行 send
func (p *GeneratorPool) Close() {
	p.closeWithReason("closed")
}

// Closed 回報池是否已進入關閉狀態。
func (p *GeneratorPool) Closed() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

// closeWithReason 進入關閉狀態並記錄原因（thread-safe, reason 只會被寫入一次）。
// reason 建議使用固定字串或小枚舉字串，方便 metrics/telemetry 聚合。
func (p *GeneratorPool) closeWithReason(reason string) {
	p.closeOnce.Do(func() {
		if reason == "" {
			reason = "closed"
		}
		p.closeReason.Store(reason)
		// 進入關閉狀態的瞬間做一次快照，方便外部觀測與故障排查。
		p.closeInflight.Store(p.inflight.Load())
		p.closeAvail.Store(int32(len(p.pool)))
		p.closeBroken.Store(int32(len(p.broken)))
		close(p.done)
	})
}

// isFatalErr 用於判斷本次錯誤是否代表「Generator狀態不可信」需要淘汰/補機。
//
// 原則：
//   - panic 一律視為 broken（由 caller 端的 defer/recover 處理）
//   - 一般的 request/validation 類錯誤不應淘汰（例如 count 溢位）
//   - 只有錯誤型別本身明確宣告「fatal」時才視為 broken
func isFatalErr(err error) bool {
	if err == nil {
		return false
	}
	if e, ok := err.(*errs.E); ok {
		if e.ErrLv == errs.Fatal {
			return true
		}
	}
	return false
}

// Fill 借出一個 Generator 產出 count 個 dist 取樣值的 float32 批次。
//
// dist 僅接受 "normal" | "exp"；回傳的 []byte 所有權歸呼叫端。
func (p *GeneratorPool) Fill(ctx context.Context, dist string, count uint64) (out []byte, err error) {
	var g *Generator
	borrowed := false
	select {
	case <-p.done:
		// 先觀察是否已關閉：關閉直接回失敗，不阻塞
		return nil, errs.NewFatal("generator pool closed: " + p.ClosedReason())
	case <-ctx.Done():
		// 如果通知取消
		return nil, errs.NewWarn("fill canceled/timeout: " + ctx.Err().Error())
	case g = <-p.pool:
		// 有取出Generator
		borrowed = true
		p.inflight.Add(1)
		// ok
	}

	// 理論上不會拿到 nil；若發生代表 pool 有嚴重問題。
	if g == nil {
		return nil, errs.NewFatal("generator pool got nil generator")
	}

	var isPanic bool

	defer func() {
		if borrowed {
			// 有借有還 再借不難
			p.inflight.Add(-1)
		}
		if r := recover(); r != nil {
			// 系統恢復
			isPanic = true
			p.panics.Add(1)
			err = errs.NewFatal(fmt.Sprintf("generator seed %d panic : %v", g.Seed(), r))
		}

		// 若已關閉，直接丟棄（不歸還、不補機），避免 send 到已停止的系統。
		if p.Closed() {
			return
		}

		// 若發生 panic 或「致命錯誤」，表示Generator狀態不可信，需要送修並補機。
		// 注意：一般的 request/validation error（例如 count 溢位）不應淘汰。
		if isPanic || isFatalErr(err) {
			if !isPanic && isFatalErr(err) {
				p.fatals.Add(1)
			}
			// 1) 壞Generator送入 broken（避免阻塞）
			select {
			case p.broken <- g:
			default:
				// broken 通道滿代表系統可能正在連續故障：進入關閉狀態讓上層接管維護。
				p.closeWithReason("overwhelmed_by_failures")
				// 若外層尚未有錯誤，補一個更明確的致命訊息
				if err == nil {
					err = errs.NewFatal("generator pool overwhelmed by failures")
				}
				return
			}

			// 2) 補一個新Generator（維持容量）
			p.rebuild.Add(1)
			fresh := newGenerator(p.cf, p.seedMaker.next())

			// 補機前再看一次是否已關閉（避免並行 Close 後 send / block）
			select {
			case <-p.done:
				return
			case p.pool <- fresh:
				// ok
			}

			return
		}

		// 若有錯誤但非致命（多半是 request/validation 類錯誤），Generator仍然是健康的：歸還 pool 並把 err 原樣回傳。
		// 注意：此處不改寫 err。
		select {
		case <-p.done:
			return
		case p.pool <- g:
			// ok
		}
	}()

	// 執行批次取樣
	var result []byte
	var fillErr error
	switch dist {
	case "exp":
		result, fillErr = g.FillExpFloat32(count)
	case "normal":
		result, fillErr = g.FillNormalFloat32(count)
	default:
		fillErr = errs.NewWarn("dist err: must be normal or exp")
	}
	if fillErr != nil {
		err = fillErr
		return
	}

	out = result
	return
}

func (p *GeneratorPool) PoolSize() int {
	return p.poolsize
}

func (p *GeneratorPool) Inflight() int {
	return int(p.inflight.Load())
}

func (p *GeneratorPool) ReBuild() int {
	return int(p.rebuild.Load())
}

func (p *GeneratorPool) ClosedReason() string {
	if v := p.closeReason.Load(); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func (p *GeneratorPool) Panics() int {
	return int(p.panics.Load())
}

func (p *GeneratorPool) Fatals() int {
	return int(p.fatals.Load())
}

// GeneratorPoolMetrics 是一期提供的「拉取式（pull）」觀測快照。
//
// 設計原則：
//   - 不綁任何 metrics/telemetry SDK（Prometheus / OpenTelemetry 等），由上層自己決定如何輸出。
//   - 欄位值以讀取當下為主；其中 Available/brokenBacklog 來自 len(chan)，在高併發下是「近似值」但足夠用於營運觀測。
//   - 關閉瞬間的快照（CloseInflight/CloseAvail/Closebroken）只會在 Close 時寫入一次，用於事後排查。
type GeneratorPoolMetrics struct {
	PoolSize      int    `json:"pool_size"`      // 目標容量（初始化指定）
	Available     int    `json:"available"`      // 當下可借出的數量（len(pool)）
	Inflight      int    `json:"inflight"`       // 使用中（借出未歸還）
	BrokenBacklog int    `json:"broken_backlog"` // broken channel 當下 backlog（len(broken)）
	Rebuild       int    `json:"rebuild"`        // 補機次數
	Panics        int    `json:"panics"`         // panic 次數
	Fatals        int    `json:"fatals"`         // fatal 次數
	Closed        bool   `json:"closed"`         // 是否已關閉
	CloseReason   string `json:"close_reason"`   // 關閉原因

	CloseInflight int `json:"close_inflight"` // Close() 當下 inflight（-1 表示尚未關閉）
	CloseAvail    int `json:"close_avail"`    // Close() 當下 available（-1 表示尚未關閉）
	Closebroken   int `json:"close_broken"`   // Close() 當下 broken backlog（-1 表示尚未關閉）
}

// Metrics 回傳一期的觀測快照；上層可用於 log、/metrics、或餵給 Prometheus/OTEL exporter。
func (p *GeneratorPool) Metrics() GeneratorPoolMetrics {
	closed := p.Closed()
	m := GeneratorPoolMetrics{
		PoolSize:      p.poolsize,
		Available:     len(p.pool),
		Inflight:      int(p.inflight.Load()),
		BrokenBacklog: len(p.broken),
		Rebuild:       int(p.rebuild.Load()),
		Panics:        int(p.panics.Load()),
		Fatals:        int(p.fatals.Load()),
		Closed:        closed,
		CloseReason:   p.ClosedReason(),
		CloseInflight: int(p.closeInflight.Load()),
		CloseAvail:    int(p.closeAvail.Load()),
		Closebroken:   int(p.closeBroken.Load()),
	}
	return m
}

// Available 回傳當下 pool 可用數量（len(pool)）。在高併發下為近似值。
func (p *GeneratorPool) Available() int {
	return len(p.pool)
}
