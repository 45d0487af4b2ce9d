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
	"sync"
	"sync/atomic"

	"github.com/zintix-labs/randlab/dto"
	"github.com/zintix-labs/randlab/errs"
)

// BatchRuntime 是對外服務（HTTP）的資料平面入口。
//
// 它把三種批次來源統一在一個 Fill 後面：
//  1. 具名 handle：walk 進 Lab 的 registry，流水續接、可要求快照。
//  2. 一次性 seed：臨時建 Generator，當次可重現。
//  3. 匿名：交給 GeneratorPool，借還 + 壞機補機由 pool 自理。
type BatchRuntime struct {
	// build-time 來源（只讀引用）
	lab *Lab // 方便取 registry/seedmaker 與共用一些 helper

	// data-plane：關鍵主池（匿名批次共用一個 pool）
	pool *GeneratorPool

	// lifecycle
	done      chan struct{}
	closeOnce sync.Once
	closed    atomic.Bool
	reason    atomic.Value // string

	// runtime 行為設定（一期先簡單，之後可擴展）
	poolSize int // 匿名池大小（Run(n) 的 n）
}

// Run 進入執行階段：建立匿名池並回傳可服務的 runtime。
func (l *Lab) Run(n int) *BatchRuntime {
	rt := &BatchRuntime{
		lab:      l,
		pool:     l.NewPool(n),
		done:     make(chan struct{}),
		poolSize: max(1, n),
	}
	rt.reason.Store("")
	return rt
}

// Fill 執行一次批次取樣請求，回傳序列化後的結果。
func (rt *BatchRuntime) Fill(ctx context.Context, req *dto.BatchRequest) (dto.BatchResult, error) {
	raw, after, handle, err := rt.fill(ctx, req)
	if err != nil {
		return dto.BatchResult{}, err
	}
	return dto.NewBatchResult(handle, req.Dist, req.Count, raw, after), nil
}

// FillRaw 與 Fill 相同的語意，但直接回傳批次 bytes（octet-stream 路徑用）。
//
// raw 路徑不帶快照；要快照走 Fill。
func (rt *BatchRuntime) FillRaw(ctx context.Context, req *dto.BatchRequest) ([]byte, error) {
	nosnap := *req
	nosnap.WantSnap = false
	raw, _, _, err := rt.fill(ctx, &nosnap)
	return raw, err
}

func (rt *BatchRuntime) fill(ctx context.Context, req *dto.BatchRequest) (raw []byte, after []byte, handle uint64, err error) {
	select {
	case <-ctx.Done():
		// 如果通知取消
		return nil, nil, 0, errs.NewWarn("fill canceled/timeout: " + ctx.Err().Error())
	case <-rt.done:
		// done is the source of truth; keep a fast boolean for cheap reads/telemetry.
		rt.closed.Store(true)
		return nil, nil, 0, errs.NewFatal("batch runtime closed: " + rt.ClosedReason())
	default:
	}

	// 匿名模式：pool 自己會處理 done / close / rebuild / metrics
	if req.Handle == 0 && req.SeedText == "" {
		raw, err = rt.pool.Fill(ctx, req.Dist, req.Count)
		return raw, nil, 0, err
	}

	// 具名 / 一次性模式
	var g *Generator
	handle = req.Handle
	if handle != 0 {
		g, err = rt.lab.Lookup(handle)
		if err != nil {
			return nil, nil, 0, err
		}
	} else {
		var seed int64
		seed, err = req.Seed()
		if err != nil {
			return nil, nil, 0, err
		}
		g = rt.lab.NewGenerator(seed)
	}

	if req.Dist == "exp" {
		raw, err = g.FillExpFloat32(req.Count)
	} else {
		raw, err = g.FillNormalFloat32(req.Count)
	}
	if err != nil {
		return nil, nil, 0, err
	}

	if req.WantSnap {
		after, err = g.SnapshotCore()
		if err != nil {
			return nil, nil, 0, err
		}
	}

	return raw, after, handle, nil
}

// Open 建立具名 handle（registry 模式），回傳不透明 id。
func (rt *BatchRuntime) Open(seed int64) (uint64, error) {
	if rt.Closed() {
		return 0, errs.NewFatal("batch runtime closed: " + rt.ClosedReason())
	}
	return rt.lab.Open(seed), nil
}

// Release 釋放具名 handle。
func (rt *BatchRuntime) Release(id uint64) error {
	return rt.lab.Close(id)
}

// PoolMetrics 回傳匿名池的觀測快照。
func (rt *BatchRuntime) PoolMetrics() GeneratorPoolMetrics {
	return rt.pool.Metrics()
}

// Handles 回傳存活的具名 handle 數。
func (rt *BatchRuntime) Handles() int {
	return rt.lab.Handles()
}

// Lab 回傳 build-time 來源（只讀用途：產 Simulator、查 baseSeed）。
func (rt *BatchRuntime) Lab() *Lab {
	return rt.lab
}

// Close transitions the runtime into a closed state. It is safe to call multiple times.
func (rt *BatchRuntime) Close() {
	rt.closeWithReason("closed")
}

// closeWithReason closes the runtime and records the reason (written once).
func (rt *BatchRuntime) closeWithReason(reason string) {
	rt.closeOnce.Do(func() {
		if reason == "" {
			reason = "closed"
		}
		rt.reason.Store(reason)
		rt.closed.Store(true)
		rt.pool.Close()
		close(rt.done)
	})
}

// Closed reports whether the runtime has been closed.
func (rt *BatchRuntime) Closed() bool {
	return rt.closed.Load()
}

func (rt *BatchRuntime) ClosedReason() string {
	if v := rt.reason.Load(); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
