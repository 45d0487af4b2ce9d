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

// Package randlab 提供亂數實驗室的「組裝入口（assembler）」與「運行入口（runtime entry）」。
//
// 你可以把 Randlab 視為一個「可被後端/模擬器使用的 runtime」，它負責把下列地基組裝在一起，
// 並提供建立 Generator 的入口：
//  1. PRNGFactory：亂數核心工廠，保證可重現（reproducible）與可審計（auditable）。
//  2. 取樣核心：sdk/ziggurat 的常態/指數取樣（經 sdk/core 的 Core 暴露）。
//  3. Handle registry：對外（HTTP/FFI 形式的呼叫端）以不透明 id 管理 Generator 生命週期。
//
// 設計重點：
//   - seed 的生命週期由 Lab 統一管理：外部未提供時由 crypto/rand 產生並保存 baseSeed，
//     後續所有 Generator/Sim 皆由 baseSeed 以固定算法派生子 seed。
//   - Generator 是對外提供取樣的最小單位；單一 handle 內的流水是連續且可重現的。
//
// 典型使用情境：
//   - 後端服務（HTTP）：由 Lab 建立 handle，handle 對外提供批次取樣。
//   - 模擬器（sim）：由 Lab 建立多個 Generator 進行大量取樣與統計。
package randlab

import (
	"crypto/rand"
	"math"
	"math/big"
	"sync"

	"github.com/zintix-labs/randlab/errs"
	"github.com/zintix-labs/randlab/sdk/core"
)

// Lab 是「組裝器（assembler）」與「運行入口（runtime entry）」。
//
// 使用流程通常分成兩階段：
//   - 組裝階段：New(cf) 決定 RNG 實作與 baseSeed。
//   - 執行階段：NewGenerator* 建 handle；或 Open/Lookup/Close 走 registry 模式。
//
// Registry 模式給「呼叫端只能拿不透明 id」的邊界（HTTP API）用；
// 程式內直接持有 *Generator 的呼叫端不需要經過它。
type Lab struct {
	cf        core.PRNGFactory
	baseSeed  int64
	seedmaker *seedMaker

	mu      sync.Mutex
	handles map[uint64]*Generator
	nextID  uint64
}

// New 建立一個 Lab instance。
//
// 參數要求（是合約的一部分）：
//   - cf 不能為 nil：沒有 RNG 工廠就無法建立可重現/可審計的核心。
//
// baseSeed 由 crypto/rand 產生（在對外服務情境避免可預測 RNG），
// 並被保存下來供追溯；需要完全可重現時請用 NewWithSeed。
func New(cf core.PRNGFactory) (*Lab, error) {
	seed, err := rand.Int(rand.Reader, big.NewInt(math.MaxInt64))
	if err != nil {
		return nil, errs.Wrap(err, "new crypto seed error in go std lib")
	}
	return NewWithSeed(cf, seed.Int64())
}

// NewWithSeed 與 New 相同，但由呼叫端指定 baseSeed。
//
// 同一個 baseSeed 派生出的 Generator 序列固定：可重現測試 / 回放的入口。
func NewWithSeed(cf core.PRNGFactory, baseSeed int64) (*Lab, error) {
	if cf == nil {
		return nil, errs.NewFatal("prng factory required")
	}
	return &Lab{
		cf:        cf,
		baseSeed:  baseSeed,
		seedmaker: newSeedMaker(baseSeed),
		handles:   make(map[uint64]*Generator),
		nextID:    1,
	}, nil
}

// Default 以預設 PRNG（xoshiro256**）建立 Lab。
func Default() (*Lab, error) {
	return New(core.Default())
}

// BaseSeed 回傳本 Lab 的 baseSeed（追溯/重現的基礎資訊）。
func (l *Lab) BaseSeed() int64 { return l.baseSeed }

// NewGenerator 以指定 seed 建立 Generator。
//
// 這是最常用的「可重現」入口：同一個 seed 必產生一致的取樣流水。
func (l *Lab) NewGenerator(seed int64) *Generator {
	return newGenerator(l.cf, seed)
}

// NewGeneratorAuto 以 baseSeed 派生的下一個子 seed 建立 Generator。
//
// 派生是原子的，可在多 goroutine 下併發呼叫；派生序列由 baseSeed 唯一決定。
func (l *Lab) NewGeneratorAuto() *Generator {
	return newGenerator(l.cf, l.seedmaker.next())
}

// ============================================================
// ** Handle registry **
// ============================================================

// Open 建立 Generator 並註冊進 registry，回傳不透明 handle id。
func (l *Lab) Open(seed int64) uint64 {
	g := l.NewGenerator(seed)
	l.mu.Lock()
	defer l.mu.Unlock()
	id := l.nextID
	l.nextID++
	l.handles[id] = g
	return id
}

// Lookup 以 handle id 取出 Generator；id 不存在回傳 KindInvalidHandle。
func (l *Lab) Lookup(id uint64) (*Generator, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	g, ok := l.handles[id]
	if !ok {
		return nil, errs.NewKind(errs.KindInvalidHandle, "generator handle not found")
	}
	return g, nil
}

// Close 釋放 handle；id 不存在回傳 KindInvalidHandle（釋放是冪等性以外的明確錯誤）。
func (l *Lab) Close(id uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.handles[id]; !ok {
		return errs.NewKind(errs.KindInvalidHandle, "generator handle not found")
	}
	delete(l.handles, id)
	return nil
}

// Handles 回傳目前存活的 handle 數（觀測用）。
func (l *Lab) Handles() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.handles)
}
