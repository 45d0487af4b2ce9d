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

// Package logger 負責服務端的 slog 組裝。
//
// 兩種注入方式：
//   - 直接拿 *slog.Logger：NewDefaultLogger / NewAsync（最常用）。
//   - 自行組裝 slog.Handler（JSON/Text/ReplaceAttr/LevelVar...）再交給 NewLogger。
//
// 批次取樣的熱路徑不能被日誌 I/O 拖慢，所以另外提供 AsyncHandler：
// 任何 slog.Handler 都能包成非阻塞 handler，buffer 滿時丟棄而不是等待。
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
)

// LogMode 決定預設 handler 的輸出格式與等級。
type LogMode uint8

const (
	ModeDev     LogMode = iota // Text + stderr + Debug
	ModeProd                   // JSON + stdout + Info（給 Loki / Promtail）
	ModeSilence                // 全部丟掉
)

// NewDefaultLogger 以 LogMode 預設組出同步 *slog.Logger。
func NewDefaultLogger(mode LogMode) *slog.Logger {
	return slog.New(buildHandler(mode))
}

// NewDefaultAsyncLogger 以 LogMode 預設組出非阻塞 *slog.Logger。
func NewDefaultAsyncLogger(mode LogMode) *slog.Logger {
	return slog.New(NewAsyncHandler(buildHandler(mode), 8192))
}

// NewLogger 把呼叫端自行組裝的 Handler 包成 *slog.Logger；nil 時退回 Dev 預設。
func NewLogger(h slog.Handler) *slog.Logger {
	if h == nil {
		h = buildHandler(ModeDev)
	}
	return slog.New(h)
}

// NewAsync 以 LogMode 預設組 handler 並包上 AsyncHandler。
//
// 回傳 *AsyncHandler 讓呼叫端能在 shutdown 時 Close() drain，
// 以及用 Dropped() 觀測丟棄量。
func NewAsync(buf int, mode LogMode) (*slog.Logger, *AsyncHandler) {
	ah := NewAsyncHandler(buildHandler(mode), buf)
	return slog.New(ah), ah
}

// AsyncHandler 把任何 slog.Handler 變成非阻塞 handler。
//
// Handle 只做 enqueue，背景 goroutine 逐筆呼叫 next.Handle 寫出；
// channel 滿時直接丟棄，不把 I/O 延遲傳回請求路徑。
//
// 注意 slog.Logger 會忽略 Handle 回傳的 error：
// 需要處理 I/O error 的話，請在 next handler 內自行包裝。
type AsyncHandler struct {
	next slog.Handler
	d    *dispatcher
}

// dispatcher 由同一組 AsyncHandler（WithAttrs/WithGroup 的衍生體）共用。
type dispatcher struct {
	ch     chan logItem
	closed chan struct{}
	once   sync.Once
	wg     sync.WaitGroup

	dropped atomic.Uint64
}

type logItem struct {
	ctx     context.Context
	rec     slog.Record
	handler slog.Handler
}

// NewAsyncHandler 把 next 包成非阻塞 handler。
//
// buf 是隊列深度：越大越不容易丟，但 shutdown drain 的時間也越長。
func NewAsyncHandler(next slog.Handler, buf int) *AsyncHandler {
	if next == nil {
		next = buildHandler(ModeDev)
	}
	if buf <= 0 {
		buf = 1024
	}

	d := &dispatcher{
		ch:     make(chan logItem, buf),
		closed: make(chan struct{}),
	}
	d.wg.Add(1)
	go d.run()

	return &AsyncHandler{next: next, d: d}
}

func (h *AsyncHandler) Ready() bool {
	return h != nil && h.d != nil
}

// Dropped 回報因 buffer 滿而丟棄的筆數。
func (h *AsyncHandler) Dropped() uint64 {
	if !h.Ready() {
		return 0
	}
	return h.d.dropped.Load()
}

// Close 停收新 log 並 drain 既有隊列；不屬於 slog.Handler 介面，
// 只有持有 *AsyncHandler 的組裝端（通常是 main）能呼叫。
func (h *AsyncHandler) Close() {
	if !h.Ready() {
		return
	}
	h.d.once.Do(func() { close(h.d.closed) })
	h.d.wg.Wait()
}

func (d *dispatcher) run() {
	defer d.wg.Done()
	for {
		select {
		case it := <-d.ch:
			d.emit(it)
		case <-d.closed:
			// drain 到 channel 空為止
			for {
				select {
				case it := <-d.ch:
					d.emit(it)
				default:
					return
				}
			}
		}
	}
}

func (d *dispatcher) emit(it logItem) {
	if it.handler != nil {
		_ = it.handler.Handle(it.ctx, it.rec)
	}
}

func (h *AsyncHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *AsyncHandler) Handle(ctx context.Context, r slog.Record) error {
	if !h.Ready() {
		return nil
	}

	// Close 之後不再接受新 log
	select {
	case <-h.d.closed:
		h.d.dropped.Add(1)
		return nil
	default:
	}

	// Clone 複製 attributes，Record 的可變引用才能安全跨 goroutine
	it := logItem{ctx: ctx, rec: r.Clone(), handler: h.next}

	select {
	case h.d.ch <- it:
		return nil
	default:
		h.d.dropped.Add(1)
		return nil
	}
}

func (h *AsyncHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &AsyncHandler{next: h.next.WithAttrs(attrs), d: h.d}
}

func (h *AsyncHandler) WithGroup(name string) slog.Handler {
	return &AsyncHandler{next: h.next.WithGroup(name), d: h.d}
}

func buildHandler(mode LogMode) slog.Handler {
	switch mode {
	case ModeProd:
		return slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	case ModeSilence:
		return slog.NewTextHandler(io.Discard, nil)
	default: // ModeDev 與未知值都走開發預設
		return slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}
}
