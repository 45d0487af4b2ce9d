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

// Package app 統一管理長生命週期元件的啟動與關閉。
package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const shutdownGrace = 5 * time.Second

// App 啟動所有註冊的 Component，在收到 OS 信號或任一元件出錯時協調優雅關閉。
type App struct {
	comps []Component
}

// New 建立空的 App。
func New() *App { return &App{} }

// NewWith 建立 App 並直接註冊多個 Component。
func NewWith(comps ...Component) *App {
	app := New()
	for _, c := range comps {
		app.Register(c)
	}
	return app
}

// Register 註冊一個 Component，Run 時納入管理。
func (a *App) Register(c Component) {
	a.comps = append(a.comps, c)
}

// Run 並行啟動所有元件並阻塞，直到收到 SIGINT/SIGTERM 或任一元件的
// Run 返回。信號退出回傳 nil；元件出錯觸發優雅關閉後回傳該錯誤。
//
// 假設每個 Component.Run 都是阻塞呼叫，代表該元件的生命週期。
func (a *App) Run() error {
	errCh := make(chan error, len(a.comps))
	for _, c := range a.comps {
		go func(c Component) {
			errCh <- c.Run()
		}(c)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case <-quit:
		a.shutdownAll(shutdownGrace)
		return nil
	case err := <-errCh:
		a.shutdownAll(shutdownGrace)
		return err
	}
}

// shutdownAll 在 grace 期限內依序呼叫所有 Component.Shutdown。
// 個別元件關不掉只記錄，不阻止其餘元件關閉。
func (a *App) shutdownAll(grace time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	for _, c := range a.comps {
		if err := c.Shutdown(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "shutdown err: %v\n", err)
		}
	}
}
