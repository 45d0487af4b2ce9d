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

// Package perf 包裝 runtime/pprof，給 CLI 模擬器一鍵出 profile。
//
// 取樣熱路徑（ziggurat 快速路徑、批次 fill）的優化都從這裡的
// cpu.pprof 開始看；cpu profile 也可以直接餵給 PGO 構建。
package perf

import (
	"os"
	"runtime"
	"runtime/pprof"
)

const pprofDir = "build/profiling" // pprof 檔案寫入路徑

// RunPProf 依 mode 決定在哪種 profiling 下執行 exe。
//
// mode: "" 不開 profiling；cpu / heap / allocs 各寫出對應檔案。
// 未知 mode 直接執行，不報錯（CLI flag 手滑不該毀掉一次長模擬）。
func RunPProf(exe func(), mode string) {
	_ = os.MkdirAll(pprofDir, 0o755)

	switch mode {
	case "cpu":
		PProfCPU(exe)
	case "heap":
		PProfHeap(exe)
	case "allocs":
		PProfAllocs(exe)
	default:
		exe()
	}
}

// PProfCPU 在 CPU profiling 下執行 exe，寫出 build/profiling/cpu.pprof。
//
// Usage:
//
//	go run ./cmd/run -p cpu -dist normal -samples 10000000
func PProfCPU(exe func()) {
	_ = os.MkdirAll(pprofDir, 0o755)

	f, err := os.Create(pprofDir + "/cpu.pprof")
	if err != nil {
		panic("failed to create cpu.pprof : " + err.Error())
	}
	defer f.Close()
	if err := pprof.StartCPUProfile(f); err != nil {
		panic("failed to start pprof : " + err.Error())
	}
	defer pprof.StopCPUProfile()

	exe()
}

// PProfHeap 在 exe() 完成後寫出一次 heap snapshot（in-use memory）。
//
// 寫出前先 runtime.GC()，Live Objects 視圖才貼近真實；
// 輸出檔 build/profiling/heap.pprof。
func PProfHeap(exe func()) {
	exe()

	_ = os.MkdirAll(pprofDir, 0o755)
	runtime.GC()

	f, err := os.Create(pprofDir + "/heap.pprof")
	if err != nil {
		panic("failed to create heap.pprof : " + err.Error())
	}
	defer f.Close()

	if err := pprof.WriteHeapProfile(f); err != nil {
		panic("failed to write heap profile : " + err.Error())
	}
}

// PProfAllocs 在 exe() 完成後寫出累積配置 profile，
// 追整體分配熱點用（搭配 -alloc_space / -alloc_objects 查看）。
// 輸出檔 build/profiling/allocs.pprof。
func PProfAllocs(exe func()) {
	exe()

	_ = os.MkdirAll(pprofDir, 0o755)

	f, err := os.Create(pprofDir + "/allocs.pprof")
	if err != nil {
		panic("failed to create allocs.pprof : " + err.Error())
	}
	defer f.Close()

	if prof := pprof.Lookup("allocs"); prof != nil {
		if err := prof.WriteTo(f, 0); err != nil {
			panic("failed to write allocs profile : " + err.Error())
		}
	}
}
