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
	"io"
	"sync"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/zintix-labs/randlab/errs"
	"github.com/zintix-labs/randlab/sdk/core"
	"github.com/zintix-labs/randlab/stats"
)

const capPrepare int = 100

// simChunk 模擬內圈每次批次取樣的樣本數。
//
// 模擬走 Generator 的 float32 批次路徑而不是逐樣本呼叫：
// 統計到的就是對外批次輸出的同一條流水與同一種精度。
const simChunk int = 4096

// Simulator 用於模擬取樣行為，可建立多個 Generator 並平行紀錄統計。
type Simulator struct {
	Dist      string            // 分布名稱 normal | exp
	cf        core.PRNGFactory  // 亂數生成器
	initSeed  int64             // 初始下的種子
	seedmaker *seedMaker        // 種子生成器
	gBuf      []*Generator      // 併發執行Generator實例
	rBuf      []*stats.Recorder // 併發取樣紀錄員
}

// NewSimulator 以 baseSeed 派生的下一個子 seed 建立 Simulator。
func (l *Lab) NewSimulator(dist string) (*Simulator, error) {
	return l.NewSimulatorWithSeed(dist, l.seedmaker.next())
}

// NewSimulatorWithSeed 與 NewSimulator 相同，但由呼叫端指定 seed。
func (l *Lab) NewSimulatorWithSeed(dist string, seed int64) (*Simulator, error) {
	return newSimulatorWithSeed(dist, l.cf, seed)
}

func newSimulatorWithSeed(dist string, cf core.PRNGFactory, seed int64) (*Simulator, error) {
	if dist != "normal" && dist != "exp" {
		return nil, errs.NewWarn("dist err: must be normal or exp")
	}
	s := &Simulator{
		Dist:      dist,
		cf:        cf,
		initSeed:  seed,
		seedmaker: newSeedMaker(seed),
		gBuf:      make([]*Generator, 1, capPrepare),
		rBuf:      make([]*stats.Recorder, 0, capPrepare),
	}
	s.gBuf[0] = newGenerator(cf, s.initSeed)
	return s, nil
}

// Sim 單線模擬器：以一個 Generator 連續取指定 samples 並回傳統計結果與用時
func (s *Simulator) Sim(samples int, showpb bool) (*stats.SampleReport, time.Duration, error) {
	defer s.reset()
	if samples < 1 {
		return nil, 0, errs.NewWarn("samples must > 0")
	}
	if len(s.rBuf) == 0 {
		s.rBuf = append(s.rBuf, stats.NewRecorder(s.Dist, s.initSeed))
	}
	r := s.rBuf[0]
	g := s.gBuf[0]

	bar := pb.StartNew(samples)
	if !showpb {
		bar.SetWriter(io.Discard)
	}
	if err := drawInto(g, r, s.Dist, samples, bar); err != nil {
		return nil, 0, err
	}
	used := time.Since(bar.StartTime())
	bar.Finish()
	result := r.Report()
	result.Done()

	return result, used, nil
}

// SimMP 平行執行多個 Generator，總計 samples*mp 次取樣，合併統計結果後 回傳統計結果與用時
func (s *Simulator) SimMP(samples int, mp int, showpb bool) (*stats.SampleReport, time.Duration, error) {
	defer s.reset()
	if mp <= 0 {
		return nil, 0, errs.NewWarn("workers must > 0")
	}
	if samples < 1 {
		return nil, 0, errs.NewWarn("samples must > 0")
	}
	for len(s.gBuf) < mp {
		s.gBuf = append(s.gBuf, newGenerator(s.cf, s.seedmaker.next()))
	}
	for len(s.rBuf) < mp {
		s.rBuf = append(s.rBuf, stats.NewRecorder(s.Dist, s.gBuf[len(s.rBuf)].Seed()))
	}

	wg := new(sync.WaitGroup)
	wg.Add(mp)
	bar := pb.StartNew(samples * mp)
	if !showpb {
		bar.SetWriter(io.Discard)
	}
	errCh := make(chan error, mp)
	for i := 0; i < mp; i++ {
		go func(i int) {
			defer wg.Done()
			if err := drawInto(s.gBuf[i], s.rBuf[i], s.Dist, samples, bar); err != nil {
				errCh <- err
			}
		}(i)
	}
	wg.Wait()
	used := time.Since(bar.StartTime())
	bar.Finish()
	close(errCh)
	if err := <-errCh; err != nil {
		return nil, 0, err
	}

	merged := stats.NewRecorder(s.Dist, s.initSeed)
	for _, r := range s.rBuf[:mp] {
		merged.Merge(r)
	}
	result := merged.Report()
	result.Done()

	return result, used, nil
}

// SimStreams 模擬多條獨立流水的取樣歷程，並產出匯總報表與逐流品質評估。
//
// streams 條流水由 mp 個 worker 消化，每條流水取 samples 個樣本；
// 各流使用獨立派生 seed，整體仍由 initSeed 唯一決定。
func (s *Simulator) SimStreams(mp int, streams int, samples int, showpb bool) (*stats.SampleReport, *stats.EstimatorStreams, time.Duration, error) {
	defer s.reset()
	if streams < 1 || samples < 1 || mp < 1 {
		return nil, nil, 0, errs.NewWarn("invalid param")
	}

	// 準備並行Generator
	for len(s.gBuf) < mp {
		s.gBuf = append(s.gBuf, newGenerator(s.cf, s.seedmaker.next()))
	}

	// 準備流水紀錄員
	for len(s.rBuf) < streams {
		s.rBuf = append(s.rBuf, stats.NewRecorder(s.Dist, s.seedmaker.next()))
	}
	// 作一個2048大小的緩衝channel 使流水依序處理
	jobs := make(chan *stats.Recorder, 2048)

	wg := new(sync.WaitGroup)
	wg.Add(mp) // 併發worker

	bar := pb.StartNew(streams)
	if !showpb {
		bar.SetWriter(io.Discard)
	}
	// 併發執行
	errCh := make(chan error, mp)
	for w := 0; w < mp; w++ {
		go simStream(wg, s.gBuf[w], jobs, errCh, s.Dist, samples, bar)
	}
	// 此時併發已經完成，但由於所有workers都無法從jobs當中取出j(還沒塞進去) 所以不會結束

	// 塞進流水，開始模擬
	for _, j := range s.rBuf[:streams] {
		jobs <- j
	}
	close(jobs) // 流水送完處理完畢關閉通道 通知所有worker不會再有新資料
	wg.Wait()   // 等待worker都執行完任務
	used := time.Since(bar.StartTime())
	bar.Finish()
	close(errCh)
	if err := <-errCh; err != nil {
		return nil, nil, 0, err
	}

	// 匯總基準報表
	merged := stats.NewRecorder(s.Dist, s.initSeed)
	sBuf := make([]*stats.SampleReport, streams)
	for i, r := range s.rBuf[:streams] {
		merged.Merge(r)
		sBuf[i] = r.Report()
		sBuf[i].Done()
	}
	st := merged.Report()
	st.Done()

	// 逐流品質評估
	est := stats.EstimatorStreamFit(sBuf)
	return st, est, used, nil
}

func simStream(wg *sync.WaitGroup, g *Generator, jobs chan *stats.Recorder, errCh chan<- error, dist string, samples int, bar *pb.ProgressBar) {
	defer wg.Done()
	for j := range jobs { // j := <- jobs
		// 逐流回報進度就好，內圈不掛bar
		if err := drawInto(g, j, dist, samples, nil); err != nil {
			select {
			case errCh <- err:
			default: // 已有錯誤待回報，後續的丟棄
			}
		}
		bar.Increment()
	}
}

// drawInto 以批次路徑從 g 取 samples 個樣本進 r。
//
// bar 為 nil 時不回報進度。
func drawInto(g *Generator, r *stats.Recorder, dist string, samples int, bar *pb.ProgressBar) error {
	var read func([]byte) (int, error)
	switch dist {
	case "exp":
		read = g.ReadExpFloat32
	case "normal":
		read = g.ReadNormalFloat32
	default:
		return errs.NewWarn("dist err: must be normal or exp")
	}
	dst := make([]byte, 4*simChunk)
	for samples > 0 {
		n := simChunk
		if samples < n {
			n = samples
		}
		chunk := dst[:4*n]
		if _, err := read(chunk); err != nil {
			return err
		}
		r.PushFloat32Bytes(chunk)
		if bar != nil {
			bar.Add(n)
		}
		samples -= n
	}
	return nil
}

func (s *Simulator) reset() {
	s.rBuf = s.rBuf[:0]
}
