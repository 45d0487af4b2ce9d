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
	"bytes"
	"context"
	"encoding/binary"
	"math"
	"sync"
	"testing"

	"github.com/cheggaaa/pb/v3"
	"github.com/zintix-labs/randlab/corefmt"
	"github.com/zintix-labs/randlab/dto"
	"github.com/zintix-labs/randlab/errs"
	"github.com/zintix-labs/randlab/sdk/buf"
	"github.com/zintix-labs/randlab/sdk/core"
	"github.com/zintix-labs/randlab/stats"
)

func newTestLab(t *testing.T) *Lab {
	t.Helper()
	lab, err := NewWithSeed(core.Default(), 20260831)
	if err != nil {
		t.Fatalf("new lab: %v", err)
	}
	return lab
}

// ============================================================
// ** Generator **
// ============================================================

func TestBatchStreamContinuity(t *testing.T) {
	lab := newTestLab(t)

	// 先取3個再取2個 == 一次取5個
	g1 := lab.NewGenerator(777)
	b3, err := g1.FillNormalFloat32(3)
	if err != nil {
		t.Fatalf("fill 3: %v", err)
	}
	b2, err := g1.FillNormalFloat32(2)
	if err != nil {
		t.Fatalf("fill 2: %v", err)
	}

	g2 := lab.NewGenerator(777)
	b5, err := g2.FillNormalFloat32(5)
	if err != nil {
		t.Fatalf("fill 5: %v", err)
	}

	joined := append(append([]byte{}, b3...), b2...)
	if !bytes.Equal(joined, b5) {
		t.Fatalf("3+2 stream differs from 5")
	}
}

func TestBatchCountZeroConsumesNothing(t *testing.T) {
	lab := newTestLab(t)
	g := lab.NewGenerator(1)

	before, _ := g.SnapshotCore()
	out, err := g.FillNormalFloat32(0)
	if err != nil {
		t.Fatalf("count 0: %v", err)
	}
	if out == nil || len(out) != 0 {
		t.Fatalf("count 0 must return empty non-nil slice, got %v", out)
	}
	after, _ := g.SnapshotCore()
	if !bytes.Equal(before, after) {
		t.Fatalf("count 0 consumed random stream")
	}
}

func TestBatchCountOverflow(t *testing.T) {
	lab := newTestLab(t)
	g := lab.NewGenerator(1)

	before, _ := g.SnapshotCore()
	_, err := g.FillNormalFloat32(math.MaxUint64)
	if !errs.IsKind(err, errs.KindCountOverflow) {
		t.Fatalf("expected KindCountOverflow, got %v", err)
	}
	after, _ := g.SnapshotCore()
	if !bytes.Equal(before, after) {
		t.Fatalf("failed request consumed random stream")
	}
}

func TestBatchAllocLimit(t *testing.T) {
	lab := newTestLab(t)
	g := lab.NewGenerator(1)

	over := uint64(buf.MaxBatchBytes/4) + 1
	_, err := g.FillExpFloat32(over)
	if !errs.IsKind(err, errs.KindAllocFailed) {
		t.Fatalf("expected KindAllocFailed, got %v", err)
	}
}

func TestBatchMatchesSingleDraws(t *testing.T) {
	lab := newTestLab(t)

	gb := lab.NewGenerator(33)
	raw, err := gb.FillExpFloat32(64)
	if err != nil {
		t.Fatalf("fill: %v", err)
	}

	gs := lab.NewGenerator(33)
	for i := 0; i < 64; i++ {
		want := float32(gs.Exponential())
		got := math.Float32frombits(binary.NativeEndian.Uint32(raw[i*4:]))
		if got != want {
			t.Fatalf("value %d: got %v want %v", i, got, want)
		}
	}
}

func TestReadFloat32Contract(t *testing.T) {
	lab := newTestLab(t)
	g := lab.NewGenerator(5)

	if _, err := g.ReadNormalFloat32(make([]byte, 7)); err == nil {
		t.Fatalf("expected error for non multiple-of-4 dst")
	}

	// Read 路徑與 Fill 路徑必須走同一條流水
	dst := make([]byte, 4*16)
	n, err := g.ReadNormalFloat32(dst)
	if err != nil || n != 16 {
		t.Fatalf("read: n=%d err=%v", n, err)
	}
	g2 := lab.NewGenerator(5)
	raw, err := g2.FillNormalFloat32(16)
	if err != nil {
		t.Fatalf("fill: %v", err)
	}
	if !bytes.Equal(dst, raw) {
		t.Fatalf("Read path diverged from Fill path")
	}
}

func TestSnapshotRestoreReplaysBatch(t *testing.T) {
	lab := newTestLab(t)
	g := lab.NewGenerator(99)

	// 推進一段流水後快照
	if _, err := g.FillNormalFloat32(10); err != nil {
		t.Fatalf("warmup: %v", err)
	}
	snap, err := g.SnapshotCore()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	first, err := g.FillExpFloat32(32)
	if err != nil {
		t.Fatalf("first batch: %v", err)
	}

	if err := g.RestoreCore(snap); err != nil {
		t.Fatalf("restore: %v", err)
	}
	replay, err := g.FillExpFloat32(32)
	if err != nil {
		t.Fatalf("replay batch: %v", err)
	}
	if !bytes.Equal(first, replay) {
		t.Fatalf("restored batch differs from original")
	}
}

// ============================================================
// ** Handle registry / seed derivation **
// ============================================================

func TestHandleRegistry(t *testing.T) {
	lab := newTestLab(t)

	id := lab.Open(123)
	if id == 0 {
		t.Fatalf("handle id must be non-zero")
	}
	g, err := lab.Lookup(id)
	if err != nil || g == nil {
		t.Fatalf("lookup: %v", err)
	}
	if g.Seed() != 123 {
		t.Fatalf("handle seed got %d want 123", g.Seed())
	}
	if lab.Handles() != 1 {
		t.Fatalf("handles got %d want 1", lab.Handles())
	}

	if err := lab.Close(id); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, err := lab.Lookup(id); !errs.IsKind(err, errs.KindInvalidHandle) {
		t.Fatalf("expected KindInvalidHandle, got %v", err)
	}
	if err := lab.Close(id); !errs.IsKind(err, errs.KindInvalidHandle) {
		t.Fatalf("double close expected KindInvalidHandle, got %v", err)
	}
}

func TestSeedMakerDeterministic(t *testing.T) {
	a := newSeedMaker(42)
	b := newSeedMaker(42)
	seen := map[int64]bool{}
	for i := 0; i < 1000; i++ {
		va := a.next()
		if va != b.next() {
			t.Fatalf("seed derivation diverged at %d", i)
		}
		if seen[va] {
			t.Fatalf("seed %d repeated within 1000 derivations", va)
		}
		seen[va] = true
	}
}

// ============================================================
// ** GeneratorPool **
// ============================================================

func TestPoolFill(t *testing.T) {
	lab := newTestLab(t)
	p := lab.NewPool(2)
	defer p.Close()

	out, err := p.Fill(context.Background(), "normal", 8)
	if err != nil {
		t.Fatalf("pool fill: %v", err)
	}
	if len(out) != 32 {
		t.Fatalf("pool fill got %d bytes want 32", len(out))
	}

	// 非法 dist 是 request error：Generator要歸還,不淘汰
	if _, err := p.Fill(context.Background(), "cauchy", 1); err == nil {
		t.Fatalf("expected error for unknown dist")
	}
	if p.Available() != 2 {
		t.Fatalf("available got %d want 2 after non-fatal error", p.Available())
	}
	if p.ReBuild() != 0 {
		t.Fatalf("rebuild got %d want 0", p.ReBuild())
	}
}

func TestPoolClosedFill(t *testing.T) {
	lab := newTestLab(t)
	p := lab.NewPool(1)
	p.Close()

	if _, err := p.Fill(context.Background(), "normal", 1); err == nil {
		t.Fatalf("expected error after close")
	}
	m := p.Metrics()
	if !m.Closed || m.CloseReason != "closed" {
		t.Fatalf("metrics after close: %+v", m)
	}
}

func TestPoolCanceledContext(t *testing.T) {
	lab := newTestLab(t)
	p := lab.NewPool(1)
	defer p.Close()

	// 借光 pool 再用已取消的 ctx 借：必須立刻失敗而非阻塞
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := <-chanOf(p)
	defer func() { chanOf(p) <- g }()
	if _, err := p.Fill(ctx, "normal", 1); err == nil {
		t.Fatalf("expected error for canceled context")
	}
}

func chanOf(p *GeneratorPool) chan *Generator { return p.pool }

// ============================================================
// ** BatchRuntime **
// ============================================================

func TestRuntimeThreeModes(t *testing.T) {
	lab := newTestLab(t)
	rt := lab.Run(2)
	defer rt.Close()
	ctx := context.Background()

	// 匿名模式
	anon, err := rt.Fill(ctx, &dto.BatchRequest{Dist: "normal", Count: 4})
	if err != nil {
		t.Fatalf("anonymous fill: %v", err)
	}
	if anon.Handle != 0 || anon.Count != 4 || anon.Payload == "" {
		t.Fatalf("anonymous result: %+v", anon)
	}

	// 一次性 seed 模式：同 seed 必同 payload
	r1, err := rt.Fill(ctx, &dto.BatchRequest{SeedText: "555", Dist: "exp", Count: 8, WantSnap: true})
	if err != nil {
		t.Fatalf("seed fill: %v", err)
	}
	r2, err := rt.Fill(ctx, &dto.BatchRequest{SeedText: "555", Dist: "exp", Count: 8})
	if err != nil {
		t.Fatalf("seed fill 2: %v", err)
	}
	if r1.Payload != r2.Payload {
		t.Fatalf("same seed produced different payloads")
	}
	if r1.After == "" {
		t.Fatalf("want_snap did not return after-state")
	}
	if r2.After != "" {
		t.Fatalf("after-state returned without want_snap")
	}

	// 具名 handle 模式：流水續接
	id, err := rt.Open(321)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	h3, err := rt.Fill(ctx, &dto.BatchRequest{Handle: id, Dist: "normal", Count: 3})
	if err != nil {
		t.Fatalf("handle fill 3: %v", err)
	}
	h2, err := rt.Fill(ctx, &dto.BatchRequest{Handle: id, Dist: "normal", Count: 2})
	if err != nil {
		t.Fatalf("handle fill 2: %v", err)
	}
	one, err := rt.Fill(ctx, &dto.BatchRequest{SeedText: "321", Dist: "normal", Count: 5})
	if err != nil {
		t.Fatalf("one-shot fill 5: %v", err)
	}
	p3, err := corefmt.DecodeBase64URL(h3.Payload)
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	p2, err := corefmt.DecodeBase64URL(h2.Payload)
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	p5, err := corefmt.DecodeBase64URL(one.Payload)
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if !bytes.Equal(append(append([]byte{}, p3...), p2...), p5) {
		t.Fatalf("handle 3+2 stream differs from one-shot 5")
	}
	if err := rt.Release(id); err != nil {
		t.Fatalf("release: %v", err)
	}
	if _, err := rt.Fill(ctx, &dto.BatchRequest{Handle: id, Count: 1}); !errs.IsKind(err, errs.KindInvalidHandle) {
		t.Fatalf("expected KindInvalidHandle, got %v", err)
	}
}

func TestRuntimeClosed(t *testing.T) {
	lab := newTestLab(t)
	rt := lab.Run(1)
	rt.Close()
	rt.Close() // 幂等

	if _, err := rt.Fill(context.Background(), &dto.BatchRequest{Count: 1}); err == nil {
		t.Fatalf("expected error after close")
	}
	if !rt.Closed() || rt.ClosedReason() != "closed" {
		t.Fatalf("closed state: %v %q", rt.Closed(), rt.ClosedReason())
	}
}

func TestRuntimeFillRaw(t *testing.T) {
	lab := newTestLab(t)
	rt := lab.Run(1)
	defer rt.Close()

	raw, err := rt.FillRaw(context.Background(), &dto.BatchRequest{SeedText: "9", Dist: "normal", Count: 6})
	if err != nil {
		t.Fatalf("fill raw: %v", err)
	}
	if len(raw) != 24 {
		t.Fatalf("raw got %d bytes want 24", len(raw))
	}
}

// ============================================================
// ** Simulator **
// ============================================================

func TestSimulatorMoments(t *testing.T) {
	lab := newTestLab(t)
	s, err := lab.NewSimulatorWithSeed("normal", 11)
	if err != nil {
		t.Fatalf("new simulator: %v", err)
	}
	st, used, err := s.Sim(100000, false)
	if err != nil {
		t.Fatalf("sim: %v", err)
	}
	st.Done()
	if st.Summary.Samples != 100000 {
		t.Fatalf("samples got %d want 100000", st.Summary.Samples)
	}
	if math.Abs(st.Summary.Mean) > 0.05 || math.Abs(st.Summary.Std-1) > 0.05 {
		t.Fatalf("suspicious moments: mean=%.4f std=%.4f", st.Summary.Mean, st.Summary.Std)
	}
	if used < 0 {
		t.Fatalf("negative duration")
	}
}

func TestSimulatorMP(t *testing.T) {
	lab := newTestLab(t)
	s, err := lab.NewSimulatorWithSeed("exp", 12)
	if err != nil {
		t.Fatalf("new simulator: %v", err)
	}
	st, _, err := s.SimMP(50000, 4, false)
	if err != nil {
		t.Fatalf("simmp: %v", err)
	}
	st.Done()
	if st.Summary.Samples != 200000 {
		t.Fatalf("samples got %d want 200000", st.Summary.Samples)
	}
	if math.Abs(st.Summary.Mean-1) > 0.05 {
		t.Fatalf("exp mean got %.4f want ~1", st.Summary.Mean)
	}
	if st.Summary.Min < 0 {
		t.Fatalf("exp min %.4f < 0", st.Summary.Min)
	}
}

func TestSimulatorStreams(t *testing.T) {
	lab := newTestLab(t)
	s, err := lab.NewSimulatorWithSeed("normal", 13)
	if err != nil {
		t.Fatalf("new simulator: %v", err)
	}
	st, est, _, err := s.SimStreams(4, 16, 5000, false)
	if err != nil {
		t.Fatalf("simstreams: %v", err)
	}
	st.Done()
	if st.Summary.Samples != 16*5000 {
		t.Fatalf("merged samples got %d want %d", st.Summary.Samples, 16*5000)
	}
	if est == nil {
		t.Fatalf("nil estimator")
	}
	if est.FitStat.MaxAbsDev > 0.05 {
		t.Fatalf("bucket deviation %.4f too large", est.FitStat.MaxAbsDev)
	}
}

func TestSimulatorUnknownDist(t *testing.T) {
	lab := newTestLab(t)
	if _, err := lab.NewSimulator("poisson"); err == nil {
		t.Fatalf("expected error for unknown dist")
	}
}

func TestSimStreamForwardsWorkerError(t *testing.T) {
	lab := newTestLab(t)
	g := lab.NewGenerator(14)

	jobs := make(chan *stats.Recorder, 2)
	jobs <- stats.NewRecorder("cauchy", 100)
	jobs <- stats.NewRecorder("cauchy", 100)
	close(jobs)

	errCh := make(chan error, 1)
	wg := &sync.WaitGroup{}
	wg.Add(1)
	simStream(wg, g, jobs, errCh, "cauchy", 100, pb.New(2))
	wg.Wait()

	close(errCh)
	if err := <-errCh; err == nil {
		t.Fatalf("expected worker error for unknown dist")
	}
}

func TestWriteReadSnapshotFile(t *testing.T) {
	lab := newTestLab(t)
	g := lab.NewGenerator(909)
	for i := 0; i < 50; i++ {
		g.Normal()
	}

	var file bytes.Buffer
	if err := g.WriteSnapshot(&file); err != nil {
		t.Fatalf("write snapshot: %v", err)
	}

	want, err := g.FillExpFloat32(16)
	if err != nil {
		t.Fatalf("fill: %v", err)
	}

	// 另一個 handle 從落地的 frame 還原，重播相同流水
	g2 := lab.NewGenerator(1)
	if err := g2.ReadSnapshot(bytes.NewReader(file.Bytes())); err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	got, err := g2.FillExpFloat32(16)
	if err != nil {
		t.Fatalf("replay fill: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("replayed batch differs from original")
	}

	// 壞 frame：還原失敗不得改動現有狀態
	before, _ := g2.SnapshotCore()
	if err := g2.ReadSnapshot(bytes.NewReader([]byte{0x02, 0x01})); err == nil {
		t.Fatalf("truncated frame should fail")
	}
	after, _ := g2.SnapshotCore()
	if !bytes.Equal(before, after) {
		t.Fatalf("failed restore mutated state")
	}
}
