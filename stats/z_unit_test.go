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

package stats_test

import (
	"encoding/binary"
	"math"
	"math/rand"
	"testing"

	"github.com/zintix-labs/randlab/stats"
)

// directMoments computes mean/std/skew/exkurt with a plain two-pass loop,
// as the ground truth for the one-pass recorder.
func directMoments(xs []float64) (mean, std, skew, exkurt float64) {
	n := float64(len(xs))
	for _, x := range xs {
		mean += x
	}
	mean /= n

	var m2, m3, m4 float64
	for _, x := range xs {
		d := x - mean
		m2 += d * d
		m3 += d * d * d
		m4 += d * d * d * d
	}
	std = math.Sqrt(m2 / (n - 1))
	skew = math.Sqrt(n) * m3 / math.Pow(m2, 1.5)
	exkurt = n*m4/(m2*m2) - 3.0
	return
}

// boxMuller 產生deterministic的常態樣本(測試用,與取樣核心無關)
func boxMuller(rng *rand.Rand, n int) []float64 {
	xs := make([]float64, n)
	for i := 0; i < n; i += 2 {
		u1 := rng.Float64()
		u2 := rng.Float64()
		r := math.Sqrt(-2 * math.Log(1-u1))
		xs[i] = r * math.Cos(2*math.Pi*u2)
		if i+1 < n {
			xs[i+1] = r * math.Sin(2*math.Pi*u2)
		}
	}
	return xs
}

func TestRecorderMomentsMatchDirect(t *testing.T) {
	xs := []float64{0.12, -1.7, 2.45, 0.0, -0.33, 1.01, 3.9, -2.2, 0.77, 0.5}
	r := stats.NewRecorder("normal", 42)
	r.PushAll(xs)

	rep := r.Report()
	rep.Done()

	mean, std, skew, exkurt := directMoments(xs)
	if math.Abs(rep.Summary.Mean-mean) > 1e-12 {
		t.Fatalf("mean got %.15f want %.15f", rep.Summary.Mean, mean)
	}
	if math.Abs(rep.Summary.Std-std) > 1e-12 {
		t.Fatalf("std got %.15f want %.15f", rep.Summary.Std, std)
	}
	if math.Abs(rep.Summary.Skew-skew) > 1e-9 {
		t.Fatalf("skew got %.15f want %.15f", rep.Summary.Skew, skew)
	}
	if math.Abs(rep.Summary.ExKurt-exkurt) > 1e-9 {
		t.Fatalf("exkurt got %.15f want %.15f", rep.Summary.ExKurt, exkurt)
	}
	if rep.Summary.Min != -2.2 || rep.Summary.Max != 3.9 {
		t.Fatalf("min/max got %v/%v want -2.2/3.9", rep.Summary.Min, rep.Summary.Max)
	}
	if rep.Summary.Samples != len(xs) {
		t.Fatalf("samples got %d want %d", rep.Summary.Samples, len(xs))
	}
}

func TestRecorderMergeEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	xs := boxMuller(rng, 4001) // 奇數長度,切分不對稱

	whole := stats.NewRecorder("normal", 1)
	whole.PushAll(xs)

	a := stats.NewRecorder("normal", 1)
	b := stats.NewRecorder("normal", 1)
	a.PushAll(xs[:1234])
	b.PushAll(xs[1234:])
	a.Merge(b)

	if a.N() != whole.N() {
		t.Fatalf("merged N got %d want %d", a.N(), whole.N())
	}

	ra := a.Report()
	rw := whole.Report()
	ra.Done()
	rw.Done()

	if math.Abs(ra.Summary.Mean-rw.Summary.Mean) > 1e-12 {
		t.Fatalf("merged mean got %.15f want %.15f", ra.Summary.Mean, rw.Summary.Mean)
	}
	if math.Abs(ra.Summary.Std-rw.Summary.Std) > 1e-10 {
		t.Fatalf("merged std got %.15f want %.15f", ra.Summary.Std, rw.Summary.Std)
	}
	if math.Abs(ra.Summary.Skew-rw.Summary.Skew) > 1e-8 {
		t.Fatalf("merged skew got %.15f want %.15f", ra.Summary.Skew, rw.Summary.Skew)
	}
	if math.Abs(ra.Summary.ExKurt-rw.Summary.ExKurt) > 1e-8 {
		t.Fatalf("merged exkurt got %.15f want %.15f", ra.Summary.ExKurt, rw.Summary.ExKurt)
	}
	if ra.Summary.Min != rw.Summary.Min || ra.Summary.Max != rw.Summary.Max {
		t.Fatalf("merged min/max mismatch")
	}
	for i, c := range ra.Dist.Collect {
		if c != rw.Dist.Collect[i] {
			t.Fatalf("merged bucket %d got %d want %d", i, c, rw.Dist.Collect[i])
		}
	}
}

func TestRecorderPushFloat32Bytes(t *testing.T) {
	vals := []float32{0.5, -1.25, 3.75, 0, 8.5}
	raw := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.NativeEndian.PutUint32(raw[4*i:], math.Float32bits(v))
	}

	byBytes := stats.NewRecorder("normal", 9)
	byBytes.PushFloat32Bytes(raw)

	byVals := stats.NewRecorder("normal", 9)
	for _, v := range vals {
		byVals.Push(float64(v))
	}

	if byBytes.N() != byVals.N() {
		t.Fatalf("N got %d want %d", byBytes.N(), byVals.N())
	}
	rb := byBytes.Report()
	rv := byVals.Report()
	rb.Done()
	rv.Done()
	if rb.Summary.Mean != rv.Summary.Mean || rb.Summary.Std != rv.Summary.Std {
		t.Fatalf("float32 byte path diverged from value path")
	}
	for i, c := range rb.Dist.Collect {
		if c != rv.Dist.Collect[i] {
			t.Fatalf("bucket %d got %d want %d", i, c, rv.Dist.Collect[i])
		}
	}
}

func TestHistogramIndexEdges(t *testing.T) {
	norm := stats.Buckets.GetByDist("normal")
	// (-inf,-4), [-4,-3.75), ..., [3.75,4), [4,+inf) => 34桶
	if norm.Size() != 34 {
		t.Fatalf("normal hist size got %d want 34", norm.Size())
	}
	cases := []struct {
		x    float64
		want int
	}{
		{math.Inf(-1), 0},
		{-4.0001, 0},
		{-4.0, 1},
		{-3.751, 1},
		{-3.75, 2},
		{0, 17},
		{3.9999, 33 - 1},
		{4.0, 33},
		{math.Inf(1), 33},
	}
	for _, c := range cases {
		if got := norm.Index(c.x); got != c.want {
			t.Fatalf("normal Index(%v) got %d want %d", c.x, got, c.want)
		}
	}

	exp := stats.Buckets.GetByDist("exp")
	// [0,0.25), ..., [7.75,8), [8,+inf) => 33桶
	if exp.Size() != 33 {
		t.Fatalf("exp hist size got %d want 33", exp.Size())
	}
	if got := exp.Index(0); got != 0 {
		t.Fatalf("exp Index(0) got %d want 0", got)
	}
	if got := exp.Index(0.25); got != 1 {
		t.Fatalf("exp Index(0.25) got %d want 1", got)
	}
	if got := exp.Index(7.999); got != 31 {
		t.Fatalf("exp Index(7.999) got %d want 31", got)
	}
	if got := exp.Index(8); got != 32 {
		t.Fatalf("exp Index(8) got %d want 32", got)
	}
	if got := exp.Index(100); got != 32 {
		t.Fatalf("exp Index(100) got %d want 32", got)
	}
	// 非有限值必須落進定義好的桶, 不可流出索引範圍
	if got := norm.Index(math.NaN()); got != 33 {
		t.Fatalf("normal Index(NaN) got %d want 33", got)
	}
	if got := exp.Index(math.Inf(1)); got != 32 {
		t.Fatalf("exp Index(+Inf) got %d want 32", got)
	}
	if got := exp.Index(math.NaN()); got != 32 {
		t.Fatalf("exp Index(NaN) got %d want 32", got)
	}
	if len(norm.Labels()) != norm.Size() || len(exp.Labels()) != exp.Size() {
		t.Fatalf("labels length mismatch")
	}
}

func TestRecorderPushNonFinite(t *testing.T) {
	r := stats.NewRecorder("normal", 1)
	r.Push(math.Inf(1))
	r.Push(math.Inf(-1))
	r.Push(math.NaN())
	if r.N() != 3 {
		t.Fatalf("n got %d want 3", r.N())
	}
}

func TestHistogramTheoreticalProbsSumToOne(t *testing.T) {
	cdfN := func(x float64) float64 { return 0.5 * (1 + math.Erf(x/math.Sqrt2)) }
	cdfE := func(x float64) float64 {
		if x < 0 {
			return 0
		}
		return 1 - math.Exp(-x)
	}

	for _, tc := range []struct {
		dist string
		cdf  func(float64) float64
	}{
		{"normal", cdfN},
		{"exp", cdfE},
	} {
		h := stats.Buckets.GetByDist(tc.dist)
		probs := h.TheoreticalProbs(tc.cdf)
		if len(probs) != h.Size() {
			t.Fatalf("%s probs length got %d want %d", tc.dist, len(probs), h.Size())
		}
		sum := 0.0
		for _, p := range probs {
			sum += p
		}
		if math.Abs(sum-1.0) > 1e-9 {
			t.Fatalf("%s probs sum got %.12f want 1", tc.dist, sum)
		}
	}
}

func TestSampleReportDoneIdempotent(t *testing.T) {
	r := stats.NewRecorder("exp", 3)
	r.PushAll([]float64{0.1, 0.2, 1.5, 4.4, 9.9})
	rep := r.Report()
	rep.Done()
	mean := rep.Summary.Mean

	rep.Done() // idempotent
	if rep.Summary.Mean != mean {
		t.Fatalf("mean changed after second Done")
	}

	sum := 0.0
	for _, d := range rep.Dist.Density {
		sum += d
	}
	if math.Abs(sum-1.0) > 1e-12 {
		t.Fatalf("density sum got %.15f want 1", sum)
	}
}

func TestEstimatorStreamFitNormalStreams(t *testing.T) {
	rng := rand.New(rand.NewSource(20250831))
	reports := make([]*stats.SampleReport, 0, 64)
	for i := 0; i < 64; i++ {
		rc := stats.NewRecorder("normal", int64(i))
		rc.PushAll(boxMuller(rng, 2000))
		rep := rc.Report()
		rep.Done()
		reports = append(reports, rep)
	}

	est := stats.EstimatorStreamFit(reports)

	// z中位數應落在抽樣理論允許的範圍內(寬鬆檢查)
	if math.Abs(est.MeanStat.ZMedian.Hat) > 1.0 {
		t.Fatalf("z median got %.3f, too far from 0", est.MeanStat.ZMedian.Hat)
	}
	// 68-95-99.7帶的比例要單調且合理
	w1 := est.MeanStat.ZBand.Within1.Hat
	w2 := est.MeanStat.ZBand.Within2.Hat
	w3 := est.MeanStat.ZBand.Within3.Hat
	if !(w1 <= w2 && w2 <= w3) {
		t.Fatalf("z band not monotone: %.2f %.2f %.2f", w1, w2, w3)
	}
	if w1 < 0.4 || w3 < 0.9 {
		t.Fatalf("z band too low: within1=%.2f within3=%.2f", w1, w3)
	}

	// 落桶擬合: 128k樣本下,逐桶偏差不應超過1%
	if est.FitStat.MaxAbsDev > 0.01 {
		t.Fatalf("max bucket deviation got %.4f want < 0.01", est.FitStat.MaxAbsDev)
	}
	if len(est.FitStat.Observed) != len(est.FitStat.Theory) {
		t.Fatalf("fit table length mismatch")
	}

	// 尾部: 每流2000樣本,|x|>4非常罕見,但中位極值應在[2.5,5]區間
	if est.TailStat.MaxMed.Hat < 2.5 || est.TailStat.MaxMed.Hat > 5.0 {
		t.Fatalf("median max |x| got %.3f, outside [2.5,5]", est.TailStat.MaxMed.Hat)
	}
}

func TestEstimatorStreamFitEmpty(t *testing.T) {
	est := stats.EstimatorStreamFit(nil)
	if est == nil {
		t.Fatalf("nil estimator for empty input")
	}
}
