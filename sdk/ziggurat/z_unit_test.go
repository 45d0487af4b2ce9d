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

package ziggurat

import (
	"math"
	"testing"
)

// smSource 是測試專用的最小 Source（splitmix64 計數器流）。
type smSource struct{ state uint64 }

func (s *smSource) Uint64() uint64 {
	s.state += 0x9e3779b97f4a7c15
	x := s.state
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

func TestTablesMonotone(t *testing.T) {
	// X 遞減、Y 遞增是取樣幾何的前提（只檢查有效層區,表尾是padding）
	for i := 1; i < int(normBins); i++ {
		if !(normX[i] < normX[i-1]) {
			t.Fatalf("normX not strictly decreasing at %d", i)
		}
		if !(normY[i] >= normY[i-1]) {
			t.Fatalf("normY not non-decreasing at %d", i)
		}
	}
	for i := 1; i < int(expLayers); i++ {
		if !(expX[i] < expX[i-1]) {
			t.Fatalf("expX not strictly decreasing at %d", i)
		}
		if !(expY[i] >= expY[i-1]) {
			t.Fatalf("expY not non-decreasing at %d", i)
		}
	}
	// 表格尺度為 real/2^63：X[0]*2^63 應還原到分布的有效支撐範圍
	if got := normX[0] * (1 << 63); math.Abs(got-normX0) > 0.05 {
		t.Fatalf("normX[0] rescaled to %.6f, far from X0 %.6f", got, normX0)
	}
	if got := expX[0] * (1 << 63); math.Abs(got-expX0) > 0.05 {
		t.Fatalf("expX[0] rescaled to %.6f, far from X0 %.6f", got, expX0)
	}
}

func TestNormalDeterministic(t *testing.T) {
	a := &smSource{state: 99}
	b := &smSource{state: 99}
	for i := 0; i < 10000; i++ {
		if Normal(a) != Normal(b) {
			t.Fatalf("normal stream diverged at %d", i)
		}
	}
}

func TestNormalSampleQuality(t *testing.T) {
	src := &smSource{state: 1}
	const n = 1000000
	var sum, sumSq float64
	neg := 0
	for i := 0; i < n; i++ {
		x := Normal(src)
		if math.IsNaN(x) || math.IsInf(x, 0) {
			t.Fatalf("normal produced %v at %d", x, i)
		}
		if math.Abs(x) > 10 {
			t.Fatalf("normal produced implausible %v at %d", x, i)
		}
		if x < 0 {
			neg++
		}
		sum += x
		sumSq += x * x
	}
	mean := sum / n
	variance := sumSq/n - mean*mean

	// se(mean)=1/sqrt(n)=0.001 取10倍餘裕
	if math.Abs(mean) > 0.01 {
		t.Fatalf("normal mean %.5f, want ~0", mean)
	}
	if math.Abs(variance-1) > 0.02 {
		t.Fatalf("normal variance %.5f, want ~1", variance)
	}
	frac := float64(neg) / n
	if math.Abs(frac-0.5) > 0.01 {
		t.Fatalf("negative fraction %.4f, want ~0.5", frac)
	}
}

func TestExponentialDeterministic(t *testing.T) {
	a := &smSource{state: 42}
	b := &smSource{state: 42}
	for i := 0; i < 10000; i++ {
		if Exponential(a) != Exponential(b) {
			t.Fatalf("exp stream diverged at %d", i)
		}
	}
}

func TestExponentialSampleQuality(t *testing.T) {
	src := &smSource{state: 3}
	const n = 1000000
	var sum, sumSq float64
	for i := 0; i < n; i++ {
		x := Exponential(src)
		if x < 0 || math.IsNaN(x) || math.IsInf(x, 0) {
			t.Fatalf("exp produced %v at %d", x, i)
		}
		sum += x
		sumSq += x * x
	}
	mean := sum / n
	variance := sumSq/n - mean*mean

	// rate=1 => mean=1, var=1; se(mean)=1/sqrt(n)=0.001
	if math.Abs(mean-1) > 0.01 {
		t.Fatalf("exp mean %.5f, want ~1", mean)
	}
	if math.Abs(variance-1) > 0.02 {
		t.Fatalf("exp variance %.5f, want ~1", variance)
	}
}

func TestExponentialTailShift(t *testing.T) {
	// 尾端平移不應產生 X0 附近的空洞: 大量樣本中應出現 > X0 的值
	src := &smSource{state: 7}
	seenTail := false
	for i := 0; i < 2000000 && !seenTail; i++ {
		if Exponential(src) > expX0 {
			seenTail = true
		}
	}
	// P(X > 7.569) ≈ 5.17e-4，兩百萬樣本不出現的機率可忽略
	if !seenTail {
		t.Fatalf("no sample beyond tail start %v", expX0)
	}
}
