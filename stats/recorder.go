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

package stats

import (
	"encoding/binary"
	"math"
)

// Recorder 單流抽樣累積器
//
// 以一趟式動差累積(Welford)紀錄樣本,不保留原始樣本。
// 多流平行模擬時各 worker 各持一個 Recorder,結束後用 Merge 合併。
//
// 非併發安全,單一goroutine內使用
type Recorder struct {
	dist string
	seed int64
	hist *Histogram

	n    int
	mu   float64
	m2   float64
	m3   float64
	m4   float64
	minV float64
	maxV float64

	collect []int
}

func NewRecorder(dist string, seed int64) *Recorder {
	h := Buckets.GetByDist(dist)
	return &Recorder{
		dist:    dist,
		seed:    seed,
		hist:    h,
		minV:    math.Inf(1),
		maxV:    math.Inf(-1),
		collect: make([]int, h.Size()),
	}
}

// Push 紀錄單一樣本
func (r *Recorder) Push(x float64) {
	r.n++
	n := float64(r.n)

	delta := x - r.mu
	deltaN := delta / n
	deltaN2 := deltaN * deltaN
	term1 := delta * deltaN * (n - 1)

	r.mu += deltaN
	r.m4 += term1*deltaN2*(n*n-3*n+3) + 6*deltaN2*r.m2 - 4*deltaN*r.m3
	r.m3 += term1*deltaN*(n-2) - 3*deltaN*r.m2
	r.m2 += term1

	if x < r.minV {
		r.minV = x
	}
	if x > r.maxV {
		r.maxV = x
	}
	r.collect[r.hist.Index(x)]++
}

// PushAll 紀錄一批樣本
func (r *Recorder) PushAll(xs []float64) {
	for _, x := range xs {
		r.Push(x)
	}
}

// PushFloat32Bytes 紀錄一批原生位元組序的float32樣本
//
// 位元組長度必須是4的倍數,多餘的尾端位元組會被忽略
func (r *Recorder) PushFloat32Bytes(b []byte) {
	for len(b) >= 4 {
		bits := binary.NativeEndian.Uint32(b)
		r.Push(float64(math.Float32frombits(bits)))
		b = b[4:]
	}
}

// N 回傳已紀錄的樣本數
func (r *Recorder) N() int {
	return r.n
}

// Merge 將另一個 Recorder 的累積結果併入
//
// 兩個 Recorder 必須使用相同的dist,否則落桶計數會錯位
func (r *Recorder) Merge(o *Recorder) {
	if o == nil || o.n == 0 {
		return
	}
	if r.n == 0 {
		r.n = o.n
		r.mu = o.mu
		r.m2 = o.m2
		r.m3 = o.m3
		r.m4 = o.m4
		r.minV = o.minV
		r.maxV = o.maxV
		copy(r.collect, o.collect)
		return
	}

	na := float64(r.n)
	nb := float64(o.n)
	n := na + nb
	delta := o.mu - r.mu
	delta2 := delta * delta

	m2 := r.m2 + o.m2 + delta2*na*nb/n
	m3 := r.m3 + o.m3 + delta*delta2*na*nb*(na-nb)/(n*n) +
		3*delta*(na*o.m2-nb*r.m2)/n
	m4 := r.m4 + o.m4 + delta2*delta2*na*nb*(na*na-na*nb+nb*nb)/(n*n*n) +
		6*delta2*(na*na*o.m2+nb*nb*r.m2)/(n*n) +
		4*delta*(na*o.m3-nb*r.m3)/n

	r.mu += delta * nb / n
	r.m2 = m2
	r.m3 = m3
	r.m4 = m4
	r.n += o.n

	if o.minV < r.minV {
		r.minV = o.minV
	}
	if o.maxV > r.maxV {
		r.maxV = o.maxV
	}
	for i, c := range o.collect {
		if i < len(r.collect) {
			r.collect[i] += c
		}
	}
}

// Report 輸出統計報告
//
// 回傳的報告尚未 Done(),呼叫端可以繼續 Merge 其他報告後再結算
func (r *Recorder) Report() *SampleReport {
	minV := r.minV
	maxV := r.maxV
	if r.n == 0 {
		minV = 0
		maxV = 0
	}
	collect := make([]int, len(r.collect))
	copy(collect, r.collect)

	return &SampleReport{
		Summary: &SummaryReport{
			Dist: r.dist,
			Seed: r.seed,
		},
		Moment: &MomentReport{
			N:    r.n,
			Mu:   r.mu,
			M2:   r.m2,
			M3:   r.m3,
			M4:   r.m4,
			MinV: minV,
			MaxV: maxV,
		},
		Dist: &DistReport{
			BucketLabel: r.hist.Labels(),
			Collect:     collect,
		},
	}
}
