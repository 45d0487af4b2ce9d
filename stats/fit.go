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
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"
)

// ============================================================
// ** 結構宣告 **
// ============================================================

// 多流模擬品質評估
type EstimatorStreams struct {
	MeanStat MeanStat
	FitStat  FitStat
	TailStat TailStat
}

// 標準化平均敘事
type MeanStat struct {
	ZMedian PointStat // 描述各流z分數的中位數
	ZPerc   ZPerc     // 描述各流z分數的分布
	ZBand   ZBand     // 描述z分數落在常態帶內的比例
}

// 用流分位數視角看: 最偏10%的z 最偏33%的z ...
type ZPerc struct {
	ZP10 PointStat
	ZP33 PointStat
	ZP67 PointStat
	ZP90 PointStat
}

// 用z分數帶視角看流: 有多少流的|z|落在1/2/3個標準誤內
type ZBand struct {
	Within1 PointStat
	Within2 PointStat
	Within3 PointStat
}

// PointStat 點估計 回傳 估計值 以及信賴區間
type PointStat struct {
	Hat float64
	CI  CI
}

// 落桶擬合敘事
type FitStat struct {
	BucketLabel []string    // 分桶標籤
	Observed    []PointStat // 匯總後各桶觀測密度點估計
	Theory      []float64   // 各桶理論機率
	MaxAbsDev   float64     // 最大絕對偏差
}

// 尾部敘事
type TailStat struct {
	TailSeen PointStat // 有樣本落入尾桶的流比例
	MaxMed   PointStat // 各流最大絕對樣本值的中位數
}

// ============================================================
// ** 對外 : 多流模擬品質評估 **
// ============================================================

// EstimatorStreamFit 多流模擬品質評估
//
// 1. Mean 敘事 : 把各流的平均標準化成z分數,描述z的分布是否符合抽樣理論
//
// 2. Fit 敘事 : 匯總各流的落桶計數,逐桶對照理論機率
//
// 3. Tail 敘事 : 描述尾部樣本的出現率與極值水準
func EstimatorStreamFit(sts []*SampleReport) *EstimatorStreams {
	// 0. 防禦：空輸入
	n := len(sts)
	out := &EstimatorStreams{}
	if n == 0 {
		return out
	}

	dist := sts[0].Summary.Dist
	m0, sd0 := theoreticalMoments(dist)

	// ------------------------------------------------------------
	// 1) Mean 敘事：收集每流 z 分數並做分位/CI
	// ------------------------------------------------------------
	zs := make([]float64, n)
	for i, s := range sts {
		ns := s.Moment.N
		if ns == 0 {
			zs[i] = 0
			continue
		}
		se := sd0 / math.Sqrt(float64(ns))
		zs[i] = (s.Mean() - m0) / se
	}

	// 中位數 (點估計 + 95% CI)
	medHat := quantilePoint(zs, 0.5)
	medLo, medHi := quantileCI(zs, 0.5, 0.95)

	// P10, P33, P67, P90 (點估計 + 95% CI)
	p10Hat := quantilePoint(zs, 0.10)
	p10Lo, p10Hi := quantileCI(zs, 0.10, 0.95)

	p33Hat := quantilePoint(zs, 1.0/3.0)
	p33Lo, p33Hi := quantileCI(zs, 1.0/3.0, 0.95)

	p67Hat := quantilePoint(zs, 2.0/3.0)
	p67Lo, p67Hi := quantileCI(zs, 2.0/3.0, 0.95)

	p90Hat := quantilePoint(zs, 0.90)
	p90Lo, p90Hi := quantileCI(zs, 0.90, 0.95)

	// z 帶內比例：|z| ≤ 1/2/3 的流比例（CP 95% CI）
	var w1, w2, w3 int
	for _, z := range zs {
		a := math.Abs(z)
		if a <= 1 {
			w1++
		}
		if a <= 2 {
			w2++
		}
		if a <= 3 {
			w3++
		}
	}
	w1Hat, w1CI := proportionCICP(w1, n, 0.95)
	w2Hat, w2CI := proportionCICP(w2, n, 0.95)
	w3Hat, w3CI := proportionCICP(w3, n, 0.95)

	out.MeanStat = MeanStat{
		ZMedian: PointStat{Hat: medHat, CI: CI{Lo: medLo, Hi: medHi}},
		ZPerc: ZPerc{
			ZP10: PointStat{Hat: p10Hat, CI: CI{Lo: p10Lo, Hi: p10Hi}},
			ZP33: PointStat{Hat: p33Hat, CI: CI{Lo: p33Lo, Hi: p33Hi}},
			ZP67: PointStat{Hat: p67Hat, CI: CI{Lo: p67Lo, Hi: p67Hi}},
			ZP90: PointStat{Hat: p90Hat, CI: CI{Lo: p90Lo, Hi: p90Hi}},
		},
		ZBand: ZBand{
			Within1: PointStat{Hat: w1Hat, CI: w1CI},
			Within2: PointStat{Hat: w2Hat, CI: w2CI},
			Within3: PointStat{Hat: w3Hat, CI: w3CI},
		},
	}

	// ------------------------------------------------------------
	// 2) Fit 敘事：匯總落桶計數,逐桶對照理論機率
	// ------------------------------------------------------------
	hist := Buckets.GetByDist(dist)
	labels := hist.Labels()
	L := len(labels)
	theory := hist.TheoreticalProbs(theoreticalCDF(dist))

	pooled := make([]int, L)
	total := 0
	for _, s := range sts {
		total += s.Moment.N
		for bi := 0; bi < L && bi < len(s.Dist.Collect); bi++ {
			pooled[bi] += s.Dist.Collect[bi]
		}
	}

	observed := make([]PointStat, L)
	maxDev := 0.0
	for bi := 0; bi < L; bi++ {
		hat, ci := proportionCICP(pooled[bi], total, 0.95)
		observed[bi] = PointStat{Hat: hat, CI: ci}
		if dev := math.Abs(hat - theory[bi]); dev > maxDev {
			maxDev = dev
		}
	}

	out.FitStat = FitStat{
		BucketLabel: labels,
		Observed:    observed,
		Theory:      theory,
		MaxAbsDev:   maxDev,
	}

	// ------------------------------------------------------------
	// 3) Tail 敘事：尾桶出現率 + 各流極值中位數
	// ------------------------------------------------------------
	tailK := 0
	maxAbs := make([]float64, n)
	for i, s := range sts {
		seen := false
		if len(s.Dist.Collect) == L {
			if s.Dist.Collect[L-1] > 0 {
				seen = true
			}
			if dist == "normal" && s.Dist.Collect[0] > 0 {
				seen = true
			}
		}
		if seen {
			tailK++
		}
		maxAbs[i] = math.Max(math.Abs(s.Moment.MinV), math.Abs(s.Moment.MaxV))
	}

	tailHat, tailCI := proportionCICP(tailK, n, 0.95)
	maxMedHat := quantilePoint(maxAbs, 0.5)
	maxMedLo, maxMedHi := quantileCI(maxAbs, 0.5, 0.95)

	out.TailStat = TailStat{
		TailSeen: PointStat{Hat: tailHat, CI: tailCI},
		MaxMed:   PointStat{Hat: maxMedHat, CI: CI{Lo: maxMedLo, Hi: maxMedHi}},
	}

	return out
}

// ============================================================
// ** 內部統計函數 **
// ============================================================

// theoreticalMoments 回傳分布的理論平均與標準差
func theoreticalMoments(dist string) (mean float64, std float64) {
	if dist == "exp" {
		d := distuv.Exponential{Rate: 1}
		return d.Mean(), d.StdDev()
	}
	d := distuv.Normal{Mu: 0, Sigma: 1}
	return d.Mean(), d.StdDev()
}

// theoreticalCDF 回傳分布的理論CDF
func theoreticalCDF(dist string) func(float64) float64 {
	if dist == "exp" {
		d := distuv.Exponential{Rate: 1}
		return d.CDF
	}
	d := distuv.Normal{Mu: 0, Sigma: 1}
	return d.CDF
}

// Clopper–Pearson exact CI for binomial proportion (k successes out of n)
func proportionCICP(k int, n int, confidence float64) (pHat float64, ci CI) {
	if n == 0 {
		return 0, CI{0, 1}
	}
	alpha := 1 - confidence
	pHat = float64(k) / float64(n)

	// Beta PPF 映射，處理邊界
	if k == 0 {
		ci.Lo = 0
	} else {
		b := distuv.Beta{Alpha: float64(k), Beta: float64(n - k + 1)}
		ci.Lo = b.Quantile(alpha / 2)
	}
	if k == n {
		ci.Hi = 1
	} else {
		b := distuv.Beta{Alpha: float64(k + 1), Beta: float64(n - k)}
		ci.Hi = b.Quantile(1 - alpha/2)
	}
	return
}

// 想估「第 q 分位」的上下界。做法：把 order statistic 的秩視為二項→Beta 反推 p 範圍，再把 p 轉回樣本索引。
// 回傳 (loValue, hiValue)
func quantileCI(data []float64, q, confidence float64) (float64, float64) {
	n := len(data)
	if n == 0 {
		return 0, 0
	}
	cp := make([]float64, n)
	copy(cp, data)
	sort.Float64s(cp)

	alpha := 1 - confidence
	k := int(q * float64(n))
	if k < 1 {
		k = 1
	} else if k > n-1 {
		k = n - 1
	}

	// 以 CP 思想反推 p 範圍
	bLo := distuv.Beta{Alpha: float64(k), Beta: float64(n - k + 1)}
	bHi := distuv.Beta{Alpha: float64(k + 1), Beta: float64(n - k)}
	pLo := bLo.Quantile(alpha / 2)
	pHi := bHi.Quantile(1 - alpha/2)

	li := int(pLo * float64(n))
	ui := int(pHi * float64(n))
	if ui > 0 {
		ui -= 1
	}
	if li < 0 {
		li = 0
	}
	if li > n-1 {
		li = n - 1
	}
	if ui < 0 {
		ui = 0
	}
	if ui > n-1 {
		ui = n - 1
	}
	return cp[li], cp[ui]
}

// quantilePoint returns the empirical quantile point estimate at q.
func quantilePoint(data []float64, q float64) float64 {
	n := len(data)
	if n == 0 {
		return 0
	}
	cp := make([]float64, n)
	copy(cp, data)
	sort.Float64s(cp)
	// 最近秩法
	idx := int(q * float64(n))
	if idx < 0 {
		idx = 0
	}
	if idx > n-1 {
		idx = n - 1
	}
	return cp[idx]
}

// ============================================================
// ** 輸出函數 **
// ============================================================

func (est *EstimatorStreams) Out() {
	// 1) Mean (standardized stream means)
	fmt.Println("=== Mean (standardized stream means) ===")
	zKeys := []string{
		"Median z",
		"P10 z",
		"P33 z",
		"P67 z",
		"P90 z",
		"|z| ≤ 1 (streams)",
		"|z| ≤ 2 (streams)",
		"|z| ≤ 3 (streams)",
	}
	zMsg := map[string]string{
		"Median z":          fmtHatCI(est.MeanStat.ZMedian.Hat, est.MeanStat.ZMedian.CI),
		"P10 z":             fmtHatCI(est.MeanStat.ZPerc.ZP10.Hat, est.MeanStat.ZPerc.ZP10.CI),
		"P33 z":             fmtHatCI(est.MeanStat.ZPerc.ZP33.Hat, est.MeanStat.ZPerc.ZP33.CI),
		"P67 z":             fmtHatCI(est.MeanStat.ZPerc.ZP67.Hat, est.MeanStat.ZPerc.ZP67.CI),
		"P90 z":             fmtHatCI(est.MeanStat.ZPerc.ZP90.Hat, est.MeanStat.ZPerc.ZP90.CI),
		"|z| ≤ 1 (streams)": fmtHatCIpct01(est.MeanStat.ZBand.Within1.Hat, est.MeanStat.ZBand.Within1.CI),
		"|z| ≤ 2 (streams)": fmtHatCIpct01(est.MeanStat.ZBand.Within2.Hat, est.MeanStat.ZBand.Within2.CI),
		"|z| ≤ 3 (streams)": fmtHatCIpct01(est.MeanStat.ZBand.Within3.Hat, est.MeanStat.ZBand.Within3.CI),
	}
	printFitTable("Mean (standardized stream means)", zKeys, zMsg)

	// 2) Fit: pooled bucket densities vs theory
	fmt.Println("\n=== Fit: pooled bucket densities vs theory ===")
	fmt.Printf("max |observed - theory| = %.6f\n", est.FitStat.MaxAbsDev)
	for i, label := range est.FitStat.BucketLabel {
		ob := est.FitStat.Observed[i]
		fmt.Printf("%-16s : obs %s | theory %s\n", label,
			fmtHatCIpct01(ob.Hat, ob.CI), fmtPct01(est.FitStat.Theory[i]))
	}

	// 3) Tail
	fmt.Println("\n=== Tail ===")
	tailKeys := []string{"Tail seen", "Median max|x|"}
	tailMsg := map[string]string{
		"Tail seen":     fmtHatCIpct01(est.TailStat.TailSeen.Hat, est.TailStat.TailSeen.CI),
		"Median max|x|": fmtHatCI(est.TailStat.MaxMed.Hat, est.TailStat.MaxMed.CI),
	}
	printFitTable("Tail", tailKeys, tailMsg)
}

func printFitTable(title string, keys []string, msg map[string]string) {
	fmt.Println(title)
	maxKeyLen := 0
	for _, k := range keys {
		if len(k) > maxKeyLen {
			maxKeyLen = len(k)
		}
	}
	for _, k := range keys {
		fmt.Printf("  %-*s : %s\n", maxKeyLen, k, msg[k])
	}
}

func fmtPct01(x float64) string {
	return fmt.Sprintf("%.2f%%", x*100)
}

func fmtHatCIpct01(hat float64, ci CI) string {
	return fmt.Sprintf("%s [%s, %s]", fmtPct01(hat), fmtPct01(ci.Lo), fmtPct01(ci.Hi))
}

func fmtHatCI(hat float64, ci CI) string {
	return fmt.Sprintf("%.4f [%.4f, %.4f]", hat, ci.Lo, ci.Hi)
}
