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

// gentables 離線產生 sdk/ziggurat 消耗的修改版 Ziggurat 表格。
//
// 產表流程：
//  1. 等面積階梯：矩形 i 滿足 x_i*(f(x_i)-f(x_{i-1})) = c，c = 總面積/256，
//     x_0 由 x_0*f(x_0) = c 釘住；解方程無解時停止，剩餘部分成為 cap 區段。
//  2. 區段權重：尾端面積 + 各 overhang 條帶面積（曲線下面積扣掉條帶底）；
//     恆等式保證權重總和 = (256-層數)*c，作為建表的 sanity check。
//  3. Vose alias 表：把 256 個權重壓成 ipmf（帶號門檻）與 map（重導向索引）。
//  4. 弦距界：逐層掃描正規化座標下曲線離弦線的最壞距離，乘 2^63 後上取整，
//     得到取樣時免算 exp 的接受門檻（exp 的 MaxIE、normal 的 Min/MaxIE）。
//
// 產出為 Go literal 檔（tables_exp.go / tables_norm.go），直接提交進版本庫；
// 正確性由 sdk/ziggurat 的統計測試把關。
//
// 注意：重新產表對環境敏感。階梯求解與弦距掃描大量依賴 libm 超越函數
// （exp/log/erfc），不同平台或 Go 版本的最後一個 ulp 可能不同，個別
// 表值（尤其 normMaxIE 這類取最壞值的掃描結果）會跟著飄移。提交在
// sdk/ziggurat 下的表格檔才是版本化的正本；重產後若只有末位差異，
// 保留提交版本即可，不要覆蓋。
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const two63 = 9223372036854775808.0 // 2^63

func main() {
	out := flag.String("out", "sdk/ziggurat", "output directory for generated table files")
	flag.Parse()

	expT := buildExp()
	normT := buildNorm()

	if err := os.WriteFile(filepath.Join(*out, "tables_exp.go"), []byte(expT.render()), 0o644); err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(*out, "tables_norm.go"), []byte(normT.render()), 0o644); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("emitted %s/tables_exp.go %s/tables_norm.go\n", *out, *out)
}

// ============================================================
// ** 通用求解 **
// ============================================================

// bisect 求 fn 的零點；約 200 次迭代可達浮點精度極限。
// rising 表示 fn 在區間內單調遞增。
func bisect(fn func(float64) float64, lo, hi float64, rising bool) float64 {
	for i := 0; i < 200; i++ {
		mid := 0.5 * (lo + hi)
		if mid == lo || mid == hi {
			break
		}
		if (fn(mid) < 0) == rising {
			lo = mid
		} else {
			hi = mid
		}
	}
	return 0.5 * (lo + hi)
}

// staircase 建等面積矩形階梯。
//
// 矩形 i 滿足 x_i*(f(x_i)-f(x_{i-1})) = c；xstar(yprev) 回傳方程左式的
// 極大值位置（搜尋區間的左界）。回傳層數 L 與補零/補一後的 X、Y（實值尺度）。
func staircase(f func(float64) float64, xstar func(float64) float64, c float64) (int, [256]float64, [256]float64) {
	var xs, ys [256]float64

	x0 := bisect(func(x float64) float64 { return x*f(x) - c }, xstar(0), 60.0, false)
	xs[0] = x0
	ys[0] = f(x0)

	L := 256
	for j := 1; j < 256; j++ {
		yprev := ys[j-1]
		xprev := xs[j-1]
		g := func(x float64) float64 { return x*(f(x)-yprev) - c }
		xo := xstar(yprev)
		if xo >= xprev || g(xo) < 0 {
			L = j
			break
		}
		xs[j] = bisect(g, xo, xprev, false)
		ys[j] = f(xs[j])
	}
	for j := L; j < 256; j++ {
		xs[j] = 0
		ys[j] = 1
	}
	return L, xs, ys
}

// voseAlias 以 Vose 演算法把權重壓成 (prob, alias)。
func voseAlias(w []float64) ([]float64, []uint8) {
	n := len(w)
	tot := 0.0
	for _, v := range w {
		tot += v
	}
	q := make([]float64, n)
	for i, v := range w {
		q[i] = v * float64(n) / tot
	}
	prob := make([]float64, n)
	alias := make([]uint8, n)
	for i := range alias {
		alias[i] = uint8(i)
	}
	var small, large []int
	for i := 0; i < n; i++ {
		if q[i] < 1.0 {
			small = append(small, i)
		} else {
			large = append(large, i)
		}
	}
	for len(small) > 0 && len(large) > 0 {
		s := small[len(small)-1]
		small = small[:len(small)-1]
		l := large[len(large)-1]
		large = large[:len(large)-1]
		prob[s] = q[s]
		alias[s] = uint8(l)
		q[l] = q[l] + q[s] - 1.0
		if q[l] < 1.0 {
			small = append(small, l)
		} else {
			large = append(large, l)
		}
	}
	for _, i := range append(small, large...) {
		prob[i] = 1.0
		alias[i] = uint8(i)
	}
	return prob, alias
}

// toIpmf 把接受機率轉成帶號 64-bit 門檻（取樣時與帶號亂數直接比較）。
func toIpmf(prob []float64) []int64 {
	out := make([]int64, len(prob))
	for i, t := range prob {
		r := math.Round(math.Ldexp(t, 64))
		v := r - two63
		switch {
		case v >= two63:
			out[i] = math.MaxInt64
		case v < -two63:
			out[i] = math.MinInt64
		default:
			out[i] = int64(v)
		}
	}
	return out
}

// maxGap 掃描弦線與曲線在各層正規化座標下的最壞距離。
//
// concave 為真時量曲線高出弦線的部分（凹段），否則量弦線高出曲線的部分（凸段）。
func maxGap(f func(float64) float64, xs, ys *[256]float64, jlo, jhi int, concave bool) float64 {
	worst := 0.0
	const n = 4096
	for j := jlo; j <= jhi; j++ {
		xl, xr := xs[j], xs[j-1]
		ylo, yhi := ys[j-1], ys[j]
		dy := yhi - ylo
		if xr == xl || dy == 0 {
			continue
		}
		for k := 0; k <= n; k++ {
			a := float64(k) / n
			bc := (f(xl+(xr-xl)*a) - ylo) / dy
			g := bc - (1.0 - a)
			if !concave {
				g = -g
			}
			if g > worst {
				worst = g
			}
		}
	}
	return worst
}

// 弦距 -> 接受門檻：乘 2^63 後上取整再加 1，保證保守。
func gapToIE(g float64) int64 {
	return int64(math.Ceil(g*two63)) + 1
}

// ============================================================
// ** 分布建表 **
// ============================================================

type tableSet struct {
	file    string
	consts  []string
	x, y    [256]float64 // real/2^63 尺度
	ipmf    []int64
	aliasM  []uint8
	xName   string
	yName   string
	ipmfNm  string
	aliasNm string
}

func buildExp() *tableSet {
	const c = 1.0 / 256.0
	f := func(x float64) float64 { return math.Exp(-x) }
	// x*(f(x)-yprev) 的極大值位置：exp(-x)(1-x) = yprev 的唯一解
	xstar := func(yprev float64) float64 {
		if yprev == 0 {
			return 1.0
		}
		return bisect(func(x float64) float64 { return math.Exp(-x)*(1.0-x) - yprev }, 1e-18, 1.0, false)
	}

	L, xs, ys := staircase(f, xstar, c)

	// 權重：尾端 + 各 overhang 條帶（指數曲線下面積有閉式）
	w := make([]float64, 256)
	w[0] = ys[0]
	for j := 1; j <= L; j++ {
		xr, xl := xs[j-1], xs[j]
		ylo := ys[j-1]
		w[j] = (ys[j] - ylo) - ylo*(xr-xl)
	}
	checkWeights("exp", w, L, c)

	prob, aliasM := voseAlias(w)
	maxIE := gapToIE(maxGap(f, &xs, &ys, 1, L, false))

	t := &tableSet{
		file: "tables_exp.go",
		consts: []string{
			fmt.Sprintf("expLayers = %d", L),
			fmt.Sprintf("expX0     = %s", fmtF(xs[0])),
			fmt.Sprintf("expMaxIE  = %d", maxIE),
		},
		ipmf: toIpmf(prob), aliasM: aliasM,
		xName: "expX", yName: "expY", ipmfNm: "expIpmf", aliasNm: "expMap",
	}
	for i := 0; i < 256; i++ {
		t.x[i] = xs[i] / two63
		t.y[i] = ys[i] / two63
	}
	return t
}

func buildNorm() *tableSet {
	c := math.Sqrt(2.0*math.Pi) / 512.0 // 半曲線面積 sqrt(pi/2) 除以 256
	f := func(x float64) float64 { return math.Exp(-0.5 * x * x) }
	xstar := func(yprev float64) float64 {
		if yprev == 0 {
			return 1.0
		}
		return bisect(func(x float64) float64 { return math.Exp(-0.5*x*x)*(1.0-x*x) - yprev }, 1e-18, 1.0, false)
	}

	L, xs, ys := staircase(f, xstar, c)

	// 反曲層：x=1 落在哪個條帶
	inflect := 0
	for j := 1; j < L; j++ {
		if xs[j] <= 1.0 && 1.0 < xs[j-1] {
			inflect = j
			break
		}
	}
	if inflect == 0 || xs[L-1] >= 1.0 {
		log.Fatal("gentables: normal staircase has no valid inflection layer")
	}

	// 權重：尾端與條帶曲線下面積以 erf 閉式計算
	sqrtHalfPi := math.Sqrt(0.5 * math.Pi)
	w := make([]float64, 256)
	w[0] = sqrtHalfPi * math.Erfc(xs[0]/math.Sqrt2)
	for j := 1; j <= L; j++ {
		xr, xl := xs[j-1], xs[j]
		ylo := ys[j-1]
		areaF := sqrtHalfPi * (math.Erf(xr/math.Sqrt2) - math.Erf(xl/math.Sqrt2))
		w[j] = areaF - ylo*(xr-xl)
	}
	checkWeights("norm", w, L, c)

	prob, aliasM := voseAlias(w)
	minIE := gapToIE(maxGap(f, &xs, &ys, 1, inflect-1, false))
	maxIE := gapToIE(maxGap(f, &xs, &ys, inflect+1, L, true))

	t := &tableSet{
		file: "tables_norm.go",
		consts: []string{
			fmt.Sprintf("normBins       = %d", L),
			fmt.Sprintf("normX0         = %s", fmtF(xs[0])),
			fmt.Sprintf("normInflection = %d", inflect),
			fmt.Sprintf("normMaxIE      = %d", maxIE),
			fmt.Sprintf("normMinIE      = %d", minIE),
		},
		ipmf: toIpmf(prob), aliasM: aliasM,
		xName: "normX", yName: "normY", ipmfNm: "normIpmf", aliasNm: "normMap",
	}
	for i := 0; i < 256; i++ {
		t.x[i] = xs[i] / two63
		t.y[i] = ys[i] / two63
	}
	return t
}

// checkWeights 驗證權重恆等式：sum(w) = (256-L)*c 且全數為正。
func checkWeights(name string, w []float64, L int, c float64) {
	sum := 0.0
	for _, v := range w {
		sum += v
	}
	want := float64(256-L) * c
	if math.Abs(sum-want) > 1e-12 {
		log.Fatalf("gentables: %s weight identity broken: sum=%.17g want=%.17g", name, sum, want)
	}
	for j := 0; j <= L; j++ {
		if w[j] <= 0 {
			log.Fatalf("gentables: %s piece %d has non-positive weight", name, j)
		}
	}
}

// ============================================================
// ** 輸出 **
// ============================================================

const fileHeader = `// Copyright 2025 Zintix Labs
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

// Code generated by cmd/gentables. DO NOT EDIT.

package ziggurat
`

func (t *tableSet) render() string {
	var b strings.Builder
	b.WriteString(fileHeader)
	b.WriteString("\nconst (\n")
	for _, c := range t.consts {
		b.WriteString("\t" + c + "\n")
	}
	b.WriteString(")\n\n")
	writeF64Array(&b, t.xName, &t.x)
	b.WriteString("\n")
	writeF64Array(&b, t.yName, &t.y)
	b.WriteString("\n")
	writeI64Array(&b, t.ipmfNm, t.ipmf)
	b.WriteString("\n")
	writeU8Array(&b, t.aliasNm, t.aliasM)
	return b.String()
}

// fmtF 以最短可往返表示輸出 float64 literal。
func fmtF(v float64) string {
	if v == 0 {
		return "0"
	}
	if v == 1 {
		return "1"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func writeF64Array(b *strings.Builder, name string, vals *[256]float64) {
	fmt.Fprintf(b, "var %s = [256]float64{\n", name)
	for i := 0; i < 256; i += 2 {
		fmt.Fprintf(b, "\t%s, %s,\n", fmtF(vals[i]), fmtF(vals[i+1]))
	}
	b.WriteString("}\n")
}

func writeI64Array(b *strings.Builder, name string, vals []int64) {
	fmt.Fprintf(b, "var %s = [256]int64{\n", name)
	for i := 0; i < 256; i += 4 {
		fmt.Fprintf(b, "\t%d, %d, %d, %d,\n", vals[i], vals[i+1], vals[i+2], vals[i+3])
	}
	b.WriteString("}\n")
}

func writeU8Array(b *strings.Builder, name string, vals []uint8) {
	fmt.Fprintf(b, "var %s = [256]uint8{\n", name)
	for i := 0; i < 256; i += 16 {
		parts := make([]string, 16)
		for k := 0; k < 16; k++ {
			parts[k] = strconv.Itoa(int(vals[i+k]))
		}
		fmt.Fprintf(b, "\t%s,\n", strings.Join(parts, ", "))
	}
	b.WriteString("}\n")
}
