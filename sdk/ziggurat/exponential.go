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

import "math"

// Exponential 回傳一個標準指數分布（rate = 1）的取樣值。
//
// 熱路徑：一次 Uint64()，低 8 bits 選層。層索引 < expLayers 時直接命中矩形，
// 剩餘 63 bits 乘上該層寬度即為結果。
//
// 慢路徑：以 alias 表選出 overhang 區段；選到 0 表示落入尾端，
// 利用指數分布的無記憶性把座標平移 X0 後重抽（迴圈取代遞迴，深度有界於幾何分布）。
func Exponential(src Source) float64 {
	shift := 0.0
	for {
		r := src.Uint64()
		i := r & 0xFF
		if i < expLayers {
			return shift + expX[i]*float64(r&u63Mask)
		}
		j := expSelect(src)
		if j > 0 {
			return shift + expOverhang(src, j)
		}
		// 尾端：整條曲線在 x >= X0 處自相似，平移後重來
		shift += expX0
	}
}

// expSelect 依 overhang 面積比例選出區段索引（0 代表尾端）。
func expSelect(src Source) uint64 {
	r := int64(src.Uint64())
	j := uint64(r) & 0xFF
	if r >= expIpmf[j] {
		return uint64(expMap[j])
	}
	return j
}

// expOverhang 在第 j 段 overhang（曲線與矩形頂之間的弦上區域）內取樣。
//
// 兩個 63-bit 均勻數經「取小者、差值」轉換後均勻分布在下三角上；
// 差值 >= expMaxIE 表示候選點離弦線超過整段最壞曲弦距，必在曲線下方，免做密度測試。
// 指數曲線在每段皆為凸，弦線恆在曲線上方，此捷徑是保守且正確的。
func expOverhang(src Source, j uint64) float64 {
	for {
		u1 := int64(src.Uint64() & u63Mask)
		uDiff := int64(src.Uint64()&u63Mask) - u1
		if uDiff < 0 {
			uDiff = -uDiff
			u1 -= uDiff
		}
		x := sampleX(&expX, j, u1)
		if uDiff >= expMaxIE {
			return x
		}
		if sampleY(&expY, j, mirror(u1+uDiff)) <= math.Exp(-x) {
			return x
		}
	}
}
