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

// Normal 回傳一個標準常態分布（mean 0, stddev 1）的取樣值。
//
// 熱路徑：一次 Uint64()，低 8 bits 選層；命中矩形時把整個 64-bit 字
// 當作帶號座標乘上層寬，直接得到對稱的正負值（不需額外的符號判定）。
//
// 慢路徑依 overhang 區段的曲率分派：
//   - j == 0：尾端。以 rate X0 的指數截尾取樣（兩個指數 + von Neumann 接受）。
//   - j < normInflection：凸段。弦線在曲線上方，差值 > normMinIE 時必接受。
//   - j == normInflection：含反曲點的一段，凹凸皆有，只能做完整密度測試。
//   - j > normInflection：凹段。弦線在曲線下方，落在下三角（差值 >= 0）必接受；
//     超出三角但距弦不超過 normMaxIE 的帶狀區域再做密度測試。
//
// 符號取自首個 64-bit 字遮罩後的 bit 8（層選擇與座標之外的獨立位元）。
func Normal(src Source) float64 {
	u1 := src.Uint64()
	i := u1 & 0xFF
	if i < normBins {
		return normX[i] * float64(int64(u1))
	}

	u := int64(u1 & u63Mask)
	sign := -1.0
	if u&0x100 != 0 {
		sign = 1.0
	}

	var x float64
	switch j := normSelect(src); {
	case j > normInflection:
		// 凹段：uDiff >= 0 落在下三角內，必在曲線下方
		for {
			x = sampleX(&normX, j, u)
			uDiff := int64(src.Uint64()&u63Mask) - u
			if uDiff >= 0 {
				break
			}
			if uDiff >= -normMaxIE {
				if sampleY(&normY, j, mirror(u+uDiff)) < math.Exp(-0.5*x*x) {
					break
				}
			}
			u = int64(src.Uint64() & u63Mask)
		}
	case j == 0:
		// 尾端：exponential(rate=X0) 截尾 + von Neumann 接受
		for {
			x = Exponential(src) / normX0
			if Exponential(src) >= 0.5*x*x {
				break
			}
		}
		x += normX0
	case j < normInflection:
		// 凸段：差值夠大（離弦夠遠）必接受，否則退回密度測試
		for {
			uDiff := int64(src.Uint64()&u63Mask) - u
			if uDiff < 0 {
				uDiff = -uDiff
				u -= uDiff
			}
			x = sampleX(&normX, j, u)
			if uDiff > normMinIE {
				break
			}
			if sampleY(&normY, j, mirror(u+uDiff)) < math.Exp(-0.5*x*x) {
				break
			}
			u = int64(src.Uint64() & u63Mask)
		}
	default:
		// 反曲段：無曲率保證，直接抽縱座標做密度測試
		for {
			x = sampleX(&normX, j, u)
			if sampleY(&normY, j, int64(src.Uint64()&u63Mask)) < math.Exp(-0.5*x*x) {
				break
			}
			u = int64(src.Uint64() & u63Mask)
		}
	}
	return sign * x
}

// normSelect 依 overhang 面積比例選出區段索引（0 代表尾端）。
func normSelect(src Source) uint64 {
	r := int64(src.Uint64())
	j := uint64(r) & 0xFF
	if r >= normIpmf[j] {
		return uint64(normMap[j])
	}
	return j
}
