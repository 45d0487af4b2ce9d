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

// Package ziggurat 實作修改版 Ziggurat（McFarland 變體）的常態與指數取樣。
//
// 與經典 Ziggurat 的差異：
//   - 以 256 個「等面積」矩形鋪滿密度曲線下方（矩形層數由遞迴方程可解的深度決定，
//     不足 256 的部分由一個 cap 區段補滿），而非經典版的不等面積層。
//   - 矩形命中時直接用 64-bit 字的低 8 bits 選層、其餘 bits 當座標，
//     一次 Uint64() 就能出值（熱路徑零分支誤差、零浮點除法）。
//   - 未命中矩形時，用 Ipmf/Map（alias 表）依面積比例選出 overhang 區段，
//     在區段內以兩個 63-bit 均勻數構成的「下三角」座標作幾何判定；
//     大多數候選點離弦線夠遠（MaxIE/MinIE 門檻），免算 exp 就能接受。
//
// 表格（tables_exp.go / tables_norm.go）由 cmd/gentables 離線產生後直接提交；
// X/Y 以 real/2^63 的尺度儲存，乘上 63-bit 整數座標即還原實際值。
package ziggurat

// Source 是取樣器需要的最小亂數來源。
//
// 任何能輸出均勻 uint64 的產生器都可以接上來；sdk/core 的 PRNG 合約是其超集。
type Source interface {
	Uint64() uint64
}

const u63Mask = (1 << 63) - 1

// sampleX 在第 j 段 overhang 的水平區間 [X[j], X[j-1]] 內取點。
// u 是 63-bit 座標；表格尺度為 real/2^63，故 X[j]*2^63 還原左端實值。
func sampleX(x *[256]float64, j uint64, u int64) float64 {
	return x[j]*(1<<63) + (x[j-1]-x[j])*float64(u)
}

// sampleY 在第 j 段 overhang 的垂直區間 [Y[j-1], Y[j]] 內取點。
func sampleY(y *[256]float64, j uint64, u int64) float64 {
	return y[j-1]*(1<<63) + (y[j]-y[j-1])*float64(u)
}

// mirror 把 63-bit 座標 s 映成 2^63 - s（三角座標的對角翻轉）。
func mirror(s int64) int64 {
	return int64(uint64(1)<<63 - uint64(s))
}
