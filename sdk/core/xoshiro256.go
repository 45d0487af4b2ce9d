// Package core implements the xoshiro256** random number generator.
//
// The xoshiro256** algorithm is designed by David Blackman and
// Sebastiano Vigna. Portions of the bounded random generation logic
// (UintN/IntN) are adapted from the Go standard library (math/rand),
// which is licensed under the BSD 3-Clause License.

package core

import (
	"crypto/rand"
	"encoding/binary"
	"math"
	"math/big"
	"math/bits"

	"github.com/zintix-labs/randlab/errs"
)

const is32bit = ^uint(0)>>32 == 0

const xoshiroStateSize = 32 // 4 * uint64

// Xoshiro256 亂數產生器
//
// 256-bit 狀態、全週期 2^256-1；輸出函數 starstar 對低位元的線性缺陷做了打散，
// 低 8 bits 可以安全地直接當索引使用（Ziggurat 取樣依賴這點）。
//
// 非加密用途：輸出流可被觀測者重建，請勿用於任何安全場景。
type Xoshiro256 struct {
	s [4]uint64
}

// newXoshiro256 使用加密隨機來源產生 seed，建立新的 Xoshiro256 實例。
func newXoshiro256() *Xoshiro256 {
	seed, _ := rand.Int(rand.Reader, big.NewInt(math.MaxInt64))
	return newXoshiro256WithSeed(seed.Int64())
}

// newXoshiro256WithSeed 以指定 seed 建立新的 Xoshiro256 實例。
//
// 以 splitmix64 展開成 256-bit 初始狀態：四次展開的輸出彼此獨立打散，
// 即使 seed 只差 1 個 bit，初始狀態也完全不相關。
// splitmix64 不可能輸出連續四個 0，因此展開後必非全零狀態。
func newXoshiro256WithSeed(seed int64) *Xoshiro256 {
	x := &Xoshiro256{}
	sm := uint64(seed)
	for i := range x.s {
		sm += 0x9e3779b97f4a7c15
		x.s[i] = splitmix64(sm)
	}
	return x
}

//---------------------------------------
// 回傳方法
//---------------------------------------

// Uint64 回傳非負整數uint64亂數
func (r *Xoshiro256) Uint64() uint64 {
	result := bits.RotateLeft64(r.s[1]*5, 7) * 9

	t := r.s[1] << 17
	r.s[2] ^= r.s[0]
	r.s[3] ^= r.s[1]
	r.s[1] ^= r.s[2]
	r.s[0] ^= r.s[3]
	r.s[2] ^= t
	r.s[3] = bits.RotateLeft64(r.s[3], 45)

	return result
}

// Uint63 回傳 [0, 2^63) 的亂數（高位清零）。
func (r *Xoshiro256) Uint63() uint64 {
	return r.Uint64() & (1<<63 - 1)
}

// UintN 產出[0,n) 的uint整數，若 max == 0 回傳 0
func (r *Xoshiro256) UintN(max uint) uint {
	if max == 0 {
		return 0
	}
	return uint(r.uint64n(uint64(max)))
}

// IntN 產出[0,n) 的整數，若 max <= 0 回傳 -1
func (r *Xoshiro256) IntN(max int) int {
	if max <= 0 {
		return -1
	}
	return int(r.uint64n(uint64(max)))
}

// Float64 產出float64(53bits精度)
func (r *Xoshiro256) Float64() float64 {
	return float64(r.Uint64()<<11>>11) / (1 << 53)
}

// Restore 恢復內部狀態
//
// 只接受 Snapshot() 產出的 32-byte 格式；全零狀態是 xoshiro 的不動點，直接拒絕。
func (r *Xoshiro256) Restore(data []byte) error {
	if len(data) != xoshiroStateSize {
		return errs.Warnf("xoshiro256 state must be %d bytes, got %d", xoshiroStateSize, len(data))
	}
	var s [4]uint64
	for i := range s {
		s[i] = binary.LittleEndian.Uint64(data[i*8:])
	}
	if s[0]|s[1]|s[2]|s[3] == 0 {
		return errs.NewWarn("xoshiro256 state must not be all zero")
	}
	r.s = s
	return nil
}

// Snapshot 取得當下內部狀態
func (r *Xoshiro256) Snapshot() ([]byte, error) {
	out := make([]byte, xoshiroStateSize)
	for i, v := range r.s {
		binary.LittleEndian.PutUint64(out[i*8:], v)
	}
	return out, nil
}

//---------------------------------------
// 內部方法
//---------------------------------------

// splitmix64 將輸入值混洗成新的 64-bit 狀態，用於種子展開。
func splitmix64(x uint64) uint64 {
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// uint64n 回傳 [0,n) 的無偏亂數（基於乘法高位與拒絕採樣）。
func (r *Xoshiro256) uint64n(n uint64) uint64 {
	if is32bit && uint64(uint32(n)) == n {
		return uint64(r.uint32n(uint32(n)))
	}
	if n&(n-1) == 0 { // n is power of two, can mask
		return r.Uint64() & (n - 1)
	}
	hi, lo := bits.Mul64(r.Uint64(), n)
	if lo < n {
		thresh := -n % n
		for lo < thresh {
			hi, lo = bits.Mul64(r.Uint64(), n)
		}
	}
	return hi
}

// uint32n 回傳 [0,n) 的無偏亂數（針對 32-bit 目標值）。
func (r *Xoshiro256) uint32n(n uint32) uint32 {
	if n&(n-1) == 0 { // n is power of two, can mask
		return uint32(r.Uint64()) & (n - 1)
	}
	x := r.Uint64()
	lo1a, lo0 := bits.Mul32(uint32(x), n)
	hi, lo1b := bits.Mul32(uint32(x>>32), n)
	lo1, c := bits.Add32(lo1a, lo1b, 0)
	hi += c
	if lo1 == 0 && lo0 < uint32(n) {
		n64 := uint64(n)
		thresh := uint32(-n64 % n64)
		for lo1 == 0 && lo0 < thresh {
			x := r.Uint64()
			lo1a, lo0 = bits.Mul32(uint32(x), n)
			hi, lo1b = bits.Mul32(uint32(x>>32), n)
			lo1, c = bits.Add32(lo1a, lo1b, 0)
			hi += c
		}
	}
	return hi
}
