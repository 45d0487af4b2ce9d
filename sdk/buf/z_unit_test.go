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

package buf

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/zintix-labs/randlab/errs"
)

func TestFloatBatchReserveAndPut(t *testing.T) {
	b := &FloatBatch{}
	if err := b.Reserve(3); err != nil {
		t.Fatalf("reserve: %v", err)
	}
	if b.Len() != 12 {
		t.Fatalf("len got %d want 12", b.Len())
	}

	b.PutFloat32(0, 1.5)
	b.PutFloat32(1, -2.25)
	b.PutFloat32(2, 0)

	got := b.Bytes()
	for i, want := range []float32{1.5, -2.25, 0} {
		v := math.Float32frombits(binary.NativeEndian.Uint32(got[i*4:]))
		if v != want {
			t.Fatalf("value %d got %v want %v", i, v, want)
		}
	}
}

func TestFloatBatchReserveZero(t *testing.T) {
	b := &FloatBatch{}
	if err := b.Reserve(0); err != nil {
		t.Fatalf("reserve 0: %v", err)
	}
	// count 0 的合約是空而非 nil
	if b.Bytes() == nil || b.Len() != 0 {
		t.Fatalf("reserve 0 must yield empty non-nil buffer")
	}
}

func TestFloatBatchOverLimit(t *testing.T) {
	b := &FloatBatch{}
	err := b.Reserve(MaxBatchBytes/4 + 1)
	if !errs.IsKind(err, errs.KindAllocFailed) {
		t.Fatalf("expected KindAllocFailed, got %v", err)
	}
}

func TestFloatBatchTakeTransfersOwnership(t *testing.T) {
	b := &FloatBatch{}
	if err := b.Reserve(2); err != nil {
		t.Fatalf("reserve: %v", err)
	}
	b.PutFloat32(0, 7)
	b.PutFloat32(1, 8)

	out := b.Take()
	if len(out) != 8 {
		t.Fatalf("taken len got %d want 8", len(out))
	}

	// Take 後的下一批必須是新配置，不可覆寫先前讓渡的輸出
	if err := b.Reserve(2); err != nil {
		t.Fatalf("re-reserve: %v", err)
	}
	b.PutFloat32(0, 999)
	if v := math.Float32frombits(binary.NativeEndian.Uint32(out)); v != 7 {
		t.Fatalf("taken output was overwritten: %v", v)
	}
}

func TestFloatBatchReuseGrowth(t *testing.T) {
	b := &FloatBatch{}
	if err := b.Reserve(8); err != nil {
		t.Fatalf("reserve 8: %v", err)
	}
	big := b.Bytes()
	if err := b.Reserve(4); err != nil {
		t.Fatalf("shrink reserve: %v", err)
	}
	// 容量足夠時重用同一塊緩衝
	if &big[0] != &b.Bytes()[0] {
		t.Fatalf("small reserve should reuse the buffer")
	}
	if b.Len() != 16 {
		t.Fatalf("len got %d want 16", b.Len())
	}
}
