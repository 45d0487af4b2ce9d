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

package dto_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/zintix-labs/randlab/dto"
	"github.com/zintix-labs/randlab/errs"
)

func TestParseSeed(t *testing.T) {
	cases := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"0", 0, true},
		{"12345", 12345, true},
		{"-1", -1, true},
		{"9223372036854775807", 9223372036854775807, true},
		// 超出 int64 的無號值以同 bit pattern 重新詮釋
		{"18446744073709551615", -1, true},
		{"9223372036854775808", -9223372036854775808, true},
		{"", 0, false},
		{"abc", 0, false},
		{"1.5", 0, false},
		{"18446744073709551616", 0, false}, // 超出 64-bit
	}
	for _, c := range cases {
		got, err := dto.ParseSeed(c.in)
		if c.ok {
			if err != nil {
				t.Fatalf("ParseSeed(%q): %v", c.in, err)
			}
			if got != c.want {
				t.Fatalf("ParseSeed(%q) got %d want %d", c.in, got, c.want)
			}
			continue
		}
		if !errs.IsKind(err, errs.KindInvalidSeed) {
			t.Fatalf("ParseSeed(%q) expected KindInvalidSeed, got %v", c.in, err)
		}
	}
}

func TestDecodeBatchRequestGet(t *testing.T) {
	r := httptest.NewRequest("GET", "/v1/batch?seed=99&dist=Exponential&count=64&want_snap=true", nil)
	req, err := dto.DecodeBatchRequest(r)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if req.SeedText != "99" || req.Dist != "exp" || req.Count != 64 || !req.WantSnap {
		t.Fatalf("decoded: %+v", req)
	}

	// dist 省略 -> normal
	r = httptest.NewRequest("GET", "/v1/batch?count=1", nil)
	req, err = dto.DecodeBatchRequest(r)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if req.Dist != "normal" {
		t.Fatalf("default dist got %q want normal", req.Dist)
	}

	// 非法 handle / count / dist
	for _, url := range []string{
		"/v1/batch?handle=x",
		"/v1/batch?count=-3",
		"/v1/batch?dist=cauchy",
		"/v1/batch?want_snap=maybe",
	} {
		r = httptest.NewRequest("GET", url, nil)
		if _, err := dto.DecodeBatchRequest(r); err == nil {
			t.Fatalf("expected error for %s", url)
		}
	}
}

func TestDecodeBatchRequestPost(t *testing.T) {
	body := `{"handle":7,"dist":"norm","count":128}`
	r := httptest.NewRequest("POST", "/v1/batch", strings.NewReader(body))
	req, err := dto.DecodeBatchRequest(r)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if req.Handle != 7 || req.Dist != "normal" || req.Count != 128 {
		t.Fatalf("decoded: %+v", req)
	}

	// 未知欄位嚴格拒絕
	r = httptest.NewRequest("POST", "/v1/batch", strings.NewReader(`{"count":1,"oops":true}`))
	if _, err := dto.DecodeBatchRequest(r); err == nil {
		t.Fatalf("expected error for unknown field")
	}

	// 空 body
	r = httptest.NewRequest("POST", "/v1/batch", strings.NewReader(""))
	if _, err := dto.DecodeBatchRequest(r); err == nil {
		t.Fatalf("expected error for empty body")
	}

	// 不支援的 method
	r = httptest.NewRequest("DELETE", "/v1/batch", nil)
	if _, err := dto.DecodeBatchRequest(r); err == nil {
		t.Fatalf("expected error for method")
	}
}

func TestNewBatchResult(t *testing.T) {
	res := dto.NewBatchResult(3, "exp", 2, []byte{1, 2, 3, 4, 5, 6, 7, 8}, nil)
	if res.Handle != 3 || res.Dist != "exp" || res.Count != 2 {
		t.Fatalf("result: %+v", res)
	}
	if res.Payload == "" || res.After != "" {
		t.Fatalf("payload/after: %+v", res)
	}

	withSnap := dto.NewBatchResult(0, "normal", 0, []byte{}, []byte{9, 9})
	if withSnap.After == "" {
		t.Fatalf("after missing when snapshot provided")
	}
}
