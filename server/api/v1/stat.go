package v1

import (
	"encoding/json"
	"net/http"

	"github.com/zintix-labs/randlab/corefmt"
	"github.com/zintix-labs/randlab/stats"
)

type DistStat struct {
	Dist string `json:"dist"`
	Seed int64  `json:"seed"`
	// 二選一：浮點樣本陣列，或 /v1/batch 回傳的 base64url float32 批次
	Samples []float64 `json:"samples,omitempty"`
	Payload string    `json:"payload,omitempty"`
}

// Stat 對呼叫端自帶的樣本做一次性統計（無狀態）。
//
// 這讓拿到批次 bytes 的呼叫端不需要自己實作動差/落桶，
// 直接把 /v1/batch 的 payload 原樣貼回來就能拿到報告。
func Stat(w http.ResponseWriter, r *http.Request) {
	// Post方法限定
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	// 嘗試解析
	dst := new(DistStat)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if dst.Dist == "" {
		dst.Dist = "normal"
	}
	if dst.Dist != "normal" && dst.Dist != "exp" {
		http.Error(w, "dist must be normal or exp", http.StatusBadRequest)
		return
	}
	if len(dst.Samples) == 0 && dst.Payload == "" {
		http.Error(w, "samples or payload required", http.StatusBadRequest)
		return
	}

	rec := stats.NewRecorder(dst.Dist, dst.Seed)
	rec.PushAll(dst.Samples)
	if dst.Payload != "" {
		raw, err := corefmt.DecodeBase64URL(dst.Payload)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if len(raw)%4 != 0 {
			http.Error(w, "payload length must be a multiple of 4", http.StatusBadRequest)
			return
		}
		rec.PushFloat32Bytes(raw)
	}

	st := rec.Report()
	st.Done()
	if err := json.NewEncoder(w).Encode(st); err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}
}
