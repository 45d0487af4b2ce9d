package v1

import (
	"crypto/rand"
	"encoding/json"
	"io"
	"math"
	"math/big"
	"net/http"

	"github.com/zintix-labs/randlab/errs"
	"github.com/zintix-labs/randlab/profile"
	"github.com/zintix-labs/randlab/server/httperr"
)

// SetByProfile 傳入 SimProfile 設定格式（JSON 或 YAML），依設定執行模擬
func (sh *SimHandler) SetByProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// 1. decode request
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
	data, err := io.ReadAll(r.Body)
	if err != nil {
		httperr.Errs(w, errs.Wrap(err, "read body failed"))
		return
	}

	var p *profile.SimProfile
	if r.Header.Get("Content-Type") == "application/json" {
		p, err = profile.GetSimProfileByJSON(data)
	} else {
		p, err = profile.GetSimProfileByYAML(data)
	}
	if err != nil {
		httperr.Errs(w, err)
		return
	}

	// 2. vaild samples（線上端點比 CLI 嚴：防止把服務綁死）
	if p.Samples > 100000000 {
		httperr.Errs(w, errs.NewWarn("samples must be at most 100,000,000"))
		return
	}

	seed := int64(0)
	if p.Seeded() {
		seed = *p.Seed
	} else {
		rnd, err := rand.Int(rand.Reader, big.NewInt(math.MaxInt64))
		if err != nil {
			httperr.Errs(w, errs.NewWarn("seed generate failed"))
			return
		}
		seed = rnd.Int64()
	}

	// 3. NewSimulator
	sim, err := sh.Lab.NewSimulatorWithSeed(p.Dist, seed)
	if err != nil {
		httperr.Errs(w, err)
		return
	}

	// 4. 依 profile 選擇執行模式
	type SetByProfileResponse struct {
		Profile  *profile.SimProfile `json:"profile"`
		Stats    any                 `json:"stats"`
		Est      any                 `json:"est,omitempty"`
		UsedTime int64               `json:"used_ms"`
	}
	resp := &SetByProfileResponse{Profile: p}

	switch {
	case p.Streams > 1:
		st, est, used, err := sim.SimStreams(p.Workers, p.Streams, p.Samples, false)
		if err != nil {
			httperr.Errs(w, err)
			return
		}
		resp.Stats, resp.Est, resp.UsedTime = st, est, used.Milliseconds()
	case p.Workers > 1:
		st, used, err := sim.SimMP(p.Samples, p.Workers, false)
		if err != nil {
			httperr.Errs(w, err)
			return
		}
		resp.Stats, resp.UsedTime = st, used.Milliseconds()
	default:
		st, used, err := sim.Sim(p.Samples, false)
		if err != nil {
			httperr.Errs(w, err)
			return
		}
		resp.Stats, resp.UsedTime = st, used.Milliseconds()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
