package v1

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"net/http"
	"strconv"

	"github.com/zintix-labs/randlab"
	"github.com/zintix-labs/randlab/errs"
	"github.com/zintix-labs/randlab/server/httperr"
	"github.com/zintix-labs/randlab/stats"
)

type SimHandler struct {
	Lab *randlab.Lab
}

func NewSimHandler(lab *randlab.Lab) (*SimHandler, error) {
	return &SimHandler{Lab: lab}, nil
}

func (sh *SimHandler) Sim(w http.ResponseWriter, q *http.Request) {
	// 內部結構 不影響外部 也不被外部使用
	type SimRequestBody struct {
		Dist    string `json:"dist"`
		Samples int    `json:"samples"`
		Workers int    `json:"workers"`
		Seed    *int64 `json:"seed,omitempty"`
	}
	// 內部結構 不影響外部 也不被外部使用
	type SimResponse struct {
		Stats    *stats.SampleReport `json:"stats"`
		UsedTime int64               `json:"used_ms"`
	}
	// ---
	req := new(SimRequestBody)
	if q.Method != http.MethodGet && q.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if q.Method == http.MethodGet {
		// dist
		req.Dist = q.URL.Query().Get("dist")

		// samples
		if s := q.URL.Query().Get("samples"); s != "" {
			u, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				httperr.Errs(w, errs.NewWarn("samples must be integer"))
				return
			}
			req.Samples = int(u)
		} else {
			// 直接空值
			httperr.Errs(w, errs.NewWarn("samples is required"))
			return
		}

		// workers
		if s := q.URL.Query().Get("workers"); s != "" {
			u, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				httperr.Errs(w, errs.NewWarn("workers must be integer"))
				return
			}
			req.Workers = int(u)
		}

		// seed
		if s := q.URL.Query().Get("seed"); s != "" {
			u, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				httperr.Errs(w, errs.NewWarn("seed must be int64"))
				return
			}
			v := u
			req.Seed = &v
		}
	}
	if q.Method == http.MethodPost {
		if err := json.NewDecoder(q.Body).Decode(req); err != nil {
			httperr.Errs(w, errs.NewWarn("invalid json:"+err.Error()))
			return
		}
	}
	// 業務檢驗
	if req.Dist == "" {
		req.Dist = "normal"
	}
	if req.Workers == 0 {
		req.Workers = 1
	}
	if req.Workers < 1 || req.Workers > 64 {
		httperr.Errs(w, errs.NewWarn("workers must be between 1 and 64"))
		return
	}
	if req.Samples < 1 || req.Samples > 100000000 {
		httperr.Errs(w, errs.NewWarn("samples must be between 1 to 100,000,000"))
		return
	}
	if req.Seed == nil {
		rnd, err := rand.Int(rand.Reader, big.NewInt(math.MaxInt64))
		if err != nil {
			httperr.Errs(w, errs.NewWarn("seed generate failed"))
			return
		}
		v := rnd.Int64()
		req.Seed = &v
	}
	sim, err := sh.Lab.NewSimulatorWithSeed(req.Dist, *req.Seed)
	if err != nil {
		// 這裡的錯誤是來自randlab 尊重錯誤分級
		httperr.Errs(w, errs.Wrap(err, fmt.Sprintf("build simulator err: %s", req.Dist)))
		return
	}
	var st *stats.SampleReport
	var used int64
	if req.Workers == 1 {
		s, u, err := sim.Sim(req.Samples, false)
		if err != nil {
			// 這裡的錯誤來自simulator 尊重錯誤分級
			httperr.Errs(w, errs.Wrap(err, "simulate err"))
			return
		}
		st, used = s, u.Milliseconds()
	} else {
		s, u, err := sim.SimMP(req.Samples, req.Workers, false)
		if err != nil {
			httperr.Errs(w, errs.Wrap(err, "simulate err"))
			return
		}
		st, used = s, u.Milliseconds()
	}
	resp := SimResponse{
		Stats:    st,
		UsedTime: used,
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (sh *SimHandler) SimStreams(w http.ResponseWriter, r *http.Request) {
	// 內部結構 不影響外部 也不被外部使用
	type SimStreamRequestBody struct {
		Dist    string `json:"dist"`
		Streams int    `json:"streams"`
		Samples int    `json:"samples"`
		Workers int    `json:"workers"`
		Seed    *int64 `json:"seed,omitempty"`
	}
	// 內部結構 不影響外部 也不被外部使用
	type SimStreamResponse struct {
		StatsReport *stats.SampleReport     `json:"stats"`
		Estimator   *stats.EstimatorStreams `json:"est"`
		UsedTime    int64                   `json:"used_ms"`
	}
	// ---
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	req := new(SimStreamRequestBody)
	if r.Method == http.MethodGet {
		req.Dist = r.URL.Query().Get("dist")
		streamsStr := r.URL.Query().Get("streams")
		samplesStr := r.URL.Query().Get("samples")
		workersStr := r.URL.Query().Get("workers")

		// streams
		if streamsStr != "" {
			streams, err := strconv.Atoi(streamsStr)
			if err != nil {
				httperr.Errs(w, errs.NewWarn("streams must be integer"))
				return
			}
			req.Streams = streams
		} else {
			httperr.Errs(w, errs.NewWarn("streams is required"))
			return
		}

		// samples
		if samplesStr != "" {
			samples, err := strconv.Atoi(samplesStr)
			if err != nil {
				httperr.Errs(w, errs.NewWarn("samples must be integer"))
				return
			}
			req.Samples = samples
		} else {
			httperr.Errs(w, errs.NewWarn("samples is required"))
			return
		}

		// workers
		if workersStr != "" {
			workers, err := strconv.Atoi(workersStr)
			if err != nil {
				httperr.Errs(w, errs.NewWarn("workers must be an integer"))
				return
			}
			req.Workers = workers
		}

		// seed
		if s := r.URL.Query().Get("seed"); s != "" {
			u, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				httperr.Errs(w, errs.NewWarn("seed must be int64"))
				return
			}
			v := u
			req.Seed = &v
		}
	}
	if r.Method == http.MethodPost {
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			httperr.Errs(w, errs.NewWarn("invalid json:"+err.Error()))
			return
		}
	}
	// 業務邏輯判斷
	if req.Dist == "" {
		req.Dist = "normal"
	}
	if req.Workers == 0 {
		req.Workers = 4
	}
	if req.Streams < 1 || req.Streams > 100000 {
		httperr.Errs(w, errs.NewWarn("streams must be between 1 and 100,000"))
		return
	}
	if req.Samples < 1 || req.Samples > 1000000 {
		httperr.Errs(w, errs.NewWarn("samples must be between 1 and 1,000,000"))
		return
	}
	if req.Workers < 1 || req.Workers > 64 {
		httperr.Errs(w, errs.NewWarn("workers must be between 1 and 64"))
		return
	}
	if req.Seed == nil {
		rnd, err := rand.Int(rand.Reader, big.NewInt(math.MaxInt64))
		if err != nil {
			httperr.Errs(w, errs.NewWarn("seed generate failed"))
			return
		}
		v := rnd.Int64()
		req.Seed = &v
	}
	// 取得sim
	sim, err := sh.Lab.NewSimulatorWithSeed(req.Dist, *req.Seed)
	if err != nil {
		httperr.Errs(w, errs.Wrap(err, fmt.Sprintf("build simulator err: %s", req.Dist)))
		return
	}
	st, est, used, err := sim.SimStreams(req.Workers, req.Streams, req.Samples, false)
	if err != nil {
		httperr.Errs(w, errs.Wrap(err, fmt.Sprintf("simulator err: %s", req.Dist)))
		return
	}
	resp := &SimStreamResponse{
		StatsReport: st,
		Estimator:   est,
		UsedTime:    used.Milliseconds(),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
