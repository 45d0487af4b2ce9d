// Package dev 提供 randlab 的「內部 Dev Panel」HTTP endpoints。
//
// 目的（ explain the why ）：
//   - 給數學家 / 後端在開發期快速驗證：指定 Dist、Seed / Snap 與 Count，然後執行 Draw。
//   - 支援可回放（replay）：把 Snapshot（Snap）以字串形式在前端顯示，並可貼回後端做 Restore。
//
// 注意（ contract ）：
//   - 這不是 production API；它偏向 debug / tooling，行為允許更寬鬆，但仍需維持 deterministic concludes。
//   - 這裡的錯誤處理走 `httperr.Errs`（以 errs.Warn/errs.Fatal 對應 HTTP response）。
//   - Seed/Snap 的互斥與優先級由前端 + 後端共同保證（Snap takes precedence）。
package dev

import (
	"crypto/rand"
	"encoding/json"
	"math"
	"math/big"
	"net/http"

	"github.com/zintix-labs/randlab/corefmt"
	"github.com/zintix-labs/randlab/dto"
	"github.com/zintix-labs/randlab/errs"
	"github.com/zintix-labs/randlab/server/httperr"
	"github.com/zintix-labs/randlab/server/netsvr"
	"github.com/zintix-labs/randlab/server/svrcfg"
)

// devRequest 是 Dev Panel 的「輸入 payload」。
//
// Seed / Snap：
//   - Seed（int64 string）用於 deterministic 起始；若為空字串則自動生成（crypto/rand）。
//   - Snap（base64url string）代表 core snapshot；若提供 Snap，則後端以 Snap Restore 為準（Snap precedence）。
//
// 注意：
//   - 這個 struct 是 API 邊界用的 DTO；不要把它滲透到 sampler / math domain。
type devRequest struct {
	Dist  string `json:"dist"`
	Count int    `json:"count"`
	Seed  string `json:"seed"`
	Snap  string `json:"snap"`
}

// devDrawResult 回傳逐值結果與前後快照（replay 的最小閉環）。
type devDrawResult struct {
	Dist       string    `json:"dist"`
	Seed       string    `json:"seed,omitempty"`
	Values     []float64 `json:"values"`
	SnapBefore string    `json:"snap_before"`
	SnapAfter  string    `json:"snap_after"`
}

// Register 註冊 Dev Panel 的 routes。
//
// Routes：
//   - GET  /dev       ：Dev Panel HTML（內嵌 JS）。
//   - POST /dev/draw  ：執行 N 次取樣並回傳每個值（含 snap_before/snap_after）。
//
// 依賴（dependency）：
//   - 需要 cfg.Lab 已被上層組裝完成並注入；否則會回 errs.Fatal。
func Register(svr netsvr.NetRouter, cfg *svrcfg.SvrCfg) {
	svr.Get("/dev", devPage)
	svr.Post("/dev/draw", devDraw(cfg))
}

func devPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(devPageHTML))
}

func devDraw(cfg *svrcfg.SvrCfg) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cfg == nil || cfg.Lab == nil {
			httperr.Errs(w, errs.NewFatal("lab is not assembled"))
			return
		}
		req := new(devRequest)
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			httperr.Errs(w, errs.NewWarn("invalid json:"+err.Error()))
			return
		}
		if req.Dist == "" {
			req.Dist = "normal"
		}
		if req.Dist != "normal" && req.Dist != "exp" {
			httperr.Errs(w, errs.NewWarn("dist must be normal or exp"))
			return
		}
		// dev tooling cap：逐值 JSON 回傳，別讓 payload 失控
		if req.Count < 1 || req.Count > 5000 {
			httperr.Errs(w, errs.NewWarn("count must be between 1 and 5,000"))
			return
		}

		// Seed / Snap 互斥，Snap takes precedence
		result := &devDrawResult{Dist: req.Dist}
		var seed int64
		if req.Snap == "" {
			if req.Seed == "" {
				rnd, err := rand.Int(rand.Reader, big.NewInt(math.MaxInt64))
				if err != nil {
					httperr.Errs(w, errs.NewWarn("seed generate failed"))
					return
				}
				seed = rnd.Int64()
			} else {
				var err error
				seed, err = dto.ParseSeed(req.Seed)
				if err != nil {
					httperr.Errs(w, err)
					return
				}
			}
			result.Seed = req.Seed
		}

		g := cfg.Lab.NewGenerator(seed)
		if req.Snap != "" {
			snap, err := corefmt.DecodeBase64URL(req.Snap)
			if err != nil {
				httperr.Errs(w, errs.Wrap(err, "decode snap failed"))
				return
			}
			if err := g.RestoreCore(snap); err != nil {
				httperr.Errs(w, err)
				return
			}
		}

		before, err := g.SnapshotCore()
		if err != nil {
			httperr.Errs(w, err)
			return
		}
		result.SnapBefore = corefmt.EncodeBase64URL(before)

		result.Values = make([]float64, req.Count)
		if req.Dist == "exp" {
			for i := range result.Values {
				result.Values[i] = g.Exponential()
			}
		} else {
			g.FillNormal(result.Values)
		}

		after, err := g.SnapshotCore()
		if err != nil {
			httperr.Errs(w, err)
			return
		}
		result.SnapAfter = corefmt.EncodeBase64URL(after)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}

// devPageHTML 是內嵌的 Dev Panel UI。
//
// UI 行為（contract）：
//   - Seed/Snap 互斥：
//   - Snap 非空 → Seed 會被清空並 disable。
//   - Seed 非空 → Snap 會被清空並 disable。
//   - Snap takes precedence（後端也會以 Snap 為準）。
//   - Count：前端會 cap 在 5,000 以避免回傳 payload 過大。
const devPageHTML = `<!doctype html>
<html lang="zh-Hant">
<head>
  <meta charset="utf-8" />
  <title>randlab Dev</title>
  <style>
    body { font-family: -apple-system,BlinkMacSystemFont,"Segoe UI",sans-serif; background:#0f172a; color:#e2e8f0; margin:0; }
    .wrap { max-width: 860px; margin: 24px auto; padding: 16px 20px; background:#111827; border:1px solid #1f2937; border-radius:12px; box-shadow:0 12px 50px rgba(0,0,0,0.35); }
    h1 { margin: 0 0 16px; font-size: 22px; letter-spacing: 0.3px; }
    .grid { display:grid; grid-template-columns: repeat(auto-fit, minmax(180px,1fr)); gap:12px; margin-bottom:12px; }
    label { display:flex; flex-direction:column; gap:6px; font-size: 13px; color:#cbd5e1; }
    input, select { background:#0b1224; color:#e2e8f0; border:1px solid #1f2738; border-radius:8px; padding:10px 12px; font-size:14px; }
    input:focus, select:focus { outline:1px solid #38bdf8; border-color:#38bdf8; }
    .actions { display:flex; gap:10px; align-items:center; justify-content:flex-end; margin: 8px 0 14px; }
    button { cursor:pointer; border:none; border-radius:10px; padding:10px 14px; font-weight:600; letter-spacing:0.2px; }
    #btn-draw { background:#38bdf8; color:#0b1224; }
    #btn-clear { background:#1f2937; color:#e2e8f0; border:1px solid #334155; }
    button:disabled { opacity:0.6; cursor:not-allowed; }
    input:disabled { opacity: 0.55; cursor: not-allowed; }
    #out { background:#0b1224; border:1px solid #1f2738; border-radius:12px; padding:14px; min-height:220px; overflow:auto; font-family: ui-monospace, SFMono-Regular, Menlo, Monaco, Consolas, "Liberation Mono", "Courier New", monospace; white-space:pre-wrap; }
  </style>
</head>
<body>
  <div class="wrap">
    <h1>randlab Dev Panel</h1>
    <div class="grid">
      <label>Dist
        <select id="dist">
          <option value="normal">normal</option>
          <option value="exp">exp</option>
        </select>
      </label>
      <label>Seed (int64)
        <input id="seed" type="text" inputmode="numeric" placeholder="Empty = auto" />
      </label>
      <label>Snap (base64url)
        <input id="snap" type="text" placeholder="Paste snap (base64url)" />
      </label>
      <label>Count
        <input id="count" type="number" min="1" max="5000" value="10" />
      </label>
    </div>
    <div class="actions">
      <button id="btn-draw">Draw</button>
      <button id="btn-clear">Clear</button>
    </div>
    <pre id="out"></pre>
  </div>
<script>
const seedInput = document.getElementById('seed');
const snapInput = document.getElementById('snap');
const out = document.getElementById('out');

seedInput.addEventListener('input', () => {
  const has = seedInput.value.trim() !== '';
  snapInput.disabled = has;
  if (has) snapInput.value = '';
});
snapInput.addEventListener('input', () => {
  const has = snapInput.value.trim() !== '';
  seedInput.disabled = has;
  if (has) seedInput.value = '';
});

document.getElementById('btn-clear').addEventListener('click', () => {
  out.textContent = '';
  seedInput.disabled = false;
  snapInput.disabled = false;
});

document.getElementById('btn-draw').addEventListener('click', async () => {
  const body = {
    dist: document.getElementById('dist').value,
    count: Math.min(5000, Number(document.getElementById('count').value) || 1),
    seed: seedInput.value.trim(),
    snap: snapInput.value.trim(),
  };
  out.textContent = '...';
  try {
    const resp = await fetch('/dev/draw', {
      method: 'POST',
      headers: {'Content-Type': 'application/json'},
      body: JSON.stringify(body),
    });
    const text = await resp.text();
    try { out.textContent = JSON.stringify(JSON.parse(text), null, 2); }
    catch { out.textContent = text; }
  } catch (e) {
    out.textContent = String(e);
  }
});
</script>
</body>
</html>
`
