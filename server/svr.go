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

package server

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/zintix-labs/randlab/errs"
	"github.com/zintix-labs/randlab/server/api"
	"github.com/zintix-labs/randlab/server/app"
	"github.com/zintix-labs/randlab/server/netsvr"
	"github.com/zintix-labs/randlab/server/svrcfg"
)

// Run 是 server 套件的組裝器與啟動入口：驗證 SvrCfg、建立預設的
// chi server、掛上 API 路由、交給 app.Run() 管理生命週期。
//
// 所有依賴（Lab、logger、pool size）都經由 SvrCfg 明確注入，
// 這裡不綁任何檔案路徑或環境變數策略。要自訂 server 的組裝方式，
// 用 RunWithSvr 或直接持有 Lab 自行呼叫 api.RegisterRoutes。
func Run(sCfg *svrcfg.SvrCfg) {
	if err := sCfg.Vaild(); err != nil {
		// 這時還不確定 logger 可用，錯誤直接進 stderr
		fmt.Fprintln(os.Stderr, err)
		return
	}

	svr := netsvr.NewChiServerDefault()
	api.RegisterRoutes(svr, sCfg)

	app := app.NewWith(svr)
	sCfg.Log.Info("[randlab] listening on http://localhost" + svr.Address())
	if err := app.Run(); err != nil {
		sCfg.Log.Error("app stopped:", slog.Any("err", err))
	}
}

// RunWithSvr 與 Run 相同，但由呼叫端注入自訂的 NetSvr——
// 自己包的 adapter、自訂 listener/TLS/timeout，或想把 randlab 的
// 路由掛進既有服務時走這個入口。
//
// 合約：
//   - 先做 SvrCfg 驗證（含 logger）；失敗時錯誤輸出到 stderr。
//   - svr 必須非 nil；若是 ChiAdapter 另要求 Ready()，擋掉組裝不完整的 server。
//   - 這層只負責掛路由與 app.Run()，不接管呼叫端其餘的系統組裝。
func RunWithSvr(sCfg *svrcfg.SvrCfg, svr netsvr.NetSvr) {
	if err := sCfg.Vaild(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	if svr == nil {
		sCfg.Log.Error(errs.NewFatal("svr is required").Error())
		return
	}
	if s, ok := svr.(*netsvr.ChiAdapter); ok && !s.Ready() {
		sCfg.Log.Error(errs.NewFatal("default server is not ready").Error())
		return
	}

	api.RegisterRoutes(svr, sCfg)

	app := app.NewWith(svr)
	sCfg.Log.Info("[randlab] listening")
	if err := app.Run(); err != nil {
		sCfg.Log.Error("app stopped:", slog.Any("err", err))
	}
}
