package netsvr

import (
	"net/http"

	"github.com/zintix-labs/randlab/server/app"
)

// NetSvr 是「路由行為 + 服務啟停」的抽象，只暴露給最外層 main；
// 其他層只面向 NetRouter。依賴反轉：換 http 框架只要重寫 Adapter。
// NetSvr 同時滿足 app.Component，可直接交給 app.App 管生命週期。
type NetSvr interface {
	NetRouter
	app.Component
}

// NetRouter 只有路由註冊行為，沒有 Run/Shutdown：
// Group 回呼拿到的就是 NetRouter，handler 層註冊路由時
// 拿不到 server 的啟停控制權。
type NetRouter interface {
	Use(middleware func(http.Handler) http.Handler)

	Get(path string, h http.HandlerFunc)
	Post(path string, h http.HandlerFunc)
	Put(path string, h http.HandlerFunc)
	Delete(path string, h http.HandlerFunc)

	Group(path string, fn func(NetRouter))
}
