// Package index 提供服務主頁：一份純文字的端點導覽。
package index

import (
	"net/http"
)

const indexBody = `randlab batch sampling service

endpoints:
  GET/POST /v1/batch          float32 batch (JSON, base64url payload)
  GET/POST /v1/batch/raw      float32 batch (application/octet-stream)
  POST     /v1/open           create a named handle from a seed
  POST     /v1/close          release a named handle
  GET/POST /v1/sim            moment-check simulation
  GET/POST /v1/simstream      multi-stream simulation + fit estimator
  POST     /v1/simbyprofile   run a simulation from a SimProfile (YAML/JSON)
  POST     /v1/stat           score caller-provided samples
  GET      /v1/metrics        pool / registry snapshot
  GET      /dev               dev panel (replay with seed or snapshot)
`

func IndexHandlerFn(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(indexBody))
}
