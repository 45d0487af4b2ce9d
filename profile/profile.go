package profile

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/zintix-labs/randlab/errs"
)

// SimProfile 包含啟動一次模擬所需的所有高階設定。
type SimProfile struct {
	Name    string `yaml:"name"     json:"name"`
	Dist    string `yaml:"dist"     json:"dist"`
	Seed    *int64 `yaml:"seed"     json:"seed"`
	Samples int    `yaml:"samples"  json:"samples"`
	Streams int    `yaml:"streams"  json:"streams"`
	Workers int    `yaml:"workers"  json:"workers"`
	ShowPB  bool   `yaml:"show_pb"  json:"show_pb"`
	Output  string `yaml:"output"   json:"output"`
}

// init
func (p *SimProfile) init() error {
	switch strings.ToLower(strings.TrimSpace(p.Dist)) {
	case "", "normal", "norm":
		p.Dist = "normal"
	case "exp", "exponential":
		p.Dist = "exp"
	}
	if p.Workers == 0 {
		p.Workers = 1
	}
	if p.Streams == 0 {
		p.Streams = 1
	}
	switch strings.ToLower(strings.TrimSpace(p.Output)) {
	case "":
		p.Output = "table"
	case "table", "json", "yaml":
		p.Output = strings.ToLower(strings.TrimSpace(p.Output))
	}
	return p.valid()
}

// valid 執行最基本的設定檔檢查，如需更多驗證可在此擴充。
func (p *SimProfile) valid() error {

	// valid Dist
	if p.Dist != "normal" && p.Dist != "exp" {
		return errs.NewFatal(fmt.Sprintf("profile: %s err:unknown dist %q", p.Name, p.Dist))
	}

	if p.Samples < 1 {
		return errs.NewFatal(fmt.Sprintf("profile: %s err:samples must > 0", p.Name))
	}

	if p.Workers < 1 || p.Streams < 1 {
		return errs.NewFatal(fmt.Sprintf("profile: %s err:invalid workers/streams", p.Name))
	}

	if p.Output != "table" && p.Output != "json" && p.Output != "yaml" {
		return errs.NewFatal(fmt.Sprintf("profile: %s err:unknown output %q", p.Name, p.Output))
	}

	return nil
}

// Seeded 回報設定檔是否指定了固定 seed。
func (p *SimProfile) Seeded() bool {
	return p.Seed != nil
}

// Load 從 fs.FS 讀取設定檔（.yaml/.yml/.json），初始化並執行基本檢查後回傳。
//
// 來源一律以 fs.FS 注入：go:embed、os.DirFS 都可。
func Load(fsys fs.FS, name string) (*SimProfile, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, errs.Wrap(err, "read sim profile failed")
	}
	if strings.HasSuffix(name, ".json") {
		return GetSimProfileByJSON(data)
	}
	return GetSimProfileByYAML(data)
}
