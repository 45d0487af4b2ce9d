package profile

import (
	"encoding/json"

	"github.com/zintix-labs/randlab/errs"
	"gopkg.in/yaml.v3"
)

// GetSimProfileByYAML
// 會讀取 YAML 設定、初始化各欄位並執行基本檢查後回傳。
func GetSimProfileByYAML(data []byte) (*SimProfile, error) {
	p := &SimProfile{}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, errs.Wrap(err, "failed to unmarshall yaml")
	}

	// 設定檔初始化
	if err := p.init(); err != nil {
		return nil, errs.Wrap(err, "sim profile initialized err")
	}

	return p, nil
}

// GetSimProfileByJSON
// 會讀取 Json 設定、初始化各欄位並執行基本檢查後回傳
func GetSimProfileByJSON(data []byte) (*SimProfile, error) {
	p := &SimProfile{}
	if err := json.Unmarshal(data, p); err != nil {
		return nil, errs.Wrap(err, "can not unmarshall json byte")
	}

	// 設定檔初始化
	if err := p.init(); err != nil {
		return nil, errs.Wrap(err, "sim profile initialized err")
	}

	return p, nil
}
