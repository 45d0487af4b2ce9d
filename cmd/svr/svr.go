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

package main

import (
	"flag"
	"fmt"

	"github.com/zintix-labs/randlab"
	"github.com/zintix-labs/randlab/sdk/core"
	"github.com/zintix-labs/randlab/server"
	"github.com/zintix-labs/randlab/server/logger"
	"github.com/zintix-labs/randlab/server/svrcfg"
)

// This command is intentionally a "lab server" entrypoint for the randlab repo.
// It enables all developer endpoints by default.
// For production deployments, use a separate scaffold project.
func main() {
	cfg, err := loadConfigFromFlags()
	if err != nil {
		fmt.Println(err)
		return
	}
	server.Run(cfg)
}

type config struct {
	LogMode  string
	PoolSize int
	Seed     int64
}

func loadConfigFromFlags() (*svrcfg.SvrCfg, error) {
	cfg := new(config)
	flag.StringVar(&cfg.LogMode, "log-mode", "ModeDev", "log mode: ModeDev|ModeProd|ModeSilence")
	flag.IntVar(&cfg.PoolSize, "pool", 4, "number of anonymous generators in the pool")
	flag.Int64Var(&cfg.Seed, "seed", -1, "base seed; < 1 means crypto-random")

	flag.Parse()

	log, _ := logger.NewAsync(4096, cfg.norm())

	var lab *randlab.Lab
	var err error
	if cfg.Seed < 1 {
		lab, err = randlab.New(core.Default())
	} else {
		lab, err = randlab.NewWithSeed(core.Default(), cfg.Seed)
	}
	if err != nil {
		return nil, err
	}
	sCfg := &svrcfg.SvrCfg{
		Log:      log,
		PoolSize: cfg.PoolSize,
		Lab:      lab,
	}
	return sCfg, nil
}

func (cfg *config) norm() logger.LogMode {
	switch cfg.LogMode {
	case "ModeDev":
		return logger.ModeDev
	case "ModeProd":
		return logger.ModeProd
	case "ModeSilence":
		return logger.ModeSilence
	default:
		return logger.ModeDev
	}
}
