package main

import (
	"crypto/rand"
	"flag"
	"log"
	"math"
	"math/big"
	"os"
	"path/filepath"
	"time"

	"github.com/zintix-labs/randlab"
	"github.com/zintix-labs/randlab/profile"
	"github.com/zintix-labs/randlab/sdk/core"
	"github.com/zintix-labs/randlab/stats"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var cfg *config = new(config)

type config struct {
	dist      string
	worker    int
	streams   int
	samples   int
	seed      int64
	file      string
	output    string
	pprofmode string
}

func bindVar() {
	// 綁定 Flag 到本地變數的指標 (&)
	flag.StringVar(&cfg.dist, "dist", "normal", "distribution: normal, exp")
	flag.IntVar(&cfg.worker, "worker", 1, "number of workers")
	flag.IntVar(&cfg.streams, "streams", 1, "number of independent streams")
	flag.IntVar(&cfg.samples, "samples", 10000000, "samples per stream")
	flag.Int64Var(&cfg.seed, "seed", -1, "int64 seed for random number generator")
	flag.StringVar(&cfg.file, "f", "", "sim profile file (.yaml/.yml/.json), overrides other flags")
	flag.StringVar(&cfg.output, "o", "table", "output: table, json, yaml")
	flag.StringVar(&cfg.pprofmode, "p", "", "pprof: '', cpu, heap, allocs")

	flag.Parse()

	// profile file 優先：其餘 flags 以檔案內容為準
	if cfg.file != "" {
		dir, name := filepath.Split(cfg.file)
		if dir == "" {
			dir = "."
		}
		p, err := profile.Load(os.DirFS(dir), name)
		if err != nil {
			log.Fatal(err)
		}
		cfg.dist = p.Dist
		cfg.worker = p.Workers
		cfg.streams = p.Streams
		cfg.samples = p.Samples
		cfg.output = p.Output
		if p.Seeded() {
			cfg.seed = *p.Seed
		}
	}

	// given seed illeagel -> default seed
	if cfg.seed < 1 {
		seed, err := rand.Int(rand.Reader, big.NewInt(math.MaxInt64))
		if err != nil {
			log.Fatal(err)
		}
		cfg.seed = seed.Int64()
	}
}

// 這裡解析並分支要執行的模擬器
func executeSimulator() {
	cfg.valid() // 基本檢查

	lab, err := randlab.NewWithSeed(core.Default(), cfg.seed)
	if err != nil {
		log.Fatal(err)
	}
	s, err := lab.NewSimulatorWithSeed(cfg.dist, cfg.seed)
	if err != nil {
		log.Fatal(err)
	}
	// 至此確保可執行
	green := "\033[1;32m"
	reset := "\033[0m"
	p := message.NewPrinter(language.English)

	if cfg.streams == 1 { // 單流模擬
		if cfg.worker == 1 { // 單線程
			p.Printf("%s[DIST:%s] [SEED:%d] [SAMPLES:%d]%s\n", green, cfg.dist, cfg.seed, cfg.samples, reset)
			st, used, err := s.Sim(cfg.samples, true)
			if err != nil {
				log.Fatal(err)
			}
			emit(st, used)
		} else {
			p.Printf("%s[WORKERS:%d] [DIST:%s] [SEED:%d] [SAMPLES:%d]%s\n", green, cfg.worker, cfg.dist, cfg.seed, cfg.worker*cfg.samples, reset)
			st, used, err := s.SimMP(cfg.samples, cfg.worker, true) // 併發
			if err != nil {
				log.Fatal(err)
			}
			emit(st, used)
		}
	} else { // 多流：合併統計 + 逐流估計
		p.Printf("%s[WORKERS:%d] [DIST:%s] [SEED:%d] [STREAMS:%d SAMPLES:%d]%s\n", green, cfg.worker, cfg.dist, cfg.seed, cfg.streams, cfg.samples, reset)
		st, est, used, err := s.SimStreams(cfg.worker, cfg.streams, cfg.samples, true)
		if err != nil {
			log.Fatal(err)
		}
		emit(st, used)
		if cfg.output == "table" {
			est.Out()
		}
	}
}

func emit(st *stats.SampleReport, used time.Duration) {
	switch cfg.output {
	case "json":
		if err := st.WriteWith(os.Stdout, new(stats.JsonSampleReportRender)); err != nil {
			log.Fatal(err)
		}
	case "yaml":
		if err := st.WriteWith(os.Stdout, new(stats.YAMLSampleReportRender)); err != nil {
			log.Fatal(err)
		}
	default:
		st.StdOut(used)
	}
}

func (cfg *config) valid() {
	p := message.NewPrinter(language.English)

	// 分佈檢查
	if cfg.dist != "normal" && cfg.dist != "exp" {
		log.Fatal("value err : dist must be normal or exp")
	}

	// 工作協程檢查(併發數)
	if cfg.worker < 1 {
		log.Fatal("value err : workers must > 0")
	}

	// 流數檢查
	if cfg.streams < 1 {
		log.Fatal("value err : streams must > 0")
	}
	// 流數太多 resize
	if cfg.streams > 100000 {
		p.Printf("too much streams: %d resized to 100k streams\n", cfg.streams)
		cfg.streams = 100000
	}

	// 樣本數檢查
	if cfg.samples < 1 {
		log.Fatal("value err : samples must > 0")
	}

	// 多流估計的時候，每流樣本數過大沒有意義(逐流分位數穩定後直接拉長單流即可)
	if cfg.streams > 1 && cfg.samples > 1000000 {
		p.Printf("too much samples for each stream : %d resized to 1M samples per stream\n", cfg.samples)
		cfg.samples = 1000000
	}
}
