package stats

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var lang language.Tag = language.English

// 信賴區間
type CI struct {
	Lo float64 `json:"Lo"`
	Hi float64 `json:"Hi"`
}

// SampleReport 抽樣統計報告
type SampleReport struct {
	Summary *SummaryReport `json:"Summary"`
	Moment  *MomentReport  `json:"Moment"`
	Dist    *DistReport    `json:"Dist"`
	isDone  bool
}

type SummaryReport struct {
	Dist    string  `json:"Dist"`
	Seed    int64   `json:"Seed"`
	Samples int     `json:"Samples"`
	Mean    float64 `json:"Mean"`
	MeanCI  CI      `json:"MeanCI"`
	Std     float64 `json:"Std"`
	Skew    float64 `json:"Skew"`
	ExKurt  float64 `json:"ExKurt"`
	Min     float64 `json:"Min"`
	Max     float64 `json:"Max"`
}

// MomentReport 動差統計
//
// 紀錄時不換算，避免每筆樣本都付出除法成本。紀錄完成後Done()會將結果整理填入
type MomentReport struct {
	N    int     `json:"N"`
	Mu   float64 `json:"Mu"`
	M2   float64 `json:"M2"` // 二階中心動差和
	M3   float64 `json:"M3"` // 三階中心動差和
	M4   float64 `json:"M4"` // 四階中心動差和
	MinV float64 `json:"MinV"`
	MaxV float64 `json:"MaxV"`
}

// DistReport 樣本落桶統計
type DistReport struct {
	BucketLabel []string  `json:"BucketLabel"`
	Collect     []int     `json:"Collect"`
	Density     []float64 `json:"Density"`
}

// ============================================================
// ** 公開方法 **
// ============================================================

// Done 將累積計數轉換為最終統計結果並鎖定 isDone 標記。
//
// 所有抽樣統計過程因為性能原因只累積動差和，所以統計完成後
//
// 請使用 Done 來通知報告已經完成,可以一次性計算統計結果
func (s *SampleReport) Done() {
	if s.isDone {
		return
	}
	// Summary
	s.Summary.Samples = s.Moment.N
	s.Summary.Mean = s.Mean()
	s.Summary.MeanCI = s.Ci()
	s.Summary.Std = s.Std()
	s.Summary.Skew = s.Skew()
	s.Summary.ExKurt = s.ExKurt()
	s.Summary.Min = s.Moment.MinV
	s.Summary.Max = s.Moment.MaxV

	// Dist
	n := s.Moment.N
	if n > 0 && len(s.Dist.Collect) > 0 {
		s.Dist.Density = make([]float64, len(s.Dist.Collect))
		for i, c := range s.Dist.Collect {
			s.Dist.Density[i] = float64(c) / float64(n)
		}
	}

	s.isDone = true
}

// Mean 回傳樣本平均
func (s *SampleReport) Mean() float64 {
	if s.Moment.N == 0 {
		return 0
	}
	return s.Moment.Mu
}

// Std 回傳樣本標準差(無偏)
func (s *SampleReport) Std() float64 {
	if s.Moment.N < 2 {
		return 0
	}
	variance := s.Moment.M2 / float64(s.Moment.N-1)
	if variance < 0 {
		variance = 0
	}
	return math.Sqrt(variance)
}

// Skew 回傳樣本偏度
func (s *SampleReport) Skew() float64 {
	n := float64(s.Moment.N)
	if s.Moment.N < 3 || s.Moment.M2 <= 0 {
		return 0
	}
	return math.Sqrt(n) * s.Moment.M3 / math.Pow(s.Moment.M2, 1.5)
}

// ExKurt 回傳樣本超額峰度
func (s *SampleReport) ExKurt() float64 {
	n := float64(s.Moment.N)
	if s.Moment.N < 4 || s.Moment.M2 <= 0 {
		return 0
	}
	return n*s.Moment.M4/(s.Moment.M2*s.Moment.M2) - 3.0
}

// Ci 回傳(95% Mean)信賴區間
func (s *SampleReport) Ci() CI {
	mean := s.Mean()
	std := s.Std()
	se := float64(0)
	if s.Moment.N > 1 {
		se = std / math.Sqrt(float64(s.Moment.N))
	}
	ci := CI{
		Lo: mean - 1.96*se,
		Hi: mean + 1.96*se,
	}
	return ci
}

func (s *SampleReport) WriteWith(w io.Writer, rep SampleReportRender) error {
	s.Done()
	return rep.Write(w, s)
}

func (s *SampleReport) StdOut(ut time.Duration) {
	s.Done()
	formatDuration(ut, s.Summary.Samples)
	sk, sm := s.fmtBasic()
	str := fmtTable(s.Summary.Dist, sk, sm)
	fmt.Println(str)
}

// ============================================================
// ** 內部方法 **
// ============================================================

func formatDuration(d time.Duration, samples int) {
	p := message.NewPrinter(lang)
	if d < 0 {
		d = -d
	}
	sec := d.Seconds()
	if sec <= 0 {
		sec = 1e-9
	}
	sps := int(float64(samples) / sec)
	if sec < 60.0 {
		p.Printf("used: %.2f seconds\nsps : %d samples/sec\n", sec, sps)
		return
	}
	s := int(d.Seconds()) % 60
	m := int(d.Minutes()) % 60
	h := int(d.Hours())
	if h == 0 {
		s = s % 60
		p.Printf("used: %dm %ds\nsps : %d samples/sec\n", m, s, sps)
		return
	}
	p.Printf("used: %dh:%dm:%ds\nsps : %d samples/sec\n", h, m, s, sps)
}

// StdOut

func (s *SampleReport) fmtBasic() ([]string, map[string]string) {
	p := message.NewPrinter(lang)
	basic := map[string]string{
		"Dist":        p.Sprintf("%s", s.Summary.Dist),
		"Seed":        fmt.Sprintf("%d", s.Summary.Seed),
		"Samples":     p.Sprintf("%d", s.Summary.Samples),
		"Mean":        p.Sprintf("%.6f", s.Summary.Mean),
		"Mean 95% CI": p.Sprintf("[%.6f,%.6f]", s.Summary.MeanCI.Lo, s.Summary.MeanCI.Hi),
		"Std":         p.Sprintf("%.6f", s.Summary.Std),
		"Skew":        p.Sprintf("%.4f", s.Summary.Skew),
		"Ex.Kurt":     p.Sprintf("%.4f", s.Summary.ExKurt),
		"Min":         p.Sprintf("%.6f", s.Summary.Min),
		"Max":         p.Sprintf("%.6f", s.Summary.Max),
	}
	keys := []string{"Dist", "Seed", "Samples", "Mean", "Mean 95% CI", "Std", "Skew", "Ex.Kurt", "Min", "Max"}
	return keys, basic
}

func fmtTable(title string, keys []string, msg map[string]string) string {
	p := message.NewPrinter(lang)
	maxKeyLen := 0
	maxValLen := 0
	for k, m := range msg {
		if w := runewidth.StringWidth(k); w > maxKeyLen {
			maxKeyLen = w
		}
		if w := runewidth.StringWidth(m); w > maxValLen {
			maxValLen = w
		}
	}
	maxKeyLen += 2
	maxValLen += 2

	divider := "+" + strings.Repeat("-", maxKeyLen) + "+" + strings.Repeat("-", maxValLen) + "+\n"
	top := "+" + strings.Repeat("-", maxKeyLen+1+maxValLen) + "+\n"

	totalInner := maxKeyLen + maxValLen + 1
	titleW := runewidth.StringWidth(title)

	left := (totalInner - titleW) / 2
	right := totalInner - titleW - left

	fmtStr := top
	fmtStr += p.Sprintf("|%s%s%s|\n", blank(left), title, blank(right))
	fmtStr += divider
	for _, k := range keys {
		fmtStr += p.Sprintf("| %s%s | %s%s |\n", k, blank(maxKeyLen-2-runewidth.StringWidth(k)), msg[k], blank(maxValLen-2-runewidth.StringWidth(msg[k])))
	}
	fmtStr += divider

	return fmtStr
}

func blank(w int) string {
	if w < 1 {
		return ""
	}
	return strings.Repeat(" ", w)
}
