package stats

import "fmt"

const (
	normBucketLo    float64 = -4.0
	normBucketHi    float64 = 4.0
	expBucketHi     float64 = 8.0
	histBucketWidth float64 = 0.25
)

// HistBuckets
//
// 用來快速定位樣本值 -> DistReport 位置 O(1)
//
// 請勿修改預設值
//   - normal區間: (-inf,-4), [-4,-3.75), ..., [3.75,4), [4,+inf)
//   - exp區間:    [0,0.25), [0.25,0.5), ..., [7.75,8), [8,+inf)
type HistBuckets struct {
	histMap map[string]*Histogram
}

type Histogram struct {
	lo      float64
	width   float64
	inner   int
	lowTail bool
	labels  []string
	edges   []float64
	maxIdx  int
}

// Buckets
//
// 用來快速定位樣本值 -> DistReport 位置 O(1)
//
// 請勿修改預設值
var Buckets *HistBuckets = &HistBuckets{
	histMap: make(map[string]*Histogram),
}

func (b *HistBuckets) GetByDist(dist string) *Histogram {
	result, exist := b.histMap[dist]
	if !exist {
		result = b.buildHist(dist)
	}
	return result
}

func (b *HistBuckets) buildHist(dist string) *Histogram {
	lo := 0.0
	hi := expBucketHi
	lowTail := false
	if dist == "normal" {
		lo = normBucketLo
		hi = normBucketHi
		lowTail = true
	}

	inner := int((hi - lo) / histBucketWidth)
	total := inner + 1
	if lowTail {
		total++
	}

	// 桶邊界: edges[i] 為第 i 個內桶的左界
	edges := make([]float64, inner+1)
	for i := 0; i <= inner; i++ {
		edges[i] = lo + float64(i)*histBucketWidth
	}

	labels := make([]string, 0, total)
	if lowTail {
		labels = append(labels, fmt.Sprintf("(-inf,%.2f)", lo))
	}
	for i := 0; i < inner; i++ {
		labels = append(labels, fmt.Sprintf("[%.2f,%.2f)", edges[i], edges[i+1]))
	}
	labels = append(labels, fmt.Sprintf("[%.2f,+inf)", hi))

	result := &Histogram{
		lo:      lo,
		width:   histBucketWidth,
		inner:   inner,
		lowTail: lowTail,
		labels:  labels,
		edges:   edges,
		maxIdx:  total - 1,
	}

	b.histMap[dist] = result
	return result
}

func (h *Histogram) Labels() []string {
	return h.labels
}

func (h *Histogram) Size() int {
	return h.maxIdx + 1
}

// Index 回傳樣本值對應的桶位置
func (h *Histogram) Index(x float64) int {
	base := 0
	if h.lowTail {
		if x < h.lo {
			return 0
		}
		base = 1
	} else if x < h.lo {
		// exp不會出現負樣本,保底落在第一個內桶
		return 0
	}
	// 先夾上界再轉 int：超界值（含 +Inf）的 float→int 轉換結果未定義。
	// NaN 的比較一律為 false，也會落進這裡，一律記進溢位尾桶。
	if !(x < h.edges[h.inner]) {
		return h.maxIdx
	}
	i := int((x - h.lo) / h.width)
	if i >= h.inner {
		return h.maxIdx
	}
	return base + i
}

// TheoreticalProbs 依理論CDF回傳各桶機率
func (h *Histogram) TheoreticalProbs(cdf func(float64) float64) []float64 {
	out := make([]float64, 0, h.Size())
	if h.lowTail {
		out = append(out, cdf(h.lo))
	}
	for i := 0; i < h.inner; i++ {
		out = append(out, cdf(h.edges[i+1])-cdf(h.edges[i]))
	}
	hi := h.edges[h.inner]
	out = append(out, 1.0-cdf(hi))
	return out
}
