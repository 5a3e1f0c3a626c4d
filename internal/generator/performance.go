package generator

// Size thresholds and the nominal 3G profile behind the load estimate. The
// heuristic is intentionally fixed so identical inputs always score the same.
const (
	totalSizeBudget  = 100 * 1024
	styleSizeBudget  = 50 * 1024
	scriptSizeBudget = 50 * 1024

	loadLatencyMs = 200
	bytesPerMs    = 100
)

// measurePerformance derives the performance metadata purely from artifact
// byte lengths: oversized totals and oversized style/script artifacts deduct
// from the optimization score, which stays within [0, 100].
func measurePerformance(markupSize, styleSize, scriptSize int) Performance {
	total := markupSize + styleSize + scriptSize

	score := 100
	if total > totalSizeBudget {
		score -= 30
	}
	if styleSize > styleSizeBudget {
		score -= 15
	}
	if scriptSize > scriptSizeBudget {
		score -= 15
	}
	if score < 0 {
		score = 0
	}

	return Performance{
		EstimatedLoadMs:   loadLatencyMs + int64(total)/bytesPerMs,
		StyleSize:         styleSize,
		ScriptSize:        scriptSize,
		MarkupSize:        markupSize,
		OptimizationScore: score,
	}
}
