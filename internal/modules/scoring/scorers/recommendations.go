package scorers

// recommendationBand pairs a minimum score with the advice given at or above it.
// Bands are ordered from the highest threshold down; the last band must start at 0.
type recommendationBand struct {
	min  float64
	text string
}

func pickRecommendation(bands []recommendationBand, score float64) string {
	for _, band := range bands {
		if score >= band.min {
			return band.text
		}
	}
	return bands[len(bands)-1].text
}

var technicalRecommendations = []recommendationBand{
	{75, "Problem class maps onto an established quantum algorithm family; track algorithm and hardware milestones."},
	{40, "Quantum advantage is speculative for this workload; benchmark hybrid approaches before committing."},
	{0, "No known quantum speedup for this workload; keep it on classical infrastructure."},
}

var scaleRecommendations = []recommendationBand{
	{70, "Problem size justifies formal quantum resource estimation."},
	{40, "Problem size is moderate; revisit as data volumes grow."},
	{0, "Problem size is small; classical solvers remain efficient."},
}

var economicRecommendations = []recommendationBand{
	{70, "Compute spend supports a dedicated quantum exploration budget."},
	{40, "Fund small cloud-based quantum experiments from the existing compute budget."},
	{0, "Compute spend is too low to justify quantum investment."},
}

var urgencyRecommendations = []recommendationBand{
	{70, "Latency tolerance suits queued execution on cloud quantum services."},
	{40, "Latency requirements limit quantum use to offline pre-computation."},
	{0, "Real-time latency requirements rule out current cloud quantum access."},
}

var organizationalRecommendations = []recommendationBand{
	{75, "Organisation is equipped to run quantum pilots in-house."},
	{45, "Close capability gaps through research partnerships or targeted training."},
	{0, "Build quantum literacy before committing to pilots."},
}
