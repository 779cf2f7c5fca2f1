package matching

import "math"

// ScoreSalary scores the overlap between what the candidate wants and what
// the job offers. Either side missing its minimum means no usable salary
// data, which scores the flat neutral 0.8 rather than penalizing the pair.
func ScoreSalary(job JobProfile, candidate CandidateProfile) float64 {
	if job.SalaryMin == nil || candidate.DesiredSalaryMin == nil {
		return missingSalaryScore
	}

	jobMin := float64(*job.SalaryMin)
	jobMax := jobMin * defaultOfferedSpan
	if job.SalaryMax != nil {
		jobMax = float64(*job.SalaryMax)
	}

	candMin := float64(*candidate.DesiredSalaryMin)
	candMax := candMin * defaultDesiredSpan
	if candidate.DesiredSalaryMax != nil {
		candMax = float64(*candidate.DesiredSalaryMax)
	}

	if jobMin <= 0 || candMin <= 0 {
		return missingSalaryScore
	}

	overlapLow := math.Max(jobMin, candMin)
	overlapHigh := math.Min(jobMax, candMax)

	if overlapLow <= overlapHigh {
		shorter := math.Min(jobMax-jobMin, candMax-candMin)
		if shorter <= 0 {
			// Point ranges that still overlap are a perfect fit.
			return 1.0
		}
		return math.Min(1.0, 0.5+0.5*(overlapHigh-overlapLow)/shorter)
	}

	if candMin > jobMax {
		// Candidate wants more than the job can offer.
		return math.Max(0, 0.5-(candMin-jobMax)/jobMax)
	}

	// Candidate's whole range sits below the offer.
	return belowOfferedScore
}
