package matching

import "math"

// ScoreExperience compares the candidate's total years of experience against
// the band expected for the job's level. Missing years are penalized hard
// (20% per year, floor 0); excess years mildly (5% per year, floor 0.7) since
// over-qualification is tolerated. Inside the band the score decays linearly
// with distance from the ideal point, at most 30%.
func ScoreExperience(job JobProfile, candidate CandidateProfile) float64 {
	band, ok := experienceRanges[job.ExperienceLevel]
	if !ok {
		band = experienceRanges[ExperienceMid]
	}

	years := candidate.YearsExperience
	if years < 0 {
		years = 0
	}

	switch {
	case years < band.Min:
		return math.Max(0, 1-missingYearPenalty*float64(band.Min-years))
	case years > band.Max:
		return math.Max(overqualifiedFloor, 1-excessYearPenalty*float64(years-band.Max))
	}

	maxDeviation := band.Ideal - band.Min
	if band.Max-band.Ideal > maxDeviation {
		maxDeviation = band.Max - band.Ideal
	}
	if maxDeviation == 0 {
		return 1.0
	}

	deviation := math.Abs(float64(years - band.Ideal))
	return 1 - idealDevPenalty*(deviation/float64(maxDeviation))
}
