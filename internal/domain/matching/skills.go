package matching

import "github.com/google/uuid"

// ScoreSkills scores how well the candidate's skill set covers the job's
// requirements. Required and preferred requirements are scored separately;
// an empty set is treated as fully met so it never zeroes the factor.
// A job with no skill requirements scores 1.0.
func ScoreSkills(job JobProfile, candidate CandidateProfile) float64 {
	if len(job.Skills) == 0 {
		return 1.0
	}

	yearsBySkillID := make(map[uuid.UUID]int, len(candidate.Skills))
	for _, cs := range candidate.Skills {
		if cs.SkillID == uuid.Nil {
			continue
		}
		years := cs.YearsExperience
		if years < 0 {
			years = 0
		}
		yearsBySkillID[cs.SkillID] = years
	}

	var requiredTotal, requiredMet int
	var preferredTotal, preferredMet int

	for _, req := range job.Skills {
		if req.SkillID == uuid.Nil {
			continue
		}
		// Missing skill counts as zero years.
		years := yearsBySkillID[req.SkillID]
		minYears := req.MinYearsRequired
		if minYears < 0 {
			minYears = 0
		}
		met := years >= minYears

		if req.IsRequired {
			requiredTotal++
			if met {
				requiredMet++
			}
		} else {
			preferredTotal++
			if met {
				preferredMet++
			}
		}
	}

	if requiredTotal == 0 && preferredTotal == 0 {
		return 1.0
	}

	requiredRatio := 1.0
	if requiredTotal > 0 {
		requiredRatio = float64(requiredMet) / float64(requiredTotal)
	}
	preferredRatio := 1.0
	if preferredTotal > 0 {
		preferredRatio = float64(preferredMet) / float64(preferredTotal)
	}

	return requiredSkillWeight*requiredRatio + preferredSkillWeight*preferredRatio
}
