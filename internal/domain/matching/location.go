package matching

import "strings"

// ScoreLocation walks a fixed priority ladder; the first matching rule wins,
// there is no blending between rules.
func ScoreLocation(job JobProfile, candidate CandidateProfile) float64 {
	if job.Remote {
		return 1.0
	}
	if candidate.RemotePreference == RemoteOnly {
		return 1.0
	}

	sameCity := equalPlace(job.City, candidate.City)
	sameState := equalPlace(job.State, candidate.State)

	if sameCity && sameState {
		return 1.0
	}
	if sameState {
		return sameStateScore
	}
	if candidate.WillingToRelocate {
		return relocationScore
	}
	return locationFloor
}

func equalPlace(a, b string) bool {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	if a == "" || b == "" {
		return false
	}
	return strings.EqualFold(a, b)
}
