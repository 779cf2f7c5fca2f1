package matching

// ScoreAvailability is a fixed lookup on the candidate's availability status.
// Unknown statuses score a cautious 0.3 instead of failing.
func ScoreAvailability(candidate CandidateProfile) float64 {
	if s, ok := availabilityScores[candidate.Availability]; ok {
		return s
	}
	return unknownAvailability
}
