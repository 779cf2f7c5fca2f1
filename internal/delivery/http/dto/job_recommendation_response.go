package dto

import "github.com/google/uuid"

type RecommendedJobResponse struct {
	JobID      uuid.UUID `json:"job_id"`
	Title      string    `json:"title"`
	Company    string    `json:"company"`
	MatchScore int       `json:"match_score"`
}

type JobRecommendationsResponse struct {
	CandidateID uuid.UUID                `json:"candidate_id"`
	Total       int                      `json:"total"`
	Jobs        []RecommendedJobResponse `json:"jobs"`
}
