package dto

import "github.com/google/uuid"

type RankedCandidateResponse struct {
	CandidateID uuid.UUID               `json:"candidate_id"`
	FullName    string                  `json:"full_name"`
	MatchScore  int                     `json:"match_score"`
	Factors     FactorBreakdownResponse `json:"factors"`
}

type CandidateRankingResponse struct {
	JobID      uuid.UUID                 `json:"job_id"`
	Total      int                       `json:"total"`
	Candidates []RankedCandidateResponse `json:"candidates"`
}
