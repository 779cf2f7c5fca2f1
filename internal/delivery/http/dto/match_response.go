package dto

import "github.com/google/uuid"

type FactorBreakdownResponse struct {
	Skills         float64 `json:"skills"`
	Experience     float64 `json:"experience"`
	Location       float64 `json:"location"`
	Salary         float64 `json:"salary"`
	Availability   float64 `json:"availability"`
	Education      float64 `json:"education"`
	EmploymentType float64 `json:"employment_type"`
}

type MatchResultResponse struct {
	ApplicationID uuid.UUID               `json:"application_id"`
	JobID         uuid.UUID               `json:"job_id"`
	CandidateID   uuid.UUID               `json:"candidate_id"`
	MatchScore    int                     `json:"match_score"`
	Factors       FactorBreakdownResponse `json:"factors"`
}
