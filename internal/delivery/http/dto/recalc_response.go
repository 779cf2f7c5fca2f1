package dto

import "github.com/google/uuid"

type RecalcSummaryResponse struct {
	JobID        uuid.UUID `json:"job_id"`
	Applications int       `json:"applications"`
	Scored       int       `json:"scored"`
	Failed       int       `json:"failed"`
}
