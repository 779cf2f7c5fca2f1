package handler

import (
	"errors"

	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type JobRankingHandler struct {
	ranking usecase.JobRankingUsecase
	recalc  usecase.BatchRecalcUsecase
}

func NewJobRankingHandler(ranking usecase.JobRankingUsecase, recalc usecase.BatchRecalcUsecase) *JobRankingHandler {
	return &JobRankingHandler{ranking: ranking, recalc: recalc}
}

func (h *JobRankingHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/jobs")
	grp.Get("/:job_id/candidates", h.RankCandidates)
	grp.Post("/:job_id/recalculate", h.Recalculate)
}

func (h *JobRankingHandler) RankCandidates(c fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	ranked, err := h.ranking.RankCandidates(c.Context(), jobID)
	if err != nil {
		return mapRankingUsecaseError(err)
	}

	out := dto.CandidateRankingResponse{
		JobID:      jobID,
		Total:      len(ranked),
		Candidates: make([]dto.RankedCandidateResponse, 0, len(ranked)),
	}
	for _, cs := range ranked {
		out.Candidates = append(out.Candidates, dto.RankedCandidateResponse{
			CandidateID: cs.CandidateID,
			FullName:    cs.FullName,
			MatchScore:  cs.Score,
			Factors:     factorBreakdown(cs.Factors),
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *JobRankingHandler) Recalculate(c fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	summary, err := h.recalc.RecalculateJob(c.Context(), jobID)
	if err != nil {
		return mapRankingUsecaseError(err)
	}

	out := dto.RecalcSummaryResponse{
		JobID:        summary.JobID,
		Applications: summary.Applications,
		Scored:       summary.Scored,
		Failed:       summary.Failed,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func mapRankingUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrRecalcInProgress):
		return middleware.NewAppError(fiber.StatusConflict, "Recalculation already in progress", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
