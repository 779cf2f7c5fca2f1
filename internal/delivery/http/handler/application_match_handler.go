package handler

import (
	"errors"

	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/domain/matching"
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ApplicationMatchHandler struct {
	uc usecase.ApplicationMatchUsecase
}

func NewApplicationMatchHandler(uc usecase.ApplicationMatchUsecase) *ApplicationMatchHandler {
	return &ApplicationMatchHandler{uc: uc}
}

func (h *ApplicationMatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/applications")
	grp.Post("/:application_id/match", h.ComputeMatch)
}

func (h *ApplicationMatchHandler) ComputeMatch(c fiber.Ctx) error {
	applicationID, err := uuid.Parse(c.Params("application_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid application id", nil, err)
	}

	res, err := h.uc.ComputeMatch(c.Context(), applicationID)
	if err != nil {
		return mapMatchUsecaseError(err)
	}

	out := dto.MatchResultResponse{
		ApplicationID: res.ApplicationID,
		JobID:         res.JobID,
		CandidateID:   res.CandidateID,
		MatchScore:    res.Score,
		Factors:       factorBreakdown(res.Factors),
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func factorBreakdown(f matching.FactorScores) dto.FactorBreakdownResponse {
	return dto.FactorBreakdownResponse{
		Skills:         f.Skills,
		Experience:     f.Experience,
		Location:       f.Location,
		Salary:         f.Salary,
		Availability:   f.Availability,
		Education:      f.Education,
		EmploymentType: f.EmploymentType,
	}
}

func mapMatchUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrApplicationNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Application not found", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrCandidateNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Candidate not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
