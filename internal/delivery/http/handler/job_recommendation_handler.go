package handler

import (
	"errors"
	"strconv"
	"strings"

	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/pkg/response"
	"talent-match/internal/repository"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type JobRecommendationHandler struct {
	uc    usecase.JobRecommendationUsecase
	users repository.UserRepository
}

func NewJobRecommendationHandler(uc usecase.JobRecommendationUsecase, users repository.UserRepository) *JobRecommendationHandler {
	return &JobRecommendationHandler{uc: uc, users: users}
}

func (h *JobRecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/candidates")
	grp.Get("/:candidate_id/recommendations", h.GetRecommendations)
}

func (h *JobRecommendationHandler) GetRecommendations(c fiber.Ctx) error {
	candidateID, err := uuid.Parse(c.Params("candidate_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid candidate id", nil, err)
	}

	if err := h.authorizeCandidateAccess(c, candidateID); err != nil {
		return err
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid limit", nil, err)
		}
	}

	jobs, err := h.uc.GetRecommendations(c.Context(), candidateID, limit)
	if err != nil {
		return mapRecommendationUsecaseError(err)
	}

	out := dto.JobRecommendationsResponse{
		CandidateID: candidateID,
		Total:       len(jobs),
		Jobs:        make([]dto.RecommendedJobResponse, 0, len(jobs)),
	}
	for _, j := range jobs {
		out.Jobs = append(out.Jobs, dto.RecommendedJobResponse{
			JobID:      j.JobID,
			Title:      j.Title,
			Company:    j.Company,
			MatchScore: j.Score,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

// authorizeCandidateAccess lets recruiters read any candidate's
// recommendations; everyone else only their own profile's.
func (h *JobRecommendationHandler) authorizeCandidateAccess(c fiber.Ctx, candidateID uuid.UUID) error {
	role, _ := c.Locals(middleware.CtxRoleKey).(string)
	if strings.EqualFold(role, repository.RoleRecruiter) {
		return nil
	}

	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	ownCandidateID, err := h.users.FindCandidateIDByUser(c.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	if !candidateAccessAllowed(role, ownCandidateID, candidateID) {
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, nil)
	}
	return nil
}

func candidateAccessAllowed(role string, ownCandidateID, target uuid.UUID) bool {
	if strings.EqualFold(role, repository.RoleRecruiter) {
		return true
	}
	return ownCandidateID != uuid.Nil && ownCandidateID == target
}

func mapRecommendationUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrCandidateNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Candidate not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
