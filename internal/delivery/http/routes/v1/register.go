package v1

import (
	"log"

	"talent-match/internal/config"
	"talent-match/internal/database"
	"talent-match/internal/delivery/http/handler"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/domain/matching"
	"talent-match/internal/pkg/jwt"
	"talent-match/internal/repository"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// Register wires the full v1 surface: repositories over db, the scoring
// engine, the usecases and their handlers. Recruiter-only routes sit behind
// a role check on top of the access-token middleware.
func Register(r fiber.Router, cfg config.Config, db database.DB, cache usecase.MatchCache, logger *log.Logger) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := repository.NewPostgresUserRepository(db)
	applicationRepo := repository.NewPostgresApplicationRepository(db)
	matchingRepo := repository.NewPostgresMatchingRepository(db)

	engine := matching.NewEngine(matching.DefaultWeights())

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	matchUC := usecase.NewApplicationMatchUsecase(applicationRepo, matchingRepo, engine, cache)
	rankingUC := usecase.NewJobRankingUsecase(matchingRepo, engine)
	recommendUC := usecase.NewJobRecommendationUsecase(matchingRepo, applicationRepo, engine, cache, cfg.Matching.CacheTTL, logger)
	recalcUC := usecase.NewBatchRecalcUsecase(applicationRepo, matchingRepo, engine, cache, cfg.Matching.RecalcWorkers, logger)

	authGroup := r.Group("/auth")
	handler.NewAuthHandler(authUC).RegisterRoutes(authGroup)

	protected := r.Group("", authMw.Middleware())

	handler.NewJobRecommendationHandler(recommendUC, userRepo).RegisterRoutes(protected)

	recruiter := protected.Group("", authMw.RequireRole(repository.RoleRecruiter))
	handler.NewApplicationMatchHandler(matchUC).RegisterRoutes(recruiter)
	handler.NewJobRankingHandler(rankingUC, recalcUC).RegisterRoutes(recruiter)
}
