package wire

import (
	"context"
	"net/http"
	"time"

	"ecommerce-backend/internal/adaptor"
	"ecommerce-backend/internal/data/repository"
	"ecommerce-backend/internal/usecase"
	"ecommerce-backend/pkg/middleware"
	"ecommerce-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

const healthTimeout = 2 * time.Second

// App holds the assembled router.
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and routes from the repositories and config.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) (*App, error) {
	tokens, err := utils.NewTokenManager(config.JWT.Secret, time.Duration(config.JWT.ExpiryHours)*time.Hour)
	if err != nil {
		return nil, err
	}

	service := usecase.NewService(repo, config, utils.NewPasswordHasher(), tokens, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, tokens, config, logger)

	return &App{
		Router: router,
	}, nil
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	tokens middleware.TokenVerifier,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.CORS.AllowedOrigins))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseSuccess(w, "Welcome to "+config.App.Name, nil)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		if err := repo.DB.Ping(ctx); err != nil {
			logger.Error("Health check failed", zap.Error(err))
			utils.ResponseJSON(w, http.StatusServiceUnavailable, utils.StatusFailed, "database unavailable", nil)
			return
		}
		utils.ResponseSuccess(w, "OK", nil)
	})

	auth := middleware.AuthJWT(tokens, logger)

	r.Route("/api", func(r chi.Router) {
		wireUser(r, handler.Auth, handler.User, auth)
		wireCategory(r, handler.Category, auth)
		wireProduct(r, handler.Product, auth)
		wireAddress(r, handler.Address, auth)
		wireCart(r, handler.Cart, auth)
		wireOrder(r, handler.Order, auth)
	})

	return r
}
