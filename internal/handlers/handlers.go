package handlers

import (
	"net/http"

	_ "github.com/mrusso19/schedina/docs"
	authhandlers "github.com/mrusso19/schedina/internal/handlers/auth"
	leaguehandlers "github.com/mrusso19/schedina/internal/handlers/leagues"
	wagerhandlers "github.com/mrusso19/schedina/internal/handlers/wagers"
	"github.com/mrusso19/schedina/internal/service"
	"github.com/mrusso19/schedina/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type LeagueHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Join(w http.ResponseWriter, r *http.Request)
	Leaderboard(w http.ResponseWriter, r *http.Request)
}

type WagerHandler interface {
	PlaceWager(w http.ResponseWriter, r *http.Request)
	GetWagers(w http.ResponseWriter, r *http.Request)
	GetMatches(w http.ResponseWriter, r *http.Request)
	RunSettlement(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler   AuthHandler
	LeagueHandler LeagueHandler
	WagerHandler  WagerHandler
}

func New(s *service.Services, settler wagerhandlers.Settler) *Handlers {
	return &Handlers{
		AuthHandler:   authhandlers.New(s.AuthService),
		LeagueHandler: leaguehandlers.New(s.LeagueService),
		WagerHandler:  wagerhandlers.New(s.WagerService, settler),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/user/register", h.AuthHandler.Register)
		r.Post("/user/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Get("/matches", h.WagerHandler.GetMatches)
			r.Route("/leagues", func(r chi.Router) {
				r.Post("/", h.LeagueHandler.Create)
				r.Post("/join", h.LeagueHandler.Join)
				r.Get("/{name}/leaderboard", h.LeagueHandler.Leaderboard)
			})
			r.Route("/wagers", func(r chi.Router) {
				r.Post("/", h.WagerHandler.PlaceWager)
				r.Get("/", h.WagerHandler.GetWagers)
			})
			r.Post("/settlement/run", h.WagerHandler.RunSettlement)
		})
	})

	return r
}
