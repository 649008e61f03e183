package service

import (
	"github.com/mrusso19/schedina/internal/handlers/auth"
	"github.com/mrusso19/schedina/internal/handlers/leagues"
	"github.com/mrusso19/schedina/internal/handlers/wagers"
	"github.com/mrusso19/schedina/internal/matches"

	pkgauth "github.com/mrusso19/schedina/pkg/auth"

	"github.com/mrusso19/schedina/internal/repo"
	authservice "github.com/mrusso19/schedina/internal/service/authservice"
	leagueservice "github.com/mrusso19/schedina/internal/service/leagueservice"
	wagerservice "github.com/mrusso19/schedina/internal/service/wagerservice"
)

type Services struct {
	AuthService   auth.Service
	LeagueService leagues.Service
	WagerService  wagers.Service
}

func New(repo *repo.Repositories, source matches.Source) *Services {
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})
	leagueService := leagueservice.New(repo.LeagueRepo, repo.StandingRepo, &pkgauth.HashService{})
	wagerService := wagerservice.New(repo.WagerRepo, repo.UserRepo, repo.LeagueRepo, repo.StandingRepo, source)

	return &Services{
		AuthService:   authService,
		LeagueService: leagueService,
		WagerService:  wagerService,
	}
}
