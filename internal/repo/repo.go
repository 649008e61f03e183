package repo

import (
	"github.com/mrusso19/schedina/internal/pg"
	leaguerepo "github.com/mrusso19/schedina/internal/repo/league-repo"
	standingrepo "github.com/mrusso19/schedina/internal/repo/standing-repo"
	userrepo "github.com/mrusso19/schedina/internal/repo/user-repo"
	wagerrepo "github.com/mrusso19/schedina/internal/repo/wager-repo"
	"github.com/mrusso19/schedina/internal/service/authservice"
	"github.com/mrusso19/schedina/internal/service/leagueservice"
	"github.com/mrusso19/schedina/internal/service/wagerservice"
)

type Repositories struct {
	UserRepo     authservice.Repo
	LeagueRepo   leagueservice.LeagueRepo
	StandingRepo leagueservice.StandingRepo
	WagerRepo    wagerservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	leagueRepo := leaguerepo.New(conn)
	standingRepo := standingrepo.New(conn)
	wagerRepo := wagerrepo.New(conn, txManager)

	return &Repositories{
		UserRepo:     userRepo,
		LeagueRepo:   leagueRepo,
		StandingRepo: standingRepo,
		WagerRepo:    wagerRepo,
	}
}
