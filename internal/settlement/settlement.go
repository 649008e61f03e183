package settlement

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mrusso19/schedina/internal/config"
	"github.com/mrusso19/schedina/internal/domain"
	"github.com/mrusso19/schedina/internal/matches"
	"github.com/mrusso19/schedina/internal/service/wagerservice"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const maxConcurrentSettles = 10

// settlingWagers tracks wagers currently in flight so that a scheduled run
// and a manual run overlapping in this process do not even race to the
// database latch.
var settlingWagers sync.Map

// Service is the ledger engine: it evaluates finished matches against
// outstanding wagers and applies payouts and standings points. A background
// ticker and user-initiated triggers may invoke it concurrently; the
// evaluated latch on each wager keeps settlement exactly-once.
type Service struct {
	wagerRepo      wagerservice.Repo
	source         matches.Source
	updateInterval time.Duration
}

func New(cfg *config.Config, wagerRepo wagerservice.Repo, source matches.Source) *Service {
	return &Service{
		wagerRepo:      wagerRepo,
		source:         source,
		updateInterval: cfg.SettlePeriod(),
	}
}

// Start runs one settlement immediately, then settles on the configured
// interval until the context is cancelled. No run starts after cancellation.
func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Settlement service started", zap.Duration("interval", s.updateInterval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	s.Settle(ctx)

	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping settlement service")
			return
		case <-ticker.C:
			s.Settle(ctx)
		}
	}
}

// Settle evaluates every outstanding wager on every finished match and
// returns how many wagers were newly evaluated. A failing match data source
// degrades to a no-op; the next trigger retries naturally.
func (s *Service) Settle(ctx context.Context) int {
	finished, err := s.source.List(ctx, matches.StatusFinished)
	if err != nil {
		zap.L().Error("Failed to fetch finished matches", zap.Error(err))
		return 0
	}

	total := 0
	for _, match := range finished {
		outcome, score, ok := match.Result()
		if !ok {
			continue
		}
		total += s.settleMatch(ctx, match.ID, outcome, score)
	}

	if total > 0 {
		zap.L().Info("Settlement run evaluated wagers", zap.Int("count", total))
	}
	return total
}

func (s *Service) settleMatch(ctx context.Context, matchID int64, outcome domain.Outcome, score domain.Score) int {
	wagers, err := s.wagerRepo.FindUnevaluatedByMatch(ctx, matchID)
	if err != nil {
		zap.L().Error("Failed to fetch wagers for settlement", zap.Int64("matchID", matchID), zap.Error(err))
		return 0
	}

	var count atomic.Int64
	var g errgroup.Group
	g.SetLimit(maxConcurrentSettles)

	for _, wager := range wagers {
		wager := wager
		if _, loaded := settlingWagers.LoadOrStore(wager.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			defer settlingWagers.Delete(wager.ID)

			creditDelta, points := Evaluate(wager, outcome, score)
			settled, err := s.wagerRepo.Settle(ctx, wager, creditDelta, points)
			if err != nil {
				// Isolated failure: the wager stays unevaluated and is
				// retried on the next run.
				zap.L().Error("Failed to settle wager", zap.Int("wagerID", wager.ID), zap.Error(err))
				return nil
			}
			if settled {
				count.Add(1)
			}
			return nil
		})
	}

	g.Wait()
	return int(count.Load())
}

// Evaluate computes the balance delta and standings points for a wager given
// the real result. An exact score doubles the stake, a bare correct outcome
// refunds it, and a miss costs twice the stake on top of the one already
// held at placement.
func Evaluate(wager domain.Wager, outcome domain.Outcome, score domain.Score) (creditDelta, points int) {
	if wager.Outcome != outcome {
		return -2 * wager.Stake, 0
	}
	if wager.Score == score {
		return 2 * wager.Stake, 5
	}
	return wager.Stake, 3
}
