package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/finance-server/internal/finance"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/storage"
)

type DashboardService struct {
	reader *storage.Reader
	clock  func() time.Time
}

func NewDashboardService(reader *storage.Reader, clock func() time.Time) *DashboardService {
	return &DashboardService{reader: reader, clock: clock}
}

// Summary loads the full ledger snapshot and aggregates it as of the service clock.
func (s *DashboardService) Summary(ctx context.Context) (finance.Summary, error) {
	var (
		transactions []finance.Transaction
		categories   []finance.Category
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer logging.StartTiming(ctx, "loadTransactionsMs")()
		var err error
		transactions, err = s.reader.Transactions.List(gctx)
		return err
	})
	g.Go(func() error {
		defer logging.StartTiming(ctx, "loadCategoriesMs")()
		var err error
		categories, err = s.reader.Categories.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return finance.Summary{}, err
	}

	return finance.Summarize(transactions, categories, s.clock()), nil
}
