package service

import (
	"context"
	"fmt"
	"time"

	"github.com/avelacorte/moneta/internal/db"
	"github.com/avelacorte/moneta/internal/dedupe"
	"github.com/avelacorte/moneta/internal/domain"
	"github.com/avelacorte/moneta/internal/repository"
)

type dedupeService struct {
	purchases repository.PurchaseRepo
	pairs     repository.ResolvedPairRepo
	uow       db.UnitOfWork
	observer  UseCaseObserver
	now       func() time.Time
}

func NewDedupeService(
	purchases repository.PurchaseRepo,
	pairs repository.ResolvedPairRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) DedupeService {
	return &dedupeService{
		purchases: purchases,
		pairs:     pairs,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *dedupeService) Scan(ctx context.Context) ([]dedupe.Match, error) {
	purchases, err := s.purchases.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("loading purchases: %w", err)
	}
	resolved, err := s.resolvedSet(ctx)
	if err != nil {
		return nil, err
	}
	return dedupe.DetectMatches(derefPurchases(purchases), resolved), nil
}

func (s *dedupeService) resolvedSet(ctx context.Context) (dedupe.MapResolvedSet, error) {
	pairs, err := s.pairs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading resolved pairs: %w", err)
	}
	set := make(dedupe.MapResolvedSet, len(pairs))
	for _, p := range pairs {
		set[p.Key()] = p.Kind
	}
	return set, nil
}

func (s *dedupeService) Merge(ctx context.Context, primaryID, secondaryID string) error {
	return s.resolve(ctx, "merge-duplicate", primaryID, secondaryID, dedupe.PlanMerge)
}

func (s *dedupeService) ArchiveDuplicate(ctx context.Context, primaryID, secondaryID string) error {
	return s.resolve(ctx, "archive-duplicate", primaryID, secondaryID, dedupe.PlanArchiveDuplicate)
}

func (s *dedupeService) MarkIntentional(ctx context.Context, aID, bID string) error {
	return s.resolve(ctx, "mark-intentional", aID, bID, dedupe.PlanMarkIntentional)
}

type resolutionPlanner func(primary, secondary domain.Purchase, now time.Time) dedupe.Resolution

// resolve loads the pair, plans the resolution, and applies every edit
// plus the pair record in one transaction. Re-resolving an already
// resolved pair is a no-op.
func (s *dedupeService) resolve(ctx context.Context, name, primaryID, secondaryID string, plan resolutionPlanner) (err error) {
	startedAt := s.now()
	fields := map[string]any{"primary": primaryID, "secondary": secondaryID}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      name,
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if primaryID == secondaryID {
		return fmt.Errorf("cannot resolve a purchase against itself")
	}

	already, err := s.pairs.Has(ctx, primaryID, secondaryID)
	if err != nil {
		return err
	}
	if already {
		fields["noop"] = true
		return nil
	}

	primary, err := s.purchases.GetByID(ctx, primaryID)
	if err != nil {
		return fmt.Errorf("loading primary purchase: %w", err)
	}
	secondary, err := s.purchases.GetByID(ctx, secondaryID)
	if err != nil {
		return fmt.Errorf("loading secondary purchase: %w", err)
	}

	resolution := plan(*primary, *secondary, s.now())

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPurchases := repository.NewSQLitePurchaseRepo(tx)
		txPairs := repository.NewSQLiteResolvedPairRepo(tx)

		for i := range resolution.Update {
			if err := txPurchases.Update(ctx, &resolution.Update[i]); err != nil {
				return err
			}
		}
		for _, id := range resolution.ArchiveIDs {
			if err := txPurchases.Archive(ctx, id); err != nil {
				return err
			}
		}
		for _, id := range resolution.DeleteIDs {
			if err := txPurchases.Delete(ctx, id); err != nil {
				return err
			}
		}
		return txPairs.Add(ctx, resolution.Pair)
	})
}
