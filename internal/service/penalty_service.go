package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/ecoledger/internal/domain"
	"github.com/fsdevblog/ecoledger/internal/metrics"
	"github.com/fsdevblog/ecoledger/internal/repository/repoargs"
	"github.com/fsdevblog/ecoledger/pkg/uow"
)

type PenaltyService struct {
	uow uow.UOW
}

func NewPenaltyService(u uow.UOW) *PenaltyService {
	return &PenaltyService{uow: u}
}

type PenaltyArgs struct {
	PostingID int64
	Amount    int64
	Reason    string
}

// Apply штрафует запись леджера: списывает Amount со счета записи и помечает запись оштрафованной.
// Повторный штраф той же записи возвращает domain.ErrAlreadyPenalized, нехватка средств
// domain.ErrInsufficientFunds. В обоих случаях баланс не меняется.
func (p *PenaltyService) Apply(ctx context.Context, args PenaltyArgs) (*domain.Posting, error) {
	if args.Amount <= 0 {
		return nil, domain.NewValidationError("amount", "must be positive")
	}

	var posting *domain.Posting
	txErr := p.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		postingRepo, err := uow.GetAs[PostingRepository](tx, uow.RepositoryName(repoargs.PostingRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		accountRepo, err := uow.GetAs[AccountRepository](tx, uow.RepositoryName(repoargs.AccountRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}

		locked, err := postingRepo.LockByID(c, args.PostingID)
		if err != nil {
			return err //nolint:wrapcheck
		}
		if locked.IsPenalty {
			return domain.ErrAlreadyPenalized
		}
		if _, err = accountRepo.Debit(c, locked.AccountID, args.Amount); err != nil {
			return err //nolint:wrapcheck
		}
		posting, err = postingRepo.MarkPenalty(c, repoargs.PenaltyApply{
			PostingID:     args.PostingID,
			PenaltyAmount: args.Amount,
			Reason:        args.Reason,
		})
		return err //nolint:wrapcheck
	})

	metrics.ObservePenalty(txErr)
	if txErr != nil {
		return nil, fmt.Errorf("penalizing posting %d: %w", args.PostingID, txErr)
	}
	return posting, nil
}
