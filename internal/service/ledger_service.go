package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/ecoledger/internal/domain"
	"github.com/fsdevblog/ecoledger/internal/repository/repoargs"
	"github.com/fsdevblog/ecoledger/pkg/uow"
)

const DefaultPostingsLimit uint = 100

// LedgerService операции чтения по счетам и леджеру.
type LedgerService struct {
	accountRepo    AccountRepository
	postingRepo    PostingRepository
	withdrawalRepo WithdrawalRepository
}

func NewLedgerService(u uow.UOW) (*LedgerService, error) {
	accountRepo, err := uow.GetRepositoryAs[AccountRepository](u, uow.RepositoryName(repoargs.AccountRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	postingRepo, err := uow.GetRepositoryAs[PostingRepository](u, uow.RepositoryName(repoargs.PostingRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	withdrawalRepo, err := uow.GetRepositoryAs[WithdrawalRepository](u, uow.RepositoryName(repoargs.WithdrawalRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &LedgerService{
		accountRepo:    accountRepo,
		postingRepo:    postingRepo,
		withdrawalRepo: withdrawalRepo,
	}, nil
}

// Balance возвращает счет пользователя. Счет создается с нулевым балансом при первом обращении.
func (l *LedgerService) Balance(ctx context.Context, userID int64) (*domain.Account, error) {
	account, err := l.accountRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("getting balance for user %d: %w", userID, err)
	}
	return account, nil
}

// Postings возвращает последние записи леджера пользователя, новые первыми.
func (l *LedgerService) Postings(ctx context.Context, userID int64, limit uint) ([]domain.Posting, error) {
	if limit == 0 {
		limit = DefaultPostingsLimit
	}
	account, err := l.accountRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("getting postings for user %d: %w", userID, err)
	}
	postings, err := l.postingRepo.GetByAccountID(ctx, account.ID, limit)
	if err != nil {
		return nil, fmt.Errorf("getting postings for user %d: %w", userID, err)
	}
	return postings, nil
}

func (l *LedgerService) Withdrawals(ctx context.Context, userID int64) ([]domain.WithdrawalRequest, error) {
	account, err := l.accountRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("getting withdrawals for user %d: %w", userID, err)
	}
	withdrawals, err := l.withdrawalRepo.GetByAccountID(ctx, account.ID)
	if err != nil {
		return nil, fmt.Errorf("getting withdrawals for user %d: %w", userID, err)
	}
	return withdrawals, nil
}

// ReconciliationReport результат сверки баланса счета с историей операций.
type ReconciliationReport struct {
	repoargs.Reconciliation
	Expected   int64
	Consistent bool
}

// Reconcile сверяет баланс счета с суммой его операций:
// balance = начисления - списания (кроме отклоненных) - штрафы.
func (l *LedgerService) Reconcile(ctx context.Context, accountID int64) (*ReconciliationReport, error) {
	rec, err := l.accountRepo.Reconciliation(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("reconciling account %d: %w", accountID, err)
	}
	expected := rec.PostingsTotal - rec.WithdrawnTotal - rec.PenaltiesTotal
	return &ReconciliationReport{
		Reconciliation: *rec,
		Expected:       expected,
		Consistent:     expected == rec.Balance,
	}, nil
}
