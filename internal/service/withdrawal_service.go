package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/ecoledger/internal/domain"
	"github.com/fsdevblog/ecoledger/internal/metrics"
	"github.com/fsdevblog/ecoledger/internal/repository/repoargs"
	"github.com/fsdevblog/ecoledger/pkg/uow"
)

// PayMeCooldown минимальный интервал между заявками PayMe одного счета.
const PayMeCooldown = 24 * time.Hour

// WithdrawalService списания со счетов: выплаты администратором, заявки PayMe и авансовые заявки агентов.
type WithdrawalService struct {
	uow uow.UOW
	now func() time.Time
}

func NewWithdrawalService(u uow.UOW) *WithdrawalService {
	return &WithdrawalService{uow: u, now: time.Now}
}

// SetClock подменяет источник текущего времени.
func (w *WithdrawalService) SetClock(now func() time.Time) *WithdrawalService {
	w.now = now
	return w
}

type withdrawalRepos struct {
	accounts    AccountRepository
	withdrawals WithdrawalRepository
}

func withdrawalReposFromTX(tx uow.TX) (*withdrawalRepos, error) {
	accounts, err := uow.GetAs[AccountRepository](tx, uow.RepositoryName(repoargs.AccountRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	withdrawals, err := uow.GetAs[WithdrawalRepository](tx, uow.RepositoryName(repoargs.WithdrawalRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &withdrawalRepos{accounts: accounts, withdrawals: withdrawals}, nil
}

type PayOutArgs struct {
	AdminUserID int64
	UserID      int64
	Amount      int64
	Card        string
	CardName    string
}

// PayOut списывает сумму со счета пользователя и сразу фиксирует выплату в состоянии paid.
func (w *WithdrawalService) PayOut(ctx context.Context, args PayOutArgs) (*domain.WithdrawalRequest, error) {
	if args.Amount <= 0 {
		return nil, domain.NewValidationError("amount", "must be positive")
	}

	var request *domain.WithdrawalRequest
	txErr := w.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		r, err := withdrawalReposFromTX(tx)
		if err != nil {
			return err
		}
		account, err := r.accounts.GetOrCreate(c, args.UserID)
		if err != nil {
			return err //nolint:wrapcheck
		}
		if _, err = r.accounts.Debit(c, account.ID, args.Amount); err != nil {
			return err //nolint:wrapcheck
		}
		request, err = r.withdrawals.Create(c, repoargs.WithdrawalCreate{
			AccountID:   account.ID,
			Kind:        domain.WithdrawalKindPayOut,
			Amount:      args.Amount,
			State:       domain.WithdrawalStatePaid,
			Card:        args.Card,
			CardName:    args.CardName,
			AdminUserID: &args.AdminUserID,
		})
		return err //nolint:wrapcheck
	})

	metrics.ObserveWithdrawal(domain.WithdrawalKindPayOut, txErr)
	if txErr != nil {
		return nil, fmt.Errorf("payout for user %d: %w", args.UserID, txErr)
	}
	return request, nil
}

type PayMeArgs struct {
	UserID   int64
	Amount   int64
	Card     string
	CardName string
}

// PayMeResult результат заявки PayMe. Если AlreadyProcessing == true, Request содержит предыдущую заявку,
// а баланс не изменялся.
type PayMeResult struct {
	Request           *domain.WithdrawalRequest
	AlreadyProcessing bool
}

// RequestPayMe создает заявку на вывод средств пользователем. Строка счета блокируется до проверки интервала,
// поэтому две параллельные заявки не могут обе пройти проверку.
func (w *WithdrawalService) RequestPayMe(ctx context.Context, args PayMeArgs) (*PayMeResult, error) {
	if args.Amount <= 0 {
		return nil, domain.NewValidationError("amount", "must be positive")
	}
	if args.Card == "" {
		return nil, domain.NewValidationError("card", "is required")
	}

	var result PayMeResult
	txErr := w.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		r, err := withdrawalReposFromTX(tx)
		if err != nil {
			return err
		}
		account, err := r.accounts.GetOrCreate(c, args.UserID)
		if err != nil {
			return err //nolint:wrapcheck
		}
		if _, err = r.accounts.LockByID(c, account.ID); err != nil {
			return err //nolint:wrapcheck
		}

		last, err := r.withdrawals.LastByAccount(c, account.ID, domain.WithdrawalKindPayMe)
		if err != nil && !errors.Is(err, domain.ErrRecordNotFound) {
			return err //nolint:wrapcheck
		}
		if last != nil && w.now().Sub(last.CreatedAt) < PayMeCooldown {
			result = PayMeResult{Request: last, AlreadyProcessing: true}
			return nil
		}

		if _, err = r.accounts.Debit(c, account.ID, args.Amount); err != nil {
			return err //nolint:wrapcheck
		}
		request, err := r.withdrawals.Create(c, repoargs.WithdrawalCreate{
			AccountID: account.ID,
			Kind:      domain.WithdrawalKindPayMe,
			Amount:    args.Amount,
			State:     domain.WithdrawalStatePending,
			Card:      args.Card,
			CardName:  args.CardName,
		})
		if err != nil {
			return err //nolint:wrapcheck
		}
		result = PayMeResult{Request: request}
		return nil
	})

	metrics.ObserveWithdrawal(domain.WithdrawalKindPayMe, txErr)
	if txErr != nil {
		return nil, fmt.Errorf("payme for user %d: %w", args.UserID, txErr)
	}
	return &result, nil
}

// MarkPaid переводит заявку из pending в paid.
func (w *WithdrawalService) MarkPaid(ctx context.Context, requestID, adminUserID int64) (*domain.WithdrawalRequest, error) {
	return w.closeRequest(ctx, requestID, adminUserID, domain.WithdrawalStatePaid)
}

// Reject переводит заявку из pending в rejected и возвращает списанную сумму на счет.
func (w *WithdrawalService) Reject(ctx context.Context, requestID, adminUserID int64) (*domain.WithdrawalRequest, error) {
	return w.closeRequest(ctx, requestID, adminUserID, domain.WithdrawalStateRejected)
}

func (w *WithdrawalService) closeRequest(
	ctx context.Context,
	requestID int64,
	adminUserID int64,
	state domain.WithdrawalState,
) (*domain.WithdrawalRequest, error) {
	var request *domain.WithdrawalRequest
	txErr := w.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		r, err := withdrawalReposFromTX(tx)
		if err != nil {
			return err
		}
		locked, err := r.withdrawals.LockByID(c, requestID)
		if err != nil {
			return err //nolint:wrapcheck
		}
		if locked.State != domain.WithdrawalStatePending {
			return fmt.Errorf("withdrawal is %s: %w", locked.State, domain.ErrInvalidTransition)
		}
		if state == domain.WithdrawalStateRejected {
			if _, err = r.accounts.Credit(c, locked.AccountID, locked.Amount); err != nil {
				return err //nolint:wrapcheck
			}
		}
		request, err = r.withdrawals.UpdateState(c, repoargs.WithdrawalStateUpdate{
			ID:          requestID,
			State:       state,
			AdminUserID: &adminUserID,
		})
		return err //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("set withdrawal %d %s: %w", requestID, state, txErr)
	}
	return request, nil
}
