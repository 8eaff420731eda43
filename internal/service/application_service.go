package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/ecoledger/internal/domain"
	"github.com/fsdevblog/ecoledger/internal/metrics"
	"github.com/fsdevblog/ecoledger/internal/repository/repoargs"
	"github.com/fsdevblog/ecoledger/pkg/uow"
)

type CreateApplicationArgs struct {
	AgentUserID     int64
	SimModule       string
	Amount          int64
	PaymentType     domain.PaymentType
	ContainersCount int64
	Comment         string
}

// CreateApplication создает авансовую заявку агента в статусе pending. Баланс при этом не меняется.
func (w *WithdrawalService) CreateApplication(
	ctx context.Context,
	args CreateApplicationArgs,
) (*domain.Application, error) {
	switch {
	case args.Amount <= 0:
		return nil, domain.NewValidationError("amount", "must be positive")
	case args.PaymentType != domain.PaymentTypeCash && args.PaymentType != domain.PaymentTypeCard:
		return nil, domain.NewValidationError("payment_type", "must be cash or card")
	case args.ContainersCount < 0:
		return nil, domain.NewValidationError("containers_count", "must not be negative")
	}

	var application *domain.Application
	txErr := w.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, err := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		pointRepo, err := uow.GetAs[CollectionPointRepository](tx, uow.RepositoryName(repoargs.CollectionPointRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		appRepo, err := uow.GetAs[ApplicationRepository](tx, uow.RepositoryName(repoargs.ApplicationRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}

		agent, err := userRepo.FindByID(c, args.AgentUserID)
		if err != nil {
			return err //nolint:wrapcheck
		}
		if agent.Role != domain.RoleAgent {
			return domain.NewValidationError("role", "only agents can create applications")
		}
		point, err := pointRepo.GetBySimModule(c, args.SimModule)
		if err != nil {
			return err //nolint:wrapcheck
		}
		application, err = appRepo.Create(c, repoargs.ApplicationCreate{
			AgentUserID:       agent.ID,
			CollectionPointID: point.ID,
			Amount:            args.Amount,
			PaymentType:       args.PaymentType,
			ContainersCount:   args.ContainersCount,
			Comment:           args.Comment,
		})
		return err //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("creating application: %w", txErr)
	}
	return application, nil
}

// ApproveApplication одобряет заявку.
//
// Алгоритм работы:
//  1. Блокирует заявку, проверяет статус pending.
//  2. Резервирует сумму из авансового лимита точки. Превышение лимита - ValidationError.
//  3. Списывает сумму со счета агента. Нехватка средств - domain.ErrInsufficientFunds.
//  4. Создает списание вида application в состоянии approved и переводит заявку в approved.
//
// Все шаги выполняются в одной транзакции.
func (w *WithdrawalService) ApproveApplication(
	ctx context.Context,
	applicationID, adminUserID int64,
) (*domain.Application, *domain.WithdrawalRequest, error) {
	var application *domain.Application
	var request *domain.WithdrawalRequest
	txErr := w.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		r, err := withdrawalReposFromTX(tx)
		if err != nil {
			return err
		}
		appRepo, err := uow.GetAs[ApplicationRepository](tx, uow.RepositoryName(repoargs.ApplicationRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		pointRepo, err := uow.GetAs[CollectionPointRepository](tx, uow.RepositoryName(repoargs.CollectionPointRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}

		locked, err := appRepo.LockByID(c, applicationID)
		if err != nil {
			return err //nolint:wrapcheck
		}
		if locked.Status != domain.ApplicationStatusPending {
			return fmt.Errorf("application is %s: %w", locked.Status, domain.ErrInvalidTransition)
		}
		if err = pointRepo.ReserveAdvanceCapacity(c, locked.CollectionPointID, locked.Amount); err != nil {
			return err //nolint:wrapcheck
		}
		account, err := r.accounts.GetOrCreate(c, locked.AgentUserID)
		if err != nil {
			return err //nolint:wrapcheck
		}
		if _, err = r.accounts.Debit(c, account.ID, locked.Amount); err != nil {
			return err //nolint:wrapcheck
		}
		request, err = r.withdrawals.Create(c, repoargs.WithdrawalCreate{
			AccountID:     account.ID,
			Kind:          domain.WithdrawalKindApplication,
			Amount:        locked.Amount,
			State:         domain.WithdrawalStateApproved,
			AdminUserID:   &adminUserID,
			ApplicationID: &locked.ID,
		})
		if err != nil {
			return err //nolint:wrapcheck
		}
		application, err = appRepo.UpdateStatus(c, repoargs.ApplicationStatusUpdate{
			ID:         locked.ID,
			Status:     domain.ApplicationStatusApproved,
			ReviewedBy: &adminUserID,
		})
		return err //nolint:wrapcheck
	})

	metrics.ObserveWithdrawal(domain.WithdrawalKindApplication, txErr)
	if txErr != nil {
		return nil, nil, fmt.Errorf("approving application %d: %w", applicationID, txErr)
	}
	return application, request, nil
}

// RejectApplication отклоняет заявку в статусе pending. Баланс не меняется.
func (w *WithdrawalService) RejectApplication(
	ctx context.Context,
	applicationID, adminUserID int64,
	reason string,
) (*domain.Application, error) {
	return w.updateApplication(ctx, applicationID, func(current domain.ApplicationStatus) error {
		if current != domain.ApplicationStatusPending {
			return fmt.Errorf("application is %s: %w", current, domain.ErrInvalidTransition)
		}
		return nil
	}, repoargs.ApplicationStatusUpdate{
		ID:             applicationID,
		Status:         domain.ApplicationStatusRejected,
		RejectedReason: reason,
		ReviewedBy:     &adminUserID,
	})
}

// AdvanceApplication двигает одобренную заявку по цепочке approved -> in_way -> delivered.
func (w *WithdrawalService) AdvanceApplication(
	ctx context.Context,
	applicationID int64,
	next domain.ApplicationStatus,
) (*domain.Application, error) {
	return w.updateApplication(ctx, applicationID, func(current domain.ApplicationStatus) error {
		if !current.CanAdvanceTo(next) {
			return fmt.Errorf("application %s -> %s: %w", current, next, domain.ErrInvalidTransition)
		}
		return nil
	}, repoargs.ApplicationStatusUpdate{
		ID:     applicationID,
		Status: next,
	})
}

func (w *WithdrawalService) updateApplication(
	ctx context.Context,
	applicationID int64,
	check func(current domain.ApplicationStatus) error,
	update repoargs.ApplicationStatusUpdate,
) (*domain.Application, error) {
	var application *domain.Application
	txErr := w.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		appRepo, err := uow.GetAs[ApplicationRepository](tx, uow.RepositoryName(repoargs.ApplicationRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		locked, err := appRepo.LockByID(c, applicationID)
		if err != nil {
			return err //nolint:wrapcheck
		}
		if err = check(locked.Status); err != nil {
			return err
		}
		application, err = appRepo.UpdateStatus(c, update)
		return err //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("updating application %d: %w", applicationID, txErr)
	}
	return application, nil
}
