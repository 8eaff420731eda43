package pgrepo

import (
	"context"
	"errors"

	"github.com/fsdevblog/ecoledger/internal/domain"
	"github.com/fsdevblog/ecoledger/internal/repository/repoargs"
	"github.com/fsdevblog/ecoledger/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const accountColumns = "id, created_at, updated_at, user_id, balance"

type AccountRepository struct {
	conn uow.DBTX
}

func NewAccountRepository(conn uow.DBTX) *AccountRepository {
	return &AccountRepository{conn: conn}
}

// GetOrCreate возвращает счет пользователя, создавая его при первом обращении.
func (a *AccountRepository) GetOrCreate(ctx context.Context, userID int64) (*domain.Account, error) {
	_, err := a.conn.Exec(ctx,
		`INSERT INTO accounts (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING`,
		userID,
	)
	if err != nil {
		return nil, convertErr(err, "create account for user %d", userID)
	}
	return a.GetByUserID(ctx, userID)
}

func (a *AccountRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Account, error) {
	row := a.conn.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE user_id = $1`, userID)
	account, err := scanAccount(row)
	if err != nil {
		return nil, convertErr(err, "get account by user %d", userID)
	}
	return account, nil
}

// LockByID читает счет с блокировкой строки до конца транзакции.
func (a *AccountRepository) LockByID(ctx context.Context, id int64) (*domain.Account, error) {
	row := a.conn.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1 FOR UPDATE`, id)
	account, err := scanAccount(row)
	if err != nil {
		return nil, convertErr(err, "lock account %d", id)
	}
	return account, nil
}

// Credit атомарно увеличивает баланс на amount и возвращает обновленный счет.
func (a *AccountRepository) Credit(ctx context.Context, id int64, amount int64) (*domain.Account, error) {
	row := a.conn.QueryRow(ctx,
		`UPDATE accounts SET balance = balance + $2, updated_at = now() WHERE id = $1 RETURNING `+accountColumns,
		id, amount,
	)
	account, err := scanAccount(row)
	if err != nil {
		return nil, convertErr(err, "credit account %d", id)
	}
	return account, nil
}

// Debit атомарно списывает amount. Если средств не хватает, строка не обновляется и возвращается
// domain.ErrInsufficientFunds.
func (a *AccountRepository) Debit(ctx context.Context, id int64, amount int64) (*domain.Account, error) {
	row := a.conn.QueryRow(ctx,
		`UPDATE accounts SET balance = balance - $2, updated_at = now()
		WHERE id = $1 AND balance >= $2
		RETURNING `+accountColumns,
		id, amount,
	)
	account, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInsufficientFunds
		}
		return nil, convertErr(err, "debit account %d", id)
	}
	return account, nil
}

// Reconciliation собирает агрегаты для сверки: сумма начислений, списаний по заявкам и штрафов.
// Отклоненные заявки не учитываются, так как при отклонении сумма возвращается на счет.
func (a *AccountRepository) Reconciliation(ctx context.Context, id int64) (*repoargs.Reconciliation, error) {
	row := a.conn.QueryRow(ctx, `
		SELECT a.id,
		       a.balance,
		       COALESCE((SELECT SUM(p.amount) FROM postings p WHERE p.account_id = a.id), 0)::BIGINT,
		       COALESCE((SELECT SUM(w.amount) FROM withdrawal_requests w
		                 WHERE w.account_id = a.id AND w.state <> $2), 0)::BIGINT,
		       COALESCE((SELECT SUM(p.penalty_amount) FROM postings p
		                 WHERE p.account_id = a.id AND p.is_penalty), 0)::BIGINT
		FROM accounts a
		WHERE a.id = $1`,
		id, domain.WithdrawalStateRejected,
	)
	var rec repoargs.Reconciliation
	if err := row.Scan(
		&rec.AccountID,
		&rec.Balance,
		&rec.PostingsTotal,
		&rec.WithdrawnTotal,
		&rec.PenaltiesTotal,
	); err != nil {
		return nil, convertErr(err, "reconcile account %d", id)
	}
	return &rec, nil
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var account domain.Account
	if err := row.Scan(
		&account.ID,
		&account.CreatedAt,
		&account.UpdatedAt,
		&account.UserID,
		&account.Balance,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &account, nil
}
