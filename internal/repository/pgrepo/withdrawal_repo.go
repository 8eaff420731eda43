package pgrepo

import (
	"context"

	"github.com/fsdevblog/ecoledger/internal/domain"
	"github.com/fsdevblog/ecoledger/internal/repository/repoargs"
	"github.com/fsdevblog/ecoledger/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const withdrawalColumns = `id, created_at, updated_at, account_id, kind, amount, state, card, card_name,
	admin_user_id, application_id`

type WithdrawalRepository struct {
	conn uow.DBTX
}

func NewWithdrawalRepository(conn uow.DBTX) *WithdrawalRepository {
	return &WithdrawalRepository{conn: conn}
}

func (w *WithdrawalRepository) Create(
	ctx context.Context,
	args repoargs.WithdrawalCreate,
) (*domain.WithdrawalRequest, error) {
	row := w.conn.QueryRow(ctx,
		`INSERT INTO withdrawal_requests
			(account_id, kind, amount, state, card, card_name, admin_user_id, application_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+withdrawalColumns,
		args.AccountID,
		args.Kind,
		args.Amount,
		args.State,
		args.Card,
		args.CardName,
		args.AdminUserID,
		args.ApplicationID,
	)
	request, err := scanWithdrawal(row)
	if err != nil {
		return nil, convertErr(err, "create %s withdrawal for account %d", args.Kind, args.AccountID)
	}
	return request, nil
}

// LastByAccount возвращает последнюю заявку вида kind по счету или domain.ErrRecordNotFound.
func (w *WithdrawalRepository) LastByAccount(
	ctx context.Context,
	accountID int64,
	kind domain.WithdrawalKind,
) (*domain.WithdrawalRequest, error) {
	row := w.conn.QueryRow(ctx,
		`SELECT `+withdrawalColumns+` FROM withdrawal_requests
		WHERE account_id = $1 AND kind = $2
		ORDER BY created_at DESC, id DESC
		LIMIT 1`,
		accountID, kind,
	)
	request, err := scanWithdrawal(row)
	if err != nil {
		return nil, convertErr(err, "last %s withdrawal of account %d", kind, accountID)
	}
	return request, nil
}

func (w *WithdrawalRepository) LockByID(ctx context.Context, id int64) (*domain.WithdrawalRequest, error) {
	row := w.conn.QueryRow(ctx, `SELECT `+withdrawalColumns+` FROM withdrawal_requests WHERE id = $1 FOR UPDATE`, id)
	request, err := scanWithdrawal(row)
	if err != nil {
		return nil, convertErr(err, "lock withdrawal %d", id)
	}
	return request, nil
}

func (w *WithdrawalRepository) UpdateState(
	ctx context.Context,
	args repoargs.WithdrawalStateUpdate,
) (*domain.WithdrawalRequest, error) {
	row := w.conn.QueryRow(ctx,
		`UPDATE withdrawal_requests
		SET state = $2, admin_user_id = COALESCE($3, admin_user_id), updated_at = now()
		WHERE id = $1
		RETURNING `+withdrawalColumns,
		args.ID, args.State, args.AdminUserID,
	)
	request, err := scanWithdrawal(row)
	if err != nil {
		return nil, convertErr(err, "update withdrawal %d", args.ID)
	}
	return request, nil
}

func (w *WithdrawalRepository) GetByAccountID(ctx context.Context, accountID int64) ([]domain.WithdrawalRequest, error) {
	rows, err := w.conn.Query(ctx,
		`SELECT `+withdrawalColumns+` FROM withdrawal_requests WHERE account_id = $1 ORDER BY created_at DESC, id DESC`,
		accountID,
	)
	if err != nil {
		return nil, convertErr(err, "get withdrawals of account %d", accountID)
	}
	defer rows.Close()

	var requests []domain.WithdrawalRequest
	for rows.Next() {
		request, scanErr := scanWithdrawal(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scan withdrawal of account %d", accountID)
		}
		requests = append(requests, *request)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "get withdrawals of account %d", accountID)
	}
	return requests, nil
}

func scanWithdrawal(row pgx.Row) (*domain.WithdrawalRequest, error) {
	var request domain.WithdrawalRequest
	if err := row.Scan(
		&request.ID,
		&request.CreatedAt,
		&request.UpdatedAt,
		&request.AccountID,
		&request.Kind,
		&request.Amount,
		&request.State,
		&request.Card,
		&request.CardName,
		&request.AdminUserID,
		&request.ApplicationID,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &request, nil
}
