package pgrepo

import (
	"context"
	"fmt"

	"github.com/fsdevblog/ecoledger/internal/domain"
	"github.com/fsdevblog/ecoledger/internal/repository/repoargs"
	"github.com/fsdevblog/ecoledger/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const postingColumns = `id, created_at, updated_at, account_id, amount, label, collection_point_id, scan_code_id,
	is_penalty, penalty_amount, reason`

type PostingRepository struct {
	conn uow.DBTX
}

func NewPostingRepository(conn uow.DBTX) *PostingRepository {
	return &PostingRepository{conn: conn}
}

func (p *PostingRepository) Create(ctx context.Context, args repoargs.PostingCreate) (*domain.Posting, error) {
	row := p.conn.QueryRow(ctx,
		`INSERT INTO postings (account_id, amount, label, collection_point_id, scan_code_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+postingColumns,
		args.AccountID, args.Amount, args.Label, args.CollectionPointID, args.ScanCodeID,
	)
	posting, err := scanPosting(row)
	if err != nil {
		return nil, convertErr(err, "create posting for account %d", args.AccountID)
	}
	return posting, nil
}

// LockByID читает запись леджера с блокировкой строки до конца транзакции.
func (p *PostingRepository) LockByID(ctx context.Context, id int64) (*domain.Posting, error) {
	row := p.conn.QueryRow(ctx, `SELECT `+postingColumns+` FROM postings WHERE id = $1 FOR UPDATE`, id)
	posting, err := scanPosting(row)
	if err != nil {
		return nil, convertErr(err, "lock posting %d", id)
	}
	return posting, nil
}

// MarkPenalty помечает запись штрафом. Повторная пометка не проходит условие is_penalty = FALSE и
// возвращает domain.ErrAlreadyPenalized.
func (p *PostingRepository) MarkPenalty(ctx context.Context, args repoargs.PenaltyApply) (*domain.Posting, error) {
	row := p.conn.QueryRow(ctx,
		`UPDATE postings SET is_penalty = TRUE, penalty_amount = $2, reason = $3, updated_at = now()
		WHERE id = $1 AND is_penalty = FALSE
		RETURNING `+postingColumns,
		args.PostingID, args.PenaltyAmount, args.Reason,
	)
	posting, err := scanPosting(row)
	if err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("[repository/mark penalty %d] %w", args.PostingID, domain.ErrAlreadyPenalized)
		}
		return nil, convertErr(err, "mark penalty %d", args.PostingID)
	}
	return posting, nil
}

func (p *PostingRepository) GetByAccountID(ctx context.Context, accountID int64, limit uint) ([]domain.Posting, error) {
	rows, err := p.conn.Query(ctx,
		`SELECT `+postingColumns+` FROM postings WHERE account_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2`,
		accountID, int64(limit), //nolint:gosec
	)
	if err != nil {
		return nil, convertErr(err, "get postings of account %d", accountID)
	}
	defer rows.Close()

	var postings []domain.Posting
	for rows.Next() {
		posting, scanErr := scanPosting(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scan posting of account %d", accountID)
		}
		postings = append(postings, *posting)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "get postings of account %d", accountID)
	}
	return postings, nil
}

func scanPosting(row pgx.Row) (*domain.Posting, error) {
	var posting domain.Posting
	if err := row.Scan(
		&posting.ID,
		&posting.CreatedAt,
		&posting.UpdatedAt,
		&posting.AccountID,
		&posting.Amount,
		&posting.Label,
		&posting.CollectionPointID,
		&posting.ScanCodeID,
		&posting.IsPenalty,
		&posting.PenaltyAmount,
		&posting.Reason,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &posting, nil
}
