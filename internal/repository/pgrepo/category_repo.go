package pgrepo

import (
	"context"

	"github.com/fsdevblog/ecoledger/internal/domain"
	"github.com/fsdevblog/ecoledger/internal/repository/repoargs"
	"github.com/fsdevblog/ecoledger/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const categoryColumns = "id, created_at, name, payout_amount, ignore_operator_split"

type CategoryRepository struct {
	conn uow.DBTX
}

func NewCategoryRepository(conn uow.DBTX) *CategoryRepository {
	return &CategoryRepository{conn: conn}
}

func (c *CategoryRepository) Create(ctx context.Context, args repoargs.CategoryCreate) (*domain.Category, error) {
	row := c.conn.QueryRow(ctx,
		`INSERT INTO categories (name, payout_amount, ignore_operator_split) VALUES ($1, $2, $3)
		RETURNING `+categoryColumns,
		args.Name, args.PayoutAmount, args.IgnoreOperatorSplit,
	)
	category, err := scanCategory(row)
	if err != nil {
		return nil, convertErr(err, "create category %s", args.Name)
	}
	return category, nil
}

func (c *CategoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	row := c.conn.QueryRow(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id)
	category, err := scanCategory(row)
	if err != nil {
		return nil, convertErr(err, "get category %d", id)
	}
	return category, nil
}

func scanCategory(row pgx.Row) (*domain.Category, error) {
	var category domain.Category
	if err := row.Scan(
		&category.ID,
		&category.CreatedAt,
		&category.Name,
		&category.PayoutAmount,
		&category.IgnoreOperatorSplit,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &category, nil
}
