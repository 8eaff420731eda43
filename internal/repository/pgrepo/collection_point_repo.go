package pgrepo

import (
	"context"

	"github.com/fsdevblog/ecoledger/internal/domain"
	"github.com/fsdevblog/ecoledger/internal/repository/repoargs"
	"github.com/fsdevblog/ecoledger/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const collectionPointColumns = `id, created_at, updated_at, name, sim_module, operator_user_id, commission_percent,
	cumulative_operator_share, is_fandomat, advance_capacity_remaining`

type CollectionPointRepository struct {
	conn uow.DBTX
}

func NewCollectionPointRepository(conn uow.DBTX) *CollectionPointRepository {
	return &CollectionPointRepository{conn: conn}
}

func (c *CollectionPointRepository) Create(
	ctx context.Context,
	args repoargs.CollectionPointCreate,
) (*domain.CollectionPoint, error) {
	row := c.conn.QueryRow(ctx,
		`INSERT INTO collection_points
			(name, sim_module, operator_user_id, commission_percent, is_fandomat, advance_capacity_remaining)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+collectionPointColumns,
		args.Name,
		args.SimModule,
		args.OperatorUserID,
		args.CommissionPercent,
		args.IsFandomat,
		args.AdvanceCapacityRemaining,
	)
	point, err := scanCollectionPoint(row)
	if err != nil {
		return nil, convertErr(err, "create collection point %s", args.SimModule)
	}
	return point, nil
}

func (c *CollectionPointRepository) GetBySimModule(ctx context.Context, simModule string) (*domain.CollectionPoint, error) {
	row := c.conn.QueryRow(ctx,
		`SELECT `+collectionPointColumns+` FROM collection_points WHERE sim_module = $1`,
		simModule,
	)
	point, err := scanCollectionPoint(row)
	if err != nil {
		return nil, convertErr(err, "get collection point %s", simModule)
	}
	return point, nil
}

func (c *CollectionPointRepository) GetByID(ctx context.Context, id int64) (*domain.CollectionPoint, error) {
	row := c.conn.QueryRow(ctx, `SELECT `+collectionPointColumns+` FROM collection_points WHERE id = $1`, id)
	point, err := scanCollectionPoint(row)
	if err != nil {
		return nil, convertErr(err, "get collection point %d", id)
	}
	return point, nil
}

// AddOperatorShare увеличивает накопленную долю оператора точки на amount.
func (c *CollectionPointRepository) AddOperatorShare(ctx context.Context, id int64, amount int64) error {
	tag, err := c.conn.Exec(ctx,
		`UPDATE collection_points
		SET cumulative_operator_share = cumulative_operator_share + $2, updated_at = now()
		WHERE id = $1`,
		id, amount,
	)
	if err != nil {
		return convertErr(err, "add operator share to %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "add operator share to %d", id)
	}
	return nil
}

// ReserveAdvanceCapacity уменьшает остаток лимита авансов точки. Если остатка не хватает, ничего не меняет и
// возвращает ошибку валидации.
func (c *CollectionPointRepository) ReserveAdvanceCapacity(ctx context.Context, id int64, amount int64) error {
	tag, err := c.conn.Exec(ctx,
		`UPDATE collection_points
		SET advance_capacity_remaining = advance_capacity_remaining - $2, updated_at = now()
		WHERE id = $1 AND advance_capacity_remaining >= $2`,
		id, amount,
	)
	if err != nil {
		return convertErr(err, "reserve advance capacity of %d", id)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewValidationError("amount", "exceeds collection point advance capacity")
	}
	return nil
}

func scanCollectionPoint(row pgx.Row) (*domain.CollectionPoint, error) {
	var point domain.CollectionPoint
	if err := row.Scan(
		&point.ID,
		&point.CreatedAt,
		&point.UpdatedAt,
		&point.Name,
		&point.SimModule,
		&point.OperatorUserID,
		&point.CommissionPercent,
		&point.CumulativeOperatorShare,
		&point.IsFandomat,
		&point.AdvanceCapacityRemaining,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &point, nil
}
