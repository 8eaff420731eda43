package pgrepo

import (
	"context"

	"github.com/fsdevblog/ecoledger/internal/domain"
	"github.com/fsdevblog/ecoledger/internal/repository/repoargs"
	"github.com/fsdevblog/ecoledger/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const applicationColumns = `id, created_at, updated_at, agent_user_id, collection_point_id, amount, payment_type,
	containers_count, comment, status, rejected_reason, reviewed_by`

type ApplicationRepository struct {
	conn uow.DBTX
}

func NewApplicationRepository(conn uow.DBTX) *ApplicationRepository {
	return &ApplicationRepository{conn: conn}
}

func (a *ApplicationRepository) Create(ctx context.Context, args repoargs.ApplicationCreate) (*domain.Application, error) {
	row := a.conn.QueryRow(ctx,
		`INSERT INTO applications
			(agent_user_id, collection_point_id, amount, payment_type, containers_count, comment, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+applicationColumns,
		args.AgentUserID,
		args.CollectionPointID,
		args.Amount,
		args.PaymentType,
		args.ContainersCount,
		args.Comment,
		domain.ApplicationStatusPending,
	)
	application, err := scanApplication(row)
	if err != nil {
		return nil, convertErr(err, "create application for agent %d", args.AgentUserID)
	}
	return application, nil
}

func (a *ApplicationRepository) LockByID(ctx context.Context, id int64) (*domain.Application, error) {
	row := a.conn.QueryRow(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = $1 FOR UPDATE`, id)
	application, err := scanApplication(row)
	if err != nil {
		return nil, convertErr(err, "lock application %d", id)
	}
	return application, nil
}

func (a *ApplicationRepository) UpdateStatus(
	ctx context.Context,
	args repoargs.ApplicationStatusUpdate,
) (*domain.Application, error) {
	row := a.conn.QueryRow(ctx,
		`UPDATE applications
		SET status = $2, rejected_reason = $3, reviewed_by = COALESCE($4, reviewed_by), updated_at = now()
		WHERE id = $1
		RETURNING `+applicationColumns,
		args.ID, args.Status, args.RejectedReason, args.ReviewedBy,
	)
	application, err := scanApplication(row)
	if err != nil {
		return nil, convertErr(err, "update application %d", args.ID)
	}
	return application, nil
}

func scanApplication(row pgx.Row) (*domain.Application, error) {
	var application domain.Application
	if err := row.Scan(
		&application.ID,
		&application.CreatedAt,
		&application.UpdatedAt,
		&application.AgentUserID,
		&application.CollectionPointID,
		&application.Amount,
		&application.PaymentType,
		&application.ContainersCount,
		&application.Comment,
		&application.Status,
		&application.RejectedReason,
		&application.ReviewedBy,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &application, nil
}
