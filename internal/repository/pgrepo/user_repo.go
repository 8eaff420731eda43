package pgrepo

import (
	"context"

	"github.com/fsdevblog/ecoledger/internal/domain"
	"github.com/fsdevblog/ecoledger/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const userColumns = "id, created_at, updated_at, phone_number, role, is_active"

type UserRepository struct {
	conn uow.DBTX
}

func NewUserRepository(conn uow.DBTX) *UserRepository {
	return &UserRepository{conn: conn}
}

// GetOrCreateByPhone возвращает пользователя по номеру телефона, создавая его при первом обращении.
// Конкурентные вызовы с одним номером безопасны: вставка идет через ON CONFLICT DO NOTHING.
func (u *UserRepository) GetOrCreateByPhone(ctx context.Context, phone string) (*domain.User, error) {
	_, err := u.conn.Exec(ctx,
		`INSERT INTO users (phone_number, role) VALUES ($1, $2) ON CONFLICT (phone_number) DO NOTHING`,
		phone, domain.RolePopulation,
	)
	if err != nil {
		return nil, convertErr(err, "create user %s", phone)
	}
	return u.FindByPhone(ctx, phone)
}

func (u *UserRepository) FindByPhone(ctx context.Context, phone string) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE phone_number = $1`, phone)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "find user by phone %s", phone)
	}
	return user, nil
}

func (u *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "find user %d", id)
	}
	return user, nil
}

func (u *UserRepository) Activate(ctx context.Context, id int64) (*domain.User, error) {
	row := u.conn.QueryRow(ctx,
		`UPDATE users SET is_active = TRUE, updated_at = now() WHERE id = $1 RETURNING `+userColumns,
		id,
	)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "activate user %d", id)
	}
	return user, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt, &user.PhoneNumber, &user.Role, &user.IsActive)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &user, nil
}
