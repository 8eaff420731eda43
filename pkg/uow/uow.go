package uow

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

type RepositoryName string
type Repository any
type RepositoryFactory func(DBTX) Repository

// Beginner источник транзакций. Реализуется *pgxpool.Pool.
type Beginner interface {
	DBTX
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// DefaultMaxAttempts сколько раз Do запускает транзакцию, прерванную из-за deadlock или конфликта сериализации.
const DefaultMaxAttempts = 3

type UnitOfWork struct {
	conn         Beginner
	txOptions    pgx.TxOptions
	maxAttempts  int
	repositories map[RepositoryName]RepositoryFactory
}

func NewUnitOfWork(conn Beginner) *UnitOfWork {
	return &UnitOfWork{
		conn:         conn,
		txOptions:    pgx.TxOptions{IsoLevel: pgx.ReadCommitted},
		maxAttempts:  DefaultMaxAttempts,
		repositories: make(map[RepositoryName]RepositoryFactory),
	}
}

// SetMaxAttempts задает число попыток Do. Значения меньше 1 означают одну попытку.
func (u *UnitOfWork) SetMaxAttempts(n int) *UnitOfWork {
	u.maxAttempts = max(n, 1)
	return u
}

// SetTxOptions переопределяет параметры транзакций, например уровень изоляции.
func (u *UnitOfWork) SetTxOptions(opts pgx.TxOptions) *UnitOfWork {
	u.txOptions = opts
	return u
}

// Register регистрирует репозиторий у себя в мапе. Если репозиторий уже зарегистрирован, возвращает
// ошибку ErrRepositoryAlreadyRegistered.
func (u *UnitOfWork) Register(name RepositoryName, factory RepositoryFactory) error {
	if _, ok := u.repositories[name]; ok {
		return ErrRepositoryAlreadyRegistered
	}
	u.repositories[name] = factory
	return nil
}

// Do выполняет функцию fn внутри транзакции. Если fn вернула ошибку, транзакция откатывается целиком:
// частично примененных изменений баланса или отметок о погашении кода не остается.
// Транзакция, прерванная сервером из-за deadlock (40P01) или конфликта сериализации (40001),
// запускается заново, fn при этом вызывается повторно.
func (u *UnitOfWork) Do(ctx context.Context, fn func(context.Context, TX) error) error {
	var err error
	for range u.maxAttempts {
		if err = u.run(ctx, fn); err == nil || !isRetryable(err) {
			return err
		}
		if ctx.Err() != nil {
			return err
		}
	}
	return err
}

func (u *UnitOfWork) run(ctx context.Context, fn func(context.Context, TX) error) (err error) {
	tx, txErr := u.conn.BeginTx(ctx, u.txOptions)
	if txErr != nil {
		return txErr //nolint:wrapcheck
	}
	var committed bool
	defer func() {
		if committed {
			return
		}
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			if err == nil {
				err = rollbackErr
			} else {
				err = errors.Join(err, rollbackErr)
			}
		}
	}()

	transErr := fn(ctx, NewTransaction(tx, u.repositories))
	if transErr != nil {
		return transErr
	}
	if err = tx.Commit(ctx); err != nil {
		return err //nolint:wrapcheck
	}
	committed = true
	return nil
}

// GetRepository возвращает репозиторий или ошибку ErrRepositoryNotRegistered.
func (u *UnitOfWork) GetRepository(name RepositoryName) (Repository, error) {
	if repoFactory, ok := u.repositories[name]; ok {
		return repoFactory(u.conn), nil
	}
	return nil, ErrRepositoryNotRegistered
}

// GetRepositoryAs возвращает репозиторий по имени name и приводит его к типу T. Возвращает ошибки
// ErrRepositoryNotRegistered и ErrInvalidRepositoryType.
func GetRepositoryAs[T any](u UOW, name RepositoryName) (T, error) {
	var res T
	repo, err := u.GetRepository(name)
	if err != nil {
		return res, err //nolint:wrapcheck
	}
	r, ok := repo.(T)

	if !ok {
		return res, ErrInvalidRepositoryType
	}

	return r, nil
}
