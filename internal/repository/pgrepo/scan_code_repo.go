package pgrepo

import (
	"context"

	"github.com/fsdevblog/ecoledger/internal/domain"
	"github.com/fsdevblog/ecoledger/internal/repository/repoargs"
	"github.com/fsdevblog/ecoledger/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const scanCodeColumns = `id, created_at, family, code, category_id, owner_user_id, collection_point_id,
	claimed_at, consumed_at`

type ScanCodeRepository struct {
	conn uow.DBTX
}

func NewScanCodeRepository(conn uow.DBTX) *ScanCodeRepository {
	return &ScanCodeRepository{conn: conn}
}

// Consume атомарно помечает код погашенным (compare-and-set по consumed_at IS NULL) и возвращает его.
// Если кода нет или он уже погашен, возвращается ошибка domain.ErrRecordNotFound. Различить эти случаи
// можно через FindByCode.
func (s *ScanCodeRepository) Consume(
	ctx context.Context,
	family domain.CodeFamily,
	code string,
	collectionPointID int64,
) (*domain.ScanCode, error) {
	row := s.conn.QueryRow(ctx,
		`UPDATE scan_codes SET consumed_at = now(), collection_point_id = $3
		WHERE family = $1 AND code = $2 AND consumed_at IS NULL
		RETURNING `+scanCodeColumns,
		family, code, collectionPointID,
	)
	scanCode, err := scanScanCode(row)
	if err != nil {
		return nil, convertErr(err, "consume %s code %s", family, code)
	}
	return scanCode, nil
}

// Claim привязывает свободный непогашенный код к пользователю. Ошибка domain.ErrRecordNotFound означает,
// что подходящего кода нет.
func (s *ScanCodeRepository) Claim(
	ctx context.Context,
	family domain.CodeFamily,
	code string,
	userID int64,
) (*domain.ScanCode, error) {
	row := s.conn.QueryRow(ctx,
		`UPDATE scan_codes SET owner_user_id = $3, claimed_at = now()
		WHERE family = $1 AND code = $2 AND owner_user_id IS NULL AND consumed_at IS NULL
		RETURNING `+scanCodeColumns,
		family, code, userID,
	)
	scanCode, err := scanScanCode(row)
	if err != nil {
		return nil, convertErr(err, "claim %s code %s", family, code)
	}
	return scanCode, nil
}

func (s *ScanCodeRepository) FindByCode(
	ctx context.Context,
	family domain.CodeFamily,
	code string,
) (*domain.ScanCode, error) {
	row := s.conn.QueryRow(ctx,
		`SELECT `+scanCodeColumns+` FROM scan_codes WHERE family = $1 AND code = $2`,
		family, code,
	)
	scanCode, err := scanScanCode(row)
	if err != nil {
		return nil, convertErr(err, "find %s code %s", family, code)
	}
	return scanCode, nil
}

// FindAnyFamily ищет код в обоих семействах. При совпадении предпочтение отдается экопакетам.
func (s *ScanCodeRepository) FindAnyFamily(ctx context.Context, code string) (*domain.ScanCode, error) {
	row := s.conn.QueryRow(ctx,
		`SELECT `+scanCodeColumns+` FROM scan_codes WHERE code = $1
		ORDER BY family = $2 DESC
		LIMIT 1`,
		code, domain.CodeFamilyEcopacket,
	)
	scanCode, err := scanScanCode(row)
	if err != nil {
		return nil, convertErr(err, "find code %s", code)
	}
	return scanCode, nil
}

// BulkCreate вставляет коды через COPY и возвращает количество вставленных строк.
func (s *ScanCodeRepository) BulkCreate(ctx context.Context, codes []repoargs.ScanCodeCreate) (int64, error) {
	rows := make([][]any, len(codes))
	for i, c := range codes {
		rows[i] = []any{string(c.Family), c.Code, c.CategoryID}
	}
	count, err := s.conn.CopyFrom(ctx,
		pgx.Identifier{"scan_codes"},
		[]string{"family", "code", "category_id"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return 0, convertErr(err, "bulk create %d codes", len(codes))
	}
	return count, nil
}

func scanScanCode(row pgx.Row) (*domain.ScanCode, error) {
	var scanCode domain.ScanCode
	if err := row.Scan(
		&scanCode.ID,
		&scanCode.CreatedAt,
		&scanCode.Family,
		&scanCode.Code,
		&scanCode.CategoryID,
		&scanCode.OwnerUserID,
		&scanCode.CollectionPointID,
		&scanCode.ClaimedAt,
		&scanCode.ConsumedAt,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &scanCode, nil
}
