package pgrepo

import (
	"context"

	"github.com/fsdevblog/ecoledger/internal/repository/repoargs"
	"github.com/fsdevblog/ecoledger/pkg/uow"
)

type ScanLogRepository struct {
	conn uow.DBTX
}

func NewScanLogRepository(conn uow.DBTX) *ScanLogRepository {
	return &ScanLogRepository{conn: conn}
}

func (s *ScanLogRepository) Create(ctx context.Context, args repoargs.ScanLogCreate) error {
	_, err := s.conn.Exec(ctx,
		`INSERT INTO scan_check_logs (code, ip, user_agent, result, code_exists) VALUES ($1, $2, $3, $4, $5)`,
		args.Code, args.IP, args.UserAgent, args.Result, args.Exists,
	)
	if err != nil {
		return convertErr(err, "create scan log for %s", args.Code)
	}
	return nil
}
