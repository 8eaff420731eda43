package repoargs

import "github.com/fsdevblog/ecoledger/internal/domain"

type ScanCodeCreate struct {
	Family     domain.CodeFamily
	Code       string
	CategoryID int64
}

type ScanLogCreate struct {
	Code      string
	IP        string
	UserAgent string
	Result    domain.CheckResult
	Exists    bool
}
