package repoargs

import "github.com/fsdevblog/ecoledger/internal/domain"

type PostingCreate struct {
	AccountID         int64
	Amount            int64
	Label             string
	CollectionPointID *int64
	ScanCodeID        *int64
}

type PenaltyApply struct {
	PostingID     int64
	PenaltyAmount int64
	Reason        string
}

// Reconciliation агрегаты по счету для проверки закона сверки баланса.
type Reconciliation struct {
	AccountID      int64
	Balance        int64
	PostingsTotal  int64
	WithdrawnTotal int64
	PenaltiesTotal int64
}

type WithdrawalCreate struct {
	AccountID     int64
	Kind          domain.WithdrawalKind
	Amount        int64
	State         domain.WithdrawalState
	Card          string
	CardName      string
	AdminUserID   *int64
	ApplicationID *int64
}

type WithdrawalStateUpdate struct {
	ID          int64
	State       domain.WithdrawalState
	AdminUserID *int64
}

type ApplicationCreate struct {
	AgentUserID       int64
	CollectionPointID int64
	Amount            int64
	PaymentType       domain.PaymentType
	ContainersCount   int64
	Comment           string
}

type ApplicationStatusUpdate struct {
	ID             int64
	Status         domain.ApplicationStatus
	RejectedReason string
	ReviewedBy     *int64
}
