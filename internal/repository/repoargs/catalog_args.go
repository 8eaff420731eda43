package repoargs

type CategoryCreate struct {
	Name                string
	PayoutAmount        int64
	IgnoreOperatorSplit bool
}

type CollectionPointCreate struct {
	Name                     string
	SimModule                string
	OperatorUserID           *int64
	CommissionPercent        int64
	IsFandomat               bool
	AdvanceCapacityRemaining int64
}
