package service

import (
	"fmt"

	"github.com/fsdevblog/ecoledger/pkg/uow"
)

type AppServices struct {
	AuthService       *AuthService
	SettlementService *SettlementService
	WithdrawalService *WithdrawalService
	PenaltyService    *PenaltyService
	LedgerService     *LedgerService
	CodeService       *CodeService
	CatalogService    *CatalogService
}

type FactoryArgs struct {
	Auth          AuthDeps
	CodeGenerator CodeGenerator
	BatchWorkers  uint
}

func Factory(unitOfWork uow.UOW, args FactoryArgs) (*AppServices, error) {
	settlementService, err := NewSettlementService(unitOfWork)
	if err != nil {
		return nil, fmt.Errorf("service factory: %s", err.Error())
	}
	settlementService.SetBatchWorkers(args.BatchWorkers)

	ledgerService, err := NewLedgerService(unitOfWork)
	if err != nil {
		return nil, fmt.Errorf("service factory: %s", err.Error())
	}

	codeService, err := NewCodeService(unitOfWork, args.CodeGenerator)
	if err != nil {
		return nil, fmt.Errorf("service factory: %s", err.Error())
	}

	catalogService, err := NewCatalogService(unitOfWork)
	if err != nil {
		return nil, fmt.Errorf("service factory: %s", err.Error())
	}

	return &AppServices{
		AuthService:       NewAuthService(unitOfWork, args.Auth),
		SettlementService: settlementService,
		WithdrawalService: NewWithdrawalService(unitOfWork),
		PenaltyService:    NewPenaltyService(unitOfWork),
		LedgerService:     ledgerService,
		CodeService:       codeService,
		CatalogService:    catalogService,
	}, nil
}
