package resolver

import (
	"fmt"

	"arb-router-sol/internal/consts"
	"arb-router-sol/internal/logic/core"
	"arb-router-sol/internal/pkg/logger"
	"arb-router-sol/internal/runtime"
)

// ValidateMapping 校验一跳的账户映射：
// 数量符合 venue 的布局要求、下标全部在表内、且两两互异。
func ValidateMapping(m core.AccountMapping, tableLen int) error {
	// 1. 数量门限
	n := len(m.Indices)
	var ok bool
	switch m.Venue {
	case core.VenueRaydiumCPMM:
		ok = n == consts.RaydiumCPMMAccountCount
	case core.VenueRaydiumCLMM:
		ok = n == consts.RaydiumCLMMBaseAccountCount
	case core.VenuePumpFun:
		ok = n >= consts.PumpFunAccountCountMin && n <= consts.PumpFunAccountCountMax
	case core.VenuePumpSwap:
		ok = n >= consts.PumpSwapAccountCountMin && n <= consts.PumpSwapAccountCountMax
	default:
		return fmt.Errorf("%w: unknown venue %d", core.ErrInvalidAccountCount, uint8(m.Venue))
	}
	if !ok {
		logger.Errorf("[Resolver] %s: got %d indices", m.Venue, n)
		return fmt.Errorf("%w: %s expects different count, got %d", core.ErrInvalidAccountCount, m.Venue, n)
	}

	// 2. 越界与重复检查
	seen := make(map[uint8]int, n)
	for i, idx := range m.Indices {
		if int(idx) >= tableLen {
			logger.Errorf("[Resolver] %s: %s index %d out of range (table len %d)",
				m.Venue, RoleName(m.Venue, i), idx, tableLen)
			return fmt.Errorf("%w: index %d out of range", core.ErrInvalidAccountIndex, idx)
		}
		if prev, dup := seen[idx]; dup {
			logger.Errorf("[Resolver] %s: index %d used for both %s and %s",
				m.Venue, idx, RoleName(m.Venue, prev), RoleName(m.Venue, i))
			return fmt.Errorf("%w: duplicate index %d", core.ErrInvalidAccountIndex, idx)
		}
		seen[idx] = i
	}
	return nil
}

// ResolveRaydiumCPMM 将映射展开为 CPMM 类型化账户集（须先通过 ValidateMapping）。
func ResolveRaydiumCPMM(m core.AccountMapping, table *runtime.AccountTable) *RaydiumCPMMAccounts {
	return &RaydiumCPMMAccounts{
		AmmConfig:        table.Get(int(m.Indices[0])),
		PoolState:        table.Get(int(m.Indices[1])),
		Token0Vault:      table.Get(int(m.Indices[2])),
		Token1Vault:      table.Get(int(m.Indices[3])),
		InputMint:        table.Get(int(m.Indices[4])),
		OutputMint:       table.Get(int(m.Indices[5])),
		ObservationState: table.Get(int(m.Indices[6])),
	}
}

func ResolveRaydiumCLMM(m core.AccountMapping, table *runtime.AccountTable) *RaydiumCLMMAccounts {
	return &RaydiumCLMMAccounts{
		ClmmProgram:      table.Get(int(m.Indices[0])),
		AmmConfig:        table.Get(int(m.Indices[1])),
		PoolState:        table.Get(int(m.Indices[2])),
		InputVault:       table.Get(int(m.Indices[3])),
		OutputVault:      table.Get(int(m.Indices[4])),
		ObservationState: table.Get(int(m.Indices[5])),
		TokenProgram:     table.Get(int(m.Indices[6])),
		TokenProgram2022: table.Get(int(m.Indices[7])),
		MemoProgram:      table.Get(int(m.Indices[8])),
		InputVaultMint:   table.Get(int(m.Indices[9])),
		OutputVaultMint:  table.Get(int(m.Indices[10])),
	}
}

func ResolvePumpFun(m core.AccountMapping, table *runtime.AccountTable) *PumpFunAccounts {
	accs := &PumpFunAccounts{
		BondingCurve: table.Get(int(m.Indices[0])),
		Mint:         table.Get(int(m.Indices[1])),
		Creator:      table.Get(int(m.Indices[2])),
	}
	if len(m.Indices) > 3 {
		accs.FeeRecipient = table.Get(int(m.Indices[3]))
	}
	return accs
}

func ResolvePumpSwap(m core.AccountMapping, table *runtime.AccountTable) *PumpSwapAccounts {
	accs := &PumpSwapAccounts{
		PoolState:   table.Get(int(m.Indices[0])),
		BaseMint:    table.Get(int(m.Indices[1])),
		QuoteMint:   table.Get(int(m.Indices[2])),
		CoinCreator: table.Get(int(m.Indices[3])),
	}
	if len(m.Indices) > 4 {
		accs.FeeRecipient = table.Get(int(m.Indices[4]))
	}
	if len(m.Indices) > 5 {
		accs.FeeRecipientATA = table.Get(int(m.Indices[5]))
	}
	return accs
}
