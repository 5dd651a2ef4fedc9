package core

import (
	"fmt"

	"arb-router-sol/internal/consts"
	"arb-router-sol/internal/types"
)

// VenueType 标识一步 swap 走哪个 venue 程序。
// 数值即 borsh 编码值，属于入口 ABI，不可重排。
type VenueType uint8

const (
	VenueRaydiumCPMM VenueType = 0
	VenueRaydiumCLMM VenueType = 1
	VenuePumpFun     VenueType = 2
	VenuePumpSwap    VenueType = 3
)

func (v VenueType) String() string {
	switch v {
	case VenueRaydiumCPMM:
		return "raydium_cpmm"
	case VenueRaydiumCLMM:
		return "raydium_clmm"
	case VenuePumpFun:
		return "pumpfun"
	case VenuePumpSwap:
		return "pumpswap"
	default:
		return fmt.Sprintf("venue(%d)", uint8(v))
	}
}

// PathStep 描述路径中的一跳。
type PathStep struct {
	PoolID           *types.Pubkey // 可选：池地址提示，nil 表示由账户映射决定
	Venue            VenueType
	InputMint        types.Pubkey
	OutputMint       types.Pubkey
	MinimumAmountOut uint64 // 该跳的最小产出（0 表示不设下限）
}

// AccountMapping 是一跳的账户映射：指向全局账户表的下标列表。
// 下标顺序与各 venue 的固定账户布局一一对应。
type AccountMapping struct {
	Venue   VenueType
	Indices []uint8
}

// ArbitrageParams 是一次路径执行的完整入口参数。
type ArbitrageParams struct {
	InputAmount       uint64
	MinProfitLamports uint64
	MaxSlippageBps    uint16
	PathSteps         []PathStep
	AccountMappings   []AccountMapping
}

// Validate 做结构级校验（不触碰账户表）。
func (p *ArbitrageParams) Validate() error {
	// 1. 路径长度
	if len(p.PathSteps) == 0 {
		return ErrPathTooShort
	}
	if len(p.PathSteps) > consts.MaxPathSteps {
		return fmt.Errorf("%w: %d steps", ErrPathTooLong, len(p.PathSteps))
	}

	// 2. 金额与滑点
	if p.InputAmount == 0 {
		return ErrInvalidAmount
	}
	if p.MaxSlippageBps > 10000 {
		return fmt.Errorf("%w: %d bps", ErrInvalidSlippage, p.MaxSlippageBps)
	}

	// 3. 映射数量必须与步数一致，且 venue 对应
	if len(p.AccountMappings) != len(p.PathSteps) {
		return fmt.Errorf("%w: %d mappings for %d steps",
			ErrMappingCountMismatch, len(p.AccountMappings), len(p.PathSteps))
	}
	for i, m := range p.AccountMappings {
		if m.Venue != p.PathSteps[i].Venue {
			return fmt.Errorf("%w: step %d is %s but mapping is %s",
				ErrMappingCountMismatch, i, p.PathSteps[i].Venue, m.Venue)
		}
	}
	return nil
}

// SwapResult 是单跳执行的量化结果。
type SwapResult struct {
	AmountIn  uint64
	AmountOut uint64 // 按用户产出账户余额差计（饱和减法）
	FeeAmount uint64 // 手续费已含在余额差中，恒为 0，保留以对齐适配器契约
}
