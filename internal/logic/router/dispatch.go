package router

import (
	"fmt"

	"arb-router-sol/internal/logic/core"
	"arb-router-sol/internal/logic/resolver"
	"arb-router-sol/internal/logic/swaps/common"
	"arb-router-sol/internal/logic/swaps/pumpfun"
	"arb-router-sol/internal/logic/swaps/pumpswap"
	"arb-router-sol/internal/logic/swaps/raydiumclmm"
	"arb-router-sol/internal/logic/swaps/raydiumcpmm"
	"arb-router-sol/internal/pkg/logger"
)

// executeStep 按 venue 派发到对应适配器（映射须已通过 ValidateMapping）。
func executeStep(ctx *common.SwapContext, m core.AccountMapping) (*core.SwapResult, error) {
	logger.Infof("[Router] routing %s swap: %d -> min %d", m.Venue, ctx.AmountIn, ctx.MinimumAmountOut)

	switch m.Venue {
	case core.VenueRaydiumCPMM:
		return raydiumcpmm.ExecuteSwap(ctx, resolver.ResolveRaydiumCPMM(m, ctx.Table))
	case core.VenueRaydiumCLMM:
		return raydiumclmm.ExecuteSwap(ctx, resolver.ResolveRaydiumCLMM(m, ctx.Table))
	case core.VenuePumpFun:
		return pumpfun.ExecuteSwap(ctx, resolver.ResolvePumpFun(m, ctx.Table))
	case core.VenuePumpSwap:
		return pumpswap.ExecuteSwap(ctx, resolver.ResolvePumpSwap(m, ctx.Table))
	default:
		return nil, fmt.Errorf("%w: unknown venue %d", core.ErrInvalidAccount, uint8(m.Venue))
	}
}

// validateSwapResult 校验单跳真实产出是否满足该跳的最小产出。
func validateSwapResult(result *core.SwapResult, minimumAmountOut uint64) error {
	if result.AmountOut < minimumAmountOut {
		logger.Errorf("[Router] insufficient output: got %d, expected min %d", result.AmountOut, minimumAmountOut)
		return fmt.Errorf("%w: got %d, want >= %d", core.ErrInsufficientOutputAmount, result.AmountOut, minimumAmountOut)
	}
	return nil
}
