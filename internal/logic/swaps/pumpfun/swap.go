package pumpfun

import (
	"fmt"

	"github.com/near/borsh-go"

	"arb-router-sol/internal/consts"
	"arb-router-sol/internal/logic/core"
	"arb-router-sol/internal/logic/derive"
	"arb-router-sol/internal/logic/resolver"
	"arb-router-sol/internal/logic/swaps/common"
	"arb-router-sol/internal/pkg/logger"
	"arb-router-sol/internal/runtime"
	"arb-router-sol/internal/types"
)

// buy 参数：token_amount 为期望买入的代币数量，max_sol_cost 为愿付上限
type buyArgs struct {
	TokenAmount uint64
	MaxSolCost  uint64
}

// sell 参数：token_amount 为卖出的代币数量，min_sol_output 为最少换回
type sellArgs struct {
	TokenAmount  uint64
	MinSolOutput uint64
}

// ExecuteSwap 构造并执行一笔 PumpFun bonding curve 买入/卖出。
//
// 方向由用户输入/输出账户的 mint 与 WSOL 判定：输入为 WSOL 即买入，
// 输出为 WSOL 即卖出，两者皆非视为无效账户。
// 注意 buy/sell 的账户顺序差异：sell 的 creator_vault 在 token_program 之前。
func ExecuteSwap(ctx *common.SwapContext, accs *resolver.PumpFunAccounts) (*core.SwapResult, error) {
	preOut, err := common.ReadTokenAmount(ctx.UserOutput)
	if err != nil {
		return nil, err
	}

	// 1. 程序 ID 由 bonding curve 的持有程序推导（兼容不同网络）
	programID := accs.BondingCurve.Owner
	fixed := ctx.Derived.Fixed()

	// 2. global / event_authority：优先 PDA 派生并在表中定位，失败回退固定地址
	global, err := findPDAOrFixed(ctx, func() (types.Pubkey, error) {
		return derive.PumpFunGlobalPDA(programID)
	}, fixed.PumpFunGlobal)
	if err != nil {
		return nil, err
	}
	eventAuthority, err := findPDAOrFixed(ctx, func() (types.Pubkey, error) {
		return derive.PumpFunEventAuthorityPDA(programID)
	}, fixed.PumpFunEventAuthority)
	if err != nil {
		return nil, err
	}

	// 3. fee_recipient：可选索引优先，否则固定地址
	feeRecipient := accs.FeeRecipient
	if feeRecipient == nil {
		if feeRecipient, err = common.FindAccount(ctx.Table, fixed.PumpFunFeeRecipient); err != nil {
			return nil, err
		}
	}

	// 4. 通过数据布局扫描定位两侧代币账户
	associatedBondingCurve, err := common.FindTokenAccountFor(ctx.Table, accs.Mint.Key, accs.BondingCurve.Key)
	if err != nil {
		return nil, err
	}
	associatedUser, err := common.FindTokenAccountFor(ctx.Table, accs.Mint.Key, ctx.Payer.Key)
	if err != nil {
		return nil, err
	}

	// 5. creator_vault PDA 用实际程序 ID 派生后在表中定位
	creatorVaultKey, err := ctx.Derived.PumpFunCreatorVault(programID, accs.Creator.Key)
	if err != nil {
		return nil, err
	}
	creatorVault, err := common.FindAccount(ctx.Table, creatorVaultKey)
	if err != nil {
		return nil, err
	}

	// 6. 方向判定
	inMint, ok := runtime.TokenAccountMint(ctx.UserInput)
	if !ok {
		return nil, fmt.Errorf("%w: user input account", core.ErrInvalidAccount)
	}
	outMint, ok := runtime.TokenAccountMint(ctx.UserOutput)
	if !ok {
		return nil, fmt.Errorf("%w: user output account", core.ErrInvalidAccount)
	}
	isBuy := inMint == fixed.WSOLMint
	isSell := outMint == fixed.WSOLMint

	var data []byte
	var metas []runtime.AccountMeta
	switch {
	case isBuy:
		// BUY: min_out 作为 token_amount，amount_in 作为 max_sol_cost
		args, serr := borsh.Serialize(buyArgs{TokenAmount: ctx.MinimumAmountOut, MaxSolCost: ctx.AmountIn})
		if serr != nil {
			return nil, fmt.Errorf("encode buy args: %w", serr)
		}
		data = append(append([]byte{}, consts.DiscPumpFunBuy...), args...)

		metas = []runtime.AccountMeta{
			{Pubkey: global.Key},
			{Pubkey: feeRecipient.Key, IsWritable: true},
			{Pubkey: accs.Mint.Key},
			{Pubkey: accs.BondingCurve.Key, IsWritable: true},
			{Pubkey: associatedBondingCurve.Key, IsWritable: true},
			{Pubkey: associatedUser.Key, IsWritable: true},
			{Pubkey: ctx.Payer.Key, IsSigner: true, IsWritable: true},
			{Pubkey: ctx.SystemProgram.Key},
			{Pubkey: ctx.TokenProgram.Key},
			{Pubkey: creatorVault.Key, IsWritable: true},
			{Pubkey: eventAuthority.Key},
		}

		// volume accumulators：仅买入路径尽力追加，缺失不阻塞
		if gvaKey, derr := ctx.Derived.GlobalVolumeAccumulator(programID); derr == nil {
			if gva := ctx.Table.FindByKey(gvaKey); gva != nil {
				metas = append(metas, runtime.AccountMeta{Pubkey: gva.Key, IsWritable: true})
			}
		}
		if uvaKey, derr := ctx.Derived.UserVolumeAccumulator(programID); derr == nil {
			if uva := ctx.Table.FindByKey(uvaKey); uva != nil {
				metas = append(metas, runtime.AccountMeta{Pubkey: uva.Key, IsWritable: true})
			}
		}
	case isSell:
		// SELL: amount_in 作为 token_amount，min_out 作为 min_sol_output
		args, serr := borsh.Serialize(sellArgs{TokenAmount: ctx.AmountIn, MinSolOutput: ctx.MinimumAmountOut})
		if serr != nil {
			return nil, fmt.Errorf("encode sell args: %w", serr)
		}
		data = append(append([]byte{}, consts.DiscPumpFunSell...), args...)

		metas = []runtime.AccountMeta{
			{Pubkey: global.Key},
			{Pubkey: feeRecipient.Key, IsWritable: true},
			{Pubkey: accs.Mint.Key},
			{Pubkey: accs.BondingCurve.Key, IsWritable: true},
			{Pubkey: associatedBondingCurve.Key, IsWritable: true},
			{Pubkey: associatedUser.Key, IsWritable: true},
			{Pubkey: ctx.Payer.Key, IsSigner: true, IsWritable: true},
			{Pubkey: ctx.SystemProgram.Key},
			{Pubkey: creatorVault.Key, IsWritable: true},
			{Pubkey: ctx.TokenProgram.Key},
			{Pubkey: eventAuthority.Key},
		}
	default:
		// 既非买也非卖（不含 WSOL 的交易对）
		return nil, fmt.Errorf("%w: pumpfun step must trade against WSOL", core.ErrInvalidAccount)
	}

	// 7. 程序账户必须在表中且可执行
	programAcc, err := common.FindAccount(ctx.Table, programID)
	if err != nil {
		return nil, err
	}
	if err := common.RequireExecutable(programAcc); err != nil {
		return nil, err
	}

	ix := &runtime.Instruction{ProgramID: programID, Accounts: metas, Data: data}

	logger.Infof("[PumpFun] program_id=%s buy=%t amount_in=%d min_out=%d", programID, isBuy, ctx.AmountIn, ctx.MinimumAmountOut)
	if err := ctx.Invoker.Invoke(ix, ctx.Table); err != nil {
		return nil, err
	}

	postOut, err := common.ReadTokenAmount(ctx.UserOutput)
	if err != nil {
		return nil, err
	}
	return &core.SwapResult{AmountIn: ctx.AmountIn, AmountOut: common.SaturatingSub(postOut, preOut)}, nil
}

// findPDAOrFixed 先按 PDA 派生在表中定位，派生失败或不在表中时回退固定地址。
func findPDAOrFixed(ctx *common.SwapContext, pdaFn func() (types.Pubkey, error), fallback types.Pubkey) (*runtime.Account, error) {
	if key, err := pdaFn(); err == nil {
		if acc := ctx.Table.FindByKey(key); acc != nil {
			return acc, nil
		}
	}
	return common.FindAccount(ctx.Table, fallback)
}
