package pumpswap

import (
	"fmt"

	"github.com/near/borsh-go"

	"arb-router-sol/internal/consts"
	"arb-router-sol/internal/logic/core"
	"arb-router-sol/internal/logic/resolver"
	"arb-router-sol/internal/logic/swaps/common"
	"arb-router-sol/internal/pkg/logger"
	"arb-router-sol/internal/runtime"
)

type swapArgs struct {
	AmountIn         uint64
	MinimumAmountOut uint64
}

// ExecuteSwap 构造并执行一笔 PumpSwap AMM swap（统一使用 buy discriminator，
// 方向由两侧账户布局决定，与链下引擎的构造方式一致）。
//
// 账户布局（19 个）：
//
//	pool(ro), user(w,signer), global_config(ro), base_mint(ro), quote_mint(ro),
//	user_base(w), user_quote(w), pool_base(w), pool_quote(w),
//	fee_recipient(ro), fee_recipient_ata(w),
//	base_token_program(ro), quote_token_program(ro), system_program(ro),
//	associated_token_program(ro), event_authority(ro), amm_program(ro),
//	creator_vault_ata(w), creator_vault_authority(ro)
func ExecuteSwap(ctx *common.SwapContext, accs *resolver.PumpSwapAccounts) (*core.SwapResult, error) {
	preOut, err := common.ReadTokenAmount(ctx.UserOutput)
	if err != nil {
		return nil, err
	}
	fixed := ctx.Derived.Fixed()

	args, err := borsh.Serialize(swapArgs{AmountIn: ctx.AmountIn, MinimumAmountOut: ctx.MinimumAmountOut})
	if err != nil {
		return nil, fmt.Errorf("encode swap args: %w", err)
	}
	data := append(append([]byte{}, consts.DiscPumpSwapBuy...), args...)

	// 1. 按 base_mint 判定用户两侧账户的归属
	baseMint := accs.BaseMint.Key
	quoteMint := accs.QuoteMint.Key
	userBase, userQuote := ctx.UserInput, ctx.UserOutput
	if inMint, ok := runtime.TokenAccountMint(ctx.UserInput); ok && inMint != baseMint {
		userBase, userQuote = ctx.UserOutput, ctx.UserInput
	}

	// 2. AMM 程序账户：先按配置的程序 ID 在表中定位，找不到时宽松回退到
	// 表中第一个可执行账户（兼容不同网络部署）
	ammProgram := ctx.Table.FindByKey(ctx.Derived.Programs().PumpSwap)
	if ammProgram == nil {
		for i := 0; i < ctx.Table.Len(); i++ {
			if acc := ctx.Table.Get(i); acc.Executable {
				ammProgram = acc
				break
			}
		}
		if ammProgram == nil {
			return nil, fmt.Errorf("%w: pumpswap amm program", core.ErrAccountNotFound)
		}
	}
	if err := common.RequireExecutable(ammProgram); err != nil {
		return nil, err
	}
	ammPid := ammProgram.Key

	// 3. global_config / event_authority：PDA 派生定位，失败回退固定地址
	globalConfig := ctx.Table.FindByKey(ctx.Derived.PumpSwapGlobalConfig(ammPid))
	if globalConfig == nil {
		if globalConfig, err = common.FindAccount(ctx.Table, fixed.PumpSwapGlobalConfig); err != nil {
			return nil, err
		}
	}
	eventAuthority := ctx.Table.FindByKey(ctx.Derived.PumpSwapEventAuthority(ammPid))
	if eventAuthority == nil {
		if eventAuthority, err = common.FindAccount(ctx.Table, fixed.PumpSwapEventAuthority); err != nil {
			return nil, err
		}
	}

	// 4. fee_recipient 及其 ATA：可选索引优先，否则回退固定地址/扫描
	feeRecipient := accs.FeeRecipient
	if feeRecipient == nil {
		if feeRecipient, err = common.FindAccount(ctx.Table, fixed.PumpSwapFeeRecipient); err != nil {
			return nil, err
		}
	}
	feeRecipientATA := accs.FeeRecipientATA
	if feeRecipientATA == nil {
		if feeRecipientATA, err = common.FindTokenAccountFor(ctx.Table, quoteMint, feeRecipient.Key); err != nil {
			return nil, err
		}
	}

	// 5. creator_vault：authority 为 PDA，其 quote 侧代币账户通过扫描定位
	creatorVaultKey, err := ctx.Derived.PumpSwapCreatorVault(ammPid, accs.CoinCreator.Key)
	if err != nil {
		return nil, err
	}
	creatorVaultAuthority, err := common.FindAccount(ctx.Table, creatorVaultKey)
	if err != nil {
		return nil, err
	}
	creatorVaultATA, err := common.FindTokenAccountFor(ctx.Table, quoteMint, creatorVaultKey)
	if err != nil {
		return nil, err
	}

	// 6. 池两侧代币账户
	poolBase, err := common.FindTokenAccountFor(ctx.Table, baseMint, accs.PoolState.Key)
	if err != nil {
		return nil, err
	}
	poolQuote, err := common.FindTokenAccountFor(ctx.Table, quoteMint, accs.PoolState.Key)
	if err != nil {
		return nil, err
	}

	ix := &runtime.Instruction{
		ProgramID: ammPid,
		Accounts: []runtime.AccountMeta{
			{Pubkey: accs.PoolState.Key},
			{Pubkey: ctx.Payer.Key, IsSigner: true, IsWritable: true},
			{Pubkey: globalConfig.Key},
			{Pubkey: accs.BaseMint.Key},
			{Pubkey: accs.QuoteMint.Key},
			{Pubkey: userBase.Key, IsWritable: true},
			{Pubkey: userQuote.Key, IsWritable: true},
			{Pubkey: poolBase.Key, IsWritable: true},
			{Pubkey: poolQuote.Key, IsWritable: true},
			{Pubkey: feeRecipient.Key},
			{Pubkey: feeRecipientATA.Key, IsWritable: true},
			{Pubkey: ctx.TokenProgram.Key},
			{Pubkey: ctx.TokenProgram.Key},
			{Pubkey: ctx.SystemProgram.Key},
			{Pubkey: ctx.AssociatedTokenProgram.Key},
			{Pubkey: eventAuthority.Key},
			{Pubkey: ammProgram.Key},
			{Pubkey: creatorVaultATA.Key, IsWritable: true},
			{Pubkey: creatorVaultAuthority.Key},
		},
		Data: data,
	}

	logger.Infof("[PumpSwap] program_id=%s amount_in=%d min_out=%d", ammPid, ctx.AmountIn, ctx.MinimumAmountOut)
	if err := ctx.Invoker.Invoke(ix, ctx.Table); err != nil {
		return nil, err
	}

	postOut, err := common.ReadTokenAmount(ctx.UserOutput)
	if err != nil {
		return nil, err
	}
	return &core.SwapResult{AmountIn: ctx.AmountIn, AmountOut: common.SaturatingSub(postOut, preOut)}, nil
}
