package raydiumcpmm

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

// swap_base_in 参数（borsh：两个 u64 LE）
type swapBaseInArgs struct {
	AmountIn         uint64
	MinimumAmountOut uint64
}

// ExecuteSwap 构造并执行一笔 Raydium CPMM swap_base_input。
//
// 账户布局（13 个）：
//
//	payer(ro,signer), authority(ro), amm_config(ro), pool_state(w),
//	user_input(w), user_output(w), input_vault(w), output_vault(w),
//	input_token_program(ro), output_token_program(ro),
//	input_mint(ro), output_mint(ro), observation_state(w)
func ExecuteSwap(ctx *common.SwapContext, accs *resolver.RaydiumCPMMAccounts) (*core.SwapResult, error) {
	preOut, err := common.ReadTokenAmount(ctx.UserOutput)
	if err != nil {
		return nil, err
	}

	// 1. 程序 ID 由 amm_config 的持有程序推导（兼容不同网络），仅校验可执行
	programID := accs.AmmConfig.Owner
	programAcc, err := common.FindAccount(ctx.Table, programID)
	if err != nil {
		return nil, err
	}
	if err := common.RequireExecutable(programAcc); err != nil {
		return nil, err
	}

	// 2. vault authority 用固定地址在表中定位
	authority, err := common.FindAccount(ctx.Table, ctx.Derived.Fixed().RaydiumCPMMAuthority)
	if err != nil {
		return nil, err
	}

	// 3. 指令数据：discriminator + amount_in + minimum_amount_out
	args, err := borsh.Serialize(swapBaseInArgs{AmountIn: ctx.AmountIn, MinimumAmountOut: ctx.MinimumAmountOut})
	if err != nil {
		return nil, fmt.Errorf("encode swap_base_in args: %w", err)
	}
	data := append(append([]byte{}, consts.DiscRaydiumCPMMSwapBaseIn...), args...)

	// 4. 按 mint 的持有程序分别定位输入/输出侧的 token 程序
	inputTokenProg := ctx.TokenProgram
	if accs.InputMint.Owner != ctx.TokenProgram.Key {
		if inputTokenProg, err = common.FindAccount(ctx.Table, accs.InputMint.Owner); err != nil {
			return nil, err
		}
	}
	outputTokenProg := ctx.TokenProgram
	if accs.OutputMint.Owner != ctx.TokenProgram.Key {
		if outputTokenProg, err = common.FindAccount(ctx.Table, accs.OutputMint.Owner); err != nil {
			return nil, err
		}
	}

	// 5. 按输入 mint 匹配 vault 方向
	token0Mint, ok := runtime.TokenAccountMint(accs.Token0Vault)
	if !ok {
		return nil, fmt.Errorf("%w: token0 vault", core.ErrInvalidTokenMint)
	}
	token1Mint, ok := runtime.TokenAccountMint(accs.Token1Vault)
	if !ok {
		return nil, fmt.Errorf("%w: token1 vault", core.ErrInvalidTokenMint)
	}
	var inVault, outVault *runtime.Account
	switch accs.InputMint.Key {
	case token0Mint:
		inVault, outVault = accs.Token0Vault, accs.Token1Vault
	case token1Mint:
		inVault, outVault = accs.Token1Vault, accs.Token0Vault
	default:
		return nil, fmt.Errorf("%w: input mint matches neither vault", core.ErrInvalidTokenMint)
	}

	ix := &runtime.Instruction{
		ProgramID: programID,
		Accounts: []runtime.AccountMeta{
			{Pubkey: ctx.Payer.Key, IsSigner: true},
			{Pubkey: authority.Key},
			{Pubkey: accs.AmmConfig.Key},
			{Pubkey: accs.PoolState.Key, IsWritable: true},
			{Pubkey: ctx.UserInput.Key, IsWritable: true},
			{Pubkey: ctx.UserOutput.Key, IsWritable: true},
			{Pubkey: inVault.Key, IsWritable: true},
			{Pubkey: outVault.Key, IsWritable: true},
			{Pubkey: inputTokenProg.Key},
			{Pubkey: outputTokenProg.Key},
			{Pubkey: accs.InputMint.Key},
			{Pubkey: accs.OutputMint.Key},
			{Pubkey: accs.ObservationState.Key, IsWritable: true},
		},
		Data: data,
	}

	logger.Infof("[CPMM] program_id=%s amount_in=%d min_out=%d", programID, ctx.AmountIn, ctx.MinimumAmountOut)
	if err := ctx.Invoker.Invoke(ix, ctx.Table); err != nil {
		return nil, err
	}

	// 6. 余额差法计算真实产出
	postOut, err := common.ReadTokenAmount(ctx.UserOutput)
	if err != nil {
		return nil, err
	}
	return &core.SwapResult{AmountIn: ctx.AmountIn, AmountOut: common.SaturatingSub(postOut, preOut)}, nil
}
