package raydiumclmm

import (
	"encoding/binary"

	"arb-router-sol/internal/consts"
	"arb-router-sol/internal/logic/core"
	"arb-router-sol/internal/logic/resolver"
	"arb-router-sol/internal/logic/swaps/common"
	"arb-router-sol/internal/pkg/logger"
	"arb-router-sol/internal/runtime"
	"arb-router-sol/internal/types"
)

// ExecuteSwap 构造并执行一笔 Raydium CLMM swap_v2。
//
// 数据布局：discriminator + amount(u64) + other_amount_threshold(u64)
// + sqrt_price_limit_x64(u128, 置 MAX 表示不限价) + is_base_input(1)。
// 基础账户 13 个，tick arrays/extension 从账户表按 CLMM 程序 owner 扫描，
// 以可写形式追加在末尾（与链下引擎的传递方式对齐）。
func ExecuteSwap(ctx *common.SwapContext, accs *resolver.RaydiumCLMMAccounts) (*core.SwapResult, error) {
	preOut, err := common.ReadTokenAmount(ctx.UserOutput)
	if err != nil {
		return nil, err
	}

	// 1. CLMM 程序账户来自 indices，必须可执行
	if err := common.RequireExecutable(accs.ClmmProgram); err != nil {
		return nil, err
	}
	programID := accs.ClmmProgram.Key

	// 2. 指令数据（u128 手工编码：16 字节 LE，全 0xFF 即 u128::MAX）
	data := make([]byte, 0, 8+8+8+16+1)
	data = append(data, consts.DiscRaydiumCLMMSwapV2...)
	data = binary.LittleEndian.AppendUint64(data, ctx.AmountIn)
	data = binary.LittleEndian.AppendUint64(data, ctx.MinimumAmountOut)
	for i := 0; i < 16; i++ {
		data = append(data, 0xFF) // sqrt_price_limit_x64
	}
	data = append(data, 1) // is_base_input

	metas := []runtime.AccountMeta{
		{Pubkey: ctx.Payer.Key, IsSigner: true},
		{Pubkey: accs.AmmConfig.Key},
		{Pubkey: accs.PoolState.Key, IsWritable: true},
		{Pubkey: ctx.UserInput.Key, IsWritable: true},
		{Pubkey: ctx.UserOutput.Key, IsWritable: true},
		{Pubkey: accs.InputVault.Key, IsWritable: true},
		{Pubkey: accs.OutputVault.Key, IsWritable: true},
		{Pubkey: accs.ObservationState.Key, IsWritable: true},
		{Pubkey: accs.TokenProgram.Key},
		{Pubkey: accs.TokenProgram2022.Key},
		{Pubkey: accs.MemoProgram.Key},
		{Pubkey: accs.InputVaultMint.Key},
		{Pubkey: accs.OutputVaultMint.Key},
	}

	// 3. 动态追加 tick arrays / extension：表中 owner 为 CLMM 程序、
	// 且不在基础集中的账户，保持表内顺序、去重
	seen := make(map[types.Pubkey]struct{}, len(metas)+1)
	for _, m := range metas {
		seen[m.Pubkey] = struct{}{}
	}
	seen[programID] = struct{}{}
	for _, acc := range ctx.Table.OwnedBy(programID) {
		if _, dup := seen[acc.Key]; dup {
			continue
		}
		metas = append(metas, runtime.AccountMeta{Pubkey: acc.Key, IsWritable: true})
		seen[acc.Key] = struct{}{}
	}

	ix := &runtime.Instruction{ProgramID: programID, Accounts: metas, Data: data}

	logger.Infof("[CLMM] program_id=%s amount_in=%d min_out=%d extra_accounts=%d",
		programID, ctx.AmountIn, ctx.MinimumAmountOut, len(metas)-13)
	if err := ctx.Invoker.Invoke(ix, ctx.Table); err != nil {
		return nil, err
	}

	postOut, err := common.ReadTokenAmount(ctx.UserOutput)
	if err != nil {
		return nil, err
	}
	return &core.SwapResult{AmountIn: ctx.AmountIn, AmountOut: common.SaturatingSub(postOut, preOut)}, nil
}
