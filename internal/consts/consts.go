package consts

// 每步 indices 协议中各 venue 的客户端传入账户数量。
// indices 仅覆盖“固定最小集”；CLMM 的 tick arrays / extension 等动态账户
// 由客户端追加到全局账户表，在 swap 阶段按程序 owner 扫描注入。
const (
	// Raydium CPMM：amm_config, pool_state, token0_vault, token1_vault,
	// input_mint, output_mint, observation_state
	RaydiumCPMMAccountCount = 7

	// Raydium CLMM 基础账户（tick arrays 不计入 indices）
	RaydiumCLMMBaseAccountCount = 11

	// PumpFun：bonding_curve, mint, creator（+ 可选 fee_recipient 覆盖）
	PumpFunAccountCountMin = 3
	PumpFunAccountCountMax = 4

	// PumpSwap：pool_state, base_mint, quote_mint, coin_creator
	//（+ 可选 fee_recipient、fee_recipient_ata 覆盖）
	PumpSwapAccountCountMin = 4
	PumpSwapAccountCountMax = 6
)

// 套利路径长度上限（入口参数校验用）
const MaxPathSteps = 10
