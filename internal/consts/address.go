package consts

import "arb-router-sol/internal/types"

// Base58 地址常量（可读性高，适合配置与日志使用）。
// 所有固定地址与外部 venue 程序 ID 均可由配置覆盖（见 internal/config），
// 此处仅为各网络的编译期默认值。
const (
	// Programs
	SystemProgramStr          = "11111111111111111111111111111111"
	TokenProgramStr           = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"
	TokenProgram2022Str       = "TokenzQdBNbLqP5VEhdkAS6EPFLC1PHnBqCXEpPxuEb"
	AssociatedTokenProgramStr = "ATokenGPvbdGVxr1b2hvZbsiqW5xWH25efTNsLJA8knL"
	MemoProgramStr            = "MemoSq4gqABAXKb96qnH8TysNcWxMyWCqXgDLGmfcHr"

	// 报价基础资产
	WSOLMintStr = "So11111111111111111111111111111111111111112"

	// DEX: Raydium CPMM（mainnet / devnet 程序 ID 不同）
	RaydiumCPMMProgramStr       = "CPMMoo8L3F4NbTegBCKVNunggL7H1ZpdTHKxQB5qKP1C"
	RaydiumCPMMProgramDevnetStr = "CPMDWBwJDtYax9qW7AyRuVC19Cc4L4Vcy4n2BHAbHkCW"

	// DEX: Raydium CLMM（各网络共用）
	RaydiumCLMMProgramStr = "CAMMCzo5YL8w4VFF8KVHrK22GGUsp5VTaW7grrKgrWqK"

	// DEX: PumpFun bonding curve
	PumpFunProgramStr = "6EF8rrecthR5Dkzon8Nwu78hRvfCKubJ14M5uBEwF6P"

	// DEX: PumpSwap AMM
	PumpSwapProgramStr = "pAMMBay6oceH9fJKBRHGP5D4bD4sWpmSwMn52FMfXEA"

	// Raydium CPMM vault authority（mainnet / devnet 不同）
	RaydiumCPMMAuthorityStr       = "GpMZbSM2GgvTKHJirzeGfMFoaZ8UR2X7F4v8vHTvxFbL"
	RaydiumCPMMAuthorityDevnetStr = "7rQ1QFNosMkUCuh7Z7fPbTHvh73b68sQYdirycEzJVuw"

	// PumpFun 固定地址
	PumpFunGlobalStr         = "4wTV1YmiEkRvAtNtsSGPtUrqRYQMe5SKy2uB4Jjaxnjf"
	PumpFunFeeRecipientStr   = "62qc2CNXwrYqQScmEdiZFFAnJR262PxWEuNQtxfafNgV"
	PumpFunEventAuthorityStr = "Ce6TQqeHC9p8KetsN6JsjHK7UTZk7nasjjnr7XxXp9F1"

	// PumpSwap 固定地址
	PumpSwapGlobalConfigStr    = "ADyA8hdefvWN2dbGGWFotbzWxrAvLW83WG6QCVXvJKqw"
	PumpSwapFeeRecipientStr    = "62qc2CNXwrYqQScmEdiZFFAnJR262PxWEuNQtxfafNgV"
	PumpSwapFeeRecipientATAStr = "94qWNrtmfn42h3ZjUZwWvK1MEo9uVmmrBPd2hpNjYDjb"
	PumpSwapEventAuthorityStr  = "GS4CU59F31iL7aR2Q8zVS8DRrcRnXX1yjQ66TqNVQnaR"
)

var (
	// Programs
	SystemProgram          = types.PubkeyFromBase58(SystemProgramStr)
	TokenProgram           = types.PubkeyFromBase58(TokenProgramStr)
	TokenProgram2022       = types.PubkeyFromBase58(TokenProgram2022Str)
	AssociatedTokenProgram = types.PubkeyFromBase58(AssociatedTokenProgramStr)
	MemoProgram            = types.PubkeyFromBase58(MemoProgramStr)

	// Wrapped SOL：方向判定的基准 mint（输出为 WSOL 视为卖出）
	WSOLMint = types.PubkeyFromBase58(WSOLMintStr)

	// DEX Programs（mainnet 默认）
	RaydiumCPMMProgram = types.PubkeyFromBase58(RaydiumCPMMProgramStr)
	RaydiumCLMMProgram = types.PubkeyFromBase58(RaydiumCLMMProgramStr)
	PumpFunProgram     = types.PubkeyFromBase58(PumpFunProgramStr)
	PumpSwapProgram    = types.PubkeyFromBase58(PumpSwapProgramStr)
)
