package consts

// PDA 种子常量。种子字符串属于各 venue 的链上 ABI，必须逐字节一致。
var (
	// PumpFun
	SeedPumpFunGlobal                  = []byte("global")
	SeedPumpFunBondingCurve            = []byte("bonding-curve")
	SeedPumpFunCreatorVault            = []byte("creator-vault")
	SeedPumpFunMintAuthority           = []byte("mint-authority")
	SeedPumpFunEventAuthority          = []byte("__event_authority")
	SeedPumpFunGlobalVolumeAccumulator = []byte("global_volume_accumulator")
	SeedPumpFunUserVolumeAccumulator   = []byte("user_volume_accumulator")

	// PumpSwap
	SeedPumpSwapGlobalConfig   = []byte("global_config")
	SeedPumpSwapPool           = []byte("pool")
	SeedPumpSwapLpMint         = []byte("pool_lp_mint")
	SeedPumpSwapCreatorVault   = []byte("creator_vault")
	SeedPumpSwapEventAuthority = []byte("__event_authority")
)
