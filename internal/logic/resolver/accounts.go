package resolver

import (
	"arb-router-sol/internal/runtime"
)

// 各 venue 的类型化账户集。字段顺序即 indices 协议中的下标顺序，
// 注释里的序号是映射下标，不是账户表下标。

// RaydiumCPMMAccounts 固定 7 个账户。
type RaydiumCPMMAccounts struct {
	AmmConfig        *runtime.Account // 0
	PoolState        *runtime.Account // 1
	Token0Vault      *runtime.Account // 2
	Token1Vault      *runtime.Account // 3
	InputMint        *runtime.Account // 4
	OutputMint       *runtime.Account // 5
	ObservationState *runtime.Account // 6
}

// RaydiumCLMMAccounts 固定 11 个基础账户；tick arrays 不走 indices，
// 由 swap 阶段在账户表中按 CLMM 程序 owner 扫描追加。
type RaydiumCLMMAccounts struct {
	ClmmProgram      *runtime.Account // 0
	AmmConfig        *runtime.Account // 1
	PoolState        *runtime.Account // 2
	InputVault       *runtime.Account // 3
	OutputVault      *runtime.Account // 4
	ObservationState *runtime.Account // 5
	TokenProgram     *runtime.Account // 6
	TokenProgram2022 *runtime.Account // 7
	MemoProgram      *runtime.Account // 8
	InputVaultMint   *runtime.Account // 9
	OutputVaultMint  *runtime.Account // 10
}

// PumpFunAccounts 3 个必选账户 + 可选 fee recipient 覆盖。
type PumpFunAccounts struct {
	BondingCurve *runtime.Account // 0
	Mint         *runtime.Account // 1
	Creator      *runtime.Account // 2
	FeeRecipient *runtime.Account // 3，可选；nil 时用固定地址
}

// PumpSwapAccounts 4 个必选账户 + 可选 fee recipient / fee recipient ATA 覆盖。
type PumpSwapAccounts struct {
	PoolState       *runtime.Account // 0
	BaseMint        *runtime.Account // 1
	QuoteMint       *runtime.Account // 2
	CoinCreator     *runtime.Account // 3
	FeeRecipient    *runtime.Account // 4，可选
	FeeRecipientATA *runtime.Account // 5，可选
}
