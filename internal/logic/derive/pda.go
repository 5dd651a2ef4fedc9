package derive

import (
	"fmt"

	"arb-router-sol/internal/consts"
	"arb-router-sol/internal/logic/core"
	"arb-router-sol/internal/types"
)

// 本文件是纯函数层：给定程序 ID 与种子输入，推导各 venue 的 PDA。
// 带缓存的入口见 deriver.go。

func findPDA(seeds [][]byte, program types.Pubkey, what string) (types.Pubkey, error) {
	pda, _, err := types.FindProgramAddress(seeds, program)
	if err != nil {
		return types.Pubkey{}, fmt.Errorf("%w: derive %s: %v", core.ErrAddressResolution, what, err)
	}
	return pda, nil
}

// AssociatedTokenAddress 推导 owner 在 tokenProgram 下持有 mint 的关联代币账户。
// 种子顺序 [owner, token_program, mint]，派生程序为 ATA 程序。
func AssociatedTokenAddress(owner, tokenProgram, mint types.Pubkey) (types.Pubkey, error) {
	seeds := [][]byte{owner[:], tokenProgram[:], mint[:]}
	return findPDA(seeds, consts.AssociatedTokenProgram, "associated token account")
}

// ---- PumpFun ----

func PumpFunGlobalPDA(program types.Pubkey) (types.Pubkey, error) {
	return findPDA([][]byte{consts.SeedPumpFunGlobal}, program, "pumpfun global")
}

func PumpFunBondingCurvePDA(program, mint types.Pubkey) (types.Pubkey, error) {
	return findPDA([][]byte{consts.SeedPumpFunBondingCurve, mint[:]}, program, "pumpfun bonding curve")
}

func PumpFunCreatorVaultPDA(program, creator types.Pubkey) (types.Pubkey, error) {
	return findPDA([][]byte{consts.SeedPumpFunCreatorVault, creator[:]}, program, "pumpfun creator vault")
}

func PumpFunEventAuthorityPDA(program types.Pubkey) (types.Pubkey, error) {
	return findPDA([][]byte{consts.SeedPumpFunEventAuthority}, program, "pumpfun event authority")
}

func GlobalVolumeAccumulatorPDA(program types.Pubkey) (types.Pubkey, error) {
	return findPDA([][]byte{consts.SeedPumpFunGlobalVolumeAccumulator}, program, "global volume accumulator")
}

func UserVolumeAccumulatorPDA(program, user types.Pubkey) (types.Pubkey, error) {
	return findPDA([][]byte{consts.SeedPumpFunUserVolumeAccumulator, user[:]}, program, "user volume accumulator")
}

// ---- PumpSwap ----

func PumpSwapGlobalConfigPDA(program types.Pubkey) (types.Pubkey, error) {
	return findPDA([][]byte{consts.SeedPumpSwapGlobalConfig}, program, "pumpswap global config")
}

func PumpSwapEventAuthorityPDA(program types.Pubkey) (types.Pubkey, error) {
	return findPDA([][]byte{consts.SeedPumpSwapEventAuthority}, program, "pumpswap event authority")
}

func PumpSwapCreatorVaultPDA(program, creator types.Pubkey) (types.Pubkey, error) {
	return findPDA([][]byte{consts.SeedPumpSwapCreatorVault, creator[:]}, program, "pumpswap creator vault")
}
