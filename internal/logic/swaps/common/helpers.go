package common

import (
	"fmt"

	"arb-router-sol/internal/logic/core"
	"arb-router-sol/internal/runtime"
	"arb-router-sol/internal/types"
)

// FindAccount 在账户表中按地址定位账户。
func FindAccount(table *runtime.AccountTable, key types.Pubkey) (*runtime.Account, error) {
	if acc := table.FindByKey(key); acc != nil {
		return acc, nil
	}
	return nil, fmt.Errorf("%w: %s", core.ErrAccountNotFound, key)
}

// FindTokenAccountFor 按 owner+mint 的数据布局在账户表中定位代币账户。
func FindTokenAccountFor(table *runtime.AccountTable, mint, owner types.Pubkey) (*runtime.Account, error) {
	if acc := table.FindTokenAccount(mint, owner); acc != nil {
		return acc, nil
	}
	return nil, fmt.Errorf("%w: token account owner=%s mint=%s", core.ErrAccountNotFound, owner, mint)
}

// ReadTokenAmount 读取代币账户余额，数据过短视为非法账户。
func ReadTokenAmount(acc *runtime.Account) (uint64, error) {
	amount, ok := runtime.TokenAccountAmount(acc)
	if !ok {
		return 0, fmt.Errorf("%w: token account data too short", core.ErrInvalidAccount)
	}
	return amount, nil
}

// RequireExecutable 校验程序账户的可执行位。
func RequireExecutable(acc *runtime.Account) error {
	if acc == nil || !acc.Executable {
		return fmt.Errorf("%w: program account not executable", core.ErrInvalidAccount)
	}
	return nil
}

// SaturatingSub 计算 a-b，下溢归零（余额差法对账户被他方减持时的保护）。
func SaturatingSub(a, b uint64) uint64 {
	if a < b {
		return 0
	}
	return a - b
}
