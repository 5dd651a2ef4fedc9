package runtime

import (
	"encoding/binary"

	"arb-router-sol/internal/types"
)

// SPL 代币账户数据布局（Token 与 Token-2022 前 72 字节一致）：
//
//	[0:32)  mint
//	[32:64) owner（钱包地址，非持有程序）
//	[64:72) amount，u64 LE
const (
	tokenAccountMintOffset   = 0
	tokenAccountOwnerOffset  = 32
	tokenAccountAmountOffset = 64
	TokenAccountMinLen       = 72
)

// TokenAccountMint 读取代币账户的 mint 字段，数据过短返回 false。
func TokenAccountMint(acc *Account) (types.Pubkey, bool) {
	if acc == nil || len(acc.Data) < TokenAccountMinLen {
		return types.Pubkey{}, false
	}
	var mint types.Pubkey
	copy(mint[:], acc.Data[tokenAccountMintOffset:tokenAccountMintOffset+32])
	return mint, true
}

// TokenAccountOwner 读取代币账户的 owner（钱包）字段。
func TokenAccountOwner(acc *Account) (types.Pubkey, bool) {
	if acc == nil || len(acc.Data) < TokenAccountMinLen {
		return types.Pubkey{}, false
	}
	var owner types.Pubkey
	copy(owner[:], acc.Data[tokenAccountOwnerOffset:tokenAccountOwnerOffset+32])
	return owner, true
}

// TokenAccountAmount 读取代币账户余额（u64 LE）。
func TokenAccountAmount(acc *Account) (uint64, bool) {
	if acc == nil || len(acc.Data) < TokenAccountMinLen {
		return 0, false
	}
	return binary.LittleEndian.Uint64(acc.Data[tokenAccountAmountOffset : tokenAccountAmountOffset+8]), true
}

// IsTokenAccountFor 判断账户是否为 owner 持有的 mint 代币账户。
func IsTokenAccountFor(acc *Account, mint, owner types.Pubkey) bool {
	m, ok := TokenAccountMint(acc)
	if !ok || m != mint {
		return false
	}
	o, _ := TokenAccountOwner(acc)
	return o == owner
}
