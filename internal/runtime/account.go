package runtime

import (
	"arb-router-sol/internal/types"
)

// Account 是账户表中的一个账户快照：执行核心对链上账户的全部视图。
type Account struct {
	Key        types.Pubkey
	Owner      types.Pubkey // 持有该账户的程序
	Lamports   uint64
	Data       []byte
	Writable   bool
	Signer     bool
	Executable bool
}

// AccountTable 是单次调用的扁平账户表（对应 remaining_accounts）。
// 表在一次执行内不可变；所有账户引用都通过表内下标或线性查找完成。
type AccountTable struct {
	accounts []*Account
}

func NewAccountTable(accounts []*Account) *AccountTable {
	return &AccountTable{accounts: accounts}
}

func (t *AccountTable) Len() int {
	return len(t.accounts)
}

// Get 按下标取账户，越界返回 nil。
func (t *AccountTable) Get(index int) *Account {
	if index < 0 || index >= len(t.accounts) {
		return nil
	}
	return t.accounts[index]
}

// FindByKey 线性查找地址等于 key 的第一个账户，未找到返回 nil。
func (t *AccountTable) FindByKey(key types.Pubkey) *Account {
	for _, acc := range t.accounts {
		if acc.Key == key {
			return acc
		}
	}
	return nil
}

// FindTokenAccount 查找 owner 持有、mint 对应的代币账户（按数据布局匹配）。
func (t *AccountTable) FindTokenAccount(mint, owner types.Pubkey) *Account {
	for _, acc := range t.accounts {
		if IsTokenAccountFor(acc, mint, owner) {
			return acc
		}
	}
	return nil
}

// OwnedBy 返回所有 Owner 等于 program 的账户，保持表内顺序。
func (t *AccountTable) OwnedBy(program types.Pubkey) []*Account {
	var out []*Account
	for _, acc := range t.accounts {
		if acc.Owner == program {
			out = append(out, acc)
		}
	}
	return out
}
