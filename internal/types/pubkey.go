package types

import (
	"fmt"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/mr-tron/base58"
)

type Pubkey [32]byte

func (p Pubkey) String() string {
	return base58.Encode(p[:])
}

func (p Pubkey) Equals(other Pubkey) bool {
	return p == other
}

func (p Pubkey) IsZero() bool {
	return p == Pubkey{}
}

// TryPubkeyFromBase58 解析 base58 字符串为 Pubkey，失败时返回 error（用于不信任输入路径）
func TryPubkeyFromBase58(s string) (Pubkey, error) {
	data, err := base58.Decode(s)
	if err != nil {
		return Pubkey{}, fmt.Errorf("failed to decode base58 pubkey %q: %w", s, err)
	}
	if len(data) != 32 {
		return Pubkey{}, fmt.Errorf("invalid pubkey length: got %d, want 32, input=%q", len(data), s)
	}
	var p Pubkey
	copy(p[:], data)
	return p, nil
}

func PubkeyFromBase58(s string) Pubkey {
	data, err := base58.Decode(s)
	if err != nil {
		panic(fmt.Errorf("failed to decode base58 pubkey %q: %w", s, err))
	}
	if len(data) != 32 {
		panic(fmt.Errorf("invalid pubkey length: got %d, want 32, input=%q", len(data), s))
	}
	var p Pubkey
	copy(p[:], data)
	return p
}

func PubkeysFromBase58(strs []string) []Pubkey {
	result := make([]Pubkey, 0, len(strs))
	for _, s := range strs {
		result = append(result, PubkeyFromBase58(s))
	}
	return result
}

// FindProgramAddress 按链上标准推导 PDA：bump 从 255 开始递减，
// 连同 seeds 一起哈希，直至结果离开 ed25519 曲线（即任何私钥都无法控制该地址）。
// 返回派生地址与命中的 bump。
func FindProgramAddress(seeds [][]byte, program Pubkey) (Pubkey, uint8, error) {
	pda, bump, err := common.FindProgramAddress(seeds, common.PublicKeyFromBytes(program[:]))
	if err != nil {
		return Pubkey{}, 0, fmt.Errorf("find program address for %s: %w", program, err)
	}
	return Pubkey(pda), bump, nil
}

// CreateProgramAddress 使用显式 bump 推导 PDA；结果仍在曲线上时返回 error。
func CreateProgramAddress(seeds [][]byte, program Pubkey) (Pubkey, error) {
	pda, err := common.CreateProgramAddress(seeds, common.PublicKeyFromBytes(program[:]))
	if err != nil {
		return Pubkey{}, fmt.Errorf("create program address for %s: %w", program, err)
	}
	return Pubkey(pda), nil
}
