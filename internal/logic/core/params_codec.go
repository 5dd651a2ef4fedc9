package core

import (
	"fmt"

	"github.com/near/borsh-go"
)

// DecodeArbitrageParams 从 borsh 字节流还原入口参数。
// 布局：u64 input, u64 min_profit, u16 slippage,
// vec<PathStep>（PoolID 为 Option<[32]u8>），vec<AccountMapping>。
func DecodeArbitrageParams(data []byte) (*ArbitrageParams, error) {
	var p ArbitrageParams
	if err := borsh.Deserialize(&p, data); err != nil {
		return nil, fmt.Errorf("decode arbitrage params: %w", err)
	}
	return &p, nil
}

// EncodeArbitrageParams 序列化入口参数，主要供测试与 planner 工具使用。
func EncodeArbitrageParams(p *ArbitrageParams) ([]byte, error) {
	data, err := borsh.Serialize(*p)
	if err != nil {
		return nil, fmt.Errorf("encode arbitrage params: %w", err)
	}
	return data, nil
}
