package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arb-router-sol/internal/config"
	"arb-router-sol/internal/consts"
	"arb-router-sol/internal/logic/core"
	"arb-router-sol/internal/runtime"
	"arb-router-sol/internal/types"
)

func testKey(n byte) types.Pubkey {
	var p types.Pubkey
	p[0] = n
	return p
}

func newTestDeriver(t *testing.T) *DerivedAccounts {
	t.Helper()
	cfg := &config.RouterConfig{}
	programs, err := LoadProgramIDs(cfg)
	require.NoError(t, err)
	fixed, err := LoadFixedAddresses(cfg)
	require.NoError(t, err)
	return NewDerivedAccounts(programs, fixed, testKey(1))
}

func TestLoadProgramIDsDefaults(t *testing.T) {
	ids, err := LoadProgramIDs(&config.RouterConfig{})
	require.NoError(t, err)
	assert.Equal(t, consts.RaydiumCPMMProgram, ids.RaydiumCPMM, "mainnet 默认 CPMM 程序")

	ids, err = LoadProgramIDs(&config.RouterConfig{Network: "devnet"})
	require.NoError(t, err)
	assert.Equal(t, consts.RaydiumCPMMProgramDevnetStr, ids.RaydiumCPMM.String(), "devnet 应切换 CPMM 程序")
}

func TestLoadProgramIDsOverride(t *testing.T) {
	cfg := &config.RouterConfig{}
	cfg.Programs.PumpFun = consts.PumpSwapProgramStr
	ids, err := LoadProgramIDs(cfg)
	require.NoError(t, err)
	assert.Equal(t, consts.PumpSwapProgram, ids.PumpFun, "覆盖值应生效")
}

func TestLoadProgramIDsMalformedOverride(t *testing.T) {
	cfg := &config.RouterConfig{}
	cfg.Programs.RaydiumCLMM = "not-a-key"
	_, err := LoadProgramIDs(cfg)
	assert.ErrorIs(t, err, core.ErrAddressResolution, "非法覆盖应报 AddressResolution")
	assert.ErrorIs(t, err, core.ErrInvalidPublicKey, "错误链中应含 InvalidPublicKey")
}

func TestLoadFixedAddressesMalformedOverride(t *testing.T) {
	cfg := &config.RouterConfig{}
	cfg.Addresses.PumpFunGlobal = "@@@"
	_, err := LoadFixedAddresses(cfg)
	assert.ErrorIs(t, err, core.ErrAddressResolution)
}

func TestDetectTokenProgramDefaultsToLegacy(t *testing.T) {
	d := newTestDeriver(t)
	table := runtime.NewAccountTable(nil)
	prog := d.DetectTokenProgram(table, testKey(9))
	assert.Equal(t, consts.TokenProgram, prog, "mint 不在表中应默认 legacy token 程序")
}

func TestDetectTokenProgramToken2022(t *testing.T) {
	d := newTestDeriver(t)
	mint := testKey(9)
	table := runtime.NewAccountTable([]*runtime.Account{
		{Key: mint, Owner: consts.TokenProgram2022},
	})
	assert.Equal(t, consts.TokenProgram2022, d.DetectTokenProgram(table, mint), "mint 持有程序为 Token-2022 时应识别")

	// 判定结果按 mint 缓存：换空表仍返回缓存值
	empty := runtime.NewAccountTable(nil)
	assert.Equal(t, consts.TokenProgram2022, d.DetectTokenProgram(empty, mint), "结果应被缓存")
}

func TestDeriveUserTokenAccountDeterministicAndCached(t *testing.T) {
	d := newTestDeriver(t)
	table := runtime.NewAccountTable(nil)
	mint := testKey(7)

	ata1, err := d.DeriveUserTokenAccount(table, mint)
	require.NoError(t, err)
	ata2, err := d.DeriveUserTokenAccount(table, mint)
	require.NoError(t, err)
	assert.Equal(t, ata1, ata2, "同一 mint 两次推导应一致")

	cached, ok := d.UserTokenAccount(mint)
	assert.True(t, ok, "推导后应命中缓存")
	assert.Equal(t, ata1, cached)

	// 不同用户推导出的 ATA 不同
	other := NewDerivedAccounts(d.Programs(), d.Fixed(), testKey(2))
	ata3, err := other.DeriveUserTokenAccount(table, mint)
	require.NoError(t, err)
	assert.NotEqual(t, ata1, ata3, "不同用户的 ATA 应不同")
}

func TestDeriveForPathPumpFun(t *testing.T) {
	d := newTestDeriver(t)
	table := runtime.NewAccountTable(nil)
	wsol := d.Fixed().WSOLMint
	token := testKey(8)

	steps := []core.PathStep{
		{Venue: core.VenuePumpFun, InputMint: wsol, OutputMint: token},
	}
	require.NoError(t, d.DeriveForPath(table, steps))

	_, ok := d.UserTokenAccount(wsol)
	assert.True(t, ok, "输入 mint 的用户账户应已推导")
	_, ok = d.UserTokenAccount(token)
	assert.True(t, ok, "输出 mint 的用户账户应已推导")

	bc, err := d.PumpFunBondingCurve(token)
	require.NoError(t, err)
	assert.False(t, bc.IsZero())

	entries := d.Entries()
	assert.NotEmpty(t, entries, "Entries 应导出推导结果")
	for i := 1; i < len(entries); i++ {
		assert.LessOrEqual(t, entries[i-1].Name, entries[i].Name, "Entries 应按名称排序")
	}
}

func TestDeriveForPathAccumulatorsByDirection(t *testing.T) {
	table := runtime.NewAccountTable(nil)
	token := testKey(8)

	hasEntry := func(d *DerivedAccounts, name string) bool {
		for _, e := range d.Entries() {
			if e.Name == name {
				return true
			}
		}
		return false
	}

	// 买入（输入为 WSOL）：两个 volume accumulator 应被预推导
	buy := newTestDeriver(t)
	gvaName := "pumpfun_global_volume_accumulator_" + buy.Programs().PumpFun.String()
	uvaName := "pumpfun_user_volume_accumulator_" + buy.Programs().PumpFun.String()
	steps := []core.PathStep{
		{Venue: core.VenuePumpFun, InputMint: buy.Fixed().WSOLMint, OutputMint: token},
	}
	require.NoError(t, buy.DeriveForPath(table, steps))
	assert.True(t, hasEntry(buy, gvaName), "买入方向应预推导 global volume accumulator")
	assert.True(t, hasEntry(buy, uvaName), "买入方向应预推导 user volume accumulator")

	gva, err := buy.GlobalVolumeAccumulator(buy.Programs().PumpFun)
	require.NoError(t, err)
	assert.False(t, gva.IsZero())

	// 卖出（输出为 WSOL）：不应推导 accumulator
	sell := newTestDeriver(t)
	steps = []core.PathStep{
		{Venue: core.VenuePumpFun, InputMint: token, OutputMint: sell.Fixed().WSOLMint},
	}
	require.NoError(t, sell.DeriveForPath(table, steps))
	assert.False(t, hasEntry(sell, gvaName), "卖出方向不应推导 global volume accumulator")
	assert.False(t, hasEntry(sell, uvaName), "卖出方向不应推导 user volume accumulator")
}

func TestPumpFunPDAsMatchKnownMainnetValues(t *testing.T) {
	// global 与 event authority 的主网 PDA 是公开可验证的固定值
	d := newTestDeriver(t)
	assert.Equal(t, consts.PumpFunGlobalStr, d.PumpFunGlobal().String(), "global PDA 应与主网公开值一致")
	assert.Equal(t, consts.PumpFunEventAuthorityStr, d.PumpFunEventAuthority().String(), "event authority PDA 应与主网公开值一致")
}
