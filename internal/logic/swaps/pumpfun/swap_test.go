package pumpfun

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arb-router-sol/internal/config"
	"arb-router-sol/internal/consts"
	"arb-router-sol/internal/logic/core"
	"arb-router-sol/internal/logic/derive"
	"arb-router-sol/internal/logic/resolver"
	"arb-router-sol/internal/logic/swaps/common"
	"arb-router-sol/internal/runtime"
	"arb-router-sol/internal/types"
)

func key(n byte) types.Pubkey {
	var p types.Pubkey
	p[0] = n
	return p
}

func tokenAccount(k, mint, owner types.Pubkey, amount uint64) *runtime.Account {
	data := make([]byte, 165)
	copy(data[0:32], mint[:])
	copy(data[32:64], owner[:])
	binary.LittleEndian.PutUint64(data[64:72], amount)
	return &runtime.Account{Key: k, Owner: consts.TokenProgram, Data: data, Writable: true}
}

type fakeInvoker struct {
	ix     *runtime.Instruction
	target *runtime.Account
	credit uint64
}

func (f *fakeInvoker) Invoke(ix *runtime.Instruction, _ *runtime.AccountTable) error {
	f.ix = ix
	if f.target != nil {
		cur := binary.LittleEndian.Uint64(f.target.Data[64:72])
		binary.LittleEndian.PutUint64(f.target.Data[64:72], cur+f.credit)
	}
	return nil
}

type fixture struct {
	ctx          *common.SwapContext
	accs         *resolver.PumpFunAccounts
	inv          *fakeInvoker
	userWSOL     *runtime.Account
	userToken    *runtime.Account
	creatorVault types.Pubkey
}

// newFixture 构造一笔买入（WSOL -> token）场景，卖出用例再交换输入输出。
func newFixture(t *testing.T) *fixture {
	t.Helper()
	cfg := &config.RouterConfig{}
	programs, err := derive.LoadProgramIDs(cfg)
	require.NoError(t, err)
	fixed, err := derive.LoadFixedAddresses(cfg)
	require.NoError(t, err)

	user := key(1)
	mint := key(2)
	creator := key(3)
	programID := consts.PumpFunProgram

	payer := &runtime.Account{Key: user, Signer: true, Writable: true}
	tokenProg := &runtime.Account{Key: consts.TokenProgram, Executable: true}
	systemProg := &runtime.Account{Key: consts.SystemProgram, Executable: true}
	programAcc := &runtime.Account{Key: programID, Executable: true}

	globalKey, err := derive.PumpFunGlobalPDA(programID)
	require.NoError(t, err)
	eventKey, err := derive.PumpFunEventAuthorityPDA(programID)
	require.NoError(t, err)
	bondingCurveKey, err := derive.PumpFunBondingCurvePDA(programID, mint)
	require.NoError(t, err)
	creatorVaultKey, err := derive.PumpFunCreatorVaultPDA(programID, creator)
	require.NoError(t, err)

	global := &runtime.Account{Key: globalKey, Owner: programID}
	eventAuthority := &runtime.Account{Key: eventKey, Owner: programID}
	feeRecipient := &runtime.Account{Key: fixed.PumpFunFeeRecipient, Writable: true}
	bondingCurve := &runtime.Account{Key: bondingCurveKey, Owner: programID, Writable: true}
	creatorVault := &runtime.Account{Key: creatorVaultKey, Owner: programID, Writable: true}
	mintAcc := &runtime.Account{Key: mint, Owner: consts.TokenProgram}
	creatorAcc := &runtime.Account{Key: creator}

	associatedBC := tokenAccount(key(10), mint, bondingCurveKey, 10_000_000)
	userWSOL := tokenAccount(key(20), fixed.WSOLMint, user, 5000)
	userToken := tokenAccount(key(21), mint, user, 0)

	table := runtime.NewAccountTable([]*runtime.Account{
		payer, tokenProg, systemProg, programAcc,
		global, eventAuthority, feeRecipient, bondingCurve, creatorVault,
		mintAcc, creatorAcc, associatedBC, userWSOL, userToken,
	})

	inv := &fakeInvoker{target: userToken, credit: 900}
	ctx := &common.SwapContext{
		Table:            table,
		Derived:          derive.NewDerivedAccounts(programs, fixed, user),
		Invoker:          inv,
		Payer:            payer,
		TokenProgram:     tokenProg,
		SystemProgram:    systemProg,
		UserInput:        userWSOL,
		UserOutput:       userToken,
		AmountIn:         1000,
		MinimumAmountOut: 850,
	}
	accs := &resolver.PumpFunAccounts{
		BondingCurve: bondingCurve,
		Mint:         mintAcc,
		Creator:      creatorAcc,
	}
	return &fixture{
		ctx: ctx, accs: accs, inv: inv,
		userWSOL: userWSOL, userToken: userToken, creatorVault: creatorVaultKey,
	}
}

func TestBuyDataAndAccountOrder(t *testing.T) {
	f := newFixture(t)
	result, err := ExecuteSwap(f.ctx, f.accs)
	require.NoError(t, err)
	assert.Equal(t, uint64(900), result.AmountOut)

	ix := f.inv.ix
	assert.Equal(t, consts.PumpFunProgram, ix.ProgramID, "程序 ID 应取自 bonding curve 的持有程序")

	// BUY: disc + token_amount(min_out) + max_sol_cost(amount_in)
	var want []byte
	want = append(want, consts.DiscPumpFunBuy...)
	want = binary.LittleEndian.AppendUint64(want, 850)
	want = binary.LittleEndian.AppendUint64(want, 1000)
	assert.Equal(t, want, ix.Data, "买入数据应为 disc+min_out+amount_in")

	require.Len(t, ix.Accounts, 11, "无 volume accumulator 时买入应有 11 个账户")
	// buy 的 token_program 在 creator_vault 之前
	assert.Equal(t, consts.TokenProgram, ix.Accounts[8].Pubkey)
	assert.Equal(t, f.creatorVault, ix.Accounts[9].Pubkey)
	assert.True(t, ix.Accounts[6].IsSigner, "payer 应为 signer")
}

func TestSellDataAndAccountOrder(t *testing.T) {
	f := newFixture(t)
	// 卖出：token -> WSOL
	f.ctx.UserInput = f.userToken
	f.ctx.UserOutput = f.userWSOL
	f.inv.target = f.userWSOL

	_, err := ExecuteSwap(f.ctx, f.accs)
	require.NoError(t, err)

	ix := f.inv.ix
	var want []byte
	want = append(want, consts.DiscPumpFunSell...)
	want = binary.LittleEndian.AppendUint64(want, 1000) // token_amount
	want = binary.LittleEndian.AppendUint64(want, 850)  // min_sol_output
	assert.Equal(t, want, ix.Data, "卖出数据应为 disc+amount_in+min_out")

	require.Len(t, ix.Accounts, 11)
	// sell 的 creator_vault 在 token_program 之前
	assert.Equal(t, f.creatorVault, ix.Accounts[8].Pubkey)
	assert.Equal(t, consts.TokenProgram, ix.Accounts[9].Pubkey)
}

func TestBuyAppendsVolumeAccumulators(t *testing.T) {
	f := newFixture(t)

	gvaKey, err := derive.GlobalVolumeAccumulatorPDA(consts.PumpFunProgram)
	require.NoError(t, err)
	uvaKey, err := derive.UserVolumeAccumulatorPDA(consts.PumpFunProgram, f.ctx.Payer.Key)
	require.NoError(t, err)

	// 把两个 accumulator 加入表中重建 fixture 的账户表
	accounts := []*runtime.Account{
		{Key: gvaKey, Writable: true},
		{Key: uvaKey, Writable: true},
	}
	for i := 0; i < f.ctx.Table.Len(); i++ {
		accounts = append(accounts, f.ctx.Table.Get(i))
	}
	f.ctx.Table = runtime.NewAccountTable(accounts)

	_, err = ExecuteSwap(f.ctx, f.accs)
	require.NoError(t, err)

	ix := f.inv.ix
	require.Len(t, ix.Accounts, 13, "表中存在 volume accumulator 时应追加")
	assert.Equal(t, gvaKey, ix.Accounts[11].Pubkey)
	assert.Equal(t, uvaKey, ix.Accounts[12].Pubkey)
}

func TestFeeRecipientOverride(t *testing.T) {
	f := newFixture(t)
	override := &runtime.Account{Key: key(50), Writable: true}
	f.accs.FeeRecipient = override

	_, err := ExecuteSwap(f.ctx, f.accs)
	require.NoError(t, err)
	assert.Equal(t, override.Key, f.inv.ix.Accounts[1].Pubkey, "可选下标提供时应覆盖固定 fee recipient")
}

func TestRejectsNonWSOLPair(t *testing.T) {
	f := newFixture(t)
	// 输入输出都不是 WSOL
	other := tokenAccount(key(60), key(61), f.ctx.Payer.Key, 100)
	f.ctx.UserInput = other
	_, err := ExecuteSwap(f.ctx, f.accs)
	assert.ErrorIs(t, err, core.ErrInvalidAccount, "不含 WSOL 的交易对应报错")
	assert.Nil(t, f.inv.ix, "方向判定失败不应触发执行")
}
