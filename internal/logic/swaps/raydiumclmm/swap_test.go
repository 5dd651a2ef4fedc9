package raydiumclmm

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arb-router-sol/internal/consts"
	"arb-router-sol/internal/logic/core"
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
	ctx        *common.SwapContext
	accs       *resolver.RaydiumCLMMAccounts
	inv        *fakeInvoker
	tickArrays []*runtime.Account
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	user := key(1)
	mintIn := key(2)
	mintOut := key(3)
	programID := consts.RaydiumCLMMProgram

	payer := &runtime.Account{Key: user, Signer: true}
	clmmProgram := &runtime.Account{Key: programID, Executable: true}
	ammConfig := &runtime.Account{Key: key(10), Owner: programID}
	poolState := &runtime.Account{Key: key(11), Owner: programID, Writable: true}
	observation := &runtime.Account{Key: key(12), Owner: programID, Writable: true}
	inputVault := tokenAccount(key(13), mintIn, poolState.Key, 1_000_000)
	outputVault := tokenAccount(key(14), mintOut, poolState.Key, 1_000_000)
	tokenProg := &runtime.Account{Key: consts.TokenProgram, Executable: true}
	tokenProg2022 := &runtime.Account{Key: consts.TokenProgram2022, Executable: true}
	memoProg := &runtime.Account{Key: consts.MemoProgram, Executable: true}
	inputMint := &runtime.Account{Key: mintIn, Owner: consts.TokenProgram}
	outputMint := &runtime.Account{Key: mintOut, Owner: consts.TokenProgram}

	// tick arrays：owner 为 CLMM 程序但不在基础集中
	tick1 := &runtime.Account{Key: key(30), Owner: programID, Writable: true}
	tick2 := &runtime.Account{Key: key(31), Owner: programID, Writable: true}

	userIn := tokenAccount(key(20), mintIn, user, 5000)
	userOut := tokenAccount(key(21), mintOut, user, 0)

	table := runtime.NewAccountTable([]*runtime.Account{
		payer, clmmProgram, ammConfig, poolState, observation,
		inputVault, outputVault, tokenProg, tokenProg2022, memoProg,
		inputMint, outputMint, tick1, tick2, userIn, userOut,
	})

	inv := &fakeInvoker{target: userOut, credit: 750}
	ctx := &common.SwapContext{
		Table:            table,
		Invoker:          inv,
		Payer:            payer,
		TokenProgram:     tokenProg,
		UserInput:        userIn,
		UserOutput:       userOut,
		AmountIn:         1000,
		MinimumAmountOut: 700,
	}
	accs := &resolver.RaydiumCLMMAccounts{
		ClmmProgram:      clmmProgram,
		AmmConfig:        ammConfig,
		PoolState:        poolState,
		InputVault:       inputVault,
		OutputVault:      outputVault,
		ObservationState: observation,
		TokenProgram:     tokenProg,
		TokenProgram2022: tokenProg2022,
		MemoProgram:      memoProg,
		InputVaultMint:   inputMint,
		OutputVaultMint:  outputMint,
	}
	return &fixture{ctx: ctx, accs: accs, inv: inv, tickArrays: []*runtime.Account{tick1, tick2}}
}

func TestExecuteSwapDataLayout(t *testing.T) {
	f := newFixture(t)
	result, err := ExecuteSwap(f.ctx, f.accs)
	require.NoError(t, err)
	assert.Equal(t, uint64(750), result.AmountOut)

	// data = disc + amount + threshold + sqrt_price_limit(u128::MAX) + is_base_input
	var want []byte
	want = append(want, consts.DiscRaydiumCLMMSwapV2...)
	want = binary.LittleEndian.AppendUint64(want, 1000)
	want = binary.LittleEndian.AppendUint64(want, 700)
	for i := 0; i < 16; i++ {
		want = append(want, 0xFF)
	}
	want = append(want, 1)
	assert.Equal(t, want, f.inv.ix.Data, "swap_v2 数据应逐字节一致")
}

func TestExecuteSwapAppendsTickArrays(t *testing.T) {
	f := newFixture(t)
	_, err := ExecuteSwap(f.ctx, f.accs)
	require.NoError(t, err)

	ix := f.inv.ix
	// 13 个基础账户 + 2 个 tick arrays（pool/observation 已在基础集中，不重复追加）
	require.Len(t, ix.Accounts, 15, "tick arrays 应追加在基础账户之后")
	assert.Equal(t, f.tickArrays[0].Key, ix.Accounts[13].Pubkey)
	assert.Equal(t, f.tickArrays[1].Key, ix.Accounts[14].Pubkey)
	assert.True(t, ix.Accounts[13].IsWritable, "tick array 应以可写追加")
	assert.True(t, ix.Accounts[14].IsWritable)
}

func TestExecuteSwapNoTickArrays(t *testing.T) {
	f := newFixture(t)
	// 把 tick arrays 的 owner 改掉，扫描应追加不到任何账户
	f.tickArrays[0].Owner = key(99)
	f.tickArrays[1].Owner = key(99)
	_, err := ExecuteSwap(f.ctx, f.accs)
	require.NoError(t, err)
	assert.Len(t, f.inv.ix.Accounts, 13)
}

func TestExecuteSwapRejectsNonExecutableProgram(t *testing.T) {
	f := newFixture(t)
	f.accs.ClmmProgram.Executable = false
	_, err := ExecuteSwap(f.ctx, f.accs)
	assert.ErrorIs(t, err, core.ErrInvalidAccount)
	assert.Nil(t, f.inv.ix, "校验失败不应触发执行")
}
