package router

import (
	"fmt"

	"arb-router-sol/internal/config"
	"arb-router-sol/internal/consts"
	"arb-router-sol/internal/logic/core"
	"arb-router-sol/internal/logic/derive"
	"arb-router-sol/internal/logic/resolver"
	"arb-router-sol/internal/logic/swaps/common"
	"arb-router-sol/internal/pkg/logger"
	"arb-router-sol/internal/runtime"
	"arb-router-sol/internal/types"
)

// Engine 执行完整的多跳套利路径：参数校验 → 地址推导 → 逐跳 swap →
// 利润校验。任何一跳失败即整体失败，账户表状态由 Invoker 保证回卷。
type Engine struct {
	programs derive.ProgramIDs
	fixed    derive.FixedAddresses
	invoker  runtime.Invoker
}

func NewEngine(cfg *config.RouterConfig, invoker runtime.Invoker) (*Engine, error) {
	programs, err := derive.LoadProgramIDs(cfg)
	if err != nil {
		return nil, err
	}
	fixed, err := derive.LoadFixedAddresses(cfg)
	if err != nil {
		return nil, err
	}
	return &Engine{programs: programs, fixed: fixed, invoker: invoker}, nil
}

// Request 是一次路径执行的完整输入。
type Request struct {
	User   types.Pubkey
	Params *core.ArbitrageParams
	Table  *runtime.AccountTable
}

// Outcome 是执行成功后的量化结果。
type Outcome struct {
	FinalAmount uint64
	Profit      uint64
	StepOutputs []uint64 // 每跳的真实产出
}

func (e *Engine) Execute(req *Request) (*Outcome, error) {
	// 1. 参数结构校验
	if err := req.Params.Validate(); err != nil {
		return nil, err
	}

	// 2. 初始化推导缓存并为整条路径预推导
	derived := derive.NewDerivedAccounts(e.programs, e.fixed, req.User)
	if err := derived.DeriveForPath(req.Table, req.Params.PathSteps); err != nil {
		return nil, err
	}

	// 3. 在账户表中定位入口账户
	payer, err := common.FindAccount(req.Table, req.User)
	if err != nil {
		return nil, fmt.Errorf("payer: %w", err)
	}
	if !payer.Signer {
		return nil, fmt.Errorf("%w: payer must be a signer", core.ErrInvalidAccount)
	}
	tokenProgram, err := common.FindAccount(req.Table, consts.TokenProgram)
	if err != nil {
		return nil, fmt.Errorf("token program: %w", err)
	}
	ataProgram, err := common.FindAccount(req.Table, consts.AssociatedTokenProgram)
	if err != nil {
		return nil, fmt.Errorf("associated token program: %w", err)
	}
	systemProgram, err := common.FindAccount(req.Table, consts.SystemProgram)
	if err != nil {
		return nil, fmt.Errorf("system program: %w", err)
	}

	// 4. 逐跳执行
	currentAmount := req.Params.InputAmount
	stepOutputs := make([]uint64, 0, len(req.Params.PathSteps))
	for i, step := range req.Params.PathSteps {
		logger.Infof("[Router] step %d: %s -> %s on %s",
			i, step.InputMint, step.OutputMint, step.Venue)

		mapping := req.Params.AccountMappings[i]
		if err := resolver.ValidateMapping(mapping, req.Table.Len()); err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}

		// 定位并校验本跳的用户输入/输出账户
		userInput, err := e.locateUserTokenAccount(req.Table, derived, req.User, step.InputMint)
		if err != nil {
			return nil, fmt.Errorf("step %d input: %w", i, err)
		}
		userOutput, err := e.locateUserTokenAccount(req.Table, derived, req.User, step.OutputMint)
		if err != nil {
			return nil, fmt.Errorf("step %d output: %w", i, err)
		}

		ctx := &common.SwapContext{
			Table:                  req.Table,
			Derived:                derived,
			Invoker:                e.invoker,
			Payer:                  payer,
			TokenProgram:           tokenProgram,
			AssociatedTokenProgram: ataProgram,
			SystemProgram:          systemProgram,
			UserInput:              userInput,
			UserOutput:             userOutput,
			AmountIn:               currentAmount,
			MinimumAmountOut:       step.MinimumAmountOut,
		}

		result, err := executeStep(ctx, mapping)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		if err := validateSwapResult(result, step.MinimumAmountOut); err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}

		// swap 后复核用户账户仍属于用户且 mint 未被偷换
		if err := validateUserTokenAccount(userInput, req.User, step.InputMint); err != nil {
			return nil, fmt.Errorf("step %d input after swap: %w", i, err)
		}
		if err := validateUserTokenAccount(userOutput, req.User, step.OutputMint); err != nil {
			return nil, fmt.Errorf("step %d output after swap: %w", i, err)
		}

		currentAmount = result.AmountOut
		stepOutputs = append(stepOutputs, currentAmount)
		logger.Infof("[Router] step %d completed, output=%d", i, currentAmount)
	}

	// 5. 利润校验：final >= input + min_profit（防 u64 溢出写法）
	input := req.Params.InputAmount
	if currentAmount < input || currentAmount-input < req.Params.MinProfitLamports {
		logger.Errorf("[Router] unprofitable: input=%d final=%d min_profit=%d",
			input, currentAmount, req.Params.MinProfitLamports)
		return nil, fmt.Errorf("%w: input=%d final=%d min_profit=%d",
			core.ErrInsufficientProfit, input, currentAmount, req.Params.MinProfitLamports)
	}

	profit := currentAmount - input
	logger.Infof("[Router] path completed, profit=%d", profit)
	return &Outcome{FinalAmount: currentAmount, Profit: profit, StepOutputs: stepOutputs}, nil
}

// locateUserTokenAccount 通过推导缓存得到用户 ATA 地址并在表中定位、校验。
func (e *Engine) locateUserTokenAccount(table *runtime.AccountTable, derived *derive.DerivedAccounts, user, mint types.Pubkey) (*runtime.Account, error) {
	key, err := derived.DeriveUserTokenAccount(table, mint)
	if err != nil {
		return nil, err
	}
	acc, err := common.FindAccount(table, key)
	if err != nil {
		return nil, err
	}
	if err := validateUserTokenAccount(acc, user, mint); err != nil {
		return nil, err
	}
	return acc, nil
}

// validateUserTokenAccount 校验账户确为用户在 mint 下的代币账户：
// 数据内 owner 字段等于用户、mint 字段匹配、且持有程序为 Token/Token-2022。
func validateUserTokenAccount(acc *runtime.Account, user, mint types.Pubkey) error {
	if acc.Owner != consts.TokenProgram && acc.Owner != consts.TokenProgram2022 {
		return fmt.Errorf("%w: not owned by a token program", core.ErrInvalidAccount)
	}
	accMint, ok := runtime.TokenAccountMint(acc)
	if !ok || accMint != mint {
		return fmt.Errorf("%w: mint mismatch", core.ErrInvalidAccount)
	}
	accOwner, _ := runtime.TokenAccountOwner(acc)
	if accOwner != user {
		return fmt.Errorf("%w: not owned by user", core.ErrInvalidAccount)
	}
	return nil
}
