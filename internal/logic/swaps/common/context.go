package common

import (
	"arb-router-sol/internal/logic/derive"
	"arb-router-sol/internal/runtime"
)

// SwapContext 是一跳 swap 执行所需的共享环境，由 router 组装后传给各 venue 适配器。
type SwapContext struct {
	Table   *runtime.AccountTable
	Derived *derive.DerivedAccounts
	Invoker runtime.Invoker

	// 入口账户（由 router 在账户表中定位）
	Payer                  *runtime.Account // 交易发起人，必须带签名位
	TokenProgram           *runtime.Account // legacy SPL Token 程序账户
	AssociatedTokenProgram *runtime.Account
	SystemProgram          *runtime.Account

	// 本跳的用户输入/输出代币账户
	UserInput  *runtime.Account
	UserOutput *runtime.Account

	AmountIn         uint64
	MinimumAmountOut uint64
}
