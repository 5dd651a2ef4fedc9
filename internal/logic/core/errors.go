package core

import "errors"

// 执行核心的哨兵错误。调用方通过 errors.Is 区分失败类别，
// 包装时用 %w 保留链路。
var (
	// 入口参数校验
	ErrPathTooShort         = errors.New("path must contain at least one step")
	ErrPathTooLong          = errors.New("path exceeds maximum step count")
	ErrInvalidAmount        = errors.New("input amount must be greater than zero")
	ErrInvalidSlippage      = errors.New("slippage exceeds 10000 bps")
	ErrMappingCountMismatch = errors.New("account mapping count does not match path step count")

	// 账户映射与账户表
	ErrInvalidAccountCount = errors.New("invalid account count for venue")
	ErrInvalidAccountIndex = errors.New("invalid account index")
	ErrAccountNotFound     = errors.New("required account not found in table")

	// 地址推导
	ErrAddressResolution = errors.New("address resolution failed")
	ErrInvalidPublicKey  = errors.New("invalid public key")

	// 账户内容校验
	ErrInvalidAccount   = errors.New("account failed validation")
	ErrInvalidTokenMint = errors.New("token mint mismatch")

	// 执行结果
	ErrInsufficientOutputAmount = errors.New("output amount below minimum")
	ErrInsufficientProfit       = errors.New("final amount below required profit threshold")
)
