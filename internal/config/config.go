package config

import (
	"arb-router-sol/internal/pkg/logger"
)

type LogConfig struct {
	Format   string `yaml:"format"`   // 日志格式，支持 "console" 或 "json"
	LogDir   string `yaml:"log_dir"`  // 日志目录（可为相对路径或绝对路径；为空则输出到 stdout）
	Level    string `yaml:"level"`    // 日志级别：debug / info / warn / error
	Compress bool   `yaml:"compress"` // 是否压缩旧日志文件
}

func (c *LogConfig) ToLogOption() logger.LogOption {
	return logger.LogOption{
		Format:   c.Format,
		LogDir:   c.LogDir,
		Level:    c.Level,
		Compress: c.Compress,
	}
}

// ProgramOverrides 表示外部 venue 程序 ID 的配置覆盖（base58）。
// 为空则回退到对应网络的编译期默认值。
type ProgramOverrides struct {
	RaydiumCPMM string `yaml:"raydium_cpmm"`
	RaydiumCLMM string `yaml:"raydium_clmm"`
	PumpFun     string `yaml:"pumpfun"`
	PumpSwap    string `yaml:"pumpswap"`
}

// AddressOverrides 表示协议固定地址的配置覆盖（base58），
// 用于将执行核心重定向到测试网部署。
type AddressOverrides struct {
	RaydiumCPMMAuthority  string `yaml:"raydium_cpmm_authority"`
	PumpFunGlobal         string `yaml:"pumpfun_global"`
	PumpFunFeeRecipient   string `yaml:"pumpfun_fee_recipient"`
	PumpFunEventAuthority string `yaml:"pumpfun_event_authority"`

	PumpSwapGlobalConfig    string `yaml:"pumpswap_global_config"`
	PumpSwapFeeRecipient    string `yaml:"pumpswap_fee_recipient"`
	PumpSwapFeeRecipientATA string `yaml:"pumpswap_fee_recipient_ata"`
	PumpSwapEventAuthority  string `yaml:"pumpswap_event_authority"`

	WrappedSolMint string `yaml:"wrapped_sol_mint"`
}

// RouterConfig 是主配置结构体，驱动路径执行核心与 planner 工具。
type RouterConfig struct {
	LogConf LogConfig `yaml:"logger"` // 日志配置

	// 网络类型："mainnet"（默认）或 "devnet"，决定固定地址的默认取值
	Network string `yaml:"network"`

	Programs  ProgramOverrides `yaml:"programs"`  // venue 程序 ID 覆盖
	Addresses AddressOverrides `yaml:"addresses"` // 固定地址覆盖
}

// IsDevnet 返回当前配置是否指向 devnet。
func (c *RouterConfig) IsDevnet() bool {
	return c.Network == "devnet"
}
