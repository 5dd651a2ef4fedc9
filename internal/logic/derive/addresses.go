package derive

import (
	"fmt"

	"arb-router-sol/internal/config"
	"arb-router-sol/internal/consts"
	"arb-router-sol/internal/logic/core"
	"arb-router-sol/internal/types"
)

// ProgramIDs 是四个外部 venue 程序 ID 的运行时集合。
type ProgramIDs struct {
	RaydiumCPMM types.Pubkey
	RaydiumCLMM types.Pubkey
	PumpFun     types.Pubkey
	PumpSwap    types.Pubkey
}

// FixedAddresses 是协议固定地址的运行时集合：PDA 推导失败时的回退值，
// 以及无法从种子推导、只能由协议方发布的地址。
type FixedAddresses struct {
	RaydiumCPMMAuthority types.Pubkey

	PumpFunGlobal         types.Pubkey
	PumpFunFeeRecipient   types.Pubkey
	PumpFunEventAuthority types.Pubkey

	PumpSwapGlobalConfig    types.Pubkey
	PumpSwapFeeRecipient    types.Pubkey
	PumpSwapFeeRecipientATA types.Pubkey
	PumpSwapEventAuthority  types.Pubkey

	WSOLMint types.Pubkey
}

// resolveOverride 解析配置覆盖值；为空返回默认值，非法 base58 报错。
func resolveOverride(name, override string, def types.Pubkey) (types.Pubkey, error) {
	if override == "" {
		return def, nil
	}
	pk, err := types.TryPubkeyFromBase58(override)
	if err != nil {
		return types.Pubkey{}, fmt.Errorf("%w: %s override: %w (%v)",
			core.ErrAddressResolution, name, core.ErrInvalidPublicKey, err)
	}
	return pk, nil
}

// LoadProgramIDs 按网络默认值加载 venue 程序 ID，并应用配置覆盖。
func LoadProgramIDs(cfg *config.RouterConfig) (ProgramIDs, error) {
	cpmmDefault := consts.RaydiumCPMMProgram
	if cfg.IsDevnet() {
		cpmmDefault = types.PubkeyFromBase58(consts.RaydiumCPMMProgramDevnetStr)
	}

	var ids ProgramIDs
	var err error
	if ids.RaydiumCPMM, err = resolveOverride("raydium_cpmm", cfg.Programs.RaydiumCPMM, cpmmDefault); err != nil {
		return ProgramIDs{}, err
	}
	if ids.RaydiumCLMM, err = resolveOverride("raydium_clmm", cfg.Programs.RaydiumCLMM, consts.RaydiumCLMMProgram); err != nil {
		return ProgramIDs{}, err
	}
	if ids.PumpFun, err = resolveOverride("pumpfun", cfg.Programs.PumpFun, consts.PumpFunProgram); err != nil {
		return ProgramIDs{}, err
	}
	if ids.PumpSwap, err = resolveOverride("pumpswap", cfg.Programs.PumpSwap, consts.PumpSwapProgram); err != nil {
		return ProgramIDs{}, err
	}
	return ids, nil
}

// LoadFixedAddresses 加载固定地址默认值并应用配置覆盖。
func LoadFixedAddresses(cfg *config.RouterConfig) (FixedAddresses, error) {
	authorityDefault := types.PubkeyFromBase58(consts.RaydiumCPMMAuthorityStr)
	if cfg.IsDevnet() {
		authorityDefault = types.PubkeyFromBase58(consts.RaydiumCPMMAuthorityDevnetStr)
	}

	var fixed FixedAddresses
	var err error
	ov := &cfg.Addresses

	if fixed.RaydiumCPMMAuthority, err = resolveOverride("raydium_cpmm_authority", ov.RaydiumCPMMAuthority, authorityDefault); err != nil {
		return FixedAddresses{}, err
	}
	if fixed.PumpFunGlobal, err = resolveOverride("pumpfun_global", ov.PumpFunGlobal, types.PubkeyFromBase58(consts.PumpFunGlobalStr)); err != nil {
		return FixedAddresses{}, err
	}
	if fixed.PumpFunFeeRecipient, err = resolveOverride("pumpfun_fee_recipient", ov.PumpFunFeeRecipient, types.PubkeyFromBase58(consts.PumpFunFeeRecipientStr)); err != nil {
		return FixedAddresses{}, err
	}
	if fixed.PumpFunEventAuthority, err = resolveOverride("pumpfun_event_authority", ov.PumpFunEventAuthority, types.PubkeyFromBase58(consts.PumpFunEventAuthorityStr)); err != nil {
		return FixedAddresses{}, err
	}
	if fixed.PumpSwapGlobalConfig, err = resolveOverride("pumpswap_global_config", ov.PumpSwapGlobalConfig, types.PubkeyFromBase58(consts.PumpSwapGlobalConfigStr)); err != nil {
		return FixedAddresses{}, err
	}
	if fixed.PumpSwapFeeRecipient, err = resolveOverride("pumpswap_fee_recipient", ov.PumpSwapFeeRecipient, types.PubkeyFromBase58(consts.PumpSwapFeeRecipientStr)); err != nil {
		return FixedAddresses{}, err
	}
	if fixed.PumpSwapFeeRecipientATA, err = resolveOverride("pumpswap_fee_recipient_ata", ov.PumpSwapFeeRecipientATA, types.PubkeyFromBase58(consts.PumpSwapFeeRecipientATAStr)); err != nil {
		return FixedAddresses{}, err
	}
	if fixed.PumpSwapEventAuthority, err = resolveOverride("pumpswap_event_authority", ov.PumpSwapEventAuthority, types.PubkeyFromBase58(consts.PumpSwapEventAuthorityStr)); err != nil {
		return FixedAddresses{}, err
	}
	if fixed.WSOLMint, err = resolveOverride("wrapped_sol_mint", ov.WrappedSolMint, consts.WSOLMint); err != nil {
		return FixedAddresses{}, err
	}
	return fixed, nil
}
