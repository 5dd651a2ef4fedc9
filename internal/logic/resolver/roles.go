package resolver

import (
	"fmt"

	"arb-router-sol/internal/logic/core"
)

// 各 venue 映射下标对应的账户角色名，仅用于诊断日志。
var venueRoles = map[core.VenueType][]string{
	core.VenueRaydiumCPMM: {
		"amm_config", "pool_state", "token0_vault", "token1_vault",
		"input_mint", "output_mint", "observation_state",
	},
	core.VenueRaydiumCLMM: {
		"clmm_program", "amm_config", "pool_state", "input_vault", "output_vault",
		"observation_state", "token_program", "token_program_2022", "memo_program",
		"input_vault_mint", "output_vault_mint",
	},
	core.VenuePumpFun: {
		"bonding_curve", "mint", "creator", "fee_recipient",
	},
	core.VenuePumpSwap: {
		"pool_state", "base_mint", "quote_mint", "coin_creator",
		"fee_recipient", "fee_recipient_ata",
	},
}

// RoleName 返回 venue 映射第 i 位的角色名，超界时返回 "account_<i>"。
func RoleName(venue core.VenueType, i int) string {
	roles := venueRoles[venue]
	if i >= 0 && i < len(roles) {
		return roles[i]
	}
	return fmt.Sprintf("account_%d", i)
}
