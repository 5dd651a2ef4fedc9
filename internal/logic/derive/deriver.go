package derive

import (
	"fmt"
	"sort"

	"arb-router-sol/internal/consts"
	"arb-router-sol/internal/logic/core"
	"arb-router-sol/internal/pkg/logger"
	"arb-router-sol/internal/runtime"
	"arb-router-sol/internal/types"
)

// DerivedAccounts 是单次调用内的地址推导缓存。
// 所有缓存只在一次执行的生命周期内有效，不跨调用复用——
// 账户表每次调用都可能不同，mint 的 token program 判定也随表变化。
type DerivedAccounts struct {
	programs ProgramIDs
	fixed    FixedAddresses
	user     types.Pubkey

	// 缓存，key 统一为 "<kind>_<base58>" 形式，命中即返回不再推导
	userTokenAccounts map[string]types.Pubkey
	tokenPrograms     map[string]types.Pubkey
	pumpfun           map[string]types.Pubkey
	pumpswap          map[string]types.Pubkey
}

func NewDerivedAccounts(programs ProgramIDs, fixed FixedAddresses, user types.Pubkey) *DerivedAccounts {
	return &DerivedAccounts{
		programs:          programs,
		fixed:             fixed,
		user:              user,
		userTokenAccounts: make(map[string]types.Pubkey),
		tokenPrograms:     make(map[string]types.Pubkey),
		pumpfun:           make(map[string]types.Pubkey),
		pumpswap:          make(map[string]types.Pubkey),
	}
}

func (d *DerivedAccounts) User() types.Pubkey    { return d.user }
func (d *DerivedAccounts) Programs() ProgramIDs  { return d.programs }
func (d *DerivedAccounts) Fixed() FixedAddresses { return d.fixed }

// DetectTokenProgram 判定 mint 所属的代币标准：
// 在账户表中找到 mint 账户后看其持有程序（Token / Token-2022）；
// 找不到时默认 legacy Token 并记 warn。结果按 mint 缓存。
func (d *DerivedAccounts) DetectTokenProgram(table *runtime.AccountTable, mint types.Pubkey) types.Pubkey {
	key := mint.String()
	if prog, ok := d.tokenPrograms[key]; ok {
		return prog
	}

	prog := consts.TokenProgram
	if acc := table.FindByKey(mint); acc != nil {
		if acc.Owner == consts.TokenProgram2022 {
			prog = consts.TokenProgram2022
		}
	} else {
		logger.Warnf("[Derive] mint %s not in account table, assuming legacy token program", key)
	}
	d.tokenPrograms[key] = prog
	return prog
}

// DeriveUserTokenAccount 推导用户在 mint 下的关联代币账户，按 mint 缓存。
func (d *DerivedAccounts) DeriveUserTokenAccount(table *runtime.AccountTable, mint types.Pubkey) (types.Pubkey, error) {
	key := "user_ata_" + mint.String()
	if ata, ok := d.userTokenAccounts[key]; ok {
		return ata, nil
	}

	prog := d.DetectTokenProgram(table, mint)
	ata, err := AssociatedTokenAddress(d.user, prog, mint)
	if err != nil {
		return types.Pubkey{}, err
	}
	d.userTokenAccounts[key] = ata
	return ata, nil
}

// UserTokenAccount 返回已推导的用户代币账户（仅查缓存）。
func (d *DerivedAccounts) UserTokenAccount(mint types.Pubkey) (types.Pubkey, bool) {
	ata, ok := d.userTokenAccounts["user_ata_"+mint.String()]
	return ata, ok
}

// ---- PumpFun PDA（带缓存）----

func (d *DerivedAccounts) PumpFunBondingCurve(mint types.Pubkey) (types.Pubkey, error) {
	key := "bonding_curve_" + mint.String()
	if pda, ok := d.pumpfun[key]; ok {
		return pda, nil
	}
	pda, err := PumpFunBondingCurvePDA(d.programs.PumpFun, mint)
	if err != nil {
		return types.Pubkey{}, err
	}
	d.pumpfun[key] = pda
	return pda, nil
}

// PumpFunCreatorVault 按实际程序 ID 派生（程序 ID 在 swap 阶段才从
// bonding curve 的持有程序确定，作为缓存 key 的一部分）。
func (d *DerivedAccounts) PumpFunCreatorVault(program, creator types.Pubkey) (types.Pubkey, error) {
	key := "creator_vault_" + program.String() + "_" + creator.String()
	if pda, ok := d.pumpfun[key]; ok {
		return pda, nil
	}
	pda, err := PumpFunCreatorVaultPDA(program, creator)
	if err != nil {
		return types.Pubkey{}, err
	}
	d.pumpfun[key] = pda
	return pda, nil
}

// PumpFunGlobal 优先推导 global PDA，失败时回退固定地址。
func (d *DerivedAccounts) PumpFunGlobal() types.Pubkey {
	if pda, ok := d.pumpfun["global"]; ok {
		return pda
	}
	pda, err := PumpFunGlobalPDA(d.programs.PumpFun)
	if err != nil {
		pda = d.fixed.PumpFunGlobal
	}
	d.pumpfun["global"] = pda
	return pda
}

func (d *DerivedAccounts) PumpFunEventAuthority() types.Pubkey {
	if pda, ok := d.pumpfun["event_authority"]; ok {
		return pda
	}
	pda, err := PumpFunEventAuthorityPDA(d.programs.PumpFun)
	if err != nil {
		pda = d.fixed.PumpFunEventAuthority
	}
	d.pumpfun["event_authority"] = pda
	return pda
}

func (d *DerivedAccounts) GlobalVolumeAccumulator(program types.Pubkey) (types.Pubkey, error) {
	key := "global_volume_accumulator_" + program.String()
	if pda, ok := d.pumpfun[key]; ok {
		return pda, nil
	}
	pda, err := GlobalVolumeAccumulatorPDA(program)
	if err != nil {
		return types.Pubkey{}, err
	}
	d.pumpfun[key] = pda
	return pda, nil
}

func (d *DerivedAccounts) UserVolumeAccumulator(program types.Pubkey) (types.Pubkey, error) {
	key := "user_volume_accumulator_" + program.String()
	if pda, ok := d.pumpfun[key]; ok {
		return pda, nil
	}
	pda, err := UserVolumeAccumulatorPDA(program, d.user)
	if err != nil {
		return types.Pubkey{}, err
	}
	d.pumpfun[key] = pda
	return pda, nil
}

// ---- PumpSwap PDA（带缓存；程序 ID 在运行时才从账户表定位，作为 key 的一部分）----

// PumpSwapGlobalConfig 从 amm 程序推导 global_config PDA，失败回退固定地址。
func (d *DerivedAccounts) PumpSwapGlobalConfig(ammProgram types.Pubkey) types.Pubkey {
	key := "global_config_" + ammProgram.String()
	if pda, ok := d.pumpswap[key]; ok {
		return pda
	}
	pda, err := PumpSwapGlobalConfigPDA(ammProgram)
	if err != nil {
		pda = d.fixed.PumpSwapGlobalConfig
	}
	d.pumpswap[key] = pda
	return pda
}

// PumpSwapEventAuthority 从 amm 程序推导 event authority PDA，失败回退固定地址。
func (d *DerivedAccounts) PumpSwapEventAuthority(ammProgram types.Pubkey) types.Pubkey {
	key := "event_authority_" + ammProgram.String()
	if pda, ok := d.pumpswap[key]; ok {
		return pda
	}
	pda, err := PumpSwapEventAuthorityPDA(ammProgram)
	if err != nil {
		pda = d.fixed.PumpSwapEventAuthority
	}
	d.pumpswap[key] = pda
	return pda
}

func (d *DerivedAccounts) PumpSwapCreatorVault(ammProgram, creator types.Pubkey) (types.Pubkey, error) {
	key := "creator_vault_" + ammProgram.String() + "_" + creator.String()
	if pda, ok := d.pumpswap[key]; ok {
		return pda, nil
	}
	pda, err := PumpSwapCreatorVaultPDA(ammProgram, creator)
	if err != nil {
		return types.Pubkey{}, err
	}
	d.pumpswap[key] = pda
	return pda, nil
}

// DeriveForPath 在执行前为整条路径预推导用户代币账户与静态 PDA，
// 把推导失败提前到第一笔 swap 之前暴露。
func (d *DerivedAccounts) DeriveForPath(table *runtime.AccountTable, steps []core.PathStep) error {
	for i, step := range steps {
		if _, err := d.DeriveUserTokenAccount(table, step.InputMint); err != nil {
			return fmt.Errorf("step %d input mint: %w", i, err)
		}
		if _, err := d.DeriveUserTokenAccount(table, step.OutputMint); err != nil {
			return fmt.Errorf("step %d output mint: %w", i, err)
		}

		switch step.Venue {
		case core.VenuePumpFun:
			// bonding curve 只依赖 mint（token 一侧，非 WSOL 侧）
			mint := step.OutputMint
			if step.OutputMint == d.fixed.WSOLMint {
				mint = step.InputMint
			}
			if _, err := d.PumpFunBondingCurve(mint); err != nil {
				return fmt.Errorf("step %d: %w", i, err)
			}
			d.PumpFunGlobal()
			d.PumpFunEventAuthority()
			// 买入方向（输入为 WSOL）额外预推导两个 volume accumulator
			if step.InputMint == d.fixed.WSOLMint {
				if _, err := d.GlobalVolumeAccumulator(d.programs.PumpFun); err != nil {
					return fmt.Errorf("step %d: %w", i, err)
				}
				if _, err := d.UserVolumeAccumulator(d.programs.PumpFun); err != nil {
					return fmt.Errorf("step %d: %w", i, err)
				}
			}
		case core.VenuePumpSwap:
			d.PumpSwapGlobalConfig(d.programs.PumpSwap)
			d.PumpSwapEventAuthority(d.programs.PumpSwap)
		}
	}
	return nil
}

// Entry 是一条已推导地址，供 planner 输出。
type Entry struct {
	Name    string
	Address types.Pubkey
}

// Entries 导出全部缓存内容，按名称排序。
func (d *DerivedAccounts) Entries() []Entry {
	var out []Entry
	for k, v := range d.userTokenAccounts {
		out = append(out, Entry{Name: k, Address: v})
	}
	for k, v := range d.tokenPrograms {
		out = append(out, Entry{Name: "token_program_" + k, Address: v})
	}
	for k, v := range d.pumpfun {
		out = append(out, Entry{Name: "pumpfun_" + k, Address: v})
	}
	for k, v := range d.pumpswap {
		out = append(out, Entry{Name: "pumpswap_" + k, Address: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
