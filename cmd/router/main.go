package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
	"gopkg.in/yaml.v3"

	"arb-router-sol/internal/config"
	"arb-router-sol/internal/logic/core"
	"arb-router-sol/internal/logic/derive"
	"arb-router-sol/internal/pkg/logger"
	"arb-router-sol/internal/runtime"
	"arb-router-sol/internal/types"
)

var (
	configFile   = flag.String("f", "etc/router.yaml", "配置文件路径")
	scenarioFile = flag.String("s", "etc/scenario.yaml", "路径场景文件")
)

// scenario 描述一条待规划的套利路径（离线推导工具的输入）。
type scenario struct {
	User  string `yaml:"user"`
	Steps []struct {
		Venue      string `yaml:"venue"`
		InputMint  string `yaml:"input_mint"`
		OutputMint string `yaml:"output_mint"`
		Pool       string `yaml:"pool"`
	} `yaml:"steps"`
}

func parseVenue(s string) (core.VenueType, error) {
	switch s {
	case "raydium_cpmm":
		return core.VenueRaydiumCPMM, nil
	case "raydium_clmm":
		return core.VenueRaydiumCLMM, nil
	case "pumpfun":
		return core.VenuePumpFun, nil
	case "pumpswap":
		return core.VenuePumpSwap, nil
	default:
		return 0, fmt.Errorf("unknown venue %q", s)
	}
}

// planner：读取场景文件，为路径预推导全部地址并打印，
// 供链下引擎组装账户表时对照。
func main() {
	flag.Parse()

	var c config.RouterConfig
	conf.MustLoad(*configFile, &c)

	if err := logger.Init(c.LogConf.ToLogOption()); err != nil {
		logx.Errorf("初始化 logger 失败: %v", err)
		os.Exit(1)
	}
	defer logger.Sync()

	raw, err := os.ReadFile(*scenarioFile)
	if err != nil {
		logx.Errorf("读取场景文件失败: %v", err)
		os.Exit(1)
	}
	var sc scenario
	if err := yaml.Unmarshal(raw, &sc); err != nil {
		logx.Errorf("解析场景文件失败: %v", err)
		os.Exit(1)
	}

	user, err := types.TryPubkeyFromBase58(sc.User)
	if err != nil {
		logx.Errorf("非法用户地址: %v", err)
		os.Exit(1)
	}

	steps := make([]core.PathStep, 0, len(sc.Steps))
	for i, s := range sc.Steps {
		venue, verr := parseVenue(s.Venue)
		if verr != nil {
			logx.Errorf("step %d: %v", i, verr)
			os.Exit(1)
		}
		inMint, verr := types.TryPubkeyFromBase58(s.InputMint)
		if verr != nil {
			logx.Errorf("step %d input_mint: %v", i, verr)
			os.Exit(1)
		}
		outMint, verr := types.TryPubkeyFromBase58(s.OutputMint)
		if verr != nil {
			logx.Errorf("step %d output_mint: %v", i, verr)
			os.Exit(1)
		}
		step := core.PathStep{Venue: venue, InputMint: inMint, OutputMint: outMint}
		if s.Pool != "" {
			pool, perr := types.TryPubkeyFromBase58(s.Pool)
			if perr != nil {
				logx.Errorf("step %d pool: %v", i, perr)
				os.Exit(1)
			}
			step.PoolID = &pool
		}
		steps = append(steps, step)
	}

	programs, err := derive.LoadProgramIDs(&c)
	if err != nil {
		logx.Errorf("加载程序 ID 失败: %v", err)
		os.Exit(1)
	}
	fixed, err := derive.LoadFixedAddresses(&c)
	if err != nil {
		logx.Errorf("加载固定地址失败: %v", err)
		os.Exit(1)
	}

	// 离线推导：账户表为空，token program 判定回退 legacy
	derived := derive.NewDerivedAccounts(programs, fixed, user)
	if err := derived.DeriveForPath(runtime.NewAccountTable(nil), steps); err != nil {
		logx.Errorf("推导失败: %v", err)
		os.Exit(1)
	}

	for _, e := range derived.Entries() {
		fmt.Printf("%-64s %s\n", e.Name, e.Address)
	}
}
