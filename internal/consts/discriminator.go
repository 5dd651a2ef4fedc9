package consts

// 指令 discriminator（8 字节 opcode 前缀），构造 CPI data 时置于参数之前。
// 取自各 venue 发布的 IDL，属于链上 ABI，必须逐字节一致。
var (
	// Raydium CPMM
	DiscRaydiumCPMMSwapBaseIn = []byte{143, 190, 90, 218, 196, 30, 51, 222}

	// Raydium CLMM
	DiscRaydiumCLMMSwapV2 = []byte{43, 4, 237, 11, 26, 201, 30, 98}

	// PumpFun
	DiscPumpFunBuy  = []byte{102, 6, 61, 18, 1, 218, 235, 234}
	DiscPumpFunSell = []byte{51, 230, 133, 164, 1, 127, 131, 173}

	// PumpSwap（与 PumpFun 同值，但属于不同程序的 ABI，独立声明）
	DiscPumpSwapBuy  = []byte{102, 6, 61, 18, 1, 218, 235, 234}
	DiscPumpSwapSell = []byte{51, 230, 133, 164, 1, 127, 131, 173}
)
