package runtime

import (
	"arb-router-sol/internal/types"
)

// AccountMeta 描述指令引用的一个账户及其权限位。
type AccountMeta struct {
	Pubkey     types.Pubkey
	IsSigner   bool
	IsWritable bool
}

// Instruction 是构造完成、待派发给 venue 程序的一条指令。
type Instruction struct {
	ProgramID types.Pubkey
	Accounts  []AccountMeta
	Data      []byte
}

// Invoker 执行一条指令（对应嵌套调用语义）：同步、全有或全无。
// 返回 nil 表示被调程序成功并已提交其账户写入；
// 返回 error 表示整条指令失败，账户状态不变。
type Invoker interface {
	Invoke(ix *Instruction, table *AccountTable) error
}
