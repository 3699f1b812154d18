package tests

import (
	"testing"

	"github.com/depinfinity/depin-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

const tokenPath = "../token"

func newTokenInvoker(t *testing.T) *neotest.ContractInvoker {
	e := newExecutor(t)
	_, hToken := deployDevicenetContracts(t, e)
	return e.CommitteeInvoker(hToken)
}

func TestToken_Info(t *testing.T) {
	c := newTokenInvoker(t)

	c.Invoke(t, "DEPIN", "symbol")
	c.Invoke(t, 12, "decimals")
	c.Invoke(t, 0, "totalSupply")
	c.Invoke(t, common.Version, "version")
}

func TestToken_MintBurn(t *testing.T) {
	c := newTokenInvoker(t)

	acc := c.NewAccount(t)

	t.Run("missing committee witness", func(t *testing.T) {
		cAcc := c.WithSigners(acc)
		cAcc.InvokeFail(t, common.ErrCommitteeWitnessFailed, "mint", acc.ScriptHash(), int64(100), []byte{})
		cAcc.InvokeFail(t, common.ErrCommitteeWitnessFailed, "burn", acc.ScriptHash(), int64(100), []byte{})
	})

	c.Invoke(t, stackitem.Null{}, "mint", acc.ScriptHash(), int64(1000), []byte{1, 2, 3})
	c.Invoke(t, 1000, "balanceOf", acc.ScriptHash())
	c.Invoke(t, 1000, "totalSupply")

	c.Invoke(t, stackitem.Null{}, "burn", acc.ScriptHash(), int64(400), []byte{})
	c.Invoke(t, 600, "balanceOf", acc.ScriptHash())
	c.Invoke(t, 600, "totalSupply")

	t.Run("burn more than the balance", func(t *testing.T) {
		c.InvokeFail(t, "can't transfer assets", "burn", acc.ScriptHash(), int64(601), []byte{})
	})
}

func TestToken_Transfer(t *testing.T) {
	c := newTokenInvoker(t)

	from := c.NewAccount(t)
	to := c.NewAccount(t)

	c.Invoke(t, stackitem.Null{}, "mint", from.ScriptHash(), int64(1000), []byte{})

	cFrom := c.WithSigners(from)
	cFrom.Invoke(t, true, "transfer", from.ScriptHash(), to.ScriptHash(), int64(300), nil)
	c.Invoke(t, 700, "balanceOf", from.ScriptHash())
	c.Invoke(t, 300, "balanceOf", to.ScriptHash())

	t.Run("missing sender witness", func(t *testing.T) {
		c.WithSigners(to).Invoke(t, false, "transfer",
			from.ScriptHash(), to.ScriptHash(), int64(100), nil)
	})

	t.Run("insufficient funds", func(t *testing.T) {
		cFrom.Invoke(t, false, "transfer",
			from.ScriptHash(), to.ScriptHash(), int64(701), nil)
	})

	t.Run("negative amount", func(t *testing.T) {
		cFrom.Invoke(t, false, "transfer",
			from.ScriptHash(), to.ScriptHash(), int64(-1), nil)
	})
}

func TestToken_TransferX(t *testing.T) {
	c := newTokenInvoker(t)

	from := c.NewAccount(t)
	to := c.NewAccount(t)

	c.Invoke(t, stackitem.Null{}, "mint", from.ScriptHash(), int64(1000), []byte{})

	// committee may move funds between arbitrary accounts
	c.Invoke(t, true, "transferX", from.ScriptHash(), to.ScriptHash(), int64(250), []byte{})
	c.Invoke(t, 750, "balanceOf", from.ScriptHash())
	c.Invoke(t, 250, "balanceOf", to.ScriptHash())

	t.Run("uncovered amount", func(t *testing.T) {
		c.Invoke(t, false, "transferX", from.ScriptHash(), to.ScriptHash(), int64(751), []byte{})
	})

	t.Run("arbitrary caller", func(t *testing.T) {
		c.WithSigners(from).InvokeFail(t, common.ErrCommitteeWitnessFailed, "transferX",
			from.ScriptHash(), to.ScriptHash(), int64(1), []byte{})
	})
}
