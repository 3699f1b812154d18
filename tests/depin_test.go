package tests

import (
	"path"
	"strings"
	"testing"

	"github.com/depinfinity/depin-contract/common"
	"github.com/depinfinity/depin-contract/depin"
	istorage "github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

const depinPath = "../depin"

const rewardPoolSupply = 1_000_000_000

func deployDevicenetContracts(t *testing.T, e *neotest.Executor) (util.Uint160, util.Uint160) {
	ctrToken := neotest.CompileFile(t, e.CommitteeHash, tokenPath,
		path.Join(tokenPath, "config.yml"))
	ctrDepin := neotest.CompileFile(t, e.CommitteeHash, depinPath,
		path.Join(depinPath, "config.yml"))

	e.DeployContract(t, ctrToken, []interface{}{ctrDepin.Hash})
	e.DeployContract(t, ctrDepin, []interface{}{ctrToken.Hash})

	return ctrDepin.Hash, ctrToken.Hash
}

func newDevicenetInvokers(t *testing.T) (*neotest.ContractInvoker, *neotest.ContractInvoker) {
	e := newExecutor(t)
	hDepin, hToken := deployDevicenetContracts(t, e)
	return e.CommitteeInvoker(hDepin), e.CommitteeInvoker(hToken)
}

func initializeNetwork(t *testing.T, c *neotest.ContractInvoker) {
	c.Invoke(t, stackitem.Null{}, "initialize", c.CommitteeHash)
}

func registerDevice(t *testing.T, c *neotest.ContractInvoker, owner neotest.Signer, deviceID string) *neotest.ContractInvoker {
	cOwner := c.WithSigners(owner)
	cOwner.Invoke(t, stackitem.Null{}, "registerDevice",
		owner.ScriptHash(), deviceID, int64(depin.DeviceTypeRouter),
		int64(48_856_600), int64(2_352_200), int64(500))
	return cOwner
}

func submitArgs(owner neotest.Signer, deviceID string, availability int64) []interface{} {
	return []interface{}{
		owner.ScriptHash(), deviceID,
		int64(-65), int64(30), int64(2_000_000), availability,
		int64(48_856_700), int64(2_352_300), int64(450),
	}
}

func TestDevicenet_Version(t *testing.T) {
	c, _ := newDevicenetInvokers(t)
	c.Invoke(t, common.Version, "version")
}

func TestDevicenet_Initialize(t *testing.T) {
	c, _ := newDevicenetInvokers(t)

	t.Run("not initialized", func(t *testing.T) {
		c.InvokeFail(t, depin.ErrNotInitialized, "isActive")
		c.InvokeFail(t, depin.ErrNotInitialized, "totalDevices")
	})

	t.Run("missing authority witness", func(t *testing.T) {
		stranger := c.NewAccount(t)
		c.InvokeFail(t, common.ErrAuthorityWitnessFailed, "initialize", stranger.ScriptHash())
	})

	initializeNetwork(t, c)

	c.Invoke(t, true, "isActive")
	c.Invoke(t, 0, "totalDevices")
	c.Invoke(t, 0, "totalRewardsDistributed")
	c.Invoke(t, c.CommitteeHash.BytesBE(), "authority")

	t.Run("double initialization", func(t *testing.T) {
		c.InvokeFail(t, depin.ErrAlreadyInitialized, "initialize", c.CommitteeHash)
	})
}

func TestDevicenet_RegisterDevice(t *testing.T) {
	c, _ := newDevicenetInvokers(t)
	initializeNetwork(t, c)

	owner := c.NewAccount(t)
	cOwner := registerDevice(t, c, owner, "dev-1")
	regTS := int64(c.TopBlock(t).Timestamp)

	c.Invoke(t, 1, "totalDevices")

	s, err := c.TestInvoke(t, "getDevice", owner.ScriptHash(), "dev-1")
	require.NoError(t, err)
	fields := s.Pop().Array()
	require.Equal(t, 8, len(fields))
	requireBytesEqual(t, owner.ScriptHash().BytesBE(), fields[0])
	requireBytesEqual(t, []byte("dev-1"), fields[1])
	require.Equal(t, int64(depin.DeviceTypeRouter), toInt64(t, fields[2]))
	loc := fields[3].Value().([]stackitem.Item)
	require.Equal(t, int64(48_856_600), toInt64(t, loc[0]))
	require.Equal(t, int64(2_352_200), toInt64(t, loc[1]))
	require.Equal(t, int64(500), toInt64(t, loc[2]))
	requireBool(t, true, fields[4])
	require.Equal(t, int64(0), toInt64(t, fields[5]))
	require.Equal(t, int64(0), toInt64(t, fields[6]))
	require.Equal(t, regTS, toInt64(t, fields[7]))

	t.Run("duplicate identifier", func(t *testing.T) {
		cOwner.InvokeFail(t, depin.ErrDeviceExists, "registerDevice",
			owner.ScriptHash(), "dev-1", int64(depin.DeviceTypeSmartphone),
			int64(0), int64(0), int64(0))
		c.Invoke(t, 1, "totalDevices")
	})

	t.Run("invalid device type", func(t *testing.T) {
		cOwner.InvokeFail(t, depin.ErrInvalidDeviceType, "registerDevice",
			owner.ScriptHash(), "dev-2", int64(42), int64(0), int64(0), int64(0))
	})

	t.Run("invalid identifier", func(t *testing.T) {
		cOwner.InvokeFail(t, depin.ErrInvalidDeviceID, "registerDevice",
			owner.ScriptHash(), "", int64(depin.DeviceTypeRouter), int64(0), int64(0), int64(0))
		cOwner.InvokeFail(t, depin.ErrInvalidDeviceID, "registerDevice",
			owner.ScriptHash(), strings.Repeat("x", 33), int64(depin.DeviceTypeRouter),
			int64(0), int64(0), int64(0))
	})

	t.Run("maximum length identifier", func(t *testing.T) {
		// prefix + owner + id must still fit into a storage key
		longID := strings.Repeat("x", 32)
		cOwner.Invoke(t, stackitem.Null{}, "registerDevice",
			owner.ScriptHash(), longID, int64(depin.DeviceTypeRouter),
			int64(0), int64(0), int64(0))

		s, err := c.TestInvoke(t, "getDevice", owner.ScriptHash(), longID)
		require.NoError(t, err)
		requireBytesEqual(t, []byte(longID), s.Pop().Array()[1])
	})

	t.Run("missing owner witness", func(t *testing.T) {
		stranger := c.NewAccount(t)
		c.WithSigners(stranger).InvokeFail(t, common.ErrOwnerWitnessFailed, "registerDevice",
			owner.ScriptHash(), "dev-2", int64(depin.DeviceTypeRouter),
			int64(0), int64(0), int64(0))
	})

	t.Run("same identifier, different owner", func(t *testing.T) {
		other := c.NewAccount(t)
		registerDevice(t, c, other, "dev-1")
		c.Invoke(t, 3, "totalDevices")
	})
}

func TestDevicenet_SubmitData(t *testing.T) {
	c, cToken := newDevicenetInvokers(t)
	initializeNetwork(t, c)
	cToken.Invoke(t, stackitem.Null{}, "mint", c.Hash, int64(rewardPoolSupply), []byte{})

	owner := c.NewAccount(t)
	cOwner := registerDevice(t, c, owner, "dev-1")

	cOwner.Invoke(t, stackitem.Null{}, "submitData", submitArgs(owner, "dev-1", 9500)...)
	subTS := int64(c.TopBlock(t).Timestamp)

	// base 1000 with multipliers 1.5, 1.2, 1.3 and availability 95%
	cToken.Invoke(t, 2223, "balanceOf", owner.ScriptHash())
	c.Invoke(t, 2223, "totalRewardsDistributed")

	s, err := c.TestInvoke(t, "getDevice", owner.ScriptHash(), "dev-1")
	require.NoError(t, err)
	fields := s.Pop().Array()
	require.Equal(t, int64(1), toInt64(t, fields[5]))
	require.Equal(t, int64(2223), toInt64(t, fields[6]))
	require.Equal(t, subTS, toInt64(t, fields[7]))

	t.Run("uptime bonus on next submission", func(t *testing.T) {
		cOwner.Invoke(t, stackitem.Null{}, "submitData", submitArgs(owner, "dev-1", 9500)...)
		cToken.Invoke(t, 2223+2225, "balanceOf", owner.ScriptHash())
		c.Invoke(t, 2223+2225, "totalRewardsDistributed")
	})

	t.Run("unknown device", func(t *testing.T) {
		cOwner.InvokeFail(t, depin.ErrDeviceNotFound, "submitData", submitArgs(owner, "dev-2", 9500)...)
	})

	t.Run("missing owner witness", func(t *testing.T) {
		stranger := c.NewAccount(t)
		c.WithSigners(stranger).InvokeFail(t, common.ErrOwnerWitnessFailed,
			"submitData", submitArgs(owner, "dev-1", 9500)...)
	})

	t.Run("duplicate submission in one block", func(t *testing.T) {
		tx1 := cOwner.PrepareInvoke(t, "submitData", submitArgs(owner, "dev-1", 9000)...)
		tx2 := cOwner.PrepareInvoke(t, "submitData", submitArgs(owner, "dev-1", 8000)...)

		cOwner.AddNewBlock(t, tx1, tx2)
		cOwner.CheckHalt(t, tx1.Hash(), stackitem.Null{})
		cOwner.CheckFault(t, tx2.Hash(), depin.ErrSubmissionExists)
	})

	t.Run("inactive device", func(t *testing.T) {
		cOwner.Invoke(t, stackitem.Null{}, "toggleDeviceStatus", owner.ScriptHash(), "dev-1")
		cOwner.InvokeFail(t, depin.ErrDeviceInactive, "submitData", submitArgs(owner, "dev-1", 9500)...)
	})
}

func TestDevicenet_SubmitDataZeroReward(t *testing.T) {
	c, cToken := newDevicenetInvokers(t)
	initializeNetwork(t, c)

	owner := c.NewAccount(t)
	cOwner := registerDevice(t, c, owner, "dev-1")
	regTS := int64(c.TopBlock(t).Timestamp)

	// zero availability produces no payout, so the empty pool is not touched
	cOwner.Invoke(t, stackitem.Null{}, "submitData", submitArgs(owner, "dev-1", 0)...)

	cToken.Invoke(t, 0, "balanceOf", owner.ScriptHash())
	c.Invoke(t, 0, "totalRewardsDistributed")

	s, err := c.TestInvoke(t, "getDevice", owner.ScriptHash(), "dev-1")
	require.NoError(t, err)
	fields := s.Pop().Array()
	require.Equal(t, int64(0), toInt64(t, fields[5]))
	require.Equal(t, int64(0), toInt64(t, fields[6]))
	// unrewarded telemetry does not count as activity
	require.Equal(t, regTS, toInt64(t, fields[7]))

	// snapshot is still recorded
	s, err = c.TestInvoke(t, "listSubmissions", owner.ScriptHash(), "dev-1")
	require.NoError(t, err)
	require.Equal(t, 1, len(s.Pop().Array()))
}

func TestDevicenet_SubmitDataEmptyPool(t *testing.T) {
	c, cToken := newDevicenetInvokers(t)
	initializeNetwork(t, c)

	owner := c.NewAccount(t)
	cOwner := registerDevice(t, c, owner, "dev-1")

	cOwner.InvokeFail(t, depin.ErrInsufficientRewards, "submitData", submitArgs(owner, "dev-1", 9500)...)

	// the fault rolls the snapshot back together with the counters
	c.Invoke(t, 0, "totalRewardsDistributed")
	c.Invoke(t, stackitem.Null{}, "listSubmissions", owner.ScriptHash(), "dev-1")
	cToken.Invoke(t, 0, "balanceOf", owner.ScriptHash())
}

func TestDevicenet_SubmitDataWhilePaused(t *testing.T) {
	c, cToken := newDevicenetInvokers(t)
	initializeNetwork(t, c)
	cToken.Invoke(t, stackitem.Null{}, "mint", c.Hash, int64(rewardPoolSupply), []byte{})

	owner := c.NewAccount(t)
	cOwner := registerDevice(t, c, owner, "dev-1")

	c.Invoke(t, stackitem.Null{}, "pause")
	c.Invoke(t, false, "isActive")

	// telemetry is still accepted and rewarded while the network is paused
	cOwner.Invoke(t, stackitem.Null{}, "submitData", submitArgs(owner, "dev-1", 9500)...)
	cToken.Invoke(t, 2223, "balanceOf", owner.ScriptHash())

	c.Invoke(t, stackitem.Null{}, "resume")
	c.Invoke(t, true, "isActive")
}

func TestDevicenet_PauseResume(t *testing.T) {
	c, _ := newDevicenetInvokers(t)
	initializeNetwork(t, c)

	t.Run("missing authority witness", func(t *testing.T) {
		stranger := c.NewAccount(t)
		cStranger := c.WithSigners(stranger)
		cStranger.InvokeFail(t, common.ErrAuthorityWitnessFailed, "pause")
		cStranger.InvokeFail(t, common.ErrAuthorityWitnessFailed, "resume")
	})

	c.Invoke(t, stackitem.Null{}, "pause")
	c.Invoke(t, false, "isActive")

	// pause is idempotent
	c.Invoke(t, stackitem.Null{}, "pause")
	c.Invoke(t, false, "isActive")

	c.Invoke(t, stackitem.Null{}, "resume")
	c.Invoke(t, true, "isActive")
}

func TestDevicenet_UpdateLocation(t *testing.T) {
	c, _ := newDevicenetInvokers(t)
	initializeNetwork(t, c)

	owner := c.NewAccount(t)
	cOwner := registerDevice(t, c, owner, "dev-1")

	cOwner.Invoke(t, stackitem.Null{}, "updateLocation",
		owner.ScriptHash(), "dev-1", int64(52_520_000), int64(13_405_000), int64(300))
	updTS := int64(c.TopBlock(t).Timestamp)

	s, err := c.TestInvoke(t, "getDevice", owner.ScriptHash(), "dev-1")
	require.NoError(t, err)
	fields := s.Pop().Array()
	loc := fields[3].Value().([]stackitem.Item)
	require.Equal(t, int64(52_520_000), toInt64(t, loc[0]))
	require.Equal(t, int64(13_405_000), toInt64(t, loc[1]))
	require.Equal(t, int64(300), toInt64(t, loc[2]))
	require.Equal(t, updTS, toInt64(t, fields[7]))

	t.Run("missing owner witness", func(t *testing.T) {
		stranger := c.NewAccount(t)
		c.WithSigners(stranger).InvokeFail(t, common.ErrOwnerWitnessFailed, "updateLocation",
			owner.ScriptHash(), "dev-1", int64(0), int64(0), int64(0))
	})

	t.Run("inactive device", func(t *testing.T) {
		cOwner.Invoke(t, stackitem.Null{}, "toggleDeviceStatus", owner.ScriptHash(), "dev-1")
		cOwner.InvokeFail(t, depin.ErrDeviceInactive, "updateLocation",
			owner.ScriptHash(), "dev-1", int64(0), int64(0), int64(0))
	})
}

func TestDevicenet_ToggleDeviceStatus(t *testing.T) {
	c, _ := newDevicenetInvokers(t)
	initializeNetwork(t, c)

	owner := c.NewAccount(t)
	cOwner := registerDevice(t, c, owner, "dev-1")

	cOwner.Invoke(t, stackitem.Null{}, "toggleDeviceStatus", owner.ScriptHash(), "dev-1")
	offTS := int64(c.TopBlock(t).Timestamp)
	s, err := c.TestInvoke(t, "getDevice", owner.ScriptHash(), "dev-1")
	require.NoError(t, err)
	fields := s.Pop().Array()
	requireBool(t, false, fields[4])
	require.Equal(t, offTS, toInt64(t, fields[7]))

	// toggling an inactive device brings it back and refreshes activity again
	cOwner.Invoke(t, stackitem.Null{}, "toggleDeviceStatus", owner.ScriptHash(), "dev-1")
	onTS := int64(c.TopBlock(t).Timestamp)
	require.Greater(t, onTS, offTS)
	s, err = c.TestInvoke(t, "getDevice", owner.ScriptHash(), "dev-1")
	require.NoError(t, err)
	fields = s.Pop().Array()
	requireBool(t, true, fields[4])
	require.Equal(t, onTS, toInt64(t, fields[7]))

	t.Run("missing owner witness", func(t *testing.T) {
		stranger := c.NewAccount(t)
		c.WithSigners(stranger).InvokeFail(t, common.ErrOwnerWitnessFailed,
			"toggleDeviceStatus", owner.ScriptHash(), "dev-1")
	})

	t.Run("unknown device", func(t *testing.T) {
		cOwner.InvokeFail(t, depin.ErrDeviceNotFound, "toggleDeviceStatus",
			owner.ScriptHash(), "dev-2")
	})
}

func TestDevicenet_CalculateReward(t *testing.T) {
	c, _ := newDevicenetInvokers(t)

	for _, tc := range []struct {
		name                                                    string
		signal, latency, throughput, availability, uptime, want int64
	}{
		{"all top tiers", -65, 30, 2_000_000, 9500, 0, 2223},
		{"max uptime bonus", -65, 30, 2_000_000, 9500, 500, 3334},
		{"uptime bonus is capped", -65, 30, 2_000_000, 9500, 600, 3334},
		{"all bottom tiers", -85, 150, 100_000, 5000, 0, 63},
		{"full availability", -50, 10, 5_000_000, 10_000, 0, 2340},
		{"zero availability", -65, 30, 2_000_000, 0, 0, 0},
		{"signal boundary", -70, 30, 2_000_000, 10_000, 0, 1248},
		{"latency boundary mid", -65, 50, 2_000_000, 10_000, 0, 1950},
		{"latency boundary low", -65, 100, 2_000_000, 10_000, 0, 1170},
		{"throughput boundary mid", -65, 30, 1_000_000, 10_000, 0, 1800},
		{"throughput boundary low", -65, 30, 500_000, 10_000, 0, 1260},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c.Invoke(t, tc.want, "calculateReward",
				tc.signal, tc.latency, tc.throughput, tc.availability, tc.uptime)
		})
	}
}

func TestDevicenet_DevicesOf(t *testing.T) {
	c, _ := newDevicenetInvokers(t)
	initializeNetwork(t, c)

	owner := c.NewAccount(t)
	other := c.NewAccount(t)
	id1, id2 := randomDeviceID(), randomDeviceID()
	registerDevice(t, c, owner, id1)
	registerDevice(t, c, owner, id2)
	registerDevice(t, c, other, randomDeviceID())

	s, err := c.TestInvoke(t, "devicesOf", owner.ScriptHash())
	require.NoError(t, err)

	iter := s.Pop().Value().(*istorage.Iterator)
	items := iteratorToArray(iter)
	require.Equal(t, 2, len(items))

	var ids []string
	for _, itm := range items {
		fields := itm.Value().([]stackitem.Item)
		id, err := fields[1].TryBytes()
		require.NoError(t, err)
		ids = append(ids, string(id))
	}
	require.ElementsMatch(t, []string{id1, id2}, ids)
}

func TestDevicenet_Submissions(t *testing.T) {
	c, cToken := newDevicenetInvokers(t)
	initializeNetwork(t, c)
	cToken.Invoke(t, stackitem.Null{}, "mint", c.Hash, int64(rewardPoolSupply), []byte{})

	owner := c.NewAccount(t)
	cOwner := registerDevice(t, c, owner, "dev-1")

	t.Run("unknown submission", func(t *testing.T) {
		c.InvokeFail(t, depin.ErrSubmissionNotFound, "getSubmission",
			owner.ScriptHash(), "dev-1", int64(42))
	})

	cOwner.Invoke(t, stackitem.Null{}, "submitData", submitArgs(owner, "dev-1", 9500)...)
	ts := int64(c.TopBlock(t).Timestamp)

	s, err := c.TestInvoke(t, "getSubmission", owner.ScriptHash(), "dev-1", ts)
	require.NoError(t, err)
	fields := s.Pop().Array()
	require.Equal(t, 7, len(fields))
	require.Equal(t, ts, toInt64(t, fields[1]))
	require.Equal(t, int64(-65), toInt64(t, fields[2]))
	require.Equal(t, int64(30), toInt64(t, fields[3]))
	require.Equal(t, int64(2_000_000), toInt64(t, fields[4]))
	require.Equal(t, int64(9500), toInt64(t, fields[5]))

	cOwner.Invoke(t, stackitem.Null{}, "submitData", submitArgs(owner, "dev-1", 9000)...)

	s, err = c.TestInvoke(t, "listSubmissions", owner.ScriptHash(), "dev-1")
	require.NoError(t, err)
	keys := s.Pop().Array()
	require.Equal(t, 2, len(keys))

	key, err := keys[0].TryBytes()
	require.NoError(t, err)

	s, err = c.TestInvoke(t, "getSubmissionByKey", key)
	require.NoError(t, err)
	require.Equal(t, 7, len(s.Pop().Array()))

	t.Run("other devices are not listed", func(t *testing.T) {
		registerDevice(t, c, owner, "dev-2")
		c.Invoke(t, stackitem.Null{}, "listSubmissions", owner.ScriptHash(), "dev-2")
	})
}

func toInt64(t *testing.T, itm stackitem.Item) int64 {
	v, err := itm.TryInteger()
	require.NoError(t, err)
	return v.Int64()
}

func requireBytesEqual(t *testing.T, expected []byte, itm stackitem.Item) {
	actual, err := itm.TryBytes()
	require.NoError(t, err)
	require.Equal(t, expected, actual)
}

func requireBool(t *testing.T, expected bool, itm stackitem.Item) {
	actual, err := itm.TryBool()
	require.NoError(t, err)
	require.Equal(t, expected, actual)
}
