package depin

import (
	"github.com/depinfinity/depin-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/crypto"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

type (
	// NetworkState is a singleton record with network-wide counters and
	// the pause flag. It is created once by Initialize and never deleted.
	NetworkState struct {
		Authority               interop.Hash160
		TotalDevices            int
		TotalRewardsDistributed int
		IsActive                bool
	}

	// Location is a device position. Latitude and longitude are given in
	// microdegrees, accuracy in centimeters.
	Location struct {
		Latitude  int
		Longitude int
		Accuracy  int
	}

	// Device is a registered network participant owned by a single account.
	// TotalUptime counts rewarded submissions, not wall-clock time.
	Device struct {
		Owner              interop.Hash160
		DeviceID           string
		DeviceType         int
		Location           Location
		IsActive           bool
		TotalUptime        int
		TotalRewardsEarned int
		LastActivity       int
	}

	// DataSubmission is an immutable telemetry snapshot keyed by the device
	// key hash and the submission timestamp.
	DataSubmission struct {
		DeviceHash     interop.Hash256
		Timestamp      int
		SignalStrength int
		Latency        int
		Throughput     int
		Availability   int
		Location       Location
	}
)

// Supported device types.
const (
	DeviceTypeSmartphone = iota
	DeviceTypeRouter
	DeviceTypeIoTDevice
	DeviceTypeHotspot

	lastDeviceType = DeviceTypeHotspot
)

const (
	// ErrNotInitialized is thrown when the network state singleton does not exist yet.
	ErrNotInitialized = "network state is not initialized"
	// ErrAlreadyInitialized is thrown when Initialize is invoked twice.
	ErrAlreadyInitialized = "network state is already initialized"
	// ErrDeviceExists is thrown when the (owner, device id) pair is already registered.
	ErrDeviceExists = "device already registered"
	// ErrDeviceNotFound is thrown when the requested device does not exist.
	ErrDeviceNotFound = "device not found"
	// ErrDeviceInactive is thrown on mutation attempts against an inactive device.
	ErrDeviceInactive = "device is not active"
	// ErrSubmissionExists is thrown when a device submits twice within one block,
	// which collides on the (device, timestamp) key.
	ErrSubmissionExists = "data submission already recorded"
	// ErrSubmissionNotFound is thrown when the requested submission does not exist.
	ErrSubmissionNotFound = "data submission not found"
	// ErrInsufficientRewards is thrown when the reward pool cannot cover a payout.
	ErrInsufficientRewards = "insufficient rewards in pool"
	// ErrInvalidDeviceType is thrown when the device type is out of the known range.
	ErrInvalidDeviceType = "invalid device type"
	// ErrInvalidDeviceID is thrown when the device identifier is empty or too long.
	ErrInvalidDeviceID = "invalid device identifier"
	// ErrNetworkPaused is reserved for gating submissions on a paused network.
	// SubmitData currently accepts telemetry while the network is paused.
	ErrNetworkPaused = "network is paused"
	// ErrInvalidQuality is reserved for telemetry bounds validation.
	// Availability is currently taken from the caller as-is.
	ErrInvalidQuality = "invalid quality data"
)

const (
	networkStateKey  = "netstate"
	tokenContractKey = "tokenScriptHash"

	devicePrefix     = 'd'
	submissionPrefix = 's'

	// maxDeviceIDLen keeps the device storage key (prefix + owner + id)
	// within the 64-byte storage key limit.
	maxDeviceIDLen = 32
)

// Reward computation is fixed-point: quality multipliers are scaled by 10,
// availability is given in basis points and the uptime bonus is scaled by
// 1000. The final division truncates toward zero.
const (
	baseReward = 1000

	multiplierScale   = 10
	availabilityScale = 10_000
	uptimeBonusScale  = 1000
	maxUptimeBonus    = 500
)

// nolint:deadcode,unused
func _deploy(data interface{}, isUpdate bool) {
	ctx := storage.GetContext()
	if isUpdate {
		args := data.([]interface{})
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.(struct {
		addrToken interop.Hash160
	})

	if len(args.addrToken) != interop.Hash160Len {
		panic("incorrect length of token contract script hash")
	}

	storage.Put(ctx, tokenContractKey, args.addrToken)

	runtime.Log("devicenet contract initialized")
}

// Update method updates contract source code and manifest. Can be invoked
// only by committee.
func Update(script []byte, manifest []byte, data interface{}) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("devicenet contract updated")
}

// Initialize creates the network state singleton with zeroed counters and
// the given account as the sole pause/resume authority. Requires the
// authority witness. Can be invoked only once.
func Initialize(authority interop.Hash160) {
	ctx := storage.GetContext()

	if len(authority) != interop.Hash160Len {
		panic("incorrect length of authority script hash")
	}

	if storage.Get(ctx, networkStateKey) != nil {
		panic(ErrAlreadyInitialized)
	}

	common.CheckAuthorityWitness(authority)

	st := NetworkState{
		Authority:               authority,
		TotalDevices:            0,
		TotalRewardsDistributed: 0,
		IsActive:                true,
	}
	common.SetSerialized(ctx, networkStateKey, st)

	runtime.Log("network state initialized")
}

// Pause deactivates the network. Can be invoked only by the authority.
func Pause() {
	ctx := storage.GetContext()
	st := getNetworkState(ctx)

	common.CheckAuthorityWitness(st.Authority)

	st.IsActive = false
	common.SetSerialized(ctx, networkStateKey, st)

	runtime.Notify("NetworkPaused")
	runtime.Log("network paused by authority")
}

// Resume activates the network back. Can be invoked only by the authority.
func Resume() {
	ctx := storage.GetContext()
	st := getNetworkState(ctx)

	common.CheckAuthorityWitness(st.Authority)

	st.IsActive = true
	common.SetSerialized(ctx, networkStateKey, st)

	runtime.Notify("NetworkResumed")
	runtime.Log("network resumed by authority")
}

// RegisterDevice creates a new device record owned by the owner account and
// increments the network device counter. The (owner, deviceID) pair must be
// unique. The device starts active with zeroed counters. Requires the owner
// witness.
func RegisterDevice(owner interop.Hash160, deviceID string, deviceType, latitude, longitude, accuracy int) {
	ctx := storage.GetContext()
	st := getNetworkState(ctx)

	if len(deviceID) == 0 || len(deviceID) > maxDeviceIDLen {
		panic(ErrInvalidDeviceID)
	}
	if deviceType < 0 || deviceType > lastDeviceType {
		panic(ErrInvalidDeviceType)
	}

	common.CheckOwnerWitness(owner)

	key := deviceKey(owner, deviceID)
	if storage.Get(ctx, key) != nil {
		panic(ErrDeviceExists)
	}

	d := Device{
		Owner:      owner,
		DeviceID:   deviceID,
		DeviceType: deviceType,
		Location: Location{
			Latitude:  latitude,
			Longitude: longitude,
			Accuracy:  accuracy,
		},
		IsActive:           true,
		TotalUptime:        0,
		TotalRewardsEarned: 0,
		LastActivity:       runtime.GetTime(),
	}
	common.SetSerialized(ctx, key, d)

	st.TotalDevices = st.TotalDevices + 1
	common.SetSerialized(ctx, networkStateKey, st)

	runtime.Notify("DeviceRegistered", owner, deviceID)
	runtime.Log("registered new device")
}

// SubmitData stores an immutable telemetry snapshot for the device and pays
// out a reward from the pool if the computed amount is positive. Availability
// is given in basis points and is taken as-is. Requires the owner witness.
// The whole invocation faults if the pool cannot cover the payout.
func SubmitData(owner interop.Hash160, deviceID string, signalStrength, latency, throughput, availability, latitude, longitude, accuracy int) {
	ctx := storage.GetContext()
	st := getNetworkState(ctx)

	key := deviceKey(owner, deviceID)
	d := getDevice(ctx, key)

	if !d.IsActive {
		panic(ErrDeviceInactive)
	}

	common.CheckOwnerWitness(owner)

	now := runtime.GetTime()
	devHash := deviceHash(owner, deviceID)

	subKey := submissionKey(devHash, now)
	if storage.Get(ctx, subKey) != nil {
		panic(ErrSubmissionExists)
	}

	sub := DataSubmission{
		DeviceHash:     devHash,
		Timestamp:      now,
		SignalStrength: signalStrength,
		Latency:        latency,
		Throughput:     throughput,
		Availability:   availability,
		Location: Location{
			Latitude:  latitude,
			Longitude: longitude,
			Accuracy:  accuracy,
		},
	}
	common.SetSerialized(ctx, subKey, sub)

	reward := CalculateReward(signalStrength, latency, throughput, availability, d.TotalUptime)

	if reward > 0 {
		pool := runtime.GetExecutingScriptHash()
		tokenContractAddr := storage.Get(ctx, tokenContractKey).(interop.Hash160)
		details := common.RewardTransferDetails(devHash)

		ok := contract.Call(tokenContractAddr, "transferX",
			contract.All, pool, owner, reward, details).(bool)
		if !ok {
			panic(ErrInsufficientRewards)
		}

		d.TotalRewardsEarned = d.TotalRewardsEarned + reward
		d.TotalUptime = d.TotalUptime + 1
		d.LastActivity = now
		common.SetSerialized(ctx, key, d)

		st.TotalRewardsDistributed = st.TotalRewardsDistributed + reward
		common.SetSerialized(ctx, networkStateKey, st)
	}

	runtime.Notify("DataSubmitted", owner, deviceID, now, reward)
	runtime.Log("telemetry submission recorded")
}

// UpdateLocation replaces the last-known location of an active device and
// refreshes its activity timestamp. Requires the owner witness.
func UpdateLocation(owner interop.Hash160, deviceID string, latitude, longitude, accuracy int) {
	ctx := storage.GetContext()

	key := deviceKey(owner, deviceID)
	d := getDevice(ctx, key)

	common.CheckOwnerWitness(owner)

	if !d.IsActive {
		panic(ErrDeviceInactive)
	}

	d.Location = Location{
		Latitude:  latitude,
		Longitude: longitude,
		Accuracy:  accuracy,
	}
	d.LastActivity = runtime.GetTime()
	common.SetSerialized(ctx, key, d)

	runtime.Notify("LocationUpdated", owner, deviceID)
}

// ToggleDeviceStatus flips the active flag of the device and refreshes its
// activity timestamp. No counters are affected. Requires the owner witness.
func ToggleDeviceStatus(owner interop.Hash160, deviceID string) {
	ctx := storage.GetContext()

	key := deviceKey(owner, deviceID)
	d := getDevice(ctx, key)

	common.CheckOwnerWitness(owner)

	d.IsActive = !d.IsActive
	d.LastActivity = runtime.GetTime()
	common.SetSerialized(ctx, key, d)

	runtime.Notify("DeviceStatusToggled", owner, deviceID, d.IsActive)
}

// CalculateReward computes the reward amount for a single telemetry
// submission. It is a pure function of its arguments. Signal strength is in
// dBm, latency in milliseconds, throughput in bits per second, availability
// in basis points. Boundary values fall to the lower tier.
func CalculateReward(signalStrength, latency, throughput, availability, uptime int) int {
	signalMultiplier := 3
	if signalStrength > -70 {
		signalMultiplier = 15
	} else if signalStrength > -80 {
		signalMultiplier = 8
	}

	latencyMultiplier := 6
	if latency < 50 {
		latencyMultiplier = 12
	} else if latency < 100 {
		latencyMultiplier = 10
	}

	throughputMultiplier := 7
	if throughput > 1_000_000 {
		throughputMultiplier = 13
	} else if throughput > 500_000 {
		throughputMultiplier = 10
	}

	uptimeBonus := uptimeBonusScale + uptime
	if uptime > maxUptimeBonus {
		uptimeBonus = uptimeBonusScale + maxUptimeBonus
	}

	amount := baseReward * signalMultiplier * latencyMultiplier * throughputMultiplier * availability * uptimeBonus

	return amount / (multiplierScale * multiplierScale * multiplierScale * availabilityScale * uptimeBonusScale)
}

// NetworkStateInfo returns the network state singleton.
func NetworkStateInfo() NetworkState {
	ctx := storage.GetReadOnlyContext()
	return getNetworkState(ctx)
}

// Authority returns the account permitted to pause and resume the network.
func Authority() interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return getNetworkState(ctx).Authority
}

// IsActive returns false if the network is paused.
func IsActive() bool {
	ctx := storage.GetReadOnlyContext()
	return getNetworkState(ctx).IsActive
}

// TotalDevices returns the number of devices ever registered.
func TotalDevices() int {
	ctx := storage.GetReadOnlyContext()
	return getNetworkState(ctx).TotalDevices
}

// TotalRewardsDistributed returns the cumulative amount of paid out rewards.
func TotalRewardsDistributed() int {
	ctx := storage.GetReadOnlyContext()
	return getNetworkState(ctx).TotalRewardsDistributed
}

// GetDevice returns the device registered by the owner under the given id.
func GetDevice(owner interop.Hash160, deviceID string) Device {
	ctx := storage.GetReadOnlyContext()
	return getDevice(ctx, deviceKey(owner, deviceID))
}

// DevicesOf returns an iterator over all devices registered by the owner.
func DevicesOf(owner interop.Hash160) iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	prefix := append([]byte{devicePrefix}, owner...)
	return storage.Find(ctx, prefix, storage.ValuesOnly|storage.DeserializeValues)
}

// GetSubmission returns the telemetry snapshot of the device at the given
// timestamp.
func GetSubmission(owner interop.Hash160, deviceID string, timestamp int) DataSubmission {
	return GetSubmissionByKey(submissionKey(deviceHash(owner, deviceID), timestamp))
}

// GetSubmissionByKey returns the telemetry snapshot stored under the given
// storage key. Keys can be obtained from ListSubmissions.
func GetSubmissionByKey(id []byte) DataSubmission {
	ctx := storage.GetReadOnlyContext()

	data := storage.Get(ctx, id)
	if data == nil {
		panic(ErrSubmissionNotFound)
	}

	return std.Deserialize(data.([]byte)).(DataSubmission)
}

// ListSubmissions returns the list of storage keys of all telemetry
// snapshots submitted by the device. Keys may be used with
// GetSubmissionByKey.
func ListSubmissions(owner interop.Hash160, deviceID string) [][]byte {
	ctx := storage.GetReadOnlyContext()

	prefix := append([]byte{submissionPrefix}, deviceHash(owner, deviceID)...)
	it := storage.Find(ctx, prefix, storage.KeysOnly)

	var result [][]byte

	for iterator.Next(it) {
		key := iterator.Value(it).([]byte) // it MUST BE `storage.KeysOnly`
		result = append(result, key)
	}

	return result
}

// Version returns version of the contract.
func Version() int {
	return common.Version
}

func getNetworkState(ctx storage.Context) NetworkState {
	data := storage.Get(ctx, networkStateKey)
	if data == nil {
		panic(ErrNotInitialized)
	}

	return std.Deserialize(data.([]byte)).(NetworkState)
}

func getDevice(ctx storage.Context, key []byte) Device {
	data := storage.Get(ctx, key)
	if data == nil {
		panic(ErrDeviceNotFound)
	}

	return std.Deserialize(data.([]byte)).(Device)
}

// deviceKey is a pure function of the owner account and the caller-chosen
// device identifier, so concurrent registrations of the same pair collide
// deterministically.
func deviceKey(owner interop.Hash160, deviceID string) []byte {
	key := append([]byte{devicePrefix}, owner...)
	return append(key, deviceID...)
}

func deviceHash(owner interop.Hash160, deviceID string) interop.Hash256 {
	return crypto.Sha256(append([]byte(owner), deviceID...))
}

func submissionKey(devHash interop.Hash256, timestamp int) []byte {
	var buf interface{} = timestamp

	key := append([]byte{submissionPrefix}, devHash...)
	return append(key, buf.([]byte)...)
}
