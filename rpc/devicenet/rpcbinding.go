// Package devicenet contains RPC wrappers for DePINfinity Devicenet contract.
package devicenet

import (
	"errors"
	"fmt"
	"math/big"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// DepinLocation is a contract-specific depin.Location type used by its methods.
type DepinLocation struct {
	Latitude  *big.Int
	Longitude *big.Int
	Accuracy  *big.Int
}

// DepinNetworkState is a contract-specific depin.NetworkState type used by its methods.
type DepinNetworkState struct {
	Authority               util.Uint160
	TotalDevices            *big.Int
	TotalRewardsDistributed *big.Int
	IsActive                bool
}

// DepinDevice is a contract-specific depin.Device type used by its methods.
type DepinDevice struct {
	Owner              util.Uint160
	DeviceID           string
	DeviceType         *big.Int
	Location           *DepinLocation
	IsActive           bool
	TotalUptime        *big.Int
	TotalRewardsEarned *big.Int
	LastActivity       *big.Int
}

// DepinDataSubmission is a contract-specific depin.DataSubmission type used by its methods.
type DepinDataSubmission struct {
	DeviceHash     util.Uint256
	Timestamp      *big.Int
	SignalStrength *big.Int
	Latency        *big.Int
	Throughput     *big.Int
	Availability   *big.Int
	Location       *DepinLocation
}

// DeviceRegisteredEvent represents "DeviceRegistered" event emitted by the contract.
type DeviceRegisteredEvent struct {
	Owner    util.Uint160
	DeviceID string
}

// DataSubmittedEvent represents "DataSubmitted" event emitted by the contract.
type DataSubmittedEvent struct {
	Owner     util.Uint160
	DeviceID  string
	Timestamp *big.Int
	Reward    *big.Int
}

// LocationUpdatedEvent represents "LocationUpdated" event emitted by the contract.
type LocationUpdatedEvent struct {
	Owner    util.Uint160
	DeviceID string
}

// DeviceStatusToggledEvent represents "DeviceStatusToggled" event emitted by the contract.
type DeviceStatusToggledEvent struct {
	Owner    util.Uint160
	DeviceID string
	IsActive bool
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash    util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash  util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// Authority invokes `authority` method of contract.
func (c *ContractReader) Authority() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "authority"))
}

// CalculateReward invokes `calculateReward` method of contract.
func (c *ContractReader) CalculateReward(signalStrength *big.Int, latency *big.Int, throughput *big.Int, availability *big.Int, uptime *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "calculateReward", signalStrength, latency, throughput, availability, uptime))
}

// DevicesOf invokes `devicesOf` method of contract.
func (c *ContractReader) DevicesOf(owner util.Uint160) (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "devicesOf", owner))
}

// DevicesOfExpanded is similar to DevicesOf (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) DevicesOfExpanded(owner util.Uint160, _numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "devicesOf", _numOfIteratorItems, owner))
}

// GetDevice invokes `getDevice` method of contract.
func (c *ContractReader) GetDevice(owner util.Uint160, deviceID string) (*DepinDevice, error) {
	return itemToDepinDevice(unwrap.Item(c.invoker.Call(c.hash, "getDevice", owner, deviceID)))
}

// GetSubmission invokes `getSubmission` method of contract.
func (c *ContractReader) GetSubmission(owner util.Uint160, deviceID string, timestamp *big.Int) (*DepinDataSubmission, error) {
	return itemToDepinDataSubmission(unwrap.Item(c.invoker.Call(c.hash, "getSubmission", owner, deviceID, timestamp)))
}

// GetSubmissionByKey invokes `getSubmissionByKey` method of contract.
func (c *ContractReader) GetSubmissionByKey(id []byte) (*DepinDataSubmission, error) {
	return itemToDepinDataSubmission(unwrap.Item(c.invoker.Call(c.hash, "getSubmissionByKey", id)))
}

// IsActive invokes `isActive` method of contract.
func (c *ContractReader) IsActive() (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isActive"))
}

// ListSubmissions invokes `listSubmissions` method of contract.
func (c *ContractReader) ListSubmissions(owner util.Uint160, deviceID string) ([][]byte, error) {
	return unwrap.ArrayOfBytes(c.invoker.Call(c.hash, "listSubmissions", owner, deviceID))
}

// NetworkStateInfo invokes `networkStateInfo` method of contract.
func (c *ContractReader) NetworkStateInfo() (*DepinNetworkState, error) {
	return itemToDepinNetworkState(unwrap.Item(c.invoker.Call(c.hash, "networkStateInfo")))
}

// TotalDevices invokes `totalDevices` method of contract.
func (c *ContractReader) TotalDevices() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "totalDevices"))
}

// TotalRewardsDistributed invokes `totalRewardsDistributed` method of contract.
func (c *ContractReader) TotalRewardsDistributed() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "totalRewardsDistributed"))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// Initialize creates a transaction invoking `initialize` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Initialize(authority util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "initialize", authority)
}

// InitializeTransaction creates a transaction invoking `initialize` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) InitializeTransaction(authority util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "initialize", authority)
}

// InitializeUnsigned creates a transaction invoking `initialize` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) InitializeUnsigned(authority util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "initialize", nil, authority)
}

// Pause creates a transaction invoking `pause` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Pause() (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "pause")
}

// PauseTransaction creates a transaction invoking `pause` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) PauseTransaction() (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "pause")
}

// PauseUnsigned creates a transaction invoking `pause` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) PauseUnsigned() (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "pause", nil)
}

// RegisterDevice creates a transaction invoking `registerDevice` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RegisterDevice(owner util.Uint160, deviceID string, deviceType *big.Int, latitude *big.Int, longitude *big.Int, accuracy *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "registerDevice", owner, deviceID, deviceType, latitude, longitude, accuracy)
}

// RegisterDeviceTransaction creates a transaction invoking `registerDevice` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RegisterDeviceTransaction(owner util.Uint160, deviceID string, deviceType *big.Int, latitude *big.Int, longitude *big.Int, accuracy *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "registerDevice", owner, deviceID, deviceType, latitude, longitude, accuracy)
}

// RegisterDeviceUnsigned creates a transaction invoking `registerDevice` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RegisterDeviceUnsigned(owner util.Uint160, deviceID string, deviceType *big.Int, latitude *big.Int, longitude *big.Int, accuracy *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "registerDevice", nil, owner, deviceID, deviceType, latitude, longitude, accuracy)
}

// Resume creates a transaction invoking `resume` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Resume() (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "resume")
}

// ResumeTransaction creates a transaction invoking `resume` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ResumeTransaction() (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "resume")
}

// ResumeUnsigned creates a transaction invoking `resume` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ResumeUnsigned() (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "resume", nil)
}

// SubmitData creates a transaction invoking `submitData` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SubmitData(owner util.Uint160, deviceID string, signalStrength *big.Int, latency *big.Int, throughput *big.Int, availability *big.Int, latitude *big.Int, longitude *big.Int, accuracy *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "submitData", owner, deviceID, signalStrength, latency, throughput, availability, latitude, longitude, accuracy)
}

// SubmitDataTransaction creates a transaction invoking `submitData` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SubmitDataTransaction(owner util.Uint160, deviceID string, signalStrength *big.Int, latency *big.Int, throughput *big.Int, availability *big.Int, latitude *big.Int, longitude *big.Int, accuracy *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "submitData", owner, deviceID, signalStrength, latency, throughput, availability, latitude, longitude, accuracy)
}

// SubmitDataUnsigned creates a transaction invoking `submitData` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SubmitDataUnsigned(owner util.Uint160, deviceID string, signalStrength *big.Int, latency *big.Int, throughput *big.Int, availability *big.Int, latitude *big.Int, longitude *big.Int, accuracy *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "submitData", nil, owner, deviceID, signalStrength, latency, throughput, availability, latitude, longitude, accuracy)
}

// ToggleDeviceStatus creates a transaction invoking `toggleDeviceStatus` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ToggleDeviceStatus(owner util.Uint160, deviceID string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "toggleDeviceStatus", owner, deviceID)
}

// ToggleDeviceStatusTransaction creates a transaction invoking `toggleDeviceStatus` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ToggleDeviceStatusTransaction(owner util.Uint160, deviceID string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "toggleDeviceStatus", owner, deviceID)
}

// ToggleDeviceStatusUnsigned creates a transaction invoking `toggleDeviceStatus` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ToggleDeviceStatusUnsigned(owner util.Uint160, deviceID string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "toggleDeviceStatus", nil, owner, deviceID)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(script []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", script, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", script, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, script, manifest, data)
}

// UpdateLocation creates a transaction invoking `updateLocation` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UpdateLocation(owner util.Uint160, deviceID string, latitude *big.Int, longitude *big.Int, accuracy *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "updateLocation", owner, deviceID, latitude, longitude, accuracy)
}

// UpdateLocationTransaction creates a transaction invoking `updateLocation` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateLocationTransaction(owner util.Uint160, deviceID string, latitude *big.Int, longitude *big.Int, accuracy *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "updateLocation", owner, deviceID, latitude, longitude, accuracy)
}

// UpdateLocationUnsigned creates a transaction invoking `updateLocation` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateLocationUnsigned(owner util.Uint160, deviceID string, latitude *big.Int, longitude *big.Int, accuracy *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "updateLocation", nil, owner, deviceID, latitude, longitude, accuracy)
}

func itemToDepinLocation(item stackitem.Item, err error) (*DepinLocation, error) {
	if err != nil {
		return nil, err
	}
	var res = new(DepinLocation)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of DepinLocation from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *DepinLocation) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	res.Latitude, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Latitude: %w", err)
	}

	index++
	res.Longitude, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Longitude: %w", err)
	}

	index++
	res.Accuracy, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Accuracy: %w", err)
	}

	return nil
}

func itemToDepinNetworkState(item stackitem.Item, err error) (*DepinNetworkState, error) {
	if err != nil {
		return nil, err
	}
	var res = new(DepinNetworkState)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of DepinNetworkState from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *DepinNetworkState) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	res.Authority, err = func(item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field Authority: %w", err)
	}

	index++
	res.TotalDevices, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field TotalDevices: %w", err)
	}

	index++
	res.TotalRewardsDistributed, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field TotalRewardsDistributed: %w", err)
	}

	index++
	res.IsActive, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field IsActive: %w", err)
	}

	return nil
}

func itemToDepinDevice(item stackitem.Item, err error) (*DepinDevice, error) {
	if err != nil {
		return nil, err
	}
	var res = new(DepinDevice)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of DepinDevice from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *DepinDevice) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 8 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	res.Owner, err = func(item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	res.DeviceID, err = func(item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field DeviceID: %w", err)
	}

	index++
	res.DeviceType, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field DeviceType: %w", err)
	}

	index++
	res.Location, err = itemToDepinLocation(arr[index], nil)
	if err != nil {
		return fmt.Errorf("field Location: %w", err)
	}

	index++
	res.IsActive, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field IsActive: %w", err)
	}

	index++
	res.TotalUptime, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field TotalUptime: %w", err)
	}

	index++
	res.TotalRewardsEarned, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field TotalRewardsEarned: %w", err)
	}

	index++
	res.LastActivity, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field LastActivity: %w", err)
	}

	return nil
}

func itemToDepinDataSubmission(item stackitem.Item, err error) (*DepinDataSubmission, error) {
	if err != nil {
		return nil, err
	}
	var res = new(DepinDataSubmission)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of DepinDataSubmission from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *DepinDataSubmission) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 7 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	res.DeviceHash, err = func(item stackitem.Item) (util.Uint256, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint256{}, err
		}
		u, err := util.Uint256DecodeBytesBE(b)
		if err != nil {
			return util.Uint256{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field DeviceHash: %w", err)
	}

	index++
	res.Timestamp, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Timestamp: %w", err)
	}

	index++
	res.SignalStrength, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field SignalStrength: %w", err)
	}

	index++
	res.Latency, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Latency: %w", err)
	}

	index++
	res.Throughput, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Throughput: %w", err)
	}

	index++
	res.Availability, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Availability: %w", err)
	}

	index++
	res.Location, err = itemToDepinLocation(arr[index], nil)
	if err != nil {
		return fmt.Errorf("field Location: %w", err)
	}

	return nil
}

// DeviceRegisteredEventsFromApplicationLog retrieves a set of all emitted events
// with "DeviceRegistered" name from the provided [result.ApplicationLog].
func DeviceRegisteredEventsFromApplicationLog(log *result.ApplicationLog) ([]*DeviceRegisteredEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*DeviceRegisteredEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "DeviceRegistered" {
				continue
			}
			event := new(DeviceRegisteredEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize DeviceRegisteredEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to DeviceRegisteredEvent
// or returns an error if it's not possible to do to so.
func (e *DeviceRegisteredEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Owner, err = func(item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.DeviceID, err = func(item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field DeviceID: %w", err)
	}

	return nil
}

// DataSubmittedEventsFromApplicationLog retrieves a set of all emitted events
// with "DataSubmitted" name from the provided [result.ApplicationLog].
func DataSubmittedEventsFromApplicationLog(log *result.ApplicationLog) ([]*DataSubmittedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*DataSubmittedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "DataSubmitted" {
				continue
			}
			event := new(DataSubmittedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize DataSubmittedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to DataSubmittedEvent
// or returns an error if it's not possible to do to so.
func (e *DataSubmittedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Owner, err = func(item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.DeviceID, err = func(item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field DeviceID: %w", err)
	}

	index++
	e.Timestamp, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Timestamp: %w", err)
	}

	index++
	e.Reward, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Reward: %w", err)
	}

	return nil
}

// LocationUpdatedEventsFromApplicationLog retrieves a set of all emitted events
// with "LocationUpdated" name from the provided [result.ApplicationLog].
func LocationUpdatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*LocationUpdatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*LocationUpdatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "LocationUpdated" {
				continue
			}
			event := new(LocationUpdatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize LocationUpdatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to LocationUpdatedEvent
// or returns an error if it's not possible to do to so.
func (e *LocationUpdatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Owner, err = func(item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.DeviceID, err = func(item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field DeviceID: %w", err)
	}

	return nil
}

// DeviceStatusToggledEventsFromApplicationLog retrieves a set of all emitted events
// with "DeviceStatusToggled" name from the provided [result.ApplicationLog].
func DeviceStatusToggledEventsFromApplicationLog(log *result.ApplicationLog) ([]*DeviceStatusToggledEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*DeviceStatusToggledEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "DeviceStatusToggled" {
				continue
			}
			event := new(DeviceStatusToggledEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize DeviceStatusToggledEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to DeviceStatusToggledEvent
// or returns an error if it's not possible to do to so.
func (e *DeviceStatusToggledEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Owner, err = func(item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.DeviceID, err = func(item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field DeviceID: %w", err)
	}

	index++
	e.IsActive, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field IsActive: %w", err)
	}

	return nil
}
