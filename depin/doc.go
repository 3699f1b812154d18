/*
Devicenet contract is a contract deployed in the DePINfinity chain.

Devicenet contract is the core state machine of the device network. Network
participants register their physical devices (smartphones, routers, IoT
devices, hotspots), periodically submit network quality telemetry and earn
DEPIN token rewards from the shared pool held on the contract account. The
network authority set at initialization can pause and resume the whole
network.

Devices are keyed by the owner account and a caller-chosen identifier, so
the key of every record is derived without any prior reads and concurrent
registrations of the same pair collide deterministically. Telemetry
snapshots are append-only: they are keyed by the device and the block
timestamp and are never mutated or deleted.

Rewards are computed by a pure fixed-point formula from signal strength,
latency, throughput, caller-supplied availability and the device submission
history, and are paid out through the token contract within the same
transaction. A failed payout faults the whole submission.

# Contract notifications

DeviceRegistered notification:

	DeviceRegistered:
	  - name: owner
	    type: Hash160
	  - name: deviceID
	    type: String

DataSubmitted notification:

	DataSubmitted:
	  - name: owner
	    type: Hash160
	  - name: deviceID
	    type: String
	  - name: timestamp
	    type: Integer
	  - name: reward
	    type: Integer

LocationUpdated notification:

	LocationUpdated:
	  - name: owner
	    type: Hash160
	  - name: deviceID
	    type: String

DeviceStatusToggled notification:

	DeviceStatusToggled:
	  - name: owner
	    type: Hash160
	  - name: deviceID
	    type: String
	  - name: isActive
	    type: Boolean

NetworkPaused and NetworkResumed notifications carry no parameters.
*/
package depin
