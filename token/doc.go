/*
Token contract is a contract deployed in the DePINfinity chain.

Token contract stores all DEPIN token balances. It is a NEP-17 compatible
contract, so it can be tracked and controlled by N3 compatible network
monitors and wallet software.

The reward pool of the device network is a regular token account held on
the devicenet contract address. Committee fills the pool with Mint and the
devicenet contract pays rewards out of it with TransferX within telemetry
submission transactions. A payout that the pool cannot cover is reported
back to the devicenet contract, which faults the whole submission.

# Contract notifications

Transfer notification. This is NEP-17 standard notification.

	Transfer:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

TransferX notification. This is enhanced transfer notification with details.

	TransferX:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: details
	    type: ByteArray

Mint notification. This notification is produced when the reward pool or any
other account is replenished by committee.

	Mint:
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

Burn notification. This notification is produced after committee reduces an
account balance.

	Burn:
	  - name: from
	    type: Hash160
	  - name: amount
	    type: Integer
*/
package token
