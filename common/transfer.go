package common

var (
	mintPrefix   = []byte{0x01}
	burnPrefix   = []byte{0x02}
	rewardPrefix = []byte{0x10}
)

func MintTransferDetails(txDetails []byte) []byte {
	return append(mintPrefix, txDetails...)
}

func BurnTransferDetails(txDetails []byte) []byte {
	return append(burnPrefix, txDetails...)
}

// RewardTransferDetails marks a token transfer as a telemetry reward payout
// attributed to the device with the given key hash.
func RewardTransferDetails(deviceHash []byte) []byte {
	return append(rewardPrefix, deviceHash...)
}
