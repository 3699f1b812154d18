package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
)

// HasUpdateAccess returns true if the devicenet or token contract code can
// be updated by the current invocation, which requires the committee
// witness.
func HasUpdateAccess() bool {
	return runtime.CheckWitness(CommitteeAddress())
}
