package builtin

import "github.com/filecoin-project/go-state-types/big"

// Number of base units in one whole token.
var TokenPrecision = big.NewIntUnsigned(1_000_000_000_000_000_000)

const SecondsInHour = 3600
const SecondsInDay = 86400
const SecondsInYear = 31556925
