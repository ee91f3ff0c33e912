// Package dcbortest holds small helpers shared by this module's test files.
package dcbortest

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// DecodeHexString decodes a hex string for use in test tables. It panics on
// malformed input, which makes it usable inline in table literals.
func DecodeHexString(hexData string) []byte {
	hexData = strings.TrimSpace(hexData)
	decoded, err := hex.DecodeString(hexData)
	if err != nil {
		panic(fmt.Sprintf("error decoding hex: %s", err))
	}
	return decoded
}
