package message

import (
	"math/rand/v2"
	"strconv"
	"strings"
)

const referenceLength = 5

// ReferenceNumber is a short code a caller can quote back: the last five
// characters of the call SID, or five random digits when there is no call.
func ReferenceNumber(callSID string) string {
	callSID = strings.TrimSpace(callSID)
	if callSID == "" {
		return strconv.Itoa(10000 + rand.IntN(90000))
	}
	if len(callSID) > referenceLength {
		callSID = callSID[len(callSID)-referenceLength:]
	}
	return strings.ToUpper(callSID)
}
