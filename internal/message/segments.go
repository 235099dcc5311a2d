package message

import (
	"unicode/utf16"
)

// Encoding is the character set a carrier will use for an SMS body.
type Encoding string

const (
	EncodingGSM7 Encoding = "GSM-7"
	EncodingUCS2 Encoding = "UCS-2"
)

// Segments is the estimated billing shape of an SMS body.
type Segments struct {
	Count    int      `json:"count"`
	Length   int      `json:"length"`
	Encoding Encoding `json:"encoding"`
}

// EstimateSegments treats any non-ASCII character as forcing UCS-2. That
// overestimates for the few GSM-7 extension characters, which is the safe
// direction for a budget.
func EstimateSegments(body string) Segments {
	units := 0
	ascii := true
	for _, r := range body {
		if r > 0x7F {
			ascii = false
		}
		units += utf16.RuneLen(r)
	}

	single, multi, enc := 160, 153, EncodingGSM7
	if !ascii {
		single, multi, enc = 70, 67, EncodingUCS2
	}

	count := 1
	if units > single {
		count = (units + multi - 1) / multi
	}
	return Segments{Count: count, Length: units, Encoding: enc}
}
