package vendorconsent

import (
	"fmt"
	"time"

	"github.com/prebid/go-tcf1/bitutils"
	"github.com/prebid/go-tcf1/consentconstants"
)

const (
	// dsPerS is deciseconds per second
	dsPerS = 10
	// nsPerDs is nanoseconds per decisecond
	nsPerDs = int64(time.Millisecond * 100)
)

// readTime reads a 36-bit timestamp counted in deciseconds since the
// Unix epoch.
func readTime(r *bitutils.BitReader) (time.Time, error) {
	ds, err := r.Take(36)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(int64(ds/dsPerS), int64(ds%dsPerS)*nsPerDs).UTC(), nil
}

// readLanguage reads the two 6-bit letters of the consent language.
// Each must index a..z.
func readLanguage(r *bitutils.BitReader) (string, error) {
	var letters [2]byte
	for i := range letters {
		v, err := r.Take(6)
		if err != nil {
			return "", err
		}
		if v > 25 {
			return "", fmt.Errorf("%w: letter value %d", consentconstants.ErrInvalidLanguageCode, v)
		}
		letters[i] = 'a' + byte(v)
	}
	return string(letters[:]), nil
}

// readPurposes reads the 24-bit purposes field. The wire orders
// purposes MSB-first, while the returned mask indexes them LSB-first
// (bit i set means purpose i+1 allowed), so each 6-bit group is
// bit-reversed and the groups are reassembled in reverse order.
func readPurposes(r *bitutils.BitReader) (uint32, error) {
	var groups [4]byte
	for i := range groups {
		v, err := r.Take(6)
		if err != nil {
			return 0, err
		}
		groups[i] = byte(v)
	}
	return uint32(bitutils.Reverse6(groups[3]))<<18 |
		uint32(bitutils.Reverse6(groups[2]))<<12 |
		uint32(bitutils.Reverse6(groups[1]))<<6 |
		uint32(bitutils.Reverse6(groups[0])), nil
}
