package vendorconsent

import (
	"errors"
	"fmt"

	"github.com/prebid/go-tcf1/bitutils"
)

// ErrVendorIDOutOfRange is returned when a range entry names a vendor
// ID equal to or greater than MaxVendorID, the length of the consent
// sequence.
var ErrVendorIDOutOfRange = errors.New("range entry vendor id exceeds max vendor id")

// parseBitField reads maxVendorID consent bits in wire order.
func parseBitField(r *bitutils.BitReader, maxVendorID uint16) ([]bool, error) {
	consents := make([]bool, maxVendorID)
	for i := range consents {
		b, err := r.TakeBool()
		if err != nil {
			return nil, err
		}
		consents[i] = b
	}
	return consents, nil
}

// parseRangeSection reads the default consent bit, the 12-bit entry
// count, and the entries. Each entry is either a single vendor ID or an
// inclusive ID range; every vendor it names gets the opposite of the
// default, with later entries overwriting earlier ones.
func parseRangeSection(r *bitutils.BitReader, maxVendorID uint16) ([]bool, error) {
	defaultConsent, err := r.TakeBool()
	if err != nil {
		return nil, err
	}
	consents := make([]bool, maxVendorID)
	for i := range consents {
		consents[i] = defaultConsent
	}

	numEntries, err := r.Take(12)
	if err != nil {
		return nil, err
	}
	for i := uint64(0); i < numEntries; i++ {
		isIDRange, err := r.TakeBool()
		if err != nil {
			return nil, err
		}
		start, err := r.Take(16)
		if err != nil {
			return nil, err
		}
		end := start
		if isIDRange {
			if end, err = r.Take(16); err != nil {
				return nil, err
			}
		}
		if end >= uint64(len(consents)) {
			return nil, fmt.Errorf("%w: entry %d ends at %d, max is %d", ErrVendorIDOutOfRange, i, end, maxVendorID)
		}
		for id := start; id <= end; id++ {
			consents[id] = !defaultConsent
		}
	}
	return consents, nil
}
