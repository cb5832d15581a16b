package vendorconsent

import (
	"time"

	"github.com/prebid/go-tcf1/api"
	"github.com/prebid/go-tcf1/consentconstants"
)

// ConsentMetadata implements api.VendorConsents for TCF v1 strings.
// Values are fixed at parse time; a ConsentMetadata is safe to share
// across goroutines.
type ConsentMetadata struct {
	version           uint8
	created           time.Time
	lastUpdated       time.Time
	cmpID             uint16
	cmpVersion        uint16
	consentScreen     uint8
	consentLanguage   string
	vendorListVersion uint16
	// purposes indexes purposes LSB-first: bit i set means purpose i+1
	// is allowed.
	purposes    uint32
	maxVendorID uint16
	// vendorConsents has length maxVendorID and is indexed by vendor
	// ID. Index 0 may hold a raw wire bit but is reported false by
	// every accessor.
	vendorConsents []bool
}

var _ api.VendorConsents = ConsentMetadata{}

func (c ConsentMetadata) Version() uint8 {
	return c.version
}

func (c ConsentMetadata) Created() time.Time {
	return c.created
}

func (c ConsentMetadata) LastUpdated() time.Time {
	return c.lastUpdated
}

func (c ConsentMetadata) CmpID() uint16 {
	return c.cmpID
}

func (c ConsentMetadata) CmpVersion() uint16 {
	return c.cmpVersion
}

func (c ConsentMetadata) ConsentScreen() uint8 {
	return c.consentScreen
}

func (c ConsentMetadata) ConsentLanguage() string {
	return c.consentLanguage
}

func (c ConsentMetadata) VendorListVersion() uint16 {
	return c.vendorListVersion
}

func (c ConsentMetadata) MaxVendorID() uint16 {
	return c.maxVendorID
}

func (c ConsentMetadata) PurposeAllowed(id consentconstants.Purpose) bool {
	if id < 1 || id > 24 {
		return false
	}
	return c.purposes>>(uint(id)-1)&1 == 1
}

func (c ConsentMetadata) PurposesAllowed() []consentconstants.Purpose {
	rv := make([]consentconstants.Purpose, 0, len(consentconstants.NamedPurposes))
	for _, p := range consentconstants.NamedPurposes {
		if c.PurposeAllowed(p) {
			rv = append(rv, p)
		}
	}
	return rv
}

func (c ConsentMetadata) VendorConsent(id uint16) bool {
	if id < 1 || int(id) >= len(c.vendorConsents) {
		return false
	}
	return c.vendorConsents[id]
}

func (c ConsentMetadata) ConsentedVendors() []uint16 {
	var rv []uint16
	for id := 1; id < len(c.vendorConsents); id++ {
		if c.vendorConsents[id] {
			rv = append(rv, uint16(id))
		}
	}
	return rv
}
