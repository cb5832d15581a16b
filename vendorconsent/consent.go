// Package vendorconsent parses the TCF v1.x vendor consent string
// format base64 encoded
package vendorconsent

import (
	"fmt"

	"github.com/prebid/go-tcf1/api"
	"github.com/prebid/go-tcf1/bitutils"
	"github.com/prebid/go-tcf1/consentconstants"
)

// ParseString parses a TCF 1.x vendor consent string, base64 encoded
// with the URL-safe alphabet and no padding. Surrounding whitespace
// must already be trimmed by the caller.
// If the data is malformed and cannot be interpreted as a vendor consent string, this will return an error.
func ParseString(consent string) (api.VendorConsents, error) {
	if consent == "" {
		return nil, consentconstants.ErrEmptyDecodedConsent
	}

	r := bitutils.NewBitReader(consent)
	c := ConsentMetadata{}

	version, err := r.Take(6)
	if err != nil {
		return nil, fmt.Errorf("read version: %w", err)
	}
	c.version = uint8(version)

	if c.created, err = readTime(r); err != nil {
		return nil, fmt.Errorf("read created: %w", err)
	}
	if c.lastUpdated, err = readTime(r); err != nil {
		return nil, fmt.Errorf("read last updated: %w", err)
	}

	cmpID, err := r.Take(12)
	if err != nil {
		return nil, fmt.Errorf("read cmp id: %w", err)
	}
	c.cmpID = uint16(cmpID)

	cmpVersion, err := r.Take(12)
	if err != nil {
		return nil, fmt.Errorf("read cmp version: %w", err)
	}
	c.cmpVersion = uint16(cmpVersion)

	consentScreen, err := r.Take(6)
	if err != nil {
		return nil, fmt.Errorf("read consent screen: %w", err)
	}
	c.consentScreen = uint8(consentScreen)

	if c.consentLanguage, err = readLanguage(r); err != nil {
		return nil, fmt.Errorf("read consent language: %w", err)
	}

	vendorListVersion, err := r.Take(12)
	if err != nil {
		return nil, fmt.Errorf("read vendor list version: %w", err)
	}
	c.vendorListVersion = uint16(vendorListVersion)

	if c.purposes, err = readPurposes(r); err != nil {
		return nil, fmt.Errorf("read purposes: %w", err)
	}

	maxVendorID, err := r.Take(16)
	if err != nil {
		return nil, fmt.Errorf("read max vendor id: %w", err)
	}
	c.maxVendorID = uint16(maxVendorID)

	isRangeEncoding, err := r.TakeBool()
	if err != nil {
		return nil, fmt.Errorf("read encoding type: %w", err)
	}
	if isRangeEncoding {
		c.vendorConsents, err = parseRangeSection(r, c.maxVendorID)
	} else {
		c.vendorConsents, err = parseBitField(r, c.maxVendorID)
	}
	if err != nil {
		return nil, fmt.Errorf("read vendor consents: %w", err)
	}

	return c, nil
}
