// Package vendorlist parses the IAB Global Vendor List JSON, as hosted
// at https://vendorlist.consensu.org/vendorlist.json.
package vendorlist

import (
	"fmt"

	"github.com/buger/jsonparser"
)

// VendorList is one version of the IAB Global Vendor List.
type VendorList struct {
	version uint16
	vendors map[uint16]Vendor
}

// Vendor describes one vendor from the list.
type Vendor struct {
	ID        uint16
	Name      string
	PolicyURL string
}

// Version returns the vendorListVersion of the list.
func (l *VendorList) Version() uint16 {
	return l.version
}

// Count returns the number of vendors in the list.
func (l *VendorList) Count() int {
	return len(l.vendors)
}

// Vendor looks up a vendor by ID.
func (l *VendorList) Vendor(id uint16) (Vendor, bool) {
	v, ok := l.vendors[id]
	return v, ok
}

// Parse interprets data as a Global Vendor List. Vendors missing an id
// fail the parse; a missing name or policyUrl is tolerated.
func Parse(data []byte) (*VendorList, error) {
	version, err := jsonparser.GetInt(data, "vendorListVersion")
	if err != nil {
		return nil, fmt.Errorf("read vendorListVersion: %v", err)
	}

	vendors := make(map[uint16]Vendor)
	var vendorErr error
	_, err = jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, offset int, itemErr error) {
		if vendorErr != nil {
			return
		}
		if itemErr != nil {
			vendorErr = itemErr
			return
		}
		id, idErr := jsonparser.GetInt(value, "id")
		if idErr != nil {
			vendorErr = fmt.Errorf("read vendor id: %v", idErr)
			return
		}
		name, _ := jsonparser.GetString(value, "name")
		policyURL, _ := jsonparser.GetString(value, "policyUrl")
		vendors[uint16(id)] = Vendor{
			ID:        uint16(id),
			Name:      name,
			PolicyURL: policyURL,
		}
	}, "vendors")
	if err != nil {
		return nil, fmt.Errorf("read vendors: %v", err)
	}
	if vendorErr != nil {
		return nil, vendorErr
	}

	return &VendorList{version: uint16(version), vendors: vendors}, nil
}
