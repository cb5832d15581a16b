package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/prebid/go-tcf1/api"
	"github.com/prebid/go-tcf1/vendorlist"
)

type renderFunc func(w io.Writer, consent api.VendorConsents)

const timeLayout = "2006-01-02 15:04:05.000 MST"

func renderHuman(list *vendorlist.VendorList) renderFunc {
	return func(w io.Writer, consent api.VendorConsents) {
		purposes := make([]string, 0, 5)
		for _, p := range consent.PurposesAllowed() {
			purposes = append(purposes, p.Name())
		}

		fmt.Fprintf(w, "\nGDPR Consent String (v%d)\n", consent.Version())
		fmt.Fprintf(w, "Created %s; last updated %s\n",
			consent.Created().Format(timeLayout), consent.LastUpdated().Format(timeLayout))
		fmt.Fprintf(w, "CMP Id: %d (v%d)\n", consent.CmpID(), consent.CmpVersion())
		fmt.Fprintf(w, "Consent screen number: %d\n", consent.ConsentScreen())
		fmt.Fprintf(w, "Consent language: %s\n", consent.ConsentLanguage())
		fmt.Fprintf(w, "Vendor list version: %d\n", consent.VendorListVersion())
		fmt.Fprintf(w, "Purposes allowed: %s\n", strings.Join(purposes, ", "))
		fmt.Fprintln(w, "Vendor consents:")
		fmt.Fprintln(w, vendorChart(consent))
		if list != nil {
			renderDenied(w, consent, list)
		}
		fmt.Fprintln(w)
	}
}

const (
	chartHundreds = "    0000000000 1111111111 2222222222 3333333333 4444444444 5555555555 6666666666 7777777777 8888888888 9999999999"
	chartOnes     = "    0123456789 0123456789 0123456789 0123456789 0123456789 0123456789 0123456789 0123456789 0123456789 0123456789"
)

// vendorChart draws the consent sequence as rows of 100 vendor IDs,
// '#' for granted and space for denied. Vendor 0 is always blank.
func vendorChart(consent api.VendorConsents) string {
	var b strings.Builder
	max := int(consent.MaxVendorID())
	rows := max/100 + 1
	for row := 0; row < rows; row++ {
		if row%10 == 0 {
			b.WriteString(chartHundreds)
			b.WriteByte('\n')
			b.WriteString(chartOnes)
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%3d", row)
		hi := (row + 1) * 100
		if hi > max {
			hi = max
		}
		for vid := row * 100; vid < hi; vid++ {
			if vid%10 == 0 {
				b.WriteByte(' ')
			}
			if vid > 0 && consent.VendorConsent(uint16(vid)) {
				b.WriteByte('#')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderDenied lists the denied vendors that appear in the vendor list.
func renderDenied(w io.Writer, consent api.VendorConsents, list *vendorlist.VendorList) {
	if list.Version() != consent.VendorListVersion() {
		fmt.Fprintf(w, "Vendor list version mismatch: string declares %d, list is %d\n",
			consent.VendorListVersion(), list.Version())
	}
	fmt.Fprintln(w, "Vendors denied:")
	for vid := 1; vid < int(consent.MaxVendorID()); vid++ {
		if consent.VendorConsent(uint16(vid)) {
			continue
		}
		if v, ok := list.Vendor(uint16(vid)); ok {
			fmt.Fprintf(w, "%6d  %s\n", vid, v.Name)
		}
	}
}

type jsonConsent struct {
	Version           uint8    `json:"version"`
	Created           uint64   `json:"created"`
	LastUpdated       uint64   `json:"last_updated"`
	CmpID             uint16   `json:"cmp_id"`
	CmpVersion        uint16   `json:"cmp_version"`
	ConsentScreen     uint8    `json:"consent_screen"`
	ConsentLanguage   string   `json:"consent_language"`
	VendorListVersion uint16   `json:"vendor_list_version"`
	// Not uint8: a []uint8 field would marshal as a base64 string.
	PurposesAllowed []int `json:"purposes_allowed"`
	MaxVendorID       uint16   `json:"max_vendor_id"`
	VendorConsents    []uint16 `json:"vendor_consents"`
}

func renderJSON(w io.Writer, consent api.VendorConsents) {
	purposes := make([]int, 0, 5)
	for _, p := range consent.PurposesAllowed() {
		purposes = append(purposes, int(p))
	}
	vendors := consent.ConsentedVendors()
	if vendors == nil {
		vendors = []uint16{}
	}
	out := jsonConsent{
		Version:           consent.Version(),
		Created:           deciseconds(consent.Created()),
		LastUpdated:       deciseconds(consent.LastUpdated()),
		CmpID:             consent.CmpID(),
		CmpVersion:        consent.CmpVersion(),
		ConsentScreen:     consent.ConsentScreen(),
		ConsentLanguage:   consent.ConsentLanguage(),
		VendorListVersion: consent.VendorListVersion(),
		PurposesAllowed:   purposes,
		MaxVendorID:       consent.MaxVendorID(),
		VendorConsents:    vendors,
	}
	enc := json.NewEncoder(w)
	if err := enc.Encode(out); err != nil {
		fmt.Fprintln(w, "{}")
	}
}

func deciseconds(t time.Time) uint64 {
	return uint64(t.Unix())*10 + uint64(t.Nanosecond()/int(100*time.Millisecond))
}
