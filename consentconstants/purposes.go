// Package consentconstants holds the TCF v1 constants and shared errors
// used across the consent-string packages.
package consentconstants

// Purpose is one of the IAB GDPR purposes for which a user can grant
// consent. The wire format numbers purposes 1..24; TCF v1 names the
// first five.
type Purpose uint8

const (
	// InfoStorageAccess covers the storage of information, or access to
	// information that is already stored, on a user's device.
	InfoStorageAccess Purpose = 1

	// Personalization covers the collection and processing of
	// information about the user to subsequently personalize
	// advertising for them in other contexts.
	Personalization Purpose = 2

	// AdSelectionDeliveryReporting covers selecting and delivering
	// advertisements and measuring their delivery and effectiveness.
	AdSelectionDeliveryReporting Purpose = 3

	// ContentSelectionDeliveryReporting covers selecting and delivering
	// content and measuring its delivery and effectiveness.
	ContentSelectionDeliveryReporting Purpose = 4

	// Measurement covers the collection of information about the user's
	// use of content, used to measure and report on that usage.
	Measurement Purpose = 5
)

// NamedPurposes lists the purposes given names by TCF v1, in ascending
// order.
var NamedPurposes = []Purpose{
	InfoStorageAccess,
	Personalization,
	AdSelectionDeliveryReporting,
	ContentSelectionDeliveryReporting,
	Measurement,
}

var purposeNames = map[Purpose]string{
	InfoStorageAccess:                 "Storage and access",
	Personalization:                   "Personalisation",
	AdSelectionDeliveryReporting:      "Ad selection",
	ContentSelectionDeliveryReporting: "Content delivery",
	Measurement:                       "Measurement",
}

// Name returns the TCF v1 display name of the purpose, or empty for
// purposes the framework does not name.
func (p Purpose) Name() string {
	return purposeNames[p]
}
