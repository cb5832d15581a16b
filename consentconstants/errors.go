package consentconstants

import "errors"

// ErrEmptyDecodedConsent is returned when the consent string is empty.
var ErrEmptyDecodedConsent = errors.New("decoded consent cannot be empty")

// ErrInvalidLanguageCode is returned when a consent-language letter
// falls outside a..z.
var ErrInvalidLanguageCode = errors.New("invalid consent language code")
