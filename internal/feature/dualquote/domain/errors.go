// Package domain defines domain-level errors for the dualquote feature.
package domain

import "errors"

// ErrInvalidCurrency indicates a currency code that is not three ASCII letters.
var ErrInvalidCurrency = errors.New("invalid currency code")
