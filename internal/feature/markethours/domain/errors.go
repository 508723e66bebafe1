// Package domain defines domain-level errors for the markethours feature.
package domain

import "errors"

// ErrUnknownExchange indicates an exchange without a known trading schedule.
var ErrUnknownExchange = errors.New("unknown exchange")
