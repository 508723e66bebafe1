// Package domain defines domain-level errors for the symbollist feature.
package domain

import "errors"

// ErrInvalidCategory indicates a category outside entity.Categories.
var ErrInvalidCategory = errors.New("invalid category")
