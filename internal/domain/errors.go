package domain

import "errors"

var (
	ErrCartNotFound     = errors.New("cart not found")
	ErrInvalidPrice     = errors.New("invalid price")
	ErrInvalidQuantity  = errors.New("invalid quantity")
	ErrInvalidProduct   = errors.New("invalid product")
	ErrDuplicateProduct = errors.New("duplicate product")
	ErrCurrencyMismatch = errors.New("currency mismatch")
)
