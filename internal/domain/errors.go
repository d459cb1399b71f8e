package domain

import "errors"

var (
	// ErrAccountExists is returned when registering a username that is
	// already taken.
	ErrAccountExists = errors.New("account already exists")
	// ErrAccountNotFound is returned when authenticating an unknown
	// username.
	ErrAccountNotFound = errors.New("account does not exist")
	// ErrWrongPassword is returned when the password does not match.
	ErrWrongPassword = errors.New("incorrect password")
	// ErrNotLoggedIn is returned by operations that need an active
	// session. The login guard has already been armed when it is seen.
	ErrNotLoggedIn = errors.New("not logged in")
	// ErrEmptyCart is returned when checking out with nothing in the
	// cart.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrInvalidIndex is returned when removing a cart position that
	// does not exist.
	ErrInvalidIndex = errors.New("cart index out of range")
	// ErrInvalidProduct is returned when product-card data is missing a
	// name or carries an unparseable price.
	ErrInvalidProduct = errors.New("invalid product data")
)
