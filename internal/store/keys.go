package store

// Keys shared with the storefront presentation layer. The names are
// part of the interop contract and must not change.
//
// KeyUsers and KeyCart hold JSON; KeyLoggedInUser and
// KeyRedirectAfterLogin hold raw strings.
const (
	KeyUsers              = "users"
	KeyCart               = "cart"
	KeyLoggedInUser       = "loggedInUser"
	KeyRedirectAfterLogin = "redirectAfterLogin"
)
