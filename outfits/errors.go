package outfits

import "errors"

var (
	// ErrMalformedItem is reported for items the engine cannot identify,
	// currently any item with a zero ID.
	ErrMalformedItem = errors.New("malformed wardrobe item")

	errNoSatisfiableTheme = errors.New("no satisfiable theme")
	errEmptyDraft         = errors.New("assembled outfit has no items")
)
