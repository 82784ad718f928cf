// Package outfits builds clothing outfits from a user's wardrobe.
//
// The engine is a heuristic, not a trained model. Assemble sorts the wardrobe
// into slots, picks a style theme, selects an anchor item and coordinates the
// remaining pieces against the anchor's color, guarding against repeating a
// recent outfit. Recommend composes several theme-agnostic outfits, drops
// exact duplicates and ranks them by a small scoring function. Fallback is
// the best-effort answer when nothing themed can be built.
//
// All randomness comes from the Engine's own source, so an Engine created
// WithSeed and WithClock is fully reproducible. An Engine is meant to be
// owned by one session; see services.OutfitSessionStore.
package outfits
