// Package identity derives the deterministic identifiers that make
// inserts idempotent: a search id from the owner plus the full criteria
// tuple, and a visibility key from an (owner, listing) pair. Equal
// inputs always hash to the same id, so the storage layer can rely on
// insert-if-absent instead of check-then-insert.
package identity

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	domain "github.com/kakwa/immowatch/pkg/types"
)

// NormalizeOwner canonicalizes an owner identifier. Chat nicknames and
// usernames arrive with inconsistent casing and padding; identity and
// storage always operate on the normalized form.
func NormalizeOwner(owner string) string {
	return strings.ToLower(strings.TrimSpace(owner))
}

// SearchID returns the stable id of a (owner, criteria) pair.
func SearchID(
	owner, postalCode, minSurface, maxPrice string,
	dealType domain.DealType,
	minRooms int,
) string {
	input := fmt.Sprintf("%s|%s|%s|%s|%s|%d",
		NormalizeOwner(owner),
		postalCode,
		minSurface,
		maxPrice,
		dealType,
		minRooms,
	)
	return digest(input)
}

// VisibilityKey returns the stable key of a (owner, listing) pair.
func VisibilityKey(owner, listingID string) string {
	return digest(NormalizeOwner(owner) + "|" + listingID)
}

func digest(input string) string {
	hash := sha256.Sum256([]byte(input))
	return hex.EncodeToString(hash[:16])
}
