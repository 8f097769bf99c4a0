package sbom

import (
	"fmt"

	"github.com/google/uuid"
)

// Identity is the source of fresh identifiers for serial numbers and
// missing bom-refs.
type Identity func() uuid.UUID

func RandomIdentity() uuid.UUID {
	return uuid.New()
}

// SeededIdentity returns a reproducible sequence of name based v5 UUIDs,
// so that combined output can be compared byte for byte.
func SeededIdentity(seed string) Identity {
	counter := 0
	return func() uuid.UUID {
		counter += 1
		return uuid.NewSHA1(uuid.NameSpaceURL, []byte(fmt.Sprintf("%s/%d", seed, counter)))
	}
}
