package domain

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const referenceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// PolicyReference is the unique, human-readable policy code, in the form
// POL-<TYPE PREFIX>-<5 alphanumeric>-<checksum digit>. Assigned once at
// creation and never regenerated.
type PolicyReference struct {
	value string
}

// GeneratePolicyReference mints a fresh reference for the given product type.
func GeneratePolicyReference(insuranceType InsuranceType) PolicyReference {
	prefix := "XX"
	switch insuranceType {
	case Household:
		prefix = "HH"
	case BuyToLet:
		prefix = "B2L"
	}

	base := fmt.Sprintf("POL-%s-%s", prefix, randomAlphanumeric(5))

	return PolicyReference{value: fmt.Sprintf("%s-%d", base, referenceChecksum(base))}
}

// PolicyReferenceFromString wraps an already-issued reference, e.g. one read
// back from storage or a request path.
func PolicyReferenceFromString(value string) PolicyReference {
	return PolicyReference{value: value}
}

func (r PolicyReference) Value() string {
	return r.value
}

func (r PolicyReference) String() string {
	return r.value
}

// referenceChecksum is the sum of the ASCII byte values of the base
// reference, modulo 10.
func referenceChecksum(base string) int {
	sum := 0
	for _, b := range []byte(base) {
		sum += int(b)
	}
	return sum % 10
}

func randomAlphanumeric(length int) string {
	out := make([]byte, length)
	for i := range out {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(referenceAlphabet))))
		if err != nil {
			// crypto/rand only fails if the platform entropy source is broken.
			panic(fmt.Sprintf("failed to read random bytes: %v", err))
		}
		out[i] = referenceAlphabet[idx.Int64()]
	}
	return string(out)
}
