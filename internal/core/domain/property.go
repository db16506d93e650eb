package domain

import "strings"

const maxPostcodeLength = 8

// Property is the insured address. Immutable once attached to a policy.
type Property struct {
	AddressLine1 string
	AddressLine2 string
	AddressLine3 string
	Postcode     string
}

// NewProperty validates and constructs a Property. Lines 2 and 3 are optional.
func NewProperty(addressLine1, postcode, addressLine2, addressLine3 string) (*Property, error) {
	if strings.TrimSpace(addressLine1) == "" {
		return nil, NewError("property.invalid_address", "Address line 1 is required.")
	}
	if strings.TrimSpace(postcode) == "" {
		return nil, NewError("property.invalid_postcode", "Postcode is required.")
	}
	if len(postcode) > maxPostcodeLength {
		return nil, NewError("property.invalid_postcode_length", "Postcode cannot exceed 8 characters.")
	}
	return &Property{
		AddressLine1: addressLine1,
		AddressLine2: addressLine2,
		AddressLine3: addressLine3,
		Postcode:     postcode,
	}, nil
}

// String renders the non-empty address lines joined with commas.
func (p *Property) String() string {
	lines := make([]string, 0, 4)
	for _, line := range []string{p.AddressLine1, p.AddressLine2, p.AddressLine3, p.Postcode} {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, ", ")
}
