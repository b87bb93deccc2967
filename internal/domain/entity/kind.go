// Package entity contains the core business objects of the project.
package entity

// AddressKind represents the variant of an address: an individual or a business.
// Both formats carry the distinction and conversion rules depend on it.
type AddressKind string

const (
	// KindIndividual indicates an address for a person.
	KindIndividual AddressKind = "individual"
	// KindBusiness indicates an address for a company, optionally with a contact or service.
	KindBusiness AddressKind = "business"
)

// String returns the string representation of the AddressKind.
func (k AddressKind) String() string {
	return string(k)
}

// IsValid checks if the AddressKind is a valid value.
func (k AddressKind) IsValid() bool {
	switch k {
	case KindIndividual, KindBusiness:
		return true
	default:
		return false
	}
}
