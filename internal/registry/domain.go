package registry

// DomainKey names a thematic partition of the node space.
type DomainKey string

const (
	DomainFoundation DomainKey = "foundation"
	DomainAgency     DomainKey = "agency"
	DomainMoney      DomainKey = "money"
	DomainSocial     DomainKey = "social"
	DomainLegacy     DomainKey = "legacy"
)

// AllDomainKeys returns the domains in declaration order.
func AllDomainKeys() []DomainKey {
	return []DomainKey{
		DomainFoundation,
		DomainAgency,
		DomainMoney,
		DomainSocial,
		DomainLegacy,
	}
}

// DomainDisplayName returns a human-readable name for a domain.
func DomainDisplayName(d DomainKey) string {
	switch d {
	case DomainFoundation:
		return "Foundation"
	case DomainAgency:
		return "Agency"
	case DomainMoney:
		return "Money"
	case DomainSocial:
		return "Social"
	case DomainLegacy:
		return "Legacy"
	default:
		return string(d)
	}
}

// DomainSpec is the human-authored part of a domain: its key and node count.
type DomainSpec struct {
	Key   DomainKey
	Count int
}

// Domain is a DomainSpec placed on the absolute id line.
type Domain struct {
	Key     DomainKey `json:"key"`
	Count   int       `json:"count"`
	StartID int       `json:"startId"`
}

// Contains reports whether the absolute node id falls inside the domain.
func (d Domain) Contains(id int) bool {
	return id >= d.StartID && id < d.StartID+d.Count
}

// DefaultDomains returns the node counts of the built-in catalog.
func DefaultDomains() []DomainSpec {
	return []DomainSpec{
		{Key: DomainFoundation, Count: 15},
		{Key: DomainAgency, Count: 10},
		{Key: DomainMoney, Count: 10},
		{Key: DomainSocial, Count: 10},
		{Key: DomainLegacy, Count: 5},
	}
}
