package domain

// ServiceType classifies a reservation as regular (minor) or major
// (extensive) service. The type drives which time slots are bookable.
type ServiceType string

const (
	ServiceTypeRegular ServiceType = "regular"
	ServiceTypeMajor   ServiceType = "major"
)

// IsValid returns true if the service type is one of the known values.
func (t ServiceType) IsValid() bool {
	return t == ServiceTypeRegular || t == ServiceTypeMajor
}

// Symptom is a read-only catalog entry describing a vehicle issue,
// tagged with the service type it implies.
type Symptom struct {
	ID          int64
	Name        string
	ServiceType ServiceType
}

// Vehicle is a motorcycle owned by a user account. It is referenced,
// never mutated, by the intake workflow.
type Vehicle struct {
	ID             int64
	Brand          string
	Type           string
	ProductionYear int
}

// DeriveServiceType computes the overall service type for a set of
// selected symptoms: major if at least one symptom is major, otherwise
// regular. An empty selection derives regular.
func DeriveServiceType(selected []Symptom) ServiceType {
	for _, s := range selected {
		if s.ServiceType == ServiceTypeMajor {
			return ServiceTypeMajor
		}
	}
	return ServiceTypeRegular
}
