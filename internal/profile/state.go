package profile

// Initial values of the state vector.
const (
	InitialFoundation = 50.0
	InitialAgency     = 50.0
	InitialResource   = 50.0
	InitialEntropy    = 10.0
	InitialSyncScore  = 100.0
)

// State is the four-dimensional profile vector. Foundation, Agency and
// Resource are clamped to [0,100].
type State struct {
	Foundation float64 `json:"foundation"`
	Agency     float64 `json:"agency"`
	Resource   float64 `json:"resource"`
	Entropy    float64 `json:"entropy"`
}

// InitialState returns the vector every scoring pass starts from.
func InitialState() State {
	return State{
		Foundation: InitialFoundation,
		Agency:     InitialAgency,
		Resource:   InitialResource,
		Entropy:    InitialEntropy,
	}
}
