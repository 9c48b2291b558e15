package ttc

// ParseOption guides and influences the parsing of a collection.
type ParseOption int

const (
	// StrictSignature rejects collection headers not tagged 'ttcf'.
	// Without it, the signature is read but not checked.
	StrictSignature ParseOption = iota + 1
)

func hasOption(opts []ParseOption, opt ParseOption) bool {
	for _, o := range opts {
		if o == opt {
			return true
		}
	}
	return false
}
