package refdata

// ConfigurationError reports malformed or missing reference data: an unknown
// disease name, a missing category mapping, or an absent age bracket with no
// documented fallback. These are fatal and never silently defaulted.
type ConfigurationError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}
