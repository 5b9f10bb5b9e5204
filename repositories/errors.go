package repositories

// StoreError wraps a failure reported by the database while serving a
// repository operation. Handlers match it with errors.As and surface the
// message verbatim; retrying the user action is always safe.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// ConfigError reports a violated storage invariant, such as the site
// settings singleton missing or duplicated. It is fatal for the affected
// operation and must not be retried automatically.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

func storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}
