package service

// HTTPError carries the status the API should answer with when an operation
// fails. The service picks the status because it knows whether a failure is
// the caller's fault (malformed events, unknown run id) or the server's.
type HTTPError struct {
	StatusCode int
	Wrapped    error
}

func (e HTTPError) Error() string {
	return e.Wrapped.Error()
}

func (e HTTPError) Unwrap() error {
	return e.Wrapped
}

func httpError(statusCode int, err error) HTTPError {
	return HTTPError{
		StatusCode: statusCode,
		Wrapped:    err,
	}
}
