package journal

import "errors"

var (
	// ErrMissingCredential reports that no session token could be read from
	// client storage. No request is made in that case.
	ErrMissingCredential = errors.New("missing credential")

	// ErrFetchFailed wraps every transport, status and decode failure of a
	// journal list request.
	ErrFetchFailed = errors.New("fetch journals failed")
)
