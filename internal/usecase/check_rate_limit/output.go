package check_rate_limit

// Output represents the result of a rate limit check operation
type Output struct {
	// Allowed indicates whether the request should be permitted to proceed.
	Allowed bool

	// Count is the number of requests inside the trailing window after
	// this check. Useful for debugging and monitoring.
	Count int

	// Limit is the configured maximum number of requests per window.
	Limit int

	// Message contains a human-readable explanation when the request is
	// rejected. It is deliberately generic so callers probing the gate
	// learn nothing about which check tripped.
	Message string
}
