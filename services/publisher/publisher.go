package publisher

// Publisher receives one report per screenshot locator pass
type Publisher interface {
	// Publish appends a report keyed by its competitor/source pair
	Publish(key string, report []byte) error

	// TrimStreams trims the report stream to the configured maximum length
	TrimStreams() error

	// Close closes the publisher connection
	Close() error
}
