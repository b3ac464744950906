package state

// Interface defines the history store contract for dependency injection and testing.
type Interface interface {
	RecordSelection(widgetID, value, label string)
	Flush() error
	Recent(widgetID string, n int) ([]Selection, error)
	SaveValues(widgetID string, values []string) error
	GetValues(widgetID string) ([]string, error)
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
