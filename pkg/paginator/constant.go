package paginator

const (
	// DefaultLimit is the number of items returned when no limit is given.
	DefaultLimit = 20
	// MinLimit is the smallest limit a caller can effectively request.
	MinLimit = 1
	// MaxLimit is the maximum number of items per listing to prevent
	// excessive queries.
	MaxLimit = 100
)
