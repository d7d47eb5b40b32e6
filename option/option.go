package option

const (
	KB = 1 << 10
	MB = 1 << 20
)

// Option for SortedList construction.
type Option struct {
	// Ascending is the sort order of the list: ascending
	// when true, descending when false.
	Ascending bool

	// Capacity is the initial length of both backing arrays.
	// Non-positive values fall back to the default capacity.
	Capacity int
}

// DefaultOption
var DefaultOption = &Option{
	Ascending: true,
	Capacity:  11,
}
