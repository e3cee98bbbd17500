package domain

const (
	// DefaultStringMaxLength is the maximum length, in characters, of any string
	// stored on an approved TSP. The schema columns allow up to 512.
	DefaultStringMaxLength = 255
)
