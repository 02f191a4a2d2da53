package config

const (
	// MinTitleLength is the minimum length for workspace, folder and file
	// titles. Creation with a shorter title is rejected before any state
	// mutation.
	MinTitleLength = 3

	// MaxTitleLength is the maximum title length. Limited to 255 to fit
	// in PostgreSQL VARCHAR(255) and keep names short and descriptive.
	MaxTitleLength = 255
)
