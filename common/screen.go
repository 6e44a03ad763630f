package common

// Base resolution of the sample window.
const (
	BaseWidth  = 960
	BaseHeight = 544
)
