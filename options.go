package gradient

// Options controls optional gradient behavior.
type Options struct {
	// MinOutlier is the color returned for values below the range minimum.
	// If nil, the first stop is used.
	MinOutlier *Color
	// MaxOutlier is the color returned for values above the range maximum.
	// If nil, the last stop is used.
	MaxOutlier *Color
}

// normalize normalizes the Options.
func (o *Options) normalize() Options {
	if o == nil {
		return Options{}
	}

	return *o
}
