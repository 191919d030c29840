/*
Package gradient maps bounded numeric values onto colors drawn from a
piecewise-linear gradient defined by an ordered list of color stops.

The value range [min, max] is divided into len(stops)-1 equal-width bins.
A query locates the bin its value falls in and blends the two bounding
stops linearly. Queries are O(1) and read-only, so a gradient can be
shared across goroutines once initialized.

Basic example:

	g, err := gradient.New(0, 100, []gradient.Color{
		gradient.MustHex("#000000"),
		gradient.MustHex("#ffffff"),
	}, nil)
	if err != nil {
		// handle error
	}
	c, _ := g.At(50) // mid gray

Outlier colors example:

	black := gradient.MustHex("#000000")
	g, err := gradient.New(0x000f, 0xfff0, gradient.Proximity(), &gradient.Options{
		MinOutlier: &black,
		MaxOutlier: &black,
	})
	if err != nil {
		// handle error
	}
	_, _ = g.At(0xffff) // black, above the range

Preset and lookup table example:

	g, err := gradient.New(0, 1000, gradient.Heat(), nil)
	if err != nil {
		// handle error
	}
	lut, _ := g.Samples(256)
	_ = lut

Terminal swatch example:

	s, _ := g.Swatch(40)
	fmt.Println(s)
*/
package gradient
