package gradient

// Preset stop lists for common visualization ramps. Pass them to New:
//
//	g, err := gradient.New(0, 1000, gradient.Heat(), nil)

// Grayscale ramps black to white.
func Grayscale() []Color {
	return []Color{
		MustHex("#000000"),
		MustHex("#ffffff"),
	}
}

// Heat is the classic black-red-yellow-white heat ramp.
func Heat() []Color {
	return []Color{
		MustHex("#000000"),
		MustHex("#ff0000"),
		MustHex("#ffff00"),
		MustHex("#ffffff"),
	}
}

// Spectral is an 11-keypoint rainbow ramp from dark red through yellow to violet.
func Spectral() []Color {
	return []Color{
		MustHex("#9e0142"),
		MustHex("#d53e4f"),
		MustHex("#f46d43"),
		MustHex("#fdae61"),
		MustHex("#fee090"),
		MustHex("#ffffbf"),
		MustHex("#e6f598"),
		MustHex("#abdda4"),
		MustHex("#66c2a5"),
		MustHex("#3288bd"),
		MustHex("#5e4fa2"),
	}
}

// BlueRed is a diverging ramp: blue through white to red.
func BlueRed() []Color {
	return []Color{
		MustHex("#0000ff"),
		MustHex("#ffffff"),
		MustHex("#ff0000"),
	}
}

// Proximity ramps white (near) through the rainbow to purple (far).
func Proximity() []Color {
	return []Color{
		MustHex("#ffffff"),
		MustHex("#ff0000"),
		MustHex("#ffff00"),
		MustHex("#00ff00"),
		MustHex("#0000ff"),
		MustHex("#4b1996"),
	}
}
