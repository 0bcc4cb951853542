package terminal

// Named truecolor constants. Standard color names where RGB closely matches
// (CSS, X11), descriptive compound names otherwise. Ordered dark-to-light
// within each hue group.
var (
	// --- Achromatic ---
	Black     = RGB{0, 0, 0}
	Gunmetal  = RGB{26, 27, 38} // Blue-tinted near-black
	DimGray   = RGB{55, 55, 55}
	IronGray  = RGB{80, 80, 80}
	Gray      = RGB{120, 120, 120}
	Silver    = RGB{180, 180, 180}
	LightGray = RGB{200, 200, 200}
	White     = RGB{255, 255, 255}

	// --- Red ---
	Oxblood     = RGB{100, 20, 20}
	DarkCrimson = RGB{139, 0, 0}
	Brick       = RGB{180, 40, 40}
	Red         = RGB{255, 0, 0}
	Coral       = RGB{255, 80, 80}
	Salmon      = RGB{255, 100, 100}

	// --- Orange / Yellow ---
	Rust        = RGB{180, 60, 20}
	Amber       = RGB{180, 120, 0}
	OrangeRed   = RGB{255, 69, 0}
	TigerOrange = RGB{255, 140, 0}
	Orange      = RGB{255, 165, 0}
	Gold        = RGB{255, 215, 0}
	Yellow      = RGB{255, 255, 0}
	Cream       = RGB{255, 255, 200}

	// --- Green ---
	DeepForest  = RGB{25, 80, 35}
	DarkGreen   = RGB{15, 130, 15}
	ForestGreen = RGB{34, 139, 34}
	SeaGreen    = RGB{60, 180, 80}
	LimeGreen   = RGB{50, 205, 50}
	Lime        = RGB{0, 255, 0}
	LightGreen  = RGB{144, 238, 144}

	// --- Cyan / Blue ---
	Teal         = RGB{0, 139, 139}
	DarkTurquois = RGB{0, 206, 209}
	Cyan         = RGB{0, 255, 255}
	DeepNavy     = RGB{15, 25, 50}
	NavyBlue     = RGB{30, 60, 120}
	SteelBlue    = RGB{60, 100, 180}
	RoyalBlue    = RGB{65, 105, 225}
	DodgerBlue   = RGB{40, 180, 255}
	LightBlue    = RGB{120, 170, 255}
	Blue         = RGB{0, 0, 255}

	// --- Purple / Pink ---
	DeepPurple   = RGB{60, 20, 80}
	DarkViolet   = RGB{120, 40, 180}
	MediumPurple = RGB{170, 100, 210}
	Orchid       = RGB{200, 120, 220}
	HotPink      = RGB{255, 140, 200}
	Pink         = RGB{255, 192, 203}
	Magenta      = RGB{255, 0, 255}
)
