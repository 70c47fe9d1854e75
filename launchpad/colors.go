package launchpad

// Color is one entry of the fixed pad palette. Red and Green are LED
// intensities 0-3; Hex is a display-only approximation of the resulting mix.
// The device only knows the 16 red/green combinations below, so colors are
// never constructed outside this file.
type Color struct {
	Name  string
	Red   uint8
	Green uint8
	Hex   string
}

var (
	Off       = Color{"Off", 0, 0, "#000000"}
	RedLow    = Color{"RedLow", 1, 0, "#550000"}
	RedMed    = Color{"RedMed", 2, 0, "#aa0000"}
	Red       = Color{"Red", 3, 0, "#ff0000"}
	OrangeLow = Color{"OrangeLow", 2, 1, "#aa5500"}
	OrangeMed = Color{"OrangeMed", 3, 1, "#ff5500"}
	Orange    = Color{"Orange", 3, 2, "#ffaa00"}
	AmberLow  = Color{"AmberLow", 1, 1, "#555500"}
	AmberMed  = Color{"AmberMed", 2, 2, "#aaaa00"}
	Amber     = Color{"Amber", 3, 3, "#ffff00"}
	Yellow    = Color{"Yellow", 2, 3, "#aaff00"}
	Lime      = Color{"Lime", 1, 3, "#55ff00"}
	LimeLow   = Color{"LimeLow", 1, 2, "#55aa00"}
	GreenLow  = Color{"GreenLow", 0, 1, "#005500"}
	GreenMed  = Color{"GreenMed", 0, 2, "#00aa00"}
	Green     = Color{"Green", 0, 3, "#00ff00"}
)

// Palette lists all 16 colors, every red/green intensity combination once.
var Palette = []Color{
	Off, RedLow, RedMed, Red,
	OrangeLow, OrangeMed, Orange,
	AmberLow, AmberMed, Amber,
	Yellow, Lime, LimeLow,
	GreenLow, GreenMed, Green,
}

var paletteByName = make(map[string]Color, len(Palette))

func init() {
	for _, c := range Palette {
		paletteByName[c.Name] = c
	}
}

// ColorByName looks up a palette entry by name.
func ColorByName(name string) (Color, bool) {
	c, ok := paletteByName[name]
	return c, ok
}

func (c Color) valid() bool {
	p, ok := paletteByName[c.Name]
	return ok && p == c
}
