package workflow

// Color is one of the fixed status palette values.
type Color string

const (
	ColorGreen  Color = "green"
	ColorBlue   Color = "blue"
	ColorYellow Color = "yellow"
	ColorRed    Color = "red"
	ColorGray   Color = "gray"
	ColorPurple Color = "purple"
	ColorOrange Color = "orange"
	ColorPink   Color = "pink"
)

var validColors = map[Color]bool{
	ColorGreen:  true,
	ColorBlue:   true,
	ColorYellow: true,
	ColorRed:    true,
	ColorGray:   true,
	ColorPurple: true,
	ColorOrange: true,
	ColorPink:   true,
}

// cssClasses maps each palette color to the presentation class the host view
// layer renders with.
var cssClasses = map[Color]string{
	ColorGreen:  "bg-green-100 text-green-800",
	ColorBlue:   "bg-blue-100 text-blue-800",
	ColorYellow: "bg-yellow-100 text-yellow-800",
	ColorRed:    "bg-red-100 text-red-800",
	ColorGray:   "bg-gray-100 text-gray-800",
	ColorPurple: "bg-purple-100 text-purple-800",
	ColorOrange: "bg-orange-100 text-orange-800",
	ColorPink:   "bg-pink-100 text-pink-800",
}

func (c Color) String() string {
	return string(c)
}

func (c Color) IsValid() bool {
	return validColors[c]
}

// CSSClass returns the presentation class for the color. Unrecognized values
// fall back to the neutral gray shade.
func (c Color) CSSClass() string {
	if class, ok := cssClasses[c]; ok {
		return class
	}
	return cssClasses[ColorGray]
}
