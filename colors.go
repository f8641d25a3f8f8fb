package bintree

// Palette of the diagnostic dump. Colors are Graphviz color strings.
const (
	NodeColor            = "#5e69db"
	NodeOutlineColor     = "#000000"
	FreeNodeOutlineColor = "#10c929"
	NextConnectionColor  = "#10c94b" // parent to child
	PrevConnectionColor  = "#c95410" // child to parent
	BackgroundColor      = "#393f87"
	HeaderNodeColor      = "#dbd802" // currently unused
)
