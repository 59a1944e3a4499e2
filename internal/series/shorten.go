package series

const (
	// MaxNameLen is the nominal width of a name in the report.
	MaxNameLen = 30

	shortenAbove = 27
	headLen      = 20
	tailLen      = 9
	ellipsis     = "..."
)

// Shorten abbreviates long names to the first 20 and the last 9 characters.
// NOTE : maxLen is not used for the cut, any name longer than 27 characters ends up 32 characters long.
func Shorten(name string, maxLen int) string {
	rr := []rune(name)
	if len(rr) <= shortenAbove {
		return name
	}
	return string(rr[:headLen]) + ellipsis + string(rr[len(rr)-tailLen:])
}
