package console

// SGR escape sequences used by the renderer.
const (
	ansiNormal  = "\033[0m"
	ansiRed     = "\033[31m"
	ansiGreen   = "\033[32m"
	ansiYellow  = "\033[33m"
	ansiBlue    = "\033[34m"
	ansiMagenta = "\033[35m"
	ansiCyan    = "\033[36m"
)

// paint wraps s in code when colors are on.
func (c *Console) paint(code, s string) string {
	if !c.color {
		return s
	}
	return code + s + ansiNormal
}

// raw emits code only when colors are on. Used to color user input.
func (c *Console) raw(code string) string {
	if !c.color {
		return ""
	}
	return code
}
