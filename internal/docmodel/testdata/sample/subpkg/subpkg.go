// Package subpkg exercises nested module naming.
package subpkg

// Message exposes a sample constant.
const Message = "hello from subpkg"

// Echo repeats its input.
//
// Args:
//	text: the text to repeat
func Echo(text string) string {
	return text
}
