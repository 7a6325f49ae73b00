package color

import (
	"fmt"

	"github.com/mgutz/ansi"
)

var (
	Red    = Color("red+b")
	Yellow = Color("yellow+b")
	Blue   = Color("blue+b")
)

func Color(style string) func(...interface{}) string {
	paint := ansi.ColorFunc(style)
	return func(args ...interface{}) string {
		return paint(fmt.Sprint(args...))
	}
}
