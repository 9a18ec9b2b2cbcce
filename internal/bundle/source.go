package bundle

import (
	"fmt"
	"io"
)

// renderSource emits the C definitions exposing data under symbol: an
// unsigned long constant holding the byte count, then an unsigned char
// array with one hex literal per input byte, in file order. The literal
// count and values are the compatibility contract with linking code.
func renderSource(w io.Writer, symbol, sizeSymbol string, data []byte) {
	fmt.Fprintf(w, "unsigned long %s = %d;\n", sizeSymbol, len(data))
	fmt.Fprintf(w, "unsigned char %s[%d] = {", symbol, len(data))
	for i, b := range data {
		if i > 0 {
			io.WriteString(w, ", ")
		}
		fmt.Fprintf(w, "0x%x", b)
	}
	io.WriteString(w, "};")
}
