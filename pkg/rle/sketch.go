package rle

import (
	"io"
	"text/template"

	"github.com/samber/lo"
)

// sketchLineLen keeps string literals below what the Arduino toolchain
// accepts on one line.
const sketchLineLen = 1000

var sketch = template.Must(template.New("sketch").Parse(`// {{.Stats}}
const char {{.Name}}Compressed[] PROGMEM ={{range .Lines}}
  "{{.}}"{{end}};
const int {{.Name}}CompressedLen = {{.Len}};
// zero tail length in hex characters
const long {{.Name}}ZeroTailLen = {{.Tail}};
`))

// WriteSketch writes f as C declarations for the firmware sources.
func WriteSketch(w io.Writer, f *Firmware, name string) error {
	return sketch.Execute(w, struct {
		Name  string
		Lines []string
		Len   int
		Tail  int
		Stats Stats
	}{
		Name:  name,
		Lines: lo.ChunkString(f.Head, sketchLineLen),
		Len:   len(f.Head),
		Tail:  f.ZeroTail * 2,
		Stats: f.Stats,
	})
}
