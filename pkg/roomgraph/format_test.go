package roomgraph

import (
	"bytes"
	"go/format"
	"os"
	"testing"
)

func TestSourceFormatted(t *testing.T) {
	for _, name := range []string{"types.go"} {
		src, err := os.ReadFile(name)
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		got, err := format.Source(src)
		if err != nil {
			t.Fatalf("format %s: %v", name, err)
		}
		if !bytes.Equal(got, src) {
			t.Errorf("%s is not gofmt-clean", name)
		}
	}
}
