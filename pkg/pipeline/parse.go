package pipeline

import (
	"bytes"
	"io"
	"os"

	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/roomgraph"
)

// MaxGraphBytes bounds the size of a room graph document.
const MaxGraphBytes = 1 << 20

// Parse reads, decodes and validates a room graph.
func Parse(r io.Reader) (*roomgraph.Graph, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxGraphBytes+1))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read room graph")
	}
	if len(data) > MaxGraphBytes {
		return nil, errors.New(errors.ErrCodeInvalidInput, "room graph exceeds %d bytes", MaxGraphBytes)
	}
	return roomgraph.Read(bytes.NewReader(data))
}

// ParseFile parses the room graph at path. A path of "-" reads standard input.
func ParseFile(path string) (*roomgraph.Graph, error) {
	if path == "-" {
		return Parse(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeNotFound, err, "room graph %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open room graph %s", path)
	}
	defer f.Close()
	return Parse(f)
}
