package syntax

import (
	"io"

	"gopkg.in/yaml.v3"
)

// FprintYAML writes a YAML representation of n to w, in the same shape
// as FprintJSON.
func FprintYAML(w io.Writer, n *Node, trivia bool) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toDump(n, trivia)); err != nil {
		return err
	}
	return enc.Close()
}
