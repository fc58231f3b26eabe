package explorer

import (
	"strconv"
	"strings"
)

// NodePath is the structural position of a folder: the index of each
// subfolder taken on the way down from the root. The root is the empty path.
type NodePath []int

// Child returns a new path for the i-th subfolder.
func (p NodePath) Child(i int) NodePath {
	child := make(NodePath, len(p), len(p)+1)
	copy(child, p)
	return append(child, i)
}

func (p NodePath) Depth() int {
	return len(p)
}

// Key is a comparable form of the path usable as a map key.
func (p NodePath) Key() string {
	if len(p) == 0 {
		return "/"
	}
	var sb strings.Builder
	for _, i := range p {
		sb.WriteByte('/')
		sb.WriteString(strconv.Itoa(i))
	}
	return sb.String()
}

func (p NodePath) String() string {
	return p.Key()
}
