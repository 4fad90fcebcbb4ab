package localsearch

import "strings"

// Path is an ordered sequence of vertex IDs. A nil Path means "no path".
//
// Every method that derives a new Path copies: Prefix and With never share a
// backing array with the receiver, so a candidate built from the current path
// can never clobber it.
type Path []string

// Len returns the number of vertices in p.
func (p Path) Len() int { return len(p) }

// First returns p[0], or "" for an empty path.
func (p Path) First() string {
	if len(p) == 0 {
		return ""
	}
	return p[0]
}

// Last returns the final vertex, or "" for an empty path.
func (p Path) Last() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Contains reports whether id occurs anywhere in p.
func (p Path) Contains(id string) bool {
	for _, v := range p {
		if v == id {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of p (nil stays nil).
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	c := make(Path, len(p))
	copy(c, p)
	return c
}

// Prefix returns a copy of p[:n].
func (p Path) Prefix(n int) Path {
	c := make(Path, n, n+4)
	copy(c, p[:n])
	return c
}

// With returns a copy of p with ids appended.
func (p Path) With(ids ...string) Path {
	c := make(Path, len(p), len(p)+len(ids))
	copy(c, p)
	return append(c, ids...)
}

// Equal reports element-wise equality.
func (p Path) Equal(q Path) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// String renders p as "A -> B -> C".
func (p Path) String() string {
	if len(p) == 0 {
		return "<no path>"
	}
	return strings.Join(p, " -> ")
}
