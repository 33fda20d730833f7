package engine

import "fmt"

// IdentitySource hands out identity labels while a grid is being filled.
// NextIdentity is called once per cell, in x, y, z order.
type IdentitySource interface {
	NextIdentity() Identity
}

// IdentityFunc adapts a plain function to IdentitySource.
type IdentityFunc func() Identity

// NextIdentity calls f.
func (f IdentityFunc) NextIdentity() Identity {
	return f()
}

// SequentialIdentities returns a source producing prefix1, prefix2, ...
func SequentialIdentities(prefix string) IdentitySource {
	n := 0
	return IdentityFunc(func() Identity {
		n++
		return Identity(fmt.Sprintf("%s%d", prefix, n))
	})
}
