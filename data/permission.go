package data

import "fmt"

// Permission is a set over the three classic Unix permission bits.
// The value doubles as its octal form: read=4, write=2, execute=1.
// A Permission never has bits outside PermAll set.
type Permission uint8

const (
	PermExecute Permission = 1 << iota // x
	PermWrite                          // w
	PermRead                           // r

	PermNone        Permission = 0
	PermReadWrite              = PermRead | PermWrite
	PermReadExecute            = PermRead | PermExecute
	PermAll                    = PermRead | PermWrite | PermExecute
)

// NewPermission returns a set containing exactly the given bits.
// Any combination is legal, including none at all.
func NewPermission(bits ...Permission) Permission {
	var p Permission
	for _, bit := range bits {
		p |= bit
	}

	return p & PermAll
}

// PermissionFromOctal converts a single octal digit (0-7) into a Permission.
func PermissionFromOctal(value uint8) (Permission, error) {
	if value > uint8(PermAll) {
		return PermNone, InvalidArgument("permission %o out of range", value)
	}

	return Permission(value), nil
}

// Contains reports whether every bit in bit is present in p. An empty or
// out-of-range bit names nothing and is never contained.
func (p Permission) Contains(bit Permission) bool {
	bit &= PermAll
	return bit != 0 && p&bit == bit
}

// Set returns a copy of p with the given bits added.
func (p Permission) Set(bits Permission) Permission {
	return (p | bits) & PermAll
}

// Clear returns a copy of p with the given bits removed.
func (p Permission) Clear(bits Permission) Permission {
	return p &^ bits & PermAll
}

func (p Permission) CanRead() bool    { return p&PermRead != 0 }
func (p Permission) CanWrite() bool   { return p&PermWrite != 0 }
func (p Permission) CanExecute() bool { return p&PermExecute != 0 }

// Octal returns the Unix octal digit for p, always within [0,7].
func (p Permission) Octal() uint8 {
	return uint8(p & PermAll)
}

// Symbolic renders p in the fixed-position "rwx" form, e.g. "r-x".
func (p Permission) Symbolic() string {
	const rwx = "rwx"
	buf := [3]byte{'-', '-', '-'}

	for i := range rwx {
		if p&(1<<uint(len(rwx)-1-i)) != 0 {
			buf[i] = rwx[i]
		}
	}

	return string(buf[:])
}

func (p Permission) String() string {
	return p.Symbolic()
}

// GoString makes permissions readable in test failures and %#v output.
func (p Permission) GoString() string {
	return fmt.Sprintf("data.Permission(%s)", p.Symbolic())
}
