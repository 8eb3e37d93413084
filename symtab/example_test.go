package symtab_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/densevec/proxy"
	"github.com/katalvlaran/densevec/symtab"
	"github.com/katalvlaran/densevec/vector"
)

// ExampleSymmetric demonstrates the live restriction predicate: the same
// proxy flips behavior when the owning table freezes its slot.
func ExampleSymmetric() {
	// A 2×2 table of 3-element cells; (0,1) and (1,0) share one cell.
	s, _ := symtab.NewSymmetric(2, 3)
	p, _ := s.At(0, 1)

	// Unrestricted: the cell behaves like a plain dense vector.
	_ = p.Set(0, 1)
	_ = p.Set(1, 2)
	sum, _ := vector.Sum(p)
	fmt.Println("sum =", sum)

	// Freeze the slot through the mirrored coordinate.
	_ = s.Freeze(1, 0)
	err := p.Scale(10)
	fmt.Println("restricted:", errors.Is(err, proxy.ErrRestrictedAccess))

	// Read-only queries stay available, and unfreezing revives the proxy.
	fmt.Println("size =", p.Size())
	_ = s.Unfreeze(0, 1)
	fmt.Println("scale err after unfreeze:", p.Scale(10))

	// Output:
	// sum = 3
	// restricted: true
	// size = 3
	// scale err after unfreeze: <nil>
}
