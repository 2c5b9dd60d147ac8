package vec_test

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/adobaai/vec"
)

func ExampleArray() {
	a := vec.New(4)
	defer a.Drop()

	for i := range 3 {
		_ = a.Push(binary.LittleEndian.AppendUint32(nil, uint32(i*10)))
	}

	out := make([]byte, 4)
	_ = a.Get(1, out)
	fmt.Println(binary.LittleEndian.Uint32(out), a.Len(), a.Cap())

	for a.Pop(out) == nil {
		fmt.Println(binary.LittleEndian.Uint32(out))
	}
	fmt.Println(a.Len(), a.Cap())

	// Output:
	// 10 3 16
	// 20
	// 10
	// 0
	// 0 16
}

func ExampleWith() {
	err := vec.With(8, func(a *vec.Array) error {
		return a.Get(0, make([]byte, 8))
	})
	fmt.Println(errors.Is(err, vec.ErrIndexOutOfBounds))

	// Output:
	// true
}
