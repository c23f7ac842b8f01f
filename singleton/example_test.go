package singleton_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/gopatterns/singleton"
)

// ExampleLazy reproduces the classic check: two accesses, one construction,
// same reference.
func ExampleLazy() {
	slot := singleton.NewLazy(os.Stdout)

	s1 := slot.Instance()
	s1.DisplayMessage()

	// A second access constructs nothing and returns the same object.
	s2 := slot.Instance()
	if s1 == s2 {
		fmt.Println("Both instances are the same.")
	}

	// Output:
	// Singleton instance created.
	// This is the Singleton instance.
	// Both instances are the same.
}

// ExampleMutexLazy shows the mutex-serialized variant.
func ExampleMutexLazy() {
	slot := singleton.NewMutexLazy(os.Stdout)
	slot.Instance().DisplayMessage()

	// Output:
	// Thread-safe Singleton instance created.
	// This is the thread-safe Singleton instance.
}
