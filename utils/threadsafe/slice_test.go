package threadsafe

import (
	"sync"
	"testing"
)

func TestSliceConcurrentAppend(t *testing.T) {
	const elLen = 1000
	slice := NewSlice[int]()
	var wg sync.WaitGroup
	for i := 0; i < elLen; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			slice.Append(i)
		}()
	}
	wg.Wait()

	if slice.Len() != elLen {
		t.Errorf("Expected %d elements, got %d", elLen, slice.Len())
	}
}

func TestSliceCopyItems(t *testing.T) {
	slice := NewSliceWithCapacity[string](2)
	slice.Append("a")
	slice.Append("b")

	items := slice.CopyItems()
	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(items))
	}

	// mutating the copy must not affect the slice
	items[0] = "c"
	if val, ok := slice.At(0); !ok || val != "a" {
		t.Errorf("Expected a, got %q", val)
	}
}

func TestSliceSort(t *testing.T) {
	slice := NewSlice[int]()
	for _, v := range []int{3, 1, 2} {
		slice.Append(v)
	}
	slice.Sort(func(a, b int) bool { return a < b })

	for i, expected := range []int{1, 2, 3} {
		if val, _ := slice.At(i); val != expected {
			t.Errorf("Expected %d at index %d, got %d", expected, i, val)
		}
	}
}

func TestSliceClear(t *testing.T) {
	slice := NewSlice[int]()
	slice.Append(1)
	slice.Clear()
	if slice.Len() != 0 {
		t.Errorf("Expected an empty slice, got %d elements", slice.Len())
	}
}
