package main

import (
	"fmt"

	"github.com/xgzlucario/sortedlist"
	"github.com/xgzlucario/sortedlist/gcmp"
)

func main() {
	nums, err := sortedlist.From(gcmp.Compare[int],
		[]int{39, 24, 65, 48, 42, 75, 54, 42, 54, 45, 47, 54, 28, 46})
	if err != nil {
		panic(err)
	}

	fmt.Println("sorted:   ", nums.Render(true))
	fmt.Println("insertion:", nums.Render(false))

	min, _ := nums.Min()
	max, _ := nums.Max()
	fmt.Println("min:", min, "max:", max)

	nums.SetOrder(false)
	fmt.Println("descending:", nums)
	nums.SetOrder(true)

	nums.Remove(42)
	fmt.Println("after remove(42):", nums)

	fmt.Println("fingerprint:", nums.Fingerprint())
	fmt.Println("fingerprint string:", nums.FingerprintString())

	it := nums.Iterator()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		fmt.Print(v, " ")
	}
	fmt.Println()
}
