package gcmp

import (
	"cmp"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	assert := assert.New(t)

	const num = 10 * 10000
	testData := make([]int64, 0, num)
	source := rand.NewSource(42)

	// gen random data.
	for i := 0; i < num; i++ {
		testData = append(testData, source.Int63())
	}

	// Test
	for i := 1; i < len(testData); i++ {
		a := testData[i-1]
		b := testData[i]

		assert.Equal(cmp.Compare(a, b), Compare(a, b))
		assert.Equal(cmp.Compare(a, b) < 0, Less(a, b))
		assert.Equal(cmp.Compare(a, b) <= 0, LessEqual(a, b))
		assert.Equal(a == b, Equal(a, b))
		assert.Equal(cmp.Compare(a, b) >= 0, GreatEqual(a, b))
		assert.Equal(cmp.Compare(a, b) > 0, Great(a, b))

		_min := Min(a, b)
		assert.True(LessEqual(_min, a))
		assert.True(LessEqual(_min, b))

		_max := Max(a, b)
		assert.True(GreatEqual(_max, a))
		assert.True(GreatEqual(_max, b))

		target := int64(1 << 32)
		assert.Equal(a <= target && target <= b, Between(target, a, b))
	}
}

func TestReverse(t *testing.T) {
	assert := assert.New(t)

	rev := Reverse(Compare[string])
	assert.True(rev("a", "b") > 0)
	assert.True(rev("b", "a") < 0)
	assert.Equal(0, rev("a", "a"))
}
