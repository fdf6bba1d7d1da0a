package internal

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeq2Concat(t *testing.T) {
	assert := assert.New(t)

	a := map[string]int{"x": 1, "y": 2}
	b := map[string]int{"y": 3}

	merged := maps.Collect(IterSeq2Concat(maps.All(a), maps.All(b)))
	assert.Equal(map[string]int{"x": 1, "y": 3}, merged)

	count := 0
	for range IterSeq2Concat(maps.All(a), maps.All(b)) {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(2, count)
}
