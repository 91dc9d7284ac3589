package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_OnContains_ShouldFindOnlyPresentItems(t *testing.T) {
	items := []string{"RUB", "USD"}

	assert.True(t, Contains(items, "USD"))
	assert.False(t, Contains(items, "usd"))
	assert.False(t, Contains([]string(nil), "USD"))
}
