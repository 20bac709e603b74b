package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateUTF8(t *testing.T) {
	testCases := []struct {
		Input    string
		MaxBytes int
		Expected string
	}{
		{"", 5, ""},
		{"Foo", 5, "Foo"},
		{"Hello", 5, "Hello"},
		{"HelloWorld", 5, "Hello"},
		{"Hello", 0, ""},
		{"1234ЛWorld", 5, "1234"},  // 2-byte rune starting at the cut point
		{"1234世界World", 5, "1234"}, // 3-byte rune starting at the cut point
		{"123世界World", 5, "123"},
		{"12世界World", 5, "12世"},
		{"世界", 6, "世界"},
		{"\xff\xfe\xfd\xfc\xfb\xfa", 4, "\xff\xfe\xfd\xfc"}, // not UTF-8, exact cut
	}

	for i, test := range testCases {
		result := TruncateUTF8(test.Input, test.MaxBytes)
		assert.Equalf(t, test.Expected, result, "truncated[%d] %q", i, test.Input)
		assert.LessOrEqual(t, len(result), test.MaxBytes)
	}
}
