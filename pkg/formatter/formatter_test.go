package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeMarkdownV2(t *testing.T) {
	assert.Equal(t, `Menu du jour`, EscapeMarkdownV2("Menu du jour"))
	assert.Equal(t, `plat \(du jour\)\!`, EscapeMarkdownV2("plat (du jour)!"))
	assert.Equal(t, `3\.50€`, EscapeMarkdownV2("3.50€"))
}
