package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tmpl, err := Parse()
	require.NoError(t, err)
	for _, name := range []string{"index.html", "add_shop.html", "login.html"} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}
