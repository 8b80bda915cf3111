package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	code, msg := StatusOf(fmt.Errorf("create shop: %w", ErrBadRequest("name is required")))
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "name is required", msg)

	code, msg = StatusOf(ErrNotFound("shop not found"))
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "shop not found", msg)

	code, msg = StatusOf(fmt.Errorf("pq: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "internal server error", msg)
}
