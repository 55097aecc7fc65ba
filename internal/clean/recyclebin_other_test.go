//go:build !windows

package clean

import (
	"testing"

	"github.com/lakshaymaurya-felt/pccare/internal/core"
	"github.com/stretchr/testify/assert"
)

func TestRecycleBinUnsupported(t *testing.T) {
	_, err := QueryRecycleBin()
	assert.ErrorIs(t, err, core.ErrUnsupported)
	assert.ErrorIs(t, EmptyRecycleBin(), core.ErrUnsupported)
}
