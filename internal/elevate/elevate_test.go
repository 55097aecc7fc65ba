package elevate

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSystem_RequiredMatchesPlatform(t *testing.T) {
	assert.Equal(t, runtime.GOOS == "windows", System{}.Required())
}
