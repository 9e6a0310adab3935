package backends

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypes(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []Type{TypeQuantify, TypeQCoDeS, TypeCoreTools, TypeFileBase}, Types())
}

func TestTypeValid(t *testing.T) {
	t.Parallel()
	for _, typ := range Types() {
		assert.True(t, typ.Valid(), "type %s should be valid", typ)
	}
	assert.False(t, Type("labber").Valid())
	assert.False(t, Type("").Valid())
}

func TestTypeStringValues(t *testing.T) {
	t.Parallel()
	// persisted values, must not drift
	assert.Equal(t, "quantify", TypeQuantify.String())
	assert.Equal(t, "qCoDeS", TypeQCoDeS.String())
	assert.Equal(t, "Core-tools", TypeCoreTools.String())
	assert.Equal(t, "fileBase", TypeFileBase.String())
}
