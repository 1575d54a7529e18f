package csvexport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeConRegistros(t *testing.T) {
	out, err := Encode(
		[]string{"id", "title"},
		[][]string{{"1", "Backend Go"}, {"2", "Data, y más"}},
	)
	require.NoError(t, err)
	assert.Equal(t, "id,title\n1,Backend Go\n2,\"Data, y más\"\n", string(out))
}

func TestEncodeSinRegistrosDevuelveVacio(t *testing.T) {
	out, err := Encode([]string{"id", "title"}, nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}
