package pack

import (
	"bytes"
	"encoding/binary"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteIsLittleEndianAndUnframed(t *testing.T) {
	records := []uint32{0x01020304, 0xffeeddcc}
	var buf bytes.Buffer

	n, err := Write(&buf, records)
	require.NoError(t, err)
	require.Equal(t, int64(8), n)
	require.Len(t, buf.Bytes(), 8)

	require.Equal(t, records[0], binary.LittleEndian.Uint32(buf.Bytes()[0:4]))
	require.Equal(t, records[1], binary.LittleEndian.Uint32(buf.Bytes()[4:8]))
}

func TestSaveWritesReadableFile(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/out.bin"
	records := []uint32{1, 2, 3}

	n, err := Save(path, records)
	require.NoError(t, err)
	require.Equal(t, int64(12), n)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, data, 12)
}

func TestSaveFailsOnUnwritableDirectory(t *testing.T) {
	_, err := Save("/nonexistent-dir-xyz/out.bin", []uint32{1})
	require.Error(t, err)
}
