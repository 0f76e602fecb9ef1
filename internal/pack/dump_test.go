package pack

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDumpIncludesEveryRecordAndCounts(t *testing.T) {
	records := []uint32{
		Encode(1, true, false, 0),
		Encode(2, false, true, 5),
	}

	var buf bytes.Buffer
	Dump(&buf, records)

	out := buf.String()
	require.Contains(t, out, "2 entries")
	require.Contains(t, out, "8 bytes")
	require.Equal(t, 4, len(strings.Split(strings.TrimRight(out, "\n"), "\n")))
}
