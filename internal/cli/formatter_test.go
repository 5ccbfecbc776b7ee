package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/dirsize/internal/dirsize"
)

func TestPrintReport(t *testing.T) {
	tests := []struct {
		name   string
		result *dirsize.Result
		want   string
	}{
		{
			name: "sorted by path",
			result: &dirsize.Result{
				FileSizes: map[string]int64{"b/z": 5, "a/y": 20, "a/x": 10},
				TotalSize: 35,
			},
			want: "a/x: 10\na/y: 20\nb/z: 5\nTotal: 35\n",
		},
		{
			name:   "empty",
			result: &dirsize.Result{FileSizes: map[string]int64{}},
			want:   "Total: 0\n",
		},
		{
			name: "byte order",
			result: &dirsize.Result{
				FileSizes: map[string]int64{"a": 1, "B": 2, "a.b": 3, "a/b": 4},
				TotalSize: 10,
			},
			want: "B: 2\na: 1\na.b: 3\na/b: 4\nTotal: 10\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			require.NoError(t, PrintReport(tt.result, &buf))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
