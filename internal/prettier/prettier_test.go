package prettier

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultCmd(t *testing.T) {
	f := New("")
	assert.Equal(t, []string{"npx", "prettier"}, f.args)

	f = New("prettier --cache")
	assert.Equal(t, []string{"prettier", "--cache"}, f.args)
}

func TestFormat_MissingBinary(t *testing.T) {
	f := New("definitely-not-a-real-formatter-binary")
	_, err := f.Format(context.Background(), "const x = 1;", "naces.ts", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "naces.ts")
}

func TestFormat_PipesThroughCommand(t *testing.T) {
	// sh -c cat treats the trailing flags as positional parameters, so
	// this echoes stdin back and exercises the full pipe.
	f := New("sh -c cat")
	out, err := f.Format(context.Background(), "const x = 1;\n", "naces.ts", "")
	require.NoError(t, err)
	assert.Equal(t, "const x = 1;\n", out)
}
