package vocabulary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	v := Default()
	require.Equal(t, 50, v.Len())

	names := v.Names()
	names[0] = "mutated"
	assert.Equal(t, "annual_report", v.Names()[0], "Names must return a copy")
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		wantErr error
	}{
		{"Valid", []string{"a", "b", "c"}, nil},
		{"Empty", nil, ErrEmpty},
		{"Duplicate", []string{"a", "b", "a"}, ErrDuplicateName},
		{"Blank", []string{"a", "  "}, ErrInvalidName},
		{"Separator", []string{"a/b"}, ErrInvalidName},
		{"Backslash", []string{`a\b`}, ErrInvalidName},
		{"Hidden", []string{".profile"}, ErrInvalidName},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, err := New(tc.input)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.input, v.Names())
		})
	}
}

func TestNew_CopiesInput(t *testing.T) {
	in := []string{"a", "b"}
	v, err := New(in)
	require.NoError(t, err)

	in[0] = "z"
	assert.Equal(t, []string{"a", "b"}, v.Names())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("SkipsCommentsAndBlanks", func(t *testing.T) {
		path := filepath.Join(dir, "names.txt")
		content := "# team docs\nalpha\n\n  beta  \n# trailing\ngamma\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		v, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"alpha", "beta", "gamma"}, v.Names())
	})

	t.Run("OnlyComments", func(t *testing.T) {
		path := filepath.Join(dir, "empty.txt")
		require.NoError(t, os.WriteFile(path, []byte("# nothing\n"), 0o644))

		_, err := Load(path)
		require.ErrorIs(t, err, ErrEmpty)
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "nope.txt"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
