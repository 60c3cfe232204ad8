package project

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestName(t *testing.T) {
	tests := []struct {
		name   string
		module string
		want   string
	}{
		{name: "bare", module: "apprepl", want: "apprepl"},
		{name: "hosted", module: "github.com/acme/shop", want: "shop"},
		{name: "major version", module: "github.com/acme/shop/v2", want: "shop"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, "/src/project/go.mod", []byte("module "+tt.module+"\n\ngo 1.24\n"), 0o644))
			require.NoError(t, fs.MkdirAll("/src/project/internal/deep", 0o755))

			got, err := Name(fs, "/src/project/internal/deep")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestName_NoModule(t *testing.T) {
	_, err := Name(afero.NewMemMapFs(), "/src/elsewhere")
	assert.ErrorIs(t, err, ErrNoModule)
}

func TestName_NoModulePath(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/p/go.mod", []byte("go 1.24\n"), 0o644))

	_, err := Name(fs, "/p")
	assert.ErrorContains(t, err, "declares no module path")
}

func TestFindGoMod_Nearest(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/a/go.mod", []byte("module outer\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/a/b/go.mod", []byte("module inner\n"), 0o644))

	got, err := FindGoMod(fs, "/a/b/c")
	require.NoError(t, err)
	assert.Equal(t, "/a/b/go.mod", got)
}
