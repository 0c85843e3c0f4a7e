package genconfig

import (
	"testing"

	"github.com/arthur-debert/svgset/pkg/config"
	"github.com/arthur-debert/svgset/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenConfig(t *testing.T) {
	t.Run("output to stdout", func(t *testing.T) {
		fs := filesystem.NewMemory()

		result, err := GenConfig(GenConfigOptions{FileSystem: fs})
		require.NoError(t, err)

		assert.Contains(t, result.ConfigContent, "[source]")
		assert.Contains(t, result.ConfigContent, "[naming]")
		assert.Contains(t, result.ConfigContent, "[optimize]")
		assert.Contains(t, result.ConfigContent, "[output]")
		assert.Empty(t, result.FilesWritten)

		_, err = fs.Stat(config.DefaultConfigFile)
		assert.Error(t, err)
	})

	t.Run("write file", func(t *testing.T) {
		fs := filesystem.NewMemory()
		cfg := config.Default()
		cfg.Naming.Prefix = "mdi"

		result, err := GenConfig(GenConfigOptions{Config: cfg, Write: true, Path: "/svgset.toml", FileSystem: fs})
		require.NoError(t, err)

		assert.Equal(t, []string{"/svgset.toml"}, result.FilesWritten)
		data, err := fs.ReadFile("/svgset.toml")
		require.NoError(t, err)
		assert.Equal(t, result.ConfigContent, string(data))
		assert.Contains(t, string(data), "mdi")
	})

	t.Run("existing file is kept", func(t *testing.T) {
		fs := filesystem.NewMemory()
		require.NoError(t, fs.WriteFile("/svgset.toml", []byte("# mine\n"), 0644))

		result, err := GenConfig(GenConfigOptions{Write: true, Path: "/svgset.toml", FileSystem: fs})
		require.NoError(t, err)

		assert.Empty(t, result.FilesWritten)
		data, err := fs.ReadFile("/svgset.toml")
		require.NoError(t, err)
		assert.Equal(t, "# mine\n", string(data))
	})
}
