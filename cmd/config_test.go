package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name     string
		content  string
		expected *Config
		err      string
	}{
		{
			name:     "empty file",
			content:  "",
			expected: DefaultConfig(),
		},
		{
			name:    "all fields",
			content: "log_level: debug\nprompt: \"cedar> \"\nhistory_file: /tmp/cedar_history\ndump_ast: true\ndump_format: rpn\n",
			expected: &Config{
				LogLevel:    "debug",
				Prompt:      "cedar> ",
				HistoryFile: "/tmp/cedar_history",
				DumpAST:     true,
				DumpFormat:  "rpn",
			},
		},
		{
			name:     "partial",
			content:  "dump_ast: true\n",
			expected: &Config{LogLevel: "warn", Prompt: "> ", DumpAST: true, DumpFormat: "lisp"},
		},
		{
			name:    "unknown field",
			content: "colour: red\n",
			err:     "field colour not found",
		},
		{
			name:    "bad level",
			content: "log_level: loud\n",
			err:     "log_level",
		},
		{
			name:    "bad dump format",
			content: "dump_format: xml\n",
			err:     `dump_format: unknown format "xml"`,
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "cedar.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0o600))

			config, err := LoadConfig(path)
			if tc.err != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, config)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Parallel()

	config, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestConfigLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "warn", DefaultConfig().LogLevel)
	assert.Equal(t, logrus.WarnLevel, DefaultConfig().Level())
	assert.Equal(t, logrus.DebugLevel, (&Config{LogLevel: "debug"}).Level())
}

func TestLoadConfigFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cedar.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prompt: \"$ \"\n"), 0o600))
	t.Setenv(ConfigEnv, path)

	config, err := LoadConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "$ ", config.Prompt)
}

func TestMainRejectsBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cedar.yaml")
	require.NoError(t, os.WriteFile(path, []byte("nope: 1\n"), 0o600))
	t.Setenv(ConfigEnv, path)

	stderr := new(strings.Builder)
	app := NewCedarApp(WithStdout(new(strings.Builder)), WithStderr(stderr))

	assert.Equal(t, 64, app.Main([]string{"x.ql"}))
	assert.Contains(t, stderr.String(), "ERROR config: parse")
}
