package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-c", "tweetheure.yaml", "-b", "json"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-c", "tweetheure.yaml"},
		},
		{
			name:         "flag with equals",
			args:         []string{"-config=alt.json", "-b", "sql"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-config=alt.json"},
		},
		{
			name:         "unknown flags and positionals ignored",
			args:         []string{"-x", "1", "-y=2", "positional"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "flag without value at end is kept",
			args:         []string{"-b"},
			allowedFlags: []string{"-b"},
			want:         []string{"-b"},
		},
		{
			name:         "next dash token is not a value",
			args:         []string{"-d", "-j", "data.json"},
			allowedFlags: []string{"-d", "-j"},
			want:         []string{"-d", "-j", "data.json"},
		},
		{
			name:         "several allowed flags keep order",
			args:         []string{"-b", "json", "-c", "conf.json", "-w", "500"},
			allowedFlags: []string{"-b", "-w"},
			want:         []string{"-b", "json", "-w", "500"},
		},
		{
			name:         "empty args",
			args:         []string{},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("short", func(t *testing.T) {
		os.Args = []string{"tweetheure", "-c", "/etc/tweetheure.yaml"}
		assert.Equal(t, "/etc/tweetheure.yaml", ConfigFileFlag())
	})

	t.Run("long", func(t *testing.T) {
		os.Args = []string{"tweetheure", "-config", "/etc/tweetheure.json"}
		assert.Equal(t, "/etc/tweetheure.json", ConfigFileFlag())
	})

	t.Run("absent", func(t *testing.T) {
		os.Args = []string{"tweetheure", "-b", "sql"}
		assert.Empty(t, ConfigFileFlag())
	})

	t.Run("last wins", func(t *testing.T) {
		os.Args = []string{"tweetheure", "-c", "1.json", "-config", "2.json"}
		assert.Equal(t, "2.json", ConfigFileFlag())
	})
}
