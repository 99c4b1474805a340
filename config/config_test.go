package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labgw/astmgw/serial"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 115200, cfg.BaudRate)
	assert.Equal(t, 6, cfg.MaxRetransmissions)
	assert.Equal(t, 240, cfg.MaxFramePayload)
}

func TestFromFileMissingReturnsDefault(t *testing.T) {
	cfg, err := FromFile(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestFromFileOverridesOnlyPresentKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gw.yaml")
	require.NoError(t, os.WriteFile(path, []byte("baud_rate: 9600\nparity: even\n"), 0o600))

	cfg, err := FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 9600, cfg.BaudRate)
	assert.Equal(t, serial.ParityEven, cfg.Parity)
	assert.Equal(t, Default().MaxRetransmissions, cfg.MaxRetransmissions)
}

func TestFromFlagsOverridesBase(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	resolve := FromFlags(fs)
	require.NoError(t, fs.Parse([]string{"--baud-rate=57600", "--max-retransmissions=3"}))

	cfg := resolve(Default())
	assert.Equal(t, 57600, cfg.BaudRate)
	assert.Equal(t, 3, cfg.MaxRetransmissions)
}

// TestFromFlagsLeavesUnsetFlagsToBase pins the file-then-flags
// precedence: a flag the caller never set must not clobber a value the
// config file supplied, even though the flag's default differs from it.
func TestFromFlagsLeavesUnsetFlagsToBase(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	resolve := FromFlags(fs)
	require.NoError(t, fs.Parse([]string{"--max-retransmissions=3"}))

	base := Default()
	base.BaudRate = 9600 // as if read from a config file

	cfg := resolve(base)
	assert.Equal(t, 9600, cfg.BaudRate)
	assert.Equal(t, 3, cfg.MaxRetransmissions)
}
