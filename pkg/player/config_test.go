package player

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConfigLoadFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "player-conf")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	fn := filepath.Join(dir, "player.yaml")
	require.NoError(t, ioutil.WriteFile(fn, []byte(`
device: /dev/ttyUSB0
baud_rate: 9600
volume: 20
timeout: 500ms
no_checksum: true
`), 0644))

	conf := Config{Volume: -1, RefreshInterval: 2 * time.Second}
	require.NoError(t, conf.LoadFile(fn))
	require.Equal(t, "/dev/ttyUSB0", conf.Device)
	require.Equal(t, 9600, conf.BaudRate)
	require.Equal(t, 20, conf.Volume)
	require.Equal(t, 500*time.Millisecond, conf.Timeout)
	require.True(t, conf.NoChecksum)
	// untouched fields keep their defaults.
	require.Equal(t, 2*time.Second, conf.RefreshInterval)
}

func TestConfigApply(t *testing.T) {
	conf := Config{Volume: 12, Timeout: 300 * time.Millisecond, NoChecksum: true}
	ctl := NewController(nil, newFakeDevice())
	conf.apply(ctl)
	require.Equal(t, 12, ctl.InitialVolume)
	require.Equal(t, 300*time.Millisecond, ctl.engine.Timeout)
	require.True(t, ctl.engine.NoChecksum)
}
