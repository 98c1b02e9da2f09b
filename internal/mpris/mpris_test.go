//go:build linux

package mpris

import (
	"testing"
	"time"

	"github.com/quarckster/go-mpris-server/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRemote struct {
	status Status
	sent   []Command
}

func (f *fakeRemote) Status() Status   { return f.status }
func (f *fakeRemote) Send(cmd Command) { f.sent = append(f.sent, cmd) }

func TestPlayerAdapter_Transport(t *testing.T) {
	remote := &fakeRemote{}
	p := &playerAdapter{remote: remote}

	require.NoError(t, p.PlayPause())
	require.NoError(t, p.Play())
	require.NoError(t, p.Pause())
	require.NoError(t, p.Stop())

	kinds := make([]CommandKind, 0, len(remote.sent))
	for _, c := range remote.sent {
		kinds = append(kinds, c.Kind)
	}
	assert.Equal(t, []CommandKind{CmdPlayPause, CmdPlay, CmdPause, CmdStop}, kinds)
}

func TestPlayerAdapter_Seek(t *testing.T) {
	remote := &fakeRemote{}
	p := &playerAdapter{remote: remote}

	require.NoError(t, p.Seek(types.Microseconds(-5_000_000)))

	require.Len(t, remote.sent, 1)
	assert.Equal(t, Command{Kind: CmdSkip, Offset: -5 * time.Second}, remote.sent[0])
}

func TestPlayerAdapter_SetPositionChecksTrackID(t *testing.T) {
	remote := &fakeRemote{status: Status{Path: "/m/a.flac", Loaded: true}}
	p := &playerAdapter{remote: remote}

	require.NoError(t, p.SetPosition(formatTrackID("/m/other.flac"), 1_000_000))
	assert.Empty(t, remote.sent)

	require.NoError(t, p.SetPosition(formatTrackID("/m/a.flac"), 1_000_000))
	require.Len(t, remote.sent, 1)
	assert.Equal(t, Command{Kind: CmdSeekTo, Offset: time.Second}, remote.sent[0])
}

func TestPlayerAdapter_RateMapsToSpeed(t *testing.T) {
	remote := &fakeRemote{status: Status{Speed: 75}}
	p := &playerAdapter{remote: remote}

	rate, err := p.Rate()
	require.NoError(t, err)
	assert.InDelta(t, 0.75, rate, 1e-9)

	require.NoError(t, p.SetRate(0.5))
	require.NoError(t, p.SetRate(9))
	require.NoError(t, p.SetRate(0))

	require.Len(t, remote.sent, 3)
	assert.Equal(t, Command{Kind: CmdSpeed, Percent: 50}, remote.sent[0])
	assert.Equal(t, Command{Kind: CmdSpeed, Percent: 200}, remote.sent[1])
	assert.Equal(t, CmdPause, remote.sent[2].Kind)
}

func TestPlayerAdapter_Volume(t *testing.T) {
	remote := &fakeRemote{status: Status{Volume: 40}}
	p := &playerAdapter{remote: remote}

	v, err := p.Volume()
	require.NoError(t, err)
	assert.InDelta(t, 0.4, v, 1e-9)

	require.NoError(t, p.SetVolume(1.7))
	assert.Equal(t, Command{Kind: CmdVolume, Percent: 100}, remote.sent[0])
}

func TestPlayerAdapter_PlaybackStatus(t *testing.T) {
	remote := &fakeRemote{}
	p := &playerAdapter{remote: remote}

	st, _ := p.PlaybackStatus()
	assert.Equal(t, types.PlaybackStatusStopped, st)

	remote.status = Status{Loaded: true}
	st, _ = p.PlaybackStatus()
	assert.Equal(t, types.PlaybackStatusPaused, st)

	remote.status.Playing = true
	st, _ = p.PlaybackStatus()
	assert.Equal(t, types.PlaybackStatusPlaying, st)
}

func TestPlayerAdapter_Metadata(t *testing.T) {
	remote := &fakeRemote{}
	p := &playerAdapter{remote: remote}

	meta, err := p.Metadata()
	require.NoError(t, err)
	assert.Empty(t, meta.Title)

	remote.status = Status{
		Path:   t.TempDir() + "/take.wav",
		Title:  "Take",
		Artist: "Me",
		Length: 3 * time.Minute,
		Loaded: true,
	}
	meta, err = p.Metadata()
	require.NoError(t, err)
	assert.Equal(t, "Take", meta.Title)
	assert.Equal(t, []string{"Me"}, meta.Artist)
	assert.Equal(t, types.Microseconds(180_000_000), meta.Length)
	assert.Equal(t, formatTrackID(remote.status.Path), string(meta.TrackId))
}

func TestRateToPercent(t *testing.T) {
	assert.Equal(t, 1, rateToPercent(0.001))
	assert.Equal(t, 100, rateToPercent(1))
	assert.Equal(t, 125, rateToPercent(1.25))
	assert.Equal(t, 200, rateToPercent(3))
}
