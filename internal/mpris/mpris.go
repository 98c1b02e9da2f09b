//go:build linux

package mpris

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"
)

// Adapter connects the practice session to MPRIS over D-Bus.
type Adapter struct {
	server *server.Server
}

// New creates and starts a new MPRIS adapter.
func New(remote Remote) (*Adapter, error) {
	rootAdapter := &rootAdapter{}
	playerAdapter := &playerAdapter{remote: remote}

	a := &Adapter{
		server: server.NewServer("practicehard", rootAdapter, playerAdapter),
	}

	// Start the server in background
	go func() {
		_ = a.server.Listen()
	}()

	return a, nil
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil // Not supported
}

func (r *rootAdapter) Quit() error {
	return nil // Not supported - app manages its own lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "Practice Hard", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{
		"audio/mpeg", "audio/flac", "audio/wav", "audio/ogg", "audio/opus", "audio/mp4",
	}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter and LoopStatus.
type playerAdapter struct {
	remote Remote
}

func (p *playerAdapter) Next() error {
	return nil // single-track player
}

func (p *playerAdapter) Previous() error {
	return nil
}

func (p *playerAdapter) Pause() error {
	p.remote.Send(Command{Kind: CmdPause})
	return nil
}

func (p *playerAdapter) PlayPause() error {
	p.remote.Send(Command{Kind: CmdPlayPause})
	return nil
}

func (p *playerAdapter) Stop() error {
	p.remote.Send(Command{Kind: CmdStop})
	return nil
}

func (p *playerAdapter) Play() error {
	p.remote.Send(Command{Kind: CmdPlay})
	return nil
}

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	p.remote.Send(Command{Kind: CmdSkip, Offset: time.Duration(offset) * time.Microsecond})
	return nil
}

func (p *playerAdapter) SetPosition(trackID string, position types.Microseconds) error {
	st := p.remote.Status()
	// stale requests for a previous track are ignored per MPRIS
	if !st.Loaded || trackID != formatTrackID(st.Path) {
		return nil
	}
	p.remote.Send(Command{Kind: CmdSeekTo, Offset: time.Duration(position) * time.Microsecond})
	return nil
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil // Not supported
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	st := p.remote.Status()
	switch {
	case !st.Loaded:
		return types.PlaybackStatusStopped, nil
	case st.Playing:
		return types.PlaybackStatusPlaying, nil
	default:
		return types.PlaybackStatusPaused, nil
	}
}

func (p *playerAdapter) Rate() (float64, error) {
	return float64(p.remote.Status().Speed) / 100, nil
}

func (p *playerAdapter) SetRate(rate float64) error {
	if rate <= 0 {
		// MPRIS says a zero rate should pause
		p.remote.Send(Command{Kind: CmdPause})
		return nil
	}
	p.remote.Send(Command{Kind: CmdSpeed, Percent: rateToPercent(rate)})
	return nil
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	st := p.remote.Status()
	if !st.Loaded {
		return types.Metadata{}, nil
	}

	meta := types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(st.Path)),
		Length:  types.Microseconds(st.Length.Microseconds()),
		Title:   st.Title,
		Album:   st.Album,
	}
	if st.Artist != "" {
		meta.Artist = []string{st.Artist}
	}

	if artPath := ArtPath(st.Path); artPath != "" {
		meta.ArtUrl = "file://" + artPath
	}

	return meta, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return float64(p.remote.Status().Volume) / 100, nil
}

func (p *playerAdapter) SetVolume(v float64) error {
	p.remote.Send(Command{Kind: CmdVolume, Percent: volumeToPercent(v)})
	return nil
}

func (p *playerAdapter) Position() (int64, error) {
	return p.remote.Status().Position.Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return MinRate, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return MaxRate, nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return p.remote.Status().Loaded, nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return p.remote.Status().Loaded, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return p.remote.Status().Length > 0, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

// LoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
// Both the full track and a loop range replay when they reach the end.
func (p *playerAdapter) LoopStatus() (types.LoopStatus, error) {
	if !p.remote.Status().Loaded {
		return types.LoopStatusNone, nil
	}
	return types.LoopStatusTrack, nil
}

// SetLoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
// Looping is always on, so requests are accepted and ignored.
func (p *playerAdapter) SetLoopStatus(_ types.LoopStatus) error {
	return nil
}

func formatTrackID(path string) string {
	h := fnv.New64a()
	h.Write([]byte(path))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
