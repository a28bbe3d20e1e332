package audio

import (
	"math"
	"testing"
	"time"

	"github.com/plus3/chomp/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryEventHasACue(t *testing.T) {
	for _, k := range []game.EventKind{
		game.EventCollected, game.EventTeleported, game.EventLevelComplete, game.EventCaptured, game.EventWon,
	} {
		c, ok := CueFor(game.Event{Kind: k})
		require.True(t, ok, k.String())
		assert.NotEmpty(t, cueNotes[c], k.String())
	}
}

func TestStreamerIsFinite(t *testing.T) {
	s, err := Streamer(CueCaptured)
	require.NoError(t, err)

	want := 0
	for _, n := range cueNotes[CueCaptured] {
		want += sampleRate.N(n.dur)
	}

	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for {
		n, ok := s.Stream(buf)
		for i := range n {
			peak = max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok || n == 0 {
			break
		}
	}
	assert.Equal(t, want, total)
	assert.LessOrEqual(t, peak, 0.21)
	assert.Less(t, time.Duration(total)*time.Second/time.Duration(sampleRate), time.Second)
}

func TestUninitializedPlayerIsSilent(t *testing.T) {
	p := NewPlayer()
	p.Handle(game.Event{Kind: game.EventWon})
	p.Close()
}
