package replay

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/younwookim/ranger/internal/ecs"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// Load reads replay data from a file
func Load(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open replay: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Decode(file)
}

// Decode reads msgpack encoded replay data
func Decode(r io.Reader) (*ReplayData, error) {
	var data ReplayData
	if err := msgpack.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Version != Version {
		return nil, fmt.Errorf("unsupported replay version %q", data.Version)
	}
	return &data, nil
}

// Encode writes replay data as msgpack
func Encode(w io.Writer, data ReplayData) error {
	if err := msgpack.NewEncoder(w).Encode(&data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// Next returns the input for the current frame and advances
func (r *Replayer) Next() (ecs.InputState, bool) {
	if r.frame >= len(r.data.Frames) {
		return ecs.InputState{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return ecs.InputState{
		Left:   fi.L,
		Right:  fi.R,
		Up:     fi.U,
		Down:   fi.D,
		Shoot:  fi.S,
		Cursor: mgl32.Vec3{fi.CX, fi.CY, 0},
	}, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Done reports whether every frame has been played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Arena returns the arena the replay was recorded in
func (r *Replayer) Arena() string {
	return r.data.Arena
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data for testing (idle player)
func CreateTestReplayData(frames int, cursorX, cursorY float32) ReplayData {
	data := ReplayData{
		Version:   Version,
		Seed:      12345,
		Arena:     "test",
		TPS:       60,
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := range frames {
		data.Frames[i] = FrameInput{
			F:  i,
			CX: cursorX,
			CY: cursorY,
		}
	}

	return data
}
