package replay

// Version is written into every replay file
const Version = "2"

// FrameInput records input state for a single tick
type FrameInput struct {
	F  int     `msgpack:"f"`           // Frame number
	L  bool    `msgpack:"l,omitempty"` // Left
	R  bool    `msgpack:"r,omitempty"` // Right
	U  bool    `msgpack:"u,omitempty"` // Up
	D  bool    `msgpack:"d,omitempty"` // Down
	S  bool    `msgpack:"s,omitempty"` // Shoot
	CX float32 `msgpack:"cx"`          // Cursor X (world)
	CY float32 `msgpack:"cy"`          // Cursor Y (world)
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `msgpack:"version"`
	Seed      int64        `msgpack:"seed"`
	Arena     string       `msgpack:"arena"`
	TPS       int          `msgpack:"tps"`
	StartTime string       `msgpack:"startTime"`
	Frames    []FrameInput `msgpack:"frames"`
}
