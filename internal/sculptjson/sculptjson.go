package sculptjson

import (
	"encoding/json"
	"os"
)

// Channels names the color channel of every coordinate
type Channels struct {
	X string `json:"x"`
	Y string `json:"y"`
	Z string `json:"z"`
}

// SculptJSON describes a written sculpt map. It carries what is needed to size
// and place the sculpted prim.
type SculptJSON struct {
	Region       string   `json:"region"`
	Image        string   `json:"image"`
	Size         int      `json:"size"`
	SourceWidth  int      `json:"sourceWidth"`
	SourceHeight int      `json:"sourceHeight"`
	Scale        float64  `json:"scale"`
	Offset       float64  `json:"offset"`
	ZOffset      float64  `json:"zOffset"`
	ZHeight      float64  `json:"zHeight"`
	FlipY        bool     `json:"flipY"`
	Channels     Channels `json:"channels"`
}

// Write a sculpt json to path
func Write(path string, obj SculptJSON) error {
	bytes, err := json.MarshalIndent(obj, "", "    ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, bytes, 0o644)
}

// Read a sculpt json from path
func Read(path string) (SculptJSON, error) {
	var val SculptJSON

	bytes, err := os.ReadFile(path)
	if err != nil {
		return val, err
	}

	err = json.Unmarshal(bytes, &val)
	return val, err
}
