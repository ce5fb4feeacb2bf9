package anim

import (
	"fmt"
	"strings"
)

// Clip names one animation in the shared cat sprite sheet.
type Clip int

const (
	Idle1 Clip = iota
	Idle2
	Clean1
	Clean2
	Run1
	Run2
	Sleep
	Walk
	Leap
	Stretch

	clipCount
)

var clipNames = [clipCount]string{
	Idle1:   "idle1",
	Idle2:   "idle2",
	Clean1:  "clean1",
	Clean2:  "clean2",
	Run1:    "run1",
	Run2:    "run2",
	Sleep:   "sleep",
	Walk:    "walk",
	Leap:    "leap",
	Stretch: "stretch",
}

// Clips returns every clip in declaration order.
func Clips() []Clip {
	out := make([]Clip, 0, clipCount)
	for c := Clip(0); c < clipCount; c++ {
		out = append(out, c)
	}
	return out
}

// Valid reports whether c is one of the declared clips.
func (c Clip) Valid() bool {
	return c >= 0 && c < clipCount
}

func (c Clip) String() string {
	if !c.Valid() {
		return fmt.Sprintf("clip(%d)", int(c))
	}
	return clipNames[c]
}

// ParseClip resolves a clip by its case-insensitive name.
func ParseClip(name string) (Clip, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for c, n := range clipNames {
		if n == key {
			return Clip(c), nil
		}
	}
	return 0, fmt.Errorf("anim: unknown clip %q", name)
}

func (c Clip) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("anim: invalid clip %d", int(c))
	}
	return []byte(clipNames[c]), nil
}

func (c *Clip) UnmarshalText(text []byte) error {
	parsed, err := ParseClip(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
