// Package splinefile loads human-editable YAML spline descriptions,
// the format the cmd/splinesample CLI and demo data use instead of
// the library's authoring-time binary serialization (out of scope for
// this module — see splinesample's package doc).
//
// Grounded on cogentcore-core's use of gopkg.in/yaml.v3 (declared in
// its go.mod) for structured, human-readable configuration; adapted
// here from that library's usual Unmarshal-into-tagged-struct idiom.
package splinefile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/curvekit/splinesample"
)

// Knot is the YAML representation of a splinesample.Knot.
type Knot struct {
	Time         float64 `yaml:"time"`
	Value        float64 `yaml:"value"`
	PreValue     float64 `yaml:"preValue,omitempty"`
	DualValued   bool    `yaml:"dualValued,omitempty"`
	PreTanWidth  float64 `yaml:"preTanWidth,omitempty"`
	PostTanWidth float64 `yaml:"postTanWidth,omitempty"`
	PreTanSlope  float64 `yaml:"preTanSlope,omitempty"`
	PostTanSlope float64 `yaml:"postTanSlope,omitempty"`
	// NextInterp is one of "valueblock", "held", "linear", "curve".
	NextInterp string `yaml:"nextInterp"`
	// CurveType is one of "bezier", "hermite"; ignored unless
	// NextInterp is "curve".
	CurveType string `yaml:"curveType,omitempty"`
}

// Extrapolation is the YAML representation of a
// splinesample.Extrapolation.
type Extrapolation struct {
	// Mode is one of "valueblock", "held", "linear", "sloped",
	// "loopRepeat", "loopReset", "loopOscillate".
	Mode  string  `yaml:"mode"`
	Slope float64 `yaml:"slope,omitempty"`
}

// LoopParams is the YAML representation of a splinesample.LoopParams.
type LoopParams struct {
	ProtoStart   float64 `yaml:"protoStart"`
	ProtoEnd     float64 `yaml:"protoEnd"`
	NumPreLoops  int32   `yaml:"numPreLoops,omitempty"`
	NumPostLoops int32   `yaml:"numPostLoops,omitempty"`
	ValueOffset  float64 `yaml:"valueOffset,omitempty"`
}

// Spline is the top-level YAML document describing one spline.
type Spline struct {
	Knots             []Knot        `yaml:"knots"`
	PreExtrapolation  Extrapolation `yaml:"preExtrapolation"`
	PostExtrapolation Extrapolation `yaml:"postExtrapolation"`
	LoopParams        *LoopParams   `yaml:"loopParams,omitempty"`
}

// Load reads and parses a spline description from path.
func Load(path string) (*Spline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("splinefile: reading %s: %w", path, err)
	}
	var s Spline
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("splinefile: parsing %s: %w", path, err)
	}
	return &s, nil
}

// Save writes s to path as YAML.
func Save(path string, s *Spline) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("splinefile: encoding: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("splinefile: writing %s: %w", path, err)
	}
	return nil
}

// ToSplineData converts the parsed description into a
// *splinesample.SplineData, ready to pass to splinesample.Sample.
func (s *Spline) ToSplineData() (*splinesample.SplineData, error) {
	knots := make([]splinesample.Knot, len(s.Knots))
	for i, k := range s.Knots {
		interp, err := parseInterpMode(k.NextInterp)
		if err != nil {
			return nil, fmt.Errorf("splinefile: knot %d: %w", i, err)
		}
		curveType, err := parseCurveType(k.CurveType)
		if err != nil {
			return nil, fmt.Errorf("splinefile: knot %d: %w", i, err)
		}
		knots[i] = splinesample.Knot{
			Time:         k.Time,
			Value:        k.Value,
			PreValue:     k.PreValue,
			DualValued:   k.DualValued,
			PreTanWidth:  k.PreTanWidth,
			PostTanWidth: k.PostTanWidth,
			PreTanSlope:  k.PreTanSlope,
			PostTanSlope: k.PostTanSlope,
			NextInterp:   interp,
			CurveType:    curveType,
		}
	}

	pre, err := parseExtrapolation(s.PreExtrapolation)
	if err != nil {
		return nil, fmt.Errorf("splinefile: preExtrapolation: %w", err)
	}
	post, err := parseExtrapolation(s.PostExtrapolation)
	if err != nil {
		return nil, fmt.Errorf("splinefile: postExtrapolation: %w", err)
	}

	var loop splinesample.LoopParams
	if s.LoopParams != nil {
		loop = splinesample.LoopParams{
			ProtoStart:   s.LoopParams.ProtoStart,
			ProtoEnd:     s.LoopParams.ProtoEnd,
			NumPreLoops:  s.LoopParams.NumPreLoops,
			NumPostLoops: s.LoopParams.NumPostLoops,
			ValueOffset:  s.LoopParams.ValueOffset,
		}
	}

	return splinesample.NewSplineData(knots, pre, post, loop), nil
}

func parseInterpMode(s string) (splinesample.InterpMode, error) {
	switch s {
	case "valueblock":
		return splinesample.InterpValueBlock, nil
	case "held":
		return splinesample.InterpHeld, nil
	case "linear":
		return splinesample.InterpLinear, nil
	case "curve":
		return splinesample.InterpCurve, nil
	default:
		return 0, fmt.Errorf("unknown interpolation mode %q", s)
	}
}

func parseCurveType(s string) (splinesample.CurveType, error) {
	switch s {
	case "", "bezier":
		return splinesample.CurveTypeBezier, nil
	case "hermite":
		return splinesample.CurveTypeHermite, nil
	default:
		return 0, fmt.Errorf("unknown curve type %q", s)
	}
}

func parseExtrapolation(e Extrapolation) (splinesample.Extrapolation, error) {
	var mode splinesample.ExtrapMode
	switch e.Mode {
	case "valueblock":
		mode = splinesample.ExtrapValueBlock
	case "held":
		mode = splinesample.ExtrapHeld
	case "linear":
		mode = splinesample.ExtrapLinear
	case "sloped":
		mode = splinesample.ExtrapSloped
	case "loopRepeat":
		mode = splinesample.ExtrapLoopRepeat
	case "loopReset":
		mode = splinesample.ExtrapLoopReset
	case "loopOscillate":
		mode = splinesample.ExtrapLoopOscillate
	default:
		return splinesample.Extrapolation{}, fmt.Errorf("unknown extrapolation mode %q", e.Mode)
	}
	return splinesample.Extrapolation{Mode: mode, Slope: e.Slope}, nil
}
