package scene

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Faultbox/raytracer/internal/engine/geometry"
	"github.com/Faultbox/raytracer/internal/engine/lighting"
	"github.com/Faultbox/raytracer/pkg/math"
)

// Parse errors.
var (
	ErrUnknownKeyword = errors.New("unknown keyword")
	ErrArgCount       = errors.New("wrong number of arguments")
	ErrBadNumber      = errors.New("malformed number")
)

// ParseError locates a failure in a scene description.
type ParseError struct {
	Line  int    // 1-based line number
	Token string // Offending keyword or value
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Argument counts per keyword.
var keywordArgs = map[string]int{
	"NEAR":    1,
	"LEFT":    1,
	"RIGHT":   1,
	"BOTTOM":  1,
	"TOP":     1,
	"RES":     2,
	"SPHERE":  15,
	"LIGHT":   7,
	"BACK":    3,
	"AMBIENT": 3,
	"OUTPUT":  1,
}

// ParseFile reads and validates a scene description from disk.
func ParseFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scene: %w", err)
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return s, nil
}

// Parse reads a line-oriented scene description and validates the result.
// Blank lines and lines starting with "//" are skipped; keywords are case-insensitive.
func Parse(r io.Reader) (*Scene, error) {
	s := New()
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}

		fields := strings.Fields(line)
		key := strings.ToUpper(fields[0])
		args := fields[1:]

		want, known := keywordArgs[key]
		if !known {
			return nil, &ParseError{Line: lineNo, Token: fields[0], Err: ErrUnknownKeyword}
		}
		if len(args) != want {
			return nil, &ParseError{
				Line:  lineNo,
				Token: fields[0],
				Err:   fmt.Errorf("%w: want %d, got %d", ErrArgCount, want, len(args)),
			}
		}

		if err := s.apply(key, args); err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				pe.Line = lineNo
				return nil, pe
			}
			return nil, &ParseError{Line: lineNo, Token: fields[0], Err: err}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading scene: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// apply stores one already count-checked keyword line.
func (s *Scene) apply(key string, args []string) error {
	switch key {
	case "NEAR":
		return parseFloats(args, &s.Frustum.Near)
	case "LEFT":
		return parseFloats(args, &s.Frustum.Left)
	case "RIGHT":
		return parseFloats(args, &s.Frustum.Right)
	case "BOTTOM":
		return parseFloats(args, &s.Frustum.Bottom)
	case "TOP":
		return parseFloats(args, &s.Frustum.Top)
	case "RES":
		return parseInts(args, &s.Width, &s.Height)
	case "BACK":
		return parseVec(args, &s.Background)
	case "AMBIENT":
		return parseVec(args, &s.Ambient)
	case "OUTPUT":
		s.SetOutput(args[0])
		return nil
	case "SPHERE":
		return s.parseSphere(args)
	case "LIGHT":
		return s.parseLight(args)
	}
	return &ParseError{Token: key, Err: ErrUnknownKeyword}
}

// SPHERE name px py pz sx sy sz r g b Ka Kd Ks Kr n
func (s *Scene) parseSphere(args []string) error {
	var pos, scl, col math.Vec3
	var mat geometry.Material
	if err := parseVec(args[1:4], &pos); err != nil {
		return err
	}
	if err := parseVec(args[4:7], &scl); err != nil {
		return err
	}
	if err := parseVec(args[7:10], &col); err != nil {
		return err
	}
	if err := parseFloats(args[10:14], &mat.Ka, &mat.Kd, &mat.Ks, &mat.Kr); err != nil {
		return err
	}
	if err := parseInts(args[14:15], &mat.SpecularExponent); err != nil {
		return err
	}
	mat.Color = col

	sp, err := geometry.NewSphere(args[0], pos, scl, mat)
	if err != nil {
		return &ParseError{Token: args[0], Err: err}
	}
	s.AddSphere(sp)
	return nil
}

// LIGHT name px py pz ir ig ib
func (s *Scene) parseLight(args []string) error {
	var pos, intensity math.Vec3
	if err := parseVec(args[1:4], &pos); err != nil {
		return err
	}
	if err := parseVec(args[4:7], &intensity); err != nil {
		return err
	}
	s.AddLight(lighting.NewPointLight(args[0], pos, intensity))
	return nil
}

func parseFloats(args []string, dst ...*float64) error {
	for i, d := range dst {
		v, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return &ParseError{Token: args[i], Err: ErrBadNumber}
		}
		*d = v
	}
	return nil
}

func parseInts(args []string, dst ...*int) error {
	for i, d := range dst {
		v, err := strconv.Atoi(args[i])
		if err != nil {
			return &ParseError{Token: args[i], Err: ErrBadNumber}
		}
		*d = v
	}
	return nil
}

func parseVec(args []string, dst *math.Vec3) error {
	return parseFloats(args, &dst.X, &dst.Y, &dst.Z)
}
