// Package objmesh reads and writes a small subset of the
// Wavefront OBJ format.
package objmesh

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const DefaultMaterial = "default_mtl"

// A FaceVertex references a vertex, texture coordinate and
// normal by zero-based index. T and N are -1 when absent.
type FaceVertex struct {
	V int
	T int
	N int
}

// Object is a loaded mesh.
type Object struct {
	Path    string
	MtlLibs []string

	// Materials starts with the default material.
	Materials []string

	// MaterialIDs holds an index into Materials for every
	// polygon.
	MaterialIDs []int

	Vertices  [][]float64
	Normals   [][]float64
	TexCoords [][]float64
	Polygons  [][]FaceVertex
}

// Options control loading.
type Options struct {
	// DefaultMaterial names the material of faces before the
	// first usemtl. Empty means DefaultMaterial.
	DefaultMaterial string

	// Triangulate fans every face into triangles.
	Triangulate bool
}

// NewObject creates an empty object whose only material is
// defaultMtl.
func NewObject(defaultMtl string) *Object {
	if defaultMtl == "" {
		defaultMtl = DefaultMaterial
	}
	return &Object{Materials: []string{defaultMtl}}
}

// Load reads an object from a file.
func Load(path string, opts Options) (*Object, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "load obj")
	}
	defer f.Close()
	obj, err := Read(f, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "load obj %s", path)
	}
	obj.Path = path
	return obj, nil
}

// Read decodes an object.
//
// Unknown directives are ignored.
func Read(r io.Reader, opts Options) (*Object, error) {
	obj := NewObject(opts.DefaultMaterial)
	curMat := 0

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	var lineNum int
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		toks := strings.Fields(line)
		if len(toks) == 0 {
			continue
		}
		lineErr := func(err error) error {
			return &LineError{Line: lineNum, Text: line, Err: err}
		}
		switch toks[0] {
		case "v", "vn", "vt":
			vals, err := parseFloats(toks[1:])
			if err != nil {
				return nil, lineErr(err)
			}
			switch toks[0] {
			case "v":
				if len(vals) < 3 {
					return nil, lineErr(errors.Wrap(ErrMalformedLine, "vertex needs x, y and z"))
				}
				obj.Vertices = append(obj.Vertices, vals)
			case "vn":
				obj.Normals = append(obj.Normals, vals)
			default:
				obj.TexCoords = append(obj.TexCoords, vals)
			}
		case "f":
			if len(toks) < 2 {
				return nil, lineErr(ErrMalformedLine)
			}
			poly := make([]FaceVertex, 0, len(toks)-1)
			for _, tok := range toks[1:] {
				fv, err := ParseFaceVertex(tok)
				if err != nil {
					return nil, lineErr(err)
				}
				poly = append(poly, fv)
			}
			if opts.Triangulate {
				for i := 2; i < len(poly); i++ {
					obj.MaterialIDs = append(obj.MaterialIDs, curMat)
					obj.Polygons = append(obj.Polygons, []FaceVertex{poly[0], poly[i-1], poly[i]})
				}
			} else {
				obj.MaterialIDs = append(obj.MaterialIDs, curMat)
				obj.Polygons = append(obj.Polygons, poly)
			}
		case "mtllib":
			if len(toks) < 2 {
				return nil, lineErr(ErrMalformedLine)
			}
			obj.MtlLibs = append(obj.MtlLibs, toks[1])
		case "usemtl":
			if len(toks) < 2 {
				return nil, lineErr(ErrMalformedLine)
			}
			curMat = obj.materialIndex(toks[1])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read obj")
	}
	return obj, nil
}

func (o *Object) materialIndex(name string) int {
	for i, m := range o.Materials {
		if m == name {
			return i
		}
	}
	o.Materials = append(o.Materials, name)
	return len(o.Materials) - 1
}

func parseFloats(toks []string) ([]float64, error) {
	if len(toks) == 0 {
		return nil, ErrMalformedLine
	}
	res := make([]float64, len(toks))
	for i, t := range toks {
		v, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return nil, errors.Wrap(ErrMalformedLine, err.Error())
		}
		res[i] = v
	}
	return res, nil
}

// ParseFaceVertex parses "v", "v/t", "v//n" or "v/t/n".
// An empty texture index means absent; the normal index, if
// its slash is present, must be a number.
func ParseFaceVertex(s string) (FaceVertex, error) {
	parts := strings.Split(s, "/")
	fv := FaceVertex{T: -1, N: -1}
	var err error
	if fv.V, err = parseIndex(parts[0]); err != nil {
		return fv, err
	}
	if len(parts) > 1 && parts[1] != "" {
		if fv.T, err = parseIndex(parts[1]); err != nil {
			return fv, err
		}
	}
	if len(parts) > 2 {
		if fv.N, err = parseIndex(parts[2]); err != nil {
			return fv, err
		}
	}
	return fv, nil
}

func parseIndex(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(ErrMalformedLine, "index %q", s)
	}
	return i - 1, nil
}
