package objmesh

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Save writes the object to a file.
func (o *Object) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "save obj")
	}
	defer f.Close()
	if err := o.Write(f); err != nil {
		return errors.Wrapf(err, "save obj %s", path)
	}
	return f.Close()
}

// Write encodes the object.
//
// Faces are grouped by material, with a usemtl line each
// time the material changes. Without material ids, every
// face gets id -1 and no usemtl line is written.
func (o *Object) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, lib := range o.MtlLibs {
		fmt.Fprintf(bw, "mtllib %s\n", lib)
	}
	writeCoords(bw, "v", o.Vertices)
	writeCoords(bw, "vt", o.TexCoords)
	writeCoords(bw, "vn", o.Normals)

	ids := o.MaterialIDs
	if len(ids) == 0 {
		ids = make([]int, len(o.Polygons))
		for i := range ids {
			ids[i] = -1
		}
	}
	if len(ids) != len(o.Polygons) {
		return errors.Errorf("write obj: %d material ids for %d polygons", len(ids), len(o.Polygons))
	}

	order := make([]int, len(o.Polygons))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return ids[order[i]] < ids[order[j]]
	})

	curMat := -1
	for _, pid := range order {
		if ids[pid] != curMat {
			curMat = ids[pid]
			fmt.Fprintf(bw, "usemtl %s\n", o.materialName(curMat))
		}
		var line strings.Builder
		line.WriteString("f ")
		for _, v := range o.Polygons[pid] {
			line.WriteString(FormatFaceVertex(v))
		}
		line.WriteString("\n")
		bw.WriteString(line.String())
	}
	return bw.Flush()
}

// materialName resolves negative ids from the end of the
// material list.
func (o *Object) materialName(id int) string {
	if id < 0 {
		id += len(o.Materials)
	}
	if id < 0 || id >= len(o.Materials) {
		return DefaultMaterial
	}
	return o.Materials[id]
}

func writeCoords(w io.Writer, directive string, coords [][]float64) {
	for _, c := range coords {
		strs := make([]string, len(c))
		for i, v := range c {
			strs[i] = FormatFloat(v)
		}
		fmt.Fprintf(w, "%s %s\n", directive, strings.Join(strs, " "))
	}
}

// FormatFaceVertex formats one face vertex followed by a
// space.
//
// Missing components are written as X and then stripped:
// "/X/" becomes "//" and "/X " becomes " ". A vertex with
// neither texture coordinate nor normal is written as "v/ ".
func FormatFaceVertex(v FaceVertex) string {
	t, n := "X", "X"
	if v.T >= 0 {
		t = strconv.Itoa(v.T + 1)
	}
	if v.N >= 0 {
		n = strconv.Itoa(v.N + 1)
	}
	s := fmt.Sprintf("%d/%s/%s ", v.V+1, t, n)
	s = strings.ReplaceAll(s, "/X/", "//")
	return strings.ReplaceAll(s, "/X ", " ")
}

// FormatFloat writes the shortest representation of v that
// parses back to v. Integral values keep a ".0" suffix, and
// exponent notation is used for exponents below -4 or at
// least 16.
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	if v == 0 {
		if math.Signbit(v) {
			return "-0.0"
		}
		return "0.0"
	}
	sci := strconv.FormatFloat(v, 'e', -1, 64)
	exp, _ := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if exp < -4 || exp >= 16 {
		return sci
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
