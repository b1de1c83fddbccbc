package main

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/unixpickle/infill-lab/voxel"
)

// npyPreamble is the padded length of the .npy magic,
// version, length field and header dict.
const npyPreamble = 128

// SaveNumpy writes the interior of g to an .npz archive
// holding a single voxels.npy array.
func SaveNumpy(path string, g *voxel.Grid) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "save numpy")
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = errors.Wrap(closeErr, "save numpy")
		}
	}()

	zw := zip.NewWriter(f)
	entry, err := zw.Create("voxels.npy")
	if err != nil {
		return errors.Wrap(err, "save numpy")
	}
	if _, err := entry.Write(EncodeGrid(g)); err != nil {
		return errors.Wrap(err, "save numpy")
	}
	if err := zw.Close(); err != nil {
		return errors.Wrap(err, "save numpy")
	}
	return nil
}

// EncodeGrid encodes the interior of g as a boolean .npy
// array of shape (size, size, size) in z, x, y order.
func EncodeGrid(g *voxel.Grid) []byte {
	var buf bytes.Buffer
	headerLen := npyPreamble - 10
	buf.WriteString("\x93NUMPY\x01\x00")
	buf.Write([]byte{byte(headerLen), byte(headerLen >> 8)})
	fmt.Fprintf(&buf, "{'descr': '|b1', 'fortran_order': False, 'shape': (%d, %d, %d)}",
		g.Size, g.Size, g.Size)
	for buf.Len() < npyPreamble-1 {
		buf.WriteByte(' ')
	}
	buf.WriteByte('\n')
	buf.Write(g.Unbordered())
	return buf.Bytes()
}
