package snapshot

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrite(t *testing.T) {
	{ // 1D, height and momentum only
		var buf bytes.Buffer
		err := Write(&buf, 0.5, 3, 1, 3, []float64{1, 2, 3}, nil, []float64{0, -1.5, 4}, nil)
		assert.Nil(t, err)
		assert.Equal(t, "x,y,height,momentum_x\n"+
			"0.25,0.25,1,0\n"+
			"0.75,0.25,2,-1.5\n"+
			"1.25,0.25,3,4\n", buf.String())
	}
	{ // 2D with a stride wider than the written block
		var (
			buf bytes.Buffer
			h   = []float64{0, 1, 2, 10, 11, 12}
		)
		err := Write(&buf, 1, 2, 2, 3, h, h, h, h)
		assert.Nil(t, err)
		assert.Equal(t, "x,y,height,bathymetry,momentum_x,momentum_y\n"+
			"0.5,0.5,0,0,0,0\n"+
			"1.5,0.5,1,1,1,1\n"+
			"0.5,1.5,10,10,10,10\n"+
			"1.5,1.5,11,11,11,11\n", buf.String())
	}
	{
		var buf bytes.Buffer
		err := Write(&buf, 1, 4, 1, 4, []float64{1, 2}, nil, nil, nil)
		assert.NotNil(t, err)
	}
}

func TestWriteFile(t *testing.T) {
	var (
		filename = filepath.Join(t.TempDir(), "solution_0.csv")
	)
	err := WriteFile(filename, 1, 2, 1, 2, []float64{3, 4}, []float64{-1, -2}, nil, nil)
	assert.Nil(t, err)
	data, err := os.ReadFile(filename)
	assert.Nil(t, err)
	assert.Equal(t, "x,y,height,bathymetry\n0.5,0.5,3,-1\n1.5,0.5,4,-2\n", string(data))
	err = WriteFile(filepath.Join(t.TempDir(), "missing", "x.csv"), 1, 1, 1, 1, []float64{1}, nil, nil, nil)
	assert.NotNil(t, err)
}
