package middle_state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMiddleState(t *testing.T) {
	{ // shock-shock
		hStar, huStar, err := MiddleState(8899.326826472694, 122.0337839252433,
			8899.326826472694, -122.0337839252433)
		assert.Nil(t, err)
		assert.InDelta(t, 8899.7399179, hStar, 1.e-6)
		assert.InDelta(t, 0, huStar, 1.e-9)
	}
	{ // rare-rare
		hStar, _, err := MiddleState(3042.136044684769, -27.52440428024561,
			3042.136044684769, 27.52440428024561)
		assert.Nil(t, err)
		assert.InDelta(t, 3041.9766908, hStar, 1.e-6)
		hStar, _, err = MiddleState(7589.71304876485, -138.9853242339589,
			7589.71304876485, 138.9853242339589)
		assert.Nil(t, err)
		assert.InDelta(t, 7589.2036139, hStar, 1.e-6)
	}
	{ // dam breaks
		hStar, huStar, err := MiddleState(10, 0, 8, 0)
		assert.Nil(t, err)
		assert.InDelta(t, 8.9715205, hStar, 1.e-6)
		assert.InDelta(t, 8.9715205*1.0461155, huStar, 1.e-5)
		hStar, huStar, err = MiddleState(10, 0, 5, 0)
		assert.Nil(t, err)
		assert.InDelta(t, 7.2692045, hStar, 1.e-6)
		assert.InDelta(t, 7.2692045*2.9194344, huStar, 1.e-5)
	}
	{ // uniform state
		hStar, huStar, err := MiddleState(1, 0, 1, 0)
		assert.Nil(t, err)
		assert.InDelta(t, 1, hStar, 1.e-12)
		assert.InDelta(t, 0, huStar, 1.e-12)
	}
	{
		_, _, err := MiddleState(1, -100, 1, 100)
		assert.NotNil(t, err)
		_, _, err = MiddleState(0, 0, 1, 0)
		assert.NotNil(t, err)
	}
}

func TestSample(t *testing.T) {
	var (
		hStar, huStar = 8.971520454945527, 9.385246790957511
		shockSpeed    = 9.660369725806497
	)
	{ // undisturbed states
		h, hu, err := Sample(10, 0, 8, 0, -20)
		assert.Nil(t, err)
		assert.Equal(t, 10., h)
		assert.Equal(t, 0., hu)
		h, _, _ = Sample(10, 0, 8, 0, shockSpeed+1.e-6)
		assert.Equal(t, 8., h)
	}
	{ // inside the rarefaction fan
		h, hu, err := Sample(10, 0, 8, 0, -9)
		assert.Nil(t, err)
		assert.InDelta(t, 9.4014290, h, 1.e-6)
		assert.InDelta(t, 5.6587397, hu, 1.e-6)
	}
	{ // middle state on both sides of the contact
		h, hu, _ := Sample(10, 0, 8, 0, 0)
		assert.InDelta(t, hStar, h, 1.e-9)
		assert.InDelta(t, huStar, hu, 1.e-9)
		h, _, _ = Sample(10, 0, 8, 0, shockSpeed-1.e-6)
		assert.InDelta(t, hStar, h, 1.e-9)
	}
	{ // Rankine-Hugoniot condition across the right going shock
		assert.InDelta(t, huStar, shockSpeed*(hStar-8), 1.e-6)
	}
}

func TestProfile(t *testing.T) {
	var (
		X = []float64{0, 4.1, 5, 6, 10}
	)
	{
		H, HU, err := Profile(10, 0, 8, 0, 5, 0, X)
		assert.Nil(t, err)
		assert.Equal(t, []float64{10, 10, 8, 8, 8}, H)
		assert.Equal(t, []float64{0, 0, 0, 0, 0}, HU)
	}
	{
		H, HU, err := Profile(10, 0, 8, 0, 5, 0.1, X)
		assert.Nil(t, err)
		assert.Equal(t, 10., H[0])
		assert.InDelta(t, 9.4014290, H[1], 1.e-6)
		assert.InDelta(t, 8.9715205, H[2], 1.e-6)
		assert.Equal(t, 8., H[3])
		assert.Equal(t, 8., H[4])
		assert.Equal(t, 0., HU[4])
	}
	{ // separating flow with a wet middle state
		H, HU, err := Profile(10, -100, 8, 100, 5, 0.1, X)
		assert.Nil(t, err)
		assert.InDelta(t, 1.4378921, H[2], 1.e-6)
		assert.InDelta(t, 3.3006411, HU[2], 1.e-6)
		hStar, huStar, err := MiddleState(10, -100, 8, 100)
		assert.Nil(t, err)
		assert.InDelta(t, hStar, H[2], 1.e-9)
		assert.InDelta(t, huStar, HU[2], 1.e-9)
	}
	{ // states moving apart fast enough to dry the middle
		_, _, err := Profile(10, -400, 8, 400, 5, 0.1, X)
		assert.NotNil(t, err)
	}
}
