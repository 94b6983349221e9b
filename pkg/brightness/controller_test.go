package brightness

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoppxi/maco/pkg/displayinfo"
)

type fakeBackend struct {
	value     float32
	getStatus int32
	setStatus int32

	getCalls   int
	setCalls   int
	closeCalls int

	lastDisplay displayinfo.DisplayID
	lastValue   float32
}

func (b *fakeBackend) Get(display displayinfo.DisplayID) (float32, error) {
	b.getCalls++
	b.lastDisplay = display
	if b.getStatus != 0 {
		return 0, &PlatformError{Code: b.getStatus}
	}
	return b.value, nil
}

func (b *fakeBackend) Set(display displayinfo.DisplayID, value float32) error {
	b.setCalls++
	b.lastDisplay = display
	b.lastValue = value
	if b.setStatus != 0 {
		return &PlatformError{Code: b.setStatus}
	}
	return nil
}

func (b *fakeBackend) Close() error {
	b.closeCalls++
	return nil
}

func boundController(backend Backend) *Controller {
	return &Controller{display: 42, backend: backend}
}

func TestSetRejectsOutOfRangeWithoutForeignCall(t *testing.T) {
	backend := &fakeBackend{}
	c := boundController(backend)

	for _, v := range []float32{-0.01, -1, 1.01, 2, 100} {
		require.ErrorIs(t, c.Set(v), ErrOutOfRange, "value %v", v)
	}
	assert.Zero(t, backend.setCalls, "rejected values must never reach the backend")
}

func TestSetRejectsNaN(t *testing.T) {
	backend := &fakeBackend{}
	c := boundController(backend)

	require.ErrorIs(t, c.Set(float32(math.NaN())), ErrOutOfRange)
	assert.Zero(t, backend.setCalls, "NaN must never reach the backend")
}

func TestSetPassesValueThroughUnchanged(t *testing.T) {
	backend := &fakeBackend{}
	c := boundController(backend)

	require.NoError(t, c.Set(0.42))

	assert.Equal(t, 1, backend.setCalls)
	assert.Equal(t, float32(0.42), backend.lastValue)
	assert.Equal(t, displayinfo.DisplayID(42), backend.lastDisplay)
}

func TestSetAcceptsRangeBoundaries(t *testing.T) {
	backend := &fakeBackend{}
	c := boundController(backend)

	require.NoError(t, c.Set(0.0))
	require.NoError(t, c.Set(1.0))
	assert.Equal(t, 2, backend.setCalls)
}

func TestSetReportsPlatformError(t *testing.T) {
	c := boundController(&fakeBackend{setStatus: 3})

	err := c.Set(0.5)
	var perr *PlatformError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, int32(3), perr.Code)
}

func TestGetReturnsPlatformValue(t *testing.T) {
	c := boundController(&fakeBackend{value: 0.73})

	got, err := c.Get()
	require.NoError(t, err)
	assert.Equal(t, float32(0.73), got)
}

func TestGetReportsPlatformError(t *testing.T) {
	c := boundController(&fakeBackend{getStatus: 5})

	_, err := c.Get()
	var perr *PlatformError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, int32(5), perr.Code)
}

func TestNewControllerShortCircuitsOnEnumerationFailure(t *testing.T) {
	opened := false

	_, err := newController(
		func(int) ([]displayinfo.DisplayID, error) {
			return nil, displayinfo.ErrNoActiveDisplays
		},
		func() (Backend, error) {
			opened = true
			return &fakeBackend{}, nil
		},
	)

	require.ErrorIs(t, err, displayinfo.ErrNoActiveDisplays)
	assert.False(t, opened, "symbol resolution must not be attempted without a display")
}

func TestNewControllerBindsFirstDisplay(t *testing.T) {
	backend := &fakeBackend{}

	c, err := newController(
		func(max int) ([]displayinfo.DisplayID, error) {
			assert.Equal(t, maxDisplays, max)
			return []displayinfo.DisplayID{42, 7}, nil
		},
		func() (Backend, error) { return backend, nil },
	)
	require.NoError(t, err)

	assert.Equal(t, displayinfo.DisplayID(42), c.Display())
}

func TestNewControllerPropagatesResolutionFailure(t *testing.T) {
	_, err := newController(
		func(int) ([]displayinfo.DisplayID, error) {
			return []displayinfo.DisplayID{1}, nil
		},
		func() (Backend, error) { return nil, ErrSymbolsUnavailable },
	)

	require.ErrorIs(t, err, ErrSymbolsUnavailable)
}

func TestCloseReleasesBackend(t *testing.T) {
	backend := &fakeBackend{}
	c := boundController(backend)

	require.NoError(t, c.Close())
	assert.Equal(t, 1, backend.closeCalls)
}
