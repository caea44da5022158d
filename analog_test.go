package k8055

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVoltToAnalog(t *testing.T) {
	assert.Equal(t, uint8(0), VoltToAnalog(0, 5))
	assert.Equal(t, uint8(255), VoltToAnalog(5, 5))
	assert.Equal(t, uint8(128), VoltToAnalog(2.51, 5))

	// out of range clamps
	assert.Equal(t, uint8(0), VoltToAnalog(-1, 5))
	assert.Equal(t, uint8(255), VoltToAnalog(7.2, 5))

	// nonsense full-scale voltage
	assert.Equal(t, uint8(0), VoltToAnalog(3, 0))
	assert.Equal(t, uint8(0), VoltToAnalog(3, -5))
}

func TestAnalogToVolt(t *testing.T) {
	assert.Equal(t, 0.0, AnalogToVolt(0, 5))
	assert.Equal(t, 5.0, AnalogToVolt(255, 5))
	assert.InDelta(t, 2.5, AnalogToVolt(128, 5), 0.02)

	assert.Equal(t, 0.0, AnalogToVolt(128, 0))
}

func TestAnalogOutWrongChannel(t *testing.T) {
	dev := &K8055{}

	err := dev.WriteAnalogOut(analogCount, 10)
	assert.ErrorContains(t, err, errWrongParam)

	_, err = dev.GetAnalogOut(200)
	assert.ErrorContains(t, err, errWrongParam)

	_, err = dev.ReadAnalogIn(analogCount)
	assert.ErrorContains(t, err, errWrongParam)
}

func TestAnalogNilDevice(t *testing.T) {
	var dev *K8055

	err := dev.WriteAnalogOut(Ana1, 10)
	assert.ErrorContains(t, err, errNoDevice)

	_, err = dev.GetAnalogOut(Ana1)
	assert.ErrorContains(t, err, errNoDevice)

	_, err = dev.ReadAnalogIn(Ana2)
	assert.ErrorContains(t, err, errNoDevice)
}

func TestAnalogNotConnected(t *testing.T) {
	dev := &K8055{}

	err := dev.WriteAnalogOut(Ana1, 10)
	assert.ErrorContains(t, err, errNoConnection)

	// cached outputs are readable without a connection
	val, err := dev.GetAnalogOut(Ana1)
	assert.NoError(t, err)
	assert.Equal(t, uint8(0), val)
}
