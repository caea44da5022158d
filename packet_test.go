package k8055

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandDataToBytes(t *testing.T) {
	cd := commandData{cmd: cmdSetAnalogDigital, dig: 0xA5, ana1: 17, ana2: 255}
	buf := cd.toBytes()

	require.Len(t, buf, reportSize)
	assert.Equal(t, []byte{5, 0xA5, 17, 255, 0, 0, 0, 0}, buf)
}

func TestCommandDataToBytesZero(t *testing.T) {
	cd := commandData{}
	assert.Equal(t, make([]byte, reportSize), cd.toBytes())
}

func TestCommandDataToBytesNil(t *testing.T) {
	var cd *commandData
	assert.Nil(t, cd.toBytes())
}

func TestStatusDataSetFromBytes(t *testing.T) {
	var st statusData
	ok := st.setFromBytes([]byte{0x1F, 1, 128, 64, 0, 0, 0, 0})

	require.True(t, ok)
	assert.Equal(t, uint8(0x1F), st.dig)
	assert.Equal(t, uint8(1), st.status)
	assert.Equal(t, uint8(128), st.ana1)
	assert.Equal(t, uint8(64), st.ana2)
}

func TestStatusDataSetFromBytesShort(t *testing.T) {
	var st statusData
	assert.False(t, st.setFromBytes([]byte{1, 2, 3}))
	assert.False(t, st.setFromBytes(nil))

	var nilst *statusData
	assert.False(t, nilst.setFromBytes(make([]byte, reportSize)))
}
