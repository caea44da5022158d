package k8055

import (
	"errors"
	"math"
	"time"
)

const analogCount = 2

//The two analog channels of the card.
const (
	Ana1 = iota
	Ana2
)

//Full-scale value of the 8 bit DACs and ADCs.
const maxAnalog = 255

//WriteAnalogOut sets the value of one of the two analog outputs.
//ch is the channel number, k8055.Ana1 or k8055.Ana2.
//Leaves the digital outputs and the other analog output untouched.
func (dev *K8055) WriteAnalogOut(ch uint8, val uint8) (err error) {
	if nil == dev {
		err = errors.New("WriteAnalogOut():" + errNoDevice)
		return
	}
	if ch >= analogCount {
		err = errors.New("WriteAnalogOut():" + errWrongParam)
		return
	}

	ok := false
	timeout := false
	t := time.Now()
	for !ok && !timeout {
		s := dev.snapshot()
		cd := commandData{cmd: cmdSetAnalogDigital, dig: s.dig, ana1: s.ana1, ana2: s.ana2}
		switch ch {
		case Ana1:
			cd.ana1 = val
		case Ana2:
			cd.ana2 = val
		}
		err = dev.writeUSB(cd)
		ok = (nil == err)
		timeout = time.Since(t) >= maxDelayUSB
	}
	if ok && timeout {
		err = errors.New("WriteAnalogOut():" + errUsbTimeout)
	}
	return
}

//GetAnalogOut returns the value currently set on one of the analog outputs.
//ch is the channel number, k8055.Ana1 or k8055.Ana2.
func (dev *K8055) GetAnalogOut(ch uint8) (val uint8, err error) {
	if nil == dev {
		err = errors.New("GetAnalogOut():" + errNoDevice)
		return
	}
	if ch >= analogCount {
		err = errors.New("GetAnalogOut():" + errWrongParam)
		return
	}

	s := dev.snapshot()
	switch ch {
	case Ana1:
		val = s.ana1
	case Ana2:
		val = s.ana2
	}
	return
}

//ReadAnalogIn reads the value of one of the two analog inputs.
//ch is the channel number, k8055.Ana1 or k8055.Ana2.
func (dev *K8055) ReadAnalogIn(ch uint8) (val uint8, err error) {
	if nil == dev {
		err = errors.New("ReadAnalogIn():" + errNoDevice)
		return
	}
	if ch >= analogCount {
		err = errors.New("ReadAnalogIn():" + errWrongParam)
		return
	}

	ok := false
	timeout := false
	t := time.Now()
	for !ok && !timeout {
		var st statusData
		err = dev.readUSB(&st)
		if nil == err {
			switch ch {
			case Ana1:
				val = st.ana1
			case Ana2:
				val = st.ana2
			}
		}
		ok = (nil == err)
		timeout = time.Since(t) >= maxDelayUSB
	}
	if ok && timeout {
		err = errors.New("ReadAnalogIn():" + errUsbTimeout)
	}
	return
}

//VoltToAnalog converts a voltage to a DAC value for the analog outputs.
//volt - the wanted output voltage.
//maxVolt - the full-scale output voltage of the card (nominally 5 V).
//Values outside the range clamp to 0 or the full-scale value.
func VoltToAnalog(volt, maxVolt float64) uint8 {
	if maxVolt <= 0 || volt <= 0 {
		return 0
	}
	if volt >= maxVolt {
		return maxAnalog
	}
	return uint8(math.RoundToEven((volt / maxVolt) * maxAnalog))
}

//AnalogToVolt converts an ADC value of the analog inputs to a voltage.
//maxVolt - the full-scale input voltage of the card (nominally 5 V).
func AnalogToVolt(val uint8, maxVolt float64) float64 {
	if maxVolt <= 0 {
		return 0
	}
	return (float64(val) / maxAnalog) * maxVolt
}
