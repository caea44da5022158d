package k8055

import (
	"errors"
	"time"
)

//DigitalChannel holds the state of the eight digital channels as a bitmask.
//The channels can be combined with bit operations:
//
//	dc := k8055.D1 | k8055.D2 | k8055.D3
type DigitalChannel uint8

//The digital channel values.
const (
	DZero DigitalChannel = 0 // all channels off
	D1    DigitalChannel = 1
	D2    DigitalChannel = 2
	D3    DigitalChannel = 4
	D4    DigitalChannel = 8
	D5    DigitalChannel = 16
	D6    DigitalChannel = 32
	D7    DigitalChannel = 64
	D8    DigitalChannel = 128
	DAll  DigitalChannel = 255 // all channels on
)

//WriteDigitalOut sets the eight digital outputs to d.
//Leaves the analog outputs untouched.
func (dev *K8055) WriteDigitalOut(d DigitalChannel) (err error) {
	if nil == dev {
		err = errors.New("WriteDigitalOut():" + errNoDevice)
		return
	}

	ok := false
	timeout := false
	t := time.Now()
	for !ok && !timeout {
		s := dev.snapshot()
		err = dev.writeUSB(commandData{
			cmd:  cmdSetAnalogDigital,
			dig:  uint8(d),
			ana1: s.ana1,
			ana2: s.ana2,
		})
		ok = (nil == err)
		timeout = time.Since(t) >= maxDelayUSB
	}
	if ok && timeout {
		err = errors.New("WriteDigitalOut():" + errUsbTimeout)
	}
	return
}

//WriteDigitalOutMask sets the digital outputs to d masked with mask.
//Only bits which are on in the mask are affected.
//Leaves the analog outputs untouched.
func (dev *K8055) WriteDigitalOutMask(d, mask DigitalChannel) (err error) {
	if nil == dev {
		err = errors.New("WriteDigitalOutMask():" + errNoDevice)
		return
	}
	return dev.WriteDigitalOut(d & mask)
}

//GetDigitalOut returns the bits currently set on the digital out channels.
func (dev *K8055) GetDigitalOut() DigitalChannel {
	if nil == dev {
		return DZero
	}
	return DigitalChannel(dev.snapshot().dig)
}

//GetDigitalOutMask returns the bits currently set on the digital out
//channels, masked with mask.
func (dev *K8055) GetDigitalOutMask(mask DigitalChannel) DigitalChannel {
	return dev.GetDigitalOut() & mask
}

//ReadDigitalIn reads the five digital input channels.
func (dev *K8055) ReadDigitalIn() (val DigitalChannel, err error) {
	if nil == dev {
		err = errors.New("ReadDigitalIn():" + errNoDevice)
		return
	}

	ok := false
	timeout := false
	t := time.Now()
	for !ok && !timeout {
		var st statusData
		err = dev.readUSB(&st)
		if nil == err {
			val = DigitalChannel(st.dig)
		}
		ok = (nil == err)
		timeout = time.Since(t) >= maxDelayUSB
	}
	if ok && timeout {
		err = errors.New("ReadDigitalIn():" + errUsbTimeout)
	}
	return
}

//ReadDigitalInMask reads the digital input channels masked with mask.
func (dev *K8055) ReadDigitalInMask(mask DigitalChannel) (val DigitalChannel, err error) {
	val, err = dev.ReadDigitalIn()
	val &= mask
	return
}
