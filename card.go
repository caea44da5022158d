package k8055

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gotmc/libusb"
)

//K8055 is the type for working with one Vellemann K8055 card.
type K8055 struct {
	Device
	handle   *libusb.DeviceHandle
	addr     CardAddress
	state    outputState
	mutexUSB sync.Mutex
}

//outputState mirrors the output values last written to the card.
//The status reports of the card only carry the inputs, so the
//outputs have to be remembered on the host side.
type outputState struct {
	dig  uint8
	ana1 uint8
	ana2 uint8
}

//USBOpen connects the application to a card over USB.
//Returns the device handle if the card is attached and could be opened.
func USBOpen(product uint16) (handle *libusb.DeviceHandle, ok bool) {
	usb, err1 := libusb.NewContext()
	if err1 != nil {
		return
	}

	_, h, err2 := usb.OpenDeviceWithVendorProduct(IDVendorVelleman, product)
	if err2 != nil {
		return
	}

	handle = h
	ok = true

	return
}

//Open connects to the first K8055 found on the system.
func (dev *K8055) Open() (ok bool) {
	return dev.OpenAddr(CardAny)
}

//OpenAddr connects to the card with the given jumper address.
//Returns true if the card was opened or is already open.
func (dev *K8055) OpenAddr(addr CardAddress) (ok bool) {
	if dev == nil {
		return
	}
	if dev.opened() {
		ok = true
		return
	}

	if addr == CardAny {
		for p := Card1; p <= Card4; p++ {
			if dev.handle, ok = USBOpen(uint16(p)); ok {
				addr = p
				break
			}
		}
	} else {
		dev.handle, ok = USBOpen(uint16(addr))
	}
	if !ok {
		return
	}

	if err := dev.detachAndClaim(); err != nil {
		dev.handle.Close()
		dev.handle = nil
		ok = false
		return
	}

	dev.addr = addr
	dev.state = outputState{}

	return
}

//detachAndClaim takes interface 0 over from the kernel HID driver.
func (dev *K8055) detachAndClaim() (err error) {
	active, err := dev.handle.KernelDriverActive(usbInterface)
	if err != nil {
		return
	}
	if active {
		if err = dev.handle.DetachKernelDriver(usbInterface); err != nil {
			return
		}
	}
	return dev.handle.ClaimInterface(usbInterface)
}

//opened shows whether the connection to the card is open
func (dev *K8055) opened() bool {
	if nil == dev {
		return false
	}
	return dev.handle != nil
}

//snapshot returns a consistent copy of the cached output state.
func (dev *K8055) snapshot() outputState {
	dev.mutexUSB.Lock()
	s := dev.state
	dev.mutexUSB.Unlock()
	return s
}

//writeUSB sends one command report to the card.
//Thread-safe exchange with the microcontroller over USB.
func (dev *K8055) writeUSB(data commandData) (err error) {
	if nil == dev {
		err = errors.New("K8055.writeUSB():" + errNoDevice)
		return
	}

	if !dev.opened() {
		err = errors.New("K8055.writeUSB():" + errNoConnection)
		return
	}

	buf := data.toBytes()

	dev.mutexUSB.Lock()
	_, err = dev.handle.InterruptTransfer(endpointOut, buf, len(buf), int(maxDelayUSB.Milliseconds()))
	if nil == err {
		// keep the cached output state in sync with the card
		dev.state = outputState{dig: data.dig, ana1: data.ana1, ana2: data.ana2}
	}
	dev.mutexUSB.Unlock()

	if nil != err {
		err = errors.New("K8055.writeUSB():" + err.Error())
	}
	return
}

//readUSB reads one status report from the card.
//Thread-safe exchange with the microcontroller over USB.
func (dev *K8055) readUSB(data *statusData) (err error) {
	if nil == data || nil == dev {
		err = errors.New("K8055.readUSB():" + errWrongParam)
		return
	}

	if !dev.opened() {
		err = errors.New("K8055.readUSB():" + errNoConnection)
		return
	}

	buf := make([]byte, reportSize)

	dev.mutexUSB.Lock()
	_, err = dev.handle.InterruptTransfer(endpointIn, buf, len(buf), int(maxDelayUSB.Milliseconds()))
	dev.mutexUSB.Unlock()

	if nil != err {
		err = errors.New("K8055.readUSB():" + err.Error())
		return
	}

	if !data.setFromBytes(buf) {
		err = errors.New("K8055.readUSB():" + errWrongParam)
	}
	return
}

//Reset sets all analog and digital outputs to zero.
func (dev *K8055) Reset() (err error) {
	if nil == dev {
		err = errors.New("Reset():" + errNoDevice)
		return
	}

	ok := false
	timeout := false
	t := time.Now()
	for !ok && !timeout {
		err = dev.writeUSB(commandData{cmd: cmdSetAnalogDigital})
		ok = (nil == err)
		timeout = time.Since(t) >= maxDelayUSB
	}
	if ok && timeout {
		err = errors.New("Reset():" + errUsbTimeout)
	}
	return
}

/////////////////////INTERFACE FUNCTIONS/////////////////////

//Close closes the connection to the card
func (dev *K8055) Close() {
	if dev == nil || dev.handle == nil {
		return
	}
	dev.handle.ReleaseInterface(usbInterface)
	dev.handle.Close()

	dev.handle = nil
}

//Active shows whether the connection to the card is active
func (dev *K8055) Active() (ok bool) {
	if dev == nil {
		return
	}
	if dev.opened() {
		ok = true
	}
	return
}

func (dev *K8055) String() string {
	if !dev.opened() {
		return "K8055( not connected )"
	}
	return fmt.Sprintf("K8055( address: %#04x )", uint16(dev.addr))
}
