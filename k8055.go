//Package k8055 controls the Vellemann K8055(N) USB digital and analog IO card.
//
//See the Vellemann homepage (http://www.velleman.eu/products/view/?id=351346)
//for the hardware specification.
package k8055

import "time"

//Device - the interface of an IO card
type Device interface {
	Open() bool
	Close()
	Active() bool
}

//IDVendorVelleman is the USB vendor id of the K8055 hardware.
const IDVendorVelleman = uint16(0x10cf)

//CardAddress selects one of up to four cards by their jumper setting.
type CardAddress uint16

//Addresses of the different cards that can be controlled.
//See the address jumpers (SK5/SK6) on your card for the correct address.
const (
	CardAny CardAddress = 0 // first card found on the system
	Card1   CardAddress = 0x5500
	Card2   CardAddress = 0x5501
	Card3   CardAddress = 0x5502
	Card4   CardAddress = 0x5503
)

//Maximum allowed reaction time when talking to the hardware over USB.
const maxDelayUSB = 100 * time.Millisecond

const errUsbTimeout = `USB reaction time too long`
const errNoConnection = `no connection to the K8055`
const errNoDevice = `K8055 == nil`
const errWrongParam = `wrong function parameter`

//Interrupt endpoints of the card.
const (
	endpointOut = 0x01
	endpointIn  = 0x81
)

//The card exposes everything on interface 0.
const usbInterface = 0
