package k8055

//The card talks in 8 byte interrupt reports.
const reportSize = 8

//Command bytes understood by the microcontroller.
const (
	cmdReset            = 0
	cmdSetAnalogDigital = 5
)

//commandData is one output report for the card.
type commandData struct {
	cmd  uint8
	dig  uint8
	ana1 uint8
	ana2 uint8
}

//toBytes packs the report for sending to the microcontroller.
func (data *commandData) toBytes() []byte {
	if nil == data {
		return nil
	}
	buf := make([]byte, reportSize)
	buf[0] = data.cmd
	buf[1] = data.dig
	buf[2] = data.ana1
	buf[3] = data.ana2
	return buf
}

//statusData is one input report coming from the card.
type statusData struct {
	dig    uint8
	status uint8
	ana1   uint8
	ana2   uint8
}

func (data *statusData) setFromBytes(inbuf []byte) bool {
	// must be enough bytes to fill the structure
	if nil == inbuf || nil == data || len(inbuf) < reportSize {
		return false
	}
	data.dig = inbuf[0]
	data.status = inbuf[1]
	data.ana1 = inbuf[2]
	data.ana2 = inbuf[3]
	return true
}
