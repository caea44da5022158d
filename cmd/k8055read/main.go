//Command k8055read echoes the digital inputs of a K8055 card to its
//digital outputs until ten input changes have been seen.
package main

import (
	log "github.com/sirupsen/logrus"

	"github.com/hirschenberger/k8055"
)

func main() {
	card := &k8055.K8055{}
	if !card.Open() {
		log.Fatal("no K8055 card found on the system")
	}
	defer card.Close()

	log.Infof("connected to %s", card)

	old := k8055.DZero
	for n := 10; n > 0; {
		cur, err := card.ReadDigitalIn()
		if err != nil {
			log.Fatalf("error reading digital inputs: %v", err)
		}
		if cur != old {
			old = cur
			if err = card.WriteDigitalOut(cur); err != nil {
				log.Fatalf("error writing digital outputs: %v", err)
			}
			n--
		}
	}

	if err := card.Reset(); err != nil {
		log.Errorf("error resetting the card: %v", err)
	}
}
