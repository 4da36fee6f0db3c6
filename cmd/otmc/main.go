// Command otmc stamps out multi-channel EasyEDA designs.
package main

import "github.com/OpenTraceLab/OpenTraceMultichannel/cmd/otmc/cmd"

func main() {
	cmd.Execute()
}
