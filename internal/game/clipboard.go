package game

import (
	"log"

	"github.com/atotto/clipboard"
)

// CopyToClipboard puts a session report on the system clipboard. It is the
// copy handler used by the interactive hosts; failures are logged and the
// game keeps running.
func CopyToClipboard(report string) {
	if report == "" {
		report = " "
	}
	if err := clipboard.WriteAll(report); err != nil {
		log.Printf("clipboard: %v", err)
	}
}
