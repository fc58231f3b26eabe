package buftug

import "log"

// logf records UI events. main.go decides where the standard logger writes.
var logf = log.Printf
