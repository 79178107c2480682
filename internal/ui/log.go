package ui

import "github.com/juju/loggo"

var logger = loggo.GetLogger("sandfall.ui")
