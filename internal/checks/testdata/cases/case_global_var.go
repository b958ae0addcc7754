package cases

import (
	"errors"
	"fmt"
)

// Sentinel errors are the accepted shape of package state.
var ErrNotFound = errors.New("not found")

var errTimeout = fmt.Errorf("timeout after %d tries", 3)

var counter int

var name, mode string

var _ = struct{}{}
