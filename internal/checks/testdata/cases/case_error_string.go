package cases

import (
	"errors"
	"fmt"
)

var errLower = errors.New("all good here")

var errCaps = errors.New("Failed to start")

var errPunct = errors.New("bad ending.")

var errAcronym = errors.New("HTTP status unexpected")

func dynamic(msg string) error {
	return fmt.Errorf("wrapped badly!")
}
