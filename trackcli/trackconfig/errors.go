package trackconfig

import "github.com/pkg/errors"

var ErrConfigNotFound = errors.New("config (trackpad.yaml) was not found")
