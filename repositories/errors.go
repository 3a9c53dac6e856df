package repositories

import "errors"

var errDuplicateID = errors.New("duplicate id")
