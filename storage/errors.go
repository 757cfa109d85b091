package storage

import "errors"

var ErrTeamNotFound = errors.New("team not found in storage")
var ErrTeamAlreadyExists = errors.New("team with that id already exists")
var ErrVersionConflict = errors.New("team was modified concurrently")
