package dataimporter

import (
	"errors"

	"github.com/travigo/bikeshare/pkg/dataimporter/datasets"
)

var (
	ErrUnknownCity   = datasets.ErrUnknownCity
	ErrSourceMissing = errors.New("dataset source missing")
	ErrParse         = errors.New("failed to parse trip history")
)
