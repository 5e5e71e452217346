// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var (
	ErrGroupPathNotFound = errors.New("group path not found in vault")
	ErrOutputExists      = errors.New("output file already exists")
)

// Stage names one step of an import or export pipeline.
type Stage string

// Import stages, in execution order.
const (
	StageValidate   Stage = "validate"
	StageTrust      Stage = "trust"
	StageExtract    Stage = "extract"
	StageParse      Stage = "parse"
	StageVerify     Stage = "verify"
	StageOpenShare  Stage = "open-share"
	StageOpenTarget Stage = "open-target"
	StageMerge      Stage = "merge"
	StageSave       Stage = "save"
)

// Export stages, in execution order. Validation is shared with imports.
const (
	StageOpenSource  Stage = "open-source"
	StageLocate      Stage = "locate"
	StageLoadKey     Stage = "load-key"
	StageCreateShare Stage = "create-share"
	StageSign        Stage = "sign"
	StageWrite       Stage = "write"
)

// StageError reports the pipeline step that failed. errors.Is and
// errors.As see through it to the underlying error.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// StageOf returns the stage recorded in err, if any.
func StageOf(err error) (Stage, bool) {
	var stageErr *StageError
	if errors.As(err, &stageErr) {
		return stageErr.Stage, true
	}
	return "", false
}

func stageError(stage Stage, err error) error {
	return &StageError{Stage: stage, Err: err}
}
