// Package fsx wraps the filesystem moves used when scattering files.
package fsx

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Replaceable so tests can simulate EXDEV and similar failures.
var renameFunc = os.Rename

// CrossDeviceError marks a rename that failed because source and target live
// on different filesystems. Moves are never turned into copy+delete.
type CrossDeviceError struct {
	Src string
	Dst string
	Err error
}

func (e *CrossDeviceError) Error() string {
	return fmt.Sprintf("cross-device move %q -> %q: %v", e.Src, e.Dst, e.Err)
}

func (e *CrossDeviceError) Unwrap() error { return e.Err }

// IsCrossDevice reports whether err is a CrossDeviceError.
func IsCrossDevice(err error) bool {
	var e *CrossDeviceError
	return errors.As(err, &e)
}

// Rename wraps os.Rename and tags EXDEV failures as CrossDeviceError.
func Rename(src, dst string) error {
	if err := renameFunc(src, dst); err != nil {
		if isEXDEV(err) {
			return &CrossDeviceError{Src: src, Dst: dst, Err: err}
		}
		return err
	}
	return nil
}

// FreeName returns name if dir has no entry called name, otherwise the first
// "base_N.ext" (N = 1, 2, ...) that is not taken.
func FreeName(dir, name string) (string, error) {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	candidate := name
	for n := 1; ; n++ {
		_, err := os.Lstat(filepath.Join(dir, candidate))
		if errors.Is(err, os.ErrNotExist) {
			return candidate, nil
		}
		if err != nil {
			return "", err
		}
		candidate = base + "_" + strconv.Itoa(n) + ext
	}
}

// MoveNoOverwrite moves src into dir, keeping its name unless that name is
// already taken there, in which case FreeName picks the target. It returns the
// final path.
func MoveNoOverwrite(src, dir string) (string, error) {
	name, err := FreeName(dir, filepath.Base(src))
	if err != nil {
		return "", err
	}
	dst := filepath.Join(dir, name)
	if err := Rename(src, dst); err != nil {
		return "", err
	}
	return dst, nil
}
