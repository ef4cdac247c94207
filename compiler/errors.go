package compiler

import "errors"

// ErrDebugUnsupported is returned when a wmach.Program contains a
// DebugInsn: the tile compiler has no translation for it, so a program
// containing '!' does not compile.
var ErrDebugUnsupported = errors.New("compiler: Debug instruction has no tile translation")
