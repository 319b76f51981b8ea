// Package ewindows provides the Win32 console input types and kernel32
// wrappers that golang.org/x/sys/windows does not cover.
//
// The record types and constants build on every OS so that code decoding
// console input can be tested anywhere; the wrappers that call into kernel32
// are only built on Windows.
package ewindows
