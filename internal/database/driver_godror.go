//go:build cgo

package database

// godror links the Oracle client libraries through cgo; pure-Go builds only
// get go-ora.
import _ "github.com/godror/godror"
