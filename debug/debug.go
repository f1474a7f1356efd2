package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Path    bool
	Convert bool
	Resolve bool
	Cache   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Path = boolEnv("NBTPATH_DEBUG_PATH")
	d.Convert = boolEnv("NBTPATH_DEBUG_CONVERT")
	d.Resolve = boolEnv("NBTPATH_DEBUG_RESOLVE")
	d.Cache = boolEnv("NBTPATH_DEBUG_CACHE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Path() bool {
	return d.Path
}
func Convert() bool {
	return d.Convert
}
func Resolve() bool {
	return d.Resolve
}
func Cache() bool {
	return d.Cache
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
