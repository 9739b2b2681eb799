package render

import "github.com/davecgh/go-spew/spew"

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Dump returns a deep debug dump of any value, deterministic enough to
// diff between runs.
func Dump(v any) string {
	return dumpConfig.Sdump(v)
}
