package loopir

import "strconv"

// String renders it per spec.md §4.3: "for id in (lo..hi)" with an
// optional ".step(n)" suffix, omitted when step is 1 (its default).
func (it LoopIter) String() string {
	s := "for " + it.IterName + " in (" + strconv.FormatInt(int64(it.Lo), 10) + ".." + strconv.FormatInt(int64(it.Hi), 10) + ")"
	if it.Step != 1 {
		s += ".step(" + strconv.FormatInt(int64(it.Step), 10) + ")"
	}
	return s
}
