package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts pointers into random readable names. Names are generated
// lazily, so nothing is kept unless something is actually asking for names (in
// practice, debug logging). This is helpful for following one sub-polygon
// through a log full of pointer-ish noise.
//
// The memo holds at most maxNames entries and starts over once full, so a long
// logging session can see an object renamed, but never pins more than that many
// objects in memory.
const maxNames = 1024

var (
	memoMu sync.Mutex
	memo   map[interface{}]string
)

func init() {
	memo = make(map[interface{}]string)
	// Since the ids are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to the
	// same thing between runs.
	petname.NonDeterministicMode()
}

// Name returns a stable readable name for a pointer (or other comparable
// reference). Nil gets "Ø".
func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}
	if v := reflect.ValueOf(obj); v.Kind() == reflect.Ptr && v.IsNil() {
		return "Ø"
	}

	memoMu.Lock()
	defer memoMu.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	if len(memo) >= maxNames {
		memo = make(map[interface{}]string)
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}
