package number

import (
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// Uint64 a u64 amount that survives JSON round trips through javascript:
// it marshals as a string and accepts either string or number on the way in.
type Uint64 uint64

func (u Uint64) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(strconv.FormatUint(uint64(u), 10))), nil
}

func (u *Uint64) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	*u = Uint64(cast.ToUint64(s))
	return nil
}
