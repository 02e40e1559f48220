package bridge

import (
	"strconv"
	"time"
)

// nextID allocates a call identifier unique for the bridge's lifetime.
// The sequence number alone guarantees distinctness; the coarse
// timestamp keeps identifiers from repeating across bridge instances
// and makes them readable in host logs.
func (b *Bridge) nextID() string {
	n := b.seq.Add(1)
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + strconv.FormatUint(n, 10)
}
