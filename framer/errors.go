package framer

import "errors"

// ErrBadFrame is returned by Decode when a buffer's structural shape is
// wrong (bad leading/trailing bytes, bad frame number, bad terminator) or
// its checksum does not verify.
var ErrBadFrame = errors.New("framer: bad frame")
