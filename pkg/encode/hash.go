package encode

import (
	"crypto/md5"
	"encoding/hex"
)

// CalMd5 calculates the MD5 hex digest of b. Used as a cheap content
// fingerprint (notification snapshot change detection), not for
// anything security sensitive.
func CalMd5(b []byte) string {
	sum := md5.Sum(b)
	return hex.EncodeToString(sum[:])
}
