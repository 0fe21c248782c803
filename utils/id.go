package utils

import (
	"crypto/rand"
	"fmt"
	"time"
)

const ideaIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// NewIdeaID returns a key for the idea store of the form
// idea_<epoch-millis>_<9-char suffix>.
func NewIdeaID() string {
	buf := make([]byte, 9)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failure leaves the timestamp as the only entropy,
		// which is still a usable key.
		for i := range buf {
			buf[i] = 0
		}
	}
	suffix := make([]byte, len(buf))
	for i, b := range buf {
		suffix[i] = ideaIDAlphabet[int(b)%len(ideaIDAlphabet)]
	}
	return fmt.Sprintf("idea_%d_%s", time.Now().UnixMilli(), suffix)
}
