package internal

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// TranscriptHash returns a content hash of t covering its chat name and every
// message. ID, creation time and metadata are not part of the hash.
func TranscriptHash(t *Transcript) string {
	h := sha256.New()

	writeField := func(s string) {
		// length prefix keeps "ab"+"c" and "a"+"bc" apart
		h.Write([]byte(strconv.Itoa(len(s))))
		h.Write([]byte{':'})
		h.Write([]byte(s))
	}

	writeField(t.Chat)
	for _, msg := range t.Messages {
		writeField(msg.Role)
		writeField(msg.Prompt)
		writeField(msg.Content)
	}

	return hex.EncodeToString(h.Sum(nil))
}
