package api

import (
	"encoding/hex"
	"strconv"

	"github.com/zeebo/blake3"
)

// Hash returns a deterministic BLAKE3 hash of the snapshot content.
// Each item contributes its type, active flag and text, null-delimited.
func (s Snapshot) Hash() string {
	h := blake3.New()

	h.Write([]byte(strconv.Itoa(len(s))))
	h.Write([]byte{0})

	for _, it := range s {
		h.Write([]byte(it.Type))
		h.Write([]byte{0})

		if it.Active {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}

		// Length prefix keeps "a\x00" + "b" distinct from "a" + "\x00b".
		h.Write([]byte(strconv.Itoa(len(it.Text))))
		h.Write([]byte{0})
		h.Write([]byte(it.Text))
	}

	sum := h.Sum(nil)
	return hex.EncodeToString(sum)
}
