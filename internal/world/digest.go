package world

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"hash"
)

// Digest returns a stable hash of the full state. Two worlds built from the
// same scenario and advanced by the same number of turns share a digest.
func (w *World) Digest() string {
	h := sha256.New()
	var tmp [8]byte

	digestInt(h, &tmp, w.turn)
	digestInt(h, &tmp, w.Bounds.Width)
	digestInt(h, &tmp, w.Bounds.Height)

	digestInt(h, &tmp, len(w.Mountains))
	for _, m := range w.Mountains {
		digestPos(h, &tmp, m.Pos)
	}

	digestInt(h, &tmp, len(w.Treasures))
	for _, t := range w.Treasures {
		digestPos(h, &tmp, t.Pos)
		digestInt(h, &tmp, t.Remaining)
	}

	digestInt(h, &tmp, len(w.Adventurers))
	for _, a := range w.Adventurers {
		digestInt(h, &tmp, len(a.Name))
		h.Write([]byte(a.Name))
		digestPos(h, &tmp, a.Pos)
		h.Write([]byte{a.Facing.Letter(), boolByte(a.Finished)})
		digestInt(h, &tmp, a.Collected)
		h.Write([]byte(a.Script.String()))
	}

	return hex.EncodeToString(h.Sum(nil))
}

func digestInt(h hash.Hash, tmp *[8]byte, v int) {
	binary.LittleEndian.PutUint64(tmp[:], uint64(int64(v)))
	h.Write(tmp[:])
}

func digestPos(h hash.Hash, tmp *[8]byte, p Pos) {
	digestInt(h, tmp, p.X)
	digestInt(h, tmp, p.Y)
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
