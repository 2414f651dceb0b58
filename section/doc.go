// Package section defines the low-level binary layout of ring item events.
//
// Every event is self-delimited:
//
//	┌───────────────────────────────────────────────────────────┐
//	│ Length   (u32, 4 bytes) total event size incl. this field │
//	├───────────────────────────────────────────────────────────┤
//	│ Type     (u32, 4 bytes) item type identifier              │
//	├───────────────────────────────────────────────────────────┤
//	│ Body header (4 or 20 bytes)                               │
//	│  - Size (u32): 0 or 20                                    │
//	│  - Timestamp (u64)    ┐                                   │
//	│  - Source id (u32)    ├ only when Size == 20              │
//	│  - Barrier type (u32) ┘                                   │
//	├───────────────────────────────────────────────────────────┤
//	│ Payload (Length - 8 - header bytes)                       │
//	│  - layout selected by Type, see the item package          │
//	└───────────────────────────────────────────────────────────┘
//
// All multi-byte fields are little-endian. The constants in this package name
// every fixed offset used by the decoder; BodyHeader is the only view defined
// here because it is shared by every item type.
package section
