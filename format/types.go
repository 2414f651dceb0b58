// Package format defines the identifiers that appear on the wire or select how
// an event file is stored.
package format

import "strconv"

type (
	// ItemType is the 32-bit type identifier at offset 4 of every event.
	ItemType uint32
	// CompressionType selects the codec an archived event file was written with.
	CompressionType uint8
)

const (
	BeginRun       ItemType = 1 // BeginRun marks the start of a run.
	EndRun         ItemType = 2 // EndRun marks the normal end of a run.
	PauseRun       ItemType = 3 // PauseRun marks a run pause.
	ResumeRun      ItemType = 4 // ResumeRun marks a run resume.
	AbnormalEndRun ItemType = 5 // AbnormalEndRun marks a run that ended abnormally.

	PacketTypes        ItemType = 10 // PacketTypes lists packet type documentation strings.
	MonitoredVariables ItemType = 11 // MonitoredVariables lists monitored variable strings.
	RingFormat         ItemType = 12 // RingFormat carries the data format version.

	PeriodicScalers ItemType = 20 // PeriodicScalers carries one readout of scaler counters.

	PhysicsEvent      ItemType = 30 // PhysicsEvent carries an opaque physics payload.
	PhysicsEventCount ItemType = 31 // PhysicsEventCount carries the number of physics events so far.

	EvbFragment       ItemType = 40 // EvbFragment is an event builder fragment.
	EvbUnknownPayload ItemType = 41 // EvbUnknownPayload is an event builder fragment with an unknown payload.
	EvbGlomInfo       ItemType = 42 // EvbGlomInfo describes the event builder glom parameters.

	// FirstUserItemCode is the boundary of the user item range. Types strictly
	// greater than this value are user items.
	FirstUserItemCode ItemType = 32768
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// IsUserItem reports whether t lies in the user item range.
func (t ItemType) IsUserItem() bool {
	return t > FirstUserItemCode
}

// IsStateChange reports whether t is one of the five run state change types.
func (t ItemType) IsStateChange() bool {
	return t >= BeginRun && t <= AbnormalEndRun
}

// IsKnown reports whether t is dispatchable: a listed type or a user item.
func (t ItemType) IsKnown() bool {
	return t.IsUserItem() || itemTypeNames[t] != ""
}

var itemTypeNames = map[ItemType]string{
	BeginRun:           "BeginRun",
	EndRun:             "EndRun",
	PauseRun:           "PauseRun",
	ResumeRun:          "ResumeRun",
	AbnormalEndRun:     "AbnormalEndRun",
	PacketTypes:        "PacketTypes",
	MonitoredVariables: "MonitoredVariables",
	RingFormat:         "RingFormat",
	PeriodicScalers:    "PeriodicScalers",
	PhysicsEvent:       "PhysicsEvent",
	PhysicsEventCount:  "PhysicsEventCount",
	EvbFragment:        "EvbFragment",
	EvbUnknownPayload:  "EvbUnknownPayload",
	EvbGlomInfo:        "EvbGlomInfo",
}

func (t ItemType) String() string {
	if name, ok := itemTypeNames[t]; ok {
		return name
	}
	if t.IsUserItem() {
		return "UserItem(" + strconv.FormatUint(uint64(t), 10) + ")"
	}

	return "Unknown(" + strconv.FormatUint(uint64(t), 10) + ")"
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompressionType maps a codec name ("none", "zstd", "s2", "lz4") to its type.
func ParseCompressionType(name string) (CompressionType, bool) {
	switch name {
	case "none", "None", "":
		return CompressionNone, true
	case "zstd", "Zstd", "zst":
		return CompressionZstd, true
	case "s2", "S2":
		return CompressionS2, true
	case "lz4", "LZ4":
		return CompressionLZ4, true
	default:
		return 0, false
	}
}
