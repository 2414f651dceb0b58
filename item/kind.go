package item

import (
	"github.com/arloliu/ringitem/format"
	"github.com/arloliu/ringitem/section"
)

// Kind identifies the arm of a RingItem.
// Every listed item type has its own kind; all user item types share KindUserItem.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindBeginRun
	KindEndRun
	KindPauseRun
	KindResumeRun
	KindAbnormalEndRun
	KindPacketTypes
	KindMonitoredVariables
	KindRingFormat
	KindPeriodicScalers
	KindPhysicsEvent
	KindPhysicsEventCount
	KindEvbFragment
	KindEvbUnknownPayload
	KindEvbGlomInfo
	KindUserItem
)

var kindByType = map[format.ItemType]Kind{
	format.BeginRun:           KindBeginRun,
	format.EndRun:             KindEndRun,
	format.PauseRun:           KindPauseRun,
	format.ResumeRun:          KindResumeRun,
	format.AbnormalEndRun:     KindAbnormalEndRun,
	format.PacketTypes:        KindPacketTypes,
	format.MonitoredVariables: KindMonitoredVariables,
	format.RingFormat:         KindRingFormat,
	format.PeriodicScalers:    KindPeriodicScalers,
	format.PhysicsEvent:       KindPhysicsEvent,
	format.PhysicsEventCount:  KindPhysicsEventCount,
	format.EvbFragment:        KindEvbFragment,
	format.EvbUnknownPayload:  KindEvbUnknownPayload,
	format.EvbGlomInfo:        KindEvbGlomInfo,
}

// KindOf maps an item type to its kind. It returns false for types that are
// neither listed nor in the user item range.
func KindOf(t format.ItemType) (Kind, bool) {
	if k, ok := kindByType[t]; ok {
		return k, true
	}
	if t.IsUserItem() {
		return KindUserItem, true
	}

	return KindInvalid, false
}

// IsStateChange reports whether k is one of the five run state change kinds.
func (k Kind) IsStateChange() bool {
	return k >= KindBeginRun && k <= KindAbnormalEndRun
}

// IsText reports whether k carries a string list.
func (k Kind) IsText() bool {
	return k == KindPacketTypes || k == KindMonitoredVariables
}

// IsOpaque reports whether k has no typed fields.
func (k Kind) IsOpaque() bool {
	switch k {
	case KindPhysicsEvent, KindEvbFragment, KindEvbUnknownPayload, KindUserItem:
		return true
	default:
		return false
	}
}

// minPayloadSize is the number of bytes the kind's fixed fields occupy.
func (k Kind) minPayloadSize() int {
	switch {
	case k.IsStateChange():
		return section.StateChangeSize
	case k.IsText():
		return section.TextStringsOffset
	}

	switch k {
	case KindRingFormat:
		return section.RingFormatSize
	case KindPeriodicScalers:
		return section.ScalersHeaderSize
	case KindPhysicsEventCount:
		return section.EventCountSize
	case KindEvbGlomInfo:
		return section.GlomInfoSize
	default:
		return 0
	}
}

var kindNames = [...]string{
	KindInvalid:            "Invalid",
	KindBeginRun:           "BeginRun",
	KindEndRun:             "EndRun",
	KindPauseRun:           "PauseRun",
	KindResumeRun:          "ResumeRun",
	KindAbnormalEndRun:     "AbnormalEndRun",
	KindPacketTypes:        "PacketTypes",
	KindMonitoredVariables: "MonitoredVariables",
	KindRingFormat:         "RingFormat",
	KindPeriodicScalers:    "PeriodicScalers",
	KindPhysicsEvent:       "PhysicsEvent",
	KindPhysicsEventCount:  "PhysicsEventCount",
	KindEvbFragment:        "EvbFragment",
	KindEvbUnknownPayload:  "EvbUnknownPayload",
	KindEvbGlomInfo:        "EvbGlomInfo",
	KindUserItem:           "UserItem",
}

// String returns the variant name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return "Invalid"
}
